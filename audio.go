package seedling

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
)

// AudioSampleRate is the sample rate of the shared audio context.
const AudioSampleRate = 48000

// PlayerMusic is a looping background track backed by an ebiten audio player.
type PlayerMusic struct {
	player *audio.Player
}

// Play rewinds the track and starts it.
func (m *PlayerMusic) Play() {
	if err := m.player.Rewind(); err != nil {
		logf("music: rewind: %v", err)
	}
	m.player.Play()
}

// Stop pauses the track.
func (m *PlayerMusic) Stop() { m.player.Pause() }

// IsPlaying reports whether the track is playing.
func (m *PlayerMusic) IsPlaying() bool { return m.player.IsPlaying() }

// Volume returns the player volume in [0, 1].
func (m *PlayerMusic) Volume() float64 { return m.player.Volume() }

// SetVolume sets the player volume in [0, 1].
func (m *PlayerMusic) SetVolume(v float64) { m.player.SetVolume(clamp01(v)) }

// LoadMusic decodes an .ogg or .mp3 file and wraps it in an infinite loop.
// The whole file is read into memory so the stream can seek without keeping
// the file open.
func LoadMusic(ctx *audio.Context, path string) (*PlayerMusic, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open music %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read music %s: %w", path, err)
	}
	reader := bytes.NewReader(data)

	var stream interface {
		io.ReadSeeker
		Length() int64
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		s, err := mp3.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("decode mp3 %s: %w", path, err)
		}
		stream = s
	case ".ogg":
		s, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("decode ogg %s: %w", path, err)
		}
		stream = s
	default:
		return nil, fmt.Errorf("unsupported music format %q (want .ogg or .mp3)", ext)
	}

	player, err := ctx.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	if err != nil {
		return nil, fmt.Errorf("create music player %s: %w", path, err)
	}
	return &PlayerMusic{player: player}, nil
}
