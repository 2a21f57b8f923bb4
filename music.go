package seedling

// Music is a looping background track.
type Music interface {
	Play()
	Stop()
	IsPlaying() bool
	Volume() float64
	SetVolume(v float64)
}

// DefaultMusicVolume is the background music volume.
const DefaultMusicVolume = 0.3

// PlayMusic sets the volume and starts m from the beginning.
func PlayMusic(m Music, volume float64) {
	m.SetVolume(volume)
	m.Play()
}

// FadeOutMusic returns a task that fades m from its current volume to silence
// and stops it. A track that is not playing is left alone.
func FadeOutMusic(m Music, duration float64) Task {
	return Defer(func() Task {
		if !m.IsPlaying() {
			return nil
		}
		return NewTween(m.Volume(), 0, duration, m.SetVolume, m.Stop)
	})
}
