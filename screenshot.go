package seedling

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultScreenshotDir is where screenshots go when no directory is configured.
const DefaultScreenshotDir = "screenshots"

// Screenshots queues labeled captures of the rendered frame. Queued labels are
// written to Dir as timestamped PNG files at the end of the next Draw.
type Screenshots struct {
	Dir   string
	queue []string
	now   func() time.Time
}

// NewScreenshots creates a queue writing to dir, or DefaultScreenshotDir when
// dir is empty.
func NewScreenshots(dir string) *Screenshots {
	if dir == "" {
		dir = DefaultScreenshotDir
	}
	return &Screenshots{Dir: dir, now: time.Now}
}

// Queue requests a capture of the current frame. Safe to call from Update.
func (s *Screenshots) Queue(label string) {
	s.queue = append(s.queue, label)
}

// Pending returns the number of queued captures.
func (s *Screenshots) Pending() int {
	return len(s.queue)
}

// Flush captures screen once for every queued label.
func (s *Screenshots) Flush(screen *ebiten.Image) {
	if len(s.queue) == 0 {
		return
	}
	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	screen.ReadPixels(pixels)
	s.write(unpremultiply(pixels, w, h))
}

func (s *Screenshots) write(img *image.NRGBA) {
	defer func() { s.queue = s.queue[:0] }()
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		logf("screenshot: mkdir %s: %v", s.Dir, err)
		return
	}
	stamp := s.now().Format("20060102_150405")
	for _, label := range s.queue {
		path := filepath.Join(s.Dir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			logf("screenshot: %v", err)
		} else if globalDebug {
			debugf("screenshot %s", path)
		}
	}
}

// unpremultiply converts ReadPixels output (premultiplied RGBA) to
// straight-alpha NRGBA.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
