package graphlab

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

// DefaultScreenshotDir is where screenshots go unless the config says
// otherwise.
const DefaultScreenshotDir = "screenshots"

// Screenshot queues a labeled screenshot of the next painted frame. The PNG
// is written to ScreenshotDir with a timestamped filename. Safe to call from
// Update or Draw.
func (w *Window) Screenshot(label string) {
	w.screenshotQueue = append(w.screenshotQueue, label)
}

// flushScreenshots captures frame for every queued label and writes each as
// a PNG file. Called at the end of Window.Draw.
func (w *Window) flushScreenshots(frame *ebiten.Image) {
	if len(w.screenshotQueue) == 0 {
		return
	}
	defer func() { w.screenshotQueue = w.screenshotQueue[:0] }()

	if err := os.MkdirAll(w.ScreenshotDir, 0o755); err != nil {
		logf("screenshot: mkdir %s: %v", w.ScreenshotDir, err)
		return
	}

	img := readNRGBA(frame)
	stamp := time.Now().Format("20060102_150405")
	for _, label := range w.screenshotQueue {
		path := filepath.Join(w.ScreenshotDir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			logf("screenshot: %v", err)
			continue
		}
		w.written = append(w.written, path)
	}
}

// readNRGBA copies an Ebitengine image into straight-alpha NRGBA.
func readNRGBA(src *ebiten.Image) *image.NRGBA {
	bounds := src.Bounds()
	wd, ht := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*wd*ht)
	src.ReadPixels(pixels)

	img := image.NewNRGBA(image.Rect(0, 0, wd, ht))
	unpremultiply(img.Pix, pixels)
	return img
}

// unpremultiply converts premultiplied RGBA bytes in src to straight alpha
// in dst. Both slices have the same length.
func unpremultiply(dst, src []byte) {
	for i := 0; i+3 < len(src); i += 4 {
		r, g, b, a := src[i], src[i+1], src[i+2], src[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		dst[i] = r
		dst[i+1] = g
		dst[i+2] = b
		dst[i+3] = a
	}
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
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
