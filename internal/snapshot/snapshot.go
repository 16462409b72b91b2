// Package snapshot renders variants without a window and writes frames to PNG.
package snapshot

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"sphere-tracer/internal/variants"

	"github.com/anthonynsimon/bild/imgio"
	"golang.org/x/image/draw"
)

// Capture advances v by ticks frames at its own tick rate and traces the resulting frame.
func Capture(v variants.Variant, ticks int) *image.RGBA {
	dt := 1 / float32(v.TickRate())
	for i := 0; i < ticks; i++ {
		v.Tick(dt)
	}
	img := image.NewRGBA(v.Bounds())
	v.Render(img)
	return img
}

// Save writes img to path as PNG, enlarged by an integer scale with nearest-neighbour
// sampling so individual traced pixels stay sharp. The directory is created if needed.
func Save(img image.Image, path string, scale int) error {
	if scale < 1 {
		return fmt.Errorf("snapshot: scale must be >= 1, got %d", scale)
	}
	if scale > 1 {
		b := img.Bounds()
		big := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
		draw.NearestNeighbor.Scale(big, big.Bounds(), img, b, draw.Src, nil)
		img = big
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("snapshot: %w", err)
		}
	}
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	return nil
}
