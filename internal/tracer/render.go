package tracer

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/transform"
	"github.com/ungerik/go3d/float64/vec3"
	"golang.org/x/image/draw"
)

// ErrInvalidSupersample is returned for a supersample factor below 1.
var ErrInvalidSupersample = errors.New("supersample factor must be >= 1")

// Strategy selects how primary rays are produced each frame.
type Strategy int

const (
	// Grid computes every primary ray once and reuses the buffer for all frames.
	Grid Strategy = iota
	// PerPixel builds each ray inside the nested x,y loop.
	PerPixel
)

func (s Strategy) String() string {
	switch s {
	case PerPixel:
		return "per-pixel"
	default:
		return "grid"
	}
}

// PostFunc adjusts the traced color of a pixel. hit reports whether the ray met a shape.
type PostFunc func(r Ray, c vec3.T, hit bool) vec3.T

// Renderer traces a Scene into an RGBA image at the camera resolution.
// With a supersample factor k > 1 it traces at k times the resolution and
// downsamples with a linear filter.
type Renderer struct {
	camera   Camera
	strategy Strategy
	factor   int
	rays     []Ray
	buf      *image.RGBA
	Post     PostFunc
}

// NewRenderer returns a renderer producing cam.Width x cam.Height images.
func NewRenderer(cam Camera, strategy Strategy, supersample int) (*Renderer, error) {
	if supersample < 1 {
		return nil, fmt.Errorf("renderer: %w (got %d)", ErrInvalidSupersample, supersample)
	}
	if cam.Width <= 0 || cam.Height <= 0 {
		return nil, fmt.Errorf("renderer: invalid resolution %dx%d", cam.Width, cam.Height)
	}
	r := &Renderer{
		camera:   cam.Scaled(supersample),
		strategy: strategy,
		factor:   supersample,
	}
	if supersample > 1 {
		r.buf = image.NewRGBA(image.Rect(0, 0, r.camera.Width, r.camera.Height))
	}
	return r, nil
}

// Bounds returns the size of the images Render writes.
func (r *Renderer) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.camera.Width/r.factor, r.camera.Height/r.factor)
}

// Strategy returns the ray generation strategy.
func (r *Renderer) Strategy() Strategy {
	return r.strategy
}

// Render traces s into dst, which must be at least Bounds() in size.
func (r *Renderer) Render(s *Scene, dst *image.RGBA) {
	target := dst
	if r.factor > 1 {
		target = r.buf
	}
	w, h := r.camera.Width, r.camera.Height

	switch r.strategy {
	case Grid:
		if r.rays == nil {
			r.rays = r.camera.Rays()
		}
		for i, ray := range r.rays {
			target.SetRGBA(i%w, i/w, r.pixel(s, ray))
		}
	default:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				target.SetRGBA(x, y, r.pixel(s, r.camera.RayFor(x, y)))
			}
		}
	}

	if r.factor > 1 {
		b := r.Bounds()
		small := transform.Resize(r.buf, b.Dx(), b.Dy(), transform.Linear)
		draw.Draw(dst, b, small, image.Point{}, draw.Src)
	}
}

func (r *Renderer) pixel(s *Scene, ray Ray) color.RGBA {
	c, hit := s.Trace(ray)
	if r.Post != nil {
		c = r.Post(ray, c, hit)
	}
	return ToRGBA(c)
}

// ToRGBA converts a [0,1] color to 8-bit channels by truncating c*255.
func ToRGBA(c vec3.T) color.RGBA {
	c = Clamp01(c)
	return color.RGBA{
		R: uint8(c[0] * 255),
		G: uint8(c[1] * 255),
		B: uint8(c[2] * 255),
		A: 255,
	}
}
