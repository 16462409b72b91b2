package graphics

import (
	"image"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Screen owns the CPU frame the tracer writes into and the GPU texture it is blitted through.
// The texture is created on the first Draw, after the window and GL context exist.
type Screen struct {
	img    *image.RGBA
	pixels []color.RGBA
	tex    rl.Texture2D
	loaded bool
}

// NewScreen returns a screen backed by a width x height RGBA image.
func NewScreen(bounds image.Rectangle) *Screen {
	return &Screen{
		img:    image.NewRGBA(bounds),
		pixels: make([]color.RGBA, bounds.Dx()*bounds.Dy()),
	}
}

// Image returns the frame to render into.
func (s *Screen) Image() *image.RGBA {
	return s.img
}

func (s *Screen) ensureLoaded() {
	if s.loaded {
		return
	}
	b := s.img.Bounds()
	blank := rl.GenImageColor(b.Dx(), b.Dy(), rl.Black)
	s.tex = rl.LoadTextureFromImage(blank)
	rl.UnloadImage(blank)
	s.loaded = true
}

// Draw uploads the frame and draws it at the window origin.
func (s *Screen) Draw() {
	s.ensureLoaded()
	pix := s.img.Pix
	for i := range s.pixels {
		o := i * 4
		s.pixels[i] = color.RGBA{R: pix[o], G: pix[o+1], B: pix[o+2], A: pix[o+3]}
	}
	rl.UpdateTexture(s.tex, s.pixels)
	rl.DrawTexture(s.tex, 0, 0, rl.White)
}

// Unload releases the texture. Call before the window closes.
func (s *Screen) Unload() {
	if !s.loaded {
		return
	}
	rl.UnloadTexture(s.tex)
	s.loaded = false
}
