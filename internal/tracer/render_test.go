package tracer

import (
	"errors"
	"image"
	"testing"

	"github.com/ungerik/go3d/float64/vec3"
)

func renderScene() *Scene {
	s := &Scene{
		Background: vec3.T{0.1, 0.1, 0.1},
		Light:      Light{Position: vec3.T{5, 5, 5}, Color: White},
	}
	s.Add(NewSphere(vec3.T{0, 0, -4}, 1, testMaterial()))
	return s
}

func TestRenderer_GridMatchesPerPixel(t *testing.T) {
	cam := Camera{Width: 48, Height: 48, Sampling: SampleCenter}
	grid, err := NewRenderer(cam, Grid, 1)
	if err != nil {
		t.Fatal(err)
	}
	loop, err := NewRenderer(cam, PerPixel, 1)
	if err != nil {
		t.Fatal(err)
	}

	a := image.NewRGBA(grid.Bounds())
	b := image.NewRGBA(loop.Bounds())
	s := renderScene()
	grid.Render(s, a)
	loop.Render(s, b)

	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("images differ at byte %d", i)
		}
	}
}

func TestRenderer_CenterHitCornerMiss(t *testing.T) {
	cam := Camera{Width: 32, Height: 32, Sampling: SampleCenter}
	r, err := NewRenderer(cam, Grid, 1)
	if err != nil {
		t.Fatal(err)
	}
	s := renderScene()
	img := image.NewRGBA(r.Bounds())
	r.Render(s, img)

	bg := ToRGBA(s.Background)
	if got := img.RGBAAt(0, 0); got != bg {
		t.Errorf("corner %v, want background %v", got, bg)
	}
	if got := img.RGBAAt(16, 16); got == bg {
		t.Error("center pixel shows background")
	}
	if got := img.RGBAAt(16, 16); got.A != 255 {
		t.Errorf("alpha %d, want 255", got.A)
	}
}

func TestRenderer_Supersample(t *testing.T) {
	cam := Camera{Width: 20, Height: 20}
	if _, err := NewRenderer(cam, Grid, 0); !errors.Is(err, ErrInvalidSupersample) {
		t.Fatalf("got %v, want ErrInvalidSupersample", err)
	}

	r, err := NewRenderer(cam, Grid, 3)
	if err != nil {
		t.Fatal(err)
	}
	if b := r.Bounds(); b.Dx() != 20 || b.Dy() != 20 {
		t.Fatalf("bounds %v, want 20x20", b)
	}
	img := image.NewRGBA(r.Bounds())
	r.Render(renderScene(), img)
	if img.RGBAAt(10, 10) == ToRGBA(vec3.T{0.1, 0.1, 0.1}) {
		t.Error("supersampled center pixel shows background")
	}
}

func TestRenderer_Post(t *testing.T) {
	cam := Camera{Width: 4, Height: 4}
	r, err := NewRenderer(cam, PerPixel, 1)
	if err != nil {
		t.Fatal(err)
	}
	r.Post = func(_ Ray, c vec3.T, hit bool) vec3.T {
		if hit {
			return c
		}
		return vec3.T{0, 1, 0}
	}
	img := image.NewRGBA(r.Bounds())
	s := renderScene()
	s.Shapes = nil
	r.Render(s, img)
	if got := img.RGBAAt(0, 0); got.G != 255 || got.R != 0 {
		t.Errorf("post filter not applied: %v", got)
	}
}

func TestToRGBA_Truncates(t *testing.T) {
	c := ToRGBA(vec3.T{0.5, 1.5, -1})
	if c.R != 127 || c.G != 255 || c.B != 0 || c.A != 255 {
		t.Errorf("got %v", c)
	}
}
