package tracer

import (
	"math"
	"testing"

	"github.com/ungerik/go3d/float64/vec3"
)

func TestScene_Trace_MissReturnsBackground(t *testing.T) {
	bg := vec3.T{0.1, 0.2, 0.4}
	s := &Scene{Background: bg, Light: Light{Position: vec3.T{5, 5, 5}, Color: White}}
	s.Add(NewSphere(vec3.T{0, 0, -5}, 1, testMaterial()))

	c, hit := s.Trace(NewRay(vec3.Zero, vec3.T{0, 1, 0}))
	if hit {
		t.Fatal("expected miss")
	}
	if c != bg {
		t.Errorf("got %v, want background %v", c, bg)
	}

	c, hit = s.Trace(NewRay(vec3.Zero, vec3.T{0, 0, -1}))
	if !hit {
		t.Fatal("expected hit")
	}
	if c == bg {
		t.Error("hit returned background color")
	}
}

func TestScene_Nearest_PicksCloserShape(t *testing.T) {
	s := &Scene{TMin: 1e-3}
	far := NewSphere(vec3.T{0, 0, 10}, 1, testMaterial())
	near := NewSphere(vec3.T{0, 0, 5}, 1, testMaterial())
	s.Add(far)
	s.Add(near)

	h, ok := s.Nearest(NewRay(vec3.Zero, vec3.T{0, 0, 1}))
	if !ok {
		t.Fatal("expected hit")
	}
	if math.Abs(h.T-4) > 1e-12 {
		t.Errorf("t=%f, want 4", h.T)
	}
	if h.Material != &near.Material {
		t.Error("hit reports the far sphere's material")
	}
}

func TestScene_Shadows(t *testing.T) {
	ground := Material{Color: Gray(0.5), Ambient: 0.1, Diffuse: 0.9, Shininess: 1}
	build := func(shadows bool) *Scene {
		s := &Scene{
			Light:   Light{Position: vec3.T{0, 5, 5}, Color: White},
			Shadows: shadows,
			TMin:    1e-3,
		}
		s.Add(NewSphere(vec3.T{0, 1, 5}, 1, testMaterial()))
		s.Add(NewPlane(vec3.T{0, -1, 0}, vec3.T{0, 1, 0}, ground))
		return s
	}
	// Ray to the ground point directly under the sphere and light.
	r := NewRay(vec3.Zero, vec3.T{0, -1, 5})

	lit, _ := build(false).Trace(r)
	shaded, hit := build(true).Trace(r)
	if !hit {
		t.Fatal("expected ground hit")
	}
	if want := ground.Color.Scaled(ground.Ambient); shaded != want {
		t.Errorf("shadowed ground %v, want ambient %v", shaded, want)
	}
	if brightness(lit) <= brightness(shaded) {
		t.Errorf("unshadowed %v should be brighter than shadowed %v", lit, shaded)
	}

	// The top of the sphere sees the light.
	top, _ := build(true).Trace(NewRay(vec3.T{0, 5, 5}, vec3.T{0, -1, 0}))
	sphere := testMaterial()
	if top == sphere.Color.Scaled(sphere.Ambient) {
		t.Error("top of sphere reported in shadow")
	}
}
