package tracer

import (
	"testing"

	"github.com/ungerik/go3d/float64/vec3"
)

func brightness(c vec3.T) float64 {
	return c[0] + c[1] + c[2]
}

func TestShade_FacingLightIsBrighter(t *testing.T) {
	for _, model := range []SpecularModel{Phong, BlinnPhong} {
		t.Run(model.String(), func(t *testing.T) {
			m := testMaterial()
			m.Model = model
			s := NewSphere(vec3.T{0, 0, -5}, 1, m)
			light := Light{Position: vec3.T{0, 10, -5}, Color: White}
			view := vec3.T{0, 0, -1}

			top := Hit{Point: vec3.T{0, 1, -5}, Normal: vec3.T{0, 1, 0}, Material: &s.Material}
			bottom := Hit{Point: vec3.T{0, -1, -5}, Normal: vec3.T{0, -1, 0}, Material: &s.Material}

			lit := Shade(top, light, view, false)
			dark := Shade(bottom, light, view, false)
			if brightness(lit) <= brightness(dark) {
				t.Errorf("lit %v is not brighter than unlit %v", lit, dark)
			}
			ambient := m.Color.Scaled(m.Ambient)
			if dark != ambient {
				t.Errorf("unlit side %v, want ambient only %v", dark, ambient)
			}
		})
	}
}

func TestShade_ClampsChannels(t *testing.T) {
	m := Material{Color: White, Ambient: 1, Diffuse: 5, Specular: 5, SpecularColor: White, Shininess: 1}
	h := Hit{Point: vec3.Zero, Normal: vec3.T{0, 0, 1}, Material: &m}
	c := Shade(h, Light{Position: vec3.T{0, 0, 10}, Color: White}, vec3.T{0, 0, -1}, false)
	for i, v := range c {
		if v < 0 || v > 1 {
			t.Errorf("channel %d = %f out of [0,1]", i, v)
		}
	}
}

func TestShade_ShadowKeepsAmbient(t *testing.T) {
	m := testMaterial()
	h := Hit{Point: vec3.Zero, Normal: vec3.T{0, 1, 0}, Material: &m}
	light := Light{Position: vec3.T{0, 5, 0}, Color: White}
	got := Shade(h, light, vec3.T{0, -1, 0}, true)
	if want := m.Color.Scaled(m.Ambient); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestShade_SpecularHighlight(t *testing.T) {
	// Light and eye on the same axis: both models peak at the mirror direction.
	for _, model := range []SpecularModel{Phong, BlinnPhong} {
		m := Material{Color: vec3.Zero, Specular: 1, SpecularColor: White, Shininess: 32, Model: model}
		h := Hit{Point: vec3.Zero, Normal: vec3.T{0, 0, 1}, Material: &m}
		c := Shade(h, Light{Position: vec3.T{0, 0, 10}, Color: White}, vec3.T{0, 0, -1}, false)
		if c != White {
			t.Errorf("%s: got %v, want full highlight", model, c)
		}
	}
}
