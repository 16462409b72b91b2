package tracer

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// Shade evaluates ambient + diffuse + specular at h for a single point light.
// viewDir points from the eye toward the hit point. A shadowed hit keeps only the
// ambient term. Every channel of the result is clamped to [0,1].
func Shade(h Hit, light Light, viewDir vec3.T, shadowed bool) vec3.T {
	m := h.Material
	c := m.Color.Scaled(m.Ambient)
	if shadowed {
		return Clamp01(c)
	}

	toLight := vec3.Sub(&light.Position, &h.Point)
	l := toLight.Normalized()
	nl := vec3.Dot(&h.Normal, &l)
	if nl <= 0 {
		return Clamp01(c)
	}

	diffuse := modulate(m.Color, light.Color)
	diffuse.Scale(m.Diffuse * nl)
	c.Add(&diffuse)

	if m.Specular == 0 {
		return Clamp01(c)
	}
	v := viewDir.Scaled(-1)
	v.Normalize()

	var term float64
	switch m.Model {
	case BlinnPhong:
		half := vec3.Add(&l, &v)
		half.Normalize()
		term = vec3.Dot(&h.Normal, &half)
	default:
		reflected := h.Normal.Scaled(2 * nl)
		reflected.Sub(&l)
		term = vec3.Dot(&reflected, &v)
	}
	if term > 0 {
		spec := modulate(m.SpecularColor, light.Color)
		spec.Scale(m.Specular * math.Pow(term, m.Shininess))
		c.Add(&spec)
	}
	return Clamp01(c)
}

// Clamp01 clamps each channel of c to [0,1].
func Clamp01(c vec3.T) vec3.T {
	for i, v := range c {
		c[i] = math.Min(math.Max(v, 0), 1)
	}
	return c
}
