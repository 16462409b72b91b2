package tracer

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// ShadowBias offsets shadow ray origins along the surface normal to avoid self-intersection.
const ShadowBias = 1e-3

// Scene is the set of shapes, the light and the background a frame is traced against.
type Scene struct {
	Shapes     []Shape
	Light      Light
	Background vec3.T
	// Shadows enables a secondary ray toward the light from every hit.
	Shadows bool
	// TMin rejects roots at or behind the ray origin.
	TMin float64
}

// Add appends a shape.
func (s *Scene) Add(shape Shape) {
	s.Shapes = append(s.Shapes, shape)
}

// Nearest returns the closest hit along r over all shapes.
func (s *Scene) Nearest(r Ray) (Hit, bool) {
	best := math.Inf(1)
	var hitShape Shape
	for _, shape := range s.Shapes {
		if t, ok := shape.Intersect(r, s.TMin); ok && t < best {
			best = t
			hitShape = shape
		}
	}
	if hitShape == nil {
		return Hit{}, false
	}
	p := r.At(best)
	return Hit{
		T:        best,
		Point:    p,
		Normal:   hitShape.NormalAt(p),
		Material: hitShape.Surface(),
	}, true
}

// Trace returns the shaded color seen along r and whether anything was hit.
// A miss returns the background color.
func (s *Scene) Trace(r Ray) (vec3.T, bool) {
	h, ok := s.Nearest(r)
	if !ok {
		return s.Background, false
	}
	shadowed := s.Shadows && s.occluded(h)
	return Shade(h, s.Light, r.Dir, shadowed), true
}

// occluded reports whether any shape lies between h and the light.
func (s *Scene) occluded(h Hit) bool {
	toLight := vec3.Sub(&s.Light.Position, &h.Point)
	dist := toLight.Length()
	if dist == 0 {
		return false
	}
	offset := h.Normal.Scaled(ShadowBias)
	shadow := NewRay(vec3.Add(&h.Point, &offset), toLight.Scaled(1/dist))
	for _, shape := range s.Shapes {
		if t, ok := shape.Intersect(shadow, s.TMin); ok && t < dist {
			return true
		}
	}
	return false
}
