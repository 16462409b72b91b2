package tracer

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// Sphere is an analytic sphere. Center is mutable so callers can animate it between frames.
type Sphere struct {
	Center   vec3.T
	Radius   float64
	Material Material
}

// NewSphere creates a sphere.
func NewSphere(center vec3.T, radius float64, m Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: m}
}

// Intersect solves |O + tD - C|^2 = r^2 for t.
// The smaller root is preferred; a root at or below tMin is treated as behind the origin.
func (s *Sphere) Intersect(r Ray, tMin float64) (float64, bool) {
	oc := vec3.Sub(&r.Origin, &s.Center)

	// at^2 + bt + c = 0
	a := vec3.Dot(&r.Dir, &r.Dir)
	if a == 0 {
		return 0, false
	}
	b := 2 * vec3.Dot(&r.Dir, &oc)
	c := vec3.Dot(&oc, &oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, false
	}
	sqrtD := math.Sqrt(discriminant)

	if t := (-b - sqrtD) / (2 * a); t > tMin {
		return t, true
	}
	// Origin inside the sphere: only the far root is in front.
	if t := (-b + sqrtD) / (2 * a); t > tMin {
		return t, true
	}
	return 0, false
}

// NormalAt returns the outward unit normal (p - C) / r for a point on the surface.
func (s *Sphere) NormalAt(p vec3.T) vec3.T {
	n := vec3.Sub(&p, &s.Center)
	return n.Scaled(1 / s.Radius)
}

// Surface returns the sphere's material.
func (s *Sphere) Surface() *Material {
	return &s.Material
}
