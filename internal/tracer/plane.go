package tracer

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// parallelEpsilon is the |D·N| below which a ray is considered parallel to a plane.
const parallelEpsilon = 1e-6

// Plane is an infinite plane through Point with unit Normal.
type Plane struct {
	Point    vec3.T
	Normal   vec3.T
	Material Material
}

// NewPlane creates a plane; normal is normalized.
func NewPlane(point, normal vec3.T, m Material) *Plane {
	return &Plane{Point: point, Normal: normal.Normalized(), Material: m}
}

// Intersect returns t = (P - O)·N / (D·N) when it lies beyond tMin.
func (p *Plane) Intersect(r Ray, tMin float64) (float64, bool) {
	denom := vec3.Dot(&r.Dir, &p.Normal)
	if math.Abs(denom) <= parallelEpsilon {
		return 0, false
	}
	po := vec3.Sub(&p.Point, &r.Origin)
	t := vec3.Dot(&po, &p.Normal) / denom
	if t <= tMin {
		return 0, false
	}
	return t, true
}

// NormalAt returns the plane normal; it is the same everywhere.
func (p *Plane) NormalAt(vec3.T) vec3.T {
	return p.Normal
}

// Surface returns the plane's material.
func (p *Plane) Surface() *Material {
	return &p.Material
}
