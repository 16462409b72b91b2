package tracer

import "github.com/ungerik/go3d/float64/vec3"

// Shape is anything a ray can be intersected with.
// Intersect returns the nearest root strictly greater than tMin.
type Shape interface {
	Intersect(r Ray, tMin float64) (float64, bool)
	NormalAt(p vec3.T) vec3.T
	Surface() *Material
}

// Hit is the nearest intersection found along a ray.
type Hit struct {
	T        float64
	Point    vec3.T
	Normal   vec3.T
	Material *Material
}
