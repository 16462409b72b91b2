package tracer

import "github.com/ungerik/go3d/float64/vec3"

// Ray is a half-line starting at Origin and running along Dir. Dir need not be unit length.
type Ray struct {
	Origin vec3.T
	Dir    vec3.T
}

// NewRay returns a ray from origin along dir.
func NewRay(origin, dir vec3.T) Ray {
	return Ray{Origin: origin, Dir: dir}
}

// At returns the point Origin + t*Dir.
func (r Ray) At(t float64) vec3.T {
	d := r.Dir.Scaled(t)
	return vec3.Add(&r.Origin, &d)
}
