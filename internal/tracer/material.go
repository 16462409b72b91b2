package tracer

import "github.com/ungerik/go3d/float64/vec3"

// SpecularModel selects the highlight term used by Shade.
type SpecularModel int

const (
	// Phong uses (R·V)^shininess with R the light direction mirrored about the normal.
	Phong SpecularModel = iota
	// BlinnPhong uses (N·H)^shininess with H the half vector between light and view.
	BlinnPhong
)

func (m SpecularModel) String() string {
	switch m {
	case BlinnPhong:
		return "blinn-phong"
	default:
		return "phong"
	}
}

// Material holds the Phong coefficients of a surface.
// Ambient and Diffuse scale Color; Specular scales SpecularColor.
type Material struct {
	Color         vec3.T
	Ambient       float64
	Diffuse       float64
	Specular      float64
	SpecularColor vec3.T
	Shininess     float64
	Model         SpecularModel
}

// Light is a point light.
type Light struct {
	Position vec3.T
	Color    vec3.T
}

// White is the unit color.
var White = vec3.T{1, 1, 1}

// Gray returns a color with all three channels set to v.
func Gray(v float64) vec3.T {
	return vec3.T{v, v, v}
}

// modulate returns the component-wise product of two colors.
func modulate(a, b vec3.T) vec3.T {
	return vec3.T{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}
