package variants

import (
	"math"

	"sphere-tracer/internal/physics"
	"sphere-tracer/internal/tracer"

	"github.com/ungerik/go3d/float64/vec3"
)

// Phi-4 runs its physics at 20 Hz: velocity 0.1 and gravity -0.01 per step.
const (
	phi4Rate        = 20
	phi4Floor       = -2
	phi4Restitution = 0.9
)

func newPhi4(opts Options) (*scene, error) {
	v := &scene{
		name:     "phi4",
		title:    "Phi-4",
		tickRate: phi4Rate,
		world: &tracer.Scene{
			Background: vec3.Zero,
			Light:      tracer.Light{Position: vec3.T{5, 5, 5}, Color: tracer.White},
		},
	}
	w := physics.World{
		Gravity:     [3]float32{0, -0.01 * phi4Rate * phi4Rate, 0},
		Floor:       phi4Floor,
		Restitution: phi4Restitution,
	}
	v.motion = w

	// Fixed-function style lighting: light ambient 0.2 and a global ambient 0.2,
	// both against a 0.1 material ambient; diffuse 0.8 * 0.7.
	m := tracer.Material{
		Color:         tracer.White,
		Ambient:       0.2*0.1 + 0.2*0.1,
		Diffuse:       0.8 * 0.7,
		Specular:      1,
		SpecularColor: tracer.White,
		Shininess:     50,
		Model:         tracer.BlinnPhong,
	}
	cam := tracer.Camera{Forward: -1, FOV: math.Pi / 4, Sampling: tracer.SampleCenter}
	body := physics.NewBody([3]float32{0, 0, -10}, [3]float32{0, 0.1 * phi4Rate, 0}, 0.5)
	if err := v.build(cam, tracer.PerPixel, opts, body, m); err != nil {
		return nil, err
	}
	v.lo = phi4Floor + body.Radius
	v.hi = w.Peak(v.initial) + 2*body.Velocity[physics.Y]/phi4Rate
	return v, nil
}
