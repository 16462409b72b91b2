package variants

import (
	"sphere-tracer/internal/physics"
	"sphere-tracer/internal/tracer"

	"github.com/ungerik/go3d/float64/vec3"
)

func newGrok(opts Options) (*scene, error) {
	v := &scene{
		name:     "grok",
		title:    "Grok-2",
		tickRate: 60,
		world: &tracer.Scene{
			Background: vec3.Zero,
			Light:      tracer.Light{Position: vec3.T{5, 5, 5}, Color: tracer.White},
		},
	}
	// Phase advances 0.05 per frame.
	osc := physics.Oscillator{Axis: physics.Y, Amplitude: 2, Rate: 0.05 * 60}
	v.motion = osc
	v.lo, v.hi = osc.Range()

	m := tracer.Material{
		Color:         tracer.White,
		Ambient:       0.1,
		Diffuse:       0.7,
		Specular:      1,
		SpecularColor: tracer.White,
		Shininess:     32,
		Model:         tracer.BlinnPhong,
	}
	cam := tracer.Camera{Forward: -1, Sampling: tracer.SampleCorner}
	body := physics.NewBody([3]float32{0, 0, -5}, [3]float32{}, 1)
	if err := v.build(cam, tracer.PerPixel, opts, body, m); err != nil {
		return nil, err
	}
	return v, nil
}
