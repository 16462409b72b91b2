package variants

import (
	"sphere-tracer/internal/physics"
	"sphere-tracer/internal/tracer"

	"github.com/ungerik/go3d/float64/vec3"
)

func newGemini(opts Options) (*scene, error) {
	v := &scene{
		name:     "gemini",
		title:    "Gemini-2",
		tickRate: 60,
		world: &tracer.Scene{
			Background: tracer.Gray(0.1),
			Light:      tracer.Light{Position: vec3.T{5, 5, 5}, Color: tracer.White},
		},
	}
	ref := physics.Reflector{Axis: physics.Y, Min: -0.8, Max: 0.8}
	v.motion = ref
	v.lo, v.hi = ref.Range()

	m := tracer.Material{
		Color:         vec3.T{0.8, 0.2, 0.2},
		Diffuse:       1,
		Specular:      0.5,
		SpecularColor: tracer.White,
		Shininess:     50,
	}
	cam := tracer.Camera{Origin: vec3.T{0, 0, 2}, Forward: -1, Sampling: tracer.SampleCenter}
	// 0.01 per frame at 60 Hz.
	body := physics.NewBody([3]float32{}, [3]float32{0, 0.6, 0}, 0.5)
	if err := v.build(cam, tracer.PerPixel, opts, body, m); err != nil {
		return nil, err
	}
	return v, nil
}
