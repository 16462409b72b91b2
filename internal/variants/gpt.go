package variants

import (
	"math"

	"sphere-tracer/internal/physics"
	"sphere-tracer/internal/tracer"

	"github.com/ungerik/go3d/float64/vec3"
)

// GPT o3-mini-high: the only variant with a ground plane and shadow rays.
// Time follows the wall clock.
func newGPT(opts Options) (*scene, error) {
	v := &scene{
		name:      "gpt",
		title:     "GPT o3-mini-high",
		tickRate:  60,
		wallClock: true,
		world: &tracer.Scene{
			Background: tracer.Gray(0.2),
			Shadows:    true,
			TMin:       1e-3,
		},
	}
	osc := physics.Oscillator{Axis: physics.Y, Center: 1, Amplitude: 0.5, Rate: 2}
	v.motion = osc
	v.lo, v.hi = osc.Range()
	v.animate = func(s physics.State, w *tracer.Scene) {
		t := float64(s.Time)
		w.Light = tracer.Light{
			Position: vec3.T{5 * math.Cos(t), 5, 5 * math.Sin(t)},
			Color:    tracer.White,
		}
	}

	v.world.Add(tracer.NewPlane(vec3.T{0, -1, 0}, vec3.T{0, 1, 0}, tracer.Material{
		Color:     tracer.Gray(0.5),
		Ambient:   0.1,
		Diffuse:   0.9,
		Shininess: 1,
	}))
	m := tracer.Material{
		Color:         vec3.T{1, 0, 0},
		Ambient:       0.1,
		Diffuse:       0.6,
		Specular:      0.3,
		SpecularColor: tracer.White,
		Shininess:     50,
	}
	cam := tracer.Camera{Forward: 1, FOV: math.Pi / 3, Sampling: tracer.SampleCenter}
	body := physics.NewBody([3]float32{0, 1, 5}, [3]float32{}, 1)
	if err := v.build(cam, tracer.Grid, opts, body, m); err != nil {
		return nil, err
	}
	return v, nil
}
