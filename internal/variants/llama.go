package variants

import (
	"math"

	"sphere-tracer/internal/physics"
	"sphere-tracer/internal/tracer"

	"github.com/ungerik/go3d/float64/vec3"
)

// Llama-3.3-70B: grayscale shading and a narrow view (half extent 0.5).
func newLlama(opts Options) (*scene, error) {
	v := &scene{
		name:     "llama",
		title:    "Llama-3.3-70B",
		tickRate: 60,
		world: &tracer.Scene{
			Background: vec3.Zero,
			Light:      tracer.Light{Position: vec3.T{5, 5, 5}, Color: tracer.White},
		},
	}
	ref := physics.Reflector{Axis: physics.Y, Min: -2, Max: 2}
	v.motion = ref
	v.lo, v.hi = ref.Range()

	m := tracer.Material{
		Color:         tracer.White,
		Diffuse:       0.5,
		Specular:      0.5,
		SpecularColor: tracer.White,
		Shininess:     32,
	}
	cam := tracer.Camera{Forward: -1, FOV: 2 * math.Atan(0.5), Sampling: tracer.SampleCorner}
	body := physics.NewBody([3]float32{0, 0, -5}, [3]float32{0, 0.6, 0}, 1)
	if err := v.build(cam, tracer.PerPixel, opts, body, m); err != nil {
		return nil, err
	}
	return v, nil
}
