package variants

import (
	"sphere-tracer/internal/physics"
	"sphere-tracer/internal/tracer"

	"github.com/ungerik/go3d/float64/vec3"
)

// Mistral works in screen-sized units: a radius-32 sphere 300 units away,
// bouncing within half the window height, lit from behind.
const (
	mistralRadius = 32
	mistralBound  = 320/2 - mistralRadius
)

func newMistral(opts Options) (*scene, error) {
	v := &scene{
		name:     "mistral",
		title:    "Mistral",
		tickRate: 60,
		world: &tracer.Scene{
			Background: vec3.Zero,
			Light:      tracer.Light{Position: vec3.T{0, 0, -500}, Color: tracer.White},
		},
	}
	ref := physics.Reflector{Axis: physics.Y, Min: -mistralBound, Max: mistralBound}
	v.motion = ref
	v.lo, v.hi = ref.Range()

	m := tracer.Material{
		Color:         vec3.T{1, 0, 0},
		Diffuse:       1,
		Specular:      1,
		SpecularColor: tracer.White,
		Shininess:     32,
	}
	cam := tracer.Camera{Forward: -1, Sampling: tracer.SampleCorner}
	// 5 units per frame at 60 Hz.
	body := physics.NewBody([3]float32{0, 0, -300}, [3]float32{0, 300, 0}, mistralRadius)
	if err := v.build(cam, tracer.PerPixel, opts, body, m); err != nil {
		return nil, err
	}
	return v, nil
}
