package variants

import (
	"math"

	"sphere-tracer/internal/physics"
	"sphere-tracer/internal/tracer"

	"github.com/ungerik/go3d/float64/vec3"
)

// Deepseek-R1: whole-frame ray grid, sphere on a sine, wandering light,
// and a soft mask that fades toward a blue background.
const (
	deepseekPhaseRate = 0.02 * 60 // phase advances 0.02 per frame at 60 Hz
	deepseekRadius    = 1
)

var deepseekBackground = vec3.T{0.1, 0.2, 0.4}

func newDeepseek(opts Options) (*scene, error) {
	v := &scene{
		name:     "deepseek",
		title:    "Deepseek-R1",
		tickRate: 60,
		world:    &tracer.Scene{Background: vec3.Zero},
	}
	osc := physics.Oscillator{Axis: physics.Y, Amplitude: 2, Rate: deepseekPhaseRate}
	v.motion = osc
	v.lo, v.hi = osc.Range()
	v.animate = func(s physics.State, w *tracer.Scene) {
		t := float64(s.Time) * deepseekPhaseRate
		w.Light = tracer.Light{
			Position: vec3.T{4 * math.Cos(t*0.5), 5 + math.Sin(t*0.7), -3 + 2*math.Sin(t*0.3)},
			Color:    tracer.White,
		}
	}

	m := tracer.Material{
		Color:         vec3.T{1, 0.2, 0.2},
		Ambient:       0.1,
		Diffuse:       1,
		Specular:      1,
		SpecularColor: tracer.White,
		Shininess:     64,
	}
	cam := tracer.Camera{Forward: -1, Sampling: tracer.SampleLinspace}
	body := physics.NewBody([3]float32{0, 0, -4}, [3]float32{}, deepseekRadius)
	if err := v.build(cam, tracer.Grid, opts, body, m); err != nil {
		return nil, err
	}

	aspect := float64(opts.Width) / float64(opts.Height)
	v.renderer.Post = func(r tracer.Ray, c vec3.T, _ bool) vec3.T {
		d := vec3.T{r.Dir[0], r.Dir[1] * aspect, r.Dir[2]}
		mask := math.Min(math.Max(1-(d.Length()-deepseekRadius)*0.5, 0), 1)
		bg := deepseekBackground.Scaled(1 - mask)
		fg := c.Scaled(mask)
		return vec3.Add(&bg, &fg)
	}
	return v, nil
}
