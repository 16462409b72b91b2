package variants

import (
	"image"

	"sphere-tracer/internal/physics"
	"sphere-tracer/internal/tracer"

	"github.com/ungerik/go3d/float64/vec3"
)

// Variant is one animated sphere scene: its simulation state, scene and renderer.
type Variant interface {
	// Name is the registry key (e.g. "gpt").
	Name() string
	// Title is the window caption.
	Title() string
	// TickRate is the target frames per second.
	TickRate() int32
	// Tick advances one frame. Fixed-step variants ignore dt and use 1/TickRate.
	Tick(dt float32)
	// Render traces the current frame into dst.
	Render(dst *image.RGBA)
	// Bounds is the size of the rendered image.
	Bounds() image.Rectangle
	// State returns the current simulation state.
	State() physics.State
	// Range is the interval the sphere's Y coordinate is declared to stay within.
	Range() (lo, hi float32)
	// Reset returns to the initial state.
	Reset()
}

// scene is the shared Variant implementation. Each variant file fills one in.
type scene struct {
	name     string
	title    string
	tickRate int32
	// wallClock variants advance by the real frame time instead of a fixed step.
	wallClock bool

	initial physics.State
	state   physics.State
	motion  physics.Motion
	lo, hi  float32

	world    *tracer.Scene
	sphere   *tracer.Sphere
	renderer *tracer.Renderer
	// animate updates anything besides the sphere center (e.g. the light) from the state.
	animate func(s physics.State, w *tracer.Scene)
}

func (v *scene) Name() string {
	return v.name
}

func (v *scene) Title() string {
	return v.title
}

func (v *scene) TickRate() int32 {
	return v.tickRate
}

func (v *scene) State() physics.State {
	return v.state
}

func (v *scene) Range() (lo, hi float32) {
	return v.lo, v.hi
}

func (v *scene) Bounds() image.Rectangle {
	return v.renderer.Bounds()
}

func (v *scene) Render(dst *image.RGBA) {
	v.renderer.Render(v.world, dst)
}

func (v *scene) Strategy() tracer.Strategy {
	return v.renderer.Strategy()
}

func (v *scene) Light() tracer.Light {
	return v.world.Light
}

func (v *scene) SphereCenter() vec3.T {
	return v.sphere.Center
}

func (v *scene) Tick(dt float32) {
	if !v.wallClock || dt <= 0 {
		dt = 1 / float32(v.tickRate)
	}
	v.state = v.motion.Advance(v.state, dt)
	v.apply()
}

func (v *scene) Reset() {
	v.state = v.initial
	v.apply()
}

// apply copies the simulation state into the traced scene.
func (v *scene) apply() {
	p := v.state.Body.Position
	v.sphere.Center = vec3.T{float64(p[0]), float64(p[1]), float64(p[2])}
	v.sphere.Radius = float64(v.state.Body.Radius)
	if v.animate != nil {
		v.animate(v.state, v.world)
	}
}

// build wires the common pieces once the variant-specific fields are set.
func (v *scene) build(cam tracer.Camera, strategy tracer.Strategy, opts Options, body physics.Body, m tracer.Material) error {
	cam.Width, cam.Height = opts.Width, opts.Height
	r, err := tracer.NewRenderer(cam, strategy, opts.Supersample)
	if err != nil {
		return err
	}
	v.renderer = r
	v.sphere = tracer.NewSphere(vec3.Zero, float64(body.Radius), m)
	v.world.Add(v.sphere)
	v.initial = physics.NewState(body)
	v.Reset()
	return nil
}
