package physics

// Axis indices into Position and Velocity.
const (
	X = iota
	Y
	Z
)

// Body is the animated sphere: center position, velocity (units per second) and radius.
type Body struct {
	Position [3]float32
	Velocity [3]float32
	Radius   float32
}

// NewBody returns a body at position moving with velocity. A non-positive radius becomes 1.
func NewBody(position, velocity [3]float32, radius float32) Body {
	if radius <= 0 {
		radius = 1
	}
	return Body{
		Position: position,
		Velocity: velocity,
		Radius:   radius,
	}
}

// State is everything carried from one tick to the next. It is a value:
// a tick takes the previous State and returns the next one.
type State struct {
	Body  Body
	Time  float32 // simulated seconds
	Ticks uint64
}

// NewState returns the state at time zero for b.
func NewState(b Body) State {
	return State{Body: b}
}

// Motion advances a State by dt seconds.
type Motion interface {
	Advance(s State, dt float32) State
}

// Simulate applies m to s n times with a fixed step dt and returns the final state.
func Simulate(m Motion, s State, dt float32, n int) State {
	for i := 0; i < n; i++ {
		s = m.Advance(s, dt)
	}
	return s
}
