package physics

import "github.com/chewxy/math32"

// World integrates a body under constant gravity above a horizontal floor.
// When the bottom of the body passes the floor it is put back on the floor and
// its vertical speed is reversed and scaled by Restitution.
type World struct {
	Gravity     [3]float32
	Floor       float32
	Restitution float32
}

// NewWorld returns a world with gravity (0, -9.8, 0), a floor at Y=0 and restitution 0.9.
func NewWorld() World {
	return World{
		Gravity:     [3]float32{0, -9.8, 0},
		Floor:       0,
		Restitution: 0.9,
	}
}

// SetGravity sets the gravity vector (e.g. [0, -9.8, 0] for down in -Y).
func (w *World) SetGravity(g [3]float32) {
	w.Gravity = g
}

// Advance steps the body by dt: position first, then velocity, then the floor bounce.
func (w World) Advance(s State, dt float32) State {
	s.Time += dt
	s.Ticks++
	b := &s.Body
	for i := range b.Position {
		b.Position[i] += b.Velocity[i] * dt
		b.Velocity[i] += w.Gravity[i] * dt
	}
	if b.Position[Y]-b.Radius < w.Floor {
		b.Position[Y] = w.Floor + b.Radius
		b.Velocity[Y] = math32.Abs(b.Velocity[Y]) * w.Restitution
	}
	return s
}

// Peak returns the highest Y the body can reach from s under continuous motion.
// The discrete integration may overshoot it by at most one step of travel.
func (w World) Peak(s State) float32 {
	g := math32.Abs(w.Gravity[Y])
	vy := s.Body.Velocity[Y]
	if g == 0 || vy <= 0 {
		return s.Body.Position[Y]
	}
	return s.Body.Position[Y] + vy*vy/(2*g)
}
