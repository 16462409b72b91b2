package physics

import "github.com/chewxy/math32"

// Oscillator drives one axis as Center + Amplitude*sin(Rate*Time).
// Velocity on that axis is set to the finite difference of the last step.
type Oscillator struct {
	Axis      int
	Center    float32
	Amplitude float32
	Rate      float32 // radians per second
}

// Advance moves time forward by dt and places the body on the curve.
func (o Oscillator) Advance(s State, dt float32) State {
	s.Time += dt
	s.Ticks++
	prev := s.Body.Position[o.Axis]
	next := o.Center + o.Amplitude*math32.Sin(o.Rate*s.Time)
	s.Body.Position[o.Axis] = next
	if dt > 0 {
		s.Body.Velocity[o.Axis] = (next - prev) / dt
	}
	return s
}

// Range returns the interval the oscillating coordinate stays within.
func (o Oscillator) Range() (lo, hi float32) {
	a := math32.Abs(o.Amplitude)
	return o.Center - a, o.Center + a
}

// Reflector moves one axis linearly and bounces between Min and Max.
// Overshoot past a bound is mirrored back inside and the velocity flips sign,
// so the coordinate never leaves [Min, Max].
type Reflector struct {
	Axis int
	Min  float32
	Max  float32
}

// Advance integrates position by velocity*dt and reflects at the bounds.
func (r Reflector) Advance(s State, dt float32) State {
	s.Time += dt
	s.Ticks++
	v := s.Body.Velocity[r.Axis]
	p := s.Body.Position[r.Axis] + v*dt
	if r.Max <= r.Min {
		s.Body.Position[r.Axis] = r.Min
		s.Body.Velocity[r.Axis] = 0
		return s
	}
	for p > r.Max || p < r.Min {
		if p > r.Max {
			p = 2*r.Max - p
		} else {
			p = 2*r.Min - p
		}
		v = -v
	}
	s.Body.Position[r.Axis] = p
	s.Body.Velocity[r.Axis] = v
	return s
}

// Range returns [Min, Max].
func (r Reflector) Range() (lo, hi float32) {
	return r.Min, r.Max
}
