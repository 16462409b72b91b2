package graphics

// State is the frame loop state.
type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	if s == Stopped {
		return "stopped"
	}
	return "running"
}

// Driver is the window system seen by Loop.
type Driver interface {
	ShouldClose() bool
	BeginFrame()
	EndFrame()
}

// Loop is the two-state frame loop. It stays Running until the driver reports a
// close request; Stopped is terminal.
type Loop struct {
	driver Driver
	update func()
	draw   func()
	state  State
	frames uint64
}

// NewLoop returns a Running loop. update and draw may be nil.
func NewLoop(d Driver, update, draw func()) *Loop {
	return &Loop{driver: d, update: update, draw: draw}
}

// State returns the current state.
func (l *Loop) State() State {
	return l.state
}

// Frames returns the number of frames presented.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Step runs one frame: poll quit, update, then draw between BeginFrame and EndFrame.
func (l *Loop) Step() State {
	if l.state == Stopped {
		return Stopped
	}
	if l.driver.ShouldClose() {
		l.state = Stopped
		return l.state
	}
	if l.update != nil {
		l.update()
	}
	l.driver.BeginFrame()
	if l.draw != nil {
		l.draw()
	}
	l.driver.EndFrame()
	l.frames++
	return l.state
}

// Run steps until the loop stops.
func (l *Loop) Run() {
	for l.Step() == Running {
	}
}
