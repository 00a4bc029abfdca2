package component

import "github.com/jakecoffman/cp"

// MotionState is either Idle or Transitioning.
type MotionState interface {
	motionState()
}

type Idle struct{}

// Transitioning moves toward a tile center.
type Transitioning struct {
	Target cp.Vector
}

func (Idle) motionState()          {}
func (Transitioning) motionState() {}

type Motion struct {
	State MotionState
}

func NewMotion() *Motion {
	return &Motion{State: Idle{}}
}

// Idle treats a zero Motion as idle.
func (m *Motion) Idle() bool {
	switch m.State.(type) {
	case Transitioning:
		return false
	default:
		return true
	}
}

func (m *Motion) Target() (cp.Vector, bool) {
	t, ok := m.State.(Transitioning)
	if !ok {
		return cp.Vector{}, false
	}
	return t.Target, true
}

// Begin starts a transition. A command issued mid-transition is dropped.
func (m *Motion) Begin(target cp.Vector) bool {
	if !m.Idle() {
		return false
	}
	m.State = Transitioning{Target: target}
	return true
}

func (m *Motion) Settle() {
	m.State = Idle{}
}

var MotionComponent = NewComponent[Motion]()
