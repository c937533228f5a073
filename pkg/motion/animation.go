package motion

import "fmt"

// State reports whether an animation is still producing new values.
type State int

const (
	// StateActive means the animation is still running.
	StateActive State = iota
	// StateCompleted means the animation has finished.
	StateCompleted
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateCompleted:
		return "completed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Animation is the per-frame stepping contract shared by every engine kind.
//
// Update advances the animation by dt seconds and returns the resulting
// state, the current value, and the current velocity. Composite engines
// ([Sequence], [Group], [Stagger]) call Update on their members synchronously
// within their own Update, so "parallel" means logically concurrent within
// one tick, never multi-threaded.
type Animation[T Animatable[T]] interface {
	// Update advances the animation by dt seconds.
	Update(dt float64) (State, T, T)

	// Value returns the current value without advancing.
	Value() T

	// Velocity returns the current velocity without advancing.
	Velocity() T

	// Reset rewinds the animation to its initial state and reactivates it.
	Reset()

	// IsActive reports whether the animation is still in progress.
	IsActive() bool
}
