package motion

import (
	"fmt"
	"time"
)

// LoopMode is the policy for whether an animation cycle repeats after first
// completion. The zero value plays once.
type LoopMode struct {
	infinite bool
	count    uint
}

// LoopNone plays the animation a single time.
var LoopNone = LoopMode{}

// LoopInfinite repeats the animation indefinitely.
var LoopInfinite = LoopMode{infinite: true}

// LoopCount repeats the animation n times in total.
func LoopCount(n uint) LoopMode { return LoopMode{count: n} }

// String returns a human-readable representation of the loop mode.
func (m LoopMode) String() string {
	switch {
	case m.infinite:
		return "infinite"
	case m.count > 0:
		return fmt.Sprintf("count(%d)", m.count)
	default:
		return "none"
	}
}

// Direction is the playback direction of an animation.
type Direction int

const (
	// Forward plays the animation start to end.
	Forward Direction = iota
	// Reverse plays the animation end to start.
	Reverse
	// Alternate flips direction on every loop cycle, starting forward.
	Alternate
	// AlternateReverse flips direction on every loop cycle, starting reversed.
	AlternateReverse
)

// String returns a human-readable representation of the direction.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	case Alternate:
		return "alternate"
	case AlternateReverse:
		return "alternate-reverse"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Timing holds the delay, loop and direction state shared by every animation
// kind. A Timing is constructed fresh per animation start, mutated every
// frame by delay and loop handling, and discarded with its animation.
//
// Timing has no error conditions: malformed configuration degrades to
// clamped or defaulted behavior rather than failing.
type Timing struct {
	// Loop controls repetition after each cycle completes.
	Loop LoopMode

	// Direction is the playback direction.
	Direction Direction

	// Delay is the remaining time before the animation starts mutating
	// its value. Decremented by HandleDelay.
	Delay time.Duration

	// CurrentLoop counts completed cycles.
	CurrentLoop uint

	// OnComplete runs when looping is exhausted: immediately for LoopNone,
	// after the final cycle for LoopCount, never for LoopInfinite. It is
	// invoked synchronously inside the driving Update call and must not
	// block.
	OnComplete func()

	delayElapsed bool
}

// HandleDelay consumes dt from the remaining start delay. It returns true
// when the delay has elapsed and the caller may mutate its value this tick,
// false when the caller must skip value mutation. The tick that exhausts the
// delay returns true, so its full dt also advances the animation.
func (t *Timing) HandleDelay(dt float64) bool {
	if t.delayElapsed {
		return true
	}
	if t.Delay <= 0 {
		t.delayElapsed = true
		return true
	}
	step := time.Duration(dt * float64(time.Second))
	if step >= t.Delay {
		t.Delay = 0
		t.delayElapsed = true
		return true
	}
	t.Delay -= step
	return false
}

// HandleLoopCompletion is called when the underlying engine finishes a
// cycle. It returns true when the animation should run another cycle and
// false when it is terminally complete. The completion callback fires at
// most once, on terminal completion only.
func (t *Timing) HandleLoopCompletion() bool {
	switch {
	case t.Loop.infinite:
		t.CurrentLoop++
		t.flipAlternating()
		return true
	case t.Loop.count > 0:
		t.CurrentLoop++
		if t.CurrentLoop >= t.Loop.count {
			t.fireOnComplete()
			return false
		}
		t.flipAlternating()
		return true
	default:
		t.fireOnComplete()
		return false
	}
}

// IsReverse reports whether the current cycle plays end to start.
func (t *Timing) IsReverse() bool {
	switch t.Direction {
	case Forward:
		return false
	case Reverse:
		return true
	case Alternate:
		return t.CurrentLoop%2 == 1
	case AlternateReverse:
		return t.CurrentLoop%2 == 0
	default:
		return false
	}
}

func (t *Timing) flipAlternating() {
	switch t.Direction {
	case Alternate:
		t.Direction = AlternateReverse
	case AlternateReverse:
		t.Direction = Alternate
	}
}

func (t *Timing) fireOnComplete() {
	if t.OnComplete != nil {
		t.OnComplete()
		t.OnComplete = nil
	}
}

// resetCycle rewinds loop and delay bookkeeping for Animation.Reset.
func (t *Timing) resetCycle() {
	t.CurrentLoop = 0
	t.delayElapsed = false
}
