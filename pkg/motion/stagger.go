package motion

import "time"

// staggerItem wraps one member of a stagger with its start-delay state.
type staggerItem[T Animatable[T]] struct {
	anim         Animation[T]
	delay        time.Duration
	elapsedDelay time.Duration
	started      bool
	key          int
}

// defaultStaggerDelay is the base delay between consecutive item starts.
const defaultStaggerDelay = 50 * time.Millisecond

// Stagger runs sub-animations in parallel with a per-item start delay,
// producing a cascade. An item is idle until its own delay elapses and does
// not affect the aggregate before then.
//
// The aggregate value is the value of the last started item in insertion
// order, not a sum: in typical cascade usage only the most recently
// triggered item's position matters for the visible aggregate. Individual
// items remain queryable through handles the caller keeps.
type Stagger[T Animatable[T]] struct {
	items        []*staggerItem[T]
	baseDelay    time.Duration
	current      T
	allCompleted bool
	active       bool
	onComplete   func()
}

// NewStagger creates an empty stagger with the default 50ms base delay.
func NewStagger[T Animatable[T]]() *Stagger[T] {
	var zero T
	return &Stagger[T]{baseDelay: defaultStaggerDelay, current: zero.Zero()}
}

// Add appends an animation whose delay is the base delay times key, and
// returns the stagger for chaining.
func (s *Stagger[T]) Add(anim Animation[T], key int) *Stagger[T] {
	if key < 0 {
		key = 0
	}
	return s.AddWithDelay(anim, time.Duration(key)*s.baseDelay, key)
}

// AddWithDelay appends an animation with an explicit start delay.
func (s *Stagger[T]) AddWithDelay(anim Animation[T], delay time.Duration, key int) *Stagger[T] {
	s.items = append(s.items, &staggerItem[T]{anim: anim, delay: delay, key: key})
	s.active = true
	return s
}

// DelayBetween sets the base delay between consecutive item starts. It
// affects items added afterwards.
func (s *Stagger[T]) DelayBetween(delay time.Duration) *Stagger[T] {
	s.baseDelay = delay
	return s
}

// OnComplete sets a callback invoked once when every item has both elapsed
// its delay and finished its own animation.
func (s *Stagger[T]) OnComplete(fn func()) *Stagger[T] {
	s.onComplete = fn
	return s
}

// Start activates the stagger.
func (s *Stagger[T]) Start() *Stagger[T] {
	s.active = len(s.items) > 0
	return s
}

// Update accrues delay time for unstarted items and advances started ones by
// dt seconds. Items become eligible independently of each other's state.
func (s *Stagger[T]) Update(dt float64) (State, T, T) {
	var zero T
	z := zero.Zero()
	if !s.active || s.allCompleted {
		return StateCompleted, s.current, z
	}

	step := time.Duration(dt * float64(time.Second))
	allCompleted := true
	for _, item := range s.items {
		if !item.started {
			item.elapsedDelay += step
			if item.elapsedDelay < item.delay {
				allCompleted = false
				continue
			}
			item.started = true
		}
		if state, _, _ := item.anim.Update(dt); state == StateActive {
			allCompleted = false
		}
	}

	// Aggregate follows the last started item in insertion order.
	for i := len(s.items) - 1; i >= 0; i-- {
		if s.items[i].started {
			s.current = s.items[i].anim.Value()
			break
		}
	}

	if allCompleted {
		s.allCompleted = true
		if s.onComplete != nil {
			s.onComplete()
		}
		return StateCompleted, s.current, z
	}
	return StateActive, s.current, z
}

// Value returns the aggregate value.
func (s *Stagger[T]) Value() T { return s.current }

// Velocity returns zero; velocity is not well-defined for a cascade
// aggregate.
func (s *Stagger[T]) Velocity() T {
	var zero T
	return zero.Zero()
}

// Reset rewinds every item and its delay and reactivates the stagger.
func (s *Stagger[T]) Reset() {
	for _, item := range s.items {
		item.anim.Reset()
		item.elapsedDelay = 0
		item.started = false
	}
	s.allCompleted = false
	s.active = len(s.items) > 0
}

// IsActive reports whether any item still has work to do.
func (s *Stagger[T]) IsActive() bool { return s.active && !s.allCompleted }
