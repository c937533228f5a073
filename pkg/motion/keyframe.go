package motion

import (
	"sort"
	"time"
)

// Keyframe pairs a normalized timeline position with a value and an optional
// easing function applied on the segment from this keyframe to the next.
type Keyframe[T Animatable[T]] struct {
	// Position is the normalized timeline position in [0, 1].
	Position float64

	// Value is the value at this keyframe.
	Value T

	// Easing applies on the segment toward the next keyframe. Nil means
	// linear.
	Easing Easing
}

// KeyframeAnimation animates through ordered breakpoints over a total
// duration. Positions are clamped to [0, 1] and duplicate positions
// overwrite. When the playhead falls outside all keyframes, the value
// clamps to the nearest boundary keyframe.
type KeyframeAnimation[T Animatable[T]] struct {
	frames    []Keyframe[T] // sorted by Position
	duration  time.Duration
	timing    Timing
	elapsed   time.Duration
	current   T
	prevValue T
	velocity  T
	active    bool
}

// NewKeyframeAnimation creates an empty keyframe animation with the given
// total duration. An animation with no keyframes stays at the zero value and
// completes immediately.
func NewKeyframeAnimation[T Animatable[T]](duration time.Duration) *KeyframeAnimation[T] {
	var zero T
	z := zero.Zero()
	return &KeyframeAnimation[T]{
		duration:  duration,
		current:   z,
		prevValue: z,
		velocity:  z,
		active:    true,
	}
}

// At adds a keyframe at the given position, clamped to [0, 1]. Adding at an
// existing position replaces that keyframe. Returns the animation for
// chaining.
func (a *KeyframeAnimation[T]) At(position float64, value T) *KeyframeAnimation[T] {
	return a.AtWithEasing(position, value, nil)
}

// AtWithEasing adds a keyframe with an easing function for the segment
// toward the next keyframe.
func (a *KeyframeAnimation[T]) AtWithEasing(position float64, value T, easing Easing) *KeyframeAnimation[T] {
	position = clamp01(position)
	i := sort.Search(len(a.frames), func(i int) bool {
		return a.frames[i].Position >= position
	})
	kf := Keyframe[T]{Position: position, Value: value, Easing: easing}
	if i < len(a.frames) && a.frames[i].Position == position {
		a.frames[i] = kf
		return a
	}
	a.frames = append(a.frames, Keyframe[T]{})
	copy(a.frames[i+1:], a.frames[i:])
	a.frames[i] = kf
	return a
}

// WithTiming replaces the animation's timing configuration.
func (a *KeyframeAnimation[T]) WithTiming(timing Timing) *KeyframeAnimation[T] {
	a.timing = timing
	return a
}

// Update advances the timeline by dt seconds.
func (a *KeyframeAnimation[T]) Update(dt float64) (State, T, T) {
	var zero T
	z := zero.Zero()
	if !a.active {
		return StateCompleted, a.current, z
	}
	if len(a.frames) == 0 {
		a.active = false
		return StateCompleted, a.current, z
	}
	if !a.timing.HandleDelay(dt) {
		return StateActive, a.current, z
	}

	a.prevValue = a.current
	a.elapsed += time.Duration(dt * float64(time.Second))

	if a.elapsed >= a.duration {
		return a.finishCycle()
	}

	position := 1.0
	if d := a.duration.Seconds(); d > 0 {
		position = clamp01(a.elapsed.Seconds() / d)
	}
	if a.timing.IsReverse() {
		position = 1 - position
	}

	prev, next := a.surrounding(position)
	switch {
	case prev != nil && next != nil:
		segment := next.Position - prev.Position
		segmentT := 0.0
		if segment > 0 {
			segmentT = (position - prev.Position) / segment
		}
		if prev.Easing != nil {
			segmentT = prev.Easing(segmentT)
		}
		a.current = prev.Value.Lerp(next.Value, segmentT)
	case prev != nil:
		a.current = prev.Value
	case next != nil:
		a.current = next.Value
	}

	// Crude derivative estimate; only roughly indicates direction and
	// speed for chained consumers.
	if dt > 0 {
		a.velocity = a.prevValue.Sub(a.current).Scale(dt)
	}

	return StateActive, a.current, a.velocity
}

// finishCycle handles the playhead reaching the end of the timeline.
func (a *KeyframeAnimation[T]) finishCycle() (State, T, T) {
	var zero T
	z := zero.Zero()
	if a.timing.HandleLoopCompletion() {
		a.elapsed = 0
		// Jump to the cycle's starting keyframe for the next loop.
		if a.timing.IsReverse() {
			a.current = a.frames[len(a.frames)-1].Value
		} else {
			a.current = a.frames[0].Value
		}
		a.prevValue = a.current
		return StateActive, a.current, z
	}
	a.active = false
	if a.timing.IsReverse() {
		a.current = a.frames[0].Value
	} else {
		a.current = a.frames[len(a.frames)-1].Value
	}
	return StateCompleted, a.current, z
}

// surrounding finds the bounding keyframe pair for a position: prev is the
// greatest keyframe at or before it, next the smallest strictly after it.
func (a *KeyframeAnimation[T]) surrounding(position float64) (prev, next *Keyframe[T]) {
	for i := range a.frames {
		if a.frames[i].Position <= position {
			prev = &a.frames[i]
		} else {
			next = &a.frames[i]
			break
		}
	}
	return prev, next
}

// Value returns the current value.
func (a *KeyframeAnimation[T]) Value() T { return a.current }

// Velocity returns the most recent velocity estimate.
func (a *KeyframeAnimation[T]) Velocity() T { return a.velocity }

// Reset rewinds the timeline to the first keyframe and reactivates it.
func (a *KeyframeAnimation[T]) Reset() {
	var zero T
	a.elapsed = 0
	a.velocity = zero.Zero()
	if len(a.frames) > 0 {
		a.current = a.frames[0].Value
		a.prevValue = a.current
	}
	a.timing.resetCycle()
	a.active = true
}

// IsActive reports whether the timeline is still in progress.
func (a *KeyframeAnimation[T]) IsActive() bool { return a.active }
