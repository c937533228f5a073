package motion

import "time"

// Tween configures a time-progress-based animation: a duration plus an
// easing function applied to normalized progress.
type Tween struct {
	// Duration is the length of one animation cycle. A non-positive
	// duration is treated as already complete (progress 1.0).
	Duration time.Duration

	// Easing transforms linear progress. Nil means [Linear].
	Easing Easing
}

// DefaultTween returns the default tween configuration: 300ms, linear.
func DefaultTween() Tween {
	return Tween{Duration: 300 * time.Millisecond, Easing: Linear}
}

// TweenAnimation interpolates between an initial and a target value over a
// fixed duration. Velocity is a finite-difference estimate of the eased
// position, suitable for display purposes such as seeding a follow-up
// spring, not for exact physics.
type TweenAnimation[T Animatable[T]] struct {
	initial  T
	current  T
	target   T
	velocity T
	cfg      Tween
	timing   Timing
	elapsed  time.Duration
	active   bool
}

// NewTweenAnimation creates a tween from initial to target with the given
// configuration and timing.
func NewTweenAnimation[T Animatable[T]](initial, target T, cfg Tween, timing Timing) *TweenAnimation[T] {
	var zero T
	return &TweenAnimation[T]{
		initial:  initial,
		current:  initial,
		target:   target,
		velocity: zero.Zero(),
		cfg:      cfg,
		timing:   timing,
		active:   true,
	}
}

// Update advances the tween by dt seconds.
func (a *TweenAnimation[T]) Update(dt float64) (State, T, T) {
	var zero T
	if !a.active {
		return StateCompleted, a.current, zero.Zero()
	}
	if !a.timing.HandleDelay(dt) {
		return StateActive, a.current, zero.Zero()
	}

	a.elapsed += time.Duration(dt * float64(time.Second))

	progress := a.progressAt(a.elapsed)
	reverse := a.timing.IsReverse()
	if reverse {
		progress = 1 - progress
	}
	a.current = a.initial.Lerp(a.target, a.ease(progress))

	// Finite-difference velocity: re-evaluate one tick earlier.
	if dt > 0 {
		prevProgress := a.progressAt(a.elapsed - time.Duration(dt*float64(time.Second)))
		if reverse {
			prevProgress = 1 - prevProgress
		}
		prev := a.initial.Lerp(a.target, a.ease(prevProgress))
		a.velocity = a.current.Sub(prev).Scale(1 / dt)
	}

	completed := progress >= 1
	if reverse {
		completed = progress <= 0
	}
	if !completed {
		return StateActive, a.current, a.velocity
	}

	// Snap exactly to the end value to shed floating-point residue.
	if reverse {
		a.current = a.initial
	} else {
		a.current = a.target
	}
	if a.timing.HandleLoopCompletion() {
		a.elapsed = 0
		return StateActive, a.current, a.velocity
	}
	a.active = false
	a.velocity = zero.Zero()
	return StateCompleted, a.current, a.velocity
}

// progressAt maps elapsed time to clamped progress, treating a non-positive
// duration as complete.
func (a *TweenAnimation[T]) progressAt(elapsed time.Duration) float64 {
	d := a.cfg.Duration.Seconds()
	if d <= 0 {
		return 1
	}
	return clamp01(elapsed.Seconds() / d)
}

func (a *TweenAnimation[T]) ease(t float64) float64 {
	if a.cfg.Easing == nil {
		return t
	}
	return a.cfg.Easing(t)
}

// Value returns the current value.
func (a *TweenAnimation[T]) Value() T { return a.current }

// Velocity returns the most recent velocity estimate.
func (a *TweenAnimation[T]) Velocity() T { return a.velocity }

// Reset rewinds the tween to its initial value and reactivates it.
func (a *TweenAnimation[T]) Reset() {
	var zero T
	a.current = a.initial
	a.velocity = zero.Zero()
	a.elapsed = 0
	a.timing.resetCycle()
	a.active = true
}

// IsActive reports whether the tween is still in progress.
func (a *TweenAnimation[T]) IsActive() bool { return a.active }
