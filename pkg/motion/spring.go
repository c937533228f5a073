package motion

// Spring configures damped harmonic motion toward a target.
//
// Out-of-range values are clamped when the animation is constructed:
// stiffness and mass to a small positive floor, damping to zero.
type Spring struct {
	// Stiffness is the spring constant k. Higher values pull toward the
	// target harder. Default 100.
	Stiffness float64

	// Damping is the damping coefficient c. Higher values settle
	// oscillation faster. Default 10.
	Damping float64

	// Mass is the simulated mass m. Higher values add inertia. Default 1.
	Mass float64

	// InitialVelocity, when non-zero, is the starting speed along the
	// direction from initial toward target. A velocity carried over from
	// an interrupted animation takes precedence.
	InitialVelocity float64
}

// DefaultSpring returns the default spring configuration
// (stiffness 100, damping 10, mass 1).
func DefaultSpring() Spring {
	return Spring{Stiffness: 100, Damping: 10, Mass: 1}
}

const (
	// maxSpringStep caps dt so long frame gaps cannot destabilize the
	// integration.
	maxSpringStep = 0.064

	// minStiffness and minMass are the floors applied to configuration.
	minStiffness = 0.1
	minMass      = 0.1

	// settleFactor scales the per-type epsilon used for settle detection.
	// The baseline is the raw epsilon; raise this uniformly if a value
	// type proves numerically noisy.
	settleFactor = 1.0
)

// SpringAnimation drives a value toward a target with semi-implicit Euler
// integration of a damped harmonic oscillator. The animation settles when
// both velocity magnitude and displacement magnitude drop under the type's
// epsilon; a fast-moving value near the target is not complete, nor is a
// slow value far from it.
type SpringAnimation[T Animatable[T]] struct {
	initial  T
	current  T
	target   T
	velocity T
	cfg      Spring
	timing   Timing
	active   bool
}

// NewSpringAnimation creates a spring from initial to target.
//
// velocity is the starting velocity, normally the current velocity of
// whatever animation this one interrupts; carrying it over is what lets a
// redirected spring catch the value mid-flight instead of visibly stopping.
// When velocity is negligible and cfg.InitialVelocity is set, the starting
// velocity is cfg.InitialVelocity along the direction from initial to target.
func NewSpringAnimation[T Animatable[T]](initial, target, velocity T, cfg Spring, timing Timing) *SpringAnimation[T] {
	if cfg.Stiffness < minStiffness {
		cfg.Stiffness = minStiffness
	}
	if cfg.Damping < 0 {
		cfg.Damping = 0
	}
	if cfg.Mass < minMass {
		cfg.Mass = minMass
	}

	var zero T
	eps := zero.Epsilon()
	if velocity.Magnitude() < eps && cfg.InitialVelocity != 0 {
		direction := target.Sub(initial)
		if mag := direction.Magnitude(); mag > eps {
			velocity = direction.Scale(cfg.InitialVelocity / mag)
		} else {
			velocity = zero.Zero()
		}
	}

	return &SpringAnimation[T]{
		initial:  initial,
		current:  initial,
		target:   target,
		velocity: velocity,
		cfg:      cfg,
		timing:   timing,
		active:   true,
	}
}

// Update advances the physics by dt seconds.
func (a *SpringAnimation[T]) Update(dt float64) (State, T, T) {
	var zero T
	if !a.active {
		return StateCompleted, a.current, zero.Zero()
	}
	if !a.timing.HandleDelay(dt) {
		return StateActive, a.current, zero.Zero()
	}

	if a.step(dt) {
		return StateActive, a.current, a.velocity
	}

	if a.timing.HandleLoopCompletion() {
		// Spring loops restart from the origin each cycle, unlike tween
		// loops which flip progress.
		a.current = a.initial
		a.velocity = zero.Zero()
		return StateActive, a.current, a.velocity
	}
	a.active = false
	a.velocity = zero.Zero()
	return StateCompleted, a.current, a.velocity
}

// step integrates one tick and reports whether the spring is still moving.
func (a *SpringAnimation[T]) step(dt float64) bool {
	if dt > maxSpringStep {
		dt = maxSpringStep
	}

	displacement := a.target.Sub(a.current)
	springForce := displacement.Scale(a.cfg.Stiffness)
	dampingForce := a.velocity.Scale(a.cfg.Damping)
	acceleration := springForce.Sub(dampingForce).Scale(1 / a.cfg.Mass)

	a.velocity = a.velocity.Add(acceleration.Scale(dt))
	a.current = a.current.Add(a.velocity.Scale(dt))

	var zero T
	settle := zero.Epsilon() * settleFactor
	if a.velocity.Magnitude() < settle && displacement.Magnitude() < settle {
		// Snap exactly to the target to shed floating-point residue.
		a.current = a.target
		return false
	}
	return true
}

// Value returns the current value.
func (a *SpringAnimation[T]) Value() T { return a.current }

// Velocity returns the current velocity.
func (a *SpringAnimation[T]) Velocity() T { return a.velocity }

// Reset rewinds the spring to its initial value with zero velocity and
// reactivates it.
func (a *SpringAnimation[T]) Reset() {
	var zero T
	a.current = a.initial
	a.velocity = zero.Zero()
	a.timing.resetCycle()
	a.active = true
}

// IsActive reports whether the spring is still in progress.
func (a *SpringAnimation[T]) IsActive() bool { return a.active }
