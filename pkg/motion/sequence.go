package motion

// sequenceStep wraps one animation in a sequence with its progress flags.
type sequenceStep[T Animatable[T]] struct {
	anim      Animation[T]
	started   bool
	completed bool
}

// Sequence runs sub-animations strictly one after another: step N+1 never
// updates before step N reports completion. Heterogeneous engine kinds are
// allowed. A step that completes advances the sequence on the same tick, but
// the new step only starts consuming time on the next tick, so it never
// receives a leftover fraction of the tick that finished its predecessor.
type Sequence[T Animatable[T]] struct {
	steps      []*sequenceStep[T]
	index      int
	current    T
	velocity   T
	active     bool
	onComplete func()
}

// NewSequence creates an empty sequence. A sequence with zero steps
// completes immediately with the zero value.
func NewSequence[T Animatable[T]]() *Sequence[T] {
	var zero T
	z := zero.Zero()
	return &Sequence[T]{current: z, velocity: z}
}

// Then appends an animation as the next step and returns the sequence for
// chaining.
func (s *Sequence[T]) Then(anim Animation[T]) *Sequence[T] {
	s.steps = append(s.steps, &sequenceStep[T]{anim: anim})
	s.active = true
	return s
}

// OnComplete sets a callback invoked once when the final step completes.
func (s *Sequence[T]) OnComplete(fn func()) *Sequence[T] {
	s.onComplete = fn
	return s
}

// Start marks the first step as started and activates the sequence.
func (s *Sequence[T]) Start() *Sequence[T] {
	if len(s.steps) > 0 {
		s.steps[0].started = true
		s.active = true
	}
	return s
}

// Update drives the current step by dt seconds.
func (s *Sequence[T]) Update(dt float64) (State, T, T) {
	var zero T
	if !s.active {
		return StateCompleted, s.current, zero.Zero()
	}
	if len(s.steps) == 0 {
		s.active = false
		return StateCompleted, s.current, zero.Zero()
	}

	step := s.steps[s.index]
	if !step.started {
		step.started = true
	}

	state, value, velocity := step.anim.Update(dt)
	s.current = value
	s.velocity = velocity

	if state != StateCompleted {
		return StateActive, s.current, s.velocity
	}
	step.completed = true

	if s.index < len(s.steps)-1 {
		s.index++
		s.steps[s.index].started = true
		return StateActive, s.current, s.velocity
	}

	s.active = false
	if s.onComplete != nil {
		s.onComplete()
	}
	return StateCompleted, s.current, zero.Zero()
}

// Value returns the current value.
func (s *Sequence[T]) Value() T { return s.current }

// Velocity returns the current velocity.
func (s *Sequence[T]) Velocity() T { return s.velocity }

// Reset rewinds every step and reactivates step 0.
func (s *Sequence[T]) Reset() {
	for _, step := range s.steps {
		step.anim.Reset()
		step.started = false
		step.completed = false
	}
	s.index = 0
	if len(s.steps) > 0 {
		s.steps[0].started = true
	}
	s.active = len(s.steps) > 0
}

// IsActive reports whether the sequence is still in progress.
func (s *Sequence[T]) IsActive() bool { return s.active }
