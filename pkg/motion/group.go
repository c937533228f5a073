package motion

// groupItem wraps one member of a group with its completion flag.
type groupItem[T Animatable[T]] struct {
	anim      Animation[T]
	completed bool
}

// Group runs sub-animations logically in parallel within each tick and
// combines their outputs additively: the reported value is the sum of every
// member's value. Members therefore should animate disjoint axes of a
// composite type (or otherwise have add-transparent zeros), or the aggregate
// double-counts. Members stay independently readable through their own
// handles.
//
// Completion requires every member to have completed; with a looping Timing
// all members reset together when the group cycles.
type Group[T Animatable[T]] struct {
	items      []*groupItem[T]
	timing     Timing
	active     bool
	onComplete func()
}

// NewGroup creates an empty group. A group with zero members completes
// immediately with the zero value.
func NewGroup[T Animatable[T]]() *Group[T] {
	return &Group[T]{}
}

// Add appends an animation to the group and returns the group for chaining.
func (g *Group[T]) Add(anim Animation[T]) *Group[T] {
	g.items = append(g.items, &groupItem[T]{anim: anim})
	return g
}

// WithTiming replaces the group's timing configuration. Only the loop mode
// and its callback are meaningful; member delays belong to the members.
func (g *Group[T]) WithTiming(timing Timing) *Group[T] {
	g.timing = timing
	return g
}

// OnComplete sets a callback invoked once when the whole group terminally
// completes.
func (g *Group[T]) OnComplete(fn func()) *Group[T] {
	g.onComplete = fn
	return g
}

// Start activates the group.
func (g *Group[T]) Start() *Group[T] {
	if len(g.items) > 0 {
		g.active = true
		for _, item := range g.items {
			item.completed = false
		}
	}
	return g
}

// Update advances every non-completed member by dt seconds. Members are
// updated in list order but combined commutatively, so order does not affect
// the output.
func (g *Group[T]) Update(dt float64) (State, T, T) {
	var zero T
	z := zero.Zero()
	if !g.active || len(g.items) == 0 {
		g.active = false
		return StateCompleted, z, z
	}

	allCompleted := true
	value := z
	velocity := z
	for _, item := range g.items {
		if item.completed {
			value = value.Add(item.anim.Value())
			continue
		}
		state, v, vel := item.anim.Update(dt)
		value = value.Add(v)
		velocity = velocity.Add(vel)
		if state == StateCompleted {
			item.completed = true
		} else {
			allCompleted = false
		}
	}

	if !allCompleted {
		return StateActive, value, velocity
	}

	if g.timing.HandleLoopCompletion() {
		for _, item := range g.items {
			item.anim.Reset()
			item.completed = false
		}
		return StateActive, value, velocity
	}

	g.active = false
	if g.onComplete != nil {
		g.onComplete()
	}
	return StateCompleted, value, velocity
}

// Value returns the sum of every member's current value.
func (g *Group[T]) Value() T {
	var zero T
	value := zero.Zero()
	for _, item := range g.items {
		value = value.Add(item.anim.Value())
	}
	return value
}

// Velocity returns the sum of every member's current velocity.
func (g *Group[T]) Velocity() T {
	var zero T
	velocity := zero.Zero()
	for _, item := range g.items {
		velocity = velocity.Add(item.anim.Velocity())
	}
	return velocity
}

// Reset rewinds every member and reactivates the group.
func (g *Group[T]) Reset() {
	for _, item := range g.items {
		item.anim.Reset()
		item.completed = false
	}
	g.timing.resetCycle()
	g.active = len(g.items) > 0
}

// IsActive reports whether the group is still in progress.
func (g *Group[T]) IsActive() bool { return g.active }
