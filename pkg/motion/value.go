package motion

import "time"

// Value is the long-lived handle for one animated property.
//
// A Value persists across many animation instances: each builder's terminal
// method installs a fresh engine seeded with the current value and velocity,
// so redirecting a running animation never causes a visual jump. The cell
// moves Idle → Animating when an engine is installed and back to Idle when
// the engine completes; a new animation started while Animating replaces the
// engine directly without passing through Idle.
//
// A Value is not safe for concurrent use; the host drives it with one
// Update call per tick (see [Driver]).
type Value[T Animatable[T]] struct {
	current   T
	velocity  T
	anim      Animation[T]
	active    bool
	callbacks []func()
}

// NewValue creates a value cell holding initial, with no active animation.
func NewValue[T Animatable[T]](initial T) *Value[T] {
	var zero T
	return &Value[T]{current: initial, velocity: zero.Zero()}
}

// Get returns the current value. It is a pure read and may be called any
// number of times per tick.
func (v *Value[T]) Get() T { return v.current }

// GetVelocity returns the current velocity.
func (v *Value[T]) GetVelocity() T { return v.velocity }

// Set jumps to value instantly: it clears the velocity and discards any
// active animation.
func (v *Value[T]) Set(value T) {
	var zero T
	v.current = value
	v.velocity = zero.Zero()
	v.anim = nil
	v.active = false
}

// Stop discards the active animation, freezing the value in place. Queued
// completion callbacks are dropped and never invoked.
func (v *Value[T]) Stop() {
	v.anim = nil
	v.active = false
	v.callbacks = nil
}

// IsAnimating reports whether an engine is installed and active.
func (v *Value[T]) IsAnimating() bool { return v.active }

// Update advances the active animation by dt seconds and returns true while
// it remains active. On completion the engine is cleared, the velocity
// zeroed, and queued completion callbacks run synchronously in order.
func (v *Value[T]) Update(dt float64) bool {
	if !v.active || v.anim == nil {
		return false
	}

	state, value, velocity := v.anim.Update(dt)
	v.current = value
	v.velocity = velocity

	if state == StateActive {
		return true
	}

	var zero T
	v.anim = nil
	v.active = false
	v.velocity = zero.Zero()
	callbacks := v.callbacks
	v.callbacks = nil
	for _, fn := range callbacks {
		fn()
	}
	return false
}

// Animate starts a default-spring animation toward target, carrying over the
// current velocity.
func (v *Value[T]) Animate(target T) *Value[T] {
	v.SpringTo(target, DefaultSpring(), Timing{})
	return v
}

// SpringTo installs a spring engine toward target, seeded with the cell's
// current value and velocity.
func (v *Value[T]) SpringTo(target T, cfg Spring, timing Timing) {
	v.install(NewSpringAnimation(v.current, target, v.velocity, cfg, timing))
}

// TweenTo installs a tween engine from the current value to target.
func (v *Value[T]) TweenTo(target T, cfg Tween, timing Timing) {
	v.install(NewTweenAnimation(v.current, target, cfg, timing))
}

// install makes anim the active engine.
func (v *Value[T]) install(anim Animation[T]) {
	v.anim = anim
	v.active = true
}

// addCompletionCallback queues fn to run when the active animation
// completes. Stop drops queued callbacks.
func (v *Value[T]) addCompletionCallback(fn func()) {
	v.callbacks = append(v.callbacks, fn)
}

// Spring returns a builder configuring a spring animation on this cell.
func (v *Value[T]) Spring() *SpringBuilder[T] {
	return &SpringBuilder[T]{value: v, cfg: DefaultSpring()}
}

// Tween returns a builder configuring a tween animation on this cell.
func (v *Value[T]) Tween() *TweenBuilder[T] {
	return &TweenBuilder[T]{value: v, cfg: DefaultTween()}
}

// Keyframes returns a builder configuring a keyframe animation on this cell.
func (v *Value[T]) Keyframes() *KeyframeBuilder[T] {
	return &KeyframeBuilder[T]{value: v, duration: 300 * time.Millisecond}
}

// Sequence returns a builder configuring a sequence animation on this cell.
func (v *Value[T]) Sequence() *SequenceBuilder[T] {
	return &SequenceBuilder[T]{value: v, seq: NewSequence[T]()}
}

// Group returns a builder configuring a group animation on this cell.
func (v *Value[T]) Group() *GroupBuilder[T] {
	return &GroupBuilder[T]{value: v, group: NewGroup[T]()}
}

// Stagger returns a builder configuring a staggered animation on this cell.
func (v *Value[T]) Stagger() *StaggerBuilder[T] {
	return &StaggerBuilder[T]{value: v, stagger: NewStagger[T]()}
}

// SpringBuilder configures a spring animation fluently. The terminal method
// is AnimateTo; Build instead returns a detached animation for use inside
// sequences, groups and staggers.
type SpringBuilder[T Animatable[T]] struct {
	value      *Value[T]
	cfg        Spring
	timing     Timing
	target     T
	hasTarget  bool
	onComplete func()
}

// Stiffness sets the spring constant.
func (b *SpringBuilder[T]) Stiffness(stiffness float64) *SpringBuilder[T] {
	b.cfg.Stiffness = stiffness
	return b
}

// Damping sets the damping coefficient.
func (b *SpringBuilder[T]) Damping(damping float64) *SpringBuilder[T] {
	b.cfg.Damping = damping
	return b
}

// Mass sets the simulated mass.
func (b *SpringBuilder[T]) Mass(mass float64) *SpringBuilder[T] {
	b.cfg.Mass = mass
	return b
}

// Velocity sets an initial push along the direction toward the target,
// taken from the magnitude of velocity.
func (b *SpringBuilder[T]) Velocity(velocity T) *SpringBuilder[T] {
	b.cfg.InitialVelocity = velocity.Magnitude()
	return b
}

// Delay defers the start of the animation.
func (b *SpringBuilder[T]) Delay(delay time.Duration) *SpringBuilder[T] {
	b.timing.Delay = delay
	return b
}

// Loop sets the loop mode.
func (b *SpringBuilder[T]) Loop(mode LoopMode) *SpringBuilder[T] {
	b.timing.Loop = mode
	return b
}

// OnComplete queues a callback fired once when the animation completes.
func (b *SpringBuilder[T]) OnComplete(fn func()) *SpringBuilder[T] {
	b.onComplete = fn
	return b
}

// To sets the target for a detached Build.
func (b *SpringBuilder[T]) To(target T) *SpringBuilder[T] {
	b.target = target
	b.hasTarget = true
	return b
}

// Build returns a detached spring animation from the cell's current value to
// the target set with To (defaulting to the current value), without
// installing it on the cell.
func (b *SpringBuilder[T]) Build() Animation[T] {
	target := b.target
	if !b.hasTarget {
		target = b.value.Get()
	}
	var zero T
	return NewSpringAnimation(b.value.Get(), target, zero.Zero(), b.cfg, b.timing)
}

// AnimateTo installs the configured spring on the cell, animating toward
// target with the cell's current value and velocity as the starting point.
func (b *SpringBuilder[T]) AnimateTo(target T) *Value[T] {
	if b.onComplete != nil {
		b.value.addCompletionCallback(b.onComplete)
	}
	b.value.SpringTo(target, b.cfg, b.timing)
	return b.value
}

// TweenBuilder configures a tween animation fluently. The terminal method is
// AnimateTo; Build instead returns a detached animation for composition.
type TweenBuilder[T Animatable[T]] struct {
	value      *Value[T]
	cfg        Tween
	timing     Timing
	target     T
	hasTarget  bool
	onComplete func()
}

// Duration sets the tween duration.
func (b *TweenBuilder[T]) Duration(d time.Duration) *TweenBuilder[T] {
	b.cfg.Duration = d
	return b
}

// Easing sets the easing function.
func (b *TweenBuilder[T]) Easing(easing Easing) *TweenBuilder[T] {
	b.cfg.Easing = easing
	return b
}

// Delay defers the start of the animation.
func (b *TweenBuilder[T]) Delay(delay time.Duration) *TweenBuilder[T] {
	b.timing.Delay = delay
	return b
}

// Loop sets the loop mode.
func (b *TweenBuilder[T]) Loop(mode LoopMode) *TweenBuilder[T] {
	b.timing.Loop = mode
	return b
}

// Direction sets the playback direction.
func (b *TweenBuilder[T]) Direction(d Direction) *TweenBuilder[T] {
	b.timing.Direction = d
	return b
}

// OnComplete queues a callback fired once when the animation completes.
func (b *TweenBuilder[T]) OnComplete(fn func()) *TweenBuilder[T] {
	b.onComplete = fn
	return b
}

// To sets the target for a detached Build.
func (b *TweenBuilder[T]) To(target T) *TweenBuilder[T] {
	b.target = target
	b.hasTarget = true
	return b
}

// Build returns a detached tween animation from the cell's current value to
// the target set with To (defaulting to the current value), without
// installing it on the cell.
func (b *TweenBuilder[T]) Build() Animation[T] {
	target := b.target
	if !b.hasTarget {
		target = b.value.Get()
	}
	return NewTweenAnimation(b.value.Get(), target, b.cfg, b.timing)
}

// AnimateTo installs the configured tween on the cell.
func (b *TweenBuilder[T]) AnimateTo(target T) *Value[T] {
	if b.onComplete != nil {
		b.value.addCompletionCallback(b.onComplete)
	}
	b.value.TweenTo(target, b.cfg, b.timing)
	return b.value
}

// KeyframeBuilder configures a keyframe animation fluently. The terminal
// method is Start.
type KeyframeBuilder[T Animatable[T]] struct {
	value      *Value[T]
	frames     []Keyframe[T]
	duration   time.Duration
	timing     Timing
	onComplete func()
}

// At adds a keyframe at the given normalized position.
func (b *KeyframeBuilder[T]) At(position float64, value T) *KeyframeBuilder[T] {
	b.frames = append(b.frames, Keyframe[T]{Position: position, Value: value})
	return b
}

// AtWithEasing adds a keyframe with an easing function for the following
// segment.
func (b *KeyframeBuilder[T]) AtWithEasing(position float64, value T, easing Easing) *KeyframeBuilder[T] {
	b.frames = append(b.frames, Keyframe[T]{Position: position, Value: value, Easing: easing})
	return b
}

// Duration sets the total timeline duration.
func (b *KeyframeBuilder[T]) Duration(d time.Duration) *KeyframeBuilder[T] {
	b.duration = d
	return b
}

// Delay defers the start of the animation.
func (b *KeyframeBuilder[T]) Delay(delay time.Duration) *KeyframeBuilder[T] {
	b.timing.Delay = delay
	return b
}

// Loop sets the loop mode.
func (b *KeyframeBuilder[T]) Loop(mode LoopMode) *KeyframeBuilder[T] {
	b.timing.Loop = mode
	return b
}

// Direction sets the playback direction.
func (b *KeyframeBuilder[T]) Direction(d Direction) *KeyframeBuilder[T] {
	b.timing.Direction = d
	return b
}

// OnComplete queues a callback fired once when the animation completes.
func (b *KeyframeBuilder[T]) OnComplete(fn func()) *KeyframeBuilder[T] {
	b.onComplete = fn
	return b
}

// Build returns the detached keyframe animation without installing it.
func (b *KeyframeBuilder[T]) Build() *KeyframeAnimation[T] {
	anim := NewKeyframeAnimation[T](b.duration).WithTiming(b.timing)
	for _, kf := range b.frames {
		anim.AtWithEasing(kf.Position, kf.Value, kf.Easing)
	}
	return anim
}

// Start installs the keyframe animation on the cell.
func (b *KeyframeBuilder[T]) Start() *Value[T] {
	if b.onComplete != nil {
		b.value.addCompletionCallback(b.onComplete)
	}
	b.value.install(b.Build())
	return b.value
}

// SequenceBuilder configures an ordered chain of animations on a cell. The
// terminal method is Start.
type SequenceBuilder[T Animatable[T]] struct {
	value      *Value[T]
	seq        *Sequence[T]
	onComplete func()
}

// Then appends an animation as the next step.
func (b *SequenceBuilder[T]) Then(anim Animation[T]) *SequenceBuilder[T] {
	b.seq.Then(anim)
	return b
}

// OnComplete queues a callback fired once when the final step completes.
func (b *SequenceBuilder[T]) OnComplete(fn func()) *SequenceBuilder[T] {
	b.onComplete = fn
	return b
}

// Start installs the sequence on the cell.
func (b *SequenceBuilder[T]) Start() *Value[T] {
	if b.onComplete != nil {
		b.value.addCompletionCallback(b.onComplete)
	}
	b.value.install(b.seq.Start())
	return b.value
}

// GroupBuilder configures a parallel group of animations on a cell. The
// terminal method is Start.
type GroupBuilder[T Animatable[T]] struct {
	value      *Value[T]
	group      *Group[T]
	onComplete func()
}

// Add appends an animation to the group.
func (b *GroupBuilder[T]) Add(anim Animation[T]) *GroupBuilder[T] {
	b.group.Add(anim)
	return b
}

// Loop sets the group's loop mode; all members reset together when the group
// cycles.
func (b *GroupBuilder[T]) Loop(mode LoopMode) *GroupBuilder[T] {
	b.group.timing.Loop = mode
	return b
}

// OnComplete queues a callback fired once when every member completes.
func (b *GroupBuilder[T]) OnComplete(fn func()) *GroupBuilder[T] {
	b.onComplete = fn
	return b
}

// Start installs the group on the cell.
func (b *GroupBuilder[T]) Start() *Value[T] {
	if b.onComplete != nil {
		b.value.addCompletionCallback(b.onComplete)
	}
	b.value.install(b.group.Start())
	return b.value
}

// StaggerBuilder configures a staggered cascade on a cell. The terminal
// method is Start.
type StaggerBuilder[T Animatable[T]] struct {
	value      *Value[T]
	stagger    *Stagger[T]
	onComplete func()
}

// DelayBetween sets the base delay between consecutive item starts.
func (b *StaggerBuilder[T]) DelayBetween(delay time.Duration) *StaggerBuilder[T] {
	b.stagger.DelayBetween(delay)
	return b
}

// Add appends an animation whose delay is the base delay times key.
func (b *StaggerBuilder[T]) Add(anim Animation[T], key int) *StaggerBuilder[T] {
	b.stagger.Add(anim, key)
	return b
}

// AddWithDelay appends an animation with an explicit start delay.
func (b *StaggerBuilder[T]) AddWithDelay(anim Animation[T], delay time.Duration, key int) *StaggerBuilder[T] {
	b.stagger.AddWithDelay(anim, delay, key)
	return b
}

// OnComplete queues a callback fired once when every item completes.
func (b *StaggerBuilder[T]) OnComplete(fn func()) *StaggerBuilder[T] {
	b.onComplete = fn
	return b
}

// Start installs the stagger on the cell.
func (b *StaggerBuilder[T]) Start() *Value[T] {
	if b.onComplete != nil {
		b.value.addCompletionCallback(b.onComplete)
	}
	b.value.install(b.stagger.Start())
	return b.value
}
