// Package motion provides an animation value engine: given an initial value
// and a target, it computes a time-varying sequence of interpolated values
// according to one of several motion models and reports completion so
// dependent code can react.
//
// # Core Components
//
//   - [Animatable]: the constraint all animatable value types satisfy. The
//     minimal algebra (zero, epsilon, magnitude, scale, add, sub, lerp) is
//     enough for both time-based and physics-based animation. [Float] is the
//     numeric primitive implementation.
//
//   - [Value]: the long-lived per-property handle. It holds the current value
//     and velocity, dispatches frame updates to whichever engine is active,
//     and exposes fluent builders for every animation kind.
//
//   - Engines: [TweenAnimation] (duration + easing), [SpringAnimation]
//     (damped harmonic oscillator), [KeyframeAnimation] (multi-point
//     timeline), and the composites [Sequence], [Group] and [Stagger].
//
//   - [Driver]: a frame-clock adapter that steps registered values once per
//     tick. Hosts with their own frame loop can call [Value.Update] directly
//     instead.
//
// # Basic Usage
//
//	v := motion.NewValue(motion.Float(0))
//	v.Spring().Stiffness(180).Damping(12).AnimateTo(motion.Float(200))
//
//	// Once per frame, with dt in seconds:
//	v.Update(dt)
//	render(v.Get())
package motion

// Animatable is the set of operations an animated value type must provide.
//
// The type parameter is the implementing type itself (the usual
// self-referential constraint), so engines are instantiated as
// e.g. Value[Float] or Value[properties.Transform].
//
// Implementations must satisfy the interpolation boundary law
// Lerp(target, 0) == receiver and Lerp(target, 1) == target (within
// Epsilon), and Magnitude must be zero only for the zero value.
type Animatable[T any] interface {
	// Zero returns the additive identity for the type.
	Zero() T

	// Epsilon returns the smallest meaningful difference between two
	// values. It drives completion detection and approximate equality.
	Epsilon() float64

	// Magnitude returns a non-negative scalar norm of the value.
	Magnitude() float64

	// Scale multiplies the value by a scalar factor.
	Scale(factor float64) T

	// Add combines two values component-wise.
	Add(other T) T

	// Sub returns the component-wise difference from other.
	Sub(other T) T

	// Lerp interpolates from the receiver toward target by t in [0, 1].
	// Implementations clamp t.
	Lerp(target T, t float64) T

	// FromParameter maps a normalized driver parameter to a value of the
	// type. Most types derive it as Zero().Scale(p); numeric primitives
	// identity-map the parameter instead.
	FromParameter(p float64) T
}

// ApproxEqual reports whether a and b differ by less than the type's epsilon.
func ApproxEqual[T Animatable[T]](a, b T) bool {
	return a.Sub(b).Magnitude() < a.Epsilon()
}

// Float is the float64 animatable primitive.
type Float float64

// Zero returns 0.
func (Float) Zero() Float { return 0 }

// Epsilon returns the smallest meaningful difference between two Floats.
func (Float) Epsilon() float64 { return 0.001 }

// Magnitude returns the absolute value.
func (f Float) Magnitude() float64 {
	if f < 0 {
		return float64(-f)
	}
	return float64(f)
}

// Scale multiplies by factor.
func (f Float) Scale(factor float64) Float { return Float(float64(f) * factor) }

// Add returns f + other.
func (f Float) Add(other Float) Float { return f + other }

// Sub returns f - other.
func (f Float) Sub(other Float) Float { return f - other }

// Lerp interpolates toward target by t, clamping t to [0, 1].
func (f Float) Lerp(target Float, t float64) Float {
	t = clamp01(t)
	return Float(float64(f)*(1-t) + float64(target)*t)
}

// FromParameter identity-maps the normalized parameter.
func (Float) FromParameter(p float64) Float { return Float(p) }

// Int is an integer animatable primitive. Interpolation happens in floating
// point and truncates, so epsilon is half a unit. Use it with tweens and
// keyframes; spring integration needs sub-unit precision between frames and
// can stall on truncating types.
type Int int

// Zero returns 0.
func (Int) Zero() Int { return 0 }

// Epsilon returns half a unit, the smallest meaningful integer delta.
func (Int) Epsilon() float64 { return 0.5 }

// Magnitude returns the absolute value.
func (i Int) Magnitude() float64 {
	if i < 0 {
		return float64(-i)
	}
	return float64(i)
}

// Scale multiplies by factor, truncating toward zero.
func (i Int) Scale(factor float64) Int { return Int(float64(i) * factor) }

// Add returns i + other.
func (i Int) Add(other Int) Int { return i + other }

// Sub returns i - other.
func (i Int) Sub(other Int) Int { return i - other }

// Lerp interpolates toward target by t, clamping t to [0, 1].
func (i Int) Lerp(target Int, t float64) Int {
	t = clamp01(t)
	return Int(float64(i)*(1-t) + float64(target)*t)
}

// FromParameter truncates the normalized parameter.
func (Int) FromParameter(p float64) Int { return Int(p) }

// clamp01 clamps a value to the range [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
