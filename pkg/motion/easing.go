package motion

import (
	"math"

	"github.com/fogleman/ease"
)

// Easing maps normalized progress to eased progress.
//
// The contract is f(0) = 0 and f(1) = 1; monotonicity is not required, so
// bounce and elastic curves are valid. Any func(float64) float64 with that
// shape works, including every curve in github.com/fogleman/ease.
type Easing func(t float64) float64

// Linear returns progress unchanged (no easing).
func Linear(t float64) float64 { return t }

// Common presets, re-exported from the ease package so callers animating
// with default imports have the usual vocabulary at hand.
var (
	// EaseInQuad starts slowly and accelerates.
	EaseInQuad Easing = ease.InQuad
	// EaseOutQuad starts quickly and decelerates.
	EaseOutQuad Easing = ease.OutQuad
	// EaseInOutQuad starts and ends slowly with acceleration in the middle.
	EaseInOutQuad Easing = ease.InOutQuad
	// EaseInCubic is a stronger ease-in.
	EaseInCubic Easing = ease.InCubic
	// EaseOutCubic is a stronger ease-out.
	EaseOutCubic Easing = ease.OutCubic
	// EaseInOutCubic is a stronger ease-in-out.
	EaseInOutCubic Easing = ease.InOutCubic
	// EaseOutElastic overshoots the target and springs back.
	EaseOutElastic Easing = ease.OutElastic
	// EaseOutBounce bounces against the target before settling.
	EaseOutBounce Easing = ease.OutBounce
)

// CubicBezier returns an easing function matching CSS cubic-bezier().
// The parameters define the two control points (x1,y1) and (x2,y2); the
// curve runs from (0,0) to (1,1).
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		// Newton-Raphson converges quickly for most inputs.
		for i := 0; i < 8; i++ {
			x := bezierSample(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return bezierSample(y1, y2, clamp01(u))
			}
			dx := bezierDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Bisection fallback guarantees a stable solution in [0,1].
		lo, hi := 0.0, 1.0
		u = clamp01(u)
		for i := 0; i < 12; i++ {
			x := bezierSample(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}

		return bezierSample(y1, y2, u)
	}
}

func bezierSample(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func bezierDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}
