package properties

import (
	"fmt"
	"math"
	"strings"
)

// Transform is a 2D transform with translation, scale, rotation and skew
// components. Rotation and skew are in radians.
//
// The scale components are special: their rest value is 1.0, not 0.0, so
// Scale, Add and Sub operate on them relative to identity. Repeated scaling
// therefore converges toward identity rather than collapsing to zero.
// Callers composing transforms must preserve this asymmetry.
type Transform struct {
	// X is the horizontal translation in pixels.
	X float64
	// Y is the vertical translation in pixels.
	Y float64
	// ScaleX is the horizontal scale factor.
	ScaleX float64
	// ScaleY is the vertical scale factor.
	ScaleY float64
	// Rotation is the rotation in radians.
	Rotation float64
	// SkewX is the horizontal skew in radians.
	SkewX float64
	// SkewY is the vertical skew in radians.
	SkewY float64
}

// NewTransform creates a transform with explicit components.
func NewTransform(x, y, scaleX, scaleY, rotation, skewX, skewY float64) Transform {
	return Transform{X: x, Y: y, ScaleX: scaleX, ScaleY: scaleY, Rotation: rotation, SkewX: skewX, SkewY: skewY}
}

// Identity returns the transform that changes nothing.
func Identity() Transform {
	return Transform{ScaleX: 1, ScaleY: 1}
}

// Translate returns an identity transform with the given translation.
func Translate(x, y float64) Transform {
	t := Identity()
	t.X, t.Y = x, y
	return t
}

// ScaleBy returns an identity transform with the given scale factors.
func ScaleBy(scaleX, scaleY float64) Transform {
	t := Identity()
	t.ScaleX, t.ScaleY = scaleX, scaleY
	return t
}

// ScaleUniform returns an identity transform scaled equally on both axes.
func ScaleUniform(scale float64) Transform {
	return ScaleBy(scale, scale)
}

// Rotate returns an identity transform with the given rotation in radians.
func Rotate(radians float64) Transform {
	t := Identity()
	t.Rotation = radians
	return t
}

// RotateDegrees returns an identity transform with the rotation given in
// degrees.
func RotateDegrees(degrees float64) Transform {
	return Rotate(degrees * math.Pi / 180)
}

// Skew returns an identity transform with the given skew in radians.
func Skew(skewX, skewY float64) Transform {
	t := Identity()
	t.SkewX, t.SkewY = skewX, skewY
	return t
}

// Combine composes this transform with other, component-wise: translations,
// rotations and skews add, scales multiply. This is a simplification of
// matrix composition sufficient for animation aggregates.
func (t Transform) Combine(other Transform) Transform {
	return Transform{
		X:        t.X + other.X,
		Y:        t.Y + other.Y,
		ScaleX:   t.ScaleX * other.ScaleX,
		ScaleY:   t.ScaleY * other.ScaleY,
		Rotation: t.Rotation + other.Rotation,
		SkewX:    t.SkewX + other.SkewX,
		SkewY:    t.SkewY + other.SkewY,
	}
}

// CSSString returns the transform as a CSS transform value, or "none" for
// the identity.
func (t Transform) CSSString() string {
	var parts []string
	if t.X != 0 || t.Y != 0 {
		parts = append(parts, fmt.Sprintf("translate(%gpx, %gpx)", t.X, t.Y))
	}
	if t.Rotation != 0 {
		parts = append(parts, fmt.Sprintf("rotate(%grad)", t.Rotation))
	}
	if t.ScaleX != 1 || t.ScaleY != 1 {
		if t.ScaleX == t.ScaleY {
			parts = append(parts, fmt.Sprintf("scale(%g)", t.ScaleX))
		} else {
			parts = append(parts, fmt.Sprintf("scale(%g, %g)", t.ScaleX, t.ScaleY))
		}
	}
	if t.SkewX != 0 || t.SkewY != 0 {
		parts = append(parts, fmt.Sprintf("skew(%grad, %grad)", t.SkewX, t.SkewY))
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " ")
}

// Zero returns the additive identity. Because the scale components operate
// relative to their rest value 1, the additive identity is the identity
// transform, not the all-zero struct: Add(Zero()) is a no-op on every axis
// and Zero().Magnitude() is 0.
func (Transform) Zero() Transform { return Identity() }

// Epsilon returns the minimum meaningful difference between transforms.
func (Transform) Epsilon() float64 { return 0.001 }

// Magnitude returns a weighted norm: translation dominates, then scale
// deviation from identity, then rotation and skew.
func (t Transform) Magnitude() float64 {
	translation := math.Hypot(t.X, t.Y)
	scale := math.Hypot(t.ScaleX-1, t.ScaleY-1)
	rotation := math.Abs(t.Rotation)
	skew := math.Hypot(t.SkewX, t.SkewY)
	return translation*0.5 + scale*0.3 + rotation*0.1 + skew*0.1
}

// Scale multiplies each component by factor, with the scale components
// scaled relative to identity.
func (t Transform) Scale(factor float64) Transform {
	return Transform{
		X:        t.X * factor,
		Y:        t.Y * factor,
		ScaleX:   1 + (t.ScaleX-1)*factor,
		ScaleY:   1 + (t.ScaleY-1)*factor,
		Rotation: t.Rotation * factor,
		SkewX:    t.SkewX * factor,
		SkewY:    t.SkewY * factor,
	}
}

// Add combines two transforms component-wise, with the scale components
// added relative to identity.
func (t Transform) Add(other Transform) Transform {
	return Transform{
		X:        t.X + other.X,
		Y:        t.Y + other.Y,
		ScaleX:   t.ScaleX + (other.ScaleX - 1),
		ScaleY:   t.ScaleY + (other.ScaleY - 1),
		Rotation: t.Rotation + other.Rotation,
		SkewX:    t.SkewX + other.SkewX,
		SkewY:    t.SkewY + other.SkewY,
	}
}

// Sub returns the component-wise difference, with the scale components
// subtracted relative to identity.
func (t Transform) Sub(other Transform) Transform {
	return Transform{
		X:        t.X - other.X,
		Y:        t.Y - other.Y,
		ScaleX:   t.ScaleX - (other.ScaleX - 1),
		ScaleY:   t.ScaleY - (other.ScaleY - 1),
		Rotation: t.Rotation - other.Rotation,
		SkewX:    t.SkewX - other.SkewX,
		SkewY:    t.SkewY - other.SkewY,
	}
}

// Lerp interpolates toward target by t, clamping t to [0, 1]. Rotation
// takes the shortest path around the circle.
func (t Transform) Lerp(target Transform, u float64) Transform {
	u = clamp01(u)

	rotationDiff := target.Rotation - t.Rotation
	if rotationDiff > math.Pi {
		rotationDiff -= 2 * math.Pi
	} else if rotationDiff < -math.Pi {
		rotationDiff += 2 * math.Pi
	}

	return Transform{
		X:        t.X + (target.X-t.X)*u,
		Y:        t.Y + (target.Y-t.Y)*u,
		ScaleX:   t.ScaleX + (target.ScaleX-t.ScaleX)*u,
		ScaleY:   t.ScaleY + (target.ScaleY-t.ScaleY)*u,
		Rotation: t.Rotation + rotationDiff*u,
		SkewX:    t.SkewX + (target.SkewX-t.SkewX)*u,
		SkewY:    t.SkewY + (target.SkewY-t.SkewY)*u,
	}
}

// FromParameter maps a normalized parameter to a scaled zero transform,
// which for this type is always the identity.
func (Transform) FromParameter(p float64) Transform {
	var t Transform
	return t.Zero().Scale(p)
}
