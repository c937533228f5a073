package properties_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/motion/pkg/motion"
	"github.com/go-drift/motion/pkg/properties"
)

var _ motion.Animatable[properties.Transform] = properties.Transform{}

func TestTransformConstructors(t *testing.T) {
	assert.Equal(t, properties.Transform{ScaleX: 1, ScaleY: 1}, properties.Identity())

	tr := properties.Translate(10, 20)
	assert.Equal(t, 10.0, tr.X)
	assert.Equal(t, 20.0, tr.Y)
	assert.Equal(t, 1.0, tr.ScaleX)

	assert.Equal(t, 2.0, properties.ScaleUniform(2).ScaleY)
	assert.InDelta(t, math.Pi, properties.RotateDegrees(180).Rotation, 1e-12)
	assert.Equal(t, 0.5, properties.Skew(0.5, 0.25).SkewX)
}

func TestTransformCombine(t *testing.T) {
	combined := properties.Translate(10, 0).
		Combine(properties.Translate(5, 5)).
		Combine(properties.ScaleUniform(2)).
		Combine(properties.Rotate(0.5))

	assert.Equal(t, 15.0, combined.X)
	assert.Equal(t, 5.0, combined.Y)
	assert.Equal(t, 2.0, combined.ScaleX)
	assert.Equal(t, 0.5, combined.Rotation)
}

func TestTransformCSSString(t *testing.T) {
	assert.Equal(t, "none", properties.Identity().CSSString())
	assert.Equal(t, "translate(10px, 20px)", properties.Translate(10, 20).CSSString())
	assert.Equal(t, "scale(2)", properties.ScaleUniform(2).CSSString())
	assert.Equal(t, "scale(2, 3)", properties.ScaleBy(2, 3).CSSString())
	assert.Equal(t, "rotate(0.5rad)", properties.Rotate(0.5).CSSString())

	full := properties.Translate(1, 2).Combine(properties.Rotate(0.5)).Combine(properties.ScaleUniform(2))
	assert.Equal(t, "translate(1px, 2px) rotate(0.5rad) scale(2)", full.CSSString())
}

func TestTransformZeroIsAdditiveIdentity(t *testing.T) {
	var zero properties.Transform
	z := zero.Zero()
	assert.Equal(t, 0.0, z.Magnitude())

	tr := properties.NewTransform(10, -5, 2, 0.5, 1, 0.1, 0.2)
	assert.Equal(t, tr, tr.Add(z))
	assert.Equal(t, z, tr.Sub(tr))
}

func TestTransformScaleOperatesRelativeToIdentity(t *testing.T) {
	// Halving a 3x scale lands on 2x: the deviation from identity halves.
	half := properties.ScaleUniform(3).Scale(0.5)
	assert.Equal(t, 2.0, half.ScaleX)
	assert.Equal(t, 2.0, half.ScaleY)

	// Scaling the identity leaves it untouched.
	assert.Equal(t, properties.Identity(), properties.Identity().Scale(10))
}

func TestTransformMagnitudeWeighting(t *testing.T) {
	assert.InDelta(t, 2.5, properties.Translate(3, 4).Magnitude(), 1e-9)
	assert.InDelta(t, 0.3*math.Sqrt2, properties.ScaleUniform(2).Magnitude(), 1e-9)
	assert.InDelta(t, 0.1, properties.Rotate(1).Magnitude(), 1e-9)
}

func TestTransformLerpTakesShortestRotationPath(t *testing.T) {
	from := properties.Rotate(0.1)
	to := properties.Rotate(2*math.Pi - 0.1)

	// Interpolating the long way would pass through pi; the short way
	// crosses zero.
	mid := from.Lerp(to, 0.5)
	assert.InDelta(t, 0, mid.Rotation, 1e-9)
}

func TestTransformLerpBoundaries(t *testing.T) {
	from := properties.Translate(0, 0)
	to := properties.NewTransform(100, 50, 2, 2, 1, 0, 0)

	assert.Equal(t, from, from.Lerp(to, 0))
	assert.Equal(t, to, from.Lerp(to, 1))

	mid := from.Lerp(to, 0.5)
	assert.Equal(t, 50.0, mid.X)
	assert.Equal(t, 1.5, mid.ScaleX)
}

func TestTransformSpringsThroughValueCell(t *testing.T) {
	v := motion.NewValue(properties.Identity())
	v.Animate(properties.Translate(100, 0))

	settled := false
	for loopIdx := 0; loopIdx < 1000; loopIdx++ {
		if !v.Update(0.016) {
			settled = true
			break
		}
	}
	require.True(t, settled)
	assert.Equal(t, properties.Translate(100, 0), v.Get())
}

func TestTransformScaleSpringsToTarget(t *testing.T) {
	v := motion.NewValue(properties.Identity())
	v.Spring().Stiffness(180).Damping(12).AnimateTo(properties.ScaleUniform(2))

	settled := false
	for loopIdx := 0; loopIdx < 1000; loopIdx++ {
		if !v.Update(0.016) {
			settled = true
			break
		}
	}
	require.True(t, settled)
	assert.Equal(t, properties.ScaleUniform(2), v.Get())
}
