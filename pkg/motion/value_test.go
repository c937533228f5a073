package motion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// settle drives a cell at 16ms frames until it goes idle.
func settle(t *testing.T, v *Value[Float]) {
	t.Helper()
	for loopIdx := 0; loopIdx < 1000; loopIdx++ {
		if !v.Update(0.016) {
			return
		}
	}
	t.Fatal("value did not settle within 1000 frames")
}

func TestValueIdleByDefault(t *testing.T) {
	v := NewValue(Float(7))
	assert.Equal(t, Float(7), v.Get())
	assert.Equal(t, Float(0), v.GetVelocity())
	assert.False(t, v.IsAnimating())
	assert.False(t, v.Update(0.016))
}

func TestValueSpringSettlesExactlyOnTarget(t *testing.T) {
	v := NewValue(Float(0))
	v.Spring().Stiffness(180).Damping(12).AnimateTo(Float(200))
	require.True(t, v.IsAnimating())

	settle(t, v)
	assert.Equal(t, Float(200), v.Get())
	assert.Equal(t, Float(0), v.GetVelocity())
	assert.False(t, v.IsAnimating())
}

func TestValueTweenHalfwayPoint(t *testing.T) {
	v := NewValue(Float(0))
	v.Tween().Duration(500 * time.Millisecond).Easing(Linear).AnimateTo(Float(1))

	v.Update(0.25)
	assert.InDelta(t, 0.5, float64(v.Get()), 1e-9)
	assert.True(t, v.IsAnimating())
}

func TestValueAnimateUsesDefaultSpring(t *testing.T) {
	v := NewValue(Float(0))
	v.Animate(Float(100))
	require.True(t, v.IsAnimating())

	settle(t, v)
	assert.Equal(t, Float(100), v.Get())
}

func TestValueCompletionCallbackFiresOnce(t *testing.T) {
	fired := 0
	v := NewValue(Float(0))
	v.Tween().Duration(100 * time.Millisecond).OnComplete(func() { fired++ }).AnimateTo(Float(1))

	settle(t, v)
	assert.Equal(t, 1, fired)

	// Idle updates must not re-fire.
	v.Update(0.016)
	assert.Equal(t, 1, fired)
}

func TestValueStopDropsCallbacks(t *testing.T) {
	fired := 0
	v := NewValue(Float(0))
	v.Tween().Duration(100 * time.Millisecond).Easing(Linear).OnComplete(func() { fired++ }).AnimateTo(Float(1))

	v.Update(0.05)
	frozen := v.Get()
	v.Stop()

	assert.False(t, v.IsAnimating())
	assert.Equal(t, frozen, v.Get())

	// Even well past the would-be completion, the callback never runs.
	for loopIdx := 0; loopIdx < 20; loopIdx++ {
		v.Update(0.05)
	}
	assert.Equal(t, 0, fired)
}

func TestValueSetDiscardsAnimation(t *testing.T) {
	v := NewValue(Float(0))
	v.Animate(Float(100))
	v.Update(0.016)

	v.Set(Float(42))
	assert.Equal(t, Float(42), v.Get())
	assert.Equal(t, Float(0), v.GetVelocity())
	assert.False(t, v.IsAnimating())
	assert.False(t, v.Update(0.016))
	assert.Equal(t, Float(42), v.Get())
}

func TestValueRedirectCarriesVelocity(t *testing.T) {
	v := NewValue(Float(0))
	v.Animate(Float(100))
	for loopIdx := 0; loopIdx < 3; loopIdx++ {
		v.Update(0.016)
	}
	carried := v.GetVelocity()
	require.Greater(t, float64(carried), 0.0)

	// Redirecting mid-flight seeds the new spring with the live velocity,
	// so the value keeps drifting upward for a moment before turning.
	v.Spring().AnimateTo(Float(0))
	assert.Equal(t, carried, v.GetVelocity())

	before := v.Get()
	v.Update(0.016)
	assert.Greater(t, float64(v.Get()), float64(before))
}

func TestValueRestartWhileAnimatingReplacesEngine(t *testing.T) {
	v := NewValue(Float(0))
	v.Tween().Duration(time.Second).Easing(Linear).AnimateTo(Float(100))
	v.Update(0.5)
	require.True(t, v.IsAnimating())

	// The new tween starts from the current value, not the original one.
	v.Tween().Duration(100 * time.Millisecond).Easing(Linear).AnimateTo(Float(0))
	v.Update(0.05)
	assert.InDelta(t, 25, float64(v.Get()), 1e-9)
}

func TestValueKeyframesBuilder(t *testing.T) {
	fired := 0
	v := NewValue(Float(0))
	v.Keyframes().
		Duration(200 * time.Millisecond).
		At(0, Float(0)).
		At(0.5, Float(80)).
		At(1, Float(20)).
		OnComplete(func() { fired++ }).
		Start()

	v.Update(0.05)
	assert.InDelta(t, 40, float64(v.Get()), 1e-9)

	settle(t, v)
	assert.Equal(t, Float(20), v.Get())
	assert.Equal(t, 1, fired)
}

func TestValueSequenceBuilderWithDetachedSteps(t *testing.T) {
	v := NewValue(Float(0))
	v.Sequence().
		Then(v.Tween().Duration(100*time.Millisecond).Easing(Linear).To(Float(10)).Build()).
		Then(NewTweenAnimation(Float(10), Float(5), Tween{Duration: 100 * time.Millisecond, Easing: Linear}, Timing{})).
		Start()

	settle(t, v)
	assert.Equal(t, Float(5), v.Get())
}

func TestValueGroupBuilder(t *testing.T) {
	v := NewValue(Float(0))
	v.Group().
		Add(NewTweenAnimation(Float(0), Float(10), Tween{Duration: 100 * time.Millisecond, Easing: Linear}, Timing{})).
		Add(NewTweenAnimation(Float(0), Float(5), Tween{Duration: 200 * time.Millisecond, Easing: Linear}, Timing{})).
		Start()

	settle(t, v)
	assert.Equal(t, Float(15), v.Get())
}

func TestValueStaggerBuilder(t *testing.T) {
	v := NewValue(Float(0))
	v.Stagger().
		DelayBetween(50*time.Millisecond).
		Add(NewTweenAnimation(Float(0), Float(1), Tween{Duration: 50 * time.Millisecond, Easing: Linear}, Timing{}), 0).
		Add(NewTweenAnimation(Float(0), Float(2), Tween{Duration: 50 * time.Millisecond, Easing: Linear}, Timing{}), 1).
		Start()

	settle(t, v)
	assert.Equal(t, Float(2), v.Get())
}

func TestValueSpringBuilderDelay(t *testing.T) {
	v := NewValue(Float(0))
	v.Spring().Delay(100 * time.Millisecond).AnimateTo(Float(100))

	// During the delay the value must not move, but the cell stays busy.
	assert.True(t, v.Update(0.05))
	assert.Equal(t, Float(0), v.Get())
}

func TestValueWorksWithIntType(t *testing.T) {
	v := NewValue(Int(0))
	v.Tween().Duration(100 * time.Millisecond).Easing(Linear).AnimateTo(Int(10))

	for loopIdx := 0; loopIdx < 1000; loopIdx++ {
		if !v.Update(0.016) {
			break
		}
	}
	assert.Equal(t, Int(10), v.Get())
}
