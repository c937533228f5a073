package motion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStaggerCascadesStarts(t *testing.T) {
	fired := 0
	stagger := NewStagger[Float]().
		DelayBetween(100 * time.Millisecond).
		Add(newGroupTween(0, 10, 100*time.Millisecond), 0).
		Add(newGroupTween(0, 10, 100*time.Millisecond), 1).
		OnComplete(func() { fired++ }).
		Start()

	// Only the first item has started; aggregate follows it.
	state, value, _ := stagger.Update(0.05)
	assert.Equal(t, StateActive, state)
	assert.InDelta(t, 5, float64(value), 1e-9)

	// Second item's delay elapses; the aggregate switches to it.
	state, value, _ = stagger.Update(0.05)
	assert.Equal(t, StateActive, state)
	assert.InDelta(t, 5, float64(value), 1e-9)

	state, value, _ = stagger.Update(0.05)
	assert.Equal(t, StateCompleted, state)
	assert.Equal(t, Float(10), value)
	assert.Equal(t, 1, fired)
	assert.False(t, stagger.IsActive())
}

func TestStaggerKeyScalesDefaultDelay(t *testing.T) {
	stagger := NewStagger[Float]().
		Add(newGroupTween(0, 10, 100*time.Millisecond), 2).
		Start()

	// Key 2 with the 50ms default base waits 100ms before starting.
	state, value, _ := stagger.Update(0.05)
	assert.Equal(t, StateActive, state)
	assert.Equal(t, Float(0), value)

	_, value, _ = stagger.Update(0.05)
	assert.InDelta(t, 5, float64(value), 1e-9)
}

func TestStaggerNegativeKeyStartsImmediately(t *testing.T) {
	stagger := NewStagger[Float]().
		Add(newGroupTween(0, 10, 100*time.Millisecond), -3).
		Start()

	_, value, _ := stagger.Update(0.05)
	assert.InDelta(t, 5, float64(value), 1e-9)
}

func TestStaggerEmptyNeverActivates(t *testing.T) {
	stagger := NewStagger[Float]().Start()

	state, _, _ := stagger.Update(0.016)
	assert.Equal(t, StateCompleted, state)
	assert.False(t, stagger.IsActive())
}

func TestStaggerVelocityIsZero(t *testing.T) {
	stagger := NewStagger[Float]().
		Add(newGroupTween(0, 10, 100*time.Millisecond), 0).
		Start()
	stagger.Update(0.05)
	assert.Equal(t, Float(0), stagger.Velocity())
}

func TestStaggerReset(t *testing.T) {
	stagger := NewStagger[Float]().
		DelayBetween(100 * time.Millisecond).
		Add(newGroupTween(0, 10, 100*time.Millisecond), 0).
		Add(newGroupTween(0, 10, 100*time.Millisecond), 1).
		Start()
	for loopIdx := 0; loopIdx < 10; loopIdx++ {
		stagger.Update(0.05)
	}
	assert.False(t, stagger.IsActive())

	stagger.Reset()
	assert.True(t, stagger.IsActive())

	// Delays apply again from scratch.
	_, value, _ := stagger.Update(0.05)
	assert.InDelta(t, 5, float64(value), 1e-9)
}
