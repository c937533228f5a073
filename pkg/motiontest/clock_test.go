package motiontest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFakeClockAdvances(t *testing.T) {
	clock := NewFakeClock()
	start := clock.Now()

	clock.Advance(16 * time.Millisecond)
	assert.Equal(t, 16*time.Millisecond, clock.Now().Sub(start))

	clock.Advance(time.Second)
	assert.Equal(t, time.Second+16*time.Millisecond, clock.Now().Sub(start))
}

func TestFakeClockSet(t *testing.T) {
	clock := NewFakeClock()
	target := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	clock.Set(target)
	assert.Equal(t, target, clock.Now())
}
