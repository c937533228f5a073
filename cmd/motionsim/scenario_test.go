package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/motion/pkg/motion"
)

func TestParseScenarioDefaults(t *testing.T) {
	s, err := ParseScenario([]byte(`
animations:
  - name: x
    from: 0
    to: 10
    spring:
      stiffness: 100
      damping: 10
`))
	require.NoError(t, err)
	assert.Equal(t, 60, s.FPS)

	timeout, err := s.TimeoutDuration()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, timeout)
}

func TestParseScenarioRejectsEmpty(t *testing.T) {
	_, err := ParseScenario([]byte(`fps: 30`))
	assert.ErrorContains(t, err, "no animations")
}

func TestParseScenarioRejectsBadYAML(t *testing.T) {
	_, err := ParseScenario([]byte(`animations: [`))
	assert.Error(t, err)
}

func TestBuildRejectsUnknownEasing(t *testing.T) {
	s, err := ParseScenario([]byte(`
animations:
  - name: x
    from: 0
    to: 1
    tween:
      duration: 100ms
      easing: wiggle
`))
	require.NoError(t, err)
	_, err = s.Build()
	assert.ErrorContains(t, err, `unknown easing "wiggle"`)
}

func TestBuildRejectsMissingEngine(t *testing.T) {
	s, err := ParseScenario([]byte(`
animations:
  - name: x
    from: 0
    to: 1
`))
	require.NoError(t, err)
	_, err = s.Build()
	assert.ErrorContains(t, err, `animation "x"`)
}

func TestBuildRejectsBadDuration(t *testing.T) {
	s, err := ParseScenario([]byte(`
animations:
  - name: x
    from: 0
    to: 1
    tween:
      duration: fast
`))
	require.NoError(t, err)
	_, err = s.Build()
	assert.Error(t, err)
}

func TestLoadScenarioAndSimulate(t *testing.T) {
	s, err := LoadScenario("testdata/bounce.yaml")
	require.NoError(t, err)
	require.Equal(t, 60, s.FPS)

	values, err := s.Build()
	require.NoError(t, err)
	require.Len(t, values, 3)

	// Drive all cells until every animation settles.
	dt := 1.0 / float64(s.FPS)
	settled := false
	for loopIdx := 0; loopIdx < 5 * s.FPS; loopIdx++ {
		animating := false
		for _, v := range values {
			if v.cell.Update(dt) {
				animating = true
			}
		}
		if !animating {
			settled = true
			break
		}
	}
	require.True(t, settled)

	assert.Equal(t, motion.Float(300), values[0].cell.Get())
	assert.Equal(t, motion.Float(1), values[1].cell.Get())
	assert.Equal(t, motion.Float(0), values[2].cell.Get())
}
