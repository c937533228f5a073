package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/motion/pkg/motion"
)

// Scenario describes a set of animations to simulate.
type Scenario struct {
	// FPS is the simulated frame rate. Defaults to 60.
	FPS int `yaml:"fps,omitempty"`
	// Timeout is the maximum simulated time, e.g. "5s". Defaults to 10s.
	Timeout string `yaml:"timeout,omitempty"`
	// Animations are the values to drive.
	Animations []AnimationSpec `yaml:"animations"`
}

// AnimationSpec describes one animated value. Exactly one of Spring, Tween
// or Keyframes must be set.
type AnimationSpec struct {
	Name      string         `yaml:"name"`
	From      float64        `yaml:"from"`
	To        float64        `yaml:"to,omitempty"`
	Delay     string         `yaml:"delay,omitempty"`
	Spring    *SpringSpec    `yaml:"spring,omitempty"`
	Tween     *TweenSpec     `yaml:"tween,omitempty"`
	Keyframes *KeyframesSpec `yaml:"keyframes,omitempty"`
}

// SpringSpec holds spring physics parameters.
type SpringSpec struct {
	Stiffness float64 `yaml:"stiffness"`
	Damping   float64 `yaml:"damping"`
	Mass      float64 `yaml:"mass,omitempty"`
	Velocity  float64 `yaml:"velocity,omitempty"`
}

// TweenSpec holds tween parameters.
type TweenSpec struct {
	Duration string `yaml:"duration"`
	Easing   string `yaml:"easing,omitempty"`
}

// KeyframesSpec holds a keyframe timeline.
type KeyframesSpec struct {
	Duration string      `yaml:"duration"`
	Frames   []FrameSpec `yaml:"frames"`
}

// FrameSpec is one keyframe.
type FrameSpec struct {
	At     float64 `yaml:"at"`
	Value  float64 `yaml:"value"`
	Easing string  `yaml:"easing,omitempty"`
}

// easings maps scenario easing names to functions.
var easings = map[string]motion.Easing{
	"":             motion.Linear,
	"linear":       motion.Linear,
	"in-quad":      motion.EaseInQuad,
	"out-quad":     motion.EaseOutQuad,
	"in-out-quad":  motion.EaseInOutQuad,
	"in-cubic":     motion.EaseInCubic,
	"out-cubic":    motion.EaseOutCubic,
	"in-out-cubic": motion.EaseInOutCubic,
	"out-elastic":  motion.EaseOutElastic,
	"out-bounce":   motion.EaseOutBounce,
}

// LoadScenario reads and parses a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML and applies defaults.
func ParseScenario(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if s.FPS <= 0 {
		s.FPS = 60
	}
	if s.Timeout == "" {
		s.Timeout = "10s"
	}
	if len(s.Animations) == 0 {
		return nil, fmt.Errorf("scenario has no animations")
	}
	return &s, nil
}

// TimeoutDuration parses the scenario timeout.
func (s *Scenario) TimeoutDuration() (time.Duration, error) {
	d, err := time.ParseDuration(s.Timeout)
	if err != nil {
		return 0, fmt.Errorf("parse timeout: %w", err)
	}
	return d, nil
}

// simValue pairs a named cell with its spec for reporting.
type simValue struct {
	name string
	cell *motion.Value[motion.Float]
}

// Build creates a value cell per animation spec and starts its animation.
func (s *Scenario) Build() ([]*simValue, error) {
	values := make([]*simValue, 0, len(s.Animations))
	for _, spec := range s.Animations {
		cell, err := buildAnimation(spec)
		if err != nil {
			return nil, fmt.Errorf("animation %q: %w", spec.Name, err)
		}
		values = append(values, &simValue{name: spec.Name, cell: cell})
	}
	return values, nil
}

func buildAnimation(spec AnimationSpec) (*motion.Value[motion.Float], error) {
	cell := motion.NewValue(motion.Float(spec.From))

	delay := time.Duration(0)
	if spec.Delay != "" {
		d, err := time.ParseDuration(spec.Delay)
		if err != nil {
			return nil, fmt.Errorf("parse delay: %w", err)
		}
		delay = d
	}

	switch {
	case spec.Spring != nil:
		b := cell.Spring().
			Stiffness(spec.Spring.Stiffness).
			Damping(spec.Spring.Damping).
			Delay(delay)
		if spec.Spring.Mass > 0 {
			b.Mass(spec.Spring.Mass)
		}
		if spec.Spring.Velocity != 0 {
			b.Velocity(motion.Float(spec.Spring.Velocity))
		}
		b.AnimateTo(motion.Float(spec.To))

	case spec.Tween != nil:
		d, err := time.ParseDuration(spec.Tween.Duration)
		if err != nil {
			return nil, fmt.Errorf("parse duration: %w", err)
		}
		easing, ok := easings[spec.Tween.Easing]
		if !ok {
			return nil, fmt.Errorf("unknown easing %q", spec.Tween.Easing)
		}
		cell.Tween().Duration(d).Easing(easing).Delay(delay).AnimateTo(motion.Float(spec.To))

	case spec.Keyframes != nil:
		d, err := time.ParseDuration(spec.Keyframes.Duration)
		if err != nil {
			return nil, fmt.Errorf("parse duration: %w", err)
		}
		b := cell.Keyframes().Duration(d).Delay(delay)
		for _, frame := range spec.Keyframes.Frames {
			easing, ok := easings[frame.Easing]
			if !ok {
				return nil, fmt.Errorf("unknown easing %q", frame.Easing)
			}
			b.AtWithEasing(frame.At, motion.Float(frame.Value), easing)
		}
		b.Start()

	default:
		return nil, fmt.Errorf("no spring, tween or keyframes section")
	}

	return cell, nil
}
