package motion_test

import (
	"fmt"
	"time"

	"github.com/go-drift/motion/pkg/motion"
)

// This example shows how to drive a value with a tween.
func ExampleValue() {
	v := motion.NewValue(motion.Float(0))
	v.Tween().
		Duration(time.Second).
		Easing(motion.Linear).
		AnimateTo(motion.Float(100))

	// Step four quarter-second frames (normally dt comes from the host).
	for loopIdx := 0; loopIdx < 4; loopIdx++ {
		v.Update(0.25)
		fmt.Printf("Value: %.0f\n", v.Get())
	}

	// Output:
	// Value: 25
	// Value: 50
	// Value: 75
	// Value: 100
}

// This example shows how to animate with spring physics.
func ExampleValue_spring() {
	v := motion.NewValue(motion.Float(0))
	v.Spring().
		Stiffness(180).
		Damping(12).
		AnimateTo(motion.Float(200))

	// Step the physics each frame until the spring settles.
	for v.Update(0.016) {
	}

	fmt.Printf("Final value: %.0f\n", v.Get())

	// Output:
	// Final value: 200
}

// This example shows how to get notified when an animation completes.
func ExampleValue_onComplete() {
	v := motion.NewValue(motion.Float(0))
	v.Tween().
		Duration(100 * time.Millisecond).
		OnComplete(func() { fmt.Println("done") }).
		AnimateTo(motion.Float(1))

	for v.Update(0.05) {
	}

	// Output:
	// done
}

// This example shows a multi-point keyframe timeline.
func ExampleKeyframeAnimation() {
	anim := motion.NewKeyframeAnimation[motion.Float](time.Second).
		At(0, motion.Float(0)).
		At(0.5, motion.Float(100)).
		At(1, motion.Float(50))

	_, value, _ := anim.Update(0.25)
	fmt.Printf("At 25%%: %.0f\n", value)

	_, value, _ = anim.Update(0.5)
	fmt.Printf("At 75%%: %.0f\n", value)

	// Output:
	// At 25%: 50
	// At 75%: 75
}

// This example shows how to chain animations into a sequence.
func ExampleValue_sequence() {
	v := motion.NewValue(motion.Float(0))
	v.Sequence().
		Then(v.Tween().Duration(100*time.Millisecond).Easing(motion.Linear).To(motion.Float(100)).Build()).
		Then(motion.NewTweenAnimation(motion.Float(100), motion.Float(50),
			motion.Tween{Duration: 100 * time.Millisecond, Easing: motion.Linear}, motion.Timing{})).
		Start()

	for v.Update(0.05) {
	}

	fmt.Printf("Final value: %.0f\n", v.Get())

	// Output:
	// Final value: 50
}

// This example shows how to create a custom easing curve.
func ExampleCubicBezier() {
	// A custom curve matching CSS cubic-bezier(0.4, 0.0, 0.2, 1.0)
	customEase := motion.CubicBezier(0.4, 0.0, 0.2, 1.0)

	fmt.Printf("Progress 0.0 -> %.2f\n", customEase(0.0))
	fmt.Printf("Progress 0.5 -> %.2f\n", customEase(0.5))
	fmt.Printf("Progress 1.0 -> %.2f\n", customEase(1.0))

	// Output:
	// Progress 0.0 -> 0.00
	// Progress 0.5 -> 0.78
	// Progress 1.0 -> 1.00
}
