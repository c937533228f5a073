// Command motiondemo animates a transform and a color in real time and
// prints the CSS each frame would apply, as a terminal stand-in for a
// rendering host.
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/go-drift/motion/pkg/motion"
	"github.com/go-drift/motion/pkg/properties"
)

func main() {
	var fps int
	flag.IntVar(&fps, "fps", 30, "Frame rate to drive at")
	flag.Parse()
	if fps < 1 {
		fps = 30
	}

	transform := motion.NewValue(properties.Identity())
	transform.Spring().
		Stiffness(180).
		Damping(12).
		AnimateTo(properties.Translate(200, 0).Combine(properties.ScaleUniform(1.5)))

	color := motion.NewValue(properties.Red)
	color.Tween().
		Duration(800 * time.Millisecond).
		Easing(motion.EaseInOutCubic).
		AnimateTo(properties.Blue)

	driver := motion.NewDriver(nil)
	driver.Register(transform)
	driver.Register(color)

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for range ticker.C {
		animating := driver.Tick()
		fmt.Printf("transform: %-60s color: %s\n",
			transform.Get().CSSString(), color.Get().CSSString())
		if !animating {
			break
		}
	}
	fmt.Println("settled")
}
