// Command motionsim simulates an animation scenario at a fixed frame rate
// and prints sampled values, for tuning spring constants and timelines
// without a UI host.
//
// Usage:
//
//	motionsim -scenario bounce.yaml [-every 6]
//
// The scenario file lists animations (spring, tween or keyframes per entry);
// see Scenario for the schema.
package main

import (
	"flag"
	"fmt"
	"log"
)

func main() {
	var scenarioPath string
	var every int
	flag.StringVar(&scenarioPath, "scenario", "", "Path to scenario YAML")
	flag.IntVar(&every, "every", 6, "Print a sample every N frames")
	flag.Parse()

	if scenarioPath == "" {
		log.Fatal("Provide -scenario path to a scenario YAML")
	}
	if every < 1 {
		every = 1
	}

	scenario, err := LoadScenario(scenarioPath)
	if err != nil {
		log.Fatalf("load scenario: %v", err)
	}
	timeout, err := scenario.TimeoutDuration()
	if err != nil {
		log.Fatalf("load scenario: %v", err)
	}
	values, err := scenario.Build()
	if err != nil {
		log.Fatalf("build scenario: %v", err)
	}

	dt := 1.0 / float64(scenario.FPS)
	frames := int(timeout.Seconds() * float64(scenario.FPS))

	fmt.Printf("frame  time(s)")
	for _, v := range values {
		fmt.Printf("  %12s", v.name)
	}
	fmt.Println()

	for frame := 0; frame <= frames; frame++ {
		animating := false
		for _, v := range values {
			if v.cell.Update(dt) {
				animating = true
			}
		}

		if frame%every == 0 || !animating {
			fmt.Printf("%5d  %7.3f", frame, float64(frame)*dt)
			for _, v := range values {
				fmt.Printf("  %12.4f", float64(v.cell.Get()))
			}
			fmt.Println()
		}

		if !animating {
			fmt.Printf("settled after %d frames (%.3fs)\n", frame+1, float64(frame+1)*dt)
			return
		}
	}
	fmt.Printf("timeout after %d frames; still animating\n", frames)
}
