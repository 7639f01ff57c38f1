package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"parkassist/core"
	"parkassist/sim"
	"parkassist/sim/config"
)

const (
	redPin   core.GPIOPin = 14
	greenPin core.GPIOPin = 15
)

var (
	scenarioPath = flag.String("scenario", "", "JSON scenario file (default: built-in approach)")
	samples      = flag.Int("samples", 0, "Samples to run (0 = scenario value)")
	leds         = flag.Bool("leds", false, "Print LED state after every sample")
	verbose      = flag.Bool("verbose", false, "Enable debug output and dump the capture ring on exit")
)

func main() {
	flag.Parse()

	scenario, err := loadScenario(*scenarioPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *samples > 0 {
		scenario.Samples = *samples
	}

	if *verbose {
		core.SetDebugWriter(func(s string) { fmt.Fprintln(os.Stderr, s) })
		core.SetDebugEnabled(true)
	}

	fmt.Fprintf(os.Stderr, "Scenario %q: %d samples at %d Hz\n", scenario.Name, scenario.Samples, scenario.TickFreq)

	if err := run(scenario); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *verbose {
		core.DumpCaptureRing()
	}
}

func loadScenario(path string) (*sim.Scenario, error) {
	if path == "" {
		return config.DefaultApproachScenario(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	scenario, err := config.LoadConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scenario %s: %w", path, err)
	}
	return scenario, nil
}

func run(scenario *sim.Scenario) error {
	clock := sim.NewClock(time.Duration(scenario.PollCostNS))
	sensor := sim.NewSensor(clock, scenario)
	gpio := sim.NewGPIO()

	echo, err := core.NewEchoTimer(sensor, sensor, clock)
	if err != nil {
		return fmt.Errorf("echo timer: %w", err)
	}

	indicator := core.NewLEDIndicator(gpio, redPin, greenPin)
	if err := indicator.Configure(); err != nil {
		return fmt.Errorf("indicator: %w", err)
	}

	monitor, err := core.NewMonitor(core.NewRangefinder(echo), indicator, os.Stdout, clock)
	if err != nil {
		return fmt.Errorf("monitor: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	count := 0
	monitor.SetSampleHook(func(s core.Sample) {
		count++
		if *leds {
			red, _ := gpio.GetPin(redPin)
			green, _ := gpio.GetPin(greenPin)
			echoUS := core.TicksToUS(uint32(s.Echo.Width()), scenario.TickFreq)
			fmt.Fprintf(os.Stderr, "  t=%-8s %-7s red=%-5t green=%-5t echo=%dus (%s)\n",
				clock.Now().Round(time.Millisecond), s.State, red, green, echoUS, s.Echo.Status)
		}
		if count >= scenario.Samples {
			cancel()
		}
	})

	return monitor.Run(ctx)
}
