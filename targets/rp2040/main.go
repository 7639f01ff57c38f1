//go:build rp2040

package main

import (
	"context"
	"time"

	"parkassist/core"
	"parkassist/targets/pio"
)

func main() {
	board := GetBoardConfig()

	console, err := initConsole()
	if err != nil {
		halt()
	}

	if board.Debug {
		core.SetDebugWriter(consoleDebug)
		core.SetDebugEnabled(true)
	}
	core.SetCaptureRecording(board.RecordCaptures)

	clock := HardwareClock{}
	gpio := NewRPGPIODriver()

	trigger := newTrigger(board, gpio, clock)

	capture := NewEdgeCapture(echoPin)
	if err := capture.Configure(); err != nil {
		core.DebugPrintln("[INIT] echo interrupt: " + err.Error())
		halt()
	}

	echo, err := core.NewEchoTimer(trigger, capture, clock)
	if err != nil {
		halt()
	}

	leds := core.NewLEDIndicator(gpio, redPin, greenPin)
	if err := leds.Configure(); err != nil {
		halt()
	}

	monitor, err := core.NewMonitor(core.NewRangefinder(echo), leds, console, clock)
	if err != nil {
		halt()
	}

	if board.Debug {
		monitor.SetSampleHook(func(s core.Sample) {
			if s.Echo.TimedOut() {
				core.DumpCaptureRing()
				core.ClearCaptureRing()
			}
		})
	}

	// Never cancelled
	monitor.Run(context.Background())
}

// newTrigger prefers the PIO pulse generator and falls back to driving
// the pin from the CPU
func newTrigger(board BoardConfig, gpio core.GPIODriver, clock core.Clock) core.TriggerOutput {
	if board.PIOTrigger {
		t, err := pio.NewPIOTrigger(triggerPin, clock)
		if err == nil {
			return t
		}
		core.DebugPrintln("[INIT] PIO trigger unavailable: " + err.Error())
	}

	t := core.NewPinTrigger(gpio, triggerPin, clock)
	if err := t.Configure(); err != nil {
		halt()
	}
	return t
}

// halt stops with the red LED blinking
func halt() {
	gpio := NewRPGPIODriver()
	on := false
	for {
		on = !on
		gpio.SetPin(redPin, on)
		time.Sleep(250 * time.Millisecond)
	}
}
