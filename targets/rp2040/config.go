//go:build rp2040

package main

import (
	"machine"

	"parkassist/core"
)

// Board wiring
const (
	triggerPin core.GPIOPin = 2  // HC-SR04 TRIG
	echoPin    core.GPIOPin = 3  // HC-SR04 ECHO (through a 5V to 3.3V divider)
	redPin     core.GPIOPin = 14 // Danger / Caution LED
	greenPin   core.GPIOPin = 15 // Caution / Safe LED
)

// Console UART
const (
	consoleBaud = 9600
	consoleTX   = machine.GPIO0
	consoleRX   = machine.GPIO1
)

// BoardConfig selects the optional firmware features
type BoardConfig struct {
	// Generate the trigger pulse on a PIO state machine instead of
	// bit-banging it from the CPU
	PIOTrigger bool

	// Send debug messages to the console alongside telemetry
	Debug bool

	// Record capture events for DumpCaptureRing
	RecordCaptures bool
}

// GetBoardConfig returns the build's feature selection.
// Change the values here to select a different build.
func GetBoardConfig() BoardConfig {
	return BoardConfig{
		PIOTrigger:     true,
		Debug:          false,
		RecordCaptures: true,
	}
}
