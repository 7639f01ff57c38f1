//go:build rp2040

package main

import (
	"machine"

	"parkassist/core"
)

// EdgeCapture latches the low 16 bits of the system timer when the echo
// pin changes to the armed level. The latch happens in the pin interrupt;
// the echo timer polls Captured.
type EdgeCapture struct {
	core.EdgeLatch
	pin machine.Pin
}

var _ core.CaptureTimer = (*EdgeCapture)(nil)

// NewEdgeCapture creates a capture port on pin
func NewEdgeCapture(pin core.GPIOPin) *EdgeCapture {
	return &EdgeCapture{pin: machine.Pin(pin)}
}

// Configure sets the pin as input and installs the edge interrupt
func (c *EdgeCapture) Configure() error {
	c.pin.Configure(machine.PinConfig{Mode: machine.PinInputPulldown})
	return c.pin.SetInterrupt(machine.PinToggle, c.onEdge)
}

// onEdge runs in interrupt context
func (c *EdgeCapture) onEdge(p machine.Pin) {
	now := getHardwareTime()
	edge := core.EdgeFalling
	if p.Get() {
		edge = core.EdgeRising
	}
	c.OnEdge(edge, now)
}

// Frequency returns the counter rate
func (c *EdgeCapture) Frequency() uint32 {
	return timerFreq
}
