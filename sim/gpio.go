package sim

import (
	"errors"

	"parkassist/core"
)

// GPIO records pin levels for the simulated board
type GPIO struct {
	pins       map[core.GPIOPin]bool
	configured map[core.GPIOPin]bool
}

var _ core.GPIODriver = (*GPIO)(nil)

// NewGPIO creates a GPIO bank with every pin unconfigured
func NewGPIO() *GPIO {
	return &GPIO{
		pins:       make(map[core.GPIOPin]bool),
		configured: make(map[core.GPIOPin]bool),
	}
}

// ConfigureOutput marks pin as an output
func (g *GPIO) ConfigureOutput(pin core.GPIOPin) error {
	g.configured[pin] = true
	return nil
}

// SetPin drives a configured output
func (g *GPIO) SetPin(pin core.GPIOPin, value bool) error {
	if !g.configured[pin] {
		return errors.New("pin not configured as output")
	}
	g.pins[pin] = value
	return nil
}

// GetPin returns the last level driven on pin
func (g *GPIO) GetPin(pin core.GPIOPin) (bool, error) {
	return g.pins[pin], nil
}
