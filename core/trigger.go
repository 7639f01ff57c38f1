package core

import "time"

// Trigger timing required by HC-SR04 class sensors
const (
	TriggerSettle = 2 * time.Microsecond  // Low time before the pulse
	TriggerPulse  = 10 * time.Microsecond // High time of the pulse
)

// TriggerOutput starts one ranging cycle on the sensor
type TriggerOutput interface {
	// Fire emits the trigger waveform. It has no failure path.
	Fire()
}

// PinTrigger drives the trigger line from a GPIO pin with software delays
type PinTrigger struct {
	gpio  GPIODriver
	pin   GPIOPin
	clock Clock
}

// NewPinTrigger creates a trigger on pin. Call Configure before Fire.
func NewPinTrigger(gpio GPIODriver, pin GPIOPin, clock Clock) *PinTrigger {
	return &PinTrigger{
		gpio:  gpio,
		pin:   pin,
		clock: clock,
	}
}

// Configure sets the trigger pin as an output, initially low
func (t *PinTrigger) Configure() error {
	if t.gpio == nil || t.clock == nil {
		return ErrNilDriver
	}
	if err := t.gpio.ConfigureOutput(t.pin); err != nil {
		return err
	}
	return t.gpio.SetPin(t.pin, false)
}

// Fire drives the line low, then high for TriggerPulse, then low again
func (t *PinTrigger) Fire() {
	_ = t.gpio.SetPin(t.pin, false)
	t.clock.Sleep(TriggerSettle)
	_ = t.gpio.SetPin(t.pin, true)
	t.clock.Sleep(TriggerPulse)
	_ = t.gpio.SetPin(t.pin, false)
}
