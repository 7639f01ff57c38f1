package core

// Indicator renders a proximity State
type Indicator interface {
	Show(state State) error
}

// LEDIndicator shows the State on a red/green LED pair.
// Danger lights red, Caution lights both, Safe lights green.
type LEDIndicator struct {
	gpio  GPIODriver
	red   GPIOPin
	green GPIOPin
}

// NewLEDIndicator creates an indicator on the red and green pins
func NewLEDIndicator(gpio GPIODriver, red, green GPIOPin) *LEDIndicator {
	return &LEDIndicator{gpio: gpio, red: red, green: green}
}

// Configure sets both LED pins as outputs, initially off
func (l *LEDIndicator) Configure() error {
	if l.gpio == nil {
		return ErrNilDriver
	}
	for _, pin := range []GPIOPin{l.red, l.green} {
		if err := l.gpio.ConfigureOutput(pin); err != nil {
			return err
		}
		if err := l.gpio.SetPin(pin, false); err != nil {
			return err
		}
	}
	return nil
}

// Show drives the LEDs for state
func (l *LEDIndicator) Show(state State) error {
	red, green := false, false
	switch state {
	case StateDanger:
		red = true
	case StateCaution:
		red, green = true, true
	case StateSafe:
		green = true
	}

	if err := l.gpio.SetPin(l.red, red); err != nil {
		return err
	}
	return l.gpio.SetPin(l.green, green)
}
