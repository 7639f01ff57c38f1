package core

import (
	"tinygo.org/x/drivers"
)

// Rangefinder exposes the timing engine as a TinyGo drivers.Sensor
type Rangefinder struct {
	echo       *EchoTimer
	last       Echo
	distanceCM uint32
	distanceMM uint32
}

var _ drivers.Sensor = (*Rangefinder)(nil)

// NewRangefinder wraps echo
func NewRangefinder(echo *EchoTimer) *Rangefinder {
	return &Rangefinder{echo: echo}
}

// Update takes a new measurement when which includes drivers.Distance.
// A timed out measurement still updates the readings (to 0) and
// returns ErrNoEcho.
func (r *Rangefinder) Update(which drivers.Measurement) error {
	if which&drivers.Distance == 0 {
		return nil
	}

	r.last = r.echo.Measure()
	width := r.last.Width()
	freq := r.echo.Frequency()
	r.distanceCM = DistanceCM(width, freq, SpeedOfSound)
	r.distanceMM = DistanceCM(width, freq, SpeedOfSound*10)

	if r.last.TimedOut() {
		return ErrNoEcho
	}
	return nil
}

// Distance returns the last distance in millimeters
func (r *Rangefinder) Distance() int32 {
	return int32(r.distanceMM)
}

// DistanceCM returns the last distance in centimeters
func (r *Rangefinder) DistanceCM() uint32 {
	return r.distanceCM
}

// Echo returns the raw result of the last measurement
func (r *Rangefinder) Echo() Echo {
	return r.last
}
