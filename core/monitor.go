// Proximity monitor control loop
// Measure, classify and report once per sample period
package core

import (
	"context"
	"errors"
	"io"

	"tinygo.org/x/drivers"
)

// SamplingContext carries state from one iteration to the next
type SamplingContext struct {
	PreviousDistance uint32 // cm
}

// Sample is the outcome of one iteration
type Sample struct {
	Echo     Echo
	Distance uint32 // cm
	Speed    uint32 // cm/s
	State    State
}

// Monitor runs the measure → classify → output loop
type Monitor struct {
	sensor    *Rangefinder
	indicator Indicator
	telemetry io.Writer
	clock     Clock
	onSample  func(Sample)
	line      []byte
}

// NewMonitor creates a monitor. telemetry may be nil to disable reports.
func NewMonitor(sensor *Rangefinder, indicator Indicator, telemetry io.Writer, clock Clock) (*Monitor, error) {
	if sensor == nil || indicator == nil || clock == nil {
		return nil, ErrNilDriver
	}
	return &Monitor{
		sensor:    sensor,
		indicator: indicator,
		telemetry: telemetry,
		clock:     clock,
		line:      make([]byte, 0, 48),
	}, nil
}

// SetSampleHook registers fn to be called after every iteration of Run
func (m *Monitor) SetSampleHook(fn func(Sample)) {
	m.onSample = fn
}

// Step performs one iteration without the trailing delay and returns the
// context for the next one. The returned error reports output failures only;
// the sample is valid either way.
func (m *Monitor) Step(sc SamplingContext) (Sample, SamplingContext, error) {
	// A timed out measurement reads as distance 0, which classifies as Danger
	err := m.sensor.Update(drivers.Distance)
	if err != nil && !errors.Is(err, ErrNoEcho) {
		return Sample{}, sc, err
	}

	distance := m.sensor.DistanceCM()
	speed := SpeedCMPerS(distance, sc.PreviousDistance, SamplesPerSecond(SamplePeriod))
	sample := Sample{
		Echo:     m.sensor.Echo(),
		Distance: distance,
		Speed:    speed,
		State:    Classify(distance, speed),
	}

	var outErr error
	if m.telemetry != nil {
		m.line = AppendReport(m.line[:0], distance, speed)
		if _, werr := m.telemetry.Write(m.line); werr != nil {
			outErr = werr
		}
	}
	if serr := m.indicator.Show(sample.State); serr != nil && outErr == nil {
		outErr = serr
	}

	return sample, SamplingContext{PreviousDistance: distance}, outErr
}

// Run writes the banner and loops until ctx is cancelled.
// Output errors are logged and do not stop the loop.
func (m *Monitor) Run(ctx context.Context) error {
	if m.telemetry != nil {
		if _, err := io.WriteString(m.telemetry, Banner); err != nil {
			DebugPrintln("[MONITOR] banner write failed: " + err.Error())
		}
	}

	var sc SamplingContext
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		sample, next, err := m.Step(sc)
		sc = next
		if IsDebugEnabled() {
			if err != nil {
				DebugPrintln("[MONITOR] output failed: " + err.Error())
			}
			if sample.Echo.TimedOut() {
				DebugPrintln("[MONITOR] " + sample.Echo.Status.String())
			}
		}
		if m.onSample != nil {
			m.onSample(sample)
		}

		m.clock.Sleep(SamplePeriod)
	}
}
