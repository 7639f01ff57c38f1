// Edge-capture timing engine
// Measures the width of the sensor's echo pulse with a capture counter
package core

import "time"

// EchoTimeout bounds each edge wait. It stays well under one counter period
// at the supported tick rates, so at most one wraparound can occur.
const EchoTimeout = 50 * time.Millisecond

// EchoStatus tells how a measurement ended
type EchoStatus uint8

const (
	EchoMeasured EchoStatus = iota // Both edges captured
	EchoNoRise                     // Rising edge never arrived
	EchoNoFall                     // Falling edge never arrived
)

func (s EchoStatus) String() string {
	switch s {
	case EchoMeasured:
		return "measured"
	case EchoNoRise:
		return "no rising edge"
	case EchoNoFall:
		return "no falling edge"
	default:
		return "unknown"
	}
}

// Echo is the result of one measurement
type Echo struct {
	Ticks  Ticks // Pulse width; only meaningful when Status is EchoMeasured
	Status EchoStatus
}

// Width returns the pulse width, or 0 when the measurement timed out
func (e Echo) Width() Ticks {
	if e.Status != EchoMeasured {
		return 0
	}
	return e.Ticks
}

// TimedOut reports whether either edge wait expired
func (e Echo) TimedOut() bool {
	return e.Status != EchoMeasured
}

// PulseWidth returns the ticks between rising and falling, correcting for
// one counter wraparound when falling is not above rising. Inputs are
// counter readings and are masked to MaxTicks.
func PulseWidth(rising, falling Ticks) Ticks {
	rising &= MaxTicks
	falling &= MaxTicks
	if falling > rising {
		return falling - rising
	}
	return (MaxTicks - rising) + falling
}

// EchoTimer runs trigger → rising edge → falling edge cycles
type EchoTimer struct {
	trigger TriggerOutput
	capture CaptureTimer
	clock   Clock
	timeout time.Duration
}

// NewEchoTimer creates a timing engine over the given capabilities
func NewEchoTimer(trigger TriggerOutput, capture CaptureTimer, clock Clock) (*EchoTimer, error) {
	if trigger == nil || capture == nil || clock == nil {
		return nil, ErrNilDriver
	}
	if TicksFromUS(uint32(EchoTimeout/time.Microsecond), capture.Frequency()) > uint32(MaxTicks) {
		return nil, ErrCounterTooFast
	}
	return &EchoTimer{
		trigger: trigger,
		capture: capture,
		clock:   clock,
		timeout: EchoTimeout,
	}, nil
}

// Frequency returns the capture counter rate in Hz
func (e *EchoTimer) Frequency() uint32 {
	return e.capture.Frequency()
}

// Measure performs one full measurement cycle
func (e *EchoTimer) Measure() Echo {
	e.trigger.Fire()
	RecordCapture(EvtTrigger, uptimeUS(e.clock), 0, 0)

	// Wait for the start of the echo pulse
	e.capture.Arm(EdgeRising)
	e.capture.Clear()
	if !e.await() {
		RecordCapture(EvtTimeout, uptimeUS(e.clock), uint32(EdgeRising), 0)
		return Echo{Status: EchoNoRise}
	}
	rising := e.capture.Value()
	e.capture.Clear()
	RecordCapture(EvtRise, uptimeUS(e.clock), uint32(rising), 0)

	// Wait for the end of the echo pulse
	e.capture.Arm(EdgeFalling)
	if !e.await() {
		RecordCapture(EvtTimeout, uptimeUS(e.clock), uint32(EdgeFalling), 0)
		return Echo{Status: EchoNoFall}
	}
	falling := e.capture.Value()
	e.capture.Clear()

	width := PulseWidth(rising, falling)
	if falling <= rising {
		RecordCapture(EvtWrap, uptimeUS(e.clock), uint32(rising), uint32(falling))
	}
	RecordCapture(EvtFall, uptimeUS(e.clock), uint32(falling), uint32(width))

	return Echo{Ticks: width, Status: EchoMeasured}
}

// await polls the capture until it latches or the deadline passes
func (e *EchoTimer) await() bool {
	deadline := e.clock.Uptime() + e.timeout
	for !e.capture.Captured() {
		if e.clock.Uptime() >= deadline {
			return false
		}
	}
	return true
}
