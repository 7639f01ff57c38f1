package sim

import (
	"time"

	"parkassist/core"
)

// Sensor simulates both the trigger line and the echo capture timer of an
// ultrasonic sensor facing the scenario's obstacle. A latched capture
// survives a new trigger until Clear, as on capture hardware.
type Sensor struct {
	clock    *Clock
	scenario *Scenario

	// Echo scheduled by the last trigger
	echo   bool
	riseAt time.Duration
	fallAt time.Duration

	armed    core.Edge
	latched  bool
	value    core.Ticks
	consumed map[core.Edge]bool

	Triggers int // Trigger pulses received
}

var (
	_ core.TriggerOutput = (*Sensor)(nil)
	_ core.CaptureTimer  = (*Sensor)(nil)
)

// NewSensor creates a simulated sensor on clock
func NewSensor(clock *Clock, scenario *Scenario) *Sensor {
	return &Sensor{
		clock:    clock,
		scenario: scenario,
		consumed: make(map[core.Edge]bool),
	}
}

// Fire emits the trigger waveform and schedules the echo for the obstacle
// distance at the end of the pulse
func (s *Sensor) Fire() {
	s.clock.Sleep(core.TriggerSettle + core.TriggerPulse)
	s.Triggers++

	s.consumed = make(map[core.Edge]bool)

	now := s.clock.Now()
	d := s.scenario.DistanceAt(now)
	if d < 0 || d > s.scenario.MaxRangeCM {
		s.echo = false
		return
	}

	roundTrip := time.Duration(2 * d / core.SpeedOfSound * float64(time.Second))
	s.echo = true
	s.riseAt = now + time.Duration(s.scenario.EchoDelayUS)*time.Microsecond
	s.fallAt = s.riseAt + roundTrip
}

// Arm selects the edge to latch
func (s *Sensor) Arm(edge core.Edge) {
	s.armed = edge
}

// Clear drops the latched capture
func (s *Sensor) Clear() {
	s.latched = false
}

// Captured latches the armed edge once simulated time has reached it
func (s *Sensor) Captured() bool {
	if s.latched {
		return true
	}
	if !s.echo || s.armed == 0 || s.consumed[s.armed] {
		return false
	}

	at := s.riseAt
	if s.armed == core.EdgeFalling {
		at = s.fallAt
	}
	if s.clock.Now() < at {
		return false
	}

	s.value = s.ticksAt(at)
	s.consumed[s.armed] = true
	s.latched = true
	return true
}

// Value returns the counter latched at the edge
func (s *Sensor) Value() core.Ticks {
	return s.value
}

// Frequency returns the simulated counter rate
func (s *Sensor) Frequency() uint32 {
	return s.scenario.TickFreq
}

// ticksAt returns the free-running counter value at t
func (s *Sensor) ticksAt(t time.Duration) core.Ticks {
	elapsed := uint64(t) * uint64(s.scenario.TickFreq) / uint64(time.Second)
	return core.Ticks((uint64(s.scenario.CounterStart) + elapsed) % (uint64(core.MaxTicks) + 1))
}
