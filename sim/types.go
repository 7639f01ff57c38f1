// Package sim runs the proximity monitor against a scripted obstacle
// instead of real hardware.
package sim

import "time"

// Waypoint fixes the obstacle distance at a point in time
type Waypoint struct {
	AtMS       uint32  `json:"at_ms"`       // Time since start (ms)
	DistanceCM float64 `json:"distance_cm"` // Obstacle distance (cm)
}

// Scenario describes the simulated sensor and obstacle motion
type Scenario struct {
	Name         string     `json:"name"`
	TickFreq     uint32     `json:"tick_freq"`     // Capture counter rate (Hz)
	CounterStart uint32     `json:"counter_start"` // Counter value at time zero
	EchoDelayUS  uint32     `json:"echo_delay_us"` // Trigger end to echo rising edge (us)
	MaxRangeCM   float64    `json:"max_range_cm"`  // No echo beyond this distance
	PollCostNS   uint32     `json:"poll_cost_ns"`  // Simulated cost of one clock read (ns)
	Samples      int        `json:"samples"`       // Samples to run before stopping
	Waypoints    []Waypoint `json:"waypoints"`     // Sorted by AtMS
}

// DistanceAt returns the obstacle distance at t, interpolating linearly
// between waypoints. It returns -1 when the scenario has no waypoints.
func (s *Scenario) DistanceAt(t time.Duration) float64 {
	if len(s.Waypoints) == 0 {
		return -1
	}

	ms := float64(t) / float64(time.Millisecond)
	first := s.Waypoints[0]
	if ms <= float64(first.AtMS) {
		return first.DistanceCM
	}

	for i := 1; i < len(s.Waypoints); i++ {
		a, b := s.Waypoints[i-1], s.Waypoints[i]
		if ms > float64(b.AtMS) {
			continue
		}
		span := float64(b.AtMS - a.AtMS)
		if span == 0 {
			return b.DistanceCM
		}
		frac := (ms - float64(a.AtMS)) / span
		return a.DistanceCM + frac*(b.DistanceCM-a.DistanceCM)
	}

	return s.Waypoints[len(s.Waypoints)-1].DistanceCM
}
