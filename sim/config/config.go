package config

import (
	"encoding/json"
	"errors"

	"parkassist/sim"
)

// LoadConfig parses a JSON scenario and returns it with defaults applied
func LoadConfig(jsonData []byte) (*sim.Scenario, error) {
	var scenario sim.Scenario

	err := json.Unmarshal(jsonData, &scenario)
	if err != nil {
		return nil, err
	}

	// Apply defaults
	applyDefaults(&scenario)

	if err := validate(&scenario); err != nil {
		return nil, err
	}

	return &scenario, nil
}

// applyDefaults fills in missing scenario values with sensible defaults
func applyDefaults(scenario *sim.Scenario) {
	if scenario.Name == "" {
		scenario.Name = "custom"
	}

	// RP2040 system timer rate
	if scenario.TickFreq == 0 {
		scenario.TickFreq = 1000000
	}

	// HC-SR04 burst takes roughly 8 cycles at 40 kHz before the echo line rises
	if scenario.EchoDelayUS == 0 {
		scenario.EchoDelayUS = 250
	}
	if scenario.MaxRangeCM == 0 {
		scenario.MaxRangeCM = 400
	}
	if scenario.PollCostNS == 0 {
		scenario.PollCostNS = 1000
	}
	if scenario.Samples == 0 {
		scenario.Samples = 50
	}
}

// validate rejects scenarios the simulator cannot play
func validate(scenario *sim.Scenario) error {
	for i := 1; i < len(scenario.Waypoints); i++ {
		if scenario.Waypoints[i].AtMS < scenario.Waypoints[i-1].AtMS {
			return errors.New("waypoints must be sorted by at_ms")
		}
	}
	for _, wp := range scenario.Waypoints {
		if wp.DistanceCM < 0 {
			return errors.New("waypoint distance must not be negative")
		}
	}
	if scenario.Samples < 0 {
		return errors.New("samples must not be negative")
	}
	return nil
}

// DefaultApproachScenario returns a car reversing towards a wall, stopping
// short, then pulling away fast. The counter starts near its top so the
// first measurements wrap.
func DefaultApproachScenario() *sim.Scenario {
	return &sim.Scenario{
		Name:         "approach",
		TickFreq:     1000000,
		CounterStart: 65000,
		EchoDelayUS:  250,
		MaxRangeCM:   400,
		PollCostNS:   1000,
		Samples:      60,
		Waypoints: []sim.Waypoint{
			{AtMS: 0, DistanceCM: 250},
			{AtMS: 6000, DistanceCM: 40},
			{AtMS: 8000, DistanceCM: 10},
			{AtMS: 10000, DistanceCM: 10},
			{AtMS: 11000, DistanceCM: 450},
		},
	}
}
