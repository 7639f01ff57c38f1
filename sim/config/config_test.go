package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"parkassist/sim"
)

func TestLoadConfigDefaults(t *testing.T) {
	got, err := LoadConfig([]byte(`{"waypoints":[{"at_ms":0,"distance_cm":80}]}`))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	want := &sim.Scenario{
		Name:        "custom",
		TickFreq:    1000000,
		EchoDelayUS: 250,
		MaxRangeCM:  400,
		PollCostNS:  1000,
		Samples:     50,
		Waypoints:   []sim.Waypoint{{AtMS: 0, DistanceCM: 80}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LoadConfig (-want +got):\n%s", diff)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	data := []byte(`{
		"name": "garage",
		"tick_freq": 400000,
		"counter_start": 65000,
		"max_range_cm": 300,
		"samples": 10,
		"waypoints": [
			{"at_ms": 0, "distance_cm": 120},
			{"at_ms": 2000, "distance_cm": 30}
		]
	}`)

	got, err := LoadConfig(data)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got.Name != "garage" || got.TickFreq != 400000 || got.CounterStart != 65000 {
		t.Errorf("overrides lost: %+v", got)
	}
	if got.MaxRangeCM != 300 || got.Samples != 10 {
		t.Errorf("overrides lost: %+v", got)
	}
	if got.EchoDelayUS != 250 {
		t.Errorf("EchoDelayUS = %d, want default 250", got.EchoDelayUS)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad json", `{"name":`},
		{"unsorted", `{"waypoints":[{"at_ms":500,"distance_cm":10},{"at_ms":100,"distance_cm":20}]}`},
		{"negative distance", `{"waypoints":[{"at_ms":0,"distance_cm":-5}]}`},
		{"negative samples", `{"samples":-1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestDefaultApproachScenario(t *testing.T) {
	s := DefaultApproachScenario()
	if err := validate(s); err != nil {
		t.Fatalf("default scenario invalid: %v", err)
	}
	if s.Samples <= 0 || len(s.Waypoints) == 0 {
		t.Errorf("default scenario is empty: %+v", s)
	}
}
