package telemetry

import "parkassist/core"

// Summary accumulates statistics over a monitoring session
type Summary struct {
	Reports     int
	Other       int
	Restarts    int // Banners seen
	ByState     map[core.State]int
	Transitions int
	MinDistance uint32
	MaxSpeed    uint32

	last    core.State
	hasLast bool
}

// NewSummary creates an empty summary
func NewSummary() *Summary {
	return &Summary{ByState: make(map[core.State]int)}
}

// Add folds ev into the summary and reports whether the proximity state
// changed
func (s *Summary) Add(ev Event) bool {
	if ev.Banner {
		s.Restarts++
		s.hasLast = false
		return false
	}
	if ev.Report == nil {
		s.Other++
		return false
	}

	rep := ev.Report
	if s.Reports == 0 || rep.Distance < s.MinDistance {
		s.MinDistance = rep.Distance
	}
	if rep.Speed > s.MaxSpeed {
		s.MaxSpeed = rep.Speed
	}
	s.Reports++
	s.ByState[rep.State]++

	changed := s.hasLast && rep.State != s.last
	if changed {
		s.Transitions++
	}
	s.last = rep.State
	s.hasLast = true
	return changed
}
