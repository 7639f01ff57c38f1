// Package telemetry decodes the parking assistant's console output.
package telemetry

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"parkassist/core"
)

// ErrNotReport is returned for console lines that are not sample reports
var ErrNotReport = errors.New("not a telemetry report")

// Report is one decoded sample line. State is recomputed from the
// reported values with the firmware's classifier.
type Report struct {
	Distance uint32 // cm
	Speed    uint32 // cm/s
	State    core.State
}

// String renders the report in the firmware's line format, without the newline
func (r Report) String() string {
	return strings.TrimSuffix(string(core.AppendReport(nil, r.Distance, r.Speed)), "\n")
}

// IsBanner reports whether line is the firmware start-up banner
func IsBanner(line string) bool {
	return strings.TrimSpace(line) == strings.TrimSpace(core.Banner)
}

// ParseReport decodes "Distance: <d> cm | Speed: <s> cm/s"
func ParseReport(line string) (Report, error) {
	line = strings.TrimSpace(line)

	distPart, speedPart, ok := strings.Cut(line, "|")
	if !ok {
		return Report{}, ErrNotReport
	}

	distance, err := field(distPart, "Distance:", "cm")
	if err != nil {
		return Report{}, fmt.Errorf("distance: %w", err)
	}
	speed, err := field(speedPart, "Speed:", "cm/s")
	if err != nil {
		return Report{}, fmt.Errorf("speed: %w", err)
	}

	return Report{
		Distance: distance,
		Speed:    speed,
		State:    core.Classify(distance, speed),
	}, nil
}

// field extracts the unsigned value between label and unit
func field(s, label, unit string) (uint32, error) {
	s = strings.TrimSpace(s)
	rest, ok := strings.CutPrefix(s, label)
	if !ok {
		return 0, ErrNotReport
	}
	rest, ok = strings.CutSuffix(strings.TrimSpace(rest), unit)
	if !ok {
		return 0, ErrNotReport
	}

	v, err := strconv.ParseUint(strings.TrimSpace(rest), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNotReport, err)
	}
	return uint32(v), nil
}
