package core

import (
	"math"
	"time"
)

// SpeedOfSound in air at about 20 °C, in centimeters per second
const SpeedOfSound = 34300

// SamplePeriod is the fixed delay between measurements
const SamplePeriod = 200 * time.Millisecond

// DistanceCM converts an echo pulse width to a one-way distance.
// The echo covers the distance twice, so
// distance = (ticks * speedOfSound) / (2 * tickFreq), truncated.
// The result is in the length unit of speedOfSound (cm for SpeedOfSound).
func DistanceCM(ticks Ticks, tickFreq uint32, speedOfSound uint32) uint32 {
	if tickFreq == 0 {
		return 0
	}
	return uint32((uint64(ticks) * uint64(speedOfSound)) / (2 * uint64(tickFreq)))
}

// SpeedCMPerS returns the magnitude of the change between two distance
// samples scaled to one second. Approach and recession are not distinguished.
// The result saturates at math.MaxUint32.
func SpeedCMPerS(current, previous uint32, samplesPerSecond uint32) uint32 {
	delta := int64(current) - int64(previous)
	if delta < 0 {
		delta = -delta
	}
	speed := uint64(delta) * uint64(samplesPerSecond)
	if speed > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(speed)
}

// SamplesPerSecond returns how many samples of period fit in one second
func SamplesPerSecond(period time.Duration) uint32 {
	if period <= 0 {
		return 0
	}
	return uint32(time.Second / period)
}
