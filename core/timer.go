package core

import "time"

// Ticks is a capture counter value
type Ticks uint32

// MaxTicks is the largest value of the 16-bit capture counter. The counter
// wraps to 0 after it.
const MaxTicks Ticks = 0xFFFF

// Clock is the monotonic time source the timing engine waits on.
// Uptime must never go backwards.
type Clock interface {
	// Uptime returns the time elapsed since an arbitrary fixed origin
	Uptime() time.Duration

	// Sleep blocks for at least d
	Sleep(d time.Duration)
}

// TicksFromUS converts microseconds to counter ticks at freq Hz
func TicksFromUS(us uint32, freq uint32) uint32 {
	return uint32((uint64(us) * uint64(freq)) / 1000000)
}

// TicksToUS converts counter ticks at freq Hz to microseconds
func TicksToUS(ticks uint32, freq uint32) uint32 {
	if freq == 0 {
		return 0
	}
	return uint32((uint64(ticks) * 1000000) / uint64(freq))
}

// uptimeUS truncates a clock reading to 32-bit microseconds for event logs
func uptimeUS(c Clock) uint32 {
	return uint32(c.Uptime() / time.Microsecond)
}
