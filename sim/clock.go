package sim

import "time"

// Clock is a deterministic core.Clock. Every Uptime call costs PollCost so
// busy waits make progress without real time passing.
type Clock struct {
	now      time.Duration
	PollCost time.Duration
}

// NewClock creates a clock at time zero. A non-positive pollCost is
// raised to 1 us so polling loops always terminate.
func NewClock(pollCost time.Duration) *Clock {
	if pollCost <= 0 {
		pollCost = time.Microsecond
	}
	return &Clock{PollCost: pollCost}
}

// Uptime returns the simulated time and charges one poll
func (c *Clock) Uptime() time.Duration {
	c.now += c.PollCost
	return c.now
}

// Sleep advances the simulated time by d
func (c *Clock) Sleep(d time.Duration) {
	if d > 0 {
		c.now += d
	}
}

// Now returns the simulated time without charging a poll
func (c *Clock) Now() time.Duration {
	return c.now
}
