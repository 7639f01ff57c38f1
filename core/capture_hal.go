package core

// Edge selects which transition of the echo line a capture latches on
type Edge uint8

const (
	EdgeRising Edge = iota + 1
	EdgeFalling
)

func (e Edge) String() string {
	switch e {
	case EdgeRising:
		return "rising"
	case EdgeFalling:
		return "falling"
	default:
		return "none"
	}
}

// CaptureTimer is the abstract edge-capture interface that core code uses.
// It models a free-running counter that latches its value when the armed
// edge occurs on the echo input.
type CaptureTimer interface {
	// Arm selects the edge the next capture latches on
	Arm(edge Edge)

	// Clear discards any latched capture
	Clear()

	// Captured reports whether the armed edge has occurred since the last Clear
	Captured() bool

	// Value returns the counter value latched at the edge, in [0, MaxTicks]
	Value() Ticks

	// Frequency returns the counter rate in Hz
	Frequency() uint32
}
