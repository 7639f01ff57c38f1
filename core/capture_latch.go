package core

import "sync/atomic"

// EdgeLatch holds the capture state shared between an edge interrupt and
// the polling timing engine. It implements the Arm/Clear/Captured/Value
// half of CaptureTimer; platform code adds the counter frequency and calls
// OnEdge from its pin interrupt.
type EdgeLatch struct {
	armed   atomic.Uint32 // Edge, 0 when disarmed
	latched atomic.Bool
	value   atomic.Uint32
}

// OnEdge handles one pin transition seen at counter reading now. The first
// transition matching the armed edge is latched; every other transition is
// recorded as EvtIgnored. Safe to call from interrupt context.
func (l *EdgeLatch) OnEdge(edge Edge, now uint32) {
	ticks := now & uint32(MaxTicks)
	if l.latched.Load() || Edge(l.armed.Load()) != edge {
		RecordCapture(EvtIgnored, now, uint32(edge), ticks)
		return
	}

	l.value.Store(ticks)
	l.latched.Store(true)
}

// Arm selects the edge to latch
func (l *EdgeLatch) Arm(edge Edge) {
	l.armed.Store(uint32(edge))
}

// Clear drops any latched capture
func (l *EdgeLatch) Clear() {
	l.latched.Store(false)
}

// Captured reports whether the armed edge has been latched
func (l *EdgeLatch) Captured() bool {
	return l.latched.Load()
}

// Value returns the latched counter value
func (l *EdgeLatch) Value() Ticks {
	return Ticks(l.value.Load())
}
