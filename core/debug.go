package core

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

// CaptureEvent records one step of an echo measurement for post-mortem analysis
type CaptureEvent struct {
	EventType uint8  // Event type code
	Clock     uint32 // Uptime in microseconds at the event
	Value1    uint32 // Context-dependent value
	Value2    uint32 // Context-dependent value
}

// Event type codes
const (
	EvtTrigger = 1 // Trigger pulse sent
	EvtRise    = 2 // Rising edge captured, v1=counter
	EvtFall    = 3 // Falling edge captured, v1=counter, v2=pulse width
	EvtTimeout = 4 // Edge wait expired, v1=edge
	EvtWrap    = 5 // Counter wrapped during the pulse, v1=rising, v2=falling
	EvtIgnored = 6 // Edge seen while not armed for it, v1=edge, v2=counter
)

const (
	CaptureRingSize = 32 // Keep last 32 events for post-mortem
)

var (
	// debugPrintln is the global debug print function (can be set by platform code)
	debugPrintln DebugWriter = func(s string) {} // No-op by default

	// debugEnabled controls whether debug output is active
	debugEnabled bool = false

	// Capture event ring buffer (non-blocking, for post-mortem)
	captureRing     [CaptureRingSize]CaptureEvent
	captureRingHead uint8
	captureEnabled  bool   = true
	captureCount    uint32 // Measurements started since the last clear
)

// SetDebugWriter sets the platform-specific debug output function
// This allows platforms to redirect debug output to UART, USB, stderr, etc.
func SetDebugWriter(writer DebugWriter) {
	if writer == nil {
		writer = func(s string) {}
	}
	debugPrintln = writer
}

// SetDebugEnabled enables or disables debug output
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// IsDebugEnabled returns whether debug output is enabled
func IsDebugEnabled() bool {
	return debugEnabled
}

// DebugPrintln writes a debug message using the platform-specific writer
func DebugPrintln(msg string) {
	if debugEnabled && debugPrintln != nil {
		debugPrintln(msg)
	}
}

// SetCaptureRecording turns capture event recording on or off
func SetCaptureRecording(enabled bool) {
	captureEnabled = enabled
}

// RecordCapture stores a capture event in the ring buffer.
// Always non-blocking and allocation free. Safe to call from interrupts.
func RecordCapture(eventType uint8, clock, value1, value2 uint32) {
	if !captureEnabled {
		return
	}
	state := disableInterrupts()
	defer restoreInterrupts(state)

	if eventType == EvtTrigger {
		captureCount++
	}
	idx := captureRingHead
	captureRing[idx] = CaptureEvent{
		EventType: eventType,
		Clock:     clock,
		Value1:    value1,
		Value2:    value2,
	}
	captureRingHead = (idx + 1) % CaptureRingSize
}

// CaptureEvents returns the recorded events, oldest first
func CaptureEvents() []CaptureEvent {
	events := make([]CaptureEvent, 0, CaptureRingSize)
	state := disableInterrupts()
	defer restoreInterrupts(state)

	start := captureRingHead
	for i := uint8(0); i < CaptureRingSize; i++ {
		evt := captureRing[(start+i)%CaptureRingSize]
		if evt.EventType == 0 {
			continue // Empty slot
		}
		events = append(events, evt)
	}
	return events
}

// DumpCaptureRing outputs the capture ring buffer through the debug writer.
// Output is unconditional so it can be called after a fault with debug off.
func DumpCaptureRing() {
	if debugPrintln == nil {
		return
	}

	debugPrintln("[CAPTURE] === Capture Ring Dump ===")
	debugPrintln("[CAPTURE] Measurements started: " + utoa(captureCount))

	for _, evt := range CaptureEvents() {
		var name string
		switch evt.EventType {
		case EvtTrigger:
			name = "TRIGGER"
		case EvtRise:
			name = "RISE"
		case EvtFall:
			name = "FALL"
		case EvtTimeout:
			name = "TIMEOUT!"
		case EvtWrap:
			name = "WRAP"
		case EvtIgnored:
			name = "IGNORED"
		default:
			name = "UNKNOWN"
		}

		debugPrintln("[CAPTURE] " + name +
			" us=" + utoa(evt.Clock) +
			" v1=" + utoa(evt.Value1) +
			" v2=" + utoa(evt.Value2))
	}
	debugPrintln("[CAPTURE] === End Dump ===")
}

// ClearCaptureRing clears the capture buffer
func ClearCaptureRing() {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	for i := range captureRing {
		captureRing[i] = CaptureEvent{}
	}
	captureRingHead = 0
	captureCount = 0
}
