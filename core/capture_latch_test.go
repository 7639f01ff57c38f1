package core

import "testing"

func TestEdgeLatch(t *testing.T) {
	ClearCaptureRing()
	defer ClearCaptureRing()

	var l EdgeLatch
	l.Arm(EdgeRising)
	l.Clear()

	l.OnEdge(EdgeFalling, 100)
	if l.Captured() {
		t.Fatal("Falling edge latched while armed for rising")
	}

	l.OnEdge(EdgeRising, 0x12345)
	if !l.Captured() {
		t.Fatal("Rising edge not latched")
	}
	if l.Value() != 0x2345 {
		t.Errorf("Expected value masked to 16 bits, got %#x", l.Value())
	}

	l.Clear()
	if l.Captured() {
		t.Error("Capture still latched after Clear")
	}
}

func TestEdgeLatchRecordsEdgesLostWhileLatched(t *testing.T) {
	ClearCaptureRing()
	defer ClearCaptureRing()

	var l EdgeLatch
	l.Arm(EdgeRising)
	l.OnEdge(EdgeRising, 1000)

	// Short pulse: the fall arrives before the engine re-arms for it
	l.OnEdge(EdgeFalling, 1150)
	l.Arm(EdgeFalling)
	if l.Value() != 1000 {
		t.Errorf("Latched value overwritten: %d", l.Value())
	}

	// A second rising edge while latched is also a lost edge
	l.OnEdge(EdgeRising, 1300)

	events := CaptureEvents()
	if len(events) != 2 {
		t.Fatalf("Expected 2 ignored edges, got %+v", events)
	}
	want := []CaptureEvent{
		{EventType: EvtIgnored, Clock: 1150, Value1: uint32(EdgeFalling), Value2: 1150},
		{EventType: EvtIgnored, Clock: 1300, Value1: uint32(EdgeRising), Value2: 1300},
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, events[i], want[i])
		}
	}
}
