//go:build rp2040

package main

import (
	"runtime/volatile"
	"time"
	"unsafe"

	"parkassist/core"
)

// RP2040 Timer peripheral memory map
const (
	timerBase     = 0x40054000
	timerTIMERAWH = timerBase + 0x24 // Raw timer high word
	timerTIMERAWL = timerBase + 0x28 // Raw timer low word
)

// The system timer counts microseconds
const timerFreq = 1000000

var (
	timerRAWH = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWH)))
	timerRAWL = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWL)))
)

// HardwareClock implements core.Clock on the 64-bit system timer
type HardwareClock struct{}

var _ core.Clock = HardwareClock{}

// Uptime reads the full 64-bit timer
func (HardwareClock) Uptime() time.Duration {
	return time.Duration(getHardwareUptime()) * time.Microsecond
}

// Sleep blocks for d. The scheduler parks the goroutine so the capture
// interrupt still runs.
func (HardwareClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

// getHardwareTime returns the low 32 bits of the microsecond counter
func getHardwareTime() uint32 {
	return timerRAWL.Get()
}

// getHardwareUptime reads the full 64-bit RP2040 hardware timer
func getHardwareUptime() uint64 {
	// Must read high first, then low, then high again to detect rollover
	for {
		high1 := timerRAWH.Get()
		low := timerRAWL.Get()
		high2 := timerRAWH.Get()

		// If high didn't change, we got a consistent reading
		if high1 == high2 {
			return (uint64(high1) << 32) | uint64(low)
		}
	}
}
