//go:build rp2040

package pio

// PIO trigger backend using tinygo-org/pio package
// The pulse is timed by the state machine, so interrupts cannot
// stretch it.

import (
	"machine"

	rp2pio "github.com/tinygo-org/pio/rp2-pio"

	"parkassist/core"
)

// PIO program for the trigger pulse, one cycle per microsecond.
//
// Program flow:
//  1. Block until a word arrives in the TX FIFO
//  2. Hold the pin low for the settle time (2 cycles)
//  3. Drive it high for the pulse width (10 cycles)
//  4. Drive it low again
//
// buildTriggerProgram creates the trigger PIO program using AssemblerV0
func buildTriggerProgram() []uint16 {
	asm := rp2pio.AssemblerV0{SidesetBits: 0}
	return []uint16{
		// .wrap_target
		asm.Pull(false, true).Encode(),                   // 0: pull block
		asm.Set(rp2pio.SetDestPins, 0).Delay(1).Encode(), // 1: set pins, 0 [1]
		asm.Set(rp2pio.SetDestPins, 1).Delay(9).Encode(), // 2: set pins, 1 [9]
		asm.Set(rp2pio.SetDestPins, 0).Encode(),          // 3: set pins, 0
		// .wrap
	}
}

const triggerPIOOrigin = 0 // Load at offset 0

// PIOTrigger implements core.TriggerOutput on a PIO state machine
type PIOTrigger struct {
	pio    *rp2pio.PIO
	sm     rp2pio.StateMachine
	pin    machine.Pin
	clock  core.Clock
	offset uint8
}

var _ core.TriggerOutput = (*PIOTrigger)(nil)

// NewPIOTrigger claims the first free state machine for the trigger on pin
func NewPIOTrigger(pin core.GPIOPin, clock core.Clock) (*PIOTrigger, error) {
	for _, pioHW := range []*rp2pio.PIO{rp2pio.PIO0, rp2pio.PIO1} {
		for smNum := uint8(0); smNum < 4; smNum++ {
			sm := pioHW.StateMachine(smNum)
			if !sm.TryClaim() {
				continue
			}

			t := &PIOTrigger{
				pio:   pioHW,
				sm:    sm,
				pin:   machine.Pin(pin),
				clock: clock,
			}
			if err := t.init(); err != nil {
				sm.Unclaim()
				return nil, err
			}
			return t, nil
		}
	}

	return nil, ErrNoStateMachine
}

func (t *PIOTrigger) init() error {
	program := buildTriggerProgram()
	offset, err := t.pio.AddProgram(program, triggerPIOOrigin)
	if err != nil {
		return err
	}
	t.offset = offset

	t.pin.Configure(machine.PinConfig{Mode: t.pio.PinMode()})

	cfg := rp2pio.DefaultStateMachineConfig()
	cfg.SetSetPins(t.pin, 1)
	cfg.SetWrap(offset+uint8(len(program))-1, offset)

	// 1 MHz state machine clock, one cycle per microsecond
	cfg.SetClkDivIntFrac(uint16(machine.CPUFrequency()/1000000), 0)

	// Initialize state machine before setting pin directions
	t.sm.Init(offset, cfg)
	t.sm.SetPindirsConsecutive(t.pin, 1, true)
	t.sm.SetPinsConsecutive(t.pin, 1, false)

	t.sm.SetEnabled(true)
	return nil
}

// Fire queues one pulse and returns once it has been emitted
func (t *PIOTrigger) Fire() {
	for t.sm.IsTxFIFOFull() {
		// Busy wait - previous pulse still queued
	}
	t.sm.TxPut(1)

	for !t.sm.IsTxFIFOEmpty() {
		// Wait for the program to pull the word
	}
	t.clock.Sleep(core.TriggerSettle + core.TriggerPulse)
}
