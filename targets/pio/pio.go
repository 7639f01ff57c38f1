// Package pio generates sensor waveforms on RP2040 PIO state machines.
package pio

import "errors"

// ErrNoStateMachine is returned when every state machine is claimed
var ErrNoStateMachine = errors.New("no free PIO state machine")
