package core

import "errors"

var (
	// ErrNoEcho is returned when a measurement timed out waiting for an edge
	ErrNoEcho = errors.New("no echo within timeout")

	// ErrNilDriver is returned when a mandatory capability is missing
	ErrNilDriver = errors.New("driver not configured")

	// ErrCounterTooFast is returned when the capture counter would wrap more
	// than once within EchoTimeout
	ErrCounterTooFast = errors.New("capture counter wraps within echo timeout")
)
