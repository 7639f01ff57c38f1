package serial

import "errors"

var (
	ErrNilConfig  = errors.New("config cannot be nil")
	ErrNoDevice   = errors.New("device path is empty")
	ErrBadBaud    = errors.New("baud rate must be positive")
	ErrBadTimeout = errors.New("read timeout must not be negative")
)
