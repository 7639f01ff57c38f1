package serial

import (
	"io"
)

// Port represents the firmware console connection.
// Implementations:
// - Native serial (using github.com/tarm/serial)
// - Any io.ReadWriteCloser wrapped for tests
type Port interface {
	io.ReadWriteCloser

	// Flush flushes any buffered data
	Flush() error
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyACM0", "COM3")
	Device string

	// Baud rate of the firmware console UART
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int
}

// DefaultConfig returns the configuration the parking assistant console uses
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        9600, // Firmware console rate
		ReadTimeout: 0,    // Line reader blocks until data arrives
	}
}

// Validate rejects configurations that cannot open a port
func (c *Config) Validate() error {
	if c.Device == "" {
		return ErrNoDevice
	}
	if c.Baud <= 0 {
		return ErrBadBaud
	}
	if c.ReadTimeout < 0 {
		return ErrBadTimeout
	}
	return nil
}
