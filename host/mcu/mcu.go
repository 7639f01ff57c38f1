package mcu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"parkassist/core"
	"parkassist/host/serial"
	"parkassist/host/telemetry"
)

// ErrNotConnected is returned when monitoring without an open port
var ErrNotConnected = errors.New("not connected")

// MCU represents a connection to the parking assistant's console
type MCU struct {
	// Serial port
	port serial.Port

	// Session statistics
	summary *telemetry.Summary

	// Connection state
	connected bool
}

// NewMCU creates a new MCU instance (not yet connected)
func NewMCU() *MCU {
	return &MCU{
		summary: telemetry.NewSummary(),
	}
}

// Connect connects to an MCU via serial port
func (m *MCU) Connect(device string) error {
	return m.ConnectWithConfig(serial.DefaultConfig(device))
}

// ConnectWithConfig connects to an MCU with a custom serial config
func (m *MCU) ConnectWithConfig(cfg *serial.Config) error {
	// Open serial port
	port, err := serial.Open(cfg)
	if err != nil {
		return fmt.Errorf("failed to open serial port: %w", err)
	}

	m.Attach(port)

	// Drop anything buffered before we attached
	if err := port.Flush(); err != nil {
		return fmt.Errorf("failed to flush serial port: %w", err)
	}

	return nil
}

// Attach uses an already open port
func (m *MCU) Attach(port serial.Port) {
	m.port = port
	m.connected = true
}

// Close closes the connection to the MCU
func (m *MCU) Close() error {
	if m.port != nil {
		if err := m.port.Close(); err != nil {
			return err
		}
	}
	m.connected = false
	return nil
}

// Monitor decodes console lines until ctx is cancelled or the port closes.
// handle is called for every line; changed reports a proximity state change.
func (m *MCU) Monitor(ctx context.Context, handle func(ev telemetry.Event, changed bool)) error {
	if !m.connected {
		return ErrNotConnected
	}

	err := telemetry.Watch(ctx, m.port, func(ev telemetry.Event) {
		changed := m.summary.Add(ev)
		if handle != nil {
			handle(ev, changed)
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("monitor: %w", err)
	}
	return nil
}

// Summary returns the statistics gathered so far
func (m *MCU) Summary() *telemetry.Summary {
	return m.summary
}

// PrintSummary writes a human readable session summary
func (m *MCU) PrintSummary(w io.Writer, elapsed time.Duration) {
	s := m.summary

	fmt.Fprintf(w, "\n=== Session Summary (%s) ===\n", elapsed.Round(time.Second))
	fmt.Fprintf(w, "Reports:     %d\n", s.Reports)
	fmt.Fprintf(w, "Other lines: %d\n", s.Other)
	fmt.Fprintf(w, "Restarts:    %d\n", s.Restarts)
	if s.Reports == 0 {
		return
	}
	fmt.Fprintf(w, "Closest:     %d cm\n", s.MinDistance)
	fmt.Fprintf(w, "Fastest:     %d cm/s\n", s.MaxSpeed)
	fmt.Fprintf(w, "Transitions: %d\n", s.Transitions)
	for _, st := range []core.State{core.StateDanger, core.StateCaution, core.StateSafe} {
		fmt.Fprintf(w, "  %-8s %d\n", st, s.ByState[st])
	}
}

// IsConnected returns whether the MCU is connected
func (m *MCU) IsConnected() bool {
	return m.connected
}
