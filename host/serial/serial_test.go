package serial

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/tarm/serial"
)

func TestDefaultConfig(t *testing.T) {
	got := DefaultConfig("/dev/ttyACM0")
	want := &Config{Device: "/dev/ttyACM0", Baud: 9600}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DefaultConfig (-want +got):\n%s", diff)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"no device", Config{Baud: 9600}, ErrNoDevice},
		{"zero baud", Config{Device: "COM3"}, ErrBadBaud},
		{"negative timeout", Config{Device: "COM3", Baud: 9600, ReadTimeout: -1}, ErrBadTimeout},
		{"ok", Config{Device: "COM3", Baud: 115200, ReadTimeout: 100}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestOpenRejectsBadConfig(t *testing.T) {
	if _, err := Open(nil); !errors.Is(err, ErrNilConfig) {
		t.Errorf("Open(nil) = %v, want %v", err, ErrNilConfig)
	}
	if _, err := Open(&Config{Baud: 9600}); !errors.Is(err, ErrNoDevice) {
		t.Errorf("Open without device = %v, want %v", err, ErrNoDevice)
	}
}

func TestTarmConfig(t *testing.T) {
	got := tarmConfig(&Config{Device: "/dev/ttyUSB0", Baud: 9600, ReadTimeout: 250})
	want := &serial.Config{
		Name:        "/dev/ttyUSB0",
		Baud:        9600,
		ReadTimeout: 250 * time.Millisecond,
		Size:        8,
		Parity:      serial.ParityNone,
		StopBits:    serial.Stop1,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tarmConfig (-want +got):\n%s", diff)
	}
}
