package core

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

const (
	testRed   GPIOPin = 1
	testGreen GPIOPin = 3
)

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("uart fault")
}

func newTestMonitor(t *testing.T, sensor *scriptedSensor, out *bytes.Buffer) (*Monitor, *MockGPIODriver) {
	t.Helper()
	gpio := NewMockGPIODriver(nil)
	led := NewLEDIndicator(gpio, testRed, testGreen)
	if err := led.Configure(); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}
	var mon *Monitor
	var err error
	if out == nil {
		mon, err = NewMonitor(NewRangefinder(newTestEchoTimer(t, sensor)), led, nil, sensor.clock)
	} else {
		mon, err = NewMonitor(NewRangefinder(newTestEchoTimer(t, sensor)), led, out, sensor.clock)
	}
	if err != nil {
		t.Fatalf("NewMonitor failed: %v", err)
	}
	return mon, gpio
}

func TestNewMonitorNilDriver(t *testing.T) {
	if _, err := NewMonitor(nil, nil, nil, nil); err != ErrNilDriver {
		t.Errorf("Expected ErrNilDriver, got %v", err)
	}
}

func TestStepEndToEnd(t *testing.T) {
	clock := &fakeClock{step: time.Microsecond}
	sensor := newScriptedSensor(clock, 400000, 1000, 1500)
	var out bytes.Buffer
	mon, gpio := newTestMonitor(t, sensor, &out)

	sample, next, err := mon.Step(SamplingContext{PreviousDistance: 25})
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}

	if sample.Echo.Width() != 500 {
		t.Errorf("Expected pulse width 500, got %d", sample.Echo.Width())
	}
	if sample.Distance != 21 {
		t.Errorf("Expected distance 21, got %d", sample.Distance)
	}
	if sample.Speed != 20 {
		t.Errorf("Expected speed 20, got %d", sample.Speed)
	}
	if sample.State != StateCaution {
		t.Errorf("Expected CAUTION, got %s", sample.State)
	}
	if next.PreviousDistance != 21 {
		t.Errorf("Expected carried distance 21, got %d", next.PreviousDistance)
	}
	if got := out.String(); got != "Distance: 21 cm | Speed: 20 cm/s\n" {
		t.Errorf("Unexpected telemetry %q", got)
	}
	if !gpio.pins[testRed] || !gpio.pins[testGreen] {
		t.Error("Expected both LEDs on for CAUTION")
	}
}

func TestStepTimeoutIsDanger(t *testing.T) {
	clock := &fakeClock{step: time.Microsecond}
	sensor := newScriptedSensor(clock, 400000, 1000, 1500)
	sensor.fallAt = -1
	var out bytes.Buffer
	mon, gpio := newTestMonitor(t, sensor, &out)

	sample, next, err := mon.Step(SamplingContext{PreviousDistance: 0})
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if sample.Distance != 0 || sample.State != StateDanger {
		t.Errorf("Expected distance 0 and DANGER, got %d %s", sample.Distance, sample.State)
	}
	if !sample.Echo.TimedOut() {
		t.Error("Expected the sample to record the timeout")
	}
	if next.PreviousDistance != 0 {
		t.Errorf("Expected carried distance 0, got %d", next.PreviousDistance)
	}
	if !gpio.pins[testRed] || gpio.pins[testGreen] {
		t.Error("Expected red only for DANGER")
	}
	if got := out.String(); got != "Distance: 0 cm | Speed: 0 cm/s\n" {
		t.Errorf("Unexpected telemetry %q", got)
	}
}

func TestStepSpeedOverride(t *testing.T) {
	clock := &fakeClock{step: time.Microsecond}
	// 200 cm at 1MHz: 2*200/34300 s = 11662 ticks
	sensor := newScriptedSensor(clock, 1000000, 0, 11662)
	mon, _ := newTestMonitor(t, sensor, nil)

	sample, _, err := mon.Step(SamplingContext{PreviousDistance: 230})
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if sample.Distance != 200 || sample.Speed != 150 {
		t.Fatalf("Expected 200 cm at 150 cm/s, got %d cm at %d cm/s", sample.Distance, sample.Speed)
	}
	if sample.State != StateDanger {
		t.Errorf("Expected DANGER for a fast object, got %s", sample.State)
	}
}

func TestStepOutputError(t *testing.T) {
	clock := &fakeClock{step: time.Microsecond}
	sensor := newScriptedSensor(clock, 400000, 1000, 1500)
	gpio := NewMockGPIODriver(nil)
	led := NewLEDIndicator(gpio, testRed, testGreen)
	mon, err := NewMonitor(NewRangefinder(newTestEchoTimer(t, sensor)), led, failingWriter{}, clock)
	if err != nil {
		t.Fatalf("NewMonitor failed: %v", err)
	}

	sample, next, err := mon.Step(SamplingContext{PreviousDistance: 25})
	if err == nil {
		t.Fatal("Expected the telemetry error")
	}
	if sample.State != StateCaution || next.PreviousDistance != 21 {
		t.Errorf("Sample should be valid despite the output error: %+v", sample)
	}
	if !gpio.pins[testRed] || !gpio.pins[testGreen] {
		t.Error("Indicator should still update after a telemetry error")
	}
}

func TestRunCarriesContext(t *testing.T) {
	clock := &fakeClock{step: time.Microsecond}
	sensor := newScriptedSensor(clock, 400000, 1000, 1500)
	var out bytes.Buffer
	mon, _ := newTestMonitor(t, sensor, &out)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var samples []Sample
	var sleptAt []time.Duration
	mon.SetSampleHook(func(s Sample) {
		samples = append(samples, s)
		sleptAt = append(sleptAt, clock.now)
		if len(samples) == 3 {
			cancel()
		}
	})

	if err := mon.Run(ctx); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if len(samples) != 3 {
		t.Fatalf("Expected 3 samples, got %d", len(samples))
	}

	// First sample starts from distance 0, later ones from the previous sample
	if samples[0].Speed != 105 || samples[0].State != StateDanger {
		t.Errorf("First sample: expected speed 105 DANGER, got %d %s", samples[0].Speed, samples[0].State)
	}
	for _, s := range samples[1:] {
		if s.Speed != 0 || s.State != StateCaution {
			t.Errorf("Expected steady CAUTION sample, got speed %d %s", s.Speed, s.State)
		}
	}

	// The inter-sample delay separates iterations
	if gap := sleptAt[1] - sleptAt[0]; gap < SamplePeriod {
		t.Errorf("Expected at least %v between samples, got %v", SamplePeriod, gap)
	}

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 4 || lines[0]+"\n" != Banner {
		t.Fatalf("Expected banner and 3 reports, got %q", out.String())
	}
	if lines[1] != "Distance: 21 cm | Speed: 105 cm/s" {
		t.Errorf("Unexpected first report %q", lines[1])
	}
}

func TestRunCancelled(t *testing.T) {
	clock := &fakeClock{step: time.Microsecond}
	sensor := newScriptedSensor(clock, 400000, 1000, 1500)
	var out bytes.Buffer
	mon, _ := newTestMonitor(t, sensor, &out)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := mon.Run(ctx); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if sensor.fired != 0 {
		t.Errorf("Expected no measurement after cancel, got %d", sensor.fired)
	}
	if out.String() != Banner {
		t.Errorf("Expected only the banner, got %q", out.String())
	}
}
