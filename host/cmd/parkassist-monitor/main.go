package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"parkassist/host/mcu"
	"parkassist/host/serial"
	"parkassist/host/telemetry"
)

var (
	device      = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud        = flag.Int("baud", 9600, "Console baud rate")
	readTimeout = flag.Int("read-timeout", 0, "Read timeout in ms (0 = blocking)")
	changesOnly = flag.Bool("changes", false, "Only print proximity state changes")
	verbose     = flag.Bool("verbose", false, "Also print non-report console lines")
)

func main() {
	flag.Parse()

	fmt.Println("Parking Assistant Monitor")
	fmt.Println("=========================")

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud
	cfg.ReadTimeout = *readTimeout

	mcuConn := mcu.NewMCU()

	fmt.Printf("Connecting to MCU on %s...\n", *device)
	if err := mcuConn.ConnectWithConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer mcuConn.Close()

	fmt.Println("Connected successfully! Press Ctrl+C to stop.")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	err := mcuConn.Monitor(ctx, func(ev telemetry.Event, changed bool) {
		printEvent(ev, changed)
	})
	mcuConn.PrintSummary(os.Stdout, time.Since(start))

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printEvent(ev telemetry.Event, changed bool) {
	stamp := time.Now().Format("15:04:05.000")

	switch {
	case ev.Banner:
		fmt.Printf("%s  -- sensor restarted --\n", stamp)

	case ev.Report != nil:
		if *changesOnly && !changed {
			return
		}
		marker := " "
		if changed {
			marker = "*"
		}
		fmt.Printf("%s %s[%-7s] %s\n", stamp, marker, ev.Report.State, ev.Report)

	case *verbose:
		fmt.Printf("%s  ? %s\n", stamp, ev.Line)
	}
}
