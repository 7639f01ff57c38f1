//go:build rp2040

package main

import (
	"machine"
)

var consoleUART *machine.UART

// initConsole configures UART0 for telemetry
func initConsole() (*machine.UART, error) {
	consoleUART = machine.UART0

	err := consoleUART.Configure(machine.UARTConfig{
		BaudRate: consoleBaud,
		TX:       consoleTX,
		RX:       consoleRX,
	})
	if err != nil {
		return nil, err
	}

	return consoleUART, nil
}

// consoleDebug is the core.DebugWriter for the console
func consoleDebug(msg string) {
	if consoleUART == nil {
		return
	}
	consoleUART.Write([]byte(msg + "\r\n"))
}
