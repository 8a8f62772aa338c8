//go:build rp2040

// Package pico is the board description for Raspberry Pi Pico builds.
//
// Drivers come up in this order: GPIO bank, UART0 (the console), then any
// variant drivers selected by build tags (see variant_*.go). The post-driver
// hook routes the console pins to UART0 and lights the LED.
package pico

import (
	"machine"

	"bootcode-go/bsp"
	"bootcode-go/drivers/gpio"
	"bootcode-go/drivers/pl011"
	"bootcode-go/kernel/console"
	"bootcode-go/kernel/driver"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
)

const consoleBaud = 115200

// Board builds the Pico board. Call it once, before the kernel starts.
func Board() *bsp.Board {
	gp := gpio.New(machine.LED)
	uart := pl011.New(uartx.UART0, pl011.Config{
		BaudRate: consoleBaud,
		TX:       machine.UART0_TX_PIN,
		RX:       machine.UART0_RX_PIN,
	})
	// Serial terminals send CR on Enter and expect CRLF line endings.
	con := console.NewUART(uart.Port(), console.UARTConfig{CRToLF: true, CRLF: true})

	drivers := []driver.Driver{gp, uart}
	drivers = append(drivers, variantDrivers()...)

	return bsp.Must(bsp.Config{
		Name:    boardName,
		Drivers: drivers,
		Console: con,
		PostDriverInit: func() {
			gp.MapUART(uart.Pins())
			gp.SetLED(true)
		},
	})
}
