//go:build rp2040

// Package pl011 drives the RP2040's PL011 UARTs through uartx and exposes
// the configured port to the console.
package pl011

import (
	"machine"

	"bootcode-go/kernel/console"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers"
)

// Compatible is the identifier reported to the kernel.
const Compatible = "arm,pl011"

// Ensure the port satisfies the console contract at compile time.
var _ drivers.UART = (*uartx.UART)(nil)

// Config selects pins and line settings. Zero values take defaults.
type Config struct {
	BaudRate uint32 // default 115200
	TX, RX   machine.Pin
}

// Driver brings up one UART instance.
type Driver struct {
	u   *uartx.UART
	cfg Config
}

// New binds a driver to hw (uartx.UART0 or uartx.UART1).
func New(hw *uartx.UART, cfg Config) *Driver {
	if cfg.BaudRate == 0 {
		cfg.BaudRate = 115200
	}
	return &Driver{u: hw, cfg: cfg}
}

// Compatible implements driver.Driver.
func (d *Driver) Compatible() string { return Compatible }

// Init implements driver.Driver: baud, pins, then 8N1.
func (d *Driver) Init() error {
	if err := d.u.Configure(uartx.UARTConfig{
		BaudRate: d.cfg.BaudRate,
		TX:       d.cfg.TX,
		RX:       d.cfg.RX,
	}); err != nil {
		return err
	}
	return d.u.SetFormat(8, 1, uartx.ParityNone)
}

// Port returns the UART for console use. Only valid after Init succeeded.
func (d *Driver) Port() console.Port { return d.u }

// Pins returns the configured TX and RX pins.
func (d *Driver) Pins() (tx, rx machine.Pin) { return d.cfg.TX, d.cfg.RX }
