//go:build rp2040

// Package gpio is the RP2040 GPIO bank as a boot driver: it claims the
// status LED and, from the board's post-driver hook, hands the console pins
// to the UART function.
package gpio

import "machine"

// Compatible is the identifier reported to the kernel.
const Compatible = "raspberrypi,rp2040-gpio"

// Driver owns the GPIO bank during bring-up.
type Driver struct {
	led machine.Pin
}

// New returns a GPIO driver using led as the status LED.
func New(led machine.Pin) *Driver { return &Driver{led: led} }

// Compatible implements driver.Driver.
func (d *Driver) Compatible() string { return Compatible }

// Init implements driver.Driver. The LED starts off; it is lit once the
// kernel leaves early init.
func (d *Driver) Init() error {
	d.led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	d.led.Low()
	return nil
}

// MapUART switches tx and rx to their UART function.
func (d *Driver) MapUART(tx, rx machine.Pin) {
	tx.Configure(machine.PinConfig{Mode: machine.PinUART})
	rx.Configure(machine.PinConfig{Mode: machine.PinUART})
}

// SetLED drives the status LED.
func (d *Driver) SetLED(on bool) { d.led.Set(on) }
