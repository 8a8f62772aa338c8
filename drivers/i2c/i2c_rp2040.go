//go:build rp2040

// Package i2c brings up an RP2040 I2C controller so that sensor drivers
// later in the board's list can use it.
package i2c

import (
	"machine"

	"tinygo.org/x/drivers"
)

// Compatible is the identifier reported to the kernel.
const Compatible = "raspberrypi,rp2040-i2c"

// Driver configures one controller.
type Driver struct {
	hw       *machine.I2C
	sda, scl machine.Pin
	hz       uint32
}

// New binds a driver to hw with the given pins. hz == 0 means 400 kHz.
func New(hw *machine.I2C, sda, scl machine.Pin, hz uint32) *Driver {
	if hz == 0 {
		hz = 400_000
	}
	return &Driver{hw: hw, sda: sda, scl: scl, hz: hz}
}

// Compatible implements driver.Driver.
func (d *Driver) Compatible() string { return Compatible }

// Init implements driver.Driver.
func (d *Driver) Init() error {
	d.sda.Configure(machine.PinConfig{Mode: machine.PinI2C})
	d.scl.Configure(machine.PinConfig{Mode: machine.PinI2C})
	return d.hw.Configure(machine.I2CConfig{
		SDA:       d.sda,
		SCL:       d.scl,
		Frequency: d.hz,
	})
}

// Bus returns the controller for device drivers. Only valid after Init.
func (d *Driver) Bus() drivers.I2C { return d.hw }
