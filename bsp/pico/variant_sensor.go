//go:build rp2040 && pico_sensor

package pico

import (
	"machine"

	"bootcode-go/drivers/aht20"
	"bootcode-go/drivers/i2c"
	"bootcode-go/kernel/driver"
)

const boardName = "Raspberry Pi Pico + AHT20"

// The controller must come before the sensor that sits on it.
func variantDrivers() []driver.Driver {
	bus := i2c.New(machine.I2C0, machine.GP4, machine.GP5, 400_000)
	return []driver.Driver{
		bus,
		aht20.New(bus.Bus(), aht20.Config{}),
	}
}
