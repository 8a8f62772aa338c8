//go:build rp2040 && !pico_sensor

package pico

import "bootcode-go/kernel/driver"

const boardName = "Raspberry Pi Pico"

func variantDrivers() []driver.Driver { return nil }
