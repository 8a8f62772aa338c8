// Package aht20 brings up an AHT20 temperature/humidity sensor during boot.
//
// Bring-up is: soft reset, wait, read status; if the calibration bit is not
// set, send the initialize command, wait again and re-check. A sensor that
// still reports "not calibrated" fails its init.
//
// NOTE: I2C.Tx MUST perform a write followed by a repeated-start read when both
// w and r are provided, without releasing the bus.
package aht20

import (
	"errors"
	"time"

	"tinygo.org/x/drivers"
)

// Address is the fixed I2C address.
const Address = 0x38

// Compatible is the identifier reported to the kernel.
const Compatible = "aosong,aht20"

const (
	cmdInitialize = 0xBE
	cmdSoftReset  = 0xBA
	cmdStatus     = 0x71

	statusBusy       = 0x80
	statusCalibrated = 0x08
)

// Errors returned by the driver.
var (
	ErrNotCalibrated = errors.New("aht20: not calibrated")
	ErrBusy          = errors.New("aht20: busy after reset")
)

// Config controls bring-up timing. All fields are optional.
type Config struct {
	// Address defaults to 0x38 if zero.
	Address uint16
	// ResetDelay is the wait after soft reset. Default 20 ms.
	ResetDelay time.Duration
	// CalibrateDelay is the wait after the initialize command. Default 10 ms.
	CalibrateDelay time.Duration
	// Sleep is used for the waits; defaults to time.Sleep.
	Sleep func(time.Duration)
}

// Device is an AHT20 on an already configured I2C bus.
type Device struct {
	bus drivers.I2C
	cfg Config
}

// New binds a sensor to bus. It does not touch the device.
func New(bus drivers.I2C, cfg Config) *Device {
	if cfg.Address == 0 {
		cfg.Address = Address
	}
	if cfg.ResetDelay <= 0 {
		cfg.ResetDelay = 20 * time.Millisecond
	}
	if cfg.CalibrateDelay <= 0 {
		cfg.CalibrateDelay = 10 * time.Millisecond
	}
	if cfg.Sleep == nil {
		cfg.Sleep = time.Sleep
	}
	return &Device{bus: bus, cfg: cfg}
}

// Compatible implements driver.Driver.
func (d *Device) Compatible() string { return Compatible }

// Init implements driver.Driver.
func (d *Device) Init() error {
	if err := d.bus.Tx(d.cfg.Address, []byte{cmdSoftReset}, nil); err != nil {
		return err
	}
	d.cfg.Sleep(d.cfg.ResetDelay)

	st, err := d.Status()
	if err != nil {
		return err
	}
	if st&statusBusy != 0 {
		return ErrBusy
	}
	if st&statusCalibrated != 0 {
		return nil
	}

	if err := d.bus.Tx(d.cfg.Address, []byte{cmdInitialize, 0x08, 0x00}, nil); err != nil {
		return err
	}
	d.cfg.Sleep(d.cfg.CalibrateDelay)

	if st, err = d.Status(); err != nil {
		return err
	}
	if st&statusCalibrated == 0 {
		return ErrNotCalibrated
	}
	return nil
}

// Status reads the status byte.
func (d *Device) Status() (byte, error) {
	data := []byte{0}
	if err := d.bus.Tx(d.cfg.Address, []byte{cmdStatus}, data); err != nil {
		return 0, err
	}
	return data[0], nil
}
