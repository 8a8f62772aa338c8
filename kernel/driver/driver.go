// Package driver defines device drivers as the boot path sees them and the
// loop that brings them up.
package driver

import (
	"errors"

	"bootcode-go/errcode"
)

// Driver is a named unit of hardware bring-up.
type Driver interface {
	// Compatible returns a human-readable compatibility identifier,
	// e.g. "arm,pl011".
	Compatible() string

	// Init brings the device up. It may touch hardware in arbitrary ways
	// (clock gates, pin muxing, register setup). Any non-nil error is a
	// failure; the kernel does not look inside it.
	Init() error
}

type funcDriver struct {
	compatible string
	init       func() error
}

func (d funcDriver) Compatible() string { return d.compatible }

func (d funcDriver) Init() error {
	if d.init == nil {
		return nil
	}
	return d.init()
}

// New returns a Driver backed by a plain function. A nil init always succeeds.
func New(compatible string, init func() error) Driver {
	return funcDriver{compatible: compatible, init: init}
}

// InitAll initializes drivers in slice order and stops at the first failure.
// Drivers after the failing one are not touched. The returned error carries
// errcode.DriverInitFailed and names the failing driver; see FailedDriver.
func InitAll(drivers []Driver) error {
	for i, d := range drivers {
		if err := d.Init(); err != nil {
			return &InitError{Index: i, E: errcode.E{
				C:   errcode.DriverInitFailed,
				Op:  "InitAll",
				Msg: d.Compatible(),
				Err: err,
			}}
		}
	}
	return nil
}

// InitError reports which driver stopped the bring-up.
type InitError struct {
	Index int // position in the board's driver list
	errcode.E
}

// FailedDriver returns the compatibility identifier of the driver that
// failed, if err came from InitAll.
func FailedDriver(err error) (string, bool) {
	var ie *InitError
	if errors.As(err, &ie) {
		return ie.Msg, true
	}
	return "", false
}
