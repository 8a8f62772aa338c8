package sim

import (
	"errors"
	"time"

	"bootcode-go/drivers/aht20"
	"bootcode-go/kernel/driver"

	"github.com/rs/zerolog"
	"tinygo.org/x/drivers"
)

// ErrInjectedFailure is returned by drivers configured to fail.
var ErrInjectedFailure = errors.New("sim: injected driver failure")

// Driver kinds understood by the simulator.
const (
	KindGeneric = "generic"
	KindAHT20   = "aht20"
)

// genericDriver stands in for a peripheral whose bring-up takes some time
// and may fail.
type genericDriver struct {
	spec DriverSpec
	log  zerolog.Logger
}

func (d *genericDriver) Compatible() string { return d.spec.Compatible }

func (d *genericDriver) Init() error {
	if d.spec.Delay > 0 {
		time.Sleep(d.spec.Delay)
	}
	if d.spec.Fail {
		d.log.Debug().Str("driver", d.spec.Compatible).Msg("init failing (injected)")
		return ErrInjectedFailure
	}
	d.log.Debug().Str("driver", d.spec.Compatible).Dur("took", d.spec.Delay).Msg("init ok")
	return nil
}

// sensorBus answers the AHT20 bring-up transactions. A failing entry models
// a sensor that never reports calibration.
type sensorBus struct {
	calibrates bool
	calibrated bool
}

var _ drivers.I2C = (*sensorBus)(nil)

func (b *sensorBus) Tx(addr uint16, w, r []byte) error {
	if addr != aht20.Address {
		return errors.New("sim: i2c nack")
	}
	switch {
	case len(w) == 1 && w[0] == 0x71 && len(r) == 1: // status
		r[0] = 0
		if b.calibrated {
			r[0] = 0x08
		}
	case len(w) == 3 && w[0] == 0xBE: // initialize
		b.calibrated = b.calibrates
	}
	return nil
}

func newDriver(spec DriverSpec, log zerolog.Logger) driver.Driver {
	switch spec.Kind {
	case KindAHT20:
		return aht20.New(&sensorBus{calibrates: !spec.Fail}, aht20.Config{})
	default:
		return &genericDriver{spec: spec, log: log}
	}
}
