package aht20

import (
	"errors"
	"testing"
	"time"

	"tinygo.org/x/drivers"
)

// Compile-time check.
var _ drivers.I2C = (*fakeI2C)(nil)

// Scripted AHT20-like fake.
type fakeI2C struct {
	addr        uint16
	calibrated  bool
	calibrates  bool // initialize command sets the calibration bit
	busy        bool
	failOn      byte // command byte whose Tx returns errNack
	initialized int
	cmds        []byte
}

var errNack = errors.New("nack")

func (f *fakeI2C) Tx(addr uint16, w, r []byte) error {
	f.addr = addr
	if len(w) > 0 {
		f.cmds = append(f.cmds, w[0])
		if w[0] == f.failOn {
			return errNack
		}
	}
	switch {
	case len(w) == 1 && w[0] == cmdSoftReset:
		return nil
	case len(w) == 1 && w[0] == cmdStatus && len(r) == 1:
		var s byte
		if f.calibrated {
			s |= statusCalibrated
		}
		if f.busy {
			s |= statusBusy
		}
		r[0] = s
		return nil
	case len(w) == 3 && w[0] == cmdInitialize:
		f.initialized++
		if f.calibrates {
			f.calibrated = true
		}
		return nil
	}
	return errors.New("unexpected transaction")
}

func noSleep(time.Duration) {}

func TestInitAlreadyCalibrated(t *testing.T) {
	f := &fakeI2C{calibrated: true}
	d := New(f, Config{Sleep: noSleep})
	if err := d.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if f.initialized != 0 {
		t.Fatalf("initialize sent %d times on a calibrated sensor", f.initialized)
	}
	if f.addr != Address {
		t.Fatalf("addr = %#x, want %#x", f.addr, Address)
	}
	if d.Compatible() != "aosong,aht20" {
		t.Fatalf("Compatible = %q", d.Compatible())
	}
}

func TestInitCalibratesWhenNeeded(t *testing.T) {
	f := &fakeI2C{calibrates: true}
	var slept []time.Duration
	d := New(f, Config{Address: 0x39, Sleep: func(d time.Duration) { slept = append(slept, d) }})
	if err := d.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if f.initialized != 1 {
		t.Fatalf("initialize sent %d times, want 1", f.initialized)
	}
	want := []byte{cmdSoftReset, cmdStatus, cmdInitialize, cmdStatus}
	if string(f.cmds) != string(want) {
		t.Fatalf("command sequence = %x, want %x", f.cmds, want)
	}
	if len(slept) != 2 || slept[0] != 20*time.Millisecond || slept[1] != 10*time.Millisecond {
		t.Fatalf("sleeps = %v", slept)
	}
	if f.addr != 0x39 {
		t.Fatalf("addr override ignored: %#x", f.addr)
	}
}

func TestInitFailures(t *testing.T) {
	cases := []struct {
		name string
		bus  *fakeI2C
		want error
	}{
		{"never calibrates", &fakeI2C{}, ErrNotCalibrated},
		{"busy", &fakeI2C{busy: true}, ErrBusy},
		{"reset nack", &fakeI2C{failOn: cmdSoftReset}, errNack},
		{"status nack", &fakeI2C{failOn: cmdStatus}, errNack},
		{"initialize nack", &fakeI2C{failOn: cmdInitialize}, errNack},
	}
	for _, c := range cases {
		err := New(c.bus, Config{Sleep: noSleep}).Init()
		if !errors.Is(err, c.want) {
			t.Errorf("%s: Init = %v, want %v", c.name, err, c.want)
		}
	}
}
