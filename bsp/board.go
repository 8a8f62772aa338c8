// Package bsp describes a board to the kernel: its name, the drivers to
// bring up in order, the console they make usable and the hook that runs
// once all of them succeeded.
//
// A Board is built once, before the kernel starts, and is read-only after.
// Concrete boards live in subpackages (pico, sim).
package bsp

import (
	"bootcode-go/errcode"
	"bootcode-go/kernel/console"
	"bootcode-go/kernel/driver"
)

// Board is an immutable board configuration.
type Board struct {
	name           string
	drivers        []driver.Driver
	console        console.All
	postDriverInit func()
}

// Config is the input to New.
type Config struct {
	Name    string
	Drivers []driver.Driver // init order; significant
	Console console.All
	// PostDriverInit runs once, only after every driver succeeded. Optional.
	PostDriverInit func()
}

// New validates cfg and freezes it into a Board. The driver slice is copied.
func New(cfg Config) (*Board, error) {
	if cfg.Name == "" {
		return nil, &errcode.E{C: errcode.InvalidBoard, Op: "bsp.New", Msg: "empty board name"}
	}
	if cfg.Console == nil {
		return nil, &errcode.E{C: errcode.InvalidBoard, Op: "bsp.New", Msg: "no console"}
	}
	for _, d := range cfg.Drivers {
		if d == nil {
			return nil, &errcode.E{C: errcode.InvalidBoard, Op: "bsp.New", Msg: "nil driver"}
		}
	}
	hook := cfg.PostDriverInit
	if hook == nil {
		hook = func() {}
	}
	return &Board{
		name:           cfg.Name,
		drivers:        append([]driver.Driver(nil), cfg.Drivers...),
		console:        cfg.Console,
		postDriverInit: hook,
	}, nil
}

// Must is New for static board tables; it panics on an invalid config.
func Must(cfg Config) *Board {
	b, err := New(cfg)
	if err != nil {
		panic(err.Error())
	}
	return b
}

// Name is the board identifier printed in the boot banner.
func (b *Board) Name() string { return b.name }

// Drivers returns the drivers in init order. The slice is a copy.
func (b *Board) Drivers() []driver.Driver {
	return append([]driver.Driver(nil), b.drivers...)
}

// NumDrivers avoids a copy when only the length is needed.
func (b *Board) NumDrivers() int { return len(b.drivers) }

// Driver returns the i-th driver in init order.
func (b *Board) Driver(i int) driver.Driver { return b.drivers[i] }

// Console returns the board's console. The board keeps ownership.
func (b *Board) Console() console.All { return b.console }

// PostDriverInit runs the board's post-driver hook.
func (b *Board) PostDriverInit() { b.postDriverInit() }
