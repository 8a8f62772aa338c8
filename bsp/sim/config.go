package sim

import (
	"fmt"
	"strings"
	"time"

	"bootcode-go/drivers/aht20"
	"bootcode-go/errcode"
	"bootcode-go/x/mathx"

	"github.com/BurntSushi/toml"
)

// DriverSpec describes one simulated driver.
type DriverSpec struct {
	Compatible string
	Kind       string // KindGeneric (default) or KindAHT20
	Fail       bool
	Delay      time.Duration
}

// Config describes a simulated board.
type Config struct {
	Name     string
	Drivers  []DriverSpec
	RXBuffer int // RX FIFO size; rounded up to a power of two
	CRLF     bool
	CRToLF   bool
}

const (
	minRXBuffer = 16
	maxRXBuffer = 64 << 10
)

// DefaultConfig is a virtual board with a UART and a GPIO bank.
func DefaultConfig() Config {
	return Config{
		Name: "sim-virt",
		Drivers: []DriverSpec{
			{Compatible: "uart", Kind: KindGeneric},
			{Compatible: "gpio", Kind: KindGeneric},
		},
		RXBuffer: 256,
	}
}

type fileDriver struct {
	Compatible string `toml:"compatible"`
	Kind       string `toml:"kind"`
	Fail       bool   `toml:"fail"`
	Delay      string `toml:"delay"`
}

type fileConfig struct {
	Name     string       `toml:"name"`
	RXBuffer int          `toml:"rx_buffer"`
	CRLF     bool         `toml:"crlf"`
	CRToLF   bool         `toml:"cr_to_lf"`
	Drivers  []fileDriver `toml:"drivers"`
}

// LoadFile reads a board description. Keys that are absent keep their
// DefaultConfig value; a [[drivers]] list replaces the default list.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load board config: %w", err)
	}
	if undec := meta.Undecoded(); len(undec) > 0 {
		return Config{}, &errcode.E{C: errcode.InvalidConfig, Op: "sim.LoadFile", Msg: "unknown key " + undec[0].String()}
	}

	if meta.IsDefined("name") {
		cfg.Name = strings.TrimSpace(raw.Name)
	}
	if meta.IsDefined("rx_buffer") {
		cfg.RXBuffer = raw.RXBuffer
	}
	if meta.IsDefined("crlf") {
		cfg.CRLF = raw.CRLF
	}
	if meta.IsDefined("cr_to_lf") {
		cfg.CRToLF = raw.CRToLF
	}
	if meta.IsDefined("drivers") {
		cfg.Drivers = make([]DriverSpec, 0, len(raw.Drivers))
		for i, d := range raw.Drivers {
			spec := DriverSpec{
				Compatible: strings.TrimSpace(d.Compatible),
				Kind:       strings.TrimSpace(d.Kind),
				Fail:       d.Fail,
			}
			if s := strings.TrimSpace(d.Delay); s != "" {
				delay, err := time.ParseDuration(s)
				if err != nil {
					return Config{}, fmt.Errorf("parse drivers[%d].delay: %w", i, err)
				}
				spec.Delay = delay
			}
			cfg.Drivers = append(cfg.Drivers, spec)
		}
	}

	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// normalize fills defaults and rejects configs the board cannot be built from.
func (c *Config) normalize() error {
	bad := func(msg string) error {
		return &errcode.E{C: errcode.InvalidConfig, Op: "sim.Config", Msg: msg}
	}
	if c.Name == "" {
		return bad("empty board name")
	}
	if c.RXBuffer <= 0 {
		c.RXBuffer = DefaultConfig().RXBuffer
	}
	c.RXBuffer = int(mathx.CeilPow2(uint(mathx.Clamp(c.RXBuffer, minRXBuffer, maxRXBuffer))))

	for i := range c.Drivers {
		d := &c.Drivers[i]
		switch d.Kind {
		case "", KindGeneric:
			d.Kind = KindGeneric
			if d.Compatible == "" {
				return bad(fmt.Sprintf("drivers[%d]: missing compatible", i))
			}
		case KindAHT20:
			if d.Compatible != "" && d.Compatible != aht20.Compatible {
				return bad(fmt.Sprintf("drivers[%d]: aht20 reports compatible %q, not %q", i, aht20.Compatible, d.Compatible))
			}
			d.Compatible = aht20.Compatible
		default:
			return bad(fmt.Sprintf("drivers[%d]: unknown kind %q", i, d.Kind))
		}
		if d.Delay < 0 {
			return bad(fmt.Sprintf("drivers[%d]: negative delay", i))
		}
	}
	return nil
}
