// Package sim is a host board: a virtual UART on an io.Reader/io.Writer
// pair and a configurable list of simulated drivers.
package sim

import (
	"io"

	"bootcode-go/bsp"
	"bootcode-go/kernel/console"
	"bootcode-go/kernel/driver"

	"github.com/rs/zerolog"
)

// New builds a board from cfg. Input is fed to the console RX FIFO only
// after every driver initialised, from the post-driver hook.
func New(cfg Config, in io.Reader, out io.Writer, log zerolog.Logger) (*bsp.Board, error) {
	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	port := NewPort(out, cfg.RXBuffer)
	con := console.NewUART(port, console.UARTConfig{CRToLF: cfg.CRToLF, CRLF: cfg.CRLF})

	drvs := make([]driver.Driver, 0, len(cfg.Drivers))
	for _, spec := range cfg.Drivers {
		drvs = append(drvs, newDriver(spec, log))
	}

	return bsp.New(bsp.Config{
		Name:    cfg.Name,
		Drivers: drvs,
		Console: con,
		PostDriverInit: func() {
			log.Info().Str("board", cfg.Name).Int("drivers", len(drvs)).Msg("drivers up; console input attached")
			go func() {
				if err := port.Feed(in); err != nil {
					log.Error().Err(err).Msg("console input")
					return
				}
				log.Debug().Msg("console input closed")
			}()
		},
	})
}
