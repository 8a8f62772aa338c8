// Command kernel-sim boots the kernel on a simulated board, with stdin as
// the serial receive line and stdout as the transmit line. Logs go to stderr.
//
//	kernel-sim -board board.toml -log-level debug
package main

import (
	"flag"
	"os"

	"bootcode-go/bsp/sim"
	"bootcode-go/kernel"
)

func main() {
	boardPath := flag.String("board", "", "TOML board description (default: built-in sim-virt)")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	log, err := newLogger(os.Stderr, *logLevel)
	if err != nil {
		log.Warn().Str("level", *logLevel).Msg("unknown log level, using info")
	}

	cfg := sim.DefaultConfig()
	if *boardPath != "" {
		if cfg, err = sim.LoadFile(*boardPath); err != nil {
			log.Fatal().Err(err).Str("path", *boardPath).Msg("load board")
		}
	}

	board, err := sim.New(cfg, os.Stdin, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("build board")
	}

	k := kernel.New(board)
	log.Info().Str("board", board.Name()).Int("drivers", board.NumDrivers()).Msg("early init")
	early, err := k.EarlyInit()
	if err != nil {
		log.Error().Err(err).Msg("driver bring-up failed; halting")
		k.Halt(err)
		return
	}
	k.Main(early.Transition())
}
