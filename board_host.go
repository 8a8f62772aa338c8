//go:build !rp2040

package main

import (
	"os"

	"bootcode-go/bsp"
	"bootcode-go/bsp/sim"

	"github.com/rs/zerolog"
)

func selectedBoard() *bsp.Board {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.WarnLevel).With().Timestamp().Logger()
	b, err := sim.New(sim.DefaultConfig(), os.Stdin, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("build sim board")
	}
	return b
}
