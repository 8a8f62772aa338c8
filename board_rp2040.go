//go:build rp2040

package main

import (
	"bootcode-go/bsp"
	"bootcode-go/bsp/pico"
)

func selectedBoard() *bsp.Board { return pico.Board() }
