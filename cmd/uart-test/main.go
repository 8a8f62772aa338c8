//go:build rp2040

// Command uart-test is a bench check for the PL011 console path. Jumper
// GP0 (UART0 TX) to GP5 (UART1 RX); the program brings both UARTs up
// through the driver loop, writes a line on UART0 and reads it back on UART1.
// Results are printed over USB with println.
package main

import (
	"machine"
	"time"

	"bootcode-go/drivers/pl011"
	"bootcode-go/kernel/console"
	"bootcode-go/kernel/driver"
	"bootcode-go/kernel/kprint"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
)

const probe = "uart loopback 0123456789\n"

func main() {
	println("[uart] boot …")
	time.Sleep(1500 * time.Millisecond)

	u0 := pl011.New(uartx.UART0, pl011.Config{TX: machine.GP0, RX: machine.GP1})
	u1 := pl011.New(uartx.UART1, pl011.Config{TX: machine.GP4, RX: machine.GP5})
	if err := driver.InitAll([]driver.Driver{u0, u1}); err != nil {
		name, _ := driver.FailedDriver(err)
		println("[uart] FAIL: init", name, err.Error())
		return
	}

	tx := console.NewUART(u0.Port(), console.UARTConfig{})
	rx := console.NewUART(u1.Port(), console.UARTConfig{})

	for round := 1; ; round++ {
		before := tx.CharsWritten()
		kprint.Print(tx, probe)
		if n := tx.CharsWritten() - before; n != uint(len(probe)) {
			println("[uart] FAIL: counted", n, "chars, want", len(probe))
		}

		got := make([]rune, 0, len(probe))
		for len(got) < len(probe) {
			got = append(got, rx.ReadChar())
		}
		if string(got) == probe {
			println("[uart] round", round, "ok")
		} else {
			println("[uart] round", round, "FAIL: got", string(got))
		}
		time.Sleep(time.Second)
	}
}
