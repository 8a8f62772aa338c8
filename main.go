// Command bootcode-go is the kernel image. The board is chosen at build
// time: rp2040 builds boot the Pico, host builds boot the simulated board
// on stdin and stdout.
package main

import "bootcode-go/kernel"

func main() {
	kernel.Boot(selectedBoard())
}
