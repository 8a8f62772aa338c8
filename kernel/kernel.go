// Package kernel is the hardware-agnostic part of boot: bring up the board's
// drivers, hand over from the early phase to normal execution and run the
// interactive main loop.
//
// Early init runs with preconditions nobody checks for us: one core, one
// execution context, drivers in the board's order, entered once. The phase
// tokens make the handoff explicit. EarlyInit hands out an *Early only on
// full success, Early.Transition runs the post-driver hook and trades it for
// a *Ready, and only a *Ready gets into Main. Each token works once.
package kernel

import (
	"bootcode-go/bsp"
	"bootcode-go/kernel/console"
	"bootcode-go/kernel/driver"
	"bootcode-go/kernel/kprint"
)

// Kernel drives one boot session of a board. It borrows the board and its
// console; it owns neither.
type Kernel struct {
	board   *bsp.Board
	phase   Phase
	entered bool
}

// New prepares a kernel for b. Nothing touches hardware until EarlyInit.
func New(b *bsp.Board) *Kernel {
	return &Kernel{board: b, phase: PhaseReset}
}

// Phase reports where the kernel is in its lifecycle.
func (k *Kernel) Phase() Phase { return k.phase }

// Board returns the board this kernel boots.
func (k *Kernel) Board() *bsp.Board { return k.board }

// Early proves that every driver initialized. It is consumed by Transition.
type Early struct{ k *Kernel }

// Ready proves the post-driver hook ran. It is consumed by Main.
type Ready struct{ k *Kernel }

// EarlyInit initializes the board's drivers in order and stops at the first
// failure. It must be entered exactly once per kernel; a second call panics.
func (k *Kernel) EarlyInit() (*Early, error) {
	if k.entered {
		panic("kernel: early init entered twice")
	}
	k.entered = true
	k.phase = PhaseEarlyInit

	if err := driver.InitAll(k.board.Drivers()); err != nil {
		return nil, err
	}
	return &Early{k: k}, nil
}

// Transition runs the board's post-driver hook and leaves the early phase.
// From here on the console is usable.
func (e *Early) Transition() *Ready {
	if e == nil || e.k == nil {
		panic("kernel: early-init token already consumed")
	}
	k := e.k
	e.k = nil

	k.phase = PhaseTransitioning
	k.board.PostDriverInit()
	return &Ready{k: k}
}

// Main runs the interactive loop: wait for a newline, print the boot
// banner, then echo every character forever. It never returns.
func (k *Kernel) Main(r *Ready) {
	if r == nil || r.k != k {
		panic("kernel: Main needs this kernel's ready token")
	}
	r.k = nil

	k.phase = PhaseMainLoop
	con := k.board.Console()

	waitForStart(con)
	k.banner(con)
	echo(con)
}

// Boot runs a whole session on b: early init, transition, main loop. On a
// driver failure it prints the diagnostic and halts. It does not return.
func Boot(b *bsp.Board) {
	k := New(b)
	early, err := k.EarlyInit()
	if err != nil {
		k.Halt(err)
		return
	}
	k.Main(early.Transition())
}

// Halt reports err on the board console and stops the machine.
func (k *Kernel) Halt(err error) {
	k.phase = PhaseHalted
	Fatal(k.board.Console(), err)
}

// waitForStart discards input until a newline arrives.
func waitForStart(r console.Reader) {
	for r.ReadChar() != '\n' {
	}
}

// banner prints the boot summary.
func (k *Kernel) banner(con console.All) {
	// Pre-banner count; the banner's own characters are not included.
	written := con.CharsWritten()

	kprint.Printf(con, "[0] Booting on: %s\n", k.board.Name())
	kprint.Println(con, "[1] Drivers loaded:")
	for i := 0; i < k.board.NumDrivers(); i++ {
		kprint.Printf(con, "      %d. %s\n", i+1, k.board.Driver(i).Compatible())
	}
	kprint.Printf(con, "[2] Chars written: %d\n", written)
	kprint.Println(con, "[3] Echoing input now")
}

func echo(con console.All) {
	for {
		con.WriteChar(con.ReadChar())
	}
}
