package sim

import (
	"errors"
	"io"
	"sync"

	"bootcode-go/kernel/console"
	"bootcode-go/x/ring"
)

var _ console.Port = (*Port)(nil)

// Port emulates a UART: received bytes sit in an RX FIFO filled by Feed,
// transmitted bytes go straight to an io.Writer.
type Port struct {
	rx  *ring.Ring
	mu  sync.Mutex
	out io.Writer
}

// NewPort returns a port with an RX FIFO of rxSize bytes (power of two).
func NewPort(out io.Writer, rxSize int) *Port {
	return &Port{rx: ring.New(rxSize), out: out}
}

// Buffered reports bytes waiting in the RX FIFO.
func (p *Port) Buffered() int { return p.rx.Available() }

// Read drains the RX FIFO without blocking.
func (p *Port) Read(b []byte) (int, error) { return p.rx.Read(b), nil }

// Write transmits b.
func (p *Port) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.out.Write(b)
}

// Readable fires when the RX FIFO goes from empty to non-empty.
func (p *Port) Readable() <-chan struct{} { return p.rx.Readable() }

// Feed copies r into the RX FIFO until r is exhausted, waiting for space
// when the FIFO is full. It is the only producer; run it in its own goroutine.
// io.EOF ends the feed without error.
func (p *Port) Feed(r io.Reader) error {
	buf := make([]byte, 64)
	for {
		n, err := r.Read(buf)
		chunk := buf[:n]
		for len(chunk) > 0 {
			chunk = chunk[p.rx.Write(chunk):]
			if len(chunk) > 0 {
				<-p.rx.Writable()
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
