package console

import (
	"runtime"
	"unicode/utf8"

	"bootcode-go/x/mathx"

	"tinygo.org/x/drivers"
)

// Port is the byte-level serial device a UART console runs on. On RP2040
// this is uartx.UART; host builds use a ring-backed fake.
type Port interface {
	drivers.UART
}

// readableNotifier is optionally implemented by ports that can signal
// "RX became non-empty" instead of being polled.
type readableNotifier interface {
	Readable() <-chan struct{}
}

// UARTConfig selects newline translation.
type UARTConfig struct {
	// CRToLF turns a received '\r' into '\n' (serial terminals send CR on Enter).
	CRToLF bool
	// CRLF emits "\r\n" for '\n' inside WriteString. WriteChar is never translated.
	CRLF bool
}

// UART is a console capability over a serial Port.
//
// The written counter saturates at the maximum uint rather than wrapping.
// No locking: the console has a single user during a boot session.
type UART struct {
	port    Port
	cfg     UARTConfig
	ready   <-chan struct{}
	written uint

	rx [utf8.UTFMax]byte
	tx [utf8.UTFMax]byte

	// Bytes read ahead while decoding and handed back to the next ReadChar.
	pend     [utf8.UTFMax]byte
	pendHead int
	pendLen  int
}

// Bytes that do not start a valid UTF-8 sequence are carried as runes in
// U+DC80..U+DCFF, one per byte. WriteChar sends such a rune as the original
// byte, so echoing ReadChar output reproduces the input exactly.
const rawBase = 0xDC80

// RawByte returns the rune ReadChar uses for an undecodable byte b.
func RawByte(b byte) rune { return rawBase + rune(b) }

// IsRawByte reports whether r carries an undecodable input byte, and which.
func IsRawByte(r rune) (byte, bool) {
	if r >= rawBase+0x80 && r <= rawBase+0xFF {
		return byte(r - rawBase), true
	}
	return 0, false
}

var _ All = (*UART)(nil)
var _ StringWriter = (*UART)(nil)

// NewUART wraps port. The port must already be configured by its driver
// before the console is used.
func NewUART(port Port, cfg UARTConfig) *UART {
	u := &UART{port: port, cfg: cfg}
	if n, ok := port.(readableNotifier); ok {
		u.ready = n.Readable()
	}
	return u
}

// ReadChar returns the next UTF-8 encoded character from the port.
// A byte that does not start a valid sequence is returned alone as
// RawByte(b); the bytes after it are decoded afresh by later calls.
func (u *UART) ReadChar() rune {
	b := u.readByte()
	if b < utf8.RuneSelf {
		if b == '\r' && u.cfg.CRToLF {
			return '\n'
		}
		return rune(b)
	}

	u.rx[0] = b
	k := 1
	for n := seqLen(b); k < n; {
		c := u.readByte()
		u.rx[k] = c
		k++
		if c&0xC0 != 0x80 {
			break
		}
	}
	r, size := utf8.DecodeRune(u.rx[:k])
	if r == utf8.RuneError && size <= 1 {
		u.unread(u.rx[1:k])
		return RawByte(b)
	}
	return r
}

// unread puts b in front of any bytes still pending.
func (u *UART) unread(b []byte) {
	var buf [utf8.UTFMax]byte
	n := copy(buf[:], b)
	n += copy(buf[n:], u.pend[u.pendHead:u.pendHead+u.pendLen])
	u.pend, u.pendHead, u.pendLen = buf, 0, n
}

// WriteChar transmits c and counts it.
func (u *UART) WriteChar(c rune) {
	var p []byte
	if b, ok := IsRawByte(c); ok {
		u.tx[0] = b
		p = u.tx[:1]
	} else {
		p = u.tx[:utf8.EncodeRune(u.tx[:], c)]
	}
	for len(p) > 0 {
		m, err := u.port.Write(p)
		if err != nil || m == 0 {
			// Transmit path busy; spin until it accepts bytes.
			runtime.Gosched()
			continue
		}
		p = p[m:]
	}
	u.written = mathx.AddSat(u.written, 1)
}

// WriteString writes s, applying CRLF translation when configured.
func (u *UART) WriteString(s string) {
	for _, c := range s {
		if c == '\n' && u.cfg.CRLF {
			u.WriteChar('\r')
		}
		u.WriteChar(c)
	}
}

// CharsWritten implements Statistics.
func (u *UART) CharsWritten() uint { return u.written }

func (u *UART) readByte() byte {
	if u.pendLen > 0 {
		b := u.pend[u.pendHead]
		u.pendHead++
		u.pendLen--
		return b
	}
	var one [1]byte
	for {
		if u.port.Buffered() > 0 {
			if n, err := u.port.Read(one[:]); n == 1 && err == nil {
				return one[0]
			}
		}
		if u.ready != nil {
			<-u.ready
		} else {
			runtime.Gosched()
		}
	}
}

// seqLen returns the UTF-8 sequence length announced by a leading byte,
// or 0 if b cannot start a sequence.
func seqLen(b byte) int {
	switch {
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	default:
		return 0
	}
}
