// Package console defines the character I/O capability shared by the boot
// path and the main loop.
//
// The capability does not check when it is called. Using it before the
// board's drivers and post-driver hook have run is the caller's mistake; the
// kernel lifecycle is what keeps that from happening.
package console

// Reader blocks until one character is available and returns it.
// There is no timeout and no cancellation.
type Reader interface {
	ReadChar() rune
}

// Writer transmits one character, blocking until the transmit path takes it.
type Writer interface {
	WriteChar(c rune)
}

// Statistics reports how many characters have been written since the
// console was constructed. The value never decreases.
type Statistics interface {
	CharsWritten() uint
}

// All is the full console capability.
type All interface {
	Reader
	Writer
	Statistics
}

// StringWriter is implemented by consoles that apply output translation to
// whole strings (e.g. LF -> CRLF on a serial line). Each emitted character
// still counts once.
type StringWriter interface {
	WriteString(s string)
}

// WriteString writes s on w, preferring w's own StringWriter when present.
func WriteString(w Writer, s string) {
	if sw, ok := w.(StringWriter); ok {
		sw.WriteString(s)
		return
	}
	for _, c := range s {
		w.WriteChar(c)
	}
}
