// Package kprint formats text onto a console.Writer.
//
// It covers what early boot code needs and nothing more:
//
//	%s  string or []byte
//	%d  any built-in integer
//	%c  rune
//	%%  literal percent
//
// Unknown verbs are written literally, a missing argument prints "%!(MISSING)".
// No reflection and no fmt import, so it is safe on MCU builds.
package kprint

import (
	"bootcode-go/kernel/console"
	"bootcode-go/x/conv"
)

var errMissingArg = []byte("%!(MISSING)")

// Print writes s.
func Print(w console.Writer, s string) { console.WriteString(w, s) }

// Println writes s followed by a newline.
func Println(w console.Writer, s string) { console.WriteString(w, s+"\n") }

// Printf formats according to format and writes the result.
func Printf(w console.Writer, format string, args ...any) {
	console.WriteString(w, string(Append(nil, format, args...)))
}

// Append formats onto dst and returns the extended slice.
func Append(dst []byte, format string, args ...any) []byte {
	ai := 0
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			dst = append(dst, c)
			continue
		}
		if i+1 >= len(format) {
			dst = append(dst, '%')
			break
		}
		i++
		verb := format[i]
		if verb == '%' {
			dst = append(dst, '%')
			continue
		}
		if ai >= len(args) {
			dst = append(dst, errMissingArg...)
			continue
		}
		arg := args[ai]
		ai++

		switch verb {
		case 's':
			dst = appendString(dst, arg)
		case 'd':
			dst = appendInteger(dst, arg)
		case 'c':
			if r, ok := arg.(rune); ok {
				dst = append(dst, string(r)...)
			} else {
				dst = append(dst, "%!c(WRONGTYPE)"...)
			}
		default:
			dst = append(dst, '%', verb)
		}
	}
	return dst
}

func appendString(dst []byte, v any) []byte {
	switch s := v.(type) {
	case string:
		return append(dst, s...)
	case []byte:
		return append(dst, s...)
	default:
		return append(dst, "%!s(WRONGTYPE)"...)
	}
}

func appendInteger(dst []byte, v any) []byte {
	switch n := v.(type) {
	case int:
		return conv.AppendInt(dst, int64(n))
	case int8:
		return conv.AppendInt(dst, int64(n))
	case int16:
		return conv.AppendInt(dst, int64(n))
	case int32:
		return conv.AppendInt(dst, int64(n))
	case int64:
		return conv.AppendInt(dst, n)
	case uint:
		return conv.AppendUint(dst, uint64(n))
	case uint8:
		return conv.AppendUint(dst, uint64(n))
	case uint16:
		return conv.AppendUint(dst, uint64(n))
	case uint32:
		return conv.AppendUint(dst, uint64(n))
	case uint64:
		return conv.AppendUint(dst, n)
	case uintptr:
		return conv.AppendUint(dst, uint64(n))
	default:
		return append(dst, "%!d(WRONGTYPE)"...)
	}
}
