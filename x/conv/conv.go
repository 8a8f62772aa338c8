// Package conv holds allocation-free number formatting for early boot code,
// where fmt and strconv are too heavy or not yet usable.
package conv

// AppendUint appends the base-10 representation of n to dst.
func AppendUint(dst []byte, n uint64) []byte {
	width := 1
	for v := n; v >= 10; v /= 10 {
		width++
	}
	start := len(dst)
	for i := 0; i < width; i++ {
		dst = append(dst, 0)
	}
	for i := start + width - 1; i >= start; i-- {
		dst[i] = '0' + byte(n%10)
		n /= 10
	}
	return dst
}

// AppendInt appends the base-10 representation of n to dst.
func AppendInt(dst []byte, n int64) []byte {
	if n >= 0 {
		return AppendUint(dst, uint64(n))
	}
	// -n overflows for MinInt64; two's complement negation in uint64 does not.
	return AppendUint(append(dst, '-'), -uint64(n))
}
