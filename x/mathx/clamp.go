package mathx

import "golang.org/x/exp/constraints"

// Clamp limits v to [lo, hi]. If lo > hi, the bounds are swapped.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if hi < lo {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// CeilPow2 returns the smallest power of two >= v (1 for v == 0), capped at
// the largest power of two T can hold.
func CeilPow2[T constraints.Unsigned](v T) T {
	p := T(1)
	for p < v && p != 0 {
		p <<= 1
	}
	if p == 0 {
		// v exceeds the largest representable power of two.
		return ^T(0)>>1 + 1
	}
	return p
}
