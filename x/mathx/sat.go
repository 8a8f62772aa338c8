package mathx

import "golang.org/x/exp/constraints"

// AddSat returns a+b, saturating at the maximum value of T instead of wrapping.
func AddSat[T constraints.Unsigned](a, b T) T {
	if s := a + b; s >= a {
		return s
	}
	return ^T(0)
}
