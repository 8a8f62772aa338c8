package mathx

import (
	"math"
	"testing"
)

func TestAddSat(t *testing.T) {
	if got := AddSat[uint8](200, 55); got != 255 {
		t.Fatalf("AddSat(200,55) = %d", got)
	}
	if got := AddSat[uint8](200, 56); got != 255 {
		t.Fatalf("AddSat(200,56) = %d, want saturation", got)
	}
	if got := AddSat[uint](math.MaxUint, 1); got != math.MaxUint {
		t.Fatalf("AddSat(max,1) = %d", got)
	}
	if got := AddSat[uint32](3, 4); got != 7 {
		t.Fatalf("AddSat(3,4) = %d", got)
	}
}

func TestClamp(t *testing.T) {
	cases := []struct{ v, lo, hi, want int }{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{3, 10, 0, 3}, // swapped bounds
	}
	for _, c := range cases {
		if got := Clamp(c.v, c.lo, c.hi); got != c.want {
			t.Errorf("Clamp(%d,%d,%d) = %d, want %d", c.v, c.lo, c.hi, got, c.want)
		}
	}
}

func TestCeilPow2(t *testing.T) {
	cases := []struct{ v, want uint32 }{
		{0, 1}, {1, 1}, {2, 2}, {3, 4}, {64, 64}, {65, 128},
		{1<<31 + 1, 1 << 31},
	}
	for _, c := range cases {
		if got := CeilPow2(c.v); got != c.want {
			t.Errorf("CeilPow2(%d) = %d, want %d", c.v, got, c.want)
		}
	}
}
