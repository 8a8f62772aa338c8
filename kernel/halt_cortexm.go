//go:build tinygo && cortexm

package kernel

import "device/arm"

// halt parks the core until reset.
func halt() {
	for {
		arm.Asm("wfe")
	}
}
