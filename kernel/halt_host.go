//go:build !(tinygo && cortexm)

package kernel

import "time"

// halt blocks the calling goroutine forever. It sleeps rather than using
// select{} so a halted host process is not reported as deadlocked.
func halt() {
	for {
		time.Sleep(time.Hour)
	}
}
