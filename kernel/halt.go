package kernel

import (
	"bootcode-go/kernel/console"
	"bootcode-go/kernel/driver"
	"bootcode-go/kernel/kprint"
)

// haltFn is swapped by tests. The real implementation never returns.
var haltFn = halt

// Fatal is the single handler for unrecoverable boot errors: it writes one
// diagnostic line on w and halts. A driver failure prints
// "Error loading driver: <compatible>".
func Fatal(w console.Writer, err error) {
	if name, ok := driver.FailedDriver(err); ok {
		kprint.Printf(w, "Error loading driver: %s\n", name)
	} else {
		kprint.Printf(w, "Kernel panic: %s\n", err.Error())
	}
	haltFn()
}
