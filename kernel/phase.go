package kernel

// Phase is the kernel's position in the boot lifecycle.
type Phase uint8

const (
	PhaseReset         Phase = iota // constructed, nothing run yet
	PhaseEarlyInit                  // drivers being brought up
	PhaseTransitioning              // post-driver hook running
	PhaseMainLoop                   // terminal
	PhaseHalted                     // driver failure; terminal
)

func (p Phase) String() string {
	switch p {
	case PhaseReset:
		return "reset"
	case PhaseEarlyInit:
		return "early_init"
	case PhaseTransitioning:
		return "transitioning"
	case PhaseMainLoop:
		return "main_loop"
	case PhaseHalted:
		return "halted"
	default:
		return "unknown"
	}
}
