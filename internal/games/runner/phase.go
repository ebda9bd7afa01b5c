package runner

// Phase is the state of one of the engine's timer-driven processes
// (the spawn cycle and the jump arc).
type Phase int

const (
	// PhaseIdle means the process has not been armed this session.
	PhaseIdle Phase = iota
	// PhaseActive means a timer for the process is pending.
	PhaseActive
	// PhaseTerminated means the process was stopped by game over and
	// stays stopped until the next Initialize.
	PhaseTerminated
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseActive:
		return "active"
	case PhaseTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}
