package repel

// State is the engine's position in its run.
type State int

const (
	// Running means iterations are still being executed.
	Running State = iota
	// Converged means a full iteration completed without any overlap.
	Converged
	// MaxIterReached means the iteration cap stopped the run.
	MaxIterReached
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Converged:
		return "converged"
	case MaxIterReached:
		return "max_iter_reached"
	default:
		return "unknown"
	}
}

// ParseState is the inverse of State.String.
func ParseState(s string) (State, bool) {
	switch s {
	case "running":
		return Running, true
	case "converged":
		return Converged, true
	case "max_iter_reached":
		return MaxIterReached, true
	}
	return Running, false
}
