package types

// State represents the engine lifecycle state.
//
// States follow a defined progression:
//
//	StateInit → StateReady → StateServing → StateReady → ... → StateShutdown
//
// StateServing covers exactly one response block. StateFailed is entered on a
// fatal error (unknown identifier, output failure). StateShutdown and StateFailed
// are terminal.
type State int

const (
	// StateInit is the state before the readiness token is written.
	StateInit State = iota

	// StateReady indicates the input loop is armed and waiting for a request.
	StateReady

	// StateServing indicates a response block is being produced.
	StateServing

	// StateShutdown indicates input was exhausted and the engine stopped cleanly.
	StateShutdown

	// StateFailed indicates the engine stopped on a fatal error.
	StateFailed
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateInit:
		return "Init"
	case StateReady:
		return "Ready"
	case StateServing:
		return "Serving"
	case StateShutdown:
		return "Shutdown"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// IsTerminal reports whether no further transition can happen from s.
func (s State) IsTerminal() bool {
	return s == StateShutdown || s == StateFailed
}
