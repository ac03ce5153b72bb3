package sodium

// State is the initialization status of the native library.
//
// The only legal transitions are Uninitialized to Initializing, and
// Initializing to Ready or Failed. Ready and Failed are terminal.
type State int32

const (
	StateUninitialized State = iota
	StateInitializing
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitializing:
		return "initializing"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether s can no longer change.
func (s State) Terminal() bool {
	return s == StateReady || s == StateFailed
}
