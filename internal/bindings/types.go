package bindings

import "errors"

// Return codes of sodium_init(). Negative values are failures; 1 means the
// library had already been initialized by someone else in this process.
const (
	InitOK          = 0
	InitAlreadyDone = 1
	InitFailed      = -1
)

var (
	// ErrNotBuilt reports that no native backend was linked into the current
	// binary. Callers can use it to tell a missing libsodium apart from a
	// failing one.
	ErrNotBuilt = errors.New("sodium/internal/bindings: native bindings not built")

	// ErrCGONotEnabled signals that the package was compiled without cgo and
	// no dynamic loader is available for this platform.
	ErrCGONotEnabled = errors.New("sodium/internal/bindings: cgo not enabled")
)

// Names under which the host bridge publishes the capability constants.
const (
	ConstVersionString = "SODIUM_VERSION_STRING"
	ConstVersionMajor  = "SODIUM_LIBRARY_VERSION_MAJOR"
	ConstVersionMinor  = "SODIUM_LIBRARY_VERSION_MINOR"
)
