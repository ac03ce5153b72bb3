package sodium

import (
	"errors"
	"strconv"

	"github.com/coinbase/sodium-go/internal/bindings"
)

var (
	// ErrNativeInitFailed matches, via errors.Is, every initialization
	// failure. It is the only failure mode of EnsureInitialized.
	ErrNativeInitFailed = errors.New("sodium: native initialization failed")

	// ErrNotBuilt reports that no native backend was linked in or libsodium
	// could not be loaded. It appears wrapped inside an *InitError.
	ErrNotBuilt = bindings.ErrNotBuilt

	// ErrCGONotEnabled reports a build without cgo on a platform that has
	// no dynamic loader. It appears wrapped inside an *InitError.
	ErrCGONotEnabled = bindings.ErrCGONotEnabled

	// ErrLibraryClosed is returned by Library.Close when called twice.
	ErrLibraryClosed = errors.New("sodium: library already closed")
)

// codeUnknown is recorded when the failure did not come with a native
// return code.
const codeUnknown = bindings.InitFailed

// InitError describes a failed initialization. Code holds the value
// returned by sodium_init, or -1 when the failure happened before the native
// call could report one.
type InitError struct {
	Code   int
	Reason string
	Err    error
}

func (e *InitError) Error() string {
	msg := "sodium: native initialization failed (code " + strconv.Itoa(e.Code) + ")"
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Is makes every *InitError match ErrNativeInitFailed.
func (e *InitError) Is(target error) bool {
	return target == ErrNativeInitFailed
}

func (e *InitError) Unwrap() error { return e.Err }

// remapError converts a bindings-layer outcome into the public error
// surface. rc is the raw sodium_init result.
func remapError(rc int, err error) error {
	if err != nil {
		return &InitError{Code: rc, Reason: err.Error(), Err: err}
	}
	if rc < 0 {
		return &InitError{Code: rc, Reason: "sodium_init returned " + strconv.Itoa(rc)}
	}
	return nil
}
