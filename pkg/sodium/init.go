package sodium

import (
	"context"

	"github.com/coinbase/sodium-go/internal/bindings"
)

// native is the bindings surface this package reads. Tests substitute it to
// drive the process-wide API with a fake library.
var native = struct {
	init         func() (int, error)
	version      func() string
	major, minor func() int32
}{
	init:    bindings.Init,
	version: bindings.Version,
	major:   bindings.VersionMajor,
	minor:   bindings.VersionMinor,
}

// process is the process-wide guard around sodium_init. It is only reached
// through the accessors below.
var process = NewGuard(nativeInit, nil)

func nativeInit() error {
	return remapError(native.init())
}

// EnsureInitialized initializes libsodium on first use and returns the
// outcome of that single attempt on every call.
//
// A failure is permanent for the lifetime of the process: sodium_init is
// not retried. The returned error matches ErrNativeInitFailed and, when the
// binary carries no usable backend, also ErrNotBuilt or ErrCGONotEnabled.
func EnsureInitialized() error {
	return process.Ensure(context.Background())
}

// EnsureInitializedContext is EnsureInitialized with a context bounding how
// long a caller waits for an initialization already in progress.
func EnsureInitializedContext(ctx context.Context) error {
	return process.Ensure(ctx)
}

// CurrentState reports the state of the process-wide guard.
func CurrentState() State {
	return process.State()
}
