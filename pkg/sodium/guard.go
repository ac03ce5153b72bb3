package sodium

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/coinbase/sodium-go/pkg/sodium/logging"
)

// InitFunc performs the one-time native initialization. A non-nil error
// moves the guard to StateFailed for good.
type InitFunc func() error

// Guard runs an InitFunc at most once and hands its outcome to every caller.
//
// The zero value is not usable; construct guards with NewGuard.
type Guard struct {
	fn     InitFunc
	logger logging.Logger

	state atomic.Int32
	done  chan struct{}
	// err is written once by the winning caller before state becomes
	// terminal and done is closed; readers observe it through either.
	err error
}

// NewGuard returns a guard in StateUninitialized. A nil logger binds to
// slog.Default().
func NewGuard(fn InitFunc, logger logging.Logger) *Guard {
	if logger == nil {
		logger = logging.New(nil)
	}
	return &Guard{
		fn:     fn,
		logger: logger,
		done:   make(chan struct{}),
	}
}

// Ensure makes sure the init routine has run and returns its outcome.
//
// The first caller runs the routine on its own goroutine and ignores ctx
// while doing so, since sodium_init cannot be interrupted. Callers that
// arrive while it runs wait for the result, or return ctx.Err() if ctx is
// done first. Once the guard is Ready or Failed every call returns
// immediately with the same result and the routine is never invoked again.
func (g *Guard) Ensure(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	switch State(g.state.Load()) {
	case StateReady:
		return nil
	case StateFailed:
		return g.err
	}

	if g.state.CompareAndSwap(int32(StateUninitialized), int32(StateInitializing)) {
		g.run(ctx)
		return g.err
	}

	select {
	case <-g.done:
		return g.err
	case <-ctx.Done():
		// select picks at random when both are ready; a finished
		// initialization wins over the caller's deadline.
		select {
		case <-g.done:
			return g.err
		default:
		}
		return ctx.Err()
	}
}

// State returns the current state of the guard.
func (g *Guard) State() State {
	return State(g.state.Load())
}

// Err returns the recorded failure, or nil unless the guard is Failed.
func (g *Guard) Err() error {
	if g.State() != StateFailed {
		return nil
	}
	return g.err
}

func (g *Guard) run(ctx context.Context) {
	defer close(g.done)
	// The routine may end the goroutine without returning (runtime.Goexit,
	// t.FailNow). Waiters must then see Failed, never a silent success.
	defer func() {
		if State(g.state.Load()) != StateInitializing {
			return
		}
		g.err = &InitError{Code: codeUnknown, Reason: "init routine did not return"}
		g.state.Store(int32(StateFailed))
		g.logger.Error(ctx, "native library initialization failed", "error", g.err)
	}()

	g.logger.Debug(ctx, "initializing native library")
	if err := g.call(); err != nil {
		g.err = err
		g.state.Store(int32(StateFailed))
		g.logger.Error(ctx, "native library initialization failed", "error", err)
		return
	}
	g.state.Store(int32(StateReady))
	g.logger.Info(ctx, "native library ready")
}

func (g *Guard) call() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &InitError{Code: codeUnknown, Reason: fmt.Sprintf("init routine panicked: %v", r)}
		}
	}()

	if g.fn == nil {
		return &InitError{Code: codeUnknown, Reason: "no init routine"}
	}
	if err := g.fn(); err != nil {
		var ie *InitError
		if errors.As(err, &ie) {
			return err
		}
		return &InitError{Code: codeUnknown, Reason: err.Error(), Err: err}
	}
	return nil
}
