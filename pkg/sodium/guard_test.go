package sodium_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinbase/sodium-go/pkg/sodium"
	"github.com/coinbase/sodium-go/pkg/sodium/logging"
)

type countingInit struct {
	calls   atomic.Int64
	result  error
	release chan struct{}
}

func (c *countingInit) fn() error {
	c.calls.Add(1)
	if c.release != nil {
		<-c.release
	}
	return c.result
}

func TestGuardSequentialCallsRunInitOnce(t *testing.T) {
	native := &countingInit{}
	g := sodium.NewGuard(native.fn, logging.Discard())
	require.Equal(t, sodium.StateUninitialized, g.State())

	for i := 0; i < 10; i++ {
		require.NoError(t, g.Ensure(context.Background()))
	}

	assert.EqualValues(t, 1, native.calls.Load())
	assert.Equal(t, sodium.StateReady, g.State())
	assert.NoError(t, g.Err())
}

func TestGuardConcurrentCallersShareOneAttempt(t *testing.T) {
	tests := []struct {
		name    string
		result  error
		want    sodium.State
		wantErr bool
	}{
		{name: "success", want: sodium.StateReady},
		{name: "failure", result: &sodium.InitError{Code: -1, Reason: "sodium_init returned -1"}, want: sodium.StateFailed, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const callers = 64
			native := &countingInit{result: tt.result, release: make(chan struct{})}
			g := sodium.NewGuard(native.fn, logging.Discard())

			var wg sync.WaitGroup
			errs := make([]error, callers)
			start := make(chan struct{})
			for i := 0; i < callers; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					<-start
					errs[i] = g.Ensure(context.Background())
				}(i)
			}
			close(start)

			require.Eventually(t, func() bool {
				return g.State() == sodium.StateInitializing
			}, 5*time.Second, time.Millisecond)
			close(native.release)
			wg.Wait()

			assert.EqualValues(t, 1, native.calls.Load())
			assert.Equal(t, tt.want, g.State())
			for i, err := range errs {
				if tt.wantErr {
					assert.ErrorIs(t, err, sodium.ErrNativeInitFailed, "caller %d", i)
					assert.Same(t, errs[0], err, "caller %d", i)
				} else {
					assert.NoError(t, err, "caller %d", i)
				}
			}
		})
	}
}

func TestGuardFailureIsTerminal(t *testing.T) {
	native := &countingInit{result: &sodium.InitError{Code: -1, Reason: "sodium_init returned -1"}}
	g := sodium.NewGuard(native.fn, logging.Discard())

	first := g.Ensure(context.Background())
	require.ErrorIs(t, first, sodium.ErrNativeInitFailed)

	var ie *sodium.InitError
	require.ErrorAs(t, first, &ie)
	assert.Equal(t, -1, ie.Code)

	for i := 0; i < 5; i++ {
		err := g.Ensure(context.Background())
		assert.Same(t, first, err)
	}
	assert.EqualValues(t, 1, native.calls.Load())
	assert.Equal(t, sodium.StateFailed, g.State())
	assert.Same(t, first, g.Err())
}

func TestGuardWrapsPlainErrors(t *testing.T) {
	boom := errors.New("boom")
	g := sodium.NewGuard(func() error { return boom }, logging.Discard())

	err := g.Ensure(context.Background())
	assert.ErrorIs(t, err, sodium.ErrNativeInitFailed)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "boom")
}

func TestGuardPanicLeavesFailedState(t *testing.T) {
	var calls atomic.Int64
	g := sodium.NewGuard(func() error {
		calls.Add(1)
		panic("native abort")
	}, logging.Discard())

	err := g.Ensure(context.Background())
	require.ErrorIs(t, err, sodium.ErrNativeInitFailed)
	assert.Contains(t, err.Error(), "native abort")

	assert.ErrorIs(t, g.Ensure(context.Background()), sodium.ErrNativeInitFailed)
	assert.EqualValues(t, 1, calls.Load())
	assert.Equal(t, sodium.StateFailed, g.State())
}

func TestGuardGoexitLeavesFailedState(t *testing.T) {
	var calls atomic.Int64
	g := sodium.NewGuard(func() error {
		calls.Add(1)
		runtime.Goexit()
		return nil
	}, logging.Discard())

	exited := make(chan struct{})
	go func() {
		defer close(exited)
		_ = g.Ensure(context.Background())
	}()
	<-exited

	err := g.Ensure(context.Background())
	require.ErrorIs(t, err, sodium.ErrNativeInitFailed)
	assert.Contains(t, err.Error(), "init routine did not return")
	assert.Equal(t, sodium.StateFailed, g.State())
	assert.Same(t, err, g.Err())
	assert.EqualValues(t, 1, calls.Load())
}

func TestGuardNilInitFuncFails(t *testing.T) {
	g := sodium.NewGuard(nil, logging.Discard())
	assert.ErrorIs(t, g.Ensure(context.Background()), sodium.ErrNativeInitFailed)
	assert.Equal(t, sodium.StateFailed, g.State())
}

func TestGuardWaiterHonoursContext(t *testing.T) {
	native := &countingInit{release: make(chan struct{})}
	g := sodium.NewGuard(native.fn, logging.Discard())

	winner := make(chan error, 1)
	go func() { winner <- g.Ensure(context.Background()) }()

	require.Eventually(t, func() bool {
		return g.State() == sodium.StateInitializing
	}, 5*time.Second, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, g.Ensure(ctx), context.Canceled)
	assert.Equal(t, sodium.StateInitializing, g.State())

	close(native.release)
	require.NoError(t, <-winner)
	assert.NoError(t, g.Ensure(context.Background()))
	assert.EqualValues(t, 1, native.calls.Load())
}

func TestGuardLogsFailure(t *testing.T) {
	var buf bytes.Buffer
	g := sodium.NewGuard(func() error {
		return &sodium.InitError{Code: -1, Reason: "sodium_init returned -1"}
	}, logging.NewText(&buf, slog.LevelDebug))

	require.Error(t, g.Ensure(context.Background()))
	out := buf.String()
	assert.Contains(t, out, "initializing native library")
	assert.Contains(t, out, "native library initialization failed")
	assert.Contains(t, out, "code -1")
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "uninitialized", sodium.StateUninitialized.String())
	assert.Equal(t, "initializing", sodium.StateInitializing.String())
	assert.Equal(t, "ready", sodium.StateReady.String())
	assert.Equal(t, "failed", sodium.StateFailed.String())
	assert.Equal(t, "unknown", sodium.State(42).String())

	assert.False(t, sodium.StateInitializing.Terminal())
	assert.True(t, sodium.StateReady.Terminal())
	assert.True(t, sodium.StateFailed.Terminal())
}
