// Package logging provides a minimal logging facade for the sodium wrapper.
//
// The Logger interface wraps the context-aware half of log/slog:
//
//	type Logger interface {
//	    Debug(ctx context.Context, msg string, args ...any)
//	    Info(ctx context.Context, msg string, args ...any)
//	    Warn(ctx context.Context, msg string, args ...any)
//	    Error(ctx context.Context, msg string, args ...any)
//	    With(args ...any) Logger
//	}
//
// # Default Implementation
//
//	// slog.Default()
//	logger := logging.New(nil)
//
//	// Text output at a chosen level
//	level, _ := logging.ParseLevel("debug")
//	logger = logging.NewText(os.Stderr, level)
//
// # What Gets Logged
//
// The initialization guard logs when it starts calling sodium_init (debug),
// when the library becomes ready (info) and when initialization fails
// (error, with the native return code). The host bridge logs the failure it
// propagates. Nothing else in the wrapper logs.
package logging
