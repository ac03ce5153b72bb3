package sodium

import (
	"context"

	"github.com/coinbase/sodium-go/pkg/sodium/logging"
)

// Config carries the knobs accepted by Open.
type Config struct {
	// Context bounds how long Open waits for an initialization already in
	// progress on another goroutine. Nil means context.Background().
	Context context.Context

	// Logger receives Open and Close events. Nil binds to slog.Default().
	Logger logging.Logger
}

func (c Config) context() context.Context {
	if c.Context == nil {
		return context.Background()
	}
	return c.Context
}

func (c Config) logger() logging.Logger {
	if c.Logger == nil {
		return logging.New(nil)
	}
	return c.Logger
}
