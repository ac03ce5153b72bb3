package sodium

import "sync"

// Library is proof that libsodium has been initialized in this process.
// Code built on top of this package takes a *Library so that it cannot run
// before initialization.
type Library struct {
	cfg  Config
	caps Capabilities

	mu     sync.Mutex
	closed bool
}

// Open initializes libsodium through the process-wide guard and returns a
// handle on success. Every Open after a failed initialization fails with the
// same error.
func Open(cfg Config) (*Library, error) {
	ctx := cfg.context()
	if err := EnsureInitializedContext(ctx); err != nil {
		return nil, err
	}

	caps := Report()
	cfg.logger().Debug(ctx, "library opened",
		"version", caps.VersionString,
		"backend", Backend(),
	)
	return &Library{cfg: cfg, caps: caps}, nil
}

// Capabilities returns the native identification data.
func (l *Library) Capabilities() Capabilities {
	return l.caps
}

// Close marks the handle as released. libsodium keeps no per-handle state,
// so nothing native is freed. The second call returns ErrLibraryClosed.
func (l *Library) Close() error {
	if l == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ErrLibraryClosed
	}
	l.closed = true
	l.cfg.logger().Debug(l.cfg.context(), "library closed")
	return nil
}
