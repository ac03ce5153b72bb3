// Package sodium initializes libsodium exactly once per process and reports
// the version data compiled into it.
//
// EnsureInitialized runs sodium_init on first use. Concurrent first callers
// wait for a single attempt, and its outcome is final: a failure is returned
// to every later caller without calling sodium_init again.
//
// VersionString, LibraryVersionMajor and LibraryVersionMinor never fail and
// do not depend on initialization.
//
// The native backend is chosen at build time. With cgo the package links
// against libsodium via pkg-config. Without cgo on Linux and macOS it loads
// the shared library at runtime. Elsewhere it compiles to a stub whose
// initialization fails with ErrCGONotEnabled.
package sodium
