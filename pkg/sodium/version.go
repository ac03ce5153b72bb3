package sodium

import "github.com/coinbase/sodium-go/internal/bindings"

// Version is populated at build time via
// -ldflags "-X github.com/coinbase/sodium-go/pkg/sodium.Version=...".
var Version = "v0.0.0-in-progress"

// Capabilities is the identification data compiled into libsodium.
type Capabilities struct {
	VersionString string
	Major         int32
	Minor         int32
}

// WrapperVersion returns the version of this module.
func WrapperVersion() string {
	return Version
}

// VersionString returns SODIUM_VERSION_STRING. It does not require
// EnsureInitialized and is safe for concurrent use.
//
// The value is non-empty only when libsodium is actually present: always in
// cgo builds, and in cgo-less builds when the shared library can be loaded.
// The stub backend, and a cgo-less build that cannot find libsodium, return
// "". Use Backend to tell the cases apart.
func VersionString() string {
	return native.version()
}

// LibraryVersionMajor returns SODIUM_LIBRARY_VERSION_MAJOR, or 0 under the
// same conditions in which VersionString returns "".
func LibraryVersionMajor() int32 {
	return native.major()
}

// LibraryVersionMinor returns SODIUM_LIBRARY_VERSION_MINOR, or 0 under the
// same conditions in which VersionString returns "".
func LibraryVersionMinor() int32 {
	return native.minor()
}

// Report bundles the three capability values.
func Report() Capabilities {
	return Capabilities{
		VersionString: VersionString(),
		Major:         LibraryVersionMajor(),
		Minor:         LibraryVersionMinor(),
	}
}

// Backend names the native backend linked into this binary: "cgo",
// "purego" or "stub".
func Backend() string {
	return bindings.Backend()
}
