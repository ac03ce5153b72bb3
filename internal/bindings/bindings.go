//go:build cgo && !windows

package bindings

/*
#cgo pkg-config: libsodium
#include <sodium.h>

static const char *go_sodium_version_string(void) { return SODIUM_VERSION_STRING; }
static int go_sodium_version_major(void) { return SODIUM_LIBRARY_VERSION_MAJOR; }
static int go_sodium_version_minor(void) { return SODIUM_LIBRARY_VERSION_MINOR; }
*/
import "C"

// The version values are the macros from the sodium.h this package was
// compiled against, so they are fixed at build time and need no library
// state.
var (
	versionString = C.GoString(C.go_sodium_version_string())
	versionMajor  = int32(C.go_sodium_version_major())
	versionMinor  = int32(C.go_sodium_version_minor())
)

// Init calls sodium_init and returns its raw result code. The error is only
// non-nil when the backend itself is unavailable, which never happens in the
// cgo build.
func Init() (int, error) {
	return int(C.sodium_init()), nil
}

// Version returns SODIUM_VERSION_STRING.
func Version() string { return versionString }

// VersionMajor returns SODIUM_LIBRARY_VERSION_MAJOR.
func VersionMajor() int32 { return versionMajor }

// VersionMinor returns SODIUM_LIBRARY_VERSION_MINOR.
func VersionMinor() int32 { return versionMinor }

// Backend names the linked implementation.
func Backend() string { return "cgo" }
