//go:build !cgo && (linux || darwin)

package bindings

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/ebitengine/purego"
)

// LibraryPathEnv overrides the shared-library search list used by the
// cgo-less backend.
const LibraryPathEnv = "SODIUMGO_LIBSODIUM"

type libsodium struct {
	sodium_init                  func() int32
	sodium_version_string        func() string
	sodium_library_version_major func() int32
	sodium_library_version_minor func() int32

	version      string
	major, minor int32
}

func candidates() []string {
	if p := os.Getenv(LibraryPathEnv); p != "" {
		return []string{p}
	}
	if runtime.GOOS == "darwin" {
		return []string{"libsodium.26.dylib", "libsodium.23.dylib", "libsodium.dylib"}
	}
	return []string{"libsodium.so.26", "libsodium.so.23", "libsodium.so"}
}

// load opens libsodium once per process. The version values are read right
// after loading and never change afterwards.
var load = sync.OnceValues(func() (lib *libsodium, err error) {
	var handle uintptr
	var errs []error
	for _, name := range candidates() {
		h, derr := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if derr == nil {
			handle = h
			break
		}
		errs = append(errs, fmt.Errorf("%s: %w", name, derr))
	}
	if handle == 0 {
		return nil, fmt.Errorf("%w: %w", ErrNotBuilt, errors.Join(errs...))
	}

	// RegisterLibFunc panics on a missing symbol.
	defer func() {
		if r := recover(); r != nil {
			lib, err = nil, fmt.Errorf("%w: %v", ErrNotBuilt, r)
		}
	}()

	lib = &libsodium{}
	purego.RegisterLibFunc(&lib.sodium_init, handle, "sodium_init")
	purego.RegisterLibFunc(&lib.sodium_version_string, handle, "sodium_version_string")
	purego.RegisterLibFunc(&lib.sodium_library_version_major, handle, "sodium_library_version_major")
	purego.RegisterLibFunc(&lib.sodium_library_version_minor, handle, "sodium_library_version_minor")

	lib.version = lib.sodium_version_string()
	lib.major = lib.sodium_library_version_major()
	lib.minor = lib.sodium_library_version_minor()
	return lib, nil
})

// Init calls sodium_init and returns its raw result code. It fails with an
// error wrapping ErrNotBuilt when libsodium cannot be loaded.
func Init() (int, error) {
	lib, err := load()
	if err != nil {
		return InitFailed, err
	}
	return int(lib.sodium_init()), nil
}

// Version returns the version string of the loaded libsodium, or "" when it
// could not be loaded.
func Version() string {
	lib, err := load()
	if err != nil {
		return ""
	}
	return lib.version
}

// VersionMajor returns the library major version, or 0 when libsodium could
// not be loaded.
func VersionMajor() int32 {
	lib, err := load()
	if err != nil {
		return 0
	}
	return lib.major
}

// VersionMinor returns the library minor version, or 0 when libsodium could
// not be loaded.
func VersionMinor() int32 {
	lib, err := load()
	if err != nil {
		return 0
	}
	return lib.minor
}

// Backend names the linked implementation.
func Backend() string { return "purego" }
