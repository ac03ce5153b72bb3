//go:build windows || (!cgo && !linux && !darwin)

package bindings

// Stub implementations for platforms with neither cgo nor a dynamic loader.
// These allow the package to compile but report ErrCGONotEnabled on Init.

func Init() (int, error) {
	return InitFailed, ErrCGONotEnabled
}

func Version() string { return "" }

func VersionMajor() int32 { return 0 }

func VersionMinor() int32 { return 0 }

func Backend() string { return "stub" }
