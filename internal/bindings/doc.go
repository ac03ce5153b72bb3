// Package bindings is the only code in the module that calls into libsodium.
//
// Three variants are selected by build tags:
//
//   - cgo && !windows: links libsodium through pkg-config and reads the
//     version macros from sodium.h at compile time.
//   - !cgo on linux or darwin: loads the shared library at runtime with
//     purego. SODIUMGO_LIBSODIUM overrides the search list.
//   - everything else: a stub whose Init fails with ErrCGONotEnabled.
//
// The package performs no synchronization. Callers serialize Init through
// the guard in pkg/sodium.
package bindings
