// Package internalcheck holds static policy tests over the sodium-go source.
//
// The tests load the module with golang.org/x/tools/go/packages and fail
// when code outside the owning package reaches into native bindings or the
// initialization state, or when library code prints instead of logging.
// The package has no exported API.
package internalcheck
