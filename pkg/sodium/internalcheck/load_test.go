package internalcheck

import (
	"os"
	"testing"

	"golang.org/x/tools/go/packages"
)

const modulePath = "github.com/coinbase/sodium-go"

// load type-checks patterns with cgo disabled so the policy tests run
// without libsodium headers installed.
func load(t *testing.T, mode packages.LoadMode, patterns ...string) []*packages.Package {
	t.Helper()
	cfg := &packages.Config{
		Mode: mode,
		Env:  append(os.Environ(), "CGO_ENABLED=0"),
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}
	if len(pkgs) == 0 {
		t.Fatalf("no packages matched %v", patterns)
	}
	return pkgs
}
