package bridge

import (
	"context"
	"sort"
	"sync"

	"github.com/coinbase/sodium-go/internal/bindings"
	"github.com/coinbase/sodium-go/pkg/sodium"
	"github.com/coinbase/sodium-go/pkg/sodium/logging"
)

// Constant names published by RegisterConstants.
const (
	VersionString = bindings.ConstVersionString
	VersionMajor  = bindings.ConstVersionMajor
	VersionMinor  = bindings.ConstVersionMinor
)

// ConstantSink receives named constants from the bundle. Hosts implement it
// on top of whatever registration mechanism their foreign-function layer
// offers.
type ConstantSink interface {
	SetString(name, value string)
	SetSignedInt(name string, value int64)
}

// RegisterConstants publishes the capability report of the linked libsodium
// for package pkg. It does not require initialization.
func RegisterConstants(pkg string, sink ConstantSink) {
	RegisterCapabilities(pkg, sodium.Report(), sink)
}

// RegisterCapabilities publishes caps through sink. pkg names the host
// package the constants belong to; the sink decides whether to use it.
func RegisterCapabilities(pkg string, caps sodium.Capabilities, sink ConstantSink) {
	if ps, ok := sink.(packageScoped); ok {
		ps.SetPackage(pkg)
	}
	sink.SetString(VersionString, caps.VersionString)
	sink.SetSignedInt(VersionMajor, int64(caps.Major))
	sink.SetSignedInt(VersionMinor, int64(caps.Minor))
}

type packageScoped interface {
	SetPackage(pkg string)
}

// Init is the initialization entry point. It always propagates failure: the
// error is logged and returned, and the host must not continue using the
// library when it is non-nil. A nil logger binds to slog.Default().
func Init(ctx context.Context, logger logging.Logger) error {
	if logger == nil {
		logger = logging.New(nil)
	}
	if err := sodium.EnsureInitializedContext(ctx); err != nil {
		logger.Error(ctx, "libsodium could not be initialized", "error", err, "backend", sodium.Backend())
		return err
	}
	return nil
}

// MapSink is an in-memory ConstantSink. It is safe for concurrent use.
type MapSink struct {
	mu      sync.Mutex
	pkg     string
	strings map[string]string
	ints    map[string]int64
}

// NewMapSink returns an empty MapSink.
func NewMapSink() *MapSink {
	return &MapSink{
		strings: make(map[string]string),
		ints:    make(map[string]int64),
	}
}

func (s *MapSink) SetPackage(pkg string) {
	s.mu.Lock()
	s.pkg = pkg
	s.mu.Unlock()
}

func (s *MapSink) SetString(name, value string) {
	s.mu.Lock()
	s.strings[name] = value
	s.mu.Unlock()
}

func (s *MapSink) SetSignedInt(name string, value int64) {
	s.mu.Lock()
	s.ints[name] = value
	s.mu.Unlock()
}

// Package returns the package name of the last registration.
func (s *MapSink) Package() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pkg
}

// StringValue returns the string constant stored under name.
func (s *MapSink) StringValue(name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.strings[name]
	return v, ok
}

// SignedIntValue returns the integer constant stored under name.
func (s *MapSink) SignedIntValue(name string) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.ints[name]
	return v, ok
}

// Constant is one registered name/value pair.
type Constant struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// Constants returns every registered constant sorted by name.
func (s *MapSink) Constants() []Constant {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Constant, 0, len(s.strings)+len(s.ints))
	for k, v := range s.strings {
		out = append(out, Constant{Name: k, Value: v})
	}
	for k, v := range s.ints {
		out = append(out, Constant{Name: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
