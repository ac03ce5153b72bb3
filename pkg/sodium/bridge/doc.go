// Package bridge exposes the two entry points a host runtime calls when it
// loads this library through a foreign-function layer.
//
// RegisterConstants publishes SODIUM_VERSION_STRING,
// SODIUM_LIBRARY_VERSION_MAJOR and SODIUM_LIBRARY_VERSION_MINOR into a
// host-provided ConstantSink. It can be called at any time, before or after
// initialization.
//
// Init runs the process-wide initialization and returns its error. There is
// no print-and-continue mode.
package bridge
