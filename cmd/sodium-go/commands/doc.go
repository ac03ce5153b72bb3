// Package commands defines the sodium-go CLI.
//
// Commands
//
//   - version     Print the wrapper version and the libsodium capability report
//   - constants   Register the host constants into memory and print them
//   - init        Run the initialization entry point and print the final state
//
// The root command builds one slog-backed logger from --log-level before any
// subcommand runs; subcommands share it through the package state.
package commands
