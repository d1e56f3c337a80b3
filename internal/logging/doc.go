// Package logging constructs slog loggers for the daemon and CLI.
//
// It maps the config file's level and format strings onto slog handlers,
// fans output over stderr and the daemon log file, and re-exports the attr
// constructors call sites use so log statements stay uniform across the
// repository.
package logging
