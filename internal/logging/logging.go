// Package logging holds the logger conventions shared by the search packages.
//
// Loggers are passed in, never global. Components scope their logger once at
// construction with slog.With and fall back to a discard logger when none is
// given. Only main configures output format, level and destination.
//
// Logging stays at lifecycle boundaries (search start and finish, segment
// selection). Character reads and line scans never log.
package logging

import "log/slog"

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Default returns logger, or Discard() when logger is nil. Constructors
// call it before scoping:
//
//	logger = logging.Default(logger).With("component", "segment")
func Default(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return Discard()
	}
	return logger
}
