// Package logging assembles structured slog loggers used across ytbackup.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and provides a no-op logger for tests and wiring code that cannot
// fail. Console output is coloured only when it goes to a terminal.
package logging
