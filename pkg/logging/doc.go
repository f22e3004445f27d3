// Package logging configures the slog logger used by the CLI.
//
// The library packages (replace, theme, customprop) are pure functions
// and do not log; only the command layer reports what it is doing.
package logging
