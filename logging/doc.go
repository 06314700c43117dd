// Package logging builds the structured slog loggers used by the loader and its hosts.
// Output is JSON by default; the text format is meant for interactive tools.
package logging
