// Package logging builds the process-wide log/slog logger: JSON records by
// default, logfmt-style text for interactive use.
package logging
