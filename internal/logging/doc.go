// Package logging constructs the slog loggers used across setlist.
// Two output formats are supported: a console handler that writes
// single-line human readable records, and a JSON handler for machine
// consumption.
package logging
