// Package logging defines the logger contract the resolution pipeline traces
// through: which widget was chosen for a property, why a property was
// skipped. Failures to log are never fatal.
package logging

import "log/slog"

// Logger is the logging interface. The variadic arguments are key value
// pairs: the key must be a string and the value should have a meaningful
// string representation.
type Logger interface {
	Debug(msg string, kv ...any)
	Error(msg string, kv ...any)
	With(kv ...any) Logger
}

// Default returns a Logger backed by the process-wide slog handler.
func Default() Logger {
	return slogLogger{logger: slog.Default()}
}

// FromSlog wraps an existing slog logger.
func FromSlog(logger *slog.Logger) Logger {
	if logger == nil {
		return Default()
	}
	return slogLogger{logger: logger}
}

type slogLogger struct {
	logger *slog.Logger
}

func (l slogLogger) Debug(msg string, kv ...any) { l.logger.Debug(msg, kv...) }
func (l slogLogger) Error(msg string, kv ...any) { l.logger.Error(msg, kv...) }

func (l slogLogger) With(kv ...any) Logger {
	return slogLogger{logger: l.logger.With(kv...)}
}

// Nop returns a Logger that discards everything. Useful for tests and for
// callers that opt out of diagnostics.
func Nop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Error(string, ...any) {}

func (n nopLogger) With(...any) Logger { return n }
