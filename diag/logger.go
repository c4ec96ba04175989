package diag

import "log"

// Logger is the abstract logging collaborator of the assertion helpers: any
// sink accepting a (severity, message) pair. The package never configures,
// buffers, or closes it.
type Logger interface {
	Log(level Level, message string)
}

// LoggerFunc adapts a plain function to the Logger interface.
type LoggerFunc func(level Level, message string)

// Log implements Logger.
func (f LoggerFunc) Log(level Level, message string) { f(level, message) }

// StdLogger adapts a standard library *log.Logger to the Logger interface.
// Each entry is printed as one "LEVEL: message" line through the wrapped
// logger, picking up its prefix and flags.
func StdLogger(l *log.Logger) Logger {
	return LoggerFunc(func(level Level, message string) {
		l.Print(Line(level.String(), message))
	})
}
