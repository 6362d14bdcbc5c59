package interfaces

import "context"

// Logger is the leveled logging contract used across the newsroom runtime.
// It matches the surface of github.com/goliatone/go-logger so hosts can plug
// that package in directly.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	WithContext(ctx context.Context) Logger
}

// LoggerProvider hands out named loggers. Implementations may scope children
// per module name or return a shared instance.
type LoggerProvider interface {
	GetLogger(name string) Logger
}

// FieldsLogger is an optional extension for loggers that support persistent
// structured fields.
type FieldsLogger interface {
	WithFields(fields map[string]any) Logger
}
