// Package logging scopes go-logger instances to newsroom namespaces
// (newsroom.articles, newsroom.editor, ...) and papers over hosts that
// provide no logger at all.
package logging

import (
	"maps"

	"github.com/goliatone/go-newsroom/pkg/interfaces"
)

// WithFields attaches structured fields to a newsroom logger when the
// implementation supports the optional FieldsLogger extension; plain Logger
// implementations pass through untouched. The map is copied so callers can
// keep reusing theirs. Nil loggers and empty maps short-circuit.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	if logger == nil || len(fields) == 0 {
		return logger
	}

	fieldsLogger, ok := logger.(interfaces.FieldsLogger)
	if !ok {
		return logger
	}

	copied := make(map[string]any, len(fields))
	maps.Copy(copied, fields)
	return fieldsLogger.WithFields(copied)
}
