// Package domain re-exports shared lifecycle types for host applications.
package domain

import internaldomain "github.com/goliatone/go-newsroom/internal/domain"

// Status represents lifecycle states for newsroom entities.
type Status = internaldomain.Status

const (
	// StatusDraft indicates an article still under preparation.
	StatusDraft = internaldomain.StatusDraft
	// StatusPublished identifies an article available to readers.
	StatusPublished = internaldomain.StatusPublished
	// StatusArchived marks an article retained for history but no longer publicly visible.
	StatusArchived = internaldomain.StatusArchived
)

// ParseStatus coerces arbitrary status strings into a known value.
func ParseStatus(input string) (Status, bool) {
	return internaldomain.ParseStatus(input)
}
