package domain

import "strings"

// Status represents lifecycle states for newsroom entities
type Status string

const (
	// StatusDraft indicates an article still under preparation
	StatusDraft Status = "draft"
	// StatusPublished identifies an article available to readers
	StatusPublished Status = "published"
	// StatusArchived marks an article retained for history but no longer publicly visible
	StatusArchived Status = "archived"
)

// ParseStatus coerces arbitrary status strings into a known value, defaulting
// to draft for empty input.
func ParseStatus(input string) (Status, bool) {
	value := Status(strings.ToLower(strings.TrimSpace(input)))
	switch value {
	case "":
		return StatusDraft, true
	case StatusDraft, StatusPublished, StatusArchived:
		return value, true
	default:
		return value, false
	}
}

// IsValid reports whether the status is a known lifecycle state.
func (s Status) IsValid() bool {
	_, ok := ParseStatus(string(s))
	return ok
}
