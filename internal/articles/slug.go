package articles

import "github.com/goliatone/go-slug"

// DeriveSlug builds a URL-safe slug from a title: lowercase, non-alphanumeric
// runs collapsed to single hyphens, no leading or trailing hyphen. Only
// called while the stored slug is empty; manual slug edits are not
// re-validated.
func DeriveSlug(title string) string {
	normalized, err := slug.Normalize(title)
	if err != nil {
		return ""
	}
	return normalized
}

// IsValidSlug reports whether the value matches the default slug rules.
func IsValidSlug(value string) bool {
	return slug.IsValid(value)
}
