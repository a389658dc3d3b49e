package utils

import "strings"

// NormalizeEmail returns the canonical form of an e-mail address used for
// storage and lookup: surrounding whitespace removed and lower-cased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeSlug returns the canonical form of an agency slug: surrounding
// whitespace removed and lower-cased.
func NormalizeSlug(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}
