package models

import (
	"regexp"
	"strings"
)

const maxSlugLength = 96

var (
	slugPattern       = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	nonAlphanumericRe = regexp.MustCompile(`[^a-z0-9]+`)
)

// Slugify converts an arbitrary title into a URL slug: lowercase, runs of
// non-alphanumeric characters collapsed to single hyphens, hyphens trimmed
// from both ends, capped at 96 characters.
func Slugify(input string) string {
	slug := strings.ToLower(strings.TrimSpace(input))
	slug = nonAlphanumericRe.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > maxSlugLength {
		slug = slug[:maxSlugLength]
		slug = strings.Trim(slug, "-")
	}
	return slug
}

// IsValidSlug reports whether s is a well-formed kebab-case slug.
func IsValidSlug(s string) bool {
	return len(s) <= maxSlugLength && slugPattern.MatchString(s)
}
