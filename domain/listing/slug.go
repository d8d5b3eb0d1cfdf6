package listing

import (
	"fmt"
	"regexp"
	"strings"
)

// slugFallback is used when a name contains no slug-safe characters at all.
const slugFallback = "tool"

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe identifier from a display name: lower-case,
// every run of characters outside [a-z0-9] collapsed to a single hyphen,
// leading and trailing hyphens stripped.
func Slugify(name string) string {
	slug := strings.ToLower(name)
	slug = nonSlugChars.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return slugFallback
	}
	return slug
}

// SlugWithSuffix appends the collision counter to a base slug.
func SlugWithSuffix(base string, n int) string {
	return fmt.Sprintf("%s-%d", base, n)
}
