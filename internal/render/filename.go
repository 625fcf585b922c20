package render

import (
	"regexp"
	"strings"
)

var unsafeChars = regexp.MustCompile(`[^a-z0-9-]+`)

// Filename builds the export filename for a project name:
// lowercased, whitespace and punctuation collapsed to "-", with the
// "project" fallback when nothing usable remains.
func Filename(projectName string) string {
	slug := strings.ToLower(strings.TrimSpace(projectName))
	slug = unsafeChars.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "project"
	}
	return slug + "-prd.md"
}
