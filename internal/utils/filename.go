package utils

import (
	"regexp"
	"strings"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// SafeFilename replaces every run of characters outside [A-Za-z0-9_-] with
// a single underscore and trims underscores from both ends.
func SafeFilename(name string) string {
	return strings.Trim(unsafeFilenameChars.ReplaceAllString(name, "_"), "_")
}
