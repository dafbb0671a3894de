package screening

import (
	"regexp"
	"strings"
)

var nonWord = regexp.MustCompile(`[^\w\s]`)

// Normalize canonicalizes a string for comparison: strips every character
// that is not alphanumeric or whitespace, lowercases and trims. Blacklist
// entries and candidate entities both go through this exact transform, so
// the two sides of every comparison stay symmetric.
func Normalize(s string) string {
	return strings.TrimSpace(strings.ToLower(nonWord.ReplaceAllString(s, "")))
}
