package generator

import (
	"regexp"
	"strings"
)

// Fallback replaces names that sanitize to nothing.
const Fallback = "untitled"

var (
	// Unicode whitespace: ASCII space classes, separators (NBSP, em space),
	// NEL and the information separators.
	whitespaceRun   = regexp.MustCompile(`[\s\v\x{1c}-\x{1f}\x{85}\p{Z}]+`)
	disallowedChars = regexp.MustCompile(`[^A-Za-z0-9 _-]`)
)

var reserved = map[string]struct{}{
	"CON": {},
	"PRN": {},
	"AUX": {},
	"NUL": {},
}

// Sanitize keeps letters, digits, spaces, underscores and hyphens, collapsing
// whitespace runs into a single space. The result is trimmed and never empty.
func Sanitize(name string) string {
	name = whitespaceRun.ReplaceAllString(name, " ")
	name = disallowedChars.ReplaceAllString(name, "")
	// Removing characters can leave doubled or edge spaces behind.
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return Fallback
	}
	return name
}

// IsReserved reports whether name is a reserved device name on Windows.
func IsReserved(name string) bool {
	_, ok := reserved[strings.ToUpper(name)]
	return ok
}
