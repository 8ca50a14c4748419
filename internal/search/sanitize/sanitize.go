// internal/search/sanitize/sanitize.go
package sanitize

import "strings"

const (
	// MinQueryLength is the shortest sanitized query considered searchable.
	MinQueryLength = 2
	// MaxQueryLength caps the sanitized query, counted in runes so that
	// non-Latin scripts are not truncated mid-character.
	MaxQueryLength = 100
)

// stripped characters: SQL metacharacters plus HTML-significant angle
// brackets. The comment marker "--" is removed as a sequence first so a
// legitimate single hyphen survives.
var replacer = strings.NewReplacer(
	"--", " ",
	"/*", " ",
	"*/", " ",
	"'", "",
	"\"", "",
	"`", "",
	";", "",
	"<", "",
	">", "",
	"\\", "",
	"\x00", "",
)

// Clean normalizes a raw free-text search string: strips SQL and HTML
// metacharacters, collapses runs of whitespace, trims, and truncates to
// MaxQueryLength runes. It never fails, for any input.
func Clean(raw string) string {
	s := stripMeta(raw)
	s = strings.Join(strings.Fields(s), " ")

	runes := []rune(s)
	if len(runes) > MaxQueryLength {
		s = strings.TrimSpace(string(runes[:MaxQueryLength]))
	}
	return s
}

// IsValidQuery reports whether the sanitized, trimmed form of raw is long
// enough to be used as a search constraint.
func IsValidQuery(raw string) bool {
	return len([]rune(Clean(raw))) >= MinQueryLength
}

// stripMeta applies the replacer to a fixpoint: removing a quote can
// make two hyphens adjacent, so a single pass is not enough.
func stripMeta(s string) string {
	for {
		next := replacer.Replace(s)
		if next == s {
			return s
		}
		s = next
	}
}
