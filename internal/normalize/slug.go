package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldMarks decomposes characters and strips combining diacritical marks,
// so accented letters fold to their base Latin letter.
var foldMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// Slug converts a free-text title into a URL-safe, lowercase,
// dash-separated token. Pure and deterministic; an empty or all-punctuation
// input yields an empty string, which callers must treat as a validation
// failure.
func Slug(title string) string {
	lowered := strings.ToLower(title)
	folded, _, err := transform.String(foldMarks, lowered)
	if err != nil {
		folded = lowered
	}
	return strings.Trim(nonSlugRun.ReplaceAllString(folded, "-"), "-")
}
