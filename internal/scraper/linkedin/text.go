package linkedin

import (
	"html"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var tagRegex = regexp.MustCompile(`<[^>]*>`)

// StripTags replaces every tag with a single space, decodes entities and
// folds compatibility characters (non-breaking spaces, ligatures).
func StripTags(markup string) string {
	text := tagRegex.ReplaceAllString(markup, " ")
	text = html.UnescapeString(text)
	return strings.TrimSpace(normalizeText(text))
}

func normalizeText(s string) string {
	t := transform.Chain(
		norm.NFKC,
		runes.Remove(runes.Predicate(func(r rune) bool {
			return unicode.IsControl(r) && !unicode.IsSpace(r)
		})),
	)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}
