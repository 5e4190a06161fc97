// Package search normalizes free-text query terms before they are bound
// into statements. The statement folds its text columns the same way
// (lower + unaccent), so "Márquez" and "marquez" hit the same rows.
package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases the term, strips combining marks (accent folding),
// and collapses surrounding whitespace. The result is still bound as a
// parameter, never interpolated.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	t := transform.Chain(
		norm.NFKD,
		transform.RemoveFunc(func(r rune) bool { return unicode.Is(unicode.Mn, r) }),
		norm.NFC,
	)
	normed, _, err := transform.String(t, s)
	if err != nil {
		normed = s
	}
	return strings.ToLower(normed)
}
