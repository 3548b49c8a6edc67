package util

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// StripDiacritics removes combining marks after canonical decomposition, so "Ñuñoa"
// becomes "Nunoa". Invalid UTF-8 input is returned unchanged.
func StripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}

	return out
}

// NormalizeText folds a string for comparisons: lowercase, no diacritics, letters and
// digits separated by single spaces. Apostrophes are dropped ("O'Higgins" → "ohiggins");
// any other punctuation separates words ("Café-Bar" → "cafe bar").
func NormalizeText(s string) string {
	folded := StripDiacritics(strings.ToLower(s))

	var b strings.Builder
	b.Grow(len(folded))

	space := false
	for _, r := range folded {
		switch {
		case r == '\'' || r == '’':
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(r)
		default:
			space = true
		}
	}

	return b.String()
}

var titleCaser = cases.Title(language.Spanish)

// TitleCase capitalizes each word using Spanish casing rules ("las condes" → "Las Condes").
func TitleCase(s string) string {
	return titleCaser.String(strings.TrimSpace(s))
}
