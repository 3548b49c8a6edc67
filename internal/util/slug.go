package util

import (
	"strings"
)

// GenerateSlug builds a URL-friendly identifier from free text:
// "Mi Negocio Café" → "mi-negocio-cafe". The result is not guaranteed to be unique.
func GenerateSlug(text string) string {
	folded := StripDiacritics(strings.ToLower(text))

	var b strings.Builder
	b.Grow(len(folded))

	dash := false
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)

			continue
		}
		dash = true
	}

	return b.String()
}
