// Package textutil prepares catalog and user-typed text for drawing into
// terminal cells.
package textutil

import (
	"fmt"
	"strings"
	"unicode"
)

// Sanitize makes text safe to draw cell by cell. Line breaks and tabs become
// spaces, other control characters become '?', and invisible format runes
// (bidi overrides, zero-width joiners, BOM) are replaced by a visible
// ⟪U+XXXX⟫ tag so they cannot reorder or hide surrounding text.
func Sanitize(text string) string {
	if strings.IndexFunc(text, needsSanitizing) < 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			b.WriteByte(' ')
		case unicode.IsControl(r):
			b.WriteByte('?')
		case unicode.Is(unicode.Cf, r):
			fmt.Fprintf(&b, "⟪U+%04X⟫", r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func needsSanitizing(r rune) bool {
	return unicode.IsControl(r) || unicode.Is(unicode.Cf, r)
}
