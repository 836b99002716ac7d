package state

import (
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FilterItems returns the items whose name contains searchText, ignoring
// case, in their original order. An empty search returns a copy of items,
// so callers never alias the catalog's own slice.
func FilterItems(items []*Item, searchText string) []*Item {
	if searchText == "" {
		return slices.Clone(items)
	}

	caser := cases.Lower(language.Und)
	needle := caser.String(searchText)

	out := make([]*Item, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		if strings.Contains(caser.String(item.Name), needle) {
			out = append(out, item)
		}
	}
	return out
}

// MatchRange locates the first case-insensitive occurrence of searchText in
// name and returns it as a half-open rune range. ok is false when there is
// no match or when folding changes the rune count and offsets would drift.
func MatchRange(name, searchText string) (start, end int, ok bool) {
	if searchText == "" {
		return 0, 0, false
	}

	caser := cases.Lower(language.Und)
	foldedName := caser.String(name)
	needle := caser.String(searchText)
	if utf8.RuneCountInString(foldedName) != utf8.RuneCountInString(name) {
		return 0, 0, false
	}

	byteIdx := strings.Index(foldedName, needle)
	if byteIdx < 0 {
		return 0, 0, false
	}
	start = utf8.RuneCountInString(foldedName[:byteIdx])
	end = start + utf8.RuneCountInString(needle)
	return start, end, true
}

func trimLastRune(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}
