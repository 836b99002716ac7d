package state

import "strings"

// PostReview appends draft to item's ledger. Whitespace-only drafts are
// ignored. The stored text is the draft as typed, not the trimmed form.
func PostReview(item *Item, draft string) bool {
	if item == nil || strings.TrimSpace(draft) == "" {
		return false
	}
	item.AddReview(draft)
	return true
}
