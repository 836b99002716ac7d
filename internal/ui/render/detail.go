package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/kk-code-lab/cookiebox/internal/catalog"
	textutil "github.com/kk-code-lab/cookiebox/internal/textutil"
)

type detailLineKind int

const (
	detailBlank detailLineKind = iota
	detailTitle
	detailRating
	detailInCart
	detailHeading
	detailBody
	detailQuote
	detailMuted
)

type detailLine struct {
	text string
	kind detailLineKind
}

// buildDetailLines lays out the detail card for item, wrapped to width.
func buildDetailLines(item *catalog.Item, inCart bool, width int) []detailLine {
	if item == nil || width <= 0 {
		return nil
	}

	var lines []detailLine
	add := func(kind detailLineKind, text string) {
		lines = append(lines, detailLine{text: text, kind: kind})
	}
	addWrapped := func(kind detailLineKind, first, rest, text string) {
		indentWidth := textutil.DisplayWidth(first)
		for i, part := range textutil.Wrap(textutil.Sanitize(text), width-indentWidth) {
			prefix := rest
			if i == 0 {
				prefix = first
			}
			add(kind, prefix+part)
		}
	}

	addWrapped(detailTitle, "", "", item.Name)
	add(detailRating, formatRating(item.Rating))
	if inCart {
		add(detailInCart, "✓ In your cart")
	}

	add(detailBlank, "")
	add(detailHeading, "Ingredients")
	if len(item.Ingredients) == 0 {
		add(detailMuted, "  None listed")
	}
	for _, ing := range item.Ingredients {
		addWrapped(detailBody, "  • ", "    ", ing)
	}

	if strings.TrimSpace(item.Process) != "" {
		add(detailBlank, "")
		add(detailHeading, "Process")
		addWrapped(detailBody, "  ", "  ", item.Process)
	}

	if len(item.Substitutions) > 0 {
		add(detailBlank, "")
		add(detailHeading, "Alternatives")
		for _, sub := range item.Substitutions {
			addWrapped(detailBody, "  ", "    ", sub.Ingredient+": "+sub.Text)
		}
	}

	reviews := item.Reviews()
	add(detailBlank, "")
	add(detailHeading, fmt.Sprintf("Reviews (%d)", len(reviews)))
	if len(reviews) == 0 {
		add(detailMuted, "  No reviews yet")
	}
	for _, review := range reviews {
		addWrapped(detailQuote, "  “", "   ", review+"”")
	}

	return lines
}

// formatRating draws rating as five stars, rounded to the nearest whole star.
func formatRating(rating float64) string {
	full := int(math.Round(rating))
	if full < 0 {
		full = 0
	}
	if full > 5 {
		full = 5
	}
	return strings.Repeat("★", full) + strings.Repeat("☆", 5-full) + fmt.Sprintf(" %.1f/5", rating)
}
