package catalog

import (
	"fmt"
	"strings"
)

// FormatRecipe renders an item as plain text for the clipboard and --dump.
func FormatRecipe(item *Item) string {
	if item == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%.1f/5)\n", item.Name, item.Rating)

	if len(item.Ingredients) > 0 {
		b.WriteString("\nIngredients\n")
		for _, ing := range item.Ingredients {
			fmt.Fprintf(&b, "  - %s\n", ing)
		}
	}
	if item.Process != "" {
		fmt.Fprintf(&b, "\nProcess\n  %s\n", item.Process)
	}
	if len(item.Substitutions) > 0 {
		b.WriteString("\nAlternatives\n")
		for _, sub := range item.Substitutions {
			fmt.Fprintf(&b, "  %s: %s\n", sub.Ingredient, sub.Text)
		}
	}
	if len(item.reviews) > 0 {
		b.WriteString("\nReviews\n")
		for _, review := range item.reviews {
			fmt.Fprintf(&b, "  “%s”\n", review)
		}
	}
	return b.String()
}
