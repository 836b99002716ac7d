package render

import (
	"strings"

	statepkg "github.com/kk-code-lab/cookiebox/internal/state"
)

// buildFooterHelpText returns the contextual footer hint string with leading/trailing padding.
func buildFooterHelpText(state *statepkg.AppState) string {
	parts := buildFooterHelpSegments(state)
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, "  ") + " "
}

// buildFooterHelpSegments assembles focus-aware help hints for the footer.
func buildFooterHelpSegments(state *statepkg.AppState) []string {
	if state == nil {
		return nil
	}

	segments := contextualHelpSegments(state)
	segments = append(segments, persistentHelpSegments(state)...)

	return segments
}

func contextualHelpSegments(state *statepkg.AppState) []string {
	switch state.Focus {
	case statepkg.FocusSearch:
		return []string{
			"type: search",
			"↑↓: select",
			"↵/Esc: done",
			"Ctrl+U: clear",
		}
	case statepkg.FocusReview:
		return []string{
			"type: review",
			"↵: post",
			"Esc: cancel",
		}
	default:
		segments := []string{
			"↑↓: select",
			"/: search",
		}
		if state.HasSelection() {
			segments = append(segments, "a: add to cart", "r: review")
		}
		if len(state.Cart) > 0 {
			segments = append(segments, "b: buy now")
		}
		return segments
	}
}

func persistentHelpSegments(state *statepkg.AppState) []string {
	if state == nil || state.Focus != statepkg.FocusList {
		return nil
	}

	segments := []string{"t: theme"}
	if state.ClipboardAvailable && state.HasSelection() {
		segments = append(segments, "y: copy recipe")
	}
	segments = append(segments, "?: help", "q: quit")

	return segments
}
