package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/cookiebox/internal/state"
	textutil "github.com/kk-code-lab/cookiebox/internal/textutil"
)

type helpOverlayEntry struct {
	keys string
	desc string
}

type helpOverlaySection struct {
	title   string
	entries []helpOverlayEntry
}

func buildHelpOverlayLines(state *statepkg.AppState) []string {
	themeDesc := "Switch to light theme"
	if state != nil && state.Theme == statepkg.ThemeLight {
		themeDesc = "Switch to dark theme"
	}

	sections := []helpOverlaySection{
		{
			title: "Browse",
			entries: []helpOverlayEntry{
				{keys: "↑/↓ or k/j", desc: "Move selection"},
				{keys: "PgUp/PgDn", desc: "Scroll recipe"},
				{keys: "click", desc: "Select a cookie"},
			},
		},
		{
			title: "Search",
			entries: []helpOverlayEntry{
				{keys: "/", desc: "Search by name"},
				{keys: "Ctrl+U", desc: "Clear search"},
				{keys: "↵ or Esc", desc: "Back to the list"},
			},
		},
		{
			title: "Cart & Reviews",
			entries: []helpOverlayEntry{
				{keys: "a", desc: "Add selected cookie to cart"},
				{keys: "b", desc: "Buy now"},
				{keys: "r", desc: "Write a review"},
				{keys: "↵", desc: "Post review"},
			},
		},
		{
			title: "Display",
			entries: []helpOverlayEntry{
				{keys: "t", desc: themeDesc},
				{keys: "y", desc: "Copy recipe to clipboard"},
			},
		},
		{
			title: "Exit",
			entries: []helpOverlayEntry{
				{keys: "q", desc: "Quit"},
				{keys: "Ctrl+C", desc: "Quit immediately"},
				{keys: "Ctrl+Z", desc: "Suspend"},
				{keys: "?", desc: "Close this help"},
			},
		},
	}

	lines := make([]string, 0, 32)
	for i, section := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, section.title)
		for _, entry := range section.entries {
			lines = append(lines, formatHelpOverlayEntry(entry))
		}
	}

	return lines
}

func formatHelpOverlayEntry(entry helpOverlayEntry) string {
	key := textutil.Sanitize(entry.keys)
	desc := textutil.Sanitize(entry.desc)
	pad := 14 - textutil.DisplayWidth(key)
	if pad < 1 {
		pad = 1
	}
	return fmt.Sprintf("  %s%s%s", key, strings.Repeat(" ", pad), desc)
}

func (r *Renderer) drawHelpOverlay(state *statepkg.AppState, w, h int) {
	baseStyle := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	r.fillRect(0, 0, w, h, baseStyle)

	title := " Help "
	headerStyle := baseStyle.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg).Bold(true)
	r.fillRow(0, w, 0, headerStyle)
	titleStart := 0
	if titleWidth := textutil.DisplayWidth(title); w > titleWidth {
		titleStart = (w - titleWidth) / 2
	}
	r.drawTextLine(titleStart, 0, w-titleStart, title, headerStyle)

	lines := buildHelpOverlayLines(state)
	row := 2
	maxRow := h - 1
	for _, line := range lines {
		if row >= maxRow {
			break
		}
		style := baseStyle
		if line != "" && !strings.HasPrefix(line, " ") {
			style = baseStyle.Bold(true)
		}
		text := textutil.Truncate(strings.TrimRight(line, " "), w-4)
		r.drawTextLine(2, row, w-4, text, style)
		row++
	}

	if h > 1 {
		r.fillRow(0, w, h-1, headerStyle)
		r.drawTextLine(0, h-1, w, textutil.Truncate(" ? toggle · Esc/q close", w), headerStyle)
	}
}
