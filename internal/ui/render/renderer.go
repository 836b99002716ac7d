package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/cookiebox/internal/state"
	textutil "github.com/kk-code-lab/cookiebox/internal/textutil"
)

const flashDuration = 100 * time.Millisecond

// Renderer handles all UI rendering
type Renderer struct {
	screen tcell.Screen
	theme  ColorTheme

	layout            Layout
	hasLayout         bool
	detailScrollLimit int

	now func() time.Time
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(statepkg.ThemeDark),
		now:    time.Now,
	}
}

// LastLayout returns the regions placed by the most recent Render call.
func (r *Renderer) LastLayout() (Layout, bool) {
	return r.layout, r.hasLayout
}

// DetailScrollLimit is the largest useful detail scroll offset for the
// last frame.
func (r *Renderer) DetailScrollLimit() int {
	return r.detailScrollLimit
}

// Render draws the entire UI based on state
func (r *Renderer) Render(state *statepkg.AppState) {
	if r.screen == nil || state == nil {
		return
	}
	r.theme = GetColorTheme(state.Theme)
	r.screen.Clear()

	w, h := r.screen.Size()
	base := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	r.fillRect(0, 0, w, h, base)

	if state.HelpVisible {
		r.hasLayout = false
		r.drawHelpOverlay(state, w, h)
		r.screen.Show()
		return
	}

	layout := computeLayout(w, h, state)
	r.layout = layout
	r.hasLayout = true

	r.drawHeader(state, layout)
	r.drawItemList(state, layout)
	r.drawCart(state, layout)
	if layout.DetailEndX > layout.DetailStartX {
		for y := 1; y < h-footerRows; y++ {
			r.screen.SetContent(layout.DetailStartX-1, y, '│', nil, base.Foreground(r.theme.MutedFg))
		}
		r.drawDetail(state, layout)
	}
	r.drawStatusLine(state, w, h)

	r.screen.Show()
}

// drawHeader renders the title, search field and theme toggle.
func (r *Renderer) drawHeader(state *statepkg.AppState, l Layout) {
	headerStyle := tcell.StyleDefault.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg)
	r.fillRow(0, l.Width, 0, headerStyle)
	r.drawTextLine(0, 0, l.SearchStartX, appTitle, headerStyle.Bold(true))

	inputStyle := tcell.StyleDefault.Background(r.theme.InputBg).Foreground(r.theme.InputFg)
	r.fillRow(l.SearchStartX, l.SearchEndX, 0, inputStyle)
	x := r.drawTextLine(l.SearchStartX, 0, l.SearchEndX-l.SearchStartX, searchLabel, inputStyle.Foreground(r.theme.MutedFg))
	fieldWidth := l.SearchEndX - x
	focused := state.Focus == statepkg.FocusSearch
	r.drawInputText(x, 0, fieldWidth, state.SearchText, "Search cookies...", focused, inputStyle)

	toggleStyle := headerStyle.Bold(true)
	r.drawTextLine(l.ThemeStartX, 0, l.ThemeEndX-l.ThemeStartX, themeToggleLabel(state.Theme), toggleStyle)
}

// drawInputText draws a single-line text field. When the text is wider than
// the field the tail stays visible so the cursor does not scroll away.
func (r *Renderer) drawInputText(x, y, width int, text, placeholder string, focused bool, style tcell.Style) {
	if width <= 0 {
		return
	}
	text = textutil.Sanitize(text)
	if text == "" && !focused {
		r.drawTextLine(x, y, width, textutil.Truncate(placeholder, width), style.Foreground(r.theme.PlaceholderFg))
		return
	}
	room := width
	if focused {
		room--
	}
	end := r.drawTextLine(x, y, width, tailToWidth(text, room), style)
	if focused && end < x+width {
		r.screen.SetContent(end, y, '█', nil, style)
	}
}

// drawItemList renders the filtered item names with the match highlighted.
func (r *Renderer) drawItemList(state *statepkg.AppState, l Layout) {
	panelStyle := tcell.StyleDefault.Background(r.theme.PanelBg).Foreground(r.theme.PanelFg)
	bottom := l.ListStartY + l.ListRows
	r.fillRect(l.ListStartX, 1, l.ListEndX, bottom, panelStyle)

	width := l.ListEndX - l.ListStartX
	items := state.FilteredItems()
	title := fmt.Sprintf(" Cookies (%d)", len(items))
	if state.SearchText != "" {
		title = fmt.Sprintf(" Cookies (%d of %d)", len(items), state.Catalog.Len())
	}
	r.drawTextLine(l.ListStartX, 1, width, textutil.Truncate(title, width), panelStyle.Bold(true))

	if len(items) == 0 {
		if l.ListRows > 0 {
			r.drawTextLine(l.ListStartX, l.ListStartY, width, textutil.Truncate(" No cookies found", width), panelStyle.Foreground(r.theme.MutedFg))
		}
		return
	}

	for row := 0; row < l.ListRows; row++ {
		idx := l.ListOffset + row
		if idx >= len(items) {
			break
		}
		item := items[idx]
		y := l.ListStartY + row

		rowStyle := panelStyle
		if idx == state.SelectedIndex {
			rowStyle = tcell.StyleDefault.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg).Bold(true)
			r.fillRow(l.ListStartX, l.ListEndX, y, rowStyle)
		}

		suffix := ""
		if state.InCart(item.Name) {
			suffix = " ✓"
		}
		name := textutil.Sanitize(item.Name)
		nameRoom := width - 1 - textutil.DisplayWidth(suffix) - 1
		name = textutil.Truncate(name, nameRoom)

		matchStyle := rowStyle.Foreground(r.theme.MatchFg).Underline(true)
		start, end, ok := statepkg.MatchRange(name, state.SearchText)
		if !ok {
			start, end = 0, 0
		}
		x := r.drawHighlightedLine(l.ListStartX+1, y, nameRoom, name, start, end, rowStyle, matchStyle)
		if suffix != "" {
			r.drawTextLine(x, y, l.ListEndX-x, suffix, rowStyle.Foreground(r.theme.CartFg))
		}
	}
}

// drawCart renders the cart below the list with its Buy Now button.
func (r *Renderer) drawCart(state *statepkg.AppState, l Layout) {
	if l.CartStartY < 0 {
		return
	}
	panelStyle := tcell.StyleDefault.Background(r.theme.PanelBg).Foreground(r.theme.PanelFg)
	r.fillRect(l.ListStartX, l.CartStartY, l.ListEndX, l.BuyY+1, panelStyle)

	width := l.ListEndX - l.ListStartX
	title := fmt.Sprintf(" Your Cart (%d)", len(state.Cart))
	r.drawTextLine(l.ListStartX, l.CartStartY, width, textutil.Truncate(title, width), panelStyle.Bold(true).Foreground(r.theme.CartFg))

	rows := l.BuyY - l.CartStartY - 1
	for i := 0; i < rows && i < len(state.Cart); i++ {
		text := " • " + textutil.Sanitize(state.Cart[i])
		if i == rows-1 && len(state.Cart) > rows {
			text = fmt.Sprintf("   +%d more", len(state.Cart)-i)
		}
		r.drawTextLine(l.ListStartX, l.CartStartY+1+i, width, textutil.Truncate(text, width), panelStyle)
	}

	buttonStyle := tcell.StyleDefault.Background(r.theme.InputBg).Foreground(r.theme.InputFg).Bold(true)
	r.drawTextLine(l.BuyStartX, l.BuyY, l.ListEndX-l.BuyStartX, buyNowLabel, buttonStyle)
}

// drawDetail renders the selected item's card, or the empty and not found
// states when nothing resolves.
func (r *Renderer) drawDetail(state *statepkg.AppState, l Layout) {
	base := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	startX := l.DetailStartX + 1
	width := l.DetailEndX - startX - 1
	r.detailScrollLimit = 0

	item := state.SelectedItem()
	if item == nil {
		msg := "Cookie not found"
		if len(state.FilteredItems()) == 0 {
			msg = "No cookies found"
		}
		y := l.DetailStartY + l.DetailRows/2
		msg = textutil.Truncate(msg, width)
		x := startX + (width-textutil.DisplayWidth(msg))/2
		r.drawTextLine(x, y, width, msg, base.Foreground(r.theme.MutedFg))
		return
	}

	lines := buildDetailLines(item, state.InCart(item.Name), width)
	limit := len(lines) - l.DetailRows
	if limit < 0 {
		limit = 0
	}
	r.detailScrollLimit = limit
	scroll := state.DetailScroll
	if scroll > limit {
		scroll = limit
	}

	for row := 0; row < l.DetailRows; row++ {
		idx := scroll + row
		if idx >= len(lines) {
			break
		}
		line := lines[idx]
		r.drawTextLine(startX, l.DetailStartY+row, width, line.text, r.detailLineStyle(base, line.kind))
	}

	if l.AddY >= 0 {
		buttonStyle := tcell.StyleDefault.Background(r.theme.InputBg).Foreground(r.theme.InputFg).Bold(true)
		r.drawTextLine(l.AddStartX, l.AddY, l.AddEndX-l.AddStartX, addButtonLabel, buttonStyle)
	}
	if l.ReviewY >= 0 {
		r.drawReviewInput(state, l, base)
	}
}

func (r *Renderer) drawReviewInput(state *statepkg.AppState, l Layout, base tcell.Style) {
	r.drawTextLine(l.DetailStartX, l.ReviewY, l.ReviewStartX-l.DetailStartX, reviewLabel, base.Foreground(r.theme.MutedFg))

	inputStyle := tcell.StyleDefault.Background(r.theme.InputBg).Foreground(r.theme.InputFg)
	r.fillRow(l.ReviewStartX, l.ReviewEndX, l.ReviewY, inputStyle)
	focused := state.Focus == statepkg.FocusReview
	r.drawInputText(l.ReviewStartX, l.ReviewY, l.ReviewEndX-l.ReviewStartX, state.DraftReview, "Write a review...", focused, inputStyle)

	postStyle := inputStyle.Bold(true)
	r.drawTextLine(l.PostStartX, l.ReviewY, l.PostEndX-l.PostStartX, postLabel, postStyle)
}

func (r *Renderer) detailLineStyle(base tcell.Style, kind detailLineKind) tcell.Style {
	switch kind {
	case detailTitle:
		return base.Bold(true)
	case detailRating:
		return base.Foreground(r.theme.RatingFg)
	case detailInCart:
		return base.Foreground(r.theme.CartFg)
	case detailHeading:
		return base.Bold(true).Underline(true)
	case detailQuote:
		return base.Italic(true)
	case detailMuted:
		return base.Foreground(r.theme.MutedFg)
	default:
		return base
	}
}

// drawStatusLine shows the last error, the last status message or the
// footer help, with the cart size on the right.
func (r *Renderer) drawStatusLine(state *statepkg.AppState, w, h int) {
	if h <= 0 {
		return
	}
	y := h - 1
	normalStyle := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg)
	style := normalStyle

	// Flash briefly after a yank.
	flashing := !state.LastYankTime.IsZero() && r.now().Sub(state.LastYankTime) < flashDuration
	if flashing {
		style = tcell.StyleDefault.Background(r.theme.FlashBg).Foreground(r.theme.FlashFg)
	}

	var text string
	switch {
	case state.LastError != nil:
		text = " Error: " + state.LastError.Error()
		if !flashing {
			style = normalStyle.Foreground(r.theme.ErrorFg)
		}
	case state.StatusMessage != "":
		text = " " + state.StatusMessage
	default:
		text = buildFooterHelpText(state)
	}
	text = textutil.Sanitize(text)

	right := ""
	if n := len(state.Cart); n > 0 {
		right = fmt.Sprintf(" Cart: %d ", n)
	}
	rightWidth := textutil.DisplayWidth(right)
	if rightWidth >= w {
		right, rightWidth = "", 0
	}

	r.fillRow(0, w, y, style)
	r.drawTextLine(0, y, w-rightWidth, textutil.Truncate(text, w-rightWidth), style)
	if right != "" {
		r.drawTextLine(w-rightWidth, y, rightWidth, right, style.Bold(true))
	}
}

// tailToWidth keeps the end of text that fits in width columns.
func tailToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if textutil.DisplayWidth(text) <= width {
		return text
	}
	runes := []rune(text)
	used := 0
	start := len(runes)
	for start > 0 {
		rw := textutil.DisplayWidth(string(runes[start-1]))
		if used+rw > width {
			break
		}
		used += rw
		start--
	}
	return string(runes[start:])
}
