package render

import (
	statepkg "github.com/kk-code-lab/cookiebox/internal/state"
	textutil "github.com/kk-code-lab/cookiebox/internal/textutil"
)

const (
	appTitle       = " Cookie Kingdom "
	searchLabel    = " / "
	reviewLabel    = " Review: "
	addButtonLabel = "[ Add to cart ]"
	postLabel      = "[ Post ]"
	buyNowLabel    = "[ Buy Now ]"

	minListWidth   = 18
	maxListWidth   = 36
	listWidthRatio = 0.33
	minDetailWidth = 24
	footerRows     = 1
)

// Layout records where the last frame placed each interactive region.
// Spans are half-open column ranges on a single row. A row of -1 means the
// region was not drawn.
type Layout struct {
	Width  int
	Height int

	SearchStartX int
	SearchEndX   int
	ThemeStartX  int
	ThemeEndX    int

	ListStartX int
	ListEndX   int
	ListStartY int
	ListRows   int
	ListOffset int
	ListCount  int

	CartStartY int
	BuyY       int
	BuyStartX  int
	BuyEndX    int

	DetailStartX int
	DetailEndX   int
	DetailStartY int
	DetailRows   int

	AddY         int
	AddStartX    int
	AddEndX      int
	ReviewY      int
	ReviewStartX int
	ReviewEndX   int
	PostStartX   int
	PostEndX     int
}

func inSpan(x, y, row, startX, endX int) bool {
	return row >= 0 && y == row && x >= startX && x < endX
}

// InSearch reports whether (x, y) hits the search field.
func (l Layout) InSearch(x, y int) bool {
	return inSpan(x, y, 0, l.SearchStartX, l.SearchEndX)
}

// InThemeToggle reports whether (x, y) hits the theme toggle.
func (l Layout) InThemeToggle(x, y int) bool {
	return inSpan(x, y, 0, l.ThemeStartX, l.ThemeEndX)
}

// InAddButton reports whether (x, y) hits the add-to-cart button.
func (l Layout) InAddButton(x, y int) bool {
	return inSpan(x, y, l.AddY, l.AddStartX, l.AddEndX)
}

// InBuyButton reports whether (x, y) hits the Buy Now button.
func (l Layout) InBuyButton(x, y int) bool {
	return inSpan(x, y, l.BuyY, l.BuyStartX, l.BuyEndX)
}

// InReviewInput reports whether (x, y) hits the review text field.
func (l Layout) InReviewInput(x, y int) bool {
	return inSpan(x, y, l.ReviewY, l.ReviewStartX, l.ReviewEndX)
}

// InPostButton reports whether (x, y) hits the post-review button.
func (l Layout) InPostButton(x, y int) bool {
	return inSpan(x, y, l.ReviewY, l.PostStartX, l.PostEndX)
}

// ListIndexAt maps a click to an index in the filtered view.
func (l Layout) ListIndexAt(x, y int) (int, bool) {
	if x < l.ListStartX || x >= l.ListEndX {
		return 0, false
	}
	row := y - l.ListStartY
	if row < 0 || row >= l.ListRows {
		return 0, false
	}
	idx := l.ListOffset + row
	if idx >= l.ListCount {
		return 0, false
	}
	return idx, true
}

// InDetail reports whether (x, y) falls inside the scrollable detail text.
func (l Layout) InDetail(x, y int) bool {
	return x >= l.DetailStartX && x < l.DetailEndX &&
		y >= l.DetailStartY && y < l.DetailStartY+l.DetailRows
}

func computeLayout(w, h int, state *statepkg.AppState) Layout {
	l := Layout{Width: w, Height: h, CartStartY: -1, BuyY: -1, AddY: -1, ReviewY: -1}
	if w <= 0 || h <= 0 || state == nil {
		return l
	}

	titleWidth := textutil.DisplayWidth(appTitle)
	l.ThemeEndX = w
	l.ThemeStartX = w - textutil.DisplayWidth(themeToggleLabel(state.Theme))
	if l.ThemeStartX < titleWidth {
		l.ThemeStartX = titleWidth
	}
	l.SearchStartX = titleWidth
	l.SearchEndX = l.ThemeStartX - 1
	if l.SearchEndX < l.SearchStartX {
		l.SearchEndX = l.SearchStartX
	}

	listWidth := int(float64(w) * listWidthRatio)
	if listWidth < minListWidth {
		listWidth = minListWidth
	}
	if listWidth > maxListWidth {
		listWidth = maxListWidth
	}
	showDetail := w-listWidth-1 >= minDetailWidth
	if !showDetail {
		listWidth = w
	}

	bodyTop := 1
	bodyBottom := h - footerRows

	l.ListStartX = 0
	l.ListEndX = listWidth
	l.ListStartY = bodyTop + 1
	l.ListCount = len(state.FilteredItems())

	cartRows := 0
	if n := len(state.Cart); n > 0 {
		cartRows = n + 2
		if limit := (bodyBottom - l.ListStartY) / 2; cartRows > limit {
			cartRows = limit
		}
		if cartRows < 2 {
			cartRows = 0
		}
	}
	l.ListRows = bodyBottom - cartRows - l.ListStartY
	if l.ListRows < 0 {
		l.ListRows = 0
	}
	if cartRows > 0 {
		l.CartStartY = bodyBottom - cartRows
		l.BuyY = bodyBottom - 1
		l.BuyStartX = 1
		l.BuyEndX = l.BuyStartX + textutil.DisplayWidth(buyNowLabel)
	}
	l.ListOffset = listOffset(state.SelectedIndex, l.ListCount, l.ListRows)

	if !showDetail {
		l.DetailStartX = w
		l.DetailEndX = w
		return l
	}

	l.DetailStartX = listWidth + 1
	l.DetailEndX = w
	l.DetailStartY = bodyTop
	l.DetailRows = bodyBottom - bodyTop
	if !state.HasSelection() || l.DetailRows < 4 {
		return l
	}

	l.ReviewY = bodyBottom - 1
	l.AddY = bodyBottom - 2
	l.DetailRows = l.AddY - l.DetailStartY - 1

	l.AddStartX = l.DetailStartX + 1
	l.AddEndX = l.AddStartX + textutil.DisplayWidth(addButtonLabel)
	if l.AddEndX > w {
		l.AddEndX = w
	}

	l.PostEndX = w - 1
	l.PostStartX = l.PostEndX - textutil.DisplayWidth(postLabel)
	l.ReviewStartX = l.DetailStartX + textutil.DisplayWidth(reviewLabel)
	l.ReviewEndX = l.PostStartX - 1
	if l.ReviewEndX < l.ReviewStartX {
		l.ReviewEndX = l.ReviewStartX
	}
	return l
}

// listOffset keeps the selected row visible. A stale selection scrolls to
// the top.
func listOffset(selected, count, rows int) int {
	if rows <= 0 || count <= rows || selected < 0 || selected >= count {
		return 0
	}
	if selected >= rows {
		return selected - rows + 1
	}
	return 0
}
