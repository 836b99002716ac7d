package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawTextLine draws text from startX, keeping combining marks attached to
// their base rune, and returns the column after the last drawn cell.
func (r *Renderer) drawTextLine(startX, y, maxWidth int, text string, style tcell.Style) int {
	x := startX
	runes := []rune(text)
	i := 0

	for i < len(runes) {
		mainc := runes[i]
		w := runewidth.RuneWidth(mainc)
		if w <= 0 {
			w = 1
		}
		if x-startX+w > maxWidth {
			break
		}
		i++

		var combc []rune
		for i < len(runes) && runewidth.RuneWidth(runes[i]) == 0 {
			combc = append(combc, runes[i])
			i++
		}

		r.screen.SetContent(x, y, mainc, combc, style)
		x += w
	}

	return x
}

// drawHighlightedLine draws text and restyles the runes in [hlStart, hlEnd).
func (r *Renderer) drawHighlightedLine(startX, y, maxWidth int, text string, hlStart, hlEnd int, style, highlight tcell.Style) int {
	x := startX
	for idx, ru := range []rune(text) {
		w := runewidth.RuneWidth(ru)
		if w <= 0 {
			w = 1
		}
		if x-startX+w > maxWidth {
			break
		}
		cellStyle := style
		if idx >= hlStart && idx < hlEnd {
			cellStyle = highlight
		}
		r.screen.SetContent(x, y, ru, nil, cellStyle)
		for pad := 1; pad < w; pad++ {
			r.screen.SetContent(x+pad, y, ' ', nil, cellStyle)
		}
		x += w
	}
	return x
}

func (r *Renderer) fillRow(startX, endX, y int, style tcell.Style) {
	for x := startX; x < endX; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}

func (r *Renderer) fillRect(startX, startY, endX, endY int, style tcell.Style) {
	for y := startY; y < endY; y++ {
		r.fillRow(startX, endX, y, style)
	}
}
