package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/cookiebox/internal/catalog"
	statepkg "github.com/kk-code-lab/cookiebox/internal/state"
)

func newTestState(t *testing.T) *statepkg.AppState {
	t.Helper()
	c, err := catalog.New([]*catalog.Item{
		catalog.NewItem("Chocolate Chip Cookies",
			[]string{"1 cup butter", "2 cups chocolate chips"},
			[]catalog.Substitution{{Ingredient: "butter", Text: "coconut oil"}},
			"Cream butter and sugar, fold in chips, bake at 375F.",
			4.8,
			[]string{"Absolutely delicious and easy to make!"}),
		catalog.NewItem("Oatmeal Raisin Cookies",
			[]string{"2 cups rolled oats", "1 cup raisins"},
			nil,
			"Mix oats and raisins into the dough, bake at 350F.",
			4.6,
			nil),
	})
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return statepkg.NewAppState(c)
}

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen
}

// screenRow returns the characters drawn on row y.
func screenRow(screen tcell.SimulationScreen, y int) string {
	cells, w, h := screen.GetContents()
	if y < 0 || y >= h {
		return ""
	}
	var b strings.Builder
	for x := 0; x < w; x++ {
		cell := cells[y*w+x]
		if len(cell.Runes) == 0 {
			b.WriteByte(' ')
			continue
		}
		b.WriteString(string(cell.Runes))
	}
	return b.String()
}

func screenText(screen tcell.SimulationScreen) string {
	_, _, h := screen.GetContents()
	rows := make([]string, 0, h)
	for y := 0; y < h; y++ {
		rows = append(rows, screenRow(screen, y))
	}
	return strings.Join(rows, "\n")
}
