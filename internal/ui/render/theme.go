package render

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/cookiebox/internal/state"
)

// ColorTheme defines application colors.
type ColorTheme struct {
	Background    tcell.Color
	Foreground    tcell.Color
	HeaderBg      tcell.Color
	HeaderFg      tcell.Color
	PanelBg       tcell.Color
	PanelFg       tcell.Color
	SelectionBg   tcell.Color
	SelectionFg   tcell.Color
	MatchFg       tcell.Color
	MutedFg       tcell.Color
	RatingFg      tcell.Color
	InputBg       tcell.Color
	InputFg       tcell.Color
	PlaceholderFg tcell.Color
	CartFg        tcell.Color
	FooterBg      tcell.Color
	FooterFg      tcell.Color
	FlashBg       tcell.Color
	FlashFg       tcell.Color
	ErrorFg       tcell.Color
}

// GetColorTheme returns the palette for the given display mode.
func GetColorTheme(theme statepkg.Theme) ColorTheme {
	if theme == statepkg.ThemeLight {
		return lightTheme()
	}
	return darkTheme()
}

func darkTheme() ColorTheme {
	return ColorTheme{
		Background:    tcell.Color234,
		Foreground:    tcell.ColorWhite,
		HeaderBg:      tcell.ColorBlack,
		HeaderFg:      tcell.ColorWhite,
		PanelBg:       tcell.Color235,
		PanelFg:       tcell.Color252,
		SelectionBg:   tcell.Color240,
		SelectionFg:   tcell.ColorWhite,
		MatchFg:       tcell.Color220,
		MutedFg:       tcell.Color245,
		RatingFg:      tcell.Color220, // star yellow
		InputBg:       tcell.Color238,
		InputFg:       tcell.ColorWhite,
		PlaceholderFg: tcell.Color244,
		CartFg:        tcell.Color114,
		FooterBg:      tcell.ColorBlack,
		FooterFg:      tcell.Color250,
		FlashBg:       tcell.ColorGreen,
		FlashFg:       tcell.ColorBlack,
		ErrorFg:       tcell.Color203,
	}
}

func lightTheme() ColorTheme {
	return ColorTheme{
		Background:    tcell.ColorWhite,
		Foreground:    tcell.ColorBlack,
		HeaderBg:      tcell.Color254,
		HeaderFg:      tcell.ColorBlack,
		PanelBg:       tcell.Color255,
		PanelFg:       tcell.Color235,
		SelectionBg:   tcell.Color252,
		SelectionFg:   tcell.ColorBlack,
		MatchFg:       tcell.Color166,
		MutedFg:       tcell.Color242,
		RatingFg:      tcell.Color136,
		InputBg:       tcell.Color253,
		InputFg:       tcell.ColorBlack,
		PlaceholderFg: tcell.Color244,
		CartFg:        tcell.Color28,
		FooterBg:      tcell.Color254,
		FooterFg:      tcell.Color236,
		FlashBg:       tcell.ColorGreen,
		FlashFg:       tcell.ColorBlack,
		ErrorFg:       tcell.Color160,
	}
}

// themeToggleLabel names the mode the toggle switches to.
func themeToggleLabel(theme statepkg.Theme) string {
	if theme == statepkg.ThemeDark {
		return "[ Light ]"
	}
	return "[ Dark ]"
}
