package state

import (
	"time"

	"github.com/kk-code-lab/cookiebox/internal/catalog"
)

// Item is a catalog entry as seen by the view state.
type Item = catalog.Item

// Theme is the display mode. It has no effect on any other state.
type Theme int

const (
	ThemeDark Theme = iota
	ThemeLight
)

// Toggle flips between dark and light.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func (t Theme) String() string {
	if t == ThemeLight {
		return "light"
	}
	return "dark"
}

// ParseTheme maps "light" to ThemeLight and anything else to ThemeDark.
func ParseTheme(name string) Theme {
	if name == "light" {
		return ThemeLight
	}
	return ThemeDark
}

// Focus names the input that receives typed characters.
type Focus int

const (
	FocusList Focus = iota
	FocusSearch
	FocusReview
)

// ===== STATE DEFINITIONS =====

// AppState is the single source of truth for one browsing session.
type AppState struct {
	// Catalog is loaded once and never reordered.
	Catalog *catalog.Catalog

	// Browsing
	SearchText    string
	SelectedIndex int // index into FilteredItems, not into the catalog

	// Session data
	Cart        []string // item names in first-added order
	DraftReview string

	// Presentation
	Theme             Theme
	Focus             Focus
	HelpVisible       bool
	DetailScroll      int
	DetailScrollLimit int // last scrollable extent reported by the renderer
	ScreenWidth       int
	ScreenHeight      int

	// Status line
	ClipboardAvailable bool
	LastYankTime       time.Time
	StatusMessage      string
	LastError          error

	// Filtered view cache
	filtered        []*Item
	filteredQuery   string
	filteredCatalog *catalog.Catalog
	filteredValid   bool
}

// NewAppState returns the session defaults over c.
func NewAppState(c *catalog.Catalog) *AppState {
	return &AppState{
		Catalog:       c,
		SelectedIndex: 0,
		Theme:         ThemeDark,
		Focus:         FocusList,
	}
}

// ===== READ ACCESSORS =====

// FilteredItems returns the catalog items whose names match SearchText.
func (s *AppState) FilteredItems() []*Item {
	if s.filteredValid && s.filteredQuery == s.SearchText && s.filteredCatalog == s.Catalog {
		return s.filtered
	}
	s.filtered = FilterItems(s.Catalog.Items(), s.SearchText)
	s.filteredQuery = s.SearchText
	s.filteredCatalog = s.Catalog
	s.filteredValid = true
	return s.filtered
}

// SelectedItem resolves SelectedIndex against the current filtered view.
// It returns nil when the index no longer points inside that view.
func (s *AppState) SelectedItem() *Item {
	return SelectItem(s.FilteredItems(), s.SelectedIndex)
}

// HasSelection reports whether SelectedItem would return an item.
func (s *AppState) HasSelection() bool {
	return s.SelectedItem() != nil
}

// InCart reports whether name has been added to the cart.
func (s *AppState) InCart(name string) bool {
	return cartContains(s.Cart, name)
}

// CartItems returns a copy of the cart.
func (s *AppState) CartItems() []string {
	return append([]string(nil), s.Cart...)
}
