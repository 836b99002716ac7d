package state

import (
	"errors"
	"slices"
	"testing"
)

func TestNewAppStateDefaults(t *testing.T) {
	state := newCookieState(t)

	if state.SearchText != "" || state.SelectedIndex != 0 || state.DraftReview != "" {
		t.Fatalf("unexpected defaults: %+v", state)
	}
	if state.Theme != ThemeDark {
		t.Fatalf("expected dark theme by default, got %v", state.Theme)
	}
	if len(state.Cart) != 0 {
		t.Fatalf("expected empty cart, got %v", state.Cart)
	}
	if item := state.SelectedItem(); item == nil || item.Name != "Chocolate Chip Cookies" {
		t.Fatalf("expected first cookie selected, got %v", item)
	}
}

func TestEndToEndBrowseCartAndReview(t *testing.T) {
	reducer := NewStateReducer()
	state := newCookieState(t)

	mustReduce(t, reducer, state, SetSearchTextAction{Text: "oat"})
	if got := itemNames(state.FilteredItems()); !slices.Equal(got, []string{"Oatmeal Raisin Cookies"}) {
		t.Fatalf("expected only oatmeal after search, got %v", got)
	}

	mustReduce(t, reducer, state, SelectAction{Index: 0})
	selected := state.SelectedItem()
	if selected == nil || selected.Rating != 4.6 {
		t.Fatalf("expected oatmeal (4.6) selected, got %v", selected)
	}

	mustReduce(t, reducer, state, AddToCartAction{Name: selected.Name})
	if want := []string{"Oatmeal Raisin Cookies"}; !slices.Equal(state.Cart, want) {
		t.Fatalf("cart mismatch\nwant: %#v\n got: %#v", want, state.Cart)
	}

	before := selected.ReviewCount()
	mustReduce(t, reducer, state, DraftReviewSetAction{Text: "Yum"}, PostReviewAction{})
	reviews := selected.Reviews()
	if len(reviews) != before+1 || reviews[len(reviews)-1] != "Yum" {
		t.Fatalf("expected Yum appended, got %#v", reviews)
	}
	if state.DraftReview != "" {
		t.Fatalf("expected draft cleared after post, got %q", state.DraftReview)
	}
}

func TestSelectionBecomesUndefinedWhenFilteredOut(t *testing.T) {
	reducer := NewStateReducer()
	state := NewAppState(newTestCatalog(t, "A", "B"))

	mustReduce(t, reducer, state, SelectAction{Index: 1})
	if item := state.SelectedItem(); item == nil || item.Name != "B" {
		t.Fatalf("expected B selected, got %v", item)
	}

	mustReduce(t, reducer, state, SetSearchTextAction{Text: "A"})
	if got := itemNames(state.FilteredItems()); !slices.Equal(got, []string{"A"}) {
		t.Fatalf("expected filtered view [A], got %v", got)
	}
	if state.SelectedIndex != 1 {
		t.Fatalf("search must not move the selection index, got %d", state.SelectedIndex)
	}
	if item := state.SelectedItem(); item != nil {
		t.Fatalf("stale selection must resolve to nothing, got %q", item.Name)
	}
	if state.HasSelection() {
		t.Fatalf("HasSelection should be false for a stale index")
	}

	// Clearing the search makes the same index valid again.
	mustReduce(t, reducer, state, SearchClearAction{})
	if item := state.SelectedItem(); item == nil || item.Name != "B" {
		t.Fatalf("expected B after clearing search, got %v", item)
	}
}

func TestSelectionEmptyFilterHasNoSelection(t *testing.T) {
	reducer := NewStateReducer()
	state := newCookieState(t)

	mustReduce(t, reducer, state, SetSearchTextAction{Text: "snickerdoodle"})
	if len(state.FilteredItems()) != 0 {
		t.Fatalf("expected empty filtered view")
	}
	if state.SelectedItem() != nil {
		t.Fatalf("expected no selection for empty filtered view")
	}
}

func TestSelectItemBounds(t *testing.T) {
	items := newTestCatalog(t, "A", "B").Items()
	for _, idx := range []int{-1, 2, 100} {
		if got := SelectItem(items, idx); got != nil {
			t.Fatalf("index %d should be undefined, got %q", idx, got.Name)
		}
	}
	if got := SelectItem(items, 1); got == nil || got.Name != "B" {
		t.Fatalf("index 1 should be B, got %v", got)
	}
	if got := SelectItem(nil, 0); got != nil {
		t.Fatalf("empty view should have no selection")
	}
}

func TestNavigateWithinFilteredView(t *testing.T) {
	reducer := NewStateReducer()
	state := NewAppState(newTestCatalog(t, "A1", "B", "A2", "A3"))

	mustReduce(t, reducer, state, SetSearchTextAction{Text: "a"})
	mustReduce(t, reducer, state, NavigateDownAction{}, NavigateDownAction{}, NavigateDownAction{})
	if item := state.SelectedItem(); item == nil || item.Name != "A3" {
		t.Fatalf("expected to stop on last match A3, got %v", item)
	}

	mustReduce(t, reducer, state, NavigateUpAction{})
	if item := state.SelectedItem(); item == nil || item.Name != "A2" {
		t.Fatalf("expected A2 after moving up, got %v", item)
	}

	mustReduce(t, reducer, state, NavigateUpAction{}, NavigateUpAction{})
	if state.SelectedIndex != 0 {
		t.Fatalf("expected to stop at first match, got %d", state.SelectedIndex)
	}
}

func TestNavigateRecoversFromStaleSelection(t *testing.T) {
	reducer := NewStateReducer()
	state := NewAppState(newTestCatalog(t, "A", "B", "C"))

	mustReduce(t, reducer, state, SelectAction{Index: 2}, SetSearchTextAction{Text: "b"})
	if state.HasSelection() {
		t.Fatalf("expected stale selection")
	}
	mustReduce(t, reducer, state, NavigateDownAction{})
	if item := state.SelectedItem(); item == nil || item.Name != "B" {
		t.Fatalf("down from stale selection should land on first match, got %v", item)
	}

	mustReduce(t, reducer, state, SearchClearAction{}, SelectAction{Index: 7}, NavigateUpAction{})
	if item := state.SelectedItem(); item == nil || item.Name != "C" {
		t.Fatalf("up from stale selection should land on last match, got %v", item)
	}
}

func TestNavigateOnEmptyViewIsNoop(t *testing.T) {
	reducer := NewStateReducer()
	state := NewAppState(newTestCatalog(t, "A"))

	mustReduce(t, reducer, state, SelectAction{Index: 0}, SetSearchTextAction{Text: "zzz"}, NavigateDownAction{})
	if state.SelectedIndex != 0 {
		t.Fatalf("selection index should be untouched, got %d", state.SelectedIndex)
	}
}

func TestSearchEditing(t *testing.T) {
	reducer := NewStateReducer()
	state := newCookieState(t)

	for _, ch := range "Oaté" {
		mustReduce(t, reducer, state, SearchCharAction{Char: ch})
	}
	if state.SearchText != "Oaté" {
		t.Fatalf("expected Oaté, got %q", state.SearchText)
	}
	mustReduce(t, reducer, state, SearchBackspaceAction{})
	if state.SearchText != "Oat" {
		t.Fatalf("backspace should remove one rune, got %q", state.SearchText)
	}
	mustReduce(t, reducer, state, SearchClearAction{}, SearchBackspaceAction{})
	if state.SearchText != "" {
		t.Fatalf("expected empty search, got %q", state.SearchText)
	}
}

func TestSelectResetsDetailScroll(t *testing.T) {
	reducer := NewStateReducer()
	state := newCookieState(t)
	state.DetailScrollLimit = 5

	mustReduce(t, reducer, state, DetailScrollDownAction{}, DetailScrollDownAction{})
	if state.DetailScroll != 2 {
		t.Fatalf("expected detail scroll 2, got %d", state.DetailScroll)
	}
	mustReduce(t, reducer, state, SelectAction{Index: 1})
	if state.DetailScroll != 0 {
		t.Fatalf("selecting another item should reset detail scroll, got %d", state.DetailScroll)
	}
}

func TestDetailScrollClamps(t *testing.T) {
	reducer := NewStateReducer()
	state := newCookieState(t)
	state.DetailScrollLimit = 1

	mustReduce(t, reducer, state, DetailScrollUpAction{})
	if state.DetailScroll != 0 {
		t.Fatalf("scroll should not go negative, got %d", state.DetailScroll)
	}
	mustReduce(t, reducer, state, DetailScrollDownAction{}, DetailScrollDownAction{})
	if state.DetailScroll != 1 {
		t.Fatalf("scroll should stop at limit, got %d", state.DetailScroll)
	}
}

func TestToggleTheme(t *testing.T) {
	reducer := NewStateReducer()
	state := newCookieState(t)

	mustReduce(t, reducer, state, ToggleThemeAction{})
	if state.Theme != ThemeLight {
		t.Fatalf("expected light after one toggle, got %v", state.Theme)
	}
	mustReduce(t, reducer, state, ToggleThemeAction{})
	if state.Theme != ThemeDark {
		t.Fatalf("expected dark after two toggles, got %v", state.Theme)
	}
	if ThemeDark.Toggle().Toggle() != ThemeDark {
		t.Fatalf("double toggle should be identity")
	}
	if ParseTheme("light") != ThemeLight || ParseTheme("anything") != ThemeDark {
		t.Fatalf("unexpected ParseTheme mapping")
	}
}

func TestFocusAndHelpActions(t *testing.T) {
	reducer := NewStateReducer()
	state := newCookieState(t)

	mustReduce(t, reducer, state, FocusSearchAction{})
	if state.Focus != FocusSearch {
		t.Fatalf("expected search focus, got %v", state.Focus)
	}
	mustReduce(t, reducer, state, FocusReviewAction{})
	if state.Focus != FocusReview {
		t.Fatalf("expected review focus, got %v", state.Focus)
	}
	mustReduce(t, reducer, state, FocusListAction{})
	if state.Focus != FocusList {
		t.Fatalf("expected list focus, got %v", state.Focus)
	}

	mustReduce(t, reducer, state, SetSearchTextAction{Text: "no match"}, FocusReviewAction{})
	if state.Focus != FocusList {
		t.Fatalf("review focus without a selection should be ignored, got %v", state.Focus)
	}
	mustReduce(t, reducer, state, SearchClearAction{})

	mustReduce(t, reducer, state, HelpToggleAction{})
	if !state.HelpVisible {
		t.Fatalf("expected help visible")
	}
	mustReduce(t, reducer, state, HelpHideAction{})
	if state.HelpVisible {
		t.Fatalf("expected help hidden")
	}
}

func TestResizeKeepsStatusMessage(t *testing.T) {
	reducer := NewStateReducer()
	state := newCookieState(t)

	mustReduce(t, reducer, state, AddSelectedToCartAction{}, ResizeAction{Width: 80, Height: 24})
	if state.ScreenWidth != 80 || state.ScreenHeight != 24 {
		t.Fatalf("expected 80x24, got %dx%d", state.ScreenWidth, state.ScreenHeight)
	}
	if state.StatusMessage == "" {
		t.Fatalf("resize should not clear the status message")
	}
}

func TestReduceErrors(t *testing.T) {
	reducer := NewStateReducer()

	if _, err := reducer.Reduce(nil, ToggleThemeAction{}); !errors.Is(err, ErrNilState) {
		t.Fatalf("expected ErrNilState, got %v", err)
	}

	state := newCookieState(t)
	type bogusAction struct{}
	if _, err := reducer.Reduce(state, bogusAction{}); !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("expected ErrUnknownAction, got %v", err)
	}
	if _, err := reducer.Reduce(state, nil); err != nil {
		t.Fatalf("nil action should be ignored, got %v", err)
	}
}

func TestApplicationActionsAreReducerNoops(t *testing.T) {
	reducer := NewStateReducer()
	state := newCookieState(t)

	mustReduce(t, reducer, state, YankRecipeAction{}, SuspendAction{}, QuitAction{})
	if state.SelectedIndex != 0 || state.SearchText != "" || len(state.Cart) != 0 {
		t.Fatalf("application actions should not change browsing state: %+v", state)
	}
}
