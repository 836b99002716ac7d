package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== SEARCH ACTIONS =====

type SetSearchTextAction struct {
	Text string
}
type SearchCharAction struct {
	Char rune
}
type SearchBackspaceAction struct{}
type SearchClearAction struct{}

// ===== SELECTION ACTIONS =====

// SelectAction selects a position in the filtered view.
type SelectAction struct {
	Index int
}
type NavigateUpAction struct{}
type NavigateDownAction struct{}

// ===== CART ACTIONS =====

type AddToCartAction struct {
	Name string
}
type AddSelectedToCartAction struct{}
type BuyNowAction struct{} // checkout is not implemented

// ===== REVIEW ACTIONS =====

type DraftReviewSetAction struct {
	Text string
}
type DraftReviewCharAction struct {
	Char rune
}
type DraftReviewBackspaceAction struct{}
type PostReviewAction struct{}

// ===== VIEW ACTIONS =====

type ToggleThemeAction struct{}
type FocusSearchAction struct{}
type FocusReviewAction struct{}
type FocusListAction struct{}
type HelpToggleAction struct{}
type HelpHideAction struct{}
type DetailScrollUpAction struct{}
type DetailScrollDownAction struct{}

type ResizeAction struct {
	Width  int
	Height int
}

// ===== APPLICATION ACTIONS =====

// Handled by the application; the reducer treats them as no-ops.
type YankRecipeAction struct{}
type SuspendAction struct{}
type QuitAction struct{}
