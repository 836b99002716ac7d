package state

import (
	"errors"
	"fmt"
)

var (
	ErrNilState      = errors.New("nil state")
	ErrUnknownAction = errors.New("unknown action")
)

// StateReducer applies actions to an AppState one at a time.
type StateReducer struct{}

func NewStateReducer() *StateReducer {
	return &StateReducer{}
}

// Reduce applies action to state in place and returns it. Policy cases such
// as a blank review or a repeated cart add are silent no-ops; an error is
// returned only for an action type the reducer does not know.
func (r *StateReducer) Reduce(state *AppState, action Action) (*AppState, error) {
	if state == nil {
		return nil, ErrNilState
	}
	if action == nil {
		return state, nil
	}

	if _, isResize := action.(ResizeAction); !isResize {
		state.StatusMessage = ""
	}

	switch a := action.(type) {

	// ===== SEARCH =====

	case SetSearchTextAction:
		state.SearchText = a.Text
		return state, nil

	case SearchCharAction:
		state.SearchText += string(a.Char)
		return state, nil

	case SearchBackspaceAction:
		state.SearchText = trimLastRune(state.SearchText)
		return state, nil

	case SearchClearAction:
		state.SearchText = ""
		return state, nil

	// ===== SELECTION =====

	case SelectAction:
		state.setSelection(a.Index)
		return state, nil

	case NavigateDownAction:
		state.moveSelection(1)
		return state, nil

	case NavigateUpAction:
		state.moveSelection(-1)
		return state, nil

	// ===== CART =====

	case AddToCartAction:
		r.addToCart(state, a.Name)
		return state, nil

	case AddSelectedToCartAction:
		if item := state.SelectedItem(); item != nil {
			r.addToCart(state, item.Name)
		}
		return state, nil

	case BuyNowAction:
		if len(state.Cart) > 0 {
			state.StatusMessage = "Checkout is not available"
		}
		return state, nil

	// ===== REVIEWS =====

	case DraftReviewSetAction:
		state.DraftReview = a.Text
		return state, nil

	case DraftReviewCharAction:
		state.DraftReview += string(a.Char)
		return state, nil

	case DraftReviewBackspaceAction:
		state.DraftReview = trimLastRune(state.DraftReview)
		return state, nil

	case PostReviewAction:
		r.postReview(state)
		return state, nil

	// ===== VIEW =====

	case ToggleThemeAction:
		state.Theme = state.Theme.Toggle()
		return state, nil

	case FocusSearchAction:
		state.Focus = FocusSearch
		return state, nil

	case FocusReviewAction:
		// The review input only exists on a selected item's card.
		if state.HasSelection() {
			state.Focus = FocusReview
		}
		return state, nil

	case FocusListAction:
		state.Focus = FocusList
		return state, nil

	case HelpToggleAction:
		state.HelpVisible = !state.HelpVisible
		return state, nil

	case HelpHideAction:
		state.HelpVisible = false
		return state, nil

	case DetailScrollUpAction:
		if state.DetailScroll > 0 {
			state.DetailScroll--
		}
		return state, nil

	case DetailScrollDownAction:
		if state.DetailScroll < state.DetailScrollLimit {
			state.DetailScroll++
		}
		return state, nil

	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
		return state, nil

	case YankRecipeAction, SuspendAction, QuitAction:
		return state, nil
	}

	return state, fmt.Errorf("%w: %T", ErrUnknownAction, action)
}

func (r *StateReducer) addToCart(state *AppState, name string) {
	if name == "" {
		return
	}
	if state.InCart(name) {
		state.StatusMessage = name + " is already in your cart"
		return
	}
	state.Cart = AddToCart(state.Cart, name)
	state.StatusMessage = "Added " + name + " to cart"
}

// postReview targets the selected item through its catalog key so the
// review cannot land on a different item that now shares the index.
func (r *StateReducer) postReview(state *AppState) {
	selected := state.SelectedItem()
	if selected == nil {
		return
	}
	target, ok := state.Catalog.Lookup(selected.Name)
	if !ok {
		return
	}
	if !PostReview(target, state.DraftReview) {
		return
	}
	state.DraftReview = ""
	state.StatusMessage = "Review posted"
}
