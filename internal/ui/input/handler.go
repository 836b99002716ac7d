package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/cookiebox/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
	state      *statepkg.AppState // Reference to current state for focus checking
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// SetState sets the state reference for focus checking
func (ih *InputHandler) SetState(state *statepkg.AppState) {
	ih.state = state
}

// ProcessEvent converts a tcell event into an Action. It returns false when
// the event asks the application to quit.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

func (ih *InputHandler) focus() statepkg.Focus {
	if ih.state == nil {
		return statepkg.FocusList
	}
	return ih.state.Focus
}

// normalizedKey folds Ctrl+letter reported as a modified rune back into
// the matching control key.
func normalizedKey(ev *tcell.EventKey) tcell.Key {
	if ev.Key() != tcell.KeyRune || ev.Modifiers()&tcell.ModCtrl == 0 {
		return ev.Key()
	}
	switch unicode.ToLower(ev.Rune()) {
	case 'c':
		return tcell.KeyCtrlC
	case 'u':
		return tcell.KeyCtrlU
	case 'z':
		return tcell.KeyCtrlZ
	}
	return ev.Key()
}

// processKeyEvent handles keyboard input
func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	helpVisible := ih.state != nil && ih.state.HelpVisible
	key := normalizedKey(ev)

	if helpVisible {
		switch key {
		case tcell.KeyCtrlC:
			ih.actionChan <- statepkg.QuitAction{}
			return false
		case tcell.KeyEscape:
			ih.actionChan <- statepkg.HelpHideAction{}
			return true
		case tcell.KeyRune:
			r := ev.Rune()
			if r == '?' || r == 'q' || r == 'Q' {
				ih.actionChan <- statepkg.HelpHideAction{}
			}
			return true
		default:
			return true
		}
	}

	// Keys that behave the same regardless of focus
	switch key {
	case tcell.KeyCtrlC:
		ih.actionChan <- statepkg.QuitAction{}
		return false
	case tcell.KeyCtrlZ:
		ih.actionChan <- statepkg.SuspendAction{}
		return true
	case tcell.KeyUp:
		ih.actionChan <- statepkg.NavigateUpAction{}
		return true
	case tcell.KeyDown:
		ih.actionChan <- statepkg.NavigateDownAction{}
		return true
	case tcell.KeyPgUp:
		ih.actionChan <- statepkg.DetailScrollUpAction{}
		return true
	case tcell.KeyPgDn:
		ih.actionChan <- statepkg.DetailScrollDownAction{}
		return true
	}

	switch ih.focus() {
	case statepkg.FocusSearch:
		return ih.processSearchKey(ev, key)
	case statepkg.FocusReview:
		return ih.processReviewKey(ev, key)
	default:
		return ih.processListKey(ev, key)
	}
}

func (ih *InputHandler) processSearchKey(ev *tcell.EventKey, key tcell.Key) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyEnter, tcell.KeyTab:
		ih.actionChan <- statepkg.FocusListAction{}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ih.actionChan <- statepkg.SearchBackspaceAction{}
	case tcell.KeyCtrlU:
		ih.actionChan <- statepkg.SearchClearAction{}
	case tcell.KeyRune:
		// Every rune is query text here, including 'q'
		ih.actionChan <- statepkg.SearchCharAction{Char: ev.Rune()}
	}
	return true
}

func (ih *InputHandler) processReviewKey(ev *tcell.EventKey, key tcell.Key) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyTab:
		ih.actionChan <- statepkg.FocusListAction{}
	case tcell.KeyEnter:
		ih.actionChan <- statepkg.PostReviewAction{}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ih.actionChan <- statepkg.DraftReviewBackspaceAction{}
	case tcell.KeyCtrlU:
		ih.actionChan <- statepkg.DraftReviewSetAction{Text: ""}
	case tcell.KeyRune:
		ih.actionChan <- statepkg.DraftReviewCharAction{Char: ev.Rune()}
	}
	return true
}

func (ih *InputHandler) processListKey(ev *tcell.EventKey, key tcell.Key) bool {
	switch key {
	case tcell.KeyEscape:
		if ih.state != nil && ih.state.SearchText != "" {
			ih.actionChan <- statepkg.SearchClearAction{}
		}
		return true
	case tcell.KeyTab:
		ih.actionChan <- statepkg.FocusSearchAction{}
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case 'q', 'Q':
		ih.actionChan <- statepkg.QuitAction{}
		return false
	case '?':
		ih.actionChan <- statepkg.HelpToggleAction{}
	case '/':
		ih.actionChan <- statepkg.FocusSearchAction{}
	case 'k':
		ih.actionChan <- statepkg.NavigateUpAction{}
	case 'j':
		ih.actionChan <- statepkg.NavigateDownAction{}
	case 'a':
		ih.actionChan <- statepkg.AddSelectedToCartAction{}
	case 'b':
		ih.actionChan <- statepkg.BuyNowAction{}
	case 'r':
		ih.actionChan <- statepkg.FocusReviewAction{}
	case 't':
		ih.actionChan <- statepkg.ToggleThemeAction{}
	case 'y':
		ih.actionChan <- statepkg.YankRecipeAction{}
	}
	return true
}
