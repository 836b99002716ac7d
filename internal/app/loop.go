package app

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/cookiebox/internal/state"
	"go.uber.org/zap"
)

const flashDuration = 100 * time.Millisecond

// Run draws the UI and processes events until the user quits.
func (app *Application) Run() {
	defer app.screen.Fini()

	app.logger.Info("session started",
		zap.Int("items", app.state.Catalog.Len()),
		zap.String("theme", app.state.Theme.String()),
		zap.Bool("clipboard", app.clipboardAvail))

	app.render()
	renderPending := false

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			eventChan <- app.screen.PollEvent()
		}
	}()

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	// The flash timer redraws once more after a yank so the status line
	// returns to its normal colors.
	var flashTimer *time.Timer
	var flashCh <-chan time.Time

	startFlash := func() {
		if flashTimer == nil {
			flashTimer = time.NewTimer(flashDuration)
		} else {
			if !flashTimer.Stop() {
				select {
				case <-flashTimer.C:
				default:
				}
			}
			flashTimer.Reset(flashDuration)
		}
		flashCh = flashTimer.C
	}

	stopFlash := func() {
		if flashTimer == nil {
			return
		}
		if !flashTimer.Stop() {
			select {
			case <-flashTimer.C:
			default:
			}
		}
		flashCh = nil
	}

	for !app.shouldQuit {
		if renderPending {
			app.render()
			renderPending = false
		}

		if app.shouldAnimate() {
			startFlash()
		} else if flashCh == nil {
			stopFlash()
		}

		select {
		case ev := <-eventChan:
			if app.handleEvent(ev) {
				renderPending = true
			}
		case <-flashCh:
			flashCh = nil
			renderPending = true
		case action := <-app.actionCh:
			if app.handleAction(action) {
				renderPending = true
			}
		case <-sigContCh:
			if app.resumeAfterStop() {
				renderPending = true
			}
		}

		if app.processActions() {
			renderPending = true
		}
	}

	stopFlash()
	app.logger.Info("session ended", zap.Strings("cart", app.state.CartItems()))
}

// render draws a frame and feeds the detail scroll extent back into state.
func (app *Application) render() {
	app.renderer.Render(app.state)
	limit := app.renderer.DetailScrollLimit()
	app.state.DetailScrollLimit = limit
	if app.state.DetailScroll > limit {
		app.state.DetailScroll = limit
	}
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
	case *tcell.EventResize:
		app.screen.Sync()
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
	case *tcell.EventMouse:
		return app.handleMouse(ev)
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
	return true
}

// handleMouse maps wheel scrolling and primary clicks to actions using the
// regions of the last rendered frame.
func (app *Application) handleMouse(ev *tcell.EventMouse) bool {
	if app.state == nil {
		return false
	}

	layout, ok := app.renderer.LastLayout()
	x, y := ev.Position()
	buttons := ev.Buttons()

	switch {
	case buttons&tcell.WheelUp != 0:
		if ok && layout.InDetail(x, y) {
			app.actionCh <- statepkg.DetailScrollUpAction{}
		} else {
			app.actionCh <- statepkg.NavigateUpAction{}
		}
		return true
	case buttons&tcell.WheelDown != 0:
		if ok && layout.InDetail(x, y) {
			app.actionCh <- statepkg.DetailScrollDownAction{}
		} else {
			app.actionCh <- statepkg.NavigateDownAction{}
		}
		return true
	}

	if buttons&tcell.Button1 == 0 {
		app.buttonHeld = false
		return false
	}
	// Drag reports repeat Button1 while held; only the press counts.
	if app.buttonHeld {
		return false
	}
	app.buttonHeld = true

	if app.state.HelpVisible {
		app.actionCh <- statepkg.HelpHideAction{}
		return true
	}
	if !ok {
		return false
	}

	switch {
	case layout.InThemeToggle(x, y):
		app.actionCh <- statepkg.ToggleThemeAction{}
	case layout.InSearch(x, y):
		app.actionCh <- statepkg.FocusSearchAction{}
	case layout.InAddButton(x, y):
		app.actionCh <- statepkg.AddSelectedToCartAction{}
	case layout.InBuyButton(x, y):
		app.actionCh <- statepkg.BuyNowAction{}
	case layout.InPostButton(x, y):
		app.actionCh <- statepkg.PostReviewAction{}
	case layout.InReviewInput(x, y):
		app.actionCh <- statepkg.FocusReviewAction{}
	default:
		idx, hit := layout.ListIndexAt(x, y)
		if !hit {
			return false
		}
		app.actionCh <- statepkg.SelectAction{Index: idx}
		if app.state.Focus != statepkg.FocusList {
			app.actionCh <- statepkg.FocusListAction{}
		}
	}
	return true
}

func (app *Application) processActions() bool {
	changed := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(action) {
				changed = true
			}
		default:
			return changed
		}
	}
}

func (app *Application) shouldAnimate() bool {
	if app.state == nil || app.state.LastYankTime.IsZero() {
		return false
	}
	return time.Since(app.state.LastYankTime) < flashDuration
}

func (app *Application) handleAction(action statepkg.Action) bool {
	if action == nil {
		return false
	}
	if _, isResize := action.(statepkg.ResizeAction); !isResize {
		app.state.LastError = nil
	}

	switch action.(type) {
	case statepkg.QuitAction:
		app.shouldQuit = true
		return false
	case statepkg.SuspendAction:
		app.suspendToShell()
		app.resumeAfterStop()
		return true
	case statepkg.YankRecipeAction:
		app.state.StatusMessage = ""
		return app.handleClipboard()
	}

	if _, err := app.reducer.Reduce(app.state, action); err != nil {
		app.state.LastError = err
		app.logger.Error("action failed", zap.String("action", fmt.Sprintf("%T", action)), zap.Error(err))
		return true
	}
	if app.state.StatusMessage != "" {
		app.logger.Debug("status", zap.String("message", app.state.StatusMessage))
	}
	return true
}
