//go:build !windows

package app

import (
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

func (app *Application) suspendToShell() {
	// Hand the terminal back before stopping.
	_ = app.screen.Suspend()
	// Stop only this process so a wrapping shell keeps job control.
	_ = syscall.Kill(syscall.Getpid(), syscall.SIGTSTP)
}

func (app *Application) resumeAfterStop() bool {
	if err := app.screen.Resume(); err != nil {
		app.logger.Warn("resume after stop failed", zap.Error(err))
		return false
	}
	// Mouse reporting is lost across a stop.
	app.screen.EnableMouse()
	app.screen.Sync()
	_ = app.screen.PostEvent(tcell.NewEventInterrupt("resume"))
	if w, h := app.screen.Size(); w > 0 && h > 0 {
		app.state.ScreenWidth = w
		app.state.ScreenHeight = h
	}
	return true
}
