package app

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/kk-code-lab/cookiebox/internal/catalog"
	"go.uber.org/zap"
)

// handleClipboard copies the selected recipe as plain text.
func (app *Application) handleClipboard() bool {
	item := app.state.SelectedItem()
	if item == nil {
		return true
	}
	if !app.clipboardAvail || len(app.clipboardCmd) == 0 {
		app.state.StatusMessage = "No clipboard command available"
		return true
	}

	cmd := commandBuilder(app.clipboardCmd[0], app.clipboardCmd[1:]...)
	cmd.Stdin = strings.NewReader(catalog.FormatRecipe(item))
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		app.state.LastError = fmt.Errorf("clipboard command %s: %w", app.clipboardCmd[0], err)
		app.logger.Warn("clipboard copy failed",
			zap.Strings("command", app.clipboardCmd),
			zap.String("stderr", strings.TrimSpace(stderr.String())),
			zap.Error(err))
		return true
	}

	app.state.LastYankTime = time.Now()
	app.state.StatusMessage = "Copied " + item.Name + " recipe"
	app.logger.Debug("recipe copied", zap.String("item", item.Name))
	return true
}
