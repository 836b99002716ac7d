package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/cookiebox/internal/catalog"
	statepkg "github.com/kk-code-lab/cookiebox/internal/state"
	inputui "github.com/kk-code-lab/cookiebox/internal/ui/input"
	renderui "github.com/kk-code-lab/cookiebox/internal/ui/render"
	"go.uber.org/zap"
)

// Options configures a new Application.
type Options struct {
	Catalog *catalog.Catalog
	Theme   statepkg.Theme
	Search  string
	Logger  *zap.Logger
}

// Application represents the running app.
type Application struct {
	screen         tcell.Screen
	state          *statepkg.AppState
	reducer        *statepkg.StateReducer
	renderer       *renderui.Renderer
	input          *inputui.InputHandler
	actionCh       chan statepkg.Action
	shouldQuit     bool
	buttonHeld     bool
	clipboardCmd   []string
	clipboardAvail bool
	logger         *zap.Logger
}

// NewApplication opens the terminal screen and prepares a browsing session.
func NewApplication(opts Options) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	// Parse mouse sequences so clicks don't leak as key events.
	screen.EnableMouse()

	clipboardCmd, clipboardAvail := detectClipboard()
	return newApplication(screen, opts, clipboardCmd, clipboardAvail), nil
}

func newApplication(screen tcell.Screen, opts Options, clipboardCmd []string, clipboardAvail bool) *Application {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	state := newInitialState(opts, clipboardAvail)
	w, h := screen.Size()
	state.ScreenWidth = w
	state.ScreenHeight = h

	actionCh := make(chan statepkg.Action, 16)
	inputHandler := inputui.NewInputHandler(actionCh)
	inputHandler.SetState(state)

	return &Application{
		screen:         screen,
		state:          state,
		reducer:        statepkg.NewStateReducer(),
		renderer:       renderui.NewRenderer(screen),
		input:          inputHandler,
		actionCh:       actionCh,
		clipboardCmd:   clipboardCmd,
		clipboardAvail: clipboardAvail,
		logger:         logger,
	}
}

func newInitialState(opts Options, clipboardAvail bool) *statepkg.AppState {
	state := statepkg.NewAppState(opts.Catalog)
	state.Theme = opts.Theme
	state.SearchText = opts.Search
	state.ClipboardAvailable = clipboardAvail
	return state
}

// State exposes the session state, mainly for reporting after Run returns.
func (app *Application) State() *statepkg.AppState {
	return app.state
}

// Close cleans up resources.
func (app *Application) Close() error {
	app.screen.Fini()
	return nil
}
