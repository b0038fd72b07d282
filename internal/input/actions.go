// Package input translates key presses into paneshift actions and
// dispatches them against the application state.
package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/paneshift/internal/app"
	"github.com/Gaurav-Gosain/paneshift/internal/layout"
)

// ActionHandler is a function that handles a specific action.
type ActionHandler func(msg tea.KeyPressMsg, a *app.App) (*app.App, tea.Cmd)

// ActionDispatcher maps action names to handler functions.
type ActionDispatcher struct {
	handlers map[string]ActionHandler
}

// NewActionDispatcher creates a dispatcher with all handlers registered.
func NewActionDispatcher() *ActionDispatcher {
	d := &ActionDispatcher{
		handlers: make(map[string]ActionHandler),
	}
	d.registerHandlers()
	return d
}

func (d *ActionDispatcher) registerHandlers() {
	// Shift actions move the active tab between panes.
	d.Register("shift_left", makeShiftHandler(layout.Left))
	d.Register("shift_right", makeShiftHandler(layout.Right))
	d.Register("shift_up", makeShiftHandler(layout.Up))
	d.Register("shift_down", makeShiftHandler(layout.Down))

	// Focus actions move input focus between panes.
	d.Register("focus_left", makeFocusHandler(layout.Left))
	d.Register("focus_right", makeFocusHandler(layout.Right))
	d.Register("focus_up", makeFocusHandler(layout.Up))
	d.Register("focus_down", makeFocusHandler(layout.Down))

	// Stretch actions resize the enclosing split.
	d.Register("stretch_left", makeStretchHandler(layout.Left))
	d.Register("stretch_right", makeStretchHandler(layout.Right))
	d.Register("stretch_up", makeStretchHandler(layout.Up))
	d.Register("stretch_down", makeStretchHandler(layout.Down))

	// Tab management
	d.Register("new_tab", handleNewTab)
	d.Register("close_tab", handleCloseTab)
	d.Register("next_tab", handleNextTab)
	d.Register("prev_tab", handlePrevTab)

	// System
	d.Register("toggle_help", handleToggleHelp)
	d.Register("quit", handleQuit)
}

// Register adds an action handler.
func (d *ActionDispatcher) Register(action string, handler ActionHandler) {
	d.handlers[action] = handler
}

// Dispatch executes the handler for a given action.
func (d *ActionDispatcher) Dispatch(action string, msg tea.KeyPressMsg, a *app.App) (*app.App, tea.Cmd) {
	if handler, ok := d.handlers[action]; ok {
		return handler(msg, a)
	}
	return a, nil
}

// HasAction checks if an action is registered.
func (d *ActionDispatcher) HasAction(action string) bool {
	_, ok := d.handlers[action]
	return ok
}

// Global action dispatcher instance
var globalDispatcher = NewActionDispatcher()

// GetDispatcher returns the global action dispatcher.
func GetDispatcher() *ActionDispatcher {
	return globalDispatcher
}

// HandleInput is the entry point registered with the app via
// app.SetInputHandler.
func HandleInput(msg tea.Msg, a *app.App) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return a, nil
	}

	key := keyMsg.String()
	a.StatusText = ""

	// Any key closes the help overlay except the ones that toggle it.
	if a.ShowHelp && a.KeybindRegistry.GetAction(key) != "toggle_help" && a.KeybindRegistry.GetAction(key) != "quit" {
		a.ShowHelp = false
		return a, nil
	}

	action := a.KeybindRegistry.GetAction(key)
	if action == "" {
		return a, nil
	}
	return globalDispatcher.Dispatch(action, keyMsg, a)
}

// ============================================================================
// Shift / Focus / Stretch Action Handlers
// ============================================================================

func makeShiftHandler(direction layout.Direction) ActionHandler {
	return func(msg tea.KeyPressMsg, a *app.App) (*app.App, tea.Cmd) {
		a.Shifter.MoveTab(direction)
		return a, nil
	}
}

func makeFocusHandler(direction layout.Direction) ActionHandler {
	return func(msg tea.KeyPressMsg, a *app.App) (*app.App, tea.Cmd) {
		a.Shifter.MoveFocus(direction)
		return a, nil
	}
}

func makeStretchHandler(direction layout.Direction) ActionHandler {
	return func(msg tea.KeyPressMsg, a *app.App) (*app.App, tea.Cmd) {
		a.Shifter.StretchSplitter(direction)
		return a, nil
	}
}

// ============================================================================
// Tab Action Handlers
// ============================================================================

func handleNewTab(msg tea.KeyPressMsg, a *app.App) (*app.App, tea.Cmd) {
	a.Editor.OpenFile(a.NextScratchName())
	return a, nil
}

func handleCloseTab(msg tea.KeyPressMsg, a *app.App) (*app.App, tea.Cmd) {
	a.Editor.CloseActiveTab()
	return a, nil
}

func handleNextTab(msg tea.KeyPressMsg, a *app.App) (*app.App, tea.Cmd) {
	a.Editor.NextTab()
	return a, nil
}

func handlePrevTab(msg tea.KeyPressMsg, a *app.App) (*app.App, tea.Cmd) {
	a.Editor.PrevTab()
	return a, nil
}

// ============================================================================
// System Action Handlers
// ============================================================================

func handleToggleHelp(msg tea.KeyPressMsg, a *app.App) (*app.App, tea.Cmd) {
	a.ShowHelp = !a.ShowHelp
	return a, nil
}

func handleQuit(msg tea.KeyPressMsg, a *app.App) (*app.App, tea.Cmd) {
	if a.ShowHelp {
		a.ShowHelp = false
		return a, nil
	}
	return a, tea.Quit
}
