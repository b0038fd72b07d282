package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/paneshift/internal/config"
)

// ConfigReloadedMsg carries a freshly loaded configuration from the file
// watcher into the update loop.
type ConfigReloadedMsg struct {
	Config *config.UserConfig
}

// InputHandler is a function type that handles input messages.
// This allows the Update method to delegate to the input package without
// creating a circular dependency.
type InputHandler func(msg tea.Msg, a *App) (tea.Model, tea.Cmd)

// inputHandler is the registered input handler function, set by the main
// package before the update loop runs.
var inputHandler InputHandler

// SetInputHandler registers the input handler function.
func SetInputHandler(handler InputHandler) {
	inputHandler = handler
}

// Init returns the initial commands to run.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update handles all incoming messages and updates the application state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if inputHandler != nil {
			return inputHandler(msg, a)
		}
		return a, nil

	case tea.WindowSizeMsg:
		a.Width = msg.Width
		a.Height = msg.Height
		return a, nil

	case ConfigReloadedMsg:
		a.ReloadConfig(msg.Config)
		return a, nil
	}

	return a, nil
}
