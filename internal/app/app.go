// Package app provides the paneshift TUI: a bubbletea model that renders
// the editor's pane tree and routes key input to shift, focus, and stretch
// operations.
package app

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/Gaurav-Gosain/paneshift/internal/config"
	"github.com/Gaurav-Gosain/paneshift/internal/editor"
	"github.com/Gaurav-Gosain/paneshift/internal/shifter"
)

// App is the main application state.
type App struct {
	Editor          *editor.Editor
	Shifter         *shifter.Shifter
	Config          *config.UserConfig
	KeybindRegistry *config.KeybindRegistry
	Logger          *log.Logger

	Width  int
	Height int

	ShowHelp   bool
	StatusText string // transient hint shown in the status bar

	scratchCount int // numbering for new scratch tabs
}

// New creates the application around an editor instance.
func New(ed *editor.Editor, cfg *config.UserConfig, registry *config.KeybindRegistry, logger *log.Logger) *App {
	return &App{
		Editor:          ed,
		Shifter:         shifter.New(ed, logger),
		Config:          cfg,
		KeybindRegistry: registry,
		Logger:          logger,
	}
}

// ReloadConfig swaps in a freshly loaded configuration.
func (a *App) ReloadConfig(cfg *config.UserConfig) {
	a.Config = cfg
	a.KeybindRegistry = config.NewKeybindRegistry(cfg)
	a.StatusText = "configuration reloaded"
}

// NextScratchName returns a fresh scratch buffer name.
func (a *App) NextScratchName() string {
	a.scratchCount++
	return fmt.Sprintf("untitled-%d", a.scratchCount)
}
