// Package theme provides color themes and styling for the paneshift TUI.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
	tint "github.com/lrstanley/bubbletint/v2"
)

var enabled bool

// Initialize sets up the tint registry with the specified theme name.
// Call this once at application startup. With an empty name theming is
// disabled and standard terminal colors are used.
func Initialize(themeName string) error {
	if themeName == "" {
		enabled = false
		return nil
	}

	enabled = true
	tint.NewDefaultRegistry()
	if ok := tint.SetTintID(themeName); !ok {
		tint.SetTintID("default")
	}
	return nil
}

// IsEnabled returns true if theming is enabled.
func IsEnabled() bool {
	return enabled
}

// Current returns the currently active theme, or nil when theming is
// disabled.
func Current() *tint.Tint {
	if !enabled {
		return nil
	}
	return tint.Current()
}

// BorderFocused is the border color of the focused pane.
func BorderFocused() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#00D7AF")
	}
	return t.Green
}

// BorderUnfocused is the border color of unfocused panes.
func BorderUnfocused() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#5F5F5F")
	}
	return t.BrightBlack
}

// TabActiveBg is the background of the active tab label.
func TabActiveBg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#303030")
	}
	return t.Black
}

// StatusFg is the status bar foreground.
func StatusFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#BCBCBC")
	}
	return t.Fg
}

// StatusBg is the status bar background.
func StatusBg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#1C1C1C")
	}
	return t.Bg
}
