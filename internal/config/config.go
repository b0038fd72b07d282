// Package config provides user-configurable settings for paneshift,
// stored as a TOML file in the XDG config directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// UserConfig is the on-disk configuration.
type UserConfig struct {
	Keybindings KeybindingsConfig `toml:"keybindings"`
	Appearance  AppearanceConfig  `toml:"appearance"`
}

// KeybindingsConfig groups keybindings by concern. Each section maps an
// action name to the keys bound to it; multiple keys may trigger the same
// action.
type KeybindingsConfig struct {
	Shift   map[string][]string `toml:"shift"`
	Focus   map[string][]string `toml:"focus"`
	Stretch map[string][]string `toml:"stretch"`
	Tabs    map[string][]string `toml:"tabs"`
	System  map[string][]string `toml:"system"`
}

// AppearanceConfig controls how panes are drawn.
type AppearanceConfig struct {
	Theme         string `toml:"theme"`
	BorderStyle   string `toml:"border_style"`
	ShowStatusBar bool   `toml:"show_status_bar"`
}

// ActionDescriptions maps action names to human-readable descriptions for
// help menus and CLI tables.
var ActionDescriptions = map[string]string{
	"shift_left":    "Move active tab to the pane on the left",
	"shift_right":   "Move active tab to the pane on the right",
	"shift_up":      "Move active tab to the pane above",
	"shift_down":    "Move active tab to the pane below",
	"focus_left":    "Focus the pane on the left",
	"focus_right":   "Focus the pane on the right",
	"focus_up":      "Focus the pane above",
	"focus_down":    "Focus the pane below",
	"stretch_left":  "Shrink the enclosing vertical split",
	"stretch_right": "Grow the enclosing vertical split",
	"stretch_up":    "Shrink the enclosing horizontal split",
	"stretch_down":  "Grow the enclosing horizontal split",
	"new_tab":       "Open a new scratch tab",
	"close_tab":     "Close the active tab",
	"next_tab":      "Activate the next tab",
	"prev_tab":      "Activate the previous tab",
	"toggle_help":   "Toggle the help overlay",
	"quit":          "Quit paneshift",
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *UserConfig {
	return &UserConfig{
		Keybindings: KeybindingsConfig{
			Shift: map[string][]string{
				"shift_left":  {"H", "shift+left"},
				"shift_right": {"L", "shift+right"},
				"shift_up":    {"K", "shift+up"},
				"shift_down":  {"J", "shift+down"},
			},
			Focus: map[string][]string{
				"focus_left":  {"h", "left"},
				"focus_right": {"l", "right"},
				"focus_up":    {"k", "up"},
				"focus_down":  {"j", "down"},
			},
			Stretch: map[string][]string{
				"stretch_left":  {"ctrl+h"},
				"stretch_right": {"ctrl+l"},
				"stretch_up":    {"ctrl+k"},
				"stretch_down":  {"ctrl+j"},
			},
			Tabs: map[string][]string{
				"new_tab":   {"t"},
				"close_tab": {"x"},
				"next_tab":  {"tab"},
				"prev_tab":  {"shift+tab"},
			},
			System: map[string][]string{
				"toggle_help": {"?"},
				"quit":        {"q", "ctrl+c"},
			},
		},
		Appearance: AppearanceConfig{
			Theme:         "",
			BorderStyle:   "rounded",
			ShowStatusBar: true,
		},
	}
}

// GetConfigPath returns the path of the configuration file, creating parent
// directories as needed.
func GetConfigPath() (string, error) {
	path, err := xdg.ConfigFile("paneshift/config.toml")
	if err != nil {
		return "", fmt.Errorf("could not resolve config path: %w", err)
	}
	return path, nil
}

// LoadUserConfig reads the user configuration, writing the default config on
// first run. Sections missing from the file fall back to defaults so a
// partial config stays usable.
func LoadUserConfig() (*UserConfig, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		if writeErr := WriteDefaultConfig(path); writeErr != nil {
			return DefaultConfig(), writeErr
		}
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	cfg := &UserConfig{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("could not parse config: %w", err)
	}
	mergeDefaults(cfg)
	return cfg, nil
}

// WriteDefaultConfig writes the default configuration with a documentation
// header to the given path.
func WriteDefaultConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("could not create config directory: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# Paneshift Configuration File\n")
	sb.WriteString("# Keybindings map an action to one or more keys.\n")
	sb.WriteString("# Multiple keys can be bound to the same action.\n")
	sb.WriteString("#\n")
	sb.WriteString("# Configuration location: " + path + "\n\n")

	data, err := toml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	sb.Write(data)

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func mergeDefaults(cfg *UserConfig) {
	def := DefaultConfig()
	if cfg.Keybindings.Shift == nil {
		cfg.Keybindings.Shift = def.Keybindings.Shift
	}
	if cfg.Keybindings.Focus == nil {
		cfg.Keybindings.Focus = def.Keybindings.Focus
	}
	if cfg.Keybindings.Stretch == nil {
		cfg.Keybindings.Stretch = def.Keybindings.Stretch
	}
	if cfg.Keybindings.Tabs == nil {
		cfg.Keybindings.Tabs = def.Keybindings.Tabs
	}
	if cfg.Keybindings.System == nil {
		cfg.Keybindings.System = def.Keybindings.System
	}
	if cfg.Appearance.BorderStyle == "" {
		cfg.Appearance.BorderStyle = def.Appearance.BorderStyle
	}
}

// Sections returns the keybinding sections in display order.
func (k *KeybindingsConfig) Sections() []struct {
	Title   string
	Actions map[string][]string
} {
	return []struct {
		Title   string
		Actions map[string][]string
	}{
		{"Shift", k.Shift},
		{"Focus", k.Focus},
		{"Stretch", k.Stretch},
		{"Tabs", k.Tabs},
		{"System", k.System},
	}
}
