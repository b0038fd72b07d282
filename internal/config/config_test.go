package config_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"

	"github.com/Gaurav-Gosain/paneshift/internal/config"
)

// =============================================================================
// Default Configuration Tests
// =============================================================================

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}

	if cfg.Appearance.BorderStyle == "" {
		t.Error("Expected default border style to be set")
	}

	if !cfg.Appearance.ShowStatusBar {
		t.Error("Expected status bar enabled by default")
	}
}

func TestDefaultKeybindings(t *testing.T) {
	cfg := config.DefaultConfig()

	requiredActions := map[string]map[string][]string{
		"shift":   cfg.Keybindings.Shift,
		"focus":   cfg.Keybindings.Focus,
		"stretch": cfg.Keybindings.Stretch,
	}

	for section, actions := range requiredActions {
		if actions == nil {
			t.Fatalf("Section %s is nil", section)
		}
		for _, suffix := range []string{"left", "right", "up", "down"} {
			action := section + "_" + suffix
			keys, ok := actions[action]
			if !ok {
				t.Errorf("Expected %s keybinding to exist", action)
				continue
			}
			if len(keys) == 0 {
				t.Errorf("Expected %s to have at least one key bound", action)
			}
		}
	}

	for _, action := range []string{"new_tab", "close_tab", "next_tab", "prev_tab"} {
		if len(cfg.Keybindings.Tabs[action]) == 0 {
			t.Errorf("Expected %s to have at least one key bound", action)
		}
	}

	for _, action := range []string{"toggle_help", "quit"} {
		if len(cfg.Keybindings.System[action]) == 0 {
			t.Errorf("Expected %s to have at least one key bound", action)
		}
	}
}

func TestActionDescriptions_CoverDefaults(t *testing.T) {
	cfg := config.DefaultConfig()

	for _, section := range cfg.Keybindings.Sections() {
		for action := range section.Actions {
			if config.ActionDescriptions[action] == "" {
				t.Errorf("Expected a description for %s", action)
			}
		}
	}
}

// =============================================================================
// KeybindRegistry Tests
// =============================================================================

func TestKeybindRegistry_GetKeys(t *testing.T) {
	registry := config.NewKeybindRegistry(config.DefaultConfig())

	keys := registry.GetKeys("shift_right")
	if len(keys) == 0 {
		t.Error("Expected shift_right to have keys")
	}
}

func TestKeybindRegistry_GetAction(t *testing.T) {
	registry := config.NewKeybindRegistry(config.DefaultConfig())

	keys := registry.GetKeys("shift_right")
	if len(keys) == 0 {
		t.Skip("No keys bound to shift_right")
	}

	action := registry.GetAction(keys[0])
	if action != "shift_right" {
		t.Errorf("Expected action 'shift_right', got %q", action)
	}
}

func TestKeybindRegistry_CaseSensitiveSingleKeys(t *testing.T) {
	registry := config.NewKeybindRegistry(config.DefaultConfig())

	// Upper and lower case letters are distinct bindings: H shifts the tab
	// left while h only moves focus.
	if got := registry.GetAction("H"); got != "shift_left" {
		t.Errorf("Expected shift_left for H, got %q", got)
	}
	if got := registry.GetAction("h"); got != "focus_left" {
		t.Errorf("Expected focus_left for h, got %q", got)
	}
}

func TestKeybindRegistry_ModifierNormalization(t *testing.T) {
	registry := config.NewKeybindRegistry(config.DefaultConfig())

	if got := registry.GetAction("Ctrl+L"); got != "stretch_right" {
		t.Errorf("Expected stretch_right for Ctrl+L, got %q", got)
	}
}

func TestKeybindRegistry_UnknownKey(t *testing.T) {
	registry := config.NewKeybindRegistry(config.DefaultConfig())

	if got := registry.GetAction("f19"); got != "" {
		t.Errorf("Expected empty action for unbound key, got %q", got)
	}
}

func TestKeybindRegistry_GetKeysForDisplay(t *testing.T) {
	registry := config.NewKeybindRegistry(config.DefaultConfig())

	if registry.GetKeysForDisplay("quit") == "" {
		t.Error("Expected display string for quit")
	}
}

// =============================================================================
// Section Ordering Tests
// =============================================================================

func TestSections_Order(t *testing.T) {
	cfg := config.DefaultConfig()

	sections := cfg.Keybindings.Sections()
	want := []string{"Shift", "Focus", "Stretch", "Tabs", "System"}
	if len(sections) != len(want) {
		t.Fatalf("Expected %d sections, got %d", len(want), len(sections))
	}
	for i, title := range want {
		if sections[i].Title != title {
			t.Errorf("Section %d: expected %s, got %s", i, title, sections[i].Title)
		}
	}
}

// =============================================================================
// Watcher Tests
// =============================================================================

func TestWatch_StopsOnContextCancel(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := config.Watch(ctx, log.New(io.Discard), func(*config.UserConfig) {
		t.Error("Expected no reload callback")
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func BenchmarkKeybindRegistry_GetAction(b *testing.B) {
	registry := config.NewKeybindRegistry(config.DefaultConfig())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		registry.GetAction("shift+left")
	}
}
