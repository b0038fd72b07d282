package input_test

import (
	"io"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/log"

	"github.com/Gaurav-Gosain/paneshift/internal/app"
	"github.com/Gaurav-Gosain/paneshift/internal/config"
	"github.com/Gaurav-Gosain/paneshift/internal/editor"
	"github.com/Gaurav-Gosain/paneshift/internal/input"
)

func newApp(files ...string) *app.App {
	logger := log.New(io.Discard)
	cfg := config.DefaultConfig()
	return app.New(editor.New(logger, files...), cfg, config.NewKeybindRegistry(cfg), logger)
}

// =============================================================================
// Dispatcher Registration Tests
// =============================================================================

func TestDispatcher_AllConfiguredActionsRegistered(t *testing.T) {
	dispatcher := input.GetDispatcher()
	cfg := config.DefaultConfig()

	for _, section := range cfg.Keybindings.Sections() {
		for action := range section.Actions {
			if !dispatcher.HasAction(action) {
				t.Errorf("No handler registered for configured action %s", action)
			}
		}
	}
}

func TestDispatcher_UnknownActionIgnored(t *testing.T) {
	a := newApp("a.go")

	got, cmd := input.GetDispatcher().Dispatch("no_such_action", tea.KeyPressMsg{}, a)
	if got != a || cmd != nil {
		t.Error("Expected unknown actions to change nothing")
	}
}

// =============================================================================
// Action Handler Tests
// =============================================================================

func TestDispatch_ShiftRight(t *testing.T) {
	a := newApp("a.go", "b.go")

	input.GetDispatcher().Dispatch("shift_right", tea.KeyPressMsg{}, a)

	panes := a.Editor.Panes()
	if len(panes) != 2 {
		t.Fatalf("Expected the shift to split into 2 panes, got %d", len(panes))
	}
	if a.Editor.FocusedPane() != panes[1] {
		t.Error("Expected focus to follow the shifted tab")
	}
}

func TestDispatch_FocusMoves(t *testing.T) {
	a := newApp("a.go", "b.go")
	input.GetDispatcher().Dispatch("shift_right", tea.KeyPressMsg{}, a)

	input.GetDispatcher().Dispatch("focus_left", tea.KeyPressMsg{}, a)
	if a.Editor.FocusedPane() != a.Editor.Panes()[0] {
		t.Error("Expected focus on the left pane")
	}
}

func TestDispatch_StretchRight(t *testing.T) {
	a := newApp("a.go", "b.go")
	input.GetDispatcher().Dispatch("shift_right", tea.KeyPressMsg{}, a)

	input.GetDispatcher().Dispatch("stretch_right", tea.KeyPressMsg{}, a)

	want := editor.DefaultRatio + editor.RatioStep
	if got := a.Editor.Root().Ratio(); got != want {
		t.Errorf("Expected ratio %v, got %v", want, got)
	}
}

func TestDispatch_TabActions(t *testing.T) {
	a := newApp("a.go")

	input.GetDispatcher().Dispatch("new_tab", tea.KeyPressMsg{}, a)
	pane := a.Editor.FocusedPane()
	if pane.TabCount() != 2 {
		t.Fatalf("Expected 2 tabs after new_tab, got %d", pane.TabCount())
	}
	if pane.ActiveTab() == "a.go" {
		t.Error("Expected the scratch tab to be active")
	}

	input.GetDispatcher().Dispatch("prev_tab", tea.KeyPressMsg{}, a)
	if pane.ActiveTab() != "a.go" {
		t.Errorf("Expected a.go active, got %q", pane.ActiveTab())
	}

	input.GetDispatcher().Dispatch("next_tab", tea.KeyPressMsg{}, a)
	input.GetDispatcher().Dispatch("close_tab", tea.KeyPressMsg{}, a)
	if pane.TabCount() != 1 || pane.ActiveTab() != "a.go" {
		t.Errorf("Expected only a.go left, got %v", pane.Tabs())
	}
}

func TestDispatch_NewTabOnEmptyEditor(t *testing.T) {
	a := newApp()

	input.GetDispatcher().Dispatch("new_tab", tea.KeyPressMsg{}, a)

	if a.Editor.FocusedPane() == nil {
		t.Fatal("Expected new_tab to create the first pane")
	}
}

func TestDispatch_ToggleHelp(t *testing.T) {
	a := newApp("a.go")

	input.GetDispatcher().Dispatch("toggle_help", tea.KeyPressMsg{}, a)
	if !a.ShowHelp {
		t.Error("Expected help shown")
	}
	input.GetDispatcher().Dispatch("toggle_help", tea.KeyPressMsg{}, a)
	if a.ShowHelp {
		t.Error("Expected help hidden")
	}
}

func TestDispatch_Quit(t *testing.T) {
	a := newApp("a.go")

	_, cmd := input.GetDispatcher().Dispatch("quit", tea.KeyPressMsg{}, a)
	if cmd == nil {
		t.Error("Expected quit to return a command")
	}
}

func TestDispatch_QuitClosesHelpFirst(t *testing.T) {
	a := newApp("a.go")
	a.ShowHelp = true

	_, cmd := input.GetDispatcher().Dispatch("quit", tea.KeyPressMsg{}, a)
	if cmd != nil {
		t.Error("Expected quit with open help to only close the overlay")
	}
	if a.ShowHelp {
		t.Error("Expected help closed")
	}
}
