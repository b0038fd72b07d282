package app

import (
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Gaurav-Gosain/paneshift/internal/config"
	"github.com/Gaurav-Gosain/paneshift/internal/editor"
	"github.com/Gaurav-Gosain/paneshift/internal/layout"
	"github.com/Gaurav-Gosain/paneshift/internal/theme"
)

// minPaneCells is the smallest width or height a rendered pane may shrink
// to; splits are clamped so both sides stay visible.
const minPaneCells = 6

// getBorder returns the configured border style.
func (a *App) getBorder() lipgloss.Border {
	switch a.Config.Appearance.BorderStyle {
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}

// View returns the rendered view.
func (a *App) View() tea.View {
	var view tea.View
	view.SetContent(a.render())
	view.AltScreen = true
	return view
}

func (a *App) render() string {
	if a.Width <= 0 || a.Height <= 0 {
		return ""
	}

	contentHeight := a.Height
	statusBar := ""
	if a.Config.Appearance.ShowStatusBar && a.Height > 3 {
		contentHeight--
		statusBar = a.renderStatusBar()
	}

	var content string
	switch {
	case a.ShowHelp:
		content = lipgloss.Place(a.Width, contentHeight, lipgloss.Center, lipgloss.Center, a.renderHelp())
	case a.Editor.Root() == nil:
		empty := lipgloss.NewStyle().
			Foreground(theme.BorderUnfocused()).
			Render("no panes open, press t to open a scratch tab")
		content = lipgloss.Place(a.Width, contentHeight, lipgloss.Center, lipgloss.Center, empty)
	default:
		content = a.renderNode(a.Editor.Root(), a.Width, contentHeight)
	}

	if statusBar == "" {
		return content
	}
	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}

// renderNode recursively renders the pane tree into a w×h cell block,
// dividing splits by their stored ratio. The second child always takes the
// remainder so the block tiles exactly.
func (a *App) renderNode(n *editor.Node, w, h int) string {
	if n.IsLeaf() {
		return a.renderPane(n.Pane(), w, h)
	}

	if n.Orientation() == layout.Vertical {
		firstW := clamp(int(float64(w)*n.Ratio()), minPaneCells, w-minPaneCells)
		return lipgloss.JoinHorizontal(lipgloss.Top,
			a.renderNode(n.First(), firstW, h),
			a.renderNode(n.Second(), w-firstW, h),
		)
	}
	firstH := clamp(int(float64(h)*n.Ratio()), minPaneCells/2, h-minPaneCells/2)
	return lipgloss.JoinVertical(lipgloss.Left,
		a.renderNode(n.First(), w, firstH),
		a.renderNode(n.Second(), w, h-firstH),
	)
}

func (a *App) renderPane(pane *editor.Pane, w, h int) string {
	focused := pane == a.Editor.FocusedPane()

	borderColor := theme.BorderUnfocused()
	if focused {
		borderColor = theme.BorderFocused()
	}

	innerW := max(w-2, 1)
	innerH := max(h-2, 1)

	tabLine := a.renderTabLine(pane, innerW)
	body := lipgloss.Place(innerW, max(innerH-1, 0), lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.BorderUnfocused()).Render(pane.ActiveTab()))

	content := tabLine
	if innerH > 1 {
		content = lipgloss.JoinVertical(lipgloss.Left, tabLine, body)
	}

	return lipgloss.NewStyle().
		Border(a.getBorder()).
		BorderForeground(borderColor).
		Width(innerW).
		Height(innerH).
		Render(content)
}

func (a *App) renderTabLine(pane *editor.Pane, width int) string {
	activeStyle := lipgloss.NewStyle().
		Background(theme.TabActiveBg()).
		Bold(true).
		Padding(0, 1)
	inactiveStyle := lipgloss.NewStyle().
		Foreground(theme.BorderUnfocused()).
		Padding(0, 1)

	var tabs []string
	for i, name := range pane.Tabs() {
		if i == pane.ActiveIndex() {
			tabs = append(tabs, activeStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveStyle.Render(name))
		}
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	return lipgloss.NewStyle().MaxWidth(width).Render(line)
}

func (a *App) renderStatusBar() string {
	style := lipgloss.NewStyle().
		Foreground(theme.StatusFg()).
		Background(theme.StatusBg()).
		Width(a.Width).
		Padding(0, 1)

	left := "paneshift"
	if pane := a.Editor.FocusedPane(); pane != nil {
		left = fmt.Sprintf("paneshift │ %s (%d/%d)", pane.ActiveTab(), pane.ActiveIndex()+1, pane.TabCount())
	}
	if a.StatusText != "" {
		left += " │ " + a.StatusText
	}

	hint := "? help · q quit"
	gap := a.Width - lipgloss.Width(left) - lipgloss.Width(hint) - 2
	if gap < 1 {
		return style.Render(left)
	}
	return style.Render(left + strings.Repeat(" ", gap) + hint)
}

func (a *App) renderHelp() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.BorderFocused())
	keyStyle := lipgloss.NewStyle().Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.StatusFg())

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Paneshift Keybindings"))
	sb.WriteString("\n\n")

	for _, section := range a.Config.Keybindings.Sections() {
		sb.WriteString(titleStyle.Render(strings.ToUpper(section.Title)))
		sb.WriteString("\n")
		actions := make([]string, 0, len(section.Actions))
		for action := range section.Actions {
			actions = append(actions, action)
		}
		sort.Strings(actions)
		for _, action := range actions {
			desc := config.ActionDescriptions[action]
			if desc == "" {
				desc = action
			}
			sb.WriteString(fmt.Sprintf("  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-18s", strings.Join(section.Actions[action], ", "))),
				descStyle.Render(desc)))
		}
		sb.WriteString("\n")
	}

	return lipgloss.NewStyle().
		Border(a.getBorder()).
		BorderForeground(theme.BorderFocused()).
		Padding(1, 2).
		Render(sb.String())
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
