package editor

// Tab management entry points for the UI layer. These act on the focused
// pane directly and are not part of the shifter's host contract.

// OpenFile opens a file as a tab in the focused pane, creating the first
// pane when the editor is empty.
func (e *Editor) OpenFile(name string) {
	if name == "" {
		return
	}
	if e.root == nil {
		pane := newPane(name)
		e.root = &Node{pane: pane}
		e.focused = pane
		return
	}
	if e.focused == nil {
		e.focused = e.root.firstLeaf().pane
	}
	e.focused.addTab(name)
}

// CloseActiveTab closes the focused pane's active tab. Closing the last tab
// collapses the pane into its sibling.
func (e *Editor) CloseActiveTab() {
	if e.focused == nil || e.focused.ActiveTab() == "" {
		return
	}
	if e.focused.removeTab(e.focused.ActiveTab()) {
		e.collapse(e.nodeOf(e.focused))
	}
}

// NextTab activates the next tab of the focused pane.
func (e *Editor) NextTab() {
	if e.focused != nil {
		e.focused.nextTab()
	}
}

// PrevTab activates the previous tab of the focused pane.
func (e *Editor) PrevTab() {
	if e.focused != nil {
		e.focused.prevTab()
	}
}
