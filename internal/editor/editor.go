// Package editor implements the reference host for the shifter: an
// in-memory editor whose panes hold file tabs and are arranged in a
// ratio-proportioned binary split tree.
//
// The editor deliberately reproduces the awkward property real hosts have:
// pane handles are reissued when a pane collapses into its sibling, so a
// handle captured before such a mutation may not resolve afterwards. Callers
// are expected to re-snapshot and correlate panes by geometry.
package editor

import (
	"github.com/charmbracelet/log"

	"github.com/Gaurav-Gosain/paneshift/internal/layout"
)

const (
	// DefaultRatio is the share of the axis a split gives its first child.
	DefaultRatio = 0.5
	// RatioStep is how much one stretch adjusts a split's proportion.
	RatioStep = 0.05
	// MinRatio and MaxRatio clamp stretching so no pane disappears.
	MinRatio = 0.1
	MaxRatio = 0.9
)

// Node is one node of the editor's pane tree: either a leaf holding a pane
// or a split holding two children and the proportion between them.
type Node struct {
	pane        *Pane
	first       *Node
	second      *Node
	orientation layout.Orientation
	ratio       float64
	parent      *Node
}

// IsLeaf reports whether the node holds a pane.
func (n *Node) IsLeaf() bool { return n.pane != nil }

// Pane returns the leaf's pane, or nil for a split.
func (n *Node) Pane() *Pane { return n.pane }

// First returns the leading child of a split.
func (n *Node) First() *Node { return n.first }

// Second returns the trailing child of a split.
func (n *Node) Second() *Node { return n.second }

// Orientation returns the split's orientation.
func (n *Node) Orientation() layout.Orientation { return n.orientation }

// Ratio returns the share of the axis given to the first child.
func (n *Node) Ratio() float64 { return n.ratio }

func (n *Node) firstLeaf() *Node {
	for !n.IsLeaf() {
		n = n.first
	}
	return n
}

// Editor owns the live pane tree and implements the shifter's Host
// interface. All operations run on the UI thread; nothing is concurrent.
type Editor struct {
	root    *Node
	focused *Pane
	logger  *log.Logger

	// splits correlates the last snapshot's split nodes back to the live
	// tree so proportion changes land on the right splitter.
	splits map[*layout.Split]*Node
}

// New creates an editor with a single pane holding the given files, or an
// empty editor when no files are given.
func New(logger *log.Logger, files ...string) *Editor {
	e := &Editor{logger: logger}
	if len(files) > 0 {
		pane := newPane(files...)
		e.root = &Node{pane: pane}
		e.focused = pane
	}
	return e
}

// Root returns the root of the pane tree, or nil when no panes are open.
func (e *Editor) Root() *Node { return e.root }

// FocusedPane returns the pane holding input focus, or nil.
func (e *Editor) FocusedPane() *Pane { return e.focused }

// Panes returns all panes in layout order.
func (e *Editor) Panes() []*Pane {
	var panes []*Pane
	walk(e.root, func(n *Node) {
		if n.IsLeaf() {
			panes = append(panes, n.pane)
		}
	})
	return panes
}

func walk(n *Node, visit func(*Node)) {
	if n == nil {
		return
	}
	visit(n)
	walk(n.first, visit)
	walk(n.second, visit)
}

func (e *Editor) nodeOf(pane *Pane) *Node {
	if pane == nil {
		return nil
	}
	var found *Node
	walk(e.root, func(n *Node) {
		if n.pane == pane {
			found = n
		}
	})
	return found
}

func (e *Editor) paneByHandle(handle string) *Pane {
	var found *Pane
	walk(e.root, func(n *Node) {
		if n.IsLeaf() && n.pane.handle == handle {
			found = n.pane
		}
	})
	return found
}

// currentFile is the active tab of the focused pane, the file "open/close
// current file" operations act on.
func (e *Editor) currentFile() string {
	if e.focused == nil {
		return ""
	}
	return e.focused.ActiveTab()
}

// SnapshotLayout builds a fresh layout tree from the live pane tree. Every
// call produces new layout nodes; only handles tie leaves back to panes.
func (e *Editor) SnapshotLayout() layout.Element {
	e.splits = make(map[*layout.Split]*Node)
	if e.root == nil {
		return layout.None
	}
	return e.snapshot(e.root)
}

func (e *Editor) snapshot(n *Node) layout.Element {
	if n.IsLeaf() {
		return &layout.Window{
			Handle:    n.pane.handle,
			HasOneTab: len(n.pane.tabs) == 1,
			IsCurrent: n.pane == e.focused,
		}
	}
	split := layout.NewSplit(e.snapshot(n.first), e.snapshot(n.second), n.orientation)
	e.splits[split] = n
	return split
}

// SetFocus moves input focus to the pane behind the window's handle.
func (e *Editor) SetFocus(window *layout.Window) {
	pane := e.paneByHandle(window.Handle)
	if pane == nil {
		e.logger.Warn("set focus on unknown pane", "handle", window.Handle)
		return
	}
	e.focused = pane
}

// OpenCurrentFileIn opens the active file in the given pane and focuses it.
func (e *Editor) OpenCurrentFileIn(window *layout.Window) {
	pane := e.paneByHandle(window.Handle)
	file := e.currentFile()
	if pane == nil || file == "" {
		e.logger.Warn("open current file in unknown pane", "handle", window.Handle)
		return
	}
	pane.addTab(file)
	e.focused = pane
}

// CloseCurrentFileIn closes the active file in the given pane. A pane left
// without tabs collapses into its sibling, and every pane in the surviving
// subtree gets a fresh handle.
func (e *Editor) CloseCurrentFileIn(window *layout.Window) {
	pane := e.paneByHandle(window.Handle)
	file := e.currentFile()
	if pane == nil || file == "" {
		e.logger.Warn("close current file in unknown pane", "handle", window.Handle)
		return
	}
	if pane.removeTab(file) {
		e.collapse(e.nodeOf(pane))
	}
}

// CreateSplitter splits the focused pane along the given orientation. The
// new pane opens the active file and takes focus, like hosts that move the
// user into the pane they just created.
func (e *Editor) CreateSplitter(orientation layout.Orientation) {
	node := e.nodeOf(e.focused)
	if node == nil || e.currentFile() == "" {
		return
	}
	created := newPane(e.currentFile())

	first := &Node{pane: node.pane, parent: node}
	second := &Node{pane: created, parent: node}
	node.pane = nil
	node.first, node.second = first, second
	node.orientation = orientation
	node.ratio = DefaultRatio

	e.focused = created
}

// GrowSplitProportion widens the split's first child by one step.
func (e *Editor) GrowSplitProportion(split *layout.Split) {
	e.adjustRatio(split, RatioStep)
}

// ShrinkSplitProportion narrows the split's first child by one step.
func (e *Editor) ShrinkSplitProportion(split *layout.Split) {
	e.adjustRatio(split, -RatioStep)
}

func (e *Editor) adjustRatio(split *layout.Split, delta float64) {
	node, ok := e.splits[split]
	if !ok {
		e.logger.Warn("stretch on unknown split", "split", split)
		return
	}
	node.ratio += delta
	if node.ratio < MinRatio {
		node.ratio = MinRatio
	}
	if node.ratio > MaxRatio {
		node.ratio = MaxRatio
	}
}

// collapse removes an emptied leaf; the sibling subtree takes the parent's
// place and all of its panes are reissued handles. Focus falls back to the
// survivor's first leaf until the caller re-assigns it.
func (e *Editor) collapse(node *Node) {
	if node == nil {
		return
	}
	parent := node.parent
	if parent == nil {
		e.root = nil
		e.focused = nil
		return
	}

	survivor := parent.first
	if survivor == node {
		survivor = parent.second
	}

	parent.pane = survivor.pane
	parent.first = survivor.first
	parent.second = survivor.second
	parent.orientation = survivor.orientation
	parent.ratio = survivor.ratio
	if parent.first != nil {
		parent.first.parent = parent
	}
	if parent.second != nil {
		parent.second.parent = parent
	}

	walk(parent, func(n *Node) {
		if n.IsLeaf() {
			n.pane.reissueHandle()
		}
	})

	if e.focused == node.pane || e.nodeOf(e.focused) == nil {
		e.focused = parent.firstLeaf().pane
	}
}
