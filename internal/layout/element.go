// Package layout models the arrangement of editor panes as a binary split
// tree and implements the structural algorithms behind tab shifting: position
// assignment, lookups, and the insert/remove tree rewrites.
//
// A tree is a snapshot. It is rebuilt from the host on every operation and
// discarded afterwards, because the host's own window identities do not
// survive structural changes; only geometry is a reliable correlation key.
package layout

import "fmt"

// Orientation describes how a split divides its rectangle.
type Orientation int

const (
	// Vertical places the two children side by side along the X axis.
	Vertical Orientation = iota
	// Horizontal stacks the two children along the Y axis.
	Horizontal
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Size is the extent of a node in layout units. Leaves measure one unit on
// each axis rather than carrying pane pixel sizes: predicted-position
// correlation only works with sizes that survive the host's own rebalancing
// after a split or unsplit.
type Size struct {
	Width  int
	Height int
}

// Element is a node of the window layout tree. The three variants are
// *Window (a pane), *Split (an inner node with exactly two children), and
// None (the empty layout). Recursive functions type-switch over these and
// treat any other dynamic type as a fatal invariant violation.
type Element interface {
	Size() Size
	Position() Position
}

// None is the empty-layout sentinel returned by hosts with no panes open.
var None Element = none{}

type none struct{}

func (none) Size() Size         { return Size{} }
func (none) Position() Position { return Position{} }
func (none) String() string     { return "none" }

// Window is a leaf representing one editor pane. Handle is the host's pane
// identifier and is only a lookup key: the host may reissue a different
// handle for logically the same pane after a structural change, so handles
// are never compared across snapshots.
type Window struct {
	Handle    string
	HasOneTab bool
	IsCurrent bool

	pos Position
}

// Size of a window leaf is always one layout unit per axis.
func (w *Window) Size() Size { return Size{Width: 1, Height: 1} }

// Position returns the placement computed by the last CalculatePositions
// pass over the tree containing this window.
func (w *Window) Position() Position { return w.pos }

func (w *Window) String() string {
	return fmt.Sprintf("window(%s hasOneTab=%v current=%v pos=%s)", w.Handle, w.HasOneTab, w.IsCurrent, w.pos)
}

// Split is an inner node dividing its rectangle between exactly two
// children. First is the leading side: left for vertical splits, top for
// horizontal ones.
type Split struct {
	First       Element
	Second      Element
	Orientation Orientation

	pos Position
}

// NewSplit creates a split over the two children.
func NewSplit(first, second Element, orientation Orientation) *Split {
	return &Split{First: first, Second: second, Orientation: orientation}
}

// Size is the union of the children's extents.
func (s *Split) Size() Size {
	first, second := s.First.Size(), s.Second.Size()
	if s.Orientation == Vertical {
		return Size{
			Width:  first.Width + second.Width,
			Height: max(first.Height, second.Height),
		}
	}
	return Size{
		Width:  max(first.Width, second.Width),
		Height: first.Height + second.Height,
	}
}

// Position returns the placement computed by the last CalculatePositions
// pass over the tree containing this split.
func (s *Split) Position() Position { return s.pos }

func (s *Split) String() string {
	return fmt.Sprintf("split(%s %s %s)", s.Orientation, s.First, s.Second)
}
