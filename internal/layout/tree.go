package layout

import "fmt"

// CalculatePositions assigns a Position to every node of the tree, rooted at
// the tree's own extent with origin (0,0). It must run once per operation
// before any geometry-dependent lookup; positions are transient and are never
// propagated incrementally.
//
// Each split divides its rectangle in proportion to the children's measured
// extents, and both children share the boundary coordinate. The rectangle a
// split receives can be wider than its own extent when a sibling row or
// column holds more panes, so the partition must come from the rectangle, not
// from the child sizes directly, or the children would overlap.
func CalculatePositions(root Element) Element {
	size := root.Size()
	return calculatePositions(root, NewPosition(0, 0, size.Width, size.Height))
}

func calculatePositions(element Element, pos Position) Element {
	switch el := element.(type) {
	case *Split:
		var firstPos, secondPos Position
		if el.Orientation == Vertical {
			firstWidth := el.First.Size().Width
			boundary := pos.FromX + pos.Width()*firstWidth/(firstWidth+el.Second.Size().Width)
			firstPos = pos.WithToX(boundary)
			secondPos = pos.WithFromX(boundary)
		} else {
			firstHeight := el.First.Size().Height
			boundary := pos.FromY + pos.Height()*firstHeight/(firstHeight+el.Second.Size().Height)
			firstPos = pos.WithToY(boundary)
			secondPos = pos.WithFromY(boundary)
		}
		calculatePositions(el.First, firstPos)
		calculatePositions(el.Second, secondPos)
		el.pos = pos
	case *Window:
		el.pos = pos
	case none:
		// The empty layout has no geometry.
	default:
		panic(fmt.Sprintf("layout: malformed tree node %T", element))
	}
	return element
}

// AllWindows returns every window leaf in depth-first order, first before
// second.
func AllWindows(root Element) []*Window {
	var windows []*Window
	collectWindows(root, &windows)
	return windows
}

func collectWindows(element Element, windows *[]*Window) {
	switch el := element.(type) {
	case *Split:
		collectWindows(el.First, windows)
		collectWindows(el.Second, windows)
	case *Window:
		*windows = append(*windows, el)
	case none:
	default:
		panic(fmt.Sprintf("layout: malformed tree node %T", element))
	}
}

// AllSplits returns every split in depth-first order.
func AllSplits(root Element) []*Split {
	var splits []*Split
	collectSplits(root, &splits)
	return splits
}

func collectSplits(element Element, splits *[]*Split) {
	switch el := element.(type) {
	case *Split:
		*splits = append(*splits, el)
		collectSplits(el.First, splits)
		collectSplits(el.Second, splits)
	case *Window:
	case none:
	default:
		panic(fmt.Sprintf("layout: malformed tree node %T", element))
	}
}

// FindCurrentWindow returns the unique focused leaf, or nil for an empty or
// unfocused tree.
func FindCurrentWindow(root Element) *Window {
	for _, w := range AllWindows(root) {
		if w.IsCurrent {
			return w
		}
	}
	return nil
}

// FindWindowAt returns the first leaf whose computed position equals pos.
// Only meaningful right after a CalculatePositions pass.
func FindWindowAt(root Element, pos Position) *Window {
	for _, w := range AllWindows(root) {
		if w.Position() == pos {
			return w
		}
	}
	return nil
}

// FindSibling locates the split containing window as an immediate child and
// returns the other child, or nil if window is not in the tree.
func FindSibling(root Element, window *Window) Element {
	switch el := root.(type) {
	case *Split:
		if el.First == Element(window) {
			return el.Second
		}
		if el.Second == Element(window) {
			return el.First
		}
		if sibling := FindSibling(el.First, window); sibling != nil {
			return sibling
		}
		return FindSibling(el.Second, window)
	case *Window, none:
		return nil
	default:
		panic(fmt.Sprintf("layout: malformed tree node %T", root))
	}
}

// FindParentSplit returns the split whose first or second child is element,
// or nil if element is the root or absent.
func FindParentSplit(root, element Element) *Split {
	for _, split := range AllSplits(root) {
		if split.First == element || split.Second == element {
			return split
		}
	}
	return nil
}

// Remove deletes window from the tree. A split with a removed child
// collapses into the surviving child; removing the last window yields the
// empty layout. Surviving leaves are shared with the input tree, so a
// position pass over the result also updates leaves still reachable from the
// original snapshot.
func Remove(root Element, window *Window) Element {
	result := remove(root, window)
	if result == nil {
		return None
	}
	return result
}

func remove(element Element, window *Window) Element {
	switch el := element.(type) {
	case *Split:
		first := remove(el.First, window)
		second := remove(el.Second, window)
		switch {
		case first == nil:
			return second
		case second == nil:
			return first
		default:
			return NewSplit(first, second, el.Orientation)
		}
	case *Window:
		if el == window {
			return nil
		}
		return el
	case none:
		return nil
	default:
		panic(fmt.Sprintf("layout: malformed tree node %T", element))
	}
}

// InsertSplit replaces the target leaf with a split of the given orientation
// whose first child is the leaf itself and whose second child is a new,
// non-current placeholder for the pane the host is about to create. The rest
// of the tree is rebuilt unchanged, sharing leaves with the input.
func InsertSplit(orientation Orientation, window *Window, root Element) Element {
	switch el := root.(type) {
	case *Split:
		return NewSplit(
			InsertSplit(orientation, window, el.First),
			InsertSplit(orientation, window, el.Second),
			el.Orientation,
		)
	case *Window:
		if el == window {
			return NewSplit(el, &Window{HasOneTab: true}, orientation)
		}
		return el
	case none:
		return el
	default:
		panic(fmt.Sprintf("layout: malformed tree node %T", root))
	}
}
