package layout

import "fmt"

// Direction is one of the four ways a tab or the focus can be shifted.
type Direction int

const (
	// Left shifts toward the leading edge of the X axis.
	Left Direction = iota
	// Right shifts toward the trailing edge of the X axis.
	Right
	// Up shifts toward the leading edge of the Y axis.
	Up
	// Down shifts toward the trailing edge of the Y axis.
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// SplitOrientation is the orientation a new split must have when it is
// created by shifting in this direction.
func (d Direction) SplitOrientation() Orientation {
	if d == Left || d == Right {
		return Vertical
	}
	return Horizontal
}

// CanExpand reports whether shifting in this direction may create a brand
// new split when the pane is already at that edge of the layout. Only right
// and down grow the layout; left and up at the outer edge are no-ops.
func (d Direction) CanExpand() bool {
	return d == Right || d == Down
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	}
	return Up
}

// FindTargetWindow returns the existing pane adjacent to window in this
// direction, or nil when the window already sits at the outer edge. The
// lookup is geometric and requires a fresh CalculatePositions pass: a
// candidate must share the boundary the window faces, and among candidates
// the one nearest to the window's own origin on the cross axis wins. On a
// well-formed position assignment this is exactly the nearest leaf of the
// adjacent sibling subtree.
func (d Direction) FindTargetWindow(window *Window, root Element) *Window {
	var target *Window
	bestDistance := 0
	for _, candidate := range AllWindows(root) {
		if candidate == window || !d.bordersOn(window.Position(), candidate.Position()) {
			continue
		}
		distance := d.crossAxisDistance(window.Position(), candidate.Position())
		if target == nil || distance < bestDistance {
			target, bestDistance = candidate, distance
		}
	}
	return target
}

// bordersOn reports whether the candidate rectangle touches the boundary the
// window faces when moving in this direction.
func (d Direction) bordersOn(from, candidate Position) bool {
	switch d {
	case Left:
		return candidate.ToX == from.FromX
	case Right:
		return candidate.FromX == from.ToX
	case Up:
		return candidate.ToY == from.FromY
	case Down:
		return candidate.FromY == from.ToY
	}
	panic(fmt.Sprintf("layout: malformed direction %d", int(d)))
}

func (d Direction) crossAxisDistance(from, candidate Position) int {
	var distance int
	if d == Left || d == Right {
		distance = candidate.FromY - from.FromY
	} else {
		distance = candidate.FromX - from.FromX
	}
	if distance < 0 {
		return -distance
	}
	return distance
}
