package layout

import "fmt"

// Position is an axis-aligned rectangle in layout units.
// It is both the computed placement of a tree node and the correlation key
// used to re-find a pane after the host rebuilds its window objects, so it
// must stay comparable and immutable.
type Position struct {
	FromX int
	FromY int
	ToX   int
	ToY   int
}

// NewPosition creates a position covering the given bounds.
func NewPosition(fromX, fromY, toX, toY int) Position {
	return Position{FromX: fromX, FromY: fromY, ToX: toX, ToY: toY}
}

// WithFromX returns a copy with the left bound replaced.
func (p Position) WithFromX(x int) Position {
	p.FromX = x
	return p
}

// WithToX returns a copy with the right bound replaced.
func (p Position) WithToX(x int) Position {
	p.ToX = x
	return p
}

// WithFromY returns a copy with the top bound replaced.
func (p Position) WithFromY(y int) Position {
	p.FromY = y
	return p
}

// WithToY returns a copy with the bottom bound replaced.
func (p Position) WithToY(y int) Position {
	p.ToY = y
	return p
}

// Width returns the horizontal extent of the rectangle.
func (p Position) Width() int {
	return p.ToX - p.FromX
}

// Height returns the vertical extent of the rectangle.
func (p Position) Height() int {
	return p.ToY - p.FromY
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", p.FromX, p.FromY, p.ToX, p.ToY)
}
