package layout_test

import (
	"testing"

	"github.com/Gaurav-Gosain/paneshift/internal/layout"
)

// =============================================================================
// Direction Property Tests
// =============================================================================

func TestDirection_SplitOrientation(t *testing.T) {
	tests := []struct {
		direction layout.Direction
		want      layout.Orientation
	}{
		{layout.Left, layout.Vertical},
		{layout.Right, layout.Vertical},
		{layout.Up, layout.Horizontal},
		{layout.Down, layout.Horizontal},
	}
	for _, tt := range tests {
		if got := tt.direction.SplitOrientation(); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.direction, tt.want, got)
		}
	}
}

func TestDirection_CanExpand(t *testing.T) {
	if layout.Left.CanExpand() || layout.Up.CanExpand() {
		t.Error("Expected left and up to never expand the layout")
	}
	if !layout.Right.CanExpand() || !layout.Down.CanExpand() {
		t.Error("Expected right and down to expand the layout")
	}
}

func TestDirection_Opposite(t *testing.T) {
	tests := []struct {
		direction layout.Direction
		want      layout.Direction
	}{
		{layout.Left, layout.Right},
		{layout.Right, layout.Left},
		{layout.Up, layout.Down},
		{layout.Down, layout.Up},
	}
	for _, tt := range tests {
		if got := tt.direction.Opposite(); got != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.direction, tt.want, got)
		}
	}
}

// =============================================================================
// Target Window Tests
// =============================================================================

// layoutThree builds the tree used by the adjacency tests:
//
//	+---+---+
//	| a |   |
//	+---+ c |
//	| b |   |
//	+---+---+
func layoutThree() (a, b, c *layout.Window, root layout.Element) {
	a = &layout.Window{Handle: "a"}
	b = &layout.Window{Handle: "b"}
	c = &layout.Window{Handle: "c"}
	root = layout.CalculatePositions(
		layout.NewSplit(layout.NewSplit(a, b, layout.Horizontal), c, layout.Vertical))
	return a, b, c, root
}

func TestFindTargetWindow_Adjacent(t *testing.T) {
	a, b, c, root := layoutThree()

	tests := []struct {
		name      string
		direction layout.Direction
		from      *layout.Window
		want      *layout.Window
	}{
		{"a right to c", layout.Right, a, c},
		{"b right to c", layout.Right, b, c},
		{"a down to b", layout.Down, a, b},
		{"b up to a", layout.Up, b, a},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.direction.FindTargetWindow(tt.from, root); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestFindTargetWindow_NearestOnCrossAxis(t *testing.T) {
	a, _, c, root := layoutThree()

	// Both a and b touch c's left boundary; a shares c's origin row.
	if got := layout.Left.FindTargetWindow(c, root); got != a {
		t.Errorf("Expected nearest neighbor a, got %v", got)
	}
}

func TestFindTargetWindow_EdgeReturnsNil(t *testing.T) {
	a, b, c, root := layoutThree()

	edges := []struct {
		name      string
		direction layout.Direction
		from      *layout.Window
	}{
		{"a left", layout.Left, a},
		{"a up", layout.Up, a},
		{"b down", layout.Down, b},
		{"c right", layout.Right, c},
		{"c up", layout.Up, c},
		{"c down", layout.Down, c},
	}

	for _, tt := range edges {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.direction.FindTargetWindow(tt.from, root); got != nil {
				t.Errorf("Expected nil at the layout edge, got %v", got)
			}
		})
	}
}

func TestFindTargetWindow_UnbalancedRows(t *testing.T) {
	// Three panes over two: moving right from the bottom-left pane must land
	// in the bottom row's other pane, not in a top-row neighbor.
	a := &layout.Window{Handle: "a"}
	b := &layout.Window{Handle: "b"}
	c := &layout.Window{Handle: "c"}
	x := &layout.Window{Handle: "x"}
	y := &layout.Window{Handle: "y"}
	top := layout.NewSplit(layout.NewSplit(a, b, layout.Vertical), c, layout.Vertical)
	bottom := layout.NewSplit(x, y, layout.Vertical)
	root := layout.CalculatePositions(layout.NewSplit(top, bottom, layout.Horizontal))

	if got := layout.Right.FindTargetWindow(x, root); got != y {
		t.Errorf("Expected y, got %v", got)
	}
	if got := layout.Left.FindTargetWindow(y, root); got != x {
		t.Errorf("Expected x, got %v", got)
	}
	if got := layout.Up.FindTargetWindow(y, root); got != b {
		t.Errorf("Expected b above y's origin, got %v", got)
	}
}

func TestFindTargetWindow_SingleWindow(t *testing.T) {
	w := &layout.Window{Handle: "only"}
	root := layout.CalculatePositions(w)

	for _, d := range []layout.Direction{layout.Left, layout.Right, layout.Up, layout.Down} {
		if got := d.FindTargetWindow(w, root); got != nil {
			t.Errorf("%s: expected nil for a lone window, got %v", d, got)
		}
	}
}
