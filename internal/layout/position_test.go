package layout_test

import (
	"testing"

	"github.com/Gaurav-Gosain/paneshift/internal/layout"
)

// =============================================================================
// Position Tests
// =============================================================================

func TestPosition_Extents(t *testing.T) {
	p := layout.NewPosition(1, 2, 5, 9)

	if p.Width() != 4 {
		t.Errorf("Expected width 4, got %d", p.Width())
	}
	if p.Height() != 7 {
		t.Errorf("Expected height 7, got %d", p.Height())
	}
}

func TestPosition_WithCopies(t *testing.T) {
	p := layout.NewPosition(0, 0, 4, 4)

	tests := []struct {
		name string
		got  layout.Position
		want layout.Position
	}{
		{"WithFromX", p.WithFromX(2), layout.NewPosition(2, 0, 4, 4)},
		{"WithToX", p.WithToX(3), layout.NewPosition(0, 0, 3, 4)},
		{"WithFromY", p.WithFromY(1), layout.NewPosition(0, 1, 4, 4)},
		{"WithToY", p.WithToY(2), layout.NewPosition(0, 0, 4, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, tt.got)
			}
		})
	}

	// The receiver must stay untouched.
	if p != layout.NewPosition(0, 0, 4, 4) {
		t.Errorf("Receiver was mutated: %s", p)
	}
}

func TestPosition_Comparable(t *testing.T) {
	a := layout.NewPosition(0, 0, 2, 2)
	b := layout.NewPosition(0, 0, 2, 2)
	c := layout.NewPosition(0, 0, 2, 3)

	if a != b {
		t.Error("Expected equal positions to compare equal")
	}
	if a == c {
		t.Error("Expected different positions to compare unequal")
	}
}

func TestPosition_String(t *testing.T) {
	p := layout.NewPosition(1, 2, 3, 4)
	if p.String() != "(1,2)-(3,4)" {
		t.Errorf("Unexpected string form: %s", p)
	}
}
