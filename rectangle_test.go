package fbdraw

import "testing"

// Verify at compile time that all drawables implement Shape.
var (
	_ Shape = (*Rectangle)(nil)
	_ Shape = (*Compositor)(nil)
	_ Shape = (*Image)(nil)
)

func TestRectangle_UniformFill(t *testing.T) {
	fill := RGB(255, 0, 0)
	rect := NewRectangle(4, 3, WithBorderWidth(0), WithFillColor(fill))

	grid := rect.Render()
	if grid.Height() != 3 || grid.Width() != 4 {
		t.Fatalf("grid is %dx%d, want 4x3", grid.Width(), grid.Height())
	}
	for y, row := range grid {
		for x, p := range row {
			if p != Px(fill) {
				t.Errorf("cell (%d, %d) = %+v, want uniform fill", x, y, p)
			}
		}
	}
}

func TestRectangle_Border(t *testing.T) {
	border := RGB(0, 0, 0)
	fill := RGB(0, 255, 0)
	rect := NewRectangle(5, 5, WithBorderColor(border), WithFillColor(fill))

	grid := rect.Render()
	for y, row := range grid {
		for x, p := range row {
			onBorder := x == 0 || x == 4 || y == 0 || y == 4
			want := Px(fill)
			if onBorder {
				want = Px(border)
			}
			if p != want {
				t.Errorf("cell (%d, %d) = %+v, want %+v (border=%v)", x, y, p, want, onBorder)
			}
		}
	}
}

func TestRectangle_DefaultBorderWidth(t *testing.T) {
	rect := NewRectangle(10, 10)
	if rect.BorderWidth != 1 {
		t.Errorf("default border width = %d, want 1", rect.BorderWidth)
	}
}

func TestRectangle_AbsentColors(t *testing.T) {
	grid := NewRectangle(3, 3).Render()
	for y, row := range grid {
		for x, p := range row {
			if p.Set {
				t.Errorf("cell (%d, %d) is covered, want no coverage everywhere", x, y)
			}
		}
	}
}

func TestRectangle_DegenerateSize(t *testing.T) {
	if got := NewRectangle(0, 5).Render(); got.Width() != 0 {
		t.Errorf("zero width renders %dx%d grid", got.Width(), got.Height())
	}
	if got := NewRectangle(5, 0).Render(); got.Height() != 0 {
		t.Errorf("zero height renders %d rows", got.Height())
	}
}

func TestRectangle_ThickBorder(t *testing.T) {
	border := RGB(1, 2, 3)
	grid := NewRectangle(6, 6, WithBorderWidth(2), WithBorderColor(border)).Render()

	// Interior is the central 2x2 block only.
	for y, row := range grid {
		for x, p := range row {
			interior := x >= 2 && x < 4 && y >= 2 && y < 4
			if interior && p.Set {
				t.Errorf("interior cell (%d, %d) covered by border", x, y)
			}
			if !interior && p != Px(border) {
				t.Errorf("border cell (%d, %d) = %+v", x, y, p)
			}
		}
	}
}
