package fbdraw

import (
	"image"
	"path/filepath"
	"testing"
)

func TestPixelGrid_Dimensions(t *testing.T) {
	var empty PixelGrid
	if empty.Width() != 0 || empty.Height() != 0 {
		t.Errorf("empty grid is %dx%d", empty.Width(), empty.Height())
	}

	grid := PixelGrid{
		{Px(RGB(1, 1, 1)), {}},
		{{}, {}},
	}
	if grid.Width() != 2 || grid.Height() != 2 {
		t.Errorf("grid is %dx%d, want 2x2", grid.Width(), grid.Height())
	}
}

func TestPixelGrid_Image(t *testing.T) {
	grid := PixelGrid{
		{Px(RGBA(10, 20, 30, 40)), {}},
	}

	img := grid.Image()
	if img.Bounds() != image.Rect(0, 0, 2, 1) {
		t.Fatalf("image bounds = %v", img.Bounds())
	}

	if got := img.NRGBAAt(0, 0); got.R != 10 || got.G != 20 || got.B != 30 || got.A != 40 {
		t.Errorf("covered pixel = %+v", got)
	}
	if got := img.NRGBAAt(1, 0); got.A != 0 {
		t.Errorf("uncovered pixel has alpha %d, want fully transparent", got.A)
	}
}

func TestPixelGrid_SavePNG(t *testing.T) {
	grid := NewRectangle(3, 3, WithBorderWidth(0), WithFillColor(RGB(255, 0, 0))).Render()

	path := filepath.Join(t.TempDir(), "out.png")
	if err := grid.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	img, err := ImageFromPath(path)
	if err != nil {
		t.Fatalf("decoding written PNG: %v", err)
	}
	if img.Width() != 3 || img.Height() != 3 {
		t.Errorf("written PNG is %dx%d, want 3x3", img.Width(), img.Height())
	}
}
