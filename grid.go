package fbdraw

import (
	"image"
	"image/png"
	"os"
)

// Pixel is an optional color: a grid cell that is either covered by a color
// or not covered at all. The zero value is "no coverage", which is
// semantically equivalent to a fully transparent color but lets consumers
// skip untouched cells entirely.
type Pixel struct {
	C   Color
	Set bool
}

// Px wraps a color into a covered pixel.
func Px(c Color) Pixel {
	return Pixel{C: c, Set: true}
}

// PixelGrid is a rectangular grid of optional colors: an ordered slice of
// rows, each row an ordered slice of [Pixel]. Every [Shape.Render]
// implementation must keep all rows the same length.
type PixelGrid [][]Pixel

// Height returns the number of rows.
func (g PixelGrid) Height() int {
	return len(g)
}

// Width returns the length of the first row, or 0 for an empty grid.
func (g PixelGrid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Image converts the grid to a straight-alpha image. Uncovered cells become
// fully transparent pixels.
func (g PixelGrid) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.Width(), g.Height()))
	for y, row := range g {
		for x, p := range row {
			if !p.Set {
				continue
			}
			i := img.PixOffset(x, y)
			img.Pix[i+0] = p.C.R
			img.Pix[i+1] = p.C.G
			img.Pix[i+2] = p.C.B
			img.Pix[i+3] = p.C.A
		}
	}
	return img
}

// SavePNG writes the grid to a PNG file.
func (g PixelGrid) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, g.Image())
}
