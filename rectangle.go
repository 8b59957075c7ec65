package fbdraw

// Rectangle is the simplest shape: an axis-aligned rectangle with an
// optional border and an optional fill. Cells within BorderWidth of any edge
// take the border color, all others the fill color; an absent color leaves
// the cell uncovered.
type Rectangle struct {
	// Width and Height are the overall size in pixels, border included.
	Width  int
	Height int

	// BorderWidth is the border thickness in pixels. Defaults to 1;
	// use [WithBorderWidth] (0) to disable the border.
	BorderWidth int

	// BorderColor fills the border cells when set.
	BorderColor Pixel

	// FillColor fills the interior cells when set.
	FillColor Pixel
}

// RectangleOption configures a Rectangle during creation.
type RectangleOption func(*Rectangle)

// WithBorderWidth sets the border thickness in pixels. Zero disables the
// border entirely.
func WithBorderWidth(w int) RectangleOption {
	return func(r *Rectangle) {
		r.BorderWidth = w
	}
}

// WithBorderColor sets the border color.
func WithBorderColor(c Color) RectangleOption {
	return func(r *Rectangle) {
		r.BorderColor = Px(c)
	}
}

// WithFillColor sets the interior fill color.
func WithFillColor(c Color) RectangleOption {
	return func(r *Rectangle) {
		r.FillColor = Px(c)
	}
}

// NewRectangle creates a rectangle of the given size. By default the border
// is one pixel wide and both border and fill are absent (fully transparent).
func NewRectangle(width, height int, opts ...RectangleOption) *Rectangle {
	r := &Rectangle{
		Width:       width,
		Height:      height,
		BorderWidth: 1,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render implements [Shape]. Degenerate sizes yield an empty grid.
func (r *Rectangle) Render() PixelGrid {
	grid := make(PixelGrid, r.Height)
	for y := range grid {
		row := make([]Pixel, r.Width)
		for x := range row {
			if x < r.BorderWidth || x >= r.Width-r.BorderWidth ||
				y < r.BorderWidth || y >= r.Height-r.BorderWidth {
				row[x] = r.BorderColor
			} else {
				row[x] = r.FillColor
			}
		}
		grid[y] = row
	}
	return grid
}
