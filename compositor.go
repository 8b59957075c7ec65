package fbdraw

// Compositor is a shape that contains other shapes. It owns an ordered list
// of named, positioned children and flattens them into one grid with
// sequential alpha blending. Insertion order is z-order: later additions
// render on top.
//
// A Compositor is itself a [Shape], so compositors can be nested without
// special-casing.
type Compositor struct {
	// Width and Height of the output grid in pixels.
	Width  int
	Height int

	// Background initializes every cell before children are blended.
	// A transparent background is treated, wherever a child touches it,
	// as if it were already composited over an opaque black backdrop;
	// untouched cells keep the background color verbatim, alpha included.
	Background Color

	shapes []namedShape
}

type namedShape struct {
	name  string
	shape PositionedShape
}

// NewCompositor creates an empty compositor with the given size and
// background color.
func NewCompositor(width, height int, background Color) *Compositor {
	return &Compositor{
		Width:      width,
		Height:     height,
		Background: background,
	}
}

// Add appends a positioned shape under the given name and returns the
// compositor for chaining. Name uniqueness is not enforced; lookups return
// the first match in insertion order.
func (c *Compositor) Add(name string, shape PositionedShape) *Compositor {
	c.shapes = append(c.shapes, namedShape{name: name, shape: shape})
	return c
}

// GetPositioned returns the first shape added under the given name, or nil
// if no shape with that name was ever added. The returned pointer aliases
// the compositor's own entry, so the shape may be mutated in place.
func (c *Compositor) GetPositioned(name string) *PositionedShape {
	for i := range c.shapes {
		if c.shapes[i].name == name {
			return &c.shapes[i].shape
		}
	}
	return nil
}

// Get returns the inner shape of the first entry with the given name,
// provided its concrete type is T. A name miss and a type mismatch both
// report false; callers cannot distinguish the two from the result alone.
//
//	rect, ok := fbdraw.Get[*fbdraw.Rectangle](c, "badge")
func Get[T Shape](c *Compositor, name string) (T, bool) {
	ps := c.GetPositioned(name)
	if ps == nil {
		var zero T
		return zero, false
	}
	s, ok := ps.Shape.(T)
	return s, ok
}

// Render implements [Shape] using the painter's algorithm: children blend in
// insertion order, oldest first. Cells a child places outside the compositor
// bounds are silently clipped. Each covered source cell blends with the
// current destination via a simplified sequential "over": the destination is
// first flattened to full opacity (premultiplying its channels against an
// implied black backdrop), then mixed per channel by the source alpha, and
// the result stored fully opaque.
//
// Flattening at every step rather than carrying accumulated transparency
// means stacking several semi-transparent layers only approximates the exact
// multi-layer blend. The order of operations here is deliberate and must not
// be replaced with a mathematically stricter operator.
func (c *Compositor) Render() PixelGrid {
	result := make(PixelGrid, c.Height)
	for y := range result {
		row := make([]Pixel, c.Width)
		for x := range row {
			row[x] = Px(c.Background)
		}
		result[y] = row
	}

	for _, entry := range c.shapes {
		ps := entry.shape
		for y, row := range ps.Shape.Render() {
			ry := ps.Y + y
			if ry < 0 || ry >= len(result) {
				continue
			}
			for x, src := range row {
				rx := ps.X + x
				if rx < 0 || rx >= len(result[ry]) {
					continue
				}
				if !src.Set {
					continue
				}
				result[ry][rx] = Px(blend(src.C, result[ry][rx].C))
			}
		}
	}
	return result
}

// blend composites src over dst and returns an opaque color. dst is
// flattened to full opacity first if it still carries transparency.
// Channel arithmetic truncates, matching uint8 conversion semantics.
func blend(src, dst Color) Color {
	opacity := float64(src.A) / 255
	revOpacity := 1 - opacity

	if dst.A != 255 {
		dst = dst.Scale(float64(dst.A) / 255)
		dst.A = 255
	}

	return Color{
		R: uint8(float64(src.R)*opacity + float64(dst.R)*revOpacity),
		G: uint8(float64(src.G)*opacity + float64(dst.G)*revOpacity),
		B: uint8(float64(src.B)*opacity + float64(dst.B)*revOpacity),
		A: 255,
	}
}
