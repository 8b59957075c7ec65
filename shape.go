package fbdraw

// Shape is anything that can produce a rectangular pixel grid on demand.
//
// Render must return a grid whose rows all have equal length; its outer
// length is the shape's height and each inner length its width. Rendering is
// a pure function of the shape's fields: a fresh grid is produced on every
// call and never mutated in place.
type Shape interface {
	Render() PixelGrid
}

// PositionedShape is a [Shape] bound to an (x, y) placement offset, the unit
// stored inside a [Compositor]. Construct it with [At].
type PositionedShape struct {
	// X, Y is the placement offset of the shape's top-left corner inside
	// the owning compositor. Offsets may be negative; cells falling outside
	// the compositor are clipped at render time.
	X, Y int

	// Shape is the single owned drawable.
	Shape Shape
}

// At binds a shape to a placement offset so it can be added to a
// [Compositor].
func At(s Shape, x, y int) PositionedShape {
	return PositionedShape{X: x, Y: y, Shape: s}
}
