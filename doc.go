// Package fbdraw is a software compositing and text-layout engine producing
// rectangular pixel grids for transfer to a raw display surface.
//
// # Overview
//
// Everything that can be drawn implements the [Shape] interface: it produces
// a [PixelGrid] on demand. Primitive shapes ([Rectangle], [Image], the text
// [Caption] in package text) render independent grids; a [Compositor] places
// named shapes at offsets and flattens them into one grid with sequential
// alpha blending. A Compositor is itself a Shape, so compositors nest freely.
//
// # Quick start
//
//	c := fbdraw.NewCompositor(1920, 1080, fbdraw.RGB(255, 255, 255))
//	red, _ := fbdraw.ParseHex("#ff000099")
//	c.Add("rect", fbdraw.At(fbdraw.NewRectangle(100, 100,
//		fbdraw.WithFillColor(red),
//		fbdraw.WithBorderWidth(0),
//	), 100, 100))
//	grid := c.Render()
//
// The resulting grid can be written to a PNG with [PixelGrid.SavePNG] or to a
// Linux framebuffer with package fbdev.
//
// # Rendering model
//
// Render is a pure, synchronous function of a shape's fields: every call
// recomputes the full grid and nothing is cached. Shapes are plain values
// assembled per scene; a Compositor must not be mutated while Render runs.
package fbdraw
