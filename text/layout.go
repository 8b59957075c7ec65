package text

import (
	"image"
	"image/color"
	"math"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/fbdraw/fbdraw"
)

// layouter places and rasterizes the glyphs of one render pass. It owns the
// face and the sfnt scratch buffer, neither of which is safe for concurrent
// use, so a fresh layouter is created per Caption.Render call.
type layouter struct {
	font  *Font
	face  xfont.Face
	buf   *sfnt.Buffer
	size  int
	color fbdraw.Color
}

// glyphPos is one laid-out glyph: the rune and the horizontal pen position
// of its origin.
type glyphPos struct {
	r rune
	x float64
}

// layout places the glyphs of s left to right from x=0, accumulating
// advances and pair kerning. Runes the font has no glyph for are dropped
// entirely: they take part in neither measurement nor rendering.
func (l *layouter) layout(s string) []glyphPos {
	var glyphs []glyphPos
	x := 0.0
	prev := rune(-1)
	for _, r := range s {
		if l.font.glyphIndex(l.buf, r) == 0 {
			continue
		}
		adv, ok := l.face.GlyphAdvance(r)
		if !ok {
			continue
		}
		if prev >= 0 {
			x += fixedToFloat(l.face.Kern(prev, r))
		}
		glyphs = append(glyphs, glyphPos{r: r, x: x})
		x += fixedToFloat(adv)
		prev = r
	}
	return glyphs
}

// measure returns the rendered width of laid-out glyphs: the pen position of
// the last glyph that has visible ink plus that glyph's own advance.
// Trailing glyphs without a bounding box (spaces) are not counted.
func (l *layouter) measure(glyphs []glyphPos) float64 {
	for i := len(glyphs) - 1; i >= 0; i-- {
		bounds, adv, ok := l.face.GlyphBounds(glyphs[i].r)
		if !ok {
			continue
		}
		if bounds.Min.X == bounds.Max.X || bounds.Min.Y == bounds.Max.Y {
			continue
		}
		return glyphs[i].x + fixedToFloat(adv)
	}
	return 0
}

// stringWidth measures s in whole pixels, for wrap decisions.
func (l *layouter) stringWidth(s string) int {
	return int(math.Round(l.measure(l.layout(s))))
}

// renderLine rasterizes one line of text into a grid of height l.size and
// width equal to the measured line width rounded up. Each covered cell gets
// the configured color with its alpha scaled by the glyph coverage at that
// cell.
func (l *layouter) renderLine(s string) fbdraw.PixelGrid {
	glyphs := l.layout(s)
	width := int(math.Ceil(l.measure(glyphs)))

	rows := make(fbdraw.PixelGrid, l.size)
	for y := range rows {
		rows[y] = make([]fbdraw.Pixel, width)
	}

	ascent := l.face.Metrics().Ascent
	for _, g := range glyphs {
		dot := fixed.Point26_6{X: floatToFixed(g.x), Y: ascent}
		dr, mask, maskp, _, ok := l.face.Glyph(dot, g.r)
		if !ok {
			continue
		}
		for yy := dr.Min.Y; yy < dr.Max.Y; yy++ {
			if yy < 0 || yy >= len(rows) {
				continue
			}
			for xx := dr.Min.X; xx < dr.Max.X; xx++ {
				if xx < 0 || xx >= width {
					continue
				}
				cov := maskAlphaAt(mask, maskp.X+xx-dr.Min.X, maskp.Y+yy-dr.Min.Y)
				if cov == 0 {
					continue
				}
				rows[yy][xx] = fbdraw.Px(fbdraw.Color{
					R: l.color.R,
					G: l.color.G,
					B: l.color.B,
					A: uint8(float64(l.color.A) * float64(cov) / 255),
				})
			}
		}
	}
	return rows
}

// lineGap returns the font's recommended gap between lines at the current
// size, in whole rows.
func (l *layouter) lineGap() int {
	m := l.face.Metrics()
	return int(math.Round(fixedToFloat(m.Height - m.Ascent - m.Descent)))
}

// alignRow pads or clips one row to the target width. Overflow keeps the
// leading cells of the row.
func alignRow(row []fbdraw.Pixel, width int, alignment Alignment) []fbdraw.Pixel {
	switch alignment {
	case AlignRight:
		out := make([]fbdraw.Pixel, width)
		n := min(width, len(row))
		copy(out[width-n:], row[:n])
		return out
	case AlignCenter:
		out := make([]fbdraw.Pixel, width)
		n := min(width, len(row))
		copy(out[(width-n)/2:], row[:n])
		return out
	default: // AlignLeft
		if len(row) >= width {
			return row[:width]
		}
		return append(row, make([]fbdraw.Pixel, width-len(row))...)
	}
}

func maskAlphaAt(mask image.Image, x, y int) uint8 {
	if a, ok := mask.(*image.Alpha); ok {
		return a.AlphaAt(x, y).A
	}
	return color.AlphaModel.Convert(mask.At(x, y)).(color.Alpha).A
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
