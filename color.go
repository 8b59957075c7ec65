package fbdraw

import "fmt"

// Color is an RGBA color with 8-bit channels. Alpha is [0, 255], not [0, 1].
//
// The zero value is fully transparent black. Use [RGB] or [RGBA] for literal
// colors and [ParseHex] for "#rrggbb" / "#rrggbbaa" strings.
type Color struct {
	R, G, B, A uint8
}

// RGB creates an opaque color from red, green and blue components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA creates a color from red, green, blue and alpha components.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// ParseHex parses a color from a hex string of the form "#rrggbb" or
// "#rrggbbaa". The six-digit form is fully opaque. Parsing is
// case-insensitive. A malformed string returns an [*InvalidColorError]
// naming the offending input.
func ParseHex(s string) (Color, error) {
	if len(s) != 7 && len(s) != 9 {
		return Color{}, &InvalidColorError{Value: s, Reason: "length must be 7 or 9"}
	}
	if s[0] != '#' {
		return Color{}, &InvalidColorError{Value: s, Reason: "first char must be #"}
	}
	for i := 1; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return Color{}, &InvalidColorError{Value: s, Reason: "all characters but first must be hex"}
		}
	}

	c := Color{
		R: hexByte(s[1], s[2]),
		G: hexByte(s[3], s[4]),
		B: hexByte(s[5], s[6]),
		A: 255,
	}
	if len(s) == 9 {
		c.A = hexByte(s[7], s[8])
	}
	return c, nil
}

// Hex formats the color as a lowercase "#rrggbbaa" string.
// ParseHex(c.Hex()) reproduces c exactly.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Scale multiplies the red, green and blue channels by k, leaving alpha
// untouched. k is expected in [0, 1]; channel values truncate to uint8.
func (c Color) Scale(k float64) Color {
	return Color{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: c.A,
	}
}

func isHexDigit(b byte) bool {
	return ('0' <= b && b <= '9') || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}

func hexDigit(b byte) uint8 {
	switch {
	case '0' <= b && b <= '9':
		return b - '0'
	case 'a' <= b && b <= 'f':
		return b - 'a' + 10
	default:
		return b - 'A' + 10
	}
}

func hexByte(hi, lo byte) uint8 {
	return hexDigit(hi)<<4 | hexDigit(lo)
}
