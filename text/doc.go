// Package text renders single- and multi-line text into pixel grids.
//
// [Caption] is the fbdraw.Shape for text: it walks the text with a Unicode
// line-break segmenter, soft-wraps against an optional maximum width using
// rendered-width measurement, rasterizes each line with antialiased glyph
// coverage, and aligns the lines into one grid.
//
// Fonts come either from the system via [FindFont] (family name plus style
// flags, backed by go-text/typesetting's font scanner) or from raw TTF/OTF
// bytes via [ParseFont].
package text
