package text

import (
	"os"
	"strings"

	tsfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/cases"

	"github.com/fbdraw/fbdraw"
)

// Font is an opaque handle to a parsed font file. One Font can back any
// number of [Caption] shapes at any sizes; it is read-only after creation.
type Font struct {
	family string
	otf    *sfnt.Font
}

// Family returns the font's family name as reported by the system scan, or
// "" for fonts built with [ParseFont].
func (f *Font) Family() string { return f.family }

// ParseFont parses raw TTF or OTF font data. Bytes that fail to parse
// return a [*BadFontError] wrapping the parser's own error.
func ParseFont(data []byte) (*Font, error) {
	otf, err := sfnt.Parse(data)
	if err != nil {
		return nil, &BadFontError{Err: err}
	}
	return &Font{otf: otf}, nil
}

// Query selects a system font by family name and style flags. The zero
// value matches the first installed font with a regular aspect.
type Query struct {
	// Family is the font family name, matched case-insensitively
	// (Unicode case folding). Empty matches any family.
	Family string

	// Style flags. Oblique is folded into italic, as system scanners
	// do not distinguish the two.
	Italic    bool
	Oblique   bool
	Bold      bool
	Monospace bool
}

// FindFont scans the installed system fonts and returns the one that best
// matches the query. The scan result is cached on disk by the underlying
// scanner, so only the first call pays the full enumeration cost.
//
// If no installed font satisfies the query, the error is [ErrFontNotFound].
// A matched file that fails to parse returns a [*BadFontError].
func FindFont(q Query) (*Font, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	footprints, err := fontscan.SystemFonts(nil, cacheDir)
	if err != nil {
		return nil, err
	}

	fold := cases.Fold()
	wantFamily := fold.String(strings.TrimSpace(q.Family))

	best := -1
	bestScore := 0
	for i := range footprints {
		fp := &footprints[i]
		family := fold.String(fp.Family)
		if wantFamily != "" && family != wantFamily {
			continue
		}
		if q.Monospace && !looksMonospace(family) {
			continue
		}
		score := aspectScore(fp.Aspect, q)
		if best < 0 || score < bestScore {
			best, bestScore = i, score
		}
	}
	if best < 0 {
		return nil, ErrFontNotFound
	}

	fp := &footprints[best]
	data, err := os.ReadFile(fp.Location.File)
	if err != nil {
		return nil, err
	}
	coll, err := sfnt.ParseCollection(data)
	if err != nil {
		return nil, &BadFontError{Err: err}
	}
	otf, err := coll.Font(int(fp.Location.Index))
	if err != nil {
		return nil, &BadFontError{Err: err}
	}

	fbdraw.Logger().Debug("text: font matched",
		"family", fp.Family, "file", fp.Location.File, "index", fp.Location.Index)

	return &Font{family: fp.Family, otf: otf}, nil
}

// aspectScore is the distance between a scanned font's aspect and the
// query; lower is better.
func aspectScore(a tsfont.Aspect, q Query) int {
	wantWeight := tsfont.WeightNormal
	if q.Bold {
		wantWeight = tsfont.WeightBold
	}
	wantStyle := tsfont.StyleNormal
	if q.Italic || q.Oblique {
		wantStyle = tsfont.StyleItalic
	}

	score := int(a.Weight - wantWeight)
	if score < 0 {
		score = -score
	}
	if a.Style != wantStyle {
		score += 1000
	}
	return score
}

// looksMonospace reports whether a case-folded family name looks like a
// fixed-pitch font. The scanner does not expose fontconfig's spacing
// property, so matching falls back to well-known naming conventions.
func looksMonospace(family string) bool {
	if strings.Contains(family, "mono") || strings.Contains(family, "courier") {
		return true
	}
	switch family {
	case "consolas", "menlo", "monaco", "fixed", "terminus", "inconsolata":
		return true
	}
	return false
}

// face creates a rasterizing face at the given pixel size. Faces are cheap,
// not safe for concurrent use, and must be closed after the render pass.
func (f *Font) face(size float64) (xfont.Face, error) {
	return opentype.NewFace(f.otf, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
}

// glyphIndex returns the glyph index for r, or 0 if the font has no glyph
// for it.
func (f *Font) glyphIndex(buf *sfnt.Buffer, r rune) sfnt.GlyphIndex {
	gi, err := f.otf.GlyphIndex(buf, r)
	if err != nil {
		return 0
	}
	return gi
}
