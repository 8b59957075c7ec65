package text

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/image/font/sfnt"

	"github.com/fbdraw/fbdraw"
)

// Alignment is the horizontal alignment of caption lines.
type Alignment uint8

const (
	// AlignLeft pads lines on the right. This is the default.
	AlignLeft Alignment = iota
	// AlignCenter centers lines, using floor positioning for the left pad.
	AlignCenter
	// AlignRight pads lines on the left.
	AlignRight
)

// String returns the string representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return "Left"
	}
}

// Caption is a shape containing single- or multi-line text. Text is
// soft-wrapped when a maximum width is set; explicit newlines always break.
// A Caption is immutable after construction: Render is a pure function of
// its fields and the font's metrics.
type Caption struct {
	// Text is the caption text.
	Text string

	// Font renders and measures the text.
	Font *Font

	// Size is the font size in pixels; each rendered line is Size rows
	// tall before the font's line gap is appended.
	Size int

	// Color is the text color. Defaults to opaque black.
	Color fbdraw.Color

	// MaxWidth is the soft-wrap threshold in pixels. Zero disables
	// soft wrapping; only mandatory breaks then split lines.
	MaxWidth int

	// Alignment positions each line inside the output width.
	Alignment Alignment
}

// CaptionOption configures a Caption during creation.
type CaptionOption func(*Caption)

// WithColor sets the text color.
func WithColor(c fbdraw.Color) CaptionOption {
	return func(cp *Caption) {
		cp.Color = c
	}
}

// WithMaxWidth enables soft wrapping at the given pixel width.
func WithMaxWidth(w int) CaptionOption {
	return func(cp *Caption) {
		cp.MaxWidth = w
	}
}

// WithAlignment sets the line alignment.
func WithAlignment(a Alignment) CaptionOption {
	return func(cp *Caption) {
		cp.Alignment = a
	}
}

// NewCaption creates a caption for the given text, font and pixel size.
// Defaults: opaque black text, no soft wrapping, left alignment.
func NewCaption(txt string, font *Font, size int, opts ...CaptionOption) *Caption {
	cp := &Caption{
		Text:  txt,
		Font:  font,
		Size:  size,
		Color: fbdraw.RGB(0, 0, 0),
	}
	for _, opt := range opts {
		opt(cp)
	}
	return cp
}

// Render implements fbdraw.Shape. Empty text yields an empty grid;
// characters the font cannot render are silently dropped.
func (cp *Caption) Render() fbdraw.PixelGrid {
	face, err := cp.Font.face(float64(cp.Size))
	if err != nil {
		fbdraw.Logger().Warn("text: face creation failed", "error", err)
		return fbdraw.PixelGrid{}
	}
	defer func() {
		_ = face.Close()
	}()

	lay := &layouter{
		font:  cp.Font,
		face:  face,
		buf:   &sfnt.Buffer{},
		size:  cp.Size,
		color: cp.Color,
	}

	gap := lay.lineGap()
	var rendered []fbdraw.PixelGrid
	maxLineWidth := 0
	for _, line := range cp.splitText(lay) {
		rows := lay.renderLine(line)
		maxLineWidth = max(maxLineWidth, rows.Width())
		for i := 0; i < gap; i++ {
			rows = append(rows, nil)
		}
		rendered = append(rendered, rows)
	}

	width := cp.MaxWidth
	if width == 0 {
		width = maxLineWidth
	}

	var grid fbdraw.PixelGrid
	for _, rows := range rendered {
		for _, row := range rows {
			grid = append(grid, alignRow(row, width, cp.Alignment))
		}
	}
	return grid
}

// splitText performs line breaking: it walks the break opportunities of the
// text and closes a line at the most recent opportunity whenever the
// running segment overflows MaxWidth, and at every mandatory break. A
// whitespace rune immediately before a soft break point is dropped from
// both sides of the break; the rune(s) of a mandatory break are dropped
// from the line they terminate.
func (cp *Caption) splitText(lay *layouter) []string {
	var lines []string
	segStart := 0
	lastBreak := -1
	for off, mandatory := range LineBreaks(cp.Text) {
		if cp.MaxWidth > 0 && lastBreak > segStart {
			if lay.stringWidth(cp.Text[segStart:off]) > cp.MaxWidth {
				end := lastBreak
				if r, size := utf8.DecodeLastRuneInString(cp.Text[:end]); size > 0 && unicode.IsSpace(r) {
					end -= size
				}
				lines = append(lines, cp.Text[segStart:end])
				segStart = lastBreak
			}
		}
		if mandatory {
			lines = append(lines, trimHardBreak(cp.Text[segStart:off]))
			segStart = off
		}
		lastBreak = off
	}
	return lines
}

// trimHardBreak strips the line-terminating break rune from a closed line,
// including the \r of a \r\n pair.
func trimHardBreak(line string) string {
	r, size := utf8.DecodeLastRuneInString(line)
	if size == 0 || !isHardBreakRune(r) {
		return line
	}
	line = line[:len(line)-size]
	if r == '\n' && strings.HasSuffix(line, "\r") {
		line = line[:len(line)-1]
	}
	return line
}
