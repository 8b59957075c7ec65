package text

import "iter"

// breakClass represents Unicode line breaking classes (UAX #14 simplified).
type breakClass uint8

const (
	// breakOther is the default class for most characters.
	breakOther breakClass = iota
	// breakSpace is for space characters (break after).
	breakSpace
	// breakZero is for zero-width space (break opportunity).
	breakZero
	// breakOpen is for opening punctuation (no break after).
	breakOpen
	// breakClose is for closing punctuation (no break before).
	breakClose
	// breakHyphen is for hyphens (break after).
	breakHyphen
	// breakIdeographic is for CJK ideographs (break before/after).
	breakIdeographic
	// breakHard is for characters that force a new line (class BK/CR/LF/NL).
	breakHard
)

// classifyRune returns the break class of a rune.
// This is a simplified implementation of UAX #14.
func classifyRune(r rune) breakClass {
	if class, ok := classifySpecificRune(r); ok {
		return class
	}
	if isCJKRune(r) {
		return breakIdeographic
	}
	return breakOther
}

// classifySpecificRune handles classification of specific characters.
func classifySpecificRune(r rune) (breakClass, bool) {
	switch r {
	case '\n', '\v', '\f', '\r', '', ' ', ' ':
		return breakHard, true
	case ' ', '\t':
		return breakSpace, true
	case '​': // Zero-width space
		return breakZero, true
	case '(', '[', '{', '“', '‘':
		return breakOpen, true // Opening brackets and quotes
	case ')', ']', '}', '”', '’':
		return breakClose, true // Closing brackets and quotes
	case '-', '‐', '‑', '–', '—':
		return breakHyphen, true // Various hyphens and dashes
	default:
		return breakOther, false
	}
}

// isCJKRune returns true if the rune is a CJK character that allows breaking.
func isCJKRune(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) || // CJK Unified Ideographs
		(r >= 0x3400 && r <= 0x4DBF) || // CJK Extension A
		(r >= 0x20000 && r <= 0x2A6DF) || // CJK Extension B
		(r >= 0x3040 && r <= 0x309F) || // Hiragana
		(r >= 0x30A0 && r <= 0x30FF) || // Katakana
		(r >= 0xAC00 && r <= 0xD7AF) || // Hangul Syllables
		(r >= 0xFF00 && r <= 0xFFEF) // Fullwidth forms
}

// isHardBreakRune reports whether r forces a line break after itself.
func isHardBreakRune(r rune) bool {
	return classifyRune(r) == breakHard
}

// LineBreaks returns an iterator over the line-break opportunities of s, in
// text order. Each opportunity is a byte offset at which a line may legally
// end (and the next one begin), together with a flag marking it mandatory: a
// hard break such as "\n" always forces a new line there, while a
// non-mandatory opportunity may be used only when soft-wrapping.
//
// For non-empty s the final opportunity is always (len(s), true). An empty
// string yields no opportunities.
func LineBreaks(s string) iter.Seq2[int, bool] {
	return func(yield func(int, bool) bool) {
		if s == "" {
			return
		}
		var prev rune
		first := true
		for i, r := range s {
			if first {
				prev, first = r, false
				continue
			}
			switch {
			case isHardBreakRune(prev):
				// \r\n is a single break opportunity, after the \n.
				if !(prev == '\r' && r == '\n') {
					if !yield(i, true) {
						return
					}
				}
			case allowedBefore(prev, r):
				if !yield(i, false) {
					return
				}
			}
			prev = r
		}
		yield(len(s), true)
	}
}

// allowedBefore reports whether a soft break opportunity exists between two
// adjacent runes.
func allowedBefore(prev, curr rune) bool {
	prevClass := classifyRune(prev)
	currClass := classifyRune(curr)

	// No break before closing punctuation, none after opening punctuation.
	if currClass == breakClose || prevClass == breakOpen {
		return false
	}
	if prevClass == breakSpace || prevClass == breakZero {
		return true
	}
	if prevClass == breakHyphen && currClass != breakHyphen {
		return true
	}
	// CJK: break before and after ideographs.
	if currClass == breakIdeographic {
		return true
	}
	if prevClass == breakIdeographic {
		return true
	}
	return false
}
