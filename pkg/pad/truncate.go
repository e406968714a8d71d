package pad

import "unicode/utf8"

// Truncate returns the contiguous width-element window of src selected by
// the alignment: AlignLeft keeps the prefix, AlignRight the suffix, and
// AlignCenter a centered window (trailing side keeps the extra element when
// width is odd). Widths of len(src) or more return src unchanged.
//
// The result is a sub-slice view of src, not a copy; its capacity is capped
// so appends cannot write into the discarded tail.
func Truncate[E any](src []E, width int, mode Alignment) []E {
	if width < 0 {
		width = 0
	}
	if width >= len(src) {
		return src
	}
	lo, hi := mode.window(len(src), width)
	return src[lo:hi:hi]
}

// TruncateString returns the contiguous width-codepoint window of s
// selected by the alignment. Windows fall on rune boundaries; widths of the
// full codepoint count or more return s unchanged.
func TruncateString(s string, width int, mode Alignment) string {
	if width < 0 {
		width = 0
	}
	n := utf8.RuneCountInString(s)
	if width >= n {
		return s
	}
	lo, hi := mode.window(n, width)
	return s[runeOffset(s, lo):runeOffset(s, hi)]
}
