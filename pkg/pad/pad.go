package pad

import (
	"strings"
	"unicode/utf8"

	"github.com/evhall/padder/pkg/observability"
)

// Element is the set of element types a fill Symbol converts into. The
// catalog is ASCII, so one integer conversion covers both byte and rune
// elements.
type Element interface {
	~byte | ~rune
}

// String pads s to exactly width codepoints using the given alignment and
// fill symbol. When width is smaller than the codepoint count of s, the
// result is a contiguous sub-window of s selected by the alignment (see
// TruncateString); no error is ever reported. The returned string is built
// with a single allocation.
func String(s string, width int, mode Alignment, sym Symbol) string {
	if width < 0 {
		width = 0
	}
	n := utf8.RuneCountInString(s)
	if width < n {
		observability.Truncation().OnTruncate(n, width, mode.String())
		lo, hi := mode.window(n, width)
		return s[runeOffset(s, lo):runeOffset(s, hi)]
	}

	diff := width - n
	var b strings.Builder
	b.Grow(len(s) + diff)

	lead, trail := mode.split(diff)
	fill := sym.Byte()
	for i := 0; i < lead; i++ {
		b.WriteByte(fill)
	}
	b.WriteString(s)
	for i := 0; i < trail; i++ {
		b.WriteByte(fill)
	}
	return b.String()
}

// Slice pads src to exactly width elements. The result is always a freshly
// allocated slice of capacity width, even when truncating or when width
// equals len(src).
func Slice[E Element](src []E, width int, mode Alignment, sym Symbol) []E {
	if width < 0 {
		width = 0
	}
	return appendPadded(make([]E, 0, width), src, width, mode, sym)
}

// Append pads src exactly as Slice does and appends the result to dst,
// returning the extended slice. Existing dst content is never read or
// modified. This is the allocation-amortizing entry point: a caller that
// reuses dst across calls pays no per-call allocation beyond slice growth.
func Append[E Element](dst, src []E, width int, mode Alignment, sym Symbol) []E {
	if width < 0 {
		width = 0
	}
	return appendPadded(dst, src, width, mode, sym)
}

// AppendString pads s exactly as String does and appends the UTF-8 bytes of
// the result to dst, returning the extended slice.
func AppendString(dst []byte, s string, width int, mode Alignment, sym Symbol) []byte {
	if width < 0 {
		width = 0
	}
	n := utf8.RuneCountInString(s)
	if width < n {
		observability.Truncation().OnTruncate(n, width, mode.String())
		lo, hi := mode.window(n, width)
		return append(dst, s[runeOffset(s, lo):runeOffset(s, hi)]...)
	}

	lead, trail := mode.split(width - n)
	fill := sym.Byte()
	for i := 0; i < lead; i++ {
		dst = append(dst, fill)
	}
	dst = append(dst, s...)
	for i := 0; i < trail; i++ {
		dst = append(dst, fill)
	}
	return dst
}

// Whitespace pads s to width with spaces. Shorthand for String with
// SymbolWhitespace.
func Whitespace(s string, width int, mode Alignment) string {
	return String(s, width, mode, SymbolWhitespace)
}

// Zeros pads s to width with '0', typically right-aligned for numeric
// output. Shorthand for String with SymbolZero.
func Zeros(s string, width int, mode Alignment) string {
	return String(s, width, mode, SymbolZero)
}

// appendPadded is the one algorithm behind Slice and Append: truncate into
// a window, or fill lead elements, copy the source, fill trail elements.
func appendPadded[E Element](dst, src []E, width int, mode Alignment, sym Symbol) []E {
	if width < len(src) {
		observability.Truncation().OnTruncate(len(src), width, mode.String())
		lo, hi := mode.window(len(src), width)
		return append(dst, src[lo:hi]...)
	}

	lead, trail := mode.split(width - len(src))
	fill := E(sym.Byte())
	for i := 0; i < lead; i++ {
		dst = append(dst, fill)
	}
	dst = append(dst, src...)
	for i := 0; i < trail; i++ {
		dst = append(dst, fill)
	}
	return dst
}

// runeOffset returns the byte offset of the idx-th codepoint of s.
func runeOffset(s string, idx int) int {
	off := 0
	for ; idx > 0; idx-- {
		_, size := utf8.DecodeRuneInString(s[off:])
		off += size
	}
	return off
}
