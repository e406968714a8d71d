// Package pad provides single-allocation padding and truncation of
// sequences: strings, byte slices, and rune slices.
//
// # Overview
//
// Given a source sequence, a target width, an alignment, and a fill symbol,
// the package produces a new sequence of exactly the target width. Sources
// longer than the target are deterministically sliced to fit instead of
// failing. Every operation allocates at most once for its result, which
// makes the package a faster alternative to fmt-based width formatting in
// hot paths.
//
// # Basic Usage
//
// Pad a string to a fixed width:
//
//	pad.String("hej", 6, pad.AlignLeft, pad.SymbolWhitespace)   // "hej   "
//	pad.String("9184", 8, pad.AlignRight, pad.SymbolZero)       // "00009184"
//	pad.String("hejjj", 9, pad.AlignCenter, pad.SymbolWhitespace) // "  hejjj  "
//
// When the width is smaller than the source, the result is a contiguous
// window of the source selected by the alignment:
//
//	pad.String("kappa", 3, pad.AlignCenter, pad.SymbolWhitespace) // "app"
//
// # Buffers
//
// The Append variants write into a caller-owned buffer, amortizing
// allocations across repeated calls:
//
//	line := make([]byte, 0, 256)
//	for _, f := range fields {
//		line = pad.AppendString(line, f, 10, pad.AlignLeft, pad.SymbolWhitespace)
//	}
//
// Append only ever extends the buffer; it never reads, truncates, or clears
// existing content. Concurrent use of one buffer must be serialized by the
// caller.
//
// # Elements
//
// Alignment counts elements, not visual width: codepoints for strings,
// slice elements otherwise. Grapheme clusters and double-width glyphs are
// out of scope.
package pad
