// Package pkg provides the core libraries for the padder tool.
//
// # Overview
//
// Padder pads and truncates sequences to fixed widths with a single
// allocation per operation. The pkg directory is organized into four areas:
//
//  1. [pad] - The engine: alignment policy, fill symbol catalog, padding,
//     slice-to-fit truncation, and buffer-append variants
//  2. [errors] - Structured errors for the textual boundary (flags, layouts)
//  3. [observability] - Hooks surfacing silent truncations to a diagnostic layer
//  4. [buildinfo] - Build-time version information
//
// # Architecture
//
// Data flows one direction only:
//
//	caller (source, width, alignment, symbol)
//	         ↓
//	    [pad] alignment split / symbol conversion
//	         ↓
//	    [pad] single-allocation padding, or slice-to-fit windowing
//	         ↓
//	    returned output, or append into a caller-owned buffer
//
// The engine has no error conditions: every width is handled by either the
// padding or the truncation branch. Errors exist only where textual
// configuration is mapped onto engine types, outside pkg/pad.
//
// # Quick Start
//
//	import "github.com/evhall/padder/pkg/pad"
//
//	pad.String("9184", 8, pad.AlignRight, pad.SymbolZero) // "00009184"
//
//	line := make([]byte, 0, 256)
//	line = pad.AppendString(line, "hej", 6, pad.AlignLeft, pad.SymbolWhitespace)
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test -run Example ./pkg/pad # Examples only
//	go test -bench=. ./pkg/pad     # Benchmarks vs fmt.Sprintf
//
// [pad]: https://pkg.go.dev/github.com/evhall/padder/pkg/pad
// [errors]: https://pkg.go.dev/github.com/evhall/padder/pkg/errors
// [observability]: https://pkg.go.dev/github.com/evhall/padder/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/evhall/padder/pkg/buildinfo
package pkg
