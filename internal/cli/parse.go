package cli

import (
	"strings"

	"github.com/evhall/padder/pkg/errors"
	"github.com/evhall/padder/pkg/pad"
)

// alignments maps flag and layout-file names onto engine alignments. The
// engine itself never parses text; this is the textual boundary.
var alignments = map[string]pad.Alignment{
	"left":   pad.AlignLeft,
	"right":  pad.AlignRight,
	"center": pad.AlignCenter,
}

// symbols maps flag and layout-file names onto engine symbols. Digits are
// accepted both by name ("zero") and literally ("0").
var symbols = map[string]pad.Symbol{
	"whitespace": pad.SymbolWhitespace,
	"space":      pad.SymbolWhitespace,
	"zero":       pad.SymbolZero,
	"one":        pad.SymbolOne,
	"two":        pad.SymbolTwo,
	"three":      pad.SymbolThree,
	"four":       pad.SymbolFour,
	"five":       pad.SymbolFive,
	"six":        pad.SymbolSix,
	"seven":      pad.SymbolSeven,
	"eight":      pad.SymbolEight,
	"nine":       pad.SymbolNine,
	"hyphen":     pad.SymbolHyphen,
	"underscore": pad.SymbolUnderscore,
	"dot":        pad.SymbolDot,
	"comma":      pad.SymbolComma,
	"colon":      pad.SymbolColon,
	"semicolon":  pad.SymbolSemicolon,
}

// parseAlignment maps a textual alignment name onto a pad.Alignment.
// The empty string selects the engine default (right).
func parseAlignment(name string) (pad.Alignment, error) {
	if name == "" {
		return pad.AlignRight, nil
	}
	if a, ok := alignments[strings.ToLower(name)]; ok {
		return a, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidAlignment,
		"unknown alignment %q (valid: left, right, center)", name)
}

// parseSymbol maps a textual symbol name onto a pad.Symbol.
// The empty string selects the engine default (whitespace).
func parseSymbol(name string) (pad.Symbol, error) {
	if name == "" {
		return pad.SymbolWhitespace, nil
	}
	lower := strings.ToLower(name)
	if s, ok := symbols[lower]; ok {
		return s, nil
	}
	if len(lower) == 1 && lower[0] >= '0' && lower[0] <= '9' {
		return pad.SymbolZero + pad.Symbol(lower[0]-'0'), nil
	}
	return 0, errors.New(errors.ErrCodeInvalidSymbol,
		"unknown symbol %q (valid: %s)", name, strings.Join(symbolNames(), ", "))
}

// symbolNames lists every catalog symbol name in declaration order, for
// error messages and the symbols command.
func symbolNames() []string {
	names := make([]string, 0, len(pad.Symbols()))
	for _, s := range pad.Symbols() {
		names = append(names, s.String())
	}
	return names
}
