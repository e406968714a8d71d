package pad

// Symbol is a fill element drawn from a closed catalog. Every symbol maps
// to exactly one element; conversions are total and never fail.
type Symbol int

const (
	// SymbolWhitespace is the space character. This is the zero value and
	// the default symbol.
	SymbolWhitespace Symbol = iota

	// SymbolZero through SymbolNine are the ten decimal digits.
	SymbolZero
	SymbolOne
	SymbolTwo
	SymbolThree
	SymbolFour
	SymbolFive
	SymbolSix
	SymbolSeven
	SymbolEight
	SymbolNine

	// SymbolHyphen is '-'.
	SymbolHyphen
	// SymbolUnderscore is '_'.
	SymbolUnderscore
	// SymbolDot is '.'.
	SymbolDot
	// SymbolComma is ','.
	SymbolComma
	// SymbolColon is ':'.
	SymbolColon
	// SymbolSemicolon is ';'.
	SymbolSemicolon
)

// Symbols lists every symbol in the catalog, in declaration order.
func Symbols() []Symbol {
	return []Symbol{
		SymbolWhitespace,
		SymbolZero, SymbolOne, SymbolTwo, SymbolThree, SymbolFour,
		SymbolFive, SymbolSix, SymbolSeven, SymbolEight, SymbolNine,
		SymbolHyphen, SymbolUnderscore,
		SymbolDot, SymbolComma, SymbolColon, SymbolSemicolon,
	}
}

// Byte returns the symbol as a single byte. All catalog symbols are ASCII.
func (s Symbol) Byte() byte {
	if s >= SymbolZero && s <= SymbolNine {
		return '0' + byte(s-SymbolZero)
	}
	switch s {
	case SymbolHyphen:
		return '-'
	case SymbolUnderscore:
		return '_'
	case SymbolDot:
		return '.'
	case SymbolComma:
		return ','
	case SymbolColon:
		return ':'
	case SymbolSemicolon:
		return ';'
	default:
		return ' '
	}
}

// Rune returns the symbol as a single rune.
func (s Symbol) Rune() rune {
	return rune(s.Byte())
}

// Bytes returns a one-element byte slice containing the symbol.
func (s Symbol) Bytes() []byte {
	return []byte{s.Byte()}
}

// Runes returns a one-element rune slice containing the symbol.
func (s Symbol) Runes() []rune {
	return []rune{s.Rune()}
}

// String returns the lowercase name of the symbol.
func (s Symbol) String() string {
	if s >= SymbolZero && s <= SymbolNine {
		return [...]string{
			"zero", "one", "two", "three", "four",
			"five", "six", "seven", "eight", "nine",
		}[s-SymbolZero]
	}
	switch s {
	case SymbolHyphen:
		return "hyphen"
	case SymbolUnderscore:
		return "underscore"
	case SymbolDot:
		return "dot"
	case SymbolComma:
		return "comma"
	case SymbolColon:
		return "colon"
	case SymbolSemicolon:
		return "semicolon"
	default:
		return "whitespace"
	}
}
