package wmf

import "unicode"

// symbolChars are the punctuation characters that can carry markup
// meaning. Together with space and newline they form the special set that
// terminates a plain-text run. The closing parenthesis is included so a
// malformed icon like (unknown) decomposes into literal characters.
const symbolChars = "_+-*^~|[]{}()!&\\"

func isSymbolChar(c byte) bool {
	for i := 0; i < len(symbolChars); i++ {
		if symbolChars[i] == c {
			return true
		}
	}
	return false
}

func isSpecialRune(r rune) bool {
	if r == ' ' || r == '\n' {
		return true
	}
	return r < 0x80 && isSymbolChar(byte(r))
}

func isAlphaNum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// escapable reports whether r may follow a backslash escape. Escapes
// accept any punctuation-like rune; the symbol set spans both the Unicode
// punctuation and symbol categories.
func escapable(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

// admissibleSymbol applies the context exclusions for a bare symbol
// character: '|' is a cell separator inside tables, and '|' and ']'
// terminate link aliases.
func admissibleSymbol(c byte, ctx parseContext) bool {
	if !isSymbolChar(c) {
		return false
	}
	if ctx.inTable && c == '|' {
		return false
	}
	if ctx.inLink && (c == '|' || c == ']') {
		return false
	}
	return true
}
