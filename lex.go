package calc

import (
	"strconv"
	"unicode"
)

// Tokenize scans an expression into its token sequence. The scan is a
// two-state machine: outside a number it skips spaces, emits operator
// and parenthesis tokens, and switches into number scanning on a digit,
// a decimal point, or a - whose very next rune is a digit; inside a
// number it accumulates runes until a space or operator rune ends the
// run. Any letter fails with InvalidCharacters in either state, and any
// other unrecognized rune outside a number fails with UnknownOperator.
func Tokenize(text string) (Tokens, error) {
	var tokens Tokens
	rs := []rune(text)
	start := 0
	number := false
	for i, r := range rs {
		if unicode.IsLetter(r) {
			return nil, InvalidCharacters
		}
		op, isOp := symbols[r]
		isSpace := unicode.IsSpace(r)
		if !number {
			switch {
			case unicode.IsDigit(r), r == '.',
				isOp && op.Kind == Sub && i+1 < len(rs) && unicode.IsDigit(rs[i+1]):
				number = true
				start = i
			case isOp:
				tokens = append(tokens, op)
			case isSpace:
				// separator
			default:
				return nil, UnknownOperator
			}
			continue
		}
		if isSpace || isOp {
			number = false
			tokens = append(tokens, numberToken(string(rs[start:i])))
			if isOp {
				tokens = append(tokens, op)
			}
		}
	}
	// A number run still open at end of text is flushed as the final token.
	if number {
		tokens = append(tokens, numberToken(string(rs[start:])))
	}
	return tokens, nil
}

// numberToken decodes an accumulated run as a decimal literal. A run
// that fails to decode becomes 0; there is no invalid-number error in
// the taxonomy.
func numberToken(run string) Token {
	v, _ := strconv.ParseFloat(run, 64)
	return Token{Kind: Number, Val: v}
}
