package calc

import (
	"strconv"
	"strings"
)

// TokenKind identifies the type of a lexical token.
type TokenKind int

const (
	// Number is a numeric literal.
	Number TokenKind = iota
	// Add is the binary addition operator.
	Add
	// Sub is the binary subtraction operator.
	Sub
	// Mul is the binary multiplication operator.
	Mul
	// Div is the binary division operator.
	Div
	// Exp is the binary exponentiation operator.
	Exp
	// LParen is an open parenthesis.
	LParen
	// RParen is a close parenthesis.
	RParen
)

func (k TokenKind) String() string {
	switch k {
	case Number:
		return "number"
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Exp:
		return "^"
	case LParen:
		return "("
	case RParen:
		return ")"
	}
	return "invalid"
}

// Token is one lexical element of an expression. Val is meaningful only
// when Kind is Number.
type Token struct {
	Kind TokenKind
	Val  float64
}

func (t Token) String() string {
	if t.Kind == Number {
		return strconv.FormatFloat(t.Val, 'g', -1, 64)
	}
	return t.Kind.String()
}

// Tokens is an ordered token sequence, either the infix form produced by
// Tokenize or the postfix form produced by ToRPN.
type Tokens []Token

func (ts Tokens) String() string {
	var b strings.Builder
	for i, t := range ts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}

// symbols maps each operator and parenthesis rune to its token. Runes
// outside this map are never emitted as operator tokens.
var symbols = map[rune]Token{
	'+': {Kind: Add},
	'-': {Kind: Sub},
	'*': {Kind: Mul},
	'/': {Kind: Div},
	'^': {Kind: Exp},
	'(': {Kind: LParen},
	')': {Kind: RParen},
}

// precedence maps each binary operator to its binding strength.
var precedence = map[TokenKind]int{
	Add: 0,
	Sub: 0,
	Mul: 1,
	Div: 1,
	Exp: 2,
}

// leftAssoc reports whether k groups left to right. Exp is the only
// right-associative operator.
func leftAssoc(k TokenKind) bool {
	return k != Exp
}
