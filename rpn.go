package calc

// ToRPN reorders an infix token sequence into reverse Polish notation
// using the shunting-yard algorithm. Numbers pass straight through;
// operators wait on an auxiliary stack until an incoming operator of
// low enough precedence, a close parenthesis, or the end of the input
// moves them to the output. The stack stays precedence-ordered, so one
// top-of-stack comparison per step suffices.
func ToRPN(tokens Tokens) (Tokens, error) {
	rpn := make(Tokens, 0, len(tokens))
	var ops Tokens
	for _, t := range tokens {
		switch t.Kind {
		case Number:
			rpn = append(rpn, t)
		case LParen:
			ops = append(ops, t)
		case RParen:
			found := false
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.Kind == LParen {
					found = true
					break
				}
				rpn = append(rpn, top)
			}
			if !found {
				return nil, MismatchedParentheses
			}
		default:
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.Kind == LParen || !yields(t.Kind, top.Kind) {
					break
				}
				rpn = append(rpn, top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, t)
		}
	}
	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.Kind == LParen {
			// Unbalanced open parenthesis.
			return nil, MismatchedParentheses
		}
		rpn = append(rpn, top)
	}
	return rpn, nil
}

// yields reports whether an incoming operator must move the stack top to
// the output before being pushed. Left-associative operators yield to
// equal or higher precedence, right-associative ones only to strictly
// higher, which makes equal-precedence ^ group right to left.
func yields(in, top TokenKind) bool {
	if leftAssoc(in) {
		return precedence[in] <= precedence[top]
	}
	return precedence[in] < precedence[top]
}
