package calc

import "math"

// EvalRPN reduces a postfix token sequence to a single value on an
// operand stack. Numbers push their value; an operator pops its right
// operand, then its left, and pushes the combined result. Fewer than
// two operands available for an operator fails with NotEnoughInputs.
// Exactly one value must remain at the end: a leftover operand fails
// with TooManyInputs, and an empty sequence fails with NotEnoughInputs.
//
// Division by zero and 0^0 are not errors; they follow IEEE semantics
// and the resulting Inf or NaN propagates as the value.
func EvalRPN(rpn Tokens) (float64, error) {
	stack := make([]float64, 0, len(rpn))
	for _, t := range rpn {
		if t.Kind == Number {
			stack = append(stack, t.Val)
			continue
		}
		if len(stack) < 2 {
			return 0, NotEnoughInputs
		}
		right := stack[len(stack)-1]
		left := stack[len(stack)-2]
		stack = stack[:len(stack)-2]
		var v float64
		switch t.Kind {
		case Add:
			v = left + right
		case Sub:
			v = left - right
		case Mul:
			v = left * right
		case Div:
			v = left / right
		case Exp:
			v = math.Pow(left, right)
		}
		stack = append(stack, v)
	}
	switch len(stack) {
	case 1:
		return stack[0], nil
	case 0:
		return 0, NotEnoughInputs
	}
	return 0, TooManyInputs
}

// Evaluate runs the whole pipeline on an expression: Tokenize, ToRPN,
// EvalRPN. The first stage to fail aborts the pipeline and its error is
// returned unchanged. Evaluate keeps no state between calls and is safe
// for concurrent use.
func Evaluate(expression string) (float64, error) {
	tokens, err := Tokenize(expression)
	if err != nil {
		return 0, err
	}
	log.WithField("tokens", tokens.String()).Debugf("[%s]: tokenized %q", TAG, expression)
	rpn, err := ToRPN(tokens)
	if err != nil {
		return 0, err
	}
	log.WithField("rpn", rpn.String()).Debugf("[%s]: converted to postfix", TAG)
	v, err := EvalRPN(rpn)
	if err != nil {
		return 0, err
	}
	log.Debugf("[%s]: %q = %g", TAG, expression, v)
	return v, nil
}
