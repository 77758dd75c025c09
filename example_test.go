package calc_test

import (
	"fmt"

	"github.com/zephyrtronium/calc"
)

func ExampleEvaluate() {
	r, _ := calc.Evaluate("2 + 3 * 4")
	fmt.Println(r)
	// Output: 14
}

func ExampleEvaluate_error() {
	_, err := calc.Evaluate("(1+2")
	fmt.Println(err)
	// Output: Mismatched parentheses were detected!
}

func ExampleToRPN() {
	tokens, _ := calc.Tokenize("2^3^2")
	rpn, _ := calc.ToRPN(tokens)
	fmt.Println(rpn)
	// Output: 2 3 2 ^ ^
}

func ExampleEvalRPN() {
	rpn := calc.Tokens{
		{Kind: calc.Number, Val: 1},
		{Kind: calc.Number, Val: 2},
		{Kind: calc.Add},
	}
	r, _ := calc.EvalRPN(rpn)
	fmt.Println(r)
	// Output: 3
}
