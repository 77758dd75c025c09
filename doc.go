// Package calc implements a small floating-point expression calculator.
//
// An expression is evaluated in three stages: the text is tokenized, the
// token sequence is converted to reverse Polish notation with the
// shunting-yard algorithm, and the postfix sequence is reduced on an
// operand stack. Evaluate runs the whole pipeline; each stage is also
// exported so callers can inspect the intermediate forms.
//
// The recognized operators are +, -, *, / and ^, with the usual
// precedence. ^ is right-associative, so "2^3^2" is 2^(3^2). A - starts
// a negative literal when the very next character is a digit and is the
// subtraction operator otherwise.
//
// Failures are classified by the closed EvaluationError set. The first
// stage to fail aborts the pipeline and its error reaches the caller
// unchanged.
package calc
