package calc

// EvaluationError classifies a pipeline failure. The set is closed:
// every stage reports one of these values and no stage wraps or
// translates another stage's error. OK is the zero value and is never
// returned as a non-nil error.
type EvaluationError int

const (
	// OK indicates success.
	OK EvaluationError = iota
	// InvalidCharacters indicates a letter in the expression.
	InvalidCharacters
	// UnknownOperator indicates a symbol outside the recognized set.
	UnknownOperator
	// MismatchedParentheses indicates an unbalanced parenthesis.
	MismatchedParentheses
	// TooManyInputs indicates a leftover operand after evaluation.
	TooManyInputs
	// NotEnoughInputs indicates an operator short of operands.
	NotEnoughInputs
)

// String returns the fixed human-readable description of e. Values
// outside the taxonomy map to a generic description.
func (e EvaluationError) String() string {
	switch e {
	case OK:
		return "OK"
	case InvalidCharacters:
		return "Invalid characters were detected in the expression."
	case UnknownOperator:
		return "An unknown operator was supplied."
	case MismatchedParentheses:
		return "Mismatched parentheses were detected!"
	case TooManyInputs:
		return "Too many inputs for a given operation were supplied, e.g. 1 3 + 4"
	case NotEnoughInputs:
		return "Not enough inputs for the given expression, e.g. 1 - 2 +"
	}
	return "Invalid EvaluationError supplied!"
}

func (e EvaluationError) Error() string {
	return e.String()
}
