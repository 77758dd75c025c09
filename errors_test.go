package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluationErrorString(t *testing.T) {
	cases := map[EvaluationError]string{
		OK:                    "OK",
		InvalidCharacters:     "Invalid characters were detected in the expression.",
		UnknownOperator:       "An unknown operator was supplied.",
		MismatchedParentheses: "Mismatched parentheses were detected!",
		TooManyInputs:         "Too many inputs for a given operation were supplied, e.g. 1 3 + 4",
		NotEnoughInputs:       "Not enough inputs for the given expression, e.g. 1 - 2 +",
	}
	for e, want := range cases {
		assert.Equal(t, want, e.String())
		assert.Equal(t, want, e.Error())
	}

	// Values outside the taxonomy map to the generic description.
	assert.Equal(t, "Invalid EvaluationError supplied!", EvaluationError(42).String())
	assert.Equal(t, "Invalid EvaluationError supplied!", EvaluationError(-1).String())
}
