package parser

import (
	"github.com/manav03panchal/timex/timex"
)

// ParseExpression parses s as a TIMEX expression and rejects text that
// matches no shape in the grammar.
func ParseExpression(s string) (timex.Timex, error) {
	t := timex.Parse(s)
	if t.IsEmpty() {
		return t, NewExpressionError(s)
	}
	return t, nil
}

// ParseExpressions parses every input, stopping at the first invalid one.
func ParseExpressions(inputs []string) ([]timex.Timex, error) {
	out := make([]timex.Timex, 0, len(inputs))
	for _, s := range inputs {
		t, err := ParseExpression(s)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
