package parser

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/timex/internal/errors"
)

func TestParseExpression(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		for _, s := range ExpressionExamples {
			got, err := ParseExpression(s)
			require.NoError(t, err, s)
			assert.Equal(t, s, got.String())
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, s := range []string{"", "banana", "2017-W"} {
			_, err := ParseExpression(s)
			require.Error(t, err, s)
			assert.True(t, stderrors.Is(err, errors.ErrInvalidTimex))
		}
	})
}

func TestParseExpressions(t *testing.T) {
	got, err := ParseExpressions([]string{"T17", "P3D"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = ParseExpressions([]string{"T17", "nope", "P3D"})
	var pe *TimeParseError
	require.True(t, stderrors.As(err, &pe))
	assert.Equal(t, "nope", pe.Input)
}
