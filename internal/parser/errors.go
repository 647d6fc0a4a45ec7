package parser

import (
	"fmt"
	"strings"

	"github.com/manav03panchal/timex/internal/errors"
)

// TimeParseError describes input that could not be parsed, with examples of
// what would have worked.
type TimeParseError struct {
	Input      string
	Field      string
	Message    string
	Examples   []string
	Suggestion string
	Cause      error
}

func (e *TimeParseError) Error() string {
	return fmt.Sprintf("invalid %s '%s': %s", e.Field, e.Input, e.Message)
}

// Unwrap returns the sentinel the error belongs to.
func (e *TimeParseError) Unwrap() error {
	return e.Cause
}

// NewTimeParseError creates a new time parse error with examples.
func NewTimeParseError(field, input, message string, examples ...string) *TimeParseError {
	return &TimeParseError{
		Input:    input,
		Field:    field,
		Message:  message,
		Examples: examples,
	}
}

// FormatWithExamples returns the error message followed by examples and the
// suggestion, one per line.
func (e *TimeParseError) FormatWithExamples() string {
	var sb strings.Builder
	sb.WriteString(e.Error())

	if len(e.Examples) > 0 {
		sb.WriteString("\n\nValid examples:\n")
		for _, ex := range e.Examples {
			sb.WriteString("  - ")
			sb.WriteString(ex)
			sb.WriteString("\n")
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Suggestion)
	}

	return sb.String()
}

// ReferenceExamples lists accepted --ref values.
var ReferenceExamples = []string{
	"2017-09-26T15:30:00",
	"2017/09/26 3pm",
	"next friday 9am",
	"tomorrow",
	"start of next week",
	"now",
}

// ExpressionExamples lists TIMEX expressions of each shape.
var ExpressionExamples = []string{
	"2017-09-27",
	"XXXX-WXX-3",
	"T19:30",
	"P2D",
	"2017-W39",
	"(T14,T18,PT4H)",
	"XXXX-05-WXX-1-3",
}

// NewReferenceError creates the error returned for an unusable --ref.
func NewReferenceError(input string) *TimeParseError {
	return &TimeParseError{
		Input:      input,
		Field:      "reference",
		Message:    "could not parse reference time",
		Examples:   ReferenceExamples,
		Suggestion: "Give an absolute date-time or a phrase like 'next friday 9am'.",
		Cause:      errors.ErrInvalidReference,
	}
}

// NewExpressionError creates the error returned for text that is not a
// TIMEX expression.
func NewExpressionError(input string) *TimeParseError {
	return &TimeParseError{
		Input:      input,
		Field:      "expression",
		Message:    "not a TIMEX expression",
		Examples:   ExpressionExamples,
		Suggestion: "Dates use XXXX for unknown years; times start with T; durations start with P.",
		Cause:      errors.ErrInvalidTimex,
	}
}

// ToUserError converts e to a UserError for display.
func (e *TimeParseError) ToUserError() *errors.UserError {
	suggestion := e.Suggestion
	if len(e.Examples) > 0 && suggestion == "" {
		suggestion = fmt.Sprintf("Try: %s", strings.Join(e.Examples[:min(3, len(e.Examples))], ", "))
	}

	ue := errors.NewUserErrorWithField(e.Field, e.Input, e.Message, suggestion)
	ue.Cause = e.Cause
	return ue
}
