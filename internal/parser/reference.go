package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/jinzhu/now"
	"github.com/markusmobius/go-dateparser"

	"github.com/manav03panchal/timex/civil"
)

// periodRegex matches "start of this week", "next month", "last year" and so on.
var periodRegex = regexp.MustCompile(`(?i)^(?:start\s+of\s+)?(this|current|next|last|previous)\s+(day|week|month|quarter|year)$`)

// ParseReference turns a --ref value into the civil date-time the resolver
// runs against. Empty input and "now" return now. Absolute layouts are tried
// first, then period phrases, then natural language in the given languages.
func ParseReference(input string, current time.Time, languages []string) (civil.DateTime, error) {
	input = strings.TrimSpace(input)
	if input == "" || strings.EqualFold(input, "now") {
		return civil.DateTimeOf(current), nil
	}

	if t, err := dateparse.ParseIn(input, time.UTC); err == nil {
		return civil.DateTimeOf(t), nil
	}

	if match := periodRegex.FindStringSubmatch(input); match != nil {
		return civil.DateTimeOf(periodStart(current, match[1], match[2])), nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: current,
		Languages:   languages,
	}
	result, err := dateparser.Parse(cfg, input)
	if err != nil || result.Time.IsZero() {
		return civil.DateTime{}, NewReferenceError(input)
	}
	return civil.DateTimeOf(result.Time), nil
}

// periodStart returns the first instant of the period the modifier names
// relative to current. Weeks start on Monday.
func periodStart(current time.Time, modifier, period string) time.Time {
	step := 0
	switch strings.ToLower(modifier) {
	case "next":
		step = 1
	case "last", "previous":
		step = -1
	}

	n := (&now.Config{WeekStartDay: time.Monday, TimeLocation: current.Location()}).With(current)
	switch strings.ToLower(period) {
	case "day":
		return n.BeginningOfDay().AddDate(0, 0, step)
	case "week":
		return n.BeginningOfWeek().AddDate(0, 0, 7*step)
	case "month":
		return n.BeginningOfMonth().AddDate(0, step, 0)
	case "quarter":
		return n.BeginningOfQuarter().AddDate(0, 3*step, 0)
	default:
		return n.BeginningOfYear().AddDate(step, 0, 0)
	}
}
