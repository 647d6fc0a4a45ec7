// Package scheduler turns TIMEX recurrences into cron schedules and lists
// their occurrences.
package scheduler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/manav03panchal/timex/civil"
	"github.com/manav03panchal/timex/timex"
)

// ErrNoCronForm is returned for recurrences cron cannot express.
var ErrNoCronForm = errors.New("recurrence has no cron form")

// Specs carry a seconds field, like cron.WithSeconds.
var specParser = cron.NewParser(
	cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// Schedule is a recurrence with its cron form.
type Schedule struct {
	Set  timex.Set
	Spec string

	cron cron.Schedule
}

// New builds the schedule for set.
func New(set timex.Set) (*Schedule, error) {
	spec, err := Spec(set)
	if err != nil {
		return nil, err
	}
	sched, err := specParser.Parse(spec)
	if err != nil {
		return nil, fmt.Errorf("failed to parse cron spec %q: %w", spec, err)
	}
	return &Schedule{Set: set, Spec: spec, cron: sched}, nil
}

// Next returns the first occurrence strictly after after.
func (s *Schedule) Next(after civil.DateTime) civil.DateTime {
	return civil.DateTimeOf(s.cron.Next(after.ToTime()))
}

// Occurrences returns the next n occurrences after after, in order.
func (s *Schedule) Occurrences(after civil.DateTime, n int) []civil.DateTime {
	out := make([]civil.DateTime, 0, n)
	t := after.ToTime()
	for range n {
		t = s.cron.Next(t)
		if t.IsZero() {
			break
		}
		out = append(out, civil.DateTimeOf(t))
	}
	return out
}

// Spec returns the six-field cron spec for set. Durations become "@every"
// descriptors; other values fire at the start of each match.
func Spec(set timex.Set) (string, error) {
	t := set.Timex
	switch {
	case t.IsEmpty():
		return "", fmt.Errorf("%w: empty expression", ErrNoCronForm)
	case t.Types() == timex.Duration:
		return everySpec(t)
	}

	if err := checkRepeatable(t); err != nil {
		return "", err
	}

	second, minute, hour := 0, 0, 0
	if c, ok := t.Clock(); ok {
		second, minute, hour = c.Second, c.Minute, c.Hour
	} else if t.PartOfDay() != "" {
		hour = timex.TimeRangeFromTimex(t).Start.Hour
	}

	dom, month, dow := "*", "*", "*"
	if d, ok := t.DayOfMonth(); ok {
		dom = strconv.Itoa(d)
	}
	if m, ok := t.Month(); ok {
		month = strconv.Itoa(m)
	}
	if w, ok := t.DayOfWeek(); ok {
		if dom != "*" {
			// cron ORs day-of-month and day-of-week
			return "", fmt.Errorf("%w: %s fixes both day of month and weekday", ErrNoCronForm, t)
		}
		dow = strconv.Itoa(int(w.Std()))
	} else if month != "*" && dom == "*" {
		dom = "1"
	}

	return strings.Join([]string{
		strconv.Itoa(second), strconv.Itoa(minute), strconv.Itoa(hour), dom, month, dow,
	}, " "), nil
}

func checkRepeatable(t timex.Timex) error {
	if _, ok := t.Range(); ok {
		return fmt.Errorf("%w: %s is a range", ErrNoCronForm, t)
	}
	if _, ok := t.Year(); ok {
		return fmt.Errorf("%w: %s names a single year", ErrNoCronForm, t)
	}
	_, okWeek := t.WeekOfYear()
	_, okWeekOfMonth := t.WeekOfMonth()
	if okWeek || okWeekOfMonth || t.Season() != "" || t.Weekend() {
		return fmt.Errorf("%w: %s repeats on a calendar cron cannot count", ErrNoCronForm, t)
	}
	if t.Now() {
		return fmt.Errorf("%w: the present does not repeat", ErrNoCronForm)
	}
	return nil
}

func everySpec(t timex.Timex) (string, error) {
	if v, ok := t.Years(); ok && v != 0 {
		return "", fmt.Errorf("%w: years vary in length", ErrNoCronForm)
	}
	if v, ok := t.Months(); ok && v != 0 {
		return "", fmt.Errorf("%w: months vary in length", ErrNoCronForm)
	}
	d := time.Duration(timex.DurationSeconds(t) * float64(time.Second)).Round(time.Second)
	if d < time.Second {
		return "", fmt.Errorf("%w: %s is shorter than a second", ErrNoCronForm, t)
	}
	return "@every " + d.String(), nil
}
