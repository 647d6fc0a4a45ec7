package timex

import (
	"sort"

	"github.com/manav03panchal/timex/civil"
)

// constraints is a parsed and classified constraint list.
type constraints struct {
	// dates are day windows; overlapping windows are intersected, the rest
	// are alternatives.
	dates []civil.DateRange
	// times are clock points that pin the time of a candidate.
	times []civil.Time
	// windows are clock windows, collapsed like dates.
	windows []civil.TimeRange
	// anchors are points that a duration candidate is added to.
	anchors []Timex
}

func classify(values []Timex) constraints {
	var c constraints
	for _, t := range values {
		types := t.Types()
		if types == 0 || types.Has(Present) {
			continue
		}

		switch {
		case types.Has(DateRange):
			c.dates = append(c.dates, DateRangeFromTimex(t))
		case types.Has(Definite):
			d, _ := t.Date()
			c.dates = append(c.dates, civil.DateRange{Start: d, End: d.AddDays(1)})
		}

		switch {
		case types.Has(TimeRange):
			if w, ok := windowOf(t); ok {
				c.windows = append(c.windows, w)
			}
		case types.Has(Time):
			c.times = append(c.times, TimeFromTimex(t))
			c.anchors = append(c.anchors, t)
		}
	}
	c.dates = collapse(c.dates)
	c.windows = collapse(c.windows)
	return c
}

// windowOf returns the clock window of a time-range constraint. A literal
// range whose ends fall on different days does not restrict the clock.
func windowOf(t Timex) (civil.TimeRange, bool) {
	if r, ok := t.Range(); ok {
		if r.Start.Types().Has(Date) && DateFromTimex(r.Start) != DateFromTimex(r.End) {
			return civil.TimeRange{}, false
		}
	}
	return TimeRangeFromTimex(t), true
}

// interval is a half-open range type such as civil.DateRange.
type interval[R any] interface {
	Overlaps(R) bool
	Intersect(R) R
}

// collapse repeatedly replaces two overlapping ranges with their
// intersection until no pair overlaps.
func collapse[R interval[R]](ranges []R) []R {
	rs := append([]R(nil), ranges...)
	for {
		merged := false
		for i := 0; i < len(rs) && !merged; i++ {
			for j := i + 1; j < len(rs); j++ {
				if rs[i].Overlaps(rs[j]) {
					rs[i] = rs[i].Intersect(rs[j])
					rs = append(rs[:j], rs[j+1:]...)
					merged = true
					break
				}
			}
		}
		if !merged {
			return rs
		}
	}
}

// Evaluate returns the values of candidates that satisfy every constraint.
//
// Date-range constraints (and definite dates) resolve year-less or weekday
// candidates to each matching day. A time-only candidate takes a date only
// from a single-day window and stays a time otherwise. Clock constraints pin the time of
// candidates; time-range constraints filter timed candidates and resolve
// parts of day to the start of the overlap. Duration candidates are added
// to each date-time or time constraint and are otherwise dropped.
//
// The result is deduplicated, sorted by canonical string and never nil.
func Evaluate(candidates, constraintTexts []string) []Timex {
	parsed := make([]Timex, 0, len(constraintTexts))
	for _, s := range constraintTexts {
		parsed = append(parsed, Parse(s))
	}
	c := classify(parsed)

	var results []Timex
	for _, s := range candidates {
		t := Parse(s)
		types := t.Types()
		switch {
		case types == 0 || types.Has(Present):
			continue
		case types == Duration:
			results = append(results, c.resolveDuration(t)...)
		default:
			results = append(results, c.resolve(t)...)
		}
	}
	return dedupe(results)
}

func (c constraints) resolveDuration(d Timex) []Timex {
	var out []Timex
	for _, a := range c.anchors {
		if a.Types().Has(DateTime) {
			out = append(out, DateTimeAdd(a, d))
		} else {
			out = append(out, TimeAdd(a, d))
		}
	}
	return out
}

func (c constraints) resolve(t Timex) []Timex {
	ts := []Timex{t}
	if len(c.dates) > 0 {
		ts = flatMap(ts, c.resolveDate)
	}
	if len(c.times) > 0 {
		ts = flatMap(ts, c.resolveTime)
	}
	if len(c.windows) > 0 {
		ts = flatMap(ts, c.resolveWindow)
	}
	return ts
}

func flatMap(ts []Timex, f func(Timex) []Timex) []Timex {
	var out []Timex
	for _, t := range ts {
		out = append(out, f(t)...)
	}
	return out
}

// resolveDate matches t against every date window.
func (c constraints) resolveDate(t Timex) []Timex {
	var out []Timex
	for _, r := range c.dates {
		out = append(out, resolveDateIn(t, r)...)
	}
	return out
}

func resolveDateIn(t Timex, r civil.DateRange) []Timex {
	if d, ok := t.Date(); ok {
		if r.Contains(d) {
			return []Timex{t}
		}
		return nil
	}

	var out []Timex
	switch {
	case t.month.set && t.dayOfMonth.set:
		for y := r.Start.Year; y <= r.End.Year; y++ {
			d := civil.Date{Year: y, Month: t.month.v, Day: t.dayOfMonth.v}
			if d.IsValid() && r.Contains(d) {
				out = append(out, t.withDate(d))
			}
		}
	case t.month.set && t.weekOfMonth.set && t.dayOfWeek.set:
		first, last := r.Start.Year, r.End.Year
		if t.year.set {
			first, last = t.year.v, t.year.v
		}
		for y := first; y <= last; y++ {
			d, ok := civil.NthWeekdayOfMonth(y, t.month.v, civil.Weekday(t.dayOfWeek.v), t.weekOfMonth.v)
			if ok && r.Contains(d) {
				out = append(out, t.withDate(d))
			}
		}
	case t.dayOfWeek.set:
		for _, d := range civil.DatesMatchingDay(civil.Weekday(t.dayOfWeek.v), r.Start, r.End) {
			out = append(out, t.withDate(d))
		}
	case t.Types().Has(DateRange):
		if DateRangeFromTimex(t).Overlaps(r) {
			out = append(out, t)
		}
	case t.hour.set || t.partOfDay != "":
		// Only a single-day window supplies a date; wider windows leave
		// the time untouched.
		if r.Start.AddDays(1) == r.End {
			return []Timex{t.withDate(r.Start)}
		}
		out = append(out, t)
	}
	return out
}

// resolveTime applies the clock constraints to t.
func (c constraints) resolveTime(t Timex) []Timex {
	types := t.Types()
	var out []Timex
	switch {
	case types.Has(Time) && !types.Has(TimeRange):
		clock := TimeFromTimex(t)
		for _, p := range c.times {
			if p == clock {
				return []Timex{t}
			}
		}
	case types.Has(TimeRange):
		w := TimeRangeFromTimex(t)
		for _, p := range c.times {
			if w.Contains(p) {
				out = append(out, t.withoutDuration().withClock(p))
			}
		}
	case types.Has(Date):
		for _, p := range c.times {
			out = append(out, t.withClock(p))
		}
	default:
		out = append(out, t)
	}
	return out
}

// resolveWindow applies the time-range constraints to t.
func (c constraints) resolveWindow(t Timex) []Timex {
	types := t.Types()
	var out []Timex
	switch {
	case types.Has(Time) && !types.Has(TimeRange):
		clock := TimeFromTimex(t)
		for _, w := range c.windows {
			if w.Contains(clock) {
				return []Timex{t}
			}
		}
	case types.Has(TimeRange):
		own := TimeRangeFromTimex(t)
		for _, w := range c.windows {
			if own.Overlaps(w) {
				out = append(out, t.withoutDuration().withClock(own.Intersect(w).Start))
			}
		}
	case types.Has(Date):
		for _, w := range c.windows {
			out = append(out, t.withClock(w.Start))
		}
	default:
		out = append(out, t)
	}
	return out
}

func dedupe(ts []Timex) []Timex {
	seen := make(map[string]Timex, len(ts))
	for _, t := range ts {
		seen[Format(t)] = t
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Timex, 0, len(keys))
	for _, k := range keys {
		out = append(out, seen[k])
	}
	return out
}
