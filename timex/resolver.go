package timex

import (
	"strconv"

	"github.com/manav03panchal/timex/civil"
)

// NotResolved is the value of an entry whose shape cannot be anchored.
const NotResolved = "not resolved"

// Resolution entry types.
const (
	TypeDate          = "date"
	TypeTime          = "time"
	TypeDateRange     = "daterange"
	TypeTimeRange     = "timerange"
	TypeDateTime      = "datetime"
	TypeDateTimeRange = "datetimerange"
	TypeDuration      = "duration"
)

// ResolutionValue is one concrete reading of a TIMEX string. Points set
// Value; ranges set Start and End.
type ResolutionValue struct {
	Timex string `json:"timex"`
	Type  string `json:"type"`
	Value string `json:"value,omitempty"`
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// Resolution is the output of Resolve.
type Resolution struct {
	Values []ResolutionValue `json:"values"`
}

// maxYearSearch bounds the search for a year holding a month-day, which
// for February 29th can be eight years away.
const maxYearSearch = 8

// Resolve turns each TIMEX string into concrete civil values relative to
// ref. Recurring values produce the nearest occurrence strictly before and
// strictly after ref's date.
func Resolve(timexes []string, ref civil.DateTime) Resolution {
	res := Resolution{Values: []ResolutionValue{}}
	for _, s := range timexes {
		res.Values = append(res.Values, resolveOne(s, Parse(s), ref)...)
	}
	return res
}

func resolveOne(s string, t Timex, ref civil.DateTime) []ResolutionValue {
	types := t.Types()
	switch {
	case types.Has(Present):
		return []ResolutionValue{{Timex: s, Type: TypeDateTime, Value: ref.String()}}
	case types.Has(DateTimeRange):
		return resolveDateTimeRange(s, t, ref.Date)
	case types.Has(Definite) && types.Has(Time):
		d, _ := t.Date()
		return []ResolutionValue{{Timex: s, Type: TypeDateTime, Value: dateTimeValue(d, t)}}
	case types.Has(DateRange):
		return resolveDateRange(s, t, ref.Date)
	case types.Has(Definite):
		d, _ := t.Date()
		return []ResolutionValue{{Timex: s, Type: TypeDate, Value: d.String()}}
	case types.Has(TimeRange):
		return resolveTimeRange(s, t)
	case types.Has(DateTime):
		var out []ResolutionValue
		for _, d := range occurrences(t, ref.Date) {
			out = append(out, ResolutionValue{Timex: s, Type: TypeDateTime, Value: dateTimeValue(d, t)})
		}
		return out
	case types.Has(Duration):
		return []ResolutionValue{{Timex: s, Type: TypeDuration, Value: secondsValue(t)}}
	case types.Has(Date):
		var out []ResolutionValue
		for _, d := range occurrences(t, ref.Date) {
			out = append(out, ResolutionValue{Timex: s, Type: TypeDate, Value: d.String()})
		}
		return out
	case types.Has(Time):
		return []ResolutionValue{{Timex: s, Type: TypeTime, Value: TimeFromTimex(t).String()}}
	}
	return nil
}

func dateTimeValue(d civil.Date, t Timex) string {
	return civil.DateTime{Date: d, Time: TimeFromTimex(t)}.String()
}

func secondsValue(t Timex) string {
	return strconv.FormatFloat(DurationSeconds(t), 'f', -1, 64)
}

func notResolved(s, typ string) []ResolutionValue {
	return []ResolutionValue{{Timex: s, Type: typ, Value: NotResolved}}
}

// occurrences returns the dates a date value stands for: the date itself
// when definite, otherwise the last and next occurrence around ref.
func occurrences(t Timex, ref civil.Date) []civil.Date {
	if d, ok := t.Date(); ok {
		return []civil.Date{d}
	}
	switch {
	case t.month.set && t.dayOfMonth.set:
		return bracket(ref, func(y int) (civil.Date, bool) {
			d := civil.Date{Year: y, Month: t.month.v, Day: t.dayOfMonth.v}
			return d, d.IsValid()
		})
	case t.month.set && t.weekOfMonth.set && t.dayOfWeek.set:
		w := civil.Weekday(t.dayOfWeek.v)
		years := []int{ref.Year - 1, ref.Year + 1}
		if t.year.set {
			years = []int{t.year.v}
		}
		var out []civil.Date
		for _, y := range years {
			if d, ok := civil.NthWeekdayOfMonth(y, t.month.v, w, t.weekOfMonth.v); ok {
				out = append(out, d)
			}
		}
		return out
	case t.dayOfWeek.set:
		w := civil.Weekday(t.dayOfWeek.v)
		return []civil.Date{civil.DateOfLastDay(w, ref), civil.DateOfNextDay(w, ref)}
	}
	return nil
}

// bracket returns the latest date strictly before ref and the earliest
// strictly after it, searching year by year through inYear.
func bracket(ref civil.Date, inYear func(year int) (civil.Date, bool)) []civil.Date {
	var out []civil.Date
	for y := ref.Year; y >= ref.Year-maxYearSearch; y-- {
		if d, ok := inYear(y); ok && d.Before(ref) {
			out = append(out, d)
			break
		}
	}
	for y := ref.Year; y <= ref.Year+maxYearSearch; y++ {
		if d, ok := inYear(y); ok && d.After(ref) {
			out = append(out, d)
			break
		}
	}
	return out
}

func resolveDateRange(s string, t Timex, ref civil.Date) []ResolutionValue {
	if t.season != "" && !t.year.set {
		return notResolved(s, TypeDateRange)
	}
	if t.rng != nil || t.hasDuration() {
		var out []ResolutionValue
		for _, e := range anchoredExpansions(t, ref) {
			out = append(out, ResolutionValue{
				Timex: s,
				Type:  TypeDateRange,
				Start: DateFromTimex(e.Start).String(),
				End:   DateFromTimex(e.End).String(),
			})
		}
		if len(out) == 0 {
			return notResolved(s, TypeDateRange)
		}
		return out
	}
	if r, ok := calendarSpan(t); ok {
		return []ResolutionValue{dateRangeValue(s, r)}
	}
	if t.month.set {
		// Year-less month or week of month: the occurrence that has
		// started most recently and the one after it.
		y := ref.Year
		r, _ := calendarSpan(t.Edit().Year(y).Build())
		if r.Start.After(ref) {
			y--
		}
		var out []ResolutionValue
		for _, year := range []int{y, y + 1} {
			r, _ := calendarSpan(t.Edit().Year(year).Build())
			out = append(out, dateRangeValue(s, r))
		}
		return out
	}
	return notResolved(s, TypeDateRange)
}

func dateRangeValue(s string, r civil.DateRange) ResolutionValue {
	return ResolutionValue{Timex: s, Type: TypeDateRange, Start: r.Start.String(), End: r.End.String()}
}

// anchoredExpansions expands a range whose start may be recurring. Each
// occurrence of the start is shifted by the range's duration.
func anchoredExpansions(t Timex, ref civil.Date) []Expansion {
	e := ExpandDateTimeRange(t)
	if _, ok := e.Start.Date(); ok || !e.Start.Types().Has(Date) {
		return []Expansion{e}
	}
	var out []Expansion
	for _, d := range occurrences(e.Start, ref) {
		start := e.Start.withDate(d)
		out = append(out, Expansion{Start: start, End: DateTimeAdd(start, e.Duration), Duration: e.Duration})
	}
	return out
}

func resolveTimeRange(s string, t Timex) []ResolutionValue {
	r := TimeRangeFromTimex(t)
	return []ResolutionValue{{Timex: s, Type: TypeTimeRange, Start: r.Start.String(), End: r.End.String()}}
}

func resolveDateTimeRange(s string, t Timex, ref civil.Date) []ResolutionValue {
	if t.partOfDay != "" {
		w := TimeRangeFromTimex(t)
		var out []ResolutionValue
		for _, d := range occurrences(t, ref) {
			out = append(out, ResolutionValue{
				Timex: s,
				Type:  TypeDateTimeRange,
				Start: civil.DateTime{Date: d, Time: w.Start}.String(),
				End:   civil.DateTime{Date: d, Time: w.End}.String(),
			})
		}
		if len(out) == 0 {
			return notResolved(s, TypeDateTimeRange)
		}
		return out
	}

	var out []ResolutionValue
	for _, e := range anchoredExpansions(t, ref) {
		start, okS := e.Start.Date()
		end, okE := e.End.Date()
		if !okS || !okE {
			continue
		}
		out = append(out, ResolutionValue{
			Timex: s,
			Type:  TypeDateTimeRange,
			Start: dateTimeValue(start, e.Start),
			End:   dateTimeValue(end, e.End),
		})
	}
	if len(out) == 0 {
		return notResolved(s, TypeDateTimeRange)
	}
	return out
}
