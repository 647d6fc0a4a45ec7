package timex

import (
	"math"

	"github.com/manav03panchal/timex/civil"
)

// defaultYear anchors year-less arithmetic. It is a leap year so that
// February 29th survives.
const defaultYear = 2000

// Expansion is a range expanded into its endpoints.
type Expansion struct {
	Start    Timex
	End      Timex
	Duration Timex
}

// partOfDayWindows maps parts of day to their start hour and length.
var partOfDayWindows = map[PartOfDay]struct{ start, hours int }{
	PartMorning:   {8, 4},
	PartAfternoon: {12, 4},
	PartEvening:   {16, 4},
	PartNight:     {20, 4},
	PartDaytime:   {8, 10},
}

// ExpandDateTimeRange returns the start and end of a range value. Literal
// (start,end,duration) values return their parts as written. Values with a
// duration end at start + duration. Year, year-month, year-week,
// year-week-weekend, year-season and month-week values expand to their
// calendar span. Anything else is passed through as both start and end.
func ExpandDateTimeRange(t Timex) Expansion {
	if t.rng != nil {
		return Expansion{Start: t.rng.Start, End: t.rng.End, Duration: t.rng.Duration}
	}
	if t.hasDuration() {
		start := t.withoutDuration()
		dur := t.durationOnly()
		return Expansion{Start: start, End: DateTimeAdd(start, dur), Duration: dur}
	}
	if r, ok := calendarSpan(t); ok {
		dur := Timex{days: some(float64(r.Start.DaysUntil(r.End)))}
		return Expansion{Start: FromDate(r.Start), End: FromDate(r.End), Duration: dur}
	}
	return Expansion{Start: t, End: t}
}

// calendarSpan expands the date-range shapes that need a year.
func calendarSpan(t Timex) (civil.DateRange, bool) {
	if t.dayOfMonth.set || t.dayOfWeek.set {
		return civil.DateRange{}, false
	}
	year, ok := t.year.get()
	if !ok {
		return civil.DateRange{}, false
	}
	var start, end civil.Date
	switch {
	case t.weekOfYear.set:
		monday := civil.ISOWeekStart(year, t.weekOfYear.v)
		start, end = monday, monday.AddDays(7)
		if t.weekend {
			start = monday.AddDays(5)
		}
	case t.season != "":
		return seasonSpan(year, t.season)
	case t.month.set && t.weekOfMonth.set:
		start = civil.WeekOfMonthStart(year, t.month.v, t.weekOfMonth.v)
		end = start.AddDays(7)
	case t.month.set:
		start = civil.Date{Year: year, Month: t.month.v, Day: 1}
		end = civil.NewDate(year, t.month.v+1, 1)
	default:
		start = civil.Date{Year: year, Month: 1, Day: 1}
		end = civil.Date{Year: year + 1, Month: 1, Day: 1}
	}
	return civil.DateRange{Start: start, End: end}, true
}

// seasonSpan uses meteorological seasons; winter runs into the next year.
func seasonSpan(year int, s Season) (civil.DateRange, bool) {
	startMonth := map[Season]int{
		SeasonSpring: 3,
		SeasonSummer: 6,
		SeasonFall:   9,
		SeasonWinter: 12,
	}
	m, ok := startMonth[s]
	if !ok {
		return civil.DateRange{}, false
	}
	start := civil.Date{Year: year, Month: m, Day: 1}
	return civil.DateRange{Start: start, End: start.AddDate(0, 3, 0)}, true
}

// ExpandTimeRange returns the start and end of a time range. Parts of day
// map to fixed windows; night ends at hour 24 so it stays on its day.
func ExpandTimeRange(t Timex) Expansion {
	if t.rng != nil {
		return Expansion{
			Start:    t.rng.Start.timeOnly(),
			End:      t.rng.End.timeOnly(),
			Duration: t.rng.Duration,
		}
	}
	if w, ok := partOfDayWindows[t.partOfDay]; ok {
		start := FromTime(civil.NewTime(w.start, 0, 0))
		dur := Timex{hours: some(float64(w.hours))}
		return Expansion{Start: start, End: TimeAdd(start, dur), Duration: dur}
	}
	start := t.timeOnly()
	dur := t.durationOnly()
	return Expansion{Start: start, End: TimeAdd(start, dur), Duration: dur}
}

// DateTimeAdd adds the date and time parts of duration to start.
func DateTimeAdd(start, duration Timex) Timex {
	return TimeAdd(DateAdd(start, duration), duration)
}

// DateAdd adds the years, months, weeks and days of duration to the date
// part of start. Fractional days are truncated. A weekday moves around the
// week; a year-less month-day wraps within a year.
func DateAdd(start, duration Timex) Timex {
	days := int(math.Floor(duration.days.v)) + 7*int(math.Floor(duration.weeks.v))
	years := int(math.Floor(duration.years.v))
	months := int(math.Floor(duration.months.v))

	out := start
	switch {
	case start.dayOfWeek.set && !start.dayOfMonth.set:
		if days != 0 {
			out.dayOfWeek = some((start.dayOfWeek.v-1+days%7+7)%7 + 1)
		}
	case start.month.set && start.dayOfMonth.set:
		year := defaultYear
		if start.year.set {
			year = start.year.v
		}
		d := civil.NewDate(year+years, start.month.v+months, start.dayOfMonth.v+days)
		out.month, out.dayOfMonth = some(d.Month), some(d.Day)
		if start.year.set {
			out.year = some(d.Year)
		}
	case start.year.set:
		y := start.year.v + years
		if start.month.set {
			d := civil.NewDate(y, start.month.v+months, 1)
			out.month = some(d.Month)
			y = d.Year
		}
		out.year = some(y)
	}
	return out
}

// TimeAdd adds the hours, minutes and seconds of duration to the time of
// start. Whole days of overflow move a definite date or a weekday forward.
// A time-only value that lands exactly on the end of the day keeps hour 24.
func TimeAdd(start, duration Timex) Timex {
	if !start.hour.set {
		return start
	}
	add := duration.hours.v*3600 + duration.minutes.v*60 + duration.seconds.v
	if add == 0 {
		return start
	}
	total := start.hour.v*3600 + start.minute.v*60 + start.second.v + int(math.Round(add))
	dayShift := total / 86400
	secs := total % 86400

	out := start
	d, definite := start.Date()
	switch {
	case dayShift == 0:
	case definite:
		out = out.withDate(d.AddDays(dayShift))
	case start.dayOfWeek.set && !start.month.set:
		out.dayOfWeek = some((start.dayOfWeek.v-1+dayShift)%7 + 1)
	case dayShift == 1 && secs == 0:
		secs = 86400
	}
	c := civil.TimeFromSeconds(secs)
	out.hour, out.minute, out.second = some(c.Hour), some(c.Minute), some(c.Second)
	return out
}

// DateFromTimex projects t onto a calendar date. Missing fields default to
// year 2000, January and day 1.
func DateFromTimex(t Timex) civil.Date {
	d := civil.Date{Year: defaultYear, Month: 1, Day: 1}
	if t.year.set {
		d.Year = t.year.v
	}
	if t.month.set {
		d.Month = t.month.v
	}
	if t.dayOfMonth.set {
		d.Day = t.dayOfMonth.v
	}
	return d
}

// TimeFromTimex projects t onto a clock time; missing fields are zero.
func TimeFromTimex(t Timex) civil.Time {
	return civil.Time{Hour: t.hour.v, Minute: t.minute.v, Second: t.second.v}
}

// DateRangeFromTimex returns the days covered by t. A date range expands
// through ExpandDateTimeRange; an end with a clock time after midnight
// includes its day. Any other value yields the degenerate range [d, d).
func DateRangeFromTimex(t Timex) civil.DateRange {
	if !t.Types().Has(DateRange) {
		d := DateFromTimex(t)
		return civil.DateRange{Start: d, End: d}
	}
	e := ExpandDateTimeRange(t)
	r := civil.DateRange{Start: DateFromTimex(e.Start), End: DateFromTimex(e.End)}
	if c, ok := e.End.Clock(); ok && c.Seconds() > 0 {
		r.End = r.End.AddDays(1)
	}
	return r
}

// TimeRangeFromTimex returns the clock window covered by t. Non-range
// values yield the degenerate range [t, t).
func TimeRangeFromTimex(t Timex) civil.TimeRange {
	if !t.Types().Has(TimeRange) {
		c := TimeFromTimex(t)
		return civil.TimeRange{Start: c, End: c}
	}
	e := ExpandTimeRange(t)
	return civil.TimeRange{Start: TimeFromTimex(e.Start), End: TimeFromTimex(e.End)}
}

// Seconds-per-unit for duration totals. Calendar units have fixed lengths.
const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400
	secondsPerWeek   = 7 * secondsPerDay
	secondsPerMonth  = 30 * secondsPerDay
	secondsPerYear   = 365 * secondsPerDay
)

// DurationSeconds returns the total length of t's duration in seconds.
func DurationSeconds(t Timex) float64 {
	return t.years.v*secondsPerYear +
		t.months.v*secondsPerMonth +
		t.weeks.v*secondsPerWeek +
		t.days.v*secondsPerDay +
		t.hours.v*secondsPerHour +
		t.minutes.v*secondsPerMinute +
		t.seconds.v
}
