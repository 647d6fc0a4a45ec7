// Package timex implements the TIMEX3 expression algebra: a symbolic
// representation of partially specified dates, times, durations and ranges,
// together with parsing, canonical formatting, range expansion, constraint
// resolution and English rendering.
//
// A Timex is an immutable value. Build one with Parse, with the From*
// constructors or with a Builder; every other operation reads it.
//
// All functions are safe for concurrent use by multiple goroutines.
package timex

import (
	"github.com/manav03panchal/timex/civil"
)

// Season is a season code from the TIMEX grammar.
type Season string

// Seasons.
const (
	SeasonSpring Season = "SP"
	SeasonSummer Season = "SU"
	SeasonFall   Season = "FA"
	SeasonWinter Season = "WI"
)

// PartOfDay is a coarse named window of the day.
type PartOfDay string

// Parts of day.
const (
	PartMorning   PartOfDay = "MO"
	PartAfternoon PartOfDay = "AF"
	PartEvening   PartOfDay = "EV"
	PartNight     PartOfDay = "NI"
	PartDaytime   PartOfDay = "DT"
)

// PresentRef is the literal for "now".
const PresentRef = "PRESENT_REF"

// field is an optional value.
type field[T int | float64] struct {
	v   T
	set bool
}

func some[T int | float64](v T) field[T] {
	return field[T]{v: v, set: true}
}

func (f field[T]) get() (T, bool) {
	return f.v, f.set
}

// Range holds the three literal parts of a (start,end,duration) expression.
type Range struct {
	Start    Timex
	End      Timex
	Duration Timex
}

// Timex is a partially specified temporal value. The zero value has no
// fields set and no types.
type Timex struct {
	now bool

	year        field[int]
	month       field[int]
	dayOfMonth  field[int]
	dayOfWeek   field[int]
	weekOfYear  field[int]
	weekOfMonth field[int]
	season      Season
	weekend     bool

	hour      field[int]
	minute    field[int]
	second    field[int]
	partOfDay PartOfDay

	years   field[float64]
	months  field[float64]
	weeks   field[float64]
	days    field[float64]
	hours   field[float64]
	minutes field[float64]
	seconds field[float64]

	rng *Range
}

// Now reports whether t is PRESENT_REF.
func (t Timex) Now() bool { return t.now }

// Year returns the year, if set.
func (t Timex) Year() (int, bool) { return t.year.get() }

// Month returns the month (1-12), if set.
func (t Timex) Month() (int, bool) { return t.month.get() }

// DayOfMonth returns the day of the month, if set.
func (t Timex) DayOfMonth() (int, bool) { return t.dayOfMonth.get() }

// DayOfWeek returns the ISO day of the week, if set.
func (t Timex) DayOfWeek() (civil.Weekday, bool) {
	v, ok := t.dayOfWeek.get()
	return civil.Weekday(v), ok
}

// WeekOfYear returns the ISO week number, if set.
func (t Timex) WeekOfYear() (int, bool) { return t.weekOfYear.get() }

// WeekOfMonth returns the week of the month, or the n of an n-th weekday
// expression, if set.
func (t Timex) WeekOfMonth() (int, bool) { return t.weekOfMonth.get() }

// Season returns the season code or "".
func (t Timex) Season() Season { return t.season }

// Weekend reports whether t names the weekend of its week.
func (t Timex) Weekend() bool { return t.weekend }

// Hour returns the hour, if set.
func (t Timex) Hour() (int, bool) { return t.hour.get() }

// Minute returns the minute, if set.
func (t Timex) Minute() (int, bool) { return t.minute.get() }

// Second returns the second, if set.
func (t Timex) Second() (int, bool) { return t.second.get() }

// PartOfDay returns the part-of-day code or "".
func (t Timex) PartOfDay() PartOfDay { return t.partOfDay }

// Years returns the duration in years, if set.
func (t Timex) Years() (float64, bool) { return t.years.get() }

// Months returns the duration in months, if set.
func (t Timex) Months() (float64, bool) { return t.months.get() }

// Weeks returns the duration in weeks, if set.
func (t Timex) Weeks() (float64, bool) { return t.weeks.get() }

// Days returns the duration in days, if set.
func (t Timex) Days() (float64, bool) { return t.days.get() }

// Hours returns the duration in hours, if set.
func (t Timex) Hours() (float64, bool) { return t.hours.get() }

// Minutes returns the duration in minutes, if set.
func (t Timex) Minutes() (float64, bool) { return t.minutes.get() }

// Seconds returns the duration in seconds, if set.
func (t Timex) Seconds() (float64, bool) { return t.seconds.get() }

// Range returns the literal parts of a (start,end,duration) value.
func (t Timex) Range() (Range, bool) {
	if t.rng == nil {
		return Range{}, false
	}
	return *t.rng, true
}

// Types returns the classification derived from the populated fields.
func (t Timex) Types() Types {
	return infer(t)
}

// IsEmpty reports whether no field is set.
func (t Timex) IsEmpty() bool {
	return t.Types() == 0
}

// String returns the canonical TIMEX string.
func (t Timex) String() string {
	return Format(t)
}

// NaturalLanguage renders t in English relative to ref.
func (t Timex) NaturalLanguage(ref civil.Date) string {
	return ConvertRelative(t, ref)
}

// Date returns the year-month-day of a definite value.
func (t Timex) Date() (civil.Date, bool) {
	y, okY := t.year.get()
	m, okM := t.month.get()
	d, okD := t.dayOfMonth.get()
	if !okY || !okM || !okD {
		return civil.Date{}, false
	}
	return civil.Date{Year: y, Month: m, Day: d}, true
}

// Clock returns the time of day, if set.
func (t Timex) Clock() (civil.Time, bool) {
	if !t.hour.set {
		return civil.Time{}, false
	}
	return civil.Time{Hour: t.hour.v, Minute: t.minute.v, Second: t.second.v}, true
}

// hasDuration reports whether any duration amount is set.
func (t Timex) hasDuration() bool {
	return t.years.set || t.months.set || t.weeks.set || t.days.set ||
		t.hours.set || t.minutes.set || t.seconds.set
}

// withoutDuration returns the date and time fields of t only.
func (t Timex) withoutDuration() Timex {
	out := t
	out.years, out.months, out.weeks, out.days = field[float64]{}, field[float64]{}, field[float64]{}, field[float64]{}
	out.hours, out.minutes, out.seconds = field[float64]{}, field[float64]{}, field[float64]{}
	out.rng = nil
	return out
}

// durationOnly returns the duration fields of t only.
func (t Timex) durationOnly() Timex {
	return Timex{
		years: t.years, months: t.months, weeks: t.weeks, days: t.days,
		hours: t.hours, minutes: t.minutes, seconds: t.seconds,
	}
}

// timeOnly returns the time fields of t only.
func (t Timex) timeOnly() Timex {
	return Timex{hour: t.hour, minute: t.minute, second: t.second}
}

// withDate replaces the date fields of t with d.
func (t Timex) withDate(d civil.Date) Timex {
	out := t
	out.year, out.month, out.dayOfMonth = some(d.Year), some(d.Month), some(d.Day)
	out.dayOfWeek, out.weekOfYear, out.weekOfMonth = field[int]{}, field[int]{}, field[int]{}
	out.season, out.weekend = "", false
	out.rng = nil
	return out
}

// withClock replaces the time fields of t with c.
func (t Timex) withClock(c civil.Time) Timex {
	out := t
	out.hour, out.minute, out.second = some(c.Hour), some(c.Minute), some(c.Second)
	out.partOfDay = ""
	out.rng = nil
	return out
}

// FromDate returns the definite date d.
func FromDate(d civil.Date) Timex {
	return Timex{}.withDate(d)
}

// FromDateTime returns the definite date-time dt.
func FromDateTime(dt civil.DateTime) Timex {
	return FromDate(dt.Date).withClock(dt.Time)
}

// FromTime returns the time of day c.
func FromTime(c civil.Time) Timex {
	return Timex{}.withClock(c)
}
