package civil

import (
	"time"

	"github.com/jinzhu/now"
)

// isoWeeks configures jinzhu/now for Monday-based weeks.
var isoWeeks = &now.Config{
	WeekStartDay: time.Monday,
	TimeLocation: time.UTC,
}

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn returns the number of days in month of year.
func DaysIn(year, month int) int {
	return NewDate(year, month+1, 0).Day
}

// Tomorrow returns the day after d.
func Tomorrow(d Date) Date { return d.AddDays(1) }

// Yesterday returns the day before d.
func Yesterday(d Date) Date { return d.AddDays(-1) }

// StartOfWeek returns the Monday of the week containing d.
func StartOfWeek(d Date) Date {
	return DateOf(isoWeeks.With(d.Time()).BeginningOfWeek())
}

// IsSameWeek reports whether a and b fall in the same Monday-based week.
func IsSameWeek(a, b Date) bool {
	return StartOfWeek(a) == StartOfWeek(b)
}

// IsThisWeek reports whether d falls in the week of ref.
func IsThisWeek(d, ref Date) bool {
	return IsSameWeek(d, ref)
}

// IsNextWeek reports whether d falls in the week after ref's.
func IsNextWeek(d, ref Date) bool {
	return IsSameWeek(d, ref.AddDays(7))
}

// IsLastWeek reports whether d falls in the week before ref's.
func IsLastWeek(d, ref Date) bool {
	return IsSameWeek(d, ref.AddDays(-7))
}

// DateOfLastDay returns the latest date strictly before ref that is a w.
func DateOfLastDay(w Weekday, ref Date) Date {
	d := ref.AddDays(-1)
	for d.Weekday() != w {
		d = d.AddDays(-1)
	}
	return d
}

// DateOfNextDay returns the earliest date strictly after ref that is a w.
func DateOfNextDay(w Weekday, ref Date) Date {
	d := ref.AddDays(1)
	for d.Weekday() != w {
		d = d.AddDays(1)
	}
	return d
}

// DatesMatchingDay returns every w in [start, end).
func DatesMatchingDay(w Weekday, start, end Date) []Date {
	var result []Date
	d := start
	for d.Weekday() != w {
		d = d.AddDays(1)
	}
	for ; d.Before(end); d = d.AddDays(7) {
		result = append(result, d)
	}
	return result
}

// NthWeekdayOfMonth returns the n-th w (1-based) of month in year. The
// second result is false when the month has no such day.
func NthWeekdayOfMonth(year, month int, w Weekday, n int) (Date, bool) {
	if n < 1 || !w.Valid() {
		return Date{}, false
	}
	first := Date{Year: year, Month: month, Day: 1}
	offset := (int(w) - int(first.Weekday()) + 7) % 7
	d := first.AddDays(offset + (n-1)*7)
	if d.Month != month {
		return Date{}, false
	}
	return d, true
}

// ISOWeekStart returns the Monday of ISO week of year. Week 1 is the week
// holding the year's first Thursday, so it always contains January 4th.
func ISOWeekStart(year, week int) Date {
	return StartOfWeek(Date{Year: year, Month: 1, Day: 4}).AddDays((week - 1) * 7)
}

// WeeksInYear returns 52 or 53, the number of ISO weeks in year.
func WeeksInYear(year int) int {
	_, w := Date{Year: year, Month: 12, Day: 28}.ISOWeek()
	return w
}

// WeekOfMonthStart returns the Monday of the week-th week of month. Weeks
// are numbered like ISO weeks: week 1 holds the month's first Thursday.
func WeekOfMonthStart(year, month, week int) Date {
	thursday, _ := NthWeekdayOfMonth(year, month, Thursday, 1)
	return StartOfWeek(thursday).AddDays((week - 1) * 7)
}
