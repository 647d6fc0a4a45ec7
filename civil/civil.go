// Package civil provides naive calendar values (dates, clock times and
// date-times without a location) and the calendar arithmetic needed to
// expand and resolve TIMEX expressions.
//
// All values follow the proleptic Gregorian calendar. There is no timezone
// and no leap-second handling; conversions to time.Time use UTC.
package civil

import (
	"fmt"
	"time"
)

// Weekday is an ISO-8601 day of the week: 1 is Monday, 7 is Sunday.
type Weekday int

// ISO weekdays.
const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// String returns the English name of the day.
func (w Weekday) String() string {
	if w >= Monday && w <= Sunday {
		return weekdayNames[w]
	}
	return fmt.Sprintf("Weekday(%d)", int(w))
}

// Valid reports whether w is in 1..7.
func (w Weekday) Valid() bool {
	return w >= Monday && w <= Sunday
}

// WeekdayOf converts a time.Weekday (Sunday = 0) to its ISO number.
func WeekdayOf(w time.Weekday) Weekday {
	if w == time.Sunday {
		return Sunday
	}
	return Weekday(w)
}

// Std converts w back to a time.Weekday.
func (w Weekday) Std() time.Weekday {
	return time.Weekday(int(w) % 7)
}

// Date is a calendar date.
type Date struct {
	Year  int
	Month int
	Day   int
}

// NewDate returns the date for year, month and day, normalizing overflowing
// values the same way time.Date does (e.g. month 13 is January of the next
// year).
func NewDate(year, month, day int) Date {
	return DateOf(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the date part of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: int(m), Day: d}
}

// Time returns midnight UTC of d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns d shifted by n days.
func (d Date) AddDays(n int) Date {
	return NewDate(d.Year, d.Month, d.Day+n)
}

// AddDate returns d shifted by the given years, months and days, normalized
// like time.Time.AddDate.
func (d Date) AddDate(years, months, days int) Date {
	return NewDate(d.Year+years, d.Month+months, d.Day+days)
}

// Weekday returns the ISO day of the week.
func (d Date) Weekday() Weekday {
	return WeekdayOf(d.Time().Weekday())
}

// ISOWeek returns the ISO-8601 year and week number of d.
func (d Date) ISOWeek() (year, week int) {
	return d.Time().ISOWeek()
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return cmpInt(d.Year, o.Year)
	case d.Month != o.Month:
		return cmpInt(d.Month, o.Month)
	default:
		return cmpInt(d.Day, o.Day)
	}
}

// Before reports whether d is before o.
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// After reports whether d is after o.
func (d Date) After(o Date) bool { return d.Compare(o) > 0 }

// DaysUntil returns the number of days from d to o (negative when o is
// earlier).
func (d Date) DaysUntil(o Date) int {
	return int(o.Time().Sub(d.Time()).Hours() / 24)
}

// IsValid reports whether d names an existing calendar day.
func (d Date) IsValid() bool {
	return d.Month >= 1 && d.Month <= 12 && d.Day >= 1 && d.Day <= DaysIn(d.Year, d.Month)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// String formats d as yyyy-MM-dd.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Time is a clock time. Hour 24 (with zero minute and second) is allowed as
// the exclusive end of a day.
type Time struct {
	Hour   int
	Minute int
	Second int
}

// NewTime returns the clock time hour:minute:second.
func NewTime(hour, minute, second int) Time {
	return Time{Hour: hour, Minute: minute, Second: second}
}

// TimeOf returns the clock part of t.
func TimeOf(t time.Time) Time {
	return Time{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}

// TimeFromSeconds returns the clock time s seconds after midnight. Values
// of a full day or more are kept as hour 24 and above.
func TimeFromSeconds(s int) Time {
	return Time{Hour: s / 3600, Minute: s % 3600 / 60, Second: s % 60}
}

// Seconds returns the number of seconds since midnight.
func (t Time) Seconds() int {
	return t.Hour*3600 + t.Minute*60 + t.Second
}

// Compare returns -1, 0 or +1 depending on whether t is before, equal to or
// after o.
func (t Time) Compare(o Time) int {
	return cmpInt(t.Seconds(), o.Seconds())
}

// String formats t as HH:mm:ss.
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// DateTime is a date with a clock time.
type DateTime struct {
	Date Date
	Time Time
}

// NewDateTime returns the date-time for the given fields, normalized like
// time.Date.
func NewDateTime(year, month, day, hour, minute, second int) DateTime {
	return DateTimeOf(time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC))
}

// DateTimeOf returns the civil date-time of t in t's location.
func DateTimeOf(t time.Time) DateTime {
	return DateTime{Date: DateOf(t), Time: TimeOf(t)}
}

// ToTime returns dt as a UTC time.Time.
func (dt DateTime) ToTime() time.Time {
	return time.Date(dt.Date.Year, time.Month(dt.Date.Month), dt.Date.Day,
		dt.Time.Hour, dt.Time.Minute, dt.Time.Second, 0, time.UTC)
}

// Add returns dt shifted by d.
func (dt DateTime) Add(d time.Duration) DateTime {
	return DateTimeOf(dt.ToTime().Add(d))
}

// Compare returns -1, 0 or +1 depending on whether dt is before, equal to or
// after o.
func (dt DateTime) Compare(o DateTime) int {
	if c := dt.Date.Compare(o.Date); c != 0 {
		return c
	}
	return dt.Time.Compare(o.Time)
}

// IsZero reports whether dt is the zero DateTime.
func (dt DateTime) IsZero() bool {
	return dt == DateTime{}
}

// String formats dt as yyyy-MM-dd HH:mm:ss.
func (dt DateTime) String() string {
	return dt.Date.String() + " " + dt.Time.String()
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
