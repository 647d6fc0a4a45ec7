package timex

import "strings"

// Types is the set of classifications a Timex carries.
type Types uint16

// Type flags.
const (
	Present Types = 1 << iota
	Definite
	Date
	DateRange
	Duration
	Time
	TimeRange
	DateTime
	DateTimeRange
)

var typeNames = []struct {
	t    Types
	name string
}{
	{Present, "present"},
	{Definite, "definite"},
	{Date, "date"},
	{DateRange, "daterange"},
	{Duration, "duration"},
	{Time, "time"},
	{TimeRange, "timerange"},
	{DateTime, "datetime"},
	{DateTimeRange, "datetimerange"},
}

// Has reports whether every flag of o is in ts.
func (ts Types) Has(o Types) bool {
	return ts&o == o
}

// Names returns the lower-case names of the flags in ts.
func (ts Types) Names() []string {
	var names []string
	for _, tn := range typeNames {
		if ts.Has(tn.t) {
			names = append(names, tn.name)
		}
	}
	return names
}

// String returns the flag names joined by "|".
func (ts Types) String() string {
	if ts == 0 {
		return "none"
	}
	return strings.Join(ts.Names(), "|")
}

func infer(t Timex) Types {
	var ts Types
	if t.now {
		ts |= Present | Date | Time
	}
	if isDefinite(t) {
		ts |= Definite
	}
	if isDate(t) {
		ts |= Date
	}
	if isDateRange(t) {
		ts |= DateRange
	}
	if t.hasDuration() {
		ts |= Duration
	}
	if isTime(t) {
		ts |= Time
	}
	if t.partOfDay != "" {
		ts |= TimeRange
	}

	if ts.Has(Time) && ts.Has(Duration) {
		ts |= TimeRange
	}
	if ts.Has(Date) && ts.Has(Time) {
		ts |= DateTime
	}
	if ts.Has(Date) && ts.Has(Duration) {
		ts |= DateRange
	}
	if ts.Has(DateTime) && ts.Has(Duration) {
		ts |= DateTimeRange
	}
	if ts.Has(Date) && ts.Has(TimeRange) {
		ts |= DateTimeRange
	}
	return ts
}

func isDefinite(t Timex) bool {
	return t.year.set && t.month.set && t.dayOfMonth.set
}

func isDate(t Timex) bool {
	return (t.month.set && t.dayOfMonth.set) || t.dayOfWeek.set
}

func isDateRange(t Timex) bool {
	if t.dayOfMonth.set || t.dayOfWeek.set {
		return false
	}
	return t.year.set || t.month.set || t.season != "" || t.weekOfYear.set || t.weekOfMonth.set
}

func isTime(t Timex) bool {
	return t.hour.set && t.minute.set && t.second.set
}
