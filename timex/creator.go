package timex

import (
	"github.com/manav03panchal/timex/civil"
)

// Recurring weekdays.
const (
	Monday    = "XXXX-WXX-1"
	Tuesday   = "XXXX-WXX-2"
	Wednesday = "XXXX-WXX-3"
	Thursday  = "XXXX-WXX-4"
	Friday    = "XXXX-WXX-5"
	Saturday  = "XXXX-WXX-6"
	Sunday    = "XXXX-WXX-7"
)

// Parts of day as time ranges.
const (
	Morning   = "(T08,T12,PT4H)"
	Afternoon = "(T12,T16,PT4H)"
	Evening   = "(T16,T20,PT4H)"
	Night     = "(T20,T24,PT4H)"
	Daytime   = "(T08,T18,PT10H)"
)

// Today returns ref as a definite date.
func Today(ref civil.Date) string {
	return Format(FromDate(ref))
}

// Tomorrow returns the day after ref.
func Tomorrow(ref civil.Date) string {
	return Format(FromDate(civil.Tomorrow(ref)))
}

// Yesterday returns the day before ref.
func Yesterday(ref civil.Date) string {
	return Format(FromDate(civil.Yesterday(ref)))
}

// WeekFromToday returns the seven days starting at ref.
func WeekFromToday(ref civil.Date) string {
	return NextWeeksFromToday(ref, 1)
}

// WeekBackFromToday returns the seven days ending at ref.
func WeekBackFromToday(ref civil.Date) string {
	return daysFrom(ref.AddDays(-7), 7)
}

// NextWeeksFromToday returns the n weeks starting at ref.
func NextWeeksFromToday(ref civil.Date, n int) string {
	return daysFrom(ref, 7*n)
}

func daysFrom(start civil.Date, days int) string {
	return Format(FromDate(start).Edit().Days(float64(days)).Build())
}

// ThisWeek returns the ISO week holding ref.
func ThisWeek(ref civil.Date) string {
	return isoWeek(ref)
}

// NextWeek returns the ISO week after ref's.
func NextWeek(ref civil.Date) string {
	return isoWeek(ref.AddDays(7))
}

// LastWeek returns the ISO week before ref's.
func LastWeek(ref civil.Date) string {
	return isoWeek(ref.AddDays(-7))
}

func isoWeek(d civil.Date) string {
	year, week := d.ISOWeek()
	return Format(NewBuilder().Year(year).WeekOfYear(week).Build())
}
