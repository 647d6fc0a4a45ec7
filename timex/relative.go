package timex

import (
	"github.com/manav03panchal/timex/civil"
)

// ConvertRelative renders t in English relative to ref: "today",
// "next Tuesday evening", "last week", "this summer". Values too far
// from ref fall back to Convert.
func ConvertRelative(t Timex, ref civil.Date) string {
	return ConvertRelativeWith(t, ref, DefaultConvertOptions)
}

// ConvertRelativeWith is ConvertRelative with explicit options.
func ConvertRelativeWith(t Timex, ref civil.Date, opts ConvertOptions) string {
	types := t.Types()
	switch {
	case types.Has(Present):
		return "now"
	case types.Has(DateTimeRange):
		return relativeDateTimeRange(t, ref, opts)
	case types.Has(DateRange):
		return relativeDateRange(t, ref, opts)
	case types.Has(DateTime):
		return convertTime(t) + " " + relativeDate(t, ref)
	case types.Has(Date):
		return relativeDate(t, ref)
	}
	return ConvertWith(t, opts)
}

func relativeDate(t Timex, ref civil.Date) string {
	d, ok := t.Date()
	if !ok {
		return convertDate(t)
	}
	day := d.Weekday().String()
	switch {
	case d == ref:
		return "today"
	case d == civil.Tomorrow(ref):
		return "tomorrow"
	case d == civil.Yesterday(ref):
		return "yesterday"
	case civil.IsThisWeek(d, ref):
		return "this " + day
	case civil.IsNextWeek(d, ref):
		return "next " + day
	case civil.IsLastWeek(d, ref):
		return "last " + day
	}
	return convertDate(t)
}

func relativeDateTimeRange(t Timex, ref civil.Date, opts ConvertOptions) string {
	name, ok := partOfDayNames[t.partOfDay]
	if !ok || t.rng != nil {
		return ConvertWith(t, opts)
	}
	if d, ok := t.Date(); ok && d == ref {
		if t.partOfDay == PartNight {
			return "tonight"
		}
		return "this " + name
	}
	return relativeDate(t, ref) + " " + name
}

// relative picks this/next/last for a unit offset of 0, +1 or -1.
func relative(offset int, unit string) (string, bool) {
	switch offset {
	case 0:
		return "this " + unit, true
	case 1:
		return "next " + unit, true
	case -1:
		return "last " + unit, true
	}
	return "", false
}

func relativeDateRange(t Timex, ref civil.Date, opts ConvertOptions) string {
	year, ok := t.year.get()
	if !ok || t.rng != nil || t.hasDuration() {
		return ConvertWith(t, opts)
	}

	var (
		phrase string
		found  bool
	)
	switch {
	case t.weekOfYear.set:
		unit := "week"
		if t.weekend {
			unit = "weekend"
		}
		monday := civil.ISOWeekStart(year, t.weekOfYear.v)
		phrase, found = relative(civil.StartOfWeek(ref).DaysUntil(monday)/7, unit)
	case t.season != "":
		phrase, found = relative(year-ref.Year, seasonNames[t.season])
	case t.month.set && !t.weekOfMonth.set:
		phrase, found = relative((year-ref.Year)*12+t.month.v-ref.Month, "month")
	case !t.month.set:
		phrase, found = relative(year-ref.Year, "year")
	}
	if !found {
		return ConvertWith(t, opts)
	}
	return phrase
}
