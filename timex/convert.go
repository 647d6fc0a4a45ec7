package timex

import (
	"fmt"
	"strconv"
	"strings"
)

// NumberFormat controls how decimal amounts are written in English output.
// The TIMEX wire format always uses '.'.
type NumberFormat struct {
	DecimalSeparator string
}

// ConvertOptions configures the English renderers.
type ConvertOptions struct {
	NumberFormat NumberFormat
}

// DefaultConvertOptions writes decimals with '.'.
var DefaultConvertOptions = ConvertOptions{NumberFormat: NumberFormat{DecimalSeparator: "."}}

var (
	monthNames = []string{
		"", "January", "February", "March", "April", "May", "June", "July",
		"August", "September", "October", "November", "December",
	}
	seasonNames = map[Season]string{
		SeasonSpring: "spring",
		SeasonSummer: "summer",
		SeasonFall:   "fall",
		SeasonWinter: "winter",
	}
	partOfDayNames = map[PartOfDay]string{
		PartMorning:   "morning",
		PartAfternoon: "afternoon",
		PartEvening:   "evening",
		PartNight:     "night",
		PartDaytime:   "daytime",
	}
	weekOrdinals = []string{"", "first", "second", "third", "fourth", "fifth"}
)

// Convert renders t as an absolute English phrase, e.g. "29th May 2017" or
// "7:30PM 29th May 2017".
func Convert(t Timex) string {
	return ConvertWith(t, DefaultConvertOptions)
}

// ConvertWith is Convert with explicit options.
func ConvertWith(t Timex, opts ConvertOptions) string {
	types := t.Types()
	switch {
	case types.Has(Present):
		return "now"
	case types.Has(DateTimeRange):
		return convertDateTimeRange(t, opts)
	case types.Has(DateRange):
		return convertDateRange(t, opts)
	case types.Has(TimeRange):
		return convertTimeRange(t, opts)
	case types.Has(Duration):
		return convertDuration(t, opts)
	case types.Has(DateTime):
		return convertTime(t) + " " + convertDate(t)
	case types.Has(Date):
		return convertDate(t)
	case types.Has(Time):
		return convertTime(t)
	}
	return ""
}

func ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

func monthName(m int) string {
	if m < 1 || m > 12 {
		return ""
	}
	return monthNames[m]
}

func weekOrdinal(n int) string {
	if n < 1 || n >= len(weekOrdinals) {
		return ordinal(n)
	}
	return weekOrdinals[n]
}

func convertDate(t Timex) string {
	switch {
	case t.month.set && t.weekOfMonth.set && t.dayOfWeek.set && !t.dayOfMonth.set:
		w, _ := t.DayOfWeek()
		s := fmt.Sprintf("%s %s of %s", weekOrdinal(t.weekOfMonth.v), w, monthName(t.month.v))
		if t.year.set {
			s += " " + strconv.Itoa(t.year.v)
		}
		return s
	case t.dayOfWeek.set && !t.dayOfMonth.set:
		w, _ := t.DayOfWeek()
		return w.String()
	}
	s := ordinal(t.dayOfMonth.v) + " " + monthName(t.month.v)
	if t.year.set {
		s += " " + fmt.Sprint(t.year.v)
	}
	return s
}

func convertTime(t Timex) string {
	h, m, s := t.hour.v, t.minute.v, t.second.v
	switch {
	case h == 0 && m == 0 && s == 0, h == 24 && m == 0 && s == 0:
		return "midnight"
	case h == 12 && m == 0 && s == 0:
		return "midday"
	}

	hour := h % 12
	if hour == 0 {
		hour = 12
	}
	suffix := "AM"
	if h >= 12 && h < 24 {
		suffix = "PM"
	}
	switch {
	case m == 0 && s == 0:
		return fmt.Sprintf("%d%s", hour, suffix)
	case s == 0:
		return fmt.Sprintf("%d:%02d%s", hour, m, suffix)
	}
	return fmt.Sprintf("%d:%02d:%02d%s", hour, m, s, suffix)
}

func convertDuration(t Timex, opts ConvertOptions) string {
	var parts []string
	for _, u := range durationUnits(t) {
		parts = append(parts, amount(u.v, opts)+" "+plural(u.name, u.v))
	}
	return strings.Join(parts, " ")
}

type unitAmount struct {
	name string
	v    float64
}

func durationUnits(t Timex) []unitAmount {
	all := []struct {
		name string
		f    field[float64]
	}{
		{"year", t.years},
		{"month", t.months},
		{"week", t.weeks},
		{"day", t.days},
		{"hour", t.hours},
		{"minute", t.minutes},
		{"second", t.seconds},
	}
	var out []unitAmount
	for _, u := range all {
		if u.f.set {
			out = append(out, unitAmount{name: u.name, v: u.f.v})
		}
	}
	return out
}

func amount(v float64, opts ConvertOptions) string {
	s := formatAmount(v)
	if sep := opts.NumberFormat.DecimalSeparator; sep != "" && sep != "." {
		s = strings.Replace(s, ".", sep, 1)
	}
	return s
}

func plural(unit string, v float64) string {
	if v == 1 {
		return unit
	}
	return unit + "s"
}

func convertRange(r Range, opts ConvertOptions) string {
	return ConvertWith(r.Start, opts) + " to " + ConvertWith(r.End, opts)
}

func convertDateRange(t Timex, opts ConvertOptions) string {
	if t.rng != nil {
		return convertRange(*t.rng, opts)
	}
	year := ""
	if t.year.set {
		year = fmt.Sprint(t.year.v)
	}
	switch {
	case t.season != "":
		return strings.TrimSpace(seasonNames[t.season] + " " + year)
	case t.weekOfYear.set && t.weekend:
		return fmt.Sprintf("weekend of week %d of %s", t.weekOfYear.v, year)
	case t.weekOfYear.set:
		return fmt.Sprintf("week %d of %s", t.weekOfYear.v, year)
	case t.month.set && t.weekOfMonth.set:
		return fmt.Sprintf("%s week of %s", weekOrdinal(t.weekOfMonth.v), monthName(t.month.v))
	case isDate(t):
		return convertDate(t) + " for " + convertDuration(t, opts)
	case t.month.set:
		return strings.TrimSpace(monthName(t.month.v) + " " + year)
	}
	return year
}

func convertTimeRange(t Timex, opts ConvertOptions) string {
	if t.rng != nil {
		return convertRange(*t.rng, opts)
	}
	if name, ok := partOfDayNames[t.partOfDay]; ok {
		return name
	}
	return convertTime(t) + " for " + convertDuration(t, opts)
}

func convertDateTimeRange(t Timex, opts ConvertOptions) string {
	if t.rng != nil {
		return convertRange(*t.rng, opts)
	}
	if name, ok := partOfDayNames[t.partOfDay]; ok {
		return convertDate(t) + " " + name
	}
	return convertTime(t) + " " + convertDate(t) + " for " + convertDuration(t, opts)
}
