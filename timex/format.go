package timex

import (
	"fmt"
	"strconv"
	"strings"
)

// Format returns the canonical TIMEX string for t. It is the inverse of
// Parse: Format(Parse(s)) == s for every canonical s. Missing fields are
// written as X placeholders; the empty value formats as "".
func Format(t Timex) string {
	types := t.Types()
	switch {
	case types.Has(Present):
		return PresentRef
	case (types.Has(DateTimeRange) || types.Has(DateRange) || types.Has(TimeRange)) && types.Has(Duration):
		r := ExpandDateTimeRange(t)
		return "(" + Format(r.Start) + "," + Format(r.End) + "," + Format(r.Duration) + ")"
	case types.Has(DateTimeRange):
		return formatDate(t) + formatTimeRange(t)
	case types.Has(DateRange):
		return formatDateRange(t)
	case types.Has(TimeRange):
		return formatTimeRange(t)
	case types.Has(DateTime):
		return formatDate(t) + formatTime(t)
	case types.Has(Duration):
		return formatDuration(t)
	case types.Has(Date):
		return formatDate(t)
	case types.Has(Time):
		return formatTime(t)
	}
	return ""
}

func pad2(n int) string {
	return fmt.Sprintf("%02d", n)
}

func formatYear(n int) string {
	return fmt.Sprintf("%04d", n)
}

// formatAmount writes a duration amount with the shortest exact decimal
// representation, always using '.'.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatDuration(t Timex) string {
	var sb strings.Builder
	sb.WriteString("P")
	writeUnit := func(f field[float64], unit string) {
		if f.set {
			sb.WriteString(formatAmount(f.v))
			sb.WriteString(unit)
		}
	}
	writeUnit(t.years, "Y")
	writeUnit(t.months, "M")
	writeUnit(t.weeks, "W")
	writeUnit(t.days, "D")
	if t.hours.set || t.minutes.set || t.seconds.set {
		sb.WriteString("T")
		writeUnit(t.hours, "H")
		writeUnit(t.minutes, "M")
		writeUnit(t.seconds, "S")
	}
	return sb.String()
}

func formatTime(t Timex) string {
	switch {
	case t.minute.v == 0 && t.second.v == 0:
		return "T" + pad2(t.hour.v)
	case t.second.v == 0:
		return "T" + pad2(t.hour.v) + ":" + pad2(t.minute.v)
	}
	return "T" + pad2(t.hour.v) + ":" + pad2(t.minute.v) + ":" + pad2(t.second.v)
}

func formatDate(t Timex) string {
	switch {
	case t.year.set && t.month.set && t.dayOfMonth.set:
		return formatYear(t.year.v) + "-" + pad2(t.month.v) + "-" + pad2(t.dayOfMonth.v)
	case t.month.set && t.dayOfMonth.set:
		return "XXXX-" + pad2(t.month.v) + "-" + pad2(t.dayOfMonth.v)
	case t.month.set && t.weekOfMonth.set && t.dayOfWeek.set:
		year := "XXXX"
		if t.year.set {
			year = formatYear(t.year.v)
		}
		return fmt.Sprintf("%s-%s-WXX-%d-%d", year, pad2(t.month.v), t.dayOfWeek.v, t.weekOfMonth.v)
	case t.dayOfWeek.set:
		return fmt.Sprintf("XXXX-WXX-%d", t.dayOfWeek.v)
	}
	return ""
}

func formatDateRange(t Timex) string {
	switch {
	case t.year.set && t.weekOfYear.set && t.weekend:
		return formatYear(t.year.v) + "-W" + pad2(t.weekOfYear.v) + "-WE"
	case t.year.set && t.weekOfYear.set:
		return formatYear(t.year.v) + "-W" + pad2(t.weekOfYear.v)
	case t.year.set && t.season != "":
		return formatYear(t.year.v) + "-" + string(t.season)
	case t.season != "":
		return string(t.season)
	case t.year.set && t.month.set:
		return formatYear(t.year.v) + "-" + pad2(t.month.v)
	case t.year.set:
		return formatYear(t.year.v)
	case t.month.set && t.weekOfMonth.set:
		return "XXXX-" + pad2(t.month.v) + "-W" + pad2(t.weekOfMonth.v)
	case t.month.set:
		return "XXXX-" + pad2(t.month.v)
	}
	return ""
}

func formatTimeRange(t Timex) string {
	if t.partOfDay != "" {
		return "T" + string(t.partOfDay)
	}
	return ""
}
