package timex

import (
	"regexp"
	"strconv"
	"strings"
)

// Patterns are tried in order; the first match wins.
var (
	datePatterns = []*regexp.Regexp{
		// date
		regexp.MustCompile(`^(?P<year>\d{4})-(?P<month>\d{2})-(?P<dayOfMonth>\d{2})$`),
		regexp.MustCompile(`^XXXX-WXX-(?P<dayOfWeek>[1-7])$`),
		regexp.MustCompile(`^XXXX-(?P<month>\d{2})-(?P<dayOfMonth>\d{2})$`),
		// daterange
		regexp.MustCompile(`^(?P<year>\d{4})$`),
		regexp.MustCompile(`^(?P<year>\d{4})-(?P<month>\d{2})$`),
		regexp.MustCompile(`^(?P<season>SP|SU|FA|WI)$`),
		regexp.MustCompile(`^(?P<year>\d{4})-(?P<season>SP|SU|FA|WI)$`),
		regexp.MustCompile(`^(?P<year>\d{4})-W(?P<weekOfYear>\d{2})$`),
		regexp.MustCompile(`^(?P<year>\d{4})-W(?P<weekOfYear>\d{2})-(?P<weekend>WE)$`),
		regexp.MustCompile(`^XXXX-(?P<month>\d{2})$`),
		regexp.MustCompile(`^XXXX-(?P<month>\d{2})-W(?P<weekOfMonth>\d{2})$`),
		regexp.MustCompile(`^XXXX-(?P<month>\d{2})-WXX-(?P<dayOfWeek>[1-7])-#?(?P<weekOfMonth>[1-5])$`),
		regexp.MustCompile(`^(?P<year>\d{4})-(?P<month>\d{2})-WXX-(?P<dayOfWeek>[1-7])-#?(?P<weekOfMonth>[1-5])$`),
	}

	timePatterns = []*regexp.Regexp{
		regexp.MustCompile(`^T(?P<hour>\d{2})Z?$`),
		regexp.MustCompile(`^T(?P<hour>\d{2}):(?P<minute>\d{2})Z?$`),
		regexp.MustCompile(`^T(?P<hour>\d{2}):(?P<minute>\d{2}):(?P<second>\d{2})Z?$`),
		// timerange
		regexp.MustCompile(`^T(?P<partOfDay>DT|NI|MO|AF|EV)$`),
	}

	durationPattern = regexp.MustCompile(`^P` +
		`(?:(?P<years>\d*\.?\d+)Y)?` +
		`(?:(?P<months>\d*\.?\d+)M)?` +
		`(?:(?P<weeks>\d*\.?\d+)W)?` +
		`(?:(?P<days>\d*\.?\d+)D)?` +
		`(?:T` +
		`(?:(?P<hours>\d*\.?\d+)H)?` +
		`(?:(?P<minutes>\d*\.?\d+)M)?` +
		`(?:(?P<seconds>\d*\.?\d+)S)?` +
		`)?$`)
)

// Parse parses a TIMEX string. It never fails: text outside the grammar
// yields the empty value, which carries no types.
func Parse(s string) Timex {
	s = strings.TrimSpace(s)
	switch {
	case s == PresentRef:
		return Timex{now: true}
	case strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")"):
		return parseRange(s[1 : len(s)-1])
	case strings.HasPrefix(s, "P"):
		t, _ := parseDuration(s)
		return t
	default:
		t, _ := parseDateTime(s)
		return t
	}
}

// parseRange parses the body of a (start,end,duration) expression. The
// start's date and time fields and the duration's amounts are copied onto
// the result so it answers field queries directly.
func parseRange(body string) Timex {
	parts := strings.Split(body, ",")
	if len(parts) != 3 {
		return Timex{}
	}
	start, okStart := parseDateTime(strings.TrimSpace(parts[0]))
	end, okEnd := parseDateTime(strings.TrimSpace(parts[1]))
	dur, okDur := parseDuration(strings.TrimSpace(parts[2]))
	if !okStart || !okEnd || !okDur {
		return Timex{}
	}

	out := start
	out.years, out.months, out.weeks, out.days = dur.years, dur.months, dur.weeks, dur.days
	out.hours, out.minutes, out.seconds = dur.hours, dur.minutes, dur.seconds
	out.rng = &Range{Start: start, End: end, Duration: dur}
	return out
}

func parseDuration(s string) (Timex, bool) {
	if strings.HasSuffix(s, "T") {
		return Timex{}, false
	}
	m := durationPattern.FindStringSubmatch(s)
	if m == nil {
		return Timex{}, false
	}
	var t Timex
	for i, name := range durationPattern.SubexpNames() {
		if name == "" || m[i] == "" {
			continue
		}
		v, err := strconv.ParseFloat(m[i], 64)
		if err != nil {
			return Timex{}, false
		}
		t.setAmount(name, v)
	}
	return t, t.hasDuration()
}

func (t *Timex) setAmount(name string, v float64) {
	switch name {
	case "years":
		t.years = some(v)
	case "months":
		t.months = some(v)
	case "weeks":
		t.weeks = some(v)
	case "days":
		t.days = some(v)
	case "hours":
		t.hours = some(v)
	case "minutes":
		t.minutes = some(v)
	case "seconds":
		t.seconds = some(v)
	}
}

// parseDateTime splits s at the first 'T' and matches the date and time
// segments independently. Both present segments must match.
func parseDateTime(s string) (Timex, bool) {
	if s == "" {
		return Timex{}, false
	}
	dateText, timeText := s, ""
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		dateText, timeText = s[:i], s[i:]
	}

	var t Timex
	if dateText != "" && !extract(datePatterns, dateText, &t) {
		return Timex{}, false
	}
	if timeText != "" && !extract(timePatterns, timeText, &t) {
		return Timex{}, false
	}
	if t.hour.set {
		if !t.minute.set {
			t.minute = some(0)
		}
		if !t.second.set {
			t.second = some(0)
		}
	}
	return t, true
}

func extract(patterns []*regexp.Regexp, s string, t *Timex) bool {
	for _, re := range patterns {
		m := re.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		for i, name := range re.SubexpNames() {
			if name != "" {
				t.assign(name, m[i])
			}
		}
		return true
	}
	return false
}

func (t *Timex) assign(name, value string) {
	n, _ := strconv.Atoi(value)
	switch name {
	case "year":
		t.year = some(n)
	case "month":
		t.month = some(n)
	case "dayOfMonth":
		t.dayOfMonth = some(n)
	case "dayOfWeek":
		t.dayOfWeek = some(n)
	case "weekOfYear":
		t.weekOfYear = some(n)
	case "weekOfMonth":
		t.weekOfMonth = some(n)
	case "season":
		t.season = Season(value)
	case "weekend":
		t.weekend = true
	case "hour":
		t.hour = some(n)
	case "minute":
		t.minute = some(n)
	case "second":
		t.second = some(n)
	case "partOfDay":
		t.partOfDay = PartOfDay(value)
	}
}
