package timex

// Set is a recurrence: a duration repeats every interval, any other value
// repeats on every match.
type Set struct {
	Timex Timex
}

// ParseSet parses the recurrence s, e.g. "P1D" or "XXXX-WXX-3".
func ParseSet(s string) Set {
	return Set{Timex: Parse(s)}
}

// String returns the canonical TIMEX string of the recurrence.
func (s Set) String() string {
	return Format(s.Timex)
}

// ConvertSet renders s in English: "every day", "every 2 days",
// "every Wednesday".
func ConvertSet(s Set) string {
	return ConvertSetWith(s, DefaultConvertOptions)
}

// ConvertSetWith is ConvertSet with explicit options.
func ConvertSetWith(s Set, opts ConvertOptions) string {
	t := s.Timex
	if t.Types() != Duration {
		return "every " + ConvertWith(t, opts)
	}
	units := durationUnits(t)
	if len(units) == 1 && units[0].v == 1 {
		return "every " + units[0].name
	}
	return "every " + convertDuration(t, opts)
}
