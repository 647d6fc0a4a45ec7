package civil

// DateRange is the half-open interval [Start, End) of days.
type DateRange struct {
	Start Date
	End   Date
}

// Contains reports whether d lies in r.
func (r DateRange) Contains(d Date) bool {
	return !d.Before(r.Start) && d.Before(r.End)
}

// IsEmpty reports whether r holds no day.
func (r DateRange) IsEmpty() bool {
	return !r.Start.Before(r.End)
}

// Overlaps reports whether r and o share at least one day.
func (r DateRange) Overlaps(o DateRange) bool {
	return r.Start.Before(o.End) && o.Start.Before(r.End)
}

// Intersect returns the days common to r and o.
func (r DateRange) Intersect(o DateRange) DateRange {
	out := r
	if o.Start.After(out.Start) {
		out.Start = o.Start
	}
	if o.End.Before(out.End) {
		out.End = o.End
	}
	return out
}

// Days returns every day in r in order.
func (r DateRange) Days() []Date {
	var days []Date
	for d := r.Start; d.Before(r.End); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}

// String formats r as [start,end).
func (r DateRange) String() string {
	return "[" + r.Start.String() + "," + r.End.String() + ")"
}

// TimeRange is the half-open interval [Start, End) of clock times.
type TimeRange struct {
	Start Time
	End   Time
}

// Contains reports whether t lies in r.
func (r TimeRange) Contains(t Time) bool {
	return t.Compare(r.Start) >= 0 && t.Compare(r.End) < 0
}

// IsEmpty reports whether r holds no instant.
func (r TimeRange) IsEmpty() bool {
	return r.Start.Compare(r.End) >= 0
}

// Overlaps reports whether r and o share an instant.
func (r TimeRange) Overlaps(o TimeRange) bool {
	return r.Start.Compare(o.End) < 0 && o.Start.Compare(r.End) < 0
}

// Intersect returns the times common to r and o.
func (r TimeRange) Intersect(o TimeRange) TimeRange {
	out := r
	if o.Start.Compare(out.Start) > 0 {
		out.Start = o.Start
	}
	if o.End.Compare(out.End) < 0 {
		out.End = o.End
	}
	return out
}

// String formats r as [start,end).
func (r TimeRange) String() string {
	return "[" + r.Start.String() + "," + r.End.String() + ")"
}
