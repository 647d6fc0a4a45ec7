package timex

import "github.com/manav03panchal/timex/civil"

// Builder assembles a Timex field by field.
//
//	t := timex.NewBuilder().Month(5).DayOfMonth(29).Time(19, 30, 0).Build()
//	t.String() // "XXXX-05-29T19:30"
type Builder struct {
	t Timex
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Edit returns a builder seeded with the fields of t.
func (t Timex) Edit() *Builder {
	b := &Builder{t: t}
	b.t.rng = nil
	return b
}

// Build returns the assembled value.
func (b *Builder) Build() Timex {
	return b.t
}

// Now marks the value as PRESENT_REF.
func (b *Builder) Now() *Builder { b.t.now = true; return b }

func (b *Builder) Year(v int) *Builder        { b.t.year = some(v); return b }
func (b *Builder) Month(v int) *Builder       { b.t.month = some(v); return b }
func (b *Builder) DayOfMonth(v int) *Builder  { b.t.dayOfMonth = some(v); return b }
func (b *Builder) WeekOfYear(v int) *Builder  { b.t.weekOfYear = some(v); return b }
func (b *Builder) WeekOfMonth(v int) *Builder { b.t.weekOfMonth = some(v); return b }
func (b *Builder) Season(s Season) *Builder   { b.t.season = s; return b }

func (b *Builder) DayOfWeek(w civil.Weekday) *Builder {
	b.t.dayOfWeek = some(int(w))
	return b
}

// Weekend marks a year-week value as the weekend of that week.
func (b *Builder) Weekend() *Builder { b.t.weekend = true; return b }

// Date sets year, month and day of month.
func (b *Builder) Date(d civil.Date) *Builder {
	b.t.year, b.t.month, b.t.dayOfMonth = some(d.Year), some(d.Month), some(d.Day)
	return b
}

// Hour sets the hour. Minute and second default to zero.
func (b *Builder) Hour(v int) *Builder {
	b.t.hour = some(v)
	if !b.t.minute.set {
		b.t.minute = some(0)
	}
	if !b.t.second.set {
		b.t.second = some(0)
	}
	return b
}

// Minute sets the minute. Hour and second default to zero.
func (b *Builder) Minute(v int) *Builder {
	b.t.minute = some(v)
	if !b.t.hour.set {
		b.t.hour = some(0)
	}
	if !b.t.second.set {
		b.t.second = some(0)
	}
	return b
}

// Second sets the second. Hour and minute default to zero.
func (b *Builder) Second(v int) *Builder {
	b.t.second = some(v)
	if !b.t.hour.set {
		b.t.hour = some(0)
	}
	if !b.t.minute.set {
		b.t.minute = some(0)
	}
	return b
}

// Time sets hour, minute and second together.
func (b *Builder) Time(hour, minute, second int) *Builder {
	b.t.hour, b.t.minute, b.t.second = some(hour), some(minute), some(second)
	return b
}

func (b *Builder) PartOfDay(p PartOfDay) *Builder { b.t.partOfDay = p; return b }

func (b *Builder) Years(v float64) *Builder   { b.t.years = some(v); return b }
func (b *Builder) Months(v float64) *Builder  { b.t.months = some(v); return b }
func (b *Builder) Weeks(v float64) *Builder   { b.t.weeks = some(v); return b }
func (b *Builder) Days(v float64) *Builder    { b.t.days = some(v); return b }
func (b *Builder) Hours(v float64) *Builder   { b.t.hours = some(v); return b }
func (b *Builder) Minutes(v float64) *Builder { b.t.minutes = some(v); return b }
func (b *Builder) Seconds(v float64) *Builder { b.t.seconds = some(v); return b }

// ClearDate unsets every date and date-range field.
func (b *Builder) ClearDate() *Builder {
	b.t.year, b.t.month, b.t.dayOfMonth, b.t.dayOfWeek = field[int]{}, field[int]{}, field[int]{}, field[int]{}
	b.t.weekOfYear, b.t.weekOfMonth = field[int]{}, field[int]{}
	b.t.season, b.t.weekend = "", false
	return b
}

// ClearTime unsets hour, minute, second and part of day.
func (b *Builder) ClearTime() *Builder {
	b.t.hour, b.t.minute, b.t.second = field[int]{}, field[int]{}, field[int]{}
	b.t.partOfDay = ""
	return b
}

// ClearDuration unsets every duration amount.
func (b *Builder) ClearDuration() *Builder {
	b.t = b.t.withoutDuration()
	return b
}
