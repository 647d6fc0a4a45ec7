package civil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekday(t *testing.T) {
	assert.Equal(t, Sunday, WeekdayOf(time.Sunday))
	assert.Equal(t, Monday, WeekdayOf(time.Monday))
	assert.Equal(t, time.Sunday, Sunday.Std())
	assert.Equal(t, time.Saturday, Saturday.Std())
	assert.Equal(t, "Wednesday", Wednesday.String())
	assert.Equal(t, "Weekday(9)", Weekday(9).String())
	assert.False(t, Weekday(0).Valid())
}

func TestDate(t *testing.T) {
	t.Run("normalizes_overflow", func(t *testing.T) {
		assert.Equal(t, Date{2018, 1, 1}, NewDate(2017, 13, 1))
		assert.Equal(t, Date{2017, 2, 28}, NewDate(2017, 3, 0))
	})

	t.Run("add_days_crosses_year", func(t *testing.T) {
		assert.Equal(t, Date{2018, 1, 1}, Date{2017, 12, 31}.AddDays(1))
		assert.Equal(t, Date{2016, 2, 29}, Date{2016, 3, 1}.AddDays(-1))
	})

	t.Run("weekday", func(t *testing.T) {
		assert.Equal(t, Tuesday, Date{2017, 9, 26}.Weekday())
		assert.Equal(t, Sunday, Date{2019, 4, 21}.Weekday())
	})

	t.Run("compare", func(t *testing.T) {
		a := Date{2017, 9, 26}
		b := Date{2017, 10, 1}
		assert.True(t, a.Before(b))
		assert.True(t, b.After(a))
		assert.Equal(t, 0, a.Compare(a))
		assert.Equal(t, 5, a.DaysUntil(b))
		assert.Equal(t, -5, b.DaysUntil(a))
	})

	t.Run("validity", func(t *testing.T) {
		assert.True(t, Date{2016, 2, 29}.IsValid())
		assert.False(t, Date{2017, 2, 29}.IsValid())
		assert.False(t, Date{2017, 13, 1}.IsValid())
	})

	t.Run("string", func(t *testing.T) {
		assert.Equal(t, "2017-09-06", Date{2017, 9, 6}.String())
	})
}

func TestTime(t *testing.T) {
	assert.Equal(t, 16*3600+30*60, NewTime(16, 30, 0).Seconds())
	assert.Equal(t, Time{24, 0, 0}, TimeFromSeconds(24*3600))
	assert.Equal(t, "08:05:09", NewTime(8, 5, 9).String())
	assert.Equal(t, -1, NewTime(8, 0, 0).Compare(NewTime(8, 0, 1)))
}

func TestDateTime(t *testing.T) {
	dt := NewDateTime(2017, 9, 27, 23, 30, 0)
	assert.Equal(t, "2017-09-27 23:30:00", dt.String())
	assert.Equal(t, NewDateTime(2017, 9, 28, 0, 10, 0), dt.Add(40*time.Minute))
	assert.Equal(t, 1, dt.Add(time.Second).Compare(dt))
	assert.True(t, DateTime{}.IsZero())
}

func TestCalendar(t *testing.T) {
	t.Run("leap_years", func(t *testing.T) {
		assert.True(t, IsLeap(2000))
		assert.True(t, IsLeap(2016))
		assert.False(t, IsLeap(1900))
		assert.Equal(t, 29, DaysIn(2016, 2))
		assert.Equal(t, 28, DaysIn(2017, 2))
		assert.Equal(t, 31, DaysIn(2017, 12))
	})

	t.Run("start_of_week_is_monday", func(t *testing.T) {
		assert.Equal(t, Date{2017, 9, 25}, StartOfWeek(Date{2017, 9, 26}))
		assert.Equal(t, Date{2017, 9, 25}, StartOfWeek(Date{2017, 10, 1}))
		assert.Equal(t, Date{2017, 9, 25}, StartOfWeek(Date{2017, 9, 25}))
	})

	t.Run("this_next_last_week", func(t *testing.T) {
		ref := Date{2017, 9, 26}
		assert.True(t, IsThisWeek(Date{2017, 10, 1}, ref))
		assert.False(t, IsThisWeek(Date{2017, 10, 2}, ref))
		assert.True(t, IsNextWeek(Date{2017, 10, 2}, ref))
		assert.True(t, IsLastWeek(Date{2017, 9, 24}, ref))
		assert.False(t, IsLastWeek(Date{2017, 9, 25}, ref))
	})

	t.Run("last_and_next_day_are_strict", func(t *testing.T) {
		ref := Date{2019, 4, 21} // Sunday
		assert.Equal(t, Date{2019, 4, 14}, DateOfLastDay(Sunday, ref))
		assert.Equal(t, Date{2019, 4, 28}, DateOfNextDay(Sunday, ref))
		assert.Equal(t, Date{2019, 4, 20}, DateOfLastDay(Saturday, ref))
		assert.Equal(t, Date{2019, 4, 22}, DateOfNextDay(Monday, ref))
	})

	t.Run("dates_matching_day", func(t *testing.T) {
		got := DatesMatchingDay(Saturday, Date{2017, 9, 1}, Date{2017, 10, 1})
		assert.Equal(t, []Date{
			{2017, 9, 2}, {2017, 9, 9}, {2017, 9, 16}, {2017, 9, 23}, {2017, 9, 30},
		}, got)
		assert.Empty(t, DatesMatchingDay(Sunday, Date{2017, 9, 25}, Date{2017, 9, 30}))
	})

	t.Run("nth_weekday_of_month", func(t *testing.T) {
		d, ok := NthWeekdayOfMonth(2017, 5, Monday, 3)
		assert.True(t, ok)
		assert.Equal(t, Date{2017, 5, 15}, d)

		d, ok = NthWeekdayOfMonth(2017, 5, Monday, 5)
		assert.True(t, ok)
		assert.Equal(t, Date{2017, 5, 29}, d)

		_, ok = NthWeekdayOfMonth(2017, 6, Monday, 5)
		assert.False(t, ok)
	})

	t.Run("iso_week_start", func(t *testing.T) {
		assert.Equal(t, Date{2020, 12, 28}, ISOWeekStart(2020, 53))
		assert.Equal(t, Date{2024, 1, 1}, ISOWeekStart(2024, 1))
		assert.Equal(t, Date{2017, 9, 25}, ISOWeekStart(2017, 39))
		assert.Equal(t, Date{2018, 12, 31}, ISOWeekStart(2019, 1))
	})

	t.Run("weeks_in_year", func(t *testing.T) {
		assert.Equal(t, 53, WeeksInYear(2020))
		assert.Equal(t, 52, WeeksInYear(2021))
		assert.Equal(t, 52, WeeksInYear(2024))
	})

	t.Run("week_of_month_start", func(t *testing.T) {
		// April 2017 starts on a Saturday; its first Thursday is the 6th.
		assert.Equal(t, Date{2017, 4, 3}, WeekOfMonthStart(2017, 4, 1))
		assert.Equal(t, Date{2017, 4, 10}, WeekOfMonthStart(2017, 4, 2))
	})
}

func TestRanges(t *testing.T) {
	t.Run("date_range", func(t *testing.T) {
		r := DateRange{Start: Date{2017, 9, 27}, End: Date{2017, 9, 29}}
		assert.True(t, r.Contains(Date{2017, 9, 28}))
		assert.False(t, r.Contains(Date{2017, 9, 29}))
		assert.Len(t, r.Days(), 2)
		assert.Equal(t, "[2017-09-27,2017-09-29)", r.String())

		o := DateRange{Start: Date{2017, 9, 28}, End: Date{2017, 10, 5}}
		assert.True(t, r.Overlaps(o))
		assert.Equal(t, DateRange{Start: Date{2017, 9, 28}, End: Date{2017, 9, 29}}, r.Intersect(o))

		adjacent := DateRange{Start: Date{2017, 9, 29}, End: Date{2017, 9, 30}}
		assert.False(t, r.Overlaps(adjacent))
		assert.True(t, r.Intersect(adjacent).IsEmpty())
	})

	t.Run("time_range", func(t *testing.T) {
		r := TimeRange{Start: NewTime(14, 0, 0), End: NewTime(18, 0, 0)}
		assert.True(t, r.Contains(NewTime(16, 30, 0)))
		assert.False(t, r.Contains(NewTime(18, 0, 0)))
		assert.False(t, r.Contains(NewTime(12, 0, 0)))

		o := TimeRange{Start: NewTime(16, 0, 0), End: NewTime(20, 0, 0)}
		assert.True(t, r.Overlaps(o))
		assert.Equal(t, TimeRange{Start: NewTime(16, 0, 0), End: NewTime(18, 0, 0)}, r.Intersect(o))

		night := TimeRange{Start: NewTime(20, 0, 0), End: NewTime(24, 0, 0)}
		assert.True(t, night.Contains(NewTime(23, 59, 59)))
		assert.False(t, night.Overlaps(r))
	})
}
