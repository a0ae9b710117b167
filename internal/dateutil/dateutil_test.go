package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// wednesday is an arbitrary fixed mid-week day used across the tests.
var wednesday = time.Date(2026, 9, 2, 15, 30, 45, 0, time.Local)

func TestDayBounds(t *testing.T) {
	start := StartOfDay(wednesday)
	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, 0, start.Minute())
	assert.Equal(t, wednesday.Day(), start.Day())

	end := EndOfDay(wednesday)
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, wednesday.Day(), end.Day())
	assert.True(t, end.Before(start.AddDate(0, 0, 1)))
}

func TestWeekBounds(t *testing.T) {
	t.Run("monday week start", func(t *testing.T) {
		start := StartOfWeek(wednesday, time.Monday)
		assert.Equal(t, time.Monday, start.Weekday())
		assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local), start)

		end := EndOfWeek(wednesday, time.Monday)
		assert.Equal(t, time.Sunday, end.Weekday())
		assert.Equal(t, 6, end.Day())
	})

	t.Run("sunday week start", func(t *testing.T) {
		start := StartOfWeek(wednesday, time.Sunday)
		assert.Equal(t, time.Sunday, start.Weekday())
		assert.Equal(t, time.Date(2026, 8, 30, 0, 0, 0, 0, time.Local), start)

		end := EndOfWeek(wednesday, time.Sunday)
		assert.Equal(t, time.Saturday, end.Weekday())
	})

	t.Run("day on the boundary stays in its week", func(t *testing.T) {
		monday := time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local)
		assert.Equal(t, monday, StartOfWeek(monday, time.Monday))

		sunday := time.Date(2026, 9, 6, 12, 0, 0, 0, time.Local)
		assert.Equal(t, monday, StartOfWeek(sunday, time.Monday))
	})
}

func TestMonthAndYearBounds(t *testing.T) {
	start := StartOfMonth(wednesday)
	assert.Equal(t, 1, start.Day())
	assert.Equal(t, time.September, start.Month())

	end := EndOfMonth(wednesday)
	assert.Equal(t, 30, end.Day())

	assert.Equal(t, time.January, StartOfYear(wednesday).Month())
	assert.Equal(t, time.December, EndOfYear(wednesday).Month())
	assert.Equal(t, 31, EndOfYear(wednesday).Day())
}

func TestSamePeriod(t *testing.T) {
	morning := time.Date(2026, 9, 2, 8, 0, 0, 0, time.Local)
	night := time.Date(2026, 9, 2, 23, 59, 0, 0, time.Local)
	nextDay := time.Date(2026, 9, 3, 0, 1, 0, 0, time.Local)

	assert.True(t, SameDay(morning, night))
	assert.False(t, SameDay(night, nextDay))

	assert.True(t, SameWeek(morning, nextDay, time.Monday))
	sunday := time.Date(2026, 9, 6, 12, 0, 0, 0, time.Local)
	monday := time.Date(2026, 9, 7, 12, 0, 0, 0, time.Local)
	assert.True(t, SameWeek(morning, sunday, time.Monday))
	assert.False(t, SameWeek(morning, monday, time.Monday))
	// With Sunday weeks the same pair lands in different weeks earlier.
	assert.False(t, SameWeek(morning, sunday, time.Sunday))

	assert.True(t, SameMonth(morning, time.Date(2026, 9, 30, 0, 0, 0, 0, time.Local)))
	assert.False(t, SameMonth(morning, time.Date(2026, 10, 1, 0, 0, 0, 0, time.Local)))

	assert.True(t, SameYear(morning, time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local)))
	assert.False(t, SameYear(morning, time.Date(2027, 1, 1, 0, 0, 0, 0, time.Local)))
}

func TestWeekDays(t *testing.T) {
	days := WeekDays(wednesday, time.Monday)
	assert.Len(t, days, 7)
	assert.Equal(t, time.Monday, days[0].Weekday())
	assert.Equal(t, time.Sunday, days[6].Weekday())
	for i := 1; i < len(days); i++ {
		assert.Equal(t, days[i-1].AddDate(0, 0, 1), days[i])
	}
}

func TestMonthDays(t *testing.T) {
	days := MonthDays(wednesday)
	assert.Len(t, days, 30)
	assert.Equal(t, 1, days[0].Day())
	assert.Equal(t, 30, days[len(days)-1].Day())

	feb := MonthDays(time.Date(2028, 2, 10, 0, 0, 0, 0, time.Local))
	assert.Len(t, feb, 29)
}

func TestMonthCalendarDays(t *testing.T) {
	t.Run("grid is whole weeks", func(t *testing.T) {
		for month := time.January; month <= time.December; month++ {
			day := time.Date(2026, month, 15, 0, 0, 0, 0, time.Local)
			grid := MonthCalendarDays(day, time.Monday)
			assert.Zero(t, len(grid)%7, "month %s", month)
			assert.Equal(t, time.Monday, grid[0].Weekday())
			assert.Equal(t, time.Sunday, grid[len(grid)-1].Weekday())
		}
	})

	t.Run("grid covers the month", func(t *testing.T) {
		grid := MonthCalendarDays(wednesday, time.Monday)
		assert.False(t, grid[0].After(StartOfMonth(wednesday)))
		assert.False(t, grid[len(grid)-1].Before(StartOfDay(EndOfMonth(wednesday))))
	})

	t.Run("week start shifts the padding", func(t *testing.T) {
		grid := MonthCalendarDays(wednesday, time.Sunday)
		assert.Zero(t, len(grid)%7)
		assert.Equal(t, time.Sunday, grid[0].Weekday())
	})
}

func TestYearMonths(t *testing.T) {
	months := YearMonths(wednesday)
	assert.Len(t, months, 12)
	assert.Equal(t, time.January, months[0].Month())
	assert.Equal(t, time.December, months[11].Month())
	for _, m := range months {
		assert.Equal(t, 1, m.Day())
	}
}

func TestRelativeLabel(t *testing.T) {
	now := wednesday

	assert.Equal(t, "Today", RelativeLabel(now, now))
	assert.Equal(t, "Tomorrow", RelativeLabel(now.AddDate(0, 0, 1), now))
	assert.Equal(t, "Yesterday", RelativeLabel(now.AddDate(0, 0, -1), now))

	// Within a week ahead the weekday name is used.
	saturday := now.AddDate(0, 0, 3)
	assert.Equal(t, "Saturday", RelativeLabel(saturday, now))

	// Further out, a short date.
	assert.Equal(t, "12 September", RelativeLabel(now.AddDate(0, 0, 10), now))
	// And anything more than a day in the past.
	assert.Equal(t, "30 August", RelativeLabel(now.AddDate(0, 0, -3), now))
}
