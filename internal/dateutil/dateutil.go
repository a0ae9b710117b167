// Package dateutil provides pure calendar math over local time.
//
// All functions operate on local calendar day boundaries and carry no
// state. Week-based helpers take the weekday that begins the week, so
// callers can honor the configured week start (Sunday or Monday).
package dateutil

import (
	"fmt"
	"time"
)

// StartOfDay returns midnight at the beginning of t's calendar day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// StartOfWeek returns midnight on the first day of t's week.
func StartOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	day := StartOfDay(t)
	offset := (int(day.Weekday()) - int(weekStart) + 7) % 7
	return day.AddDate(0, 0, -offset)
}

// EndOfWeek returns the last nanosecond of t's week.
func EndOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	return StartOfWeek(t, weekStart).AddDate(0, 0, 7).Add(-time.Nanosecond)
}

// StartOfMonth returns midnight on the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last nanosecond of t's month.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// StartOfYear returns midnight on January 1 of t's year.
func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// EndOfYear returns the last nanosecond of December 31 of t's year.
func EndOfYear(t time.Time) time.Time {
	return StartOfYear(t).AddDate(1, 0, 0).Add(-time.Nanosecond)
}

// AddDays returns t shifted by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// SameWeek reports whether a and b fall in the same week.
func SameWeek(a, b time.Time, weekStart time.Weekday) bool {
	return StartOfWeek(a, weekStart).Equal(StartOfWeek(b, weekStart))
}

// SameMonth reports whether a and b fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// SameYear reports whether a and b fall in the same calendar year.
func SameYear(a, b time.Time) bool {
	return a.Year() == b.Year()
}

// IsToday reports whether t falls on the current calendar day.
func IsToday(t time.Time) bool {
	return SameDay(t, time.Now())
}

// WeekDays returns the seven days of t's week, in order.
func WeekDays(t time.Time, weekStart time.Weekday) []time.Time {
	start := StartOfWeek(t, weekStart)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// MonthDays returns every day of t's month, in order.
func MonthDays(t time.Time) []time.Time {
	start := StartOfMonth(t)
	end := EndOfMonth(t)
	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// MonthCalendarDays returns the full calendar grid for t's month: every
// day of the month plus the leading and trailing days from adjacent
// months needed to fill whole weeks. The result length is always a
// multiple of 7.
func MonthCalendarDays(t time.Time, weekStart time.Weekday) []time.Time {
	gridStart := StartOfWeek(StartOfMonth(t), weekStart)
	gridEnd := EndOfWeek(EndOfMonth(t), weekStart)
	var days []time.Time
	for d := gridStart; d.Before(gridEnd); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// YearMonths returns the twelve month-start days of t's year.
func YearMonths(t time.Time) []time.Time {
	start := StartOfYear(t)
	months := make([]time.Time, 12)
	for i := range months {
		months[i] = start.AddDate(0, i, 0)
	}
	return months
}

// RelativeLabel formats a date relative to now: Today, Tomorrow and
// Yesterday by name, the weekday name for dates up to a week ahead,
// and a short date otherwise.
func RelativeLabel(t, now time.Time) string {
	switch {
	case SameDay(t, now):
		return "Today"
	case SameDay(t, now.AddDate(0, 0, 1)):
		return "Tomorrow"
	case SameDay(t, now.AddDate(0, 0, -1)):
		return "Yesterday"
	}

	diff := int(StartOfDay(t).Sub(StartOfDay(now)).Hours() / 24)
	if diff > 0 && diff <= 7 {
		return t.Weekday().String()
	}
	return fmt.Sprintf("%d %s", t.Day(), t.Month().String())
}
