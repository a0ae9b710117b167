// Package parser provides natural language date parsing for the CLI.
package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/manav03panchal/planner/internal/dateutil"
	"github.com/manav03panchal/planner/internal/errors"
)

// periodRegex matches period expressions like "this week", "last month".
var periodRegex = regexp.MustCompile(`(?i)^(this|current|last|previous|next)\s+(day|week|month|year)$`)

// ParseDate parses a natural language date expression into a calendar
// day: "today", "tomorrow", "next monday", "2026-03-01". The week
// start feeds week-period expressions.
func ParseDate(input string, weekStart time.Weekday) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" || strings.EqualFold(input, "today") || strings.EqualFold(input, "now") {
		return dateutil.StartOfDay(time.Now()), nil
	}

	if match := periodRegex.FindStringSubmatch(input); match != nil {
		return parsePeriod(match[1], match[2], weekStart), nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: time.Now(),
	}
	result, err := dateparser.Parse(cfg, input)
	if err != nil {
		return time.Time{}, errors.NewUserErrorWithField("date", input,
			"Could not understand date",
			"Try 'today', 'tomorrow', 'next monday', or 2026-03-01")
	}

	return dateutil.StartOfDay(result.Time), nil
}

// ParseTime parses a natural language timestamp, keeping time of day.
func ParseTime(input string) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" || strings.EqualFold(input, "now") {
		return time.Now(), nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: time.Now(),
	}
	result, err := dateparser.Parse(cfg, input)
	if err != nil {
		return time.Time{}, errors.NewUserErrorWithField("time", input,
			"Could not understand time",
			"Try 'tomorrow 14:00' or '2026-03-01 09:30'")
	}

	return result.Time, nil
}

// parsePeriod resolves this/last/next day/week/month/year to the
// period's first day.
func parsePeriod(modifier, period string, weekStart time.Weekday) time.Time {
	now := time.Now()
	shift := 0
	switch strings.ToLower(modifier) {
	case "last", "previous":
		shift = -1
	case "next":
		shift = 1
	}

	switch strings.ToLower(period) {
	case "day":
		return dateutil.StartOfDay(now.AddDate(0, 0, shift))
	case "week":
		return dateutil.StartOfWeek(now.AddDate(0, 0, shift*7), weekStart)
	case "month":
		return dateutil.StartOfMonth(now.AddDate(0, shift, 0))
	default: // year
		return dateutil.StartOfYear(now.AddDate(shift, 0, 0))
	}
}
