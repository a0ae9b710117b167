// Package validate provides input validation helpers for the Planner CLI.
package validate

import (
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/manav03panchal/planner/internal/errors"
)

const (
	// MaxTitleLength is the maximum length for titles and names.
	MaxTitleLength = 256
	// MaxContentLength is the maximum length for note content.
	MaxContentLength = 65536
	// MaxTagLength is the maximum length for a single tag.
	MaxTagLength = 64
)

// hexColorRegex validates #RGB and #RRGGBB colors.
var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// timeOfDayRegex validates HH:MM time-of-day strings.
var timeOfDayRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// Title validates a title or name field.
func Title(title string) error {
	if title == "" {
		return errors.NewUserError("Title cannot be empty", "Provide a title")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return errors.NewUserErrorWithField("title", title,
			"Title too long",
			"Titles must be 256 characters or fewer")
	}
	return nil
}

// Content validates note content length.
func Content(content string) error {
	if utf8.RuneCountInString(content) > MaxContentLength {
		return errors.NewUserError("Content too long", "Notes must be 65536 characters or fewer")
	}
	return nil
}

// HexColor validates an optional hex color value.
func HexColor(color string) error {
	if color == "" {
		return nil
	}
	if !hexColorRegex.MatchString(color) {
		return errors.NewUserErrorWithField("color", color,
			"Invalid color format",
			"Use hex colors like #7C3AED or #FFF")
	}
	return nil
}

// TimeOfDay validates an optional HH:MM time string.
func TimeOfDay(value string) error {
	if value == "" {
		return nil
	}
	if !timeOfDayRegex.MatchString(value) {
		return errors.NewUserErrorWithField("time", value,
			"Invalid time of day",
			"Use 24-hour HH:MM, for example 09:30")
	}
	return nil
}

// Amount validates a non-negative money amount.
func Amount(value string) (float64, error) {
	amount, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errors.NewUserErrorWithField("amount", value,
			"Invalid amount",
			"Provide a number, for example 150 or 99.50")
	}
	if amount < 0 {
		return 0, errors.NewUserErrorWithField("amount", value,
			"Amount cannot be negative",
			"Provide a non-negative number")
	}
	return amount, nil
}

// Tags validates a list of tags.
func Tags(tags []string) error {
	for _, tag := range tags {
		if tag == "" {
			return errors.NewUserError("Tags cannot be empty", "Remove the empty tag")
		}
		if utf8.RuneCountInString(tag) > MaxTagLength {
			return errors.NewUserErrorWithField("tag", tag,
				"Tag too long",
				"Tags must be 64 characters or fewer")
		}
	}
	return nil
}

// WeekStart validates a configured week start day (0 Sunday, 1 Monday).
func WeekStart(value string) (int, error) {
	day, err := strconv.Atoi(value)
	if err != nil || (day != 0 && day != 1) {
		return 0, errors.NewUserErrorWithField("week-start", value,
			"Invalid week start",
			"Use 0 for Sunday or 1 for Monday")
	}
	return day, nil
}
