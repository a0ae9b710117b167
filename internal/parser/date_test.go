package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/planner/internal/dateutil"
	"github.com/manav03panchal/planner/internal/errors"
)

func TestParseDate_Keywords(t *testing.T) {
	today := dateutil.StartOfDay(time.Now())

	for _, input := range []string{"today", "Today", "now", ""} {
		got, err := ParseDate(input, time.Monday)
		require.NoError(t, err, input)
		assert.True(t, got.Equal(today), input)
	}

	got, err := ParseDate("tomorrow", time.Monday)
	require.NoError(t, err)
	assert.True(t, got.Equal(today.AddDate(0, 0, 1)))

	got, err = ParseDate("yesterday", time.Monday)
	require.NoError(t, err)
	assert.True(t, got.Equal(today.AddDate(0, 0, -1)))
}

func TestParseDate_Absolute(t *testing.T) {
	got, err := ParseDate("2026-03-01", time.Monday)
	require.NoError(t, err)
	assert.Equal(t, 2026, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 1, got.Day())
	assert.Equal(t, 0, got.Hour(), "normalized to start of day")
}

func TestParseDate_Periods(t *testing.T) {
	now := time.Now()

	t.Run("this week honors the week start", func(t *testing.T) {
		got, err := ParseDate("this week", time.Monday)
		require.NoError(t, err)
		assert.True(t, got.Equal(dateutil.StartOfWeek(now, time.Monday)))

		got, err = ParseDate("this week", time.Sunday)
		require.NoError(t, err)
		assert.True(t, got.Equal(dateutil.StartOfWeek(now, time.Sunday)))
	})

	t.Run("next and last shift by one period", func(t *testing.T) {
		got, err := ParseDate("next week", time.Monday)
		require.NoError(t, err)
		assert.True(t, got.Equal(dateutil.StartOfWeek(now.AddDate(0, 0, 7), time.Monday)))

		got, err = ParseDate("last month", time.Monday)
		require.NoError(t, err)
		assert.True(t, got.Equal(dateutil.StartOfMonth(now.AddDate(0, -1, 0))))

		got, err = ParseDate("next year", time.Monday)
		require.NoError(t, err)
		assert.True(t, got.Equal(dateutil.StartOfYear(now.AddDate(1, 0, 0))))
	})

	t.Run("case insensitive", func(t *testing.T) {
		got, err := ParseDate("This Month", time.Monday)
		require.NoError(t, err)
		assert.True(t, got.Equal(dateutil.StartOfMonth(now)))
	})
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := ParseDate("the heat death of the universe", time.Monday)
	require.Error(t, err)
	assert.True(t, errors.IsUserError(err))
}

func TestParseTime(t *testing.T) {
	t.Run("keeps the time of day", func(t *testing.T) {
		got, err := ParseTime("2026-03-01 09:30")
		require.NoError(t, err)
		assert.Equal(t, 9, got.Hour())
		assert.Equal(t, 30, got.Minute())
	})

	t.Run("now", func(t *testing.T) {
		before := time.Now()
		got, err := ParseTime("now")
		require.NoError(t, err)
		assert.WithinDuration(t, before, got, time.Second)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := ParseTime("whenever")
		require.Error(t, err)
		assert.True(t, errors.IsUserError(err))
	})
}
