package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/planner/internal/errors"
)

func TestTitle(t *testing.T) {
	assert.NoError(t, Title("write report"))
	assert.Error(t, Title(""))
	assert.NoError(t, Title(strings.Repeat("a", MaxTitleLength)))
	assert.Error(t, Title(strings.Repeat("a", MaxTitleLength+1)))

	err := Title("")
	assert.True(t, errors.IsUserError(err))
}

func TestContent(t *testing.T) {
	assert.NoError(t, Content(""))
	assert.NoError(t, Content("short note"))
	assert.Error(t, Content(strings.Repeat("a", MaxContentLength+1)))
}

func TestHexColor(t *testing.T) {
	valid := []string{"", "#FFF", "#7C3AED", "#abc123"}
	for _, c := range valid {
		assert.NoError(t, HexColor(c), c)
	}

	invalid := []string{"FFF", "#GGGGGG", "#12345", "red", "#1234567"}
	for _, c := range invalid {
		assert.Error(t, HexColor(c), c)
	}
}

func TestTimeOfDay(t *testing.T) {
	valid := []string{"", "00:00", "09:30", "23:59"}
	for _, v := range valid {
		assert.NoError(t, TimeOfDay(v), v)
	}

	invalid := []string{"24:00", "9:30", "09:60", "noon", "09.30"}
	for _, v := range invalid {
		assert.Error(t, TimeOfDay(v), v)
	}
}

func TestAmount(t *testing.T) {
	amount, err := Amount("99.50")
	require.NoError(t, err)
	assert.Equal(t, 99.5, amount)

	amount, err = Amount("0")
	require.NoError(t, err)
	assert.Equal(t, 0.0, amount)

	_, err = Amount("-1")
	assert.Error(t, err)
	_, err = Amount("lots")
	assert.Error(t, err)
}

func TestTags(t *testing.T) {
	assert.NoError(t, Tags(nil))
	assert.NoError(t, Tags([]string{"work", "urgent"}))
	assert.Error(t, Tags([]string{"work", ""}))
	assert.Error(t, Tags([]string{strings.Repeat("x", MaxTagLength+1)}))
}

func TestWeekStart(t *testing.T) {
	day, err := WeekStart("0")
	require.NoError(t, err)
	assert.Equal(t, 0, day)

	day, err = WeekStart("1")
	require.NoError(t, err)
	assert.Equal(t, 1, day)

	for _, v := range []string{"2", "-1", "monday", ""} {
		_, err := WeekStart(v)
		assert.Error(t, err, v)
	}
}
