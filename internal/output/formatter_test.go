package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "150", FormatMoney(150))
	assert.Equal(t, "99.50", FormatMoney(99.5))
	assert.Equal(t, "0", FormatMoney(0))
	assert.Equal(t, "1234.57", FormatMoney(1234.567))
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, 10, len([]rune(ProgressBar(50, 10))))
	assert.Equal(t, strings.Repeat("█", 10), ProgressBar(100, 10))
	assert.Equal(t, strings.Repeat("░", 10), ProgressBar(0, 10))

	t.Run("clamps out-of-range percents", func(t *testing.T) {
		assert.Equal(t, ProgressBar(100, 10), ProgressBar(240, 10))
		assert.Equal(t, ProgressBar(0, 10), ProgressBar(-5, 10))
	})

	half := ProgressBar(50, 10)
	assert.Equal(t, 5, strings.Count(half, "█"))
	assert.Equal(t, 5, strings.Count(half, "░"))
}

func TestFormatter_JSON(t *testing.T) {
	var buf bytes.Buffer
	f := &Formatter{Writer: &buf, Format: FormatJSON}

	require.NoError(t, f.JSON(map[string]int{"count": 3}))

	var out map[string]int
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, 3, out["count"])
}

func TestFormatter_ColorMode(t *testing.T) {
	var buf bytes.Buffer

	f := &Formatter{Writer: &buf, ColorMode: ColorAlways}
	assert.True(t, f.IsColorEnabled())

	f.ColorMode = ColorNever
	assert.False(t, f.IsColorEnabled())

	// Auto with a non-terminal writer stays plain.
	f.ColorMode = ColorAuto
	assert.False(t, f.IsColorEnabled())
}
