package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserError(t *testing.T) {
	err := NewUserError("Title cannot be empty", "Provide a title")
	assert.Equal(t, "Title cannot be empty", err.Error())
	assert.True(t, IsUserError(err))
	assert.False(t, IsSystemError(err))

	t.Run("field context appears in the message", func(t *testing.T) {
		err := NewUserErrorWithField("date", "someday", "Could not understand date", "Try 'today'")
		assert.Contains(t, err.Error(), "someday")
	})

	t.Run("detected through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("adding task: %w", err)
		assert.True(t, IsUserError(wrapped))
	})
}

func TestSystemError(t *testing.T) {
	cause := New("disk full")
	err := NewSystemErrorWithOp("task add", "failed to write task", cause)

	assert.True(t, IsSystemError(err))
	assert.False(t, IsUserError(err))
	assert.Contains(t, err.Error(), "task add")
	assert.True(t, Is(err, cause), "unwraps to the cause")
}

func TestSentinels(t *testing.T) {
	wrapped := fmt.Errorf("store: %w", ErrEndBeforeStart)
	assert.True(t, Is(wrapped, ErrEndBeforeStart))
	assert.False(t, Is(wrapped, ErrInvalidAmount))
}
