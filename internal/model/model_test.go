package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewID(t *testing.T) {
	a := NewID()
	b := NewID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "task:abc", GenerateTaskKey("abc"))
	assert.Equal(t, "habit:abc", GenerateHabitKey("abc"))
	assert.Equal(t, "goal:abc", GenerateGoalKey("abc"))
	assert.Equal(t, "note:abc", GenerateNoteKey("abc"))
	assert.Equal(t, "meeting:abc", GenerateMeetingKey("abc"))

	day := time.Date(2026, 9, 1, 15, 4, 5, 0, time.Local)
	assert.Equal(t, "habitlog:h1:2026-09-01", GenerateHabitLogKey("h1", day))
	assert.Equal(t, "habitlog:h1:", HabitLogPrefix("h1"))
}

func TestTaskPatch_Apply(t *testing.T) {
	task := NewTask("draft", "desc", time.Now(), PriorityLow, CategoryDay)

	title := "final"
	completed := true
	patch := TaskPatch{Title: &title, Completed: &completed}
	patch.Apply(task)

	assert.Equal(t, "final", task.Title)
	assert.True(t, task.Completed)
	assert.Equal(t, "desc", task.Description, "unpatched fields are untouched")
	assert.Equal(t, PriorityLow, task.Priority)

	t.Run("reminder can be cleared", func(t *testing.T) {
		at := time.Now()
		task.ReminderAt = &at

		var cleared *time.Time
		TaskPatch{ReminderAt: &cleared}.Apply(task)
		assert.Nil(t, task.ReminderAt)
	})
}

func TestNewHabitLog(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)
	log := NewHabitLog("h1", day)

	assert.True(t, log.Completed, "toggle creates a completed log")
	assert.Equal(t, "h1", log.HabitID)
	assert.Equal(t, GenerateHabitLogKey("h1", day), log.Key)
}

func TestFinancialGoal_Progress(t *testing.T) {
	goal := NewFinancialGoal("laptop", 1800)
	assert.Equal(t, 0, goal.Progress())

	goal.CurrentAmount = 600
	assert.Equal(t, 33, goal.Progress())

	goal.CurrentAmount = 1800
	assert.Equal(t, 100, goal.Progress())

	t.Run("zero target", func(t *testing.T) {
		empty := NewFinancialGoal("someday", 0)
		empty.CurrentAmount = 50
		assert.Equal(t, 0, empty.Progress())
	})
}

func TestSettings_NextTheme(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, ThemeSystem, s.Theme)

	s.Theme = s.NextTheme()
	assert.Equal(t, ThemeLight, s.Theme)
	s.Theme = s.NextTheme()
	assert.Equal(t, ThemeDark, s.Theme)
	s.Theme = s.NextTheme()
	assert.Equal(t, ThemeSystem, s.Theme)
}
