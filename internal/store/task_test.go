package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/planner/internal/dateutil"
	"github.com/manav03panchal/planner/internal/model"
	"github.com/manav03panchal/planner/internal/storage"
)

func TestTaskStore_Add(t *testing.T) {
	s := newTaskStore(t)

	task, err := s.Add(model.Task{Title: "write report", Date: time.Now()})
	require.NoError(t, err)

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, model.PriorityMedium, task.Priority, "priority defaults to medium")
	assert.Equal(t, model.CategoryDay, task.Category, "category defaults to day")
	assert.False(t, task.CreatedAt.IsZero())
	assert.Equal(t, task.CreatedAt, task.UpdatedAt)

	assert.Len(t, s.Tasks(), 1)
	assert.Equal(t, task.ID, s.Get(task.ID).ID)
}

func TestTaskStore_Update(t *testing.T) {
	s := newTaskStore(t)

	task, err := s.Add(model.Task{Title: "draft", Date: time.Now()})
	require.NoError(t, err)

	title := "final"
	priority := model.PriorityHigh
	require.NoError(t, s.Update(task.ID, model.TaskPatch{Title: &title, Priority: &priority}))

	got := s.Get(task.ID)
	assert.Equal(t, "final", got.Title)
	assert.Equal(t, model.PriorityHigh, got.Priority)
	assert.Equal(t, task.Date, got.Date, "unpatched fields are untouched")
	assert.False(t, got.UpdatedAt.Before(task.UpdatedAt))

	t.Run("absent id is a no-op", func(t *testing.T) {
		require.NoError(t, s.Update("no-such-id", model.TaskPatch{Title: &title}))
		assert.Len(t, s.Tasks(), 1)
	})
}

func TestTaskStore_Toggle(t *testing.T) {
	s := newTaskStore(t)

	task, err := s.Add(model.Task{Title: "flip me", Date: time.Now()})
	require.NoError(t, err)
	assert.False(t, task.Completed)

	require.NoError(t, s.Toggle(task.ID))
	assert.True(t, s.Get(task.ID).Completed)

	require.NoError(t, s.Toggle(task.ID))
	assert.False(t, s.Get(task.ID).Completed)

	require.NoError(t, s.Toggle("no-such-id"))
}

func TestTaskStore_Delete(t *testing.T) {
	s := newTaskStore(t)

	task, err := s.Add(model.Task{Title: "remove me", Date: time.Now()})
	require.NoError(t, err)

	require.NoError(t, s.Delete(task.ID))
	assert.Nil(t, s.Get(task.ID))
	assert.Empty(t, s.Tasks())

	require.NoError(t, s.Delete(task.ID), "second delete is a no-op")
}

func TestTaskStore_Load_SurvivesReopen(t *testing.T) {
	db := newTestDB(t)
	repo := storage.NewTaskRepo(db)

	s := NewTaskStore(repo)
	require.NoError(t, s.Load())
	task, err := s.Add(model.Task{Title: "persisted", Date: time.Now()})
	require.NoError(t, err)

	// A fresh store over the same database sees the task.
	fresh := NewTaskStore(repo)
	require.NoError(t, fresh.Load())
	assert.NotNil(t, fresh.Get(task.ID))
}

func TestTaskStore_DateSelectors(t *testing.T) {
	s := newTaskStore(t)

	// Wednesday in a week that straddles a month boundary.
	wednesday := time.Date(2026, 9, 2, 12, 0, 0, 0, time.Local)

	add := func(title string, date time.Time) *model.Task {
		t.Helper()
		task, err := s.Add(model.Task{Title: title, Date: date})
		require.NoError(t, err)
		return task
	}

	onDay := add("on the day", wednesday)
	midnight := add("at midnight", dateutil.StartOfDay(wednesday))
	lastNanosecond := add("last nanosecond", dateutil.EndOfDay(wednesday))
	sameWeek := add("same week", time.Date(2026, 8, 31, 9, 0, 0, 0, time.Local))
	nextWeek := add("next week", time.Date(2026, 9, 7, 9, 0, 0, 0, time.Local))
	lastMonth := add("last month", time.Date(2026, 8, 20, 9, 0, 0, 0, time.Local))
	lastYear := add("last year", time.Date(2025, 9, 2, 9, 0, 0, 0, time.Local))

	ids := func(tasks []*model.Task) []string {
		var out []string
		for _, task := range tasks {
			out = append(out, task.ID)
		}
		return out
	}

	t.Run("day is boundary inclusive", func(t *testing.T) {
		got := ids(s.TasksOn(wednesday))
		assert.ElementsMatch(t, []string{onDay.ID, midnight.ID, lastNanosecond.ID}, got)
	})

	t.Run("week with monday start", func(t *testing.T) {
		got := ids(s.WeekTasks(wednesday, time.Monday))
		assert.ElementsMatch(t,
			[]string{onDay.ID, midnight.ID, lastNanosecond.ID, sameWeek.ID}, got)
	})

	t.Run("week with sunday start", func(t *testing.T) {
		// The Sunday-started week ends Saturday Sep 5, still excluding
		// next week's Monday; Aug 31 remains inside.
		got := ids(s.WeekTasks(wednesday, time.Sunday))
		assert.ElementsMatch(t,
			[]string{onDay.ID, midnight.ID, lastNanosecond.ID, sameWeek.ID}, got)
		assert.NotContains(t, got, nextWeek.ID)
	})

	t.Run("month", func(t *testing.T) {
		got := ids(s.MonthTasks(wednesday))
		assert.Contains(t, got, nextWeek.ID)
		assert.NotContains(t, got, lastMonth.ID)
	})

	t.Run("year", func(t *testing.T) {
		got := ids(s.YearTasks(wednesday))
		assert.Contains(t, got, lastMonth.ID)
		assert.NotContains(t, got, lastYear.ID)
	})
}

func TestTaskStore_CategoryAndImportant(t *testing.T) {
	s := newTaskStore(t)

	_, err := s.Add(model.Task{Title: "errand", Date: time.Now()})
	require.NoError(t, err)
	flagged, err := s.Add(model.Task{Title: "deadline", Date: time.Now(), Category: model.CategoryImportant})
	require.NoError(t, err)
	urgent, err := s.Add(model.Task{Title: "urgent", Date: time.Now(), Priority: model.PriorityHigh})
	require.NoError(t, err)

	byCategory := s.TasksByCategory(model.CategoryImportant)
	require.Len(t, byCategory, 1)
	assert.Equal(t, flagged.ID, byCategory[0].ID)

	important := s.ImportantTasks()
	assert.Len(t, important, 2, "important category or high priority")
	var ids []string
	for _, task := range important {
		ids = append(ids, task.ID)
	}
	assert.ElementsMatch(t, []string{flagged.ID, urgent.ID}, ids)
}
