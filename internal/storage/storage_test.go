package storage

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/planner/internal/model"
)

// setupTestDB creates a new in-memory database for testing.
func setupTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(Options{InMemory: true})
	require.NoError(t, err, "failed to open in-memory database")
	t.Cleanup(func() {
		err := db.Close()
		assert.NoError(t, err, "failed to close database")
	})
	return db
}

func TestDB_Open(t *testing.T) {
	t.Run("opens with InMemory flag", func(t *testing.T) {
		db, err := Open(Options{InMemory: true})
		require.NoError(t, err)
		assert.NotNil(t, db)
		require.NoError(t, db.Close())
	})

	t.Run("empty Path defaults to in-memory", func(t *testing.T) {
		db, err := Open(Options{Path: ""})
		require.NoError(t, err)
		assert.NotNil(t, db)
		assert.Empty(t, db.Path())
		require.NoError(t, db.Close())
	})

	t.Run("stamps the schema version", func(t *testing.T) {
		db := setupTestDB(t)
		raw, err := db.GetBytes(model.KeySchema)
		require.NoError(t, err)
		assert.Equal(t, strconv.Itoa(SchemaVersion), string(raw))
	})

	t.Run("refuses a newer schema", func(t *testing.T) {
		dir := t.TempDir()
		db, err := Open(Options{Path: dir})
		require.NoError(t, err)
		require.NoError(t, db.SetBytes(model.KeySchema, []byte(strconv.Itoa(SchemaVersion+1))))
		require.NoError(t, db.Close())

		_, err = Open(Options{Path: dir})
		assert.Error(t, err)
	})
}

func TestDB_DefaultPath(t *testing.T) {
	path := DefaultPath()
	assert.NotEmpty(t, path)
	assert.Contains(t, path, AppName)
}

func TestTaskRepo_CRUD(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepo(db)

	task := model.NewTask("write report", "", time.Now(), model.PriorityHigh, model.CategoryDay)

	t.Run("create and get", func(t *testing.T) {
		require.NoError(t, repo.Create(task))

		got, err := repo.Get(task.ID)
		require.NoError(t, err)
		assert.Equal(t, task.ID, got.ID)
		assert.Equal(t, "write report", got.Title)
		assert.Equal(t, model.PriorityHigh, got.Priority)
	})

	t.Run("update", func(t *testing.T) {
		task.Completed = true
		require.NoError(t, repo.Update(task))

		got, err := repo.Get(task.ID)
		require.NoError(t, err)
		assert.True(t, got.Completed)
	})

	t.Run("list", func(t *testing.T) {
		tasks, err := repo.List()
		require.NoError(t, err)
		assert.Len(t, tasks, 1)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(task.ID))

		_, err := repo.Get(task.ID)
		assert.True(t, IsErrKeyNotFound(err))
	})

	t.Run("get missing", func(t *testing.T) {
		_, err := repo.Get("no-such-id")
		assert.True(t, IsErrKeyNotFound(err))
	})
}

func TestHabitRepo_Logs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewHabitRepo(db)

	habit := model.NewHabit("run", "", model.FrequencyDaily)
	require.NoError(t, repo.Create(habit))

	day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.Local)

	t.Run("one log per habit and day", func(t *testing.T) {
		log := model.NewHabitLog(habit.ID, day)
		require.NoError(t, repo.CreateLog(log))

		got, err := repo.GetLog(habit.ID, day)
		require.NoError(t, err)
		assert.Equal(t, habit.ID, got.HabitID)
		assert.True(t, got.Completed)

		// Same (habit, day) maps to the same key.
		again := model.NewHabitLog(habit.ID, day)
		require.NoError(t, repo.CreateLog(again))
		logs, err := repo.ListLogsForHabit(habit.ID)
		require.NoError(t, err)
		assert.Len(t, logs, 1)
	})

	t.Run("logs are scoped per habit", func(t *testing.T) {
		other := model.NewHabit("read", "", model.FrequencyDaily)
		require.NoError(t, repo.Create(other))
		require.NoError(t, repo.CreateLog(model.NewHabitLog(other.ID, day)))

		logs, err := repo.ListLogsForHabit(habit.ID)
		require.NoError(t, err)
		assert.Len(t, logs, 1)

		all, err := repo.ListLogs()
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("delete log", func(t *testing.T) {
		require.NoError(t, repo.DeleteLog(habit.ID, day))
		_, err := repo.GetLog(habit.ID, day)
		assert.True(t, IsErrKeyNotFound(err))
	})
}

func TestHabitRepo_DeleteWithLogs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewHabitRepo(db)

	habit := model.NewHabit("meditate", "", model.FrequencyDaily)
	require.NoError(t, repo.Create(habit))

	keeper := model.NewHabit("stretch", "", model.FrequencyDaily)
	require.NoError(t, repo.Create(keeper))

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local)
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.CreateLog(model.NewHabitLog(habit.ID, base.AddDate(0, 0, i))))
	}
	require.NoError(t, repo.CreateLog(model.NewHabitLog(keeper.ID, base)))

	require.NoError(t, repo.DeleteWithLogs(habit.ID))

	_, err := repo.Get(habit.ID)
	assert.True(t, IsErrKeyNotFound(err))

	orphans, err := repo.ListLogsForHabit(habit.ID)
	require.NoError(t, err)
	assert.Empty(t, orphans)

	// The other habit and its logs survive.
	_, err = repo.Get(keeper.ID)
	require.NoError(t, err)
	kept, err := repo.ListLogsForHabit(keeper.ID)
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}

func TestSettingsRepo_GetOrCreate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSettingsRepo(db)

	t.Run("first read creates defaults", func(t *testing.T) {
		settings, err := repo.Get()
		require.NoError(t, err)
		assert.Equal(t, model.ThemeSystem, settings.Theme)
		assert.Equal(t, time.Monday, settings.WeekStartDay)
		assert.True(t, settings.NotificationsEnabled)
	})

	t.Run("update round-trips", func(t *testing.T) {
		settings, err := repo.Get()
		require.NoError(t, err)

		settings.Theme = model.ThemeDark
		settings.WeekStartDay = time.Sunday
		require.NoError(t, repo.Update(settings))

		got, err := repo.Get()
		require.NoError(t, err)
		assert.Equal(t, model.ThemeDark, got.Theme)
		assert.Equal(t, time.Sunday, got.WeekStartDay)
	})
}

func TestSnapshot_Restore(t *testing.T) {
	db := setupTestDB(t)

	taskRepo := NewTaskRepo(db)
	habitRepo := NewHabitRepo(db)
	noteRepo := NewNoteRepo(db)

	task := model.NewTask("old task", "", time.Now(), model.PriorityMedium, model.CategoryDay)
	require.NoError(t, taskRepo.Create(task))
	habit := model.NewHabit("old habit", "", model.FrequencyDaily)
	require.NoError(t, habitRepo.Create(habit))

	incoming := model.NewTask("imported task", "", time.Now(), model.PriorityMedium, model.CategoryDay)
	note := model.NewNote("imported note", "body")

	snapshot := &Snapshot{
		Tasks: []*model.Task{incoming},
		Notes: []*model.Note{note},
	}
	require.NoError(t, db.Restore(snapshot))

	t.Run("old data is gone", func(t *testing.T) {
		_, err := taskRepo.Get(task.ID)
		assert.True(t, IsErrKeyNotFound(err))
		habits, err := habitRepo.List()
		require.NoError(t, err)
		assert.Empty(t, habits)
	})

	t.Run("imported data is readable with original ids", func(t *testing.T) {
		got, err := taskRepo.Get(incoming.ID)
		require.NoError(t, err)
		assert.Equal(t, "imported task", got.Title)

		gotNote, err := noteRepo.Get(note.ID)
		require.NoError(t, err)
		assert.Equal(t, "body", gotNote.Content)
	})

	t.Run("settings survive a restore", func(t *testing.T) {
		settingsRepo := NewSettingsRepo(db)
		settings, err := settingsRepo.Get()
		require.NoError(t, err)
		settings.Theme = model.ThemeLight
		require.NoError(t, settingsRepo.Update(settings))

		require.NoError(t, db.Restore(&Snapshot{}))

		got, err := settingsRepo.Get()
		require.NoError(t, err)
		assert.Equal(t, model.ThemeLight, got.Theme)
	})
}

func TestSnapshot_RoundTrip(t *testing.T) {
	db := setupTestDB(t)

	goalRepo := NewGoalRepo(db)
	meetingRepo := NewMeetingRepo(db)

	goal := model.NewFinancialGoal("vacation", 2500)
	goal.CurrentAmount = 300
	require.NoError(t, goalRepo.Create(goal))

	start := time.Date(2026, 9, 2, 10, 0, 0, 0, time.Local)
	meeting := model.NewMeeting("standup", start, start.Add(30*time.Minute))
	require.NoError(t, meetingRepo.Create(meeting))

	snapshot, err := db.TakeSnapshot()
	require.NoError(t, err)
	require.Len(t, snapshot.Goals, 1)
	require.Len(t, snapshot.Meetings, 1)

	require.NoError(t, db.Restore(snapshot))

	gotGoal, err := goalRepo.Get(goal.ID)
	require.NoError(t, err)
	assert.Equal(t, goal.ID, gotGoal.ID)
	assert.Equal(t, 300.0, gotGoal.CurrentAmount)

	gotMeeting, err := meetingRepo.Get(meeting.ID)
	require.NoError(t, err)
	assert.Equal(t, meeting.ID, gotMeeting.ID)
	assert.True(t, gotMeeting.StartTime.Equal(start))
}
