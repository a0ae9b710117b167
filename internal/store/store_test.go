package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/planner/internal/model"
	"github.com/manav03panchal/planner/internal/storage"
)

// newTestDB creates a new in-memory database for testing.
func newTestDB(t *testing.T) *storage.DB {
	t.Helper()
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err, "failed to open in-memory database")
	t.Cleanup(func() {
		assert.NoError(t, db.Close())
	})
	return db
}

func newTaskStore(t *testing.T) *TaskStore {
	t.Helper()
	s := NewTaskStore(storage.NewTaskRepo(newTestDB(t)))
	require.NoError(t, s.Load())
	return s
}

func newHabitStore(t *testing.T) *HabitStore {
	t.Helper()
	s := NewHabitStore(storage.NewHabitRepo(newTestDB(t)))
	require.NoError(t, s.Load())
	return s
}

func newNoteStore(t *testing.T) *NoteStore {
	t.Helper()
	s := NewNoteStore(storage.NewNoteRepo(newTestDB(t)))
	require.NoError(t, s.Load())
	return s
}

func newMeetingStore(t *testing.T) *MeetingStore {
	t.Helper()
	s := NewMeetingStore(storage.NewMeetingRepo(newTestDB(t)))
	require.NoError(t, s.Load())
	return s
}

func newFinanceStore(t *testing.T) *FinanceStore {
	t.Helper()
	s := NewFinanceStore(storage.NewGoalRepo(newTestDB(t)))
	require.NoError(t, s.Load())
	return s
}

func TestWatch(t *testing.T) {
	s := newTaskStore(t)
	events := s.Watch()

	task, err := s.Add(model.Task{Title: "observe me"})
	require.NoError(t, err)

	select {
	case e := <-events:
		assert.Equal(t, EventAdded, e.Kind)
		assert.Equal(t, CollectionTasks, e.Collection)
		assert.Equal(t, task.ID, e.ID)
	default:
		t.Fatal("no event delivered")
	}

	t.Run("full watcher does not block mutations", func(t *testing.T) {
		for i := 0; i < watchBuffer*2; i++ {
			_, err := s.Add(model.Task{Title: "flood"})
			require.NoError(t, err)
		}
		// The mutation above returned, which is the guarantee. Drain
		// what fit in the buffer.
		drained := 0
		for {
			select {
			case <-events:
				drained++
				continue
			default:
			}
			break
		}
		assert.Equal(t, watchBuffer, drained)
	})
}
