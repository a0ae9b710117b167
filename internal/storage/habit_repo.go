package storage

import (
	"time"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/manav03panchal/planner/internal/model"
)

// HabitRepo provides operations for Habit entities and their logs.
// Habit logs are owned by this repository: they are keyed under the
// habit's prefix and removed together with the habit.
type HabitRepo struct {
	db *DB
}

// NewHabitRepo creates a new habit repository.
func NewHabitRepo(db *DB) *HabitRepo {
	return &HabitRepo{db: db}
}

// Create persists a new habit.
func (r *HabitRepo) Create(habit *model.Habit) error {
	habit.Key = model.GenerateHabitKey(habit.ID)
	return r.db.Set(habit)
}

// Get retrieves a habit by id.
func (r *HabitRepo) Get(id string) (*model.Habit, error) {
	habit := &model.Habit{}
	if err := r.db.Get(model.GenerateHabitKey(id), habit); err != nil {
		return nil, err
	}
	return habit, nil
}

// Update updates an existing habit.
func (r *HabitRepo) Update(habit *model.Habit) error {
	return r.db.Set(habit)
}

// DeleteWithLogs removes a habit and every log referencing it in one
// transaction, so a failure cannot leave orphaned logs behind.
func (r *HabitRepo) DeleteWithLogs(id string) error {
	return r.db.Badger().Update(func(txn *badger.Txn) error {
		if err := txn.Delete([]byte(model.GenerateHabitKey(id))); err != nil {
			return err
		}
		return deletePrefixTxn(txn, model.HabitLogPrefix(id))
	})
}

// List retrieves all habits.
func (r *HabitRepo) List() ([]*model.Habit, error) {
	return GetAllByPrefix(r.db, model.PrefixHabit+":", func() *model.Habit {
		return &model.Habit{}
	})
}

// CreateLog persists a new habit log.
func (r *HabitRepo) CreateLog(log *model.HabitLog) error {
	log.Key = model.GenerateHabitLogKey(log.HabitID, log.Date)
	return r.db.Set(log)
}

// UpdateLog updates an existing habit log.
func (r *HabitRepo) UpdateLog(log *model.HabitLog) error {
	return r.db.Set(log)
}

// DeleteLog removes the log for a habit on a day.
func (r *HabitRepo) DeleteLog(habitID string, day time.Time) error {
	return r.db.Delete(model.GenerateHabitLogKey(habitID, day))
}

// GetLog retrieves the log for a habit on a day, if any.
func (r *HabitRepo) GetLog(habitID string, day time.Time) (*model.HabitLog, error) {
	log := &model.HabitLog{}
	if err := r.db.Get(model.GenerateHabitLogKey(habitID, day), log); err != nil {
		return nil, err
	}
	return log, nil
}

// ListLogs retrieves all habit logs across all habits.
func (r *HabitRepo) ListLogs() ([]*model.HabitLog, error) {
	return GetAllByPrefix(r.db, model.PrefixHabitLog+":", func() *model.HabitLog {
		return &model.HabitLog{}
	})
}

// ListLogsForHabit retrieves all logs for one habit.
func (r *HabitRepo) ListLogsForHabit(habitID string) ([]*model.HabitLog, error) {
	return GetAllByPrefix(r.db, model.HabitLogPrefix(habitID), func() *model.HabitLog {
		return &model.HabitLog{}
	})
}
