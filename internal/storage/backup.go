package storage

import (
	badger "github.com/dgraph-io/badger/v4"

	"github.com/manav03panchal/planner/internal/model"
)

// Snapshot holds the full contents of the six record collections.
// Settings and schema metadata are deliberately excluded: a restore
// replaces user data, not preferences.
type Snapshot struct {
	Tasks    []*model.Task
	Habits   []*model.Habit
	Logs     []*model.HabitLog
	Goals    []*model.FinancialGoal
	Notes    []*model.Note
	Meetings []*model.Meeting
}

// collectionPrefixes lists the key prefixes of the six collections.
var collectionPrefixes = []string{
	model.PrefixTask + ":",
	model.PrefixHabit + ":",
	model.PrefixHabitLog + ":",
	model.PrefixGoal + ":",
	model.PrefixNote + ":",
	model.PrefixMeeting + ":",
}

// TakeSnapshot reads every record of the six collections.
func (d *DB) TakeSnapshot() (*Snapshot, error) {
	s := &Snapshot{}
	var err error

	if s.Tasks, err = GetAllByPrefix(d, model.PrefixTask+":", func() *model.Task { return &model.Task{} }); err != nil {
		return nil, err
	}
	if s.Habits, err = GetAllByPrefix(d, model.PrefixHabit+":", func() *model.Habit { return &model.Habit{} }); err != nil {
		return nil, err
	}
	if s.Logs, err = GetAllByPrefix(d, model.PrefixHabitLog+":", func() *model.HabitLog { return &model.HabitLog{} }); err != nil {
		return nil, err
	}
	if s.Goals, err = GetAllByPrefix(d, model.PrefixGoal+":", func() *model.FinancialGoal { return &model.FinancialGoal{} }); err != nil {
		return nil, err
	}
	if s.Notes, err = GetAllByPrefix(d, model.PrefixNote+":", func() *model.Note { return &model.Note{} }); err != nil {
		return nil, err
	}
	if s.Meetings, err = GetAllByPrefix(d, model.PrefixMeeting+":", func() *model.Meeting { return &model.Meeting{} }); err != nil {
		return nil, err
	}

	return s, nil
}

// Restore wipes the six collections and loads the snapshot in one
// transaction: either the whole dataset is replaced or nothing is.
func (d *DB) Restore(s *Snapshot) error {
	return d.db.Update(func(txn *badger.Txn) error {
		for _, prefix := range collectionPrefixes {
			if err := deletePrefixTxn(txn, prefix); err != nil {
				return err
			}
		}

		for _, t := range s.Tasks {
			t.Key = model.GenerateTaskKey(t.ID)
			if err := setTxn(txn, t); err != nil {
				return err
			}
		}
		for _, h := range s.Habits {
			h.Key = model.GenerateHabitKey(h.ID)
			if err := setTxn(txn, h); err != nil {
				return err
			}
		}
		for _, l := range s.Logs {
			l.Key = model.GenerateHabitLogKey(l.HabitID, l.Date)
			if err := setTxn(txn, l); err != nil {
				return err
			}
		}
		for _, g := range s.Goals {
			g.Key = model.GenerateGoalKey(g.ID)
			if err := setTxn(txn, g); err != nil {
				return err
			}
		}
		for _, n := range s.Notes {
			n.Key = model.GenerateNoteKey(n.ID)
			if err := setTxn(txn, n); err != nil {
				return err
			}
		}
		for _, m := range s.Meetings {
			m.Key = model.GenerateMeetingKey(m.ID)
			if err := setTxn(txn, m); err != nil {
				return err
			}
		}

		return nil
	})
}

// Clear removes every record of one collection prefix.
func (d *DB) Clear(prefix string) error {
	return d.DeletePrefix(prefix)
}
