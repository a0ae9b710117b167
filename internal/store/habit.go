package store

import (
	"math"
	"sync"
	"time"

	"github.com/manav03panchal/planner/internal/dateutil"
	apperrors "github.com/manav03panchal/planner/internal/errors"
	"github.com/manav03panchal/planner/internal/model"
	"github.com/manav03panchal/planner/internal/storage"
)

// HabitStore mirrors the habits and habit-logs collections. Logs are
// owned here: deleting a habit cascades to its logs.
type HabitStore struct {
	notifier

	repo *storage.HabitRepo

	mu     sync.RWMutex
	habits []*model.Habit
	logs   []*model.HabitLog
}

// NewHabitStore creates a habit store over the given repository.
func NewHabitStore(repo *storage.HabitRepo) *HabitStore {
	return &HabitStore{repo: repo}
}

// Load replaces the mirrors with the persisted collections. Log dates
// are normalized to start of day. On failure the previous mirrors are
// kept and the error is returned.
func (s *HabitStore) Load() error {
	habits, err := s.repo.List()
	if err != nil {
		return apperrors.NewSystemErrorWithOp("habit load", "failed to read habits", err)
	}
	logs, err := s.repo.ListLogs()
	if err != nil {
		return apperrors.NewSystemErrorWithOp("habit load", "failed to read habit logs", err)
	}
	for _, l := range logs {
		l.Date = dateutil.StartOfDay(l.Date)
	}

	s.mu.Lock()
	s.habits = habits
	s.logs = logs
	s.mu.Unlock()

	s.notify(Event{Kind: EventLoaded, Collection: CollectionHabits})
	return nil
}

// Add creates a habit from the draft and persists it before merging
// into the mirror. The created habit is returned.
func (s *HabitStore) Add(draft model.Habit) (*model.Habit, error) {
	habit := draft
	habit.ID = model.NewID()
	habit.Key = model.GenerateHabitKey(habit.ID)
	habit.CreatedAt = time.Now()
	if habit.Frequency == "" {
		habit.Frequency = model.FrequencyDaily
	}

	if err := s.repo.Create(&habit); err != nil {
		return nil, apperrors.NewSystemErrorWithOp("habit add", "failed to write habit", err)
	}

	s.mu.Lock()
	s.habits = append(s.habits, &habit)
	s.mu.Unlock()

	s.notify(Event{Kind: EventAdded, Collection: CollectionHabits, ID: habit.ID})
	return &habit, nil
}

// Update applies a patch to the habit with the given id. An absent id
// is a no-op.
func (s *HabitStore) Update(id string, patch model.HabitPatch) error {
	s.mu.RLock()
	existing := findByID(s.habits, id, func(h *model.Habit) string { return h.ID })
	s.mu.RUnlock()
	if existing == nil {
		return nil
	}

	updated := *existing
	patch.Apply(&updated)

	if err := s.repo.Update(&updated); err != nil {
		return apperrors.NewSystemErrorWithOp("habit update", "failed to write habit", err)
	}

	s.mu.Lock()
	replaceByID(s.habits, &updated, func(h *model.Habit) string { return h.ID })
	s.mu.Unlock()

	s.notify(Event{Kind: EventUpdated, Collection: CollectionHabits, ID: id})
	return nil
}

// Delete removes the habit with the given id and every log referencing
// it. The durable cascade is one transaction; the mirror drops both
// only after it succeeds. An absent id is a no-op.
func (s *HabitStore) Delete(id string) error {
	s.mu.RLock()
	existing := findByID(s.habits, id, func(h *model.Habit) string { return h.ID })
	s.mu.RUnlock()
	if existing == nil {
		return nil
	}

	if err := s.repo.DeleteWithLogs(id); err != nil {
		return apperrors.NewSystemErrorWithOp("habit delete", "failed to delete habit", err)
	}

	s.mu.Lock()
	s.habits = removeByID(s.habits, id, func(h *model.Habit) string { return h.ID })
	kept := s.logs[:0]
	for _, l := range s.logs {
		if l.HabitID != id {
			kept = append(kept, l)
		}
	}
	s.logs = kept
	s.mu.Unlock()

	s.notify(Event{Kind: EventDeleted, Collection: CollectionHabits, ID: id})
	return nil
}

// ToggleLog cycles the log for (habit, day): no log creates a
// completed one, an uncompleted log is marked completed, a completed
// log is deleted. Two toggles return the pair to no log.
func (s *HabitStore) ToggleLog(habitID string, day time.Time) error {
	day = dateutil.StartOfDay(day)

	s.mu.RLock()
	var existing *model.HabitLog
	for _, l := range s.logs {
		if l.HabitID == habitID && dateutil.SameDay(l.Date, day) {
			existing = l
			break
		}
	}
	s.mu.RUnlock()

	switch {
	case existing == nil:
		log := model.NewHabitLog(habitID, day)
		if err := s.repo.CreateLog(log); err != nil {
			return apperrors.NewSystemErrorWithOp("habit log", "failed to write habit log", err)
		}
		s.mu.Lock()
		s.logs = append(s.logs, log)
		s.mu.Unlock()
		s.notify(Event{Kind: EventAdded, Collection: CollectionLogs, ID: log.ID})

	case existing.Completed:
		if err := s.repo.DeleteLog(habitID, day); err != nil {
			return apperrors.NewSystemErrorWithOp("habit log", "failed to delete habit log", err)
		}
		s.mu.Lock()
		s.logs = removeByID(s.logs, existing.ID, func(l *model.HabitLog) string { return l.ID })
		s.mu.Unlock()
		s.notify(Event{Kind: EventDeleted, Collection: CollectionLogs, ID: existing.ID})

	default:
		updated := *existing
		updated.Completed = true
		if err := s.repo.UpdateLog(&updated); err != nil {
			return apperrors.NewSystemErrorWithOp("habit log", "failed to write habit log", err)
		}
		s.mu.Lock()
		replaceByID(s.logs, &updated, func(l *model.HabitLog) string { return l.ID })
		s.mu.Unlock()
		s.notify(Event{Kind: EventUpdated, Collection: CollectionLogs, ID: existing.ID})
	}

	return nil
}

// Habits returns a copy of the habit mirror.
func (s *HabitStore) Habits() []*model.Habit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.Habit, len(s.habits))
	copy(out, s.habits)
	return out
}

// Get returns the habit with the given id, or nil.
func (s *HabitStore) Get(id string) *model.Habit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return findByID(s.habits, id, func(h *model.Habit) string { return h.ID })
}

// ActiveHabits returns habits with the active flag set.
func (s *HabitStore) ActiveHabits() []*model.Habit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*model.Habit
	for _, h := range s.habits {
		if h.Active {
			out = append(out, h)
		}
	}
	return out
}

// LogsOn returns all logs dated on the given calendar day.
func (s *HabitStore) LogsOn(day time.Time) []*model.HabitLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*model.HabitLog
	for _, l := range s.logs {
		if dateutil.SameDay(l.Date, day) {
			out = append(out, l)
		}
	}
	return out
}

// CompletedOn reports whether the habit has a completed log on the day.
func (s *HabitStore) CompletedOn(habitID string, day time.Time) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.logs {
		if l.HabitID == habitID && l.Completed && dateutil.SameDay(l.Date, day) {
			return true
		}
	}
	return false
}

// Streak counts consecutive completed days walking backward from
// today. A day without a completed log breaks the walk, so a habit not
// completed today has streak zero regardless of earlier days.
func (s *HabitStore) Streak(habitID string) int {
	s.mu.RLock()
	completed := make(map[string]bool)
	for _, l := range s.logs {
		if l.HabitID == habitID && l.Completed {
			completed[l.Date.Format(model.LogDateFormat)] = true
		}
	}
	s.mu.RUnlock()

	streak := 0
	for day := dateutil.StartOfDay(time.Now()); ; day = dateutil.AddDays(day, -1) {
		if !completed[day.Format(model.LogDateFormat)] {
			break
		}
		streak++
	}
	return streak
}

// CompletionRate returns the percentage of the last days window with a
// completed log, rounded to the nearest percent. The denominator is
// always days, even for habits younger than the window.
func (s *HabitStore) CompletionRate(habitID string, days int) int {
	if days <= 0 {
		return 0
	}

	start := dateutil.StartOfDay(dateutil.AddDays(time.Now(), -days))
	end := dateutil.EndOfDay(time.Now())

	s.mu.RLock()
	count := 0
	for _, l := range s.logs {
		if l.HabitID == habitID && l.Completed && !l.Date.Before(start) && !l.Date.After(end) {
			count++
		}
	}
	s.mu.RUnlock()

	return int(math.Round(float64(count) / float64(days) * 100))
}
