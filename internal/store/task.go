package store

import (
	"sync"
	"time"

	"github.com/manav03panchal/planner/internal/dateutil"
	apperrors "github.com/manav03panchal/planner/internal/errors"
	"github.com/manav03panchal/planner/internal/model"
	"github.com/manav03panchal/planner/internal/storage"
)

// TaskStore mirrors the tasks collection.
type TaskStore struct {
	notifier

	repo *storage.TaskRepo

	mu    sync.RWMutex
	tasks []*model.Task
}

// NewTaskStore creates a task store over the given repository.
func NewTaskStore(repo *storage.TaskRepo) *TaskStore {
	return &TaskStore{repo: repo}
}

// Load replaces the mirror with the persisted collection. On failure
// the previous mirror is kept and the error is returned.
func (s *TaskStore) Load() error {
	tasks, err := s.repo.List()
	if err != nil {
		return apperrors.NewSystemErrorWithOp("task load", "failed to read tasks", err)
	}

	s.mu.Lock()
	s.tasks = tasks
	s.mu.Unlock()

	s.notify(Event{Kind: EventLoaded, Collection: CollectionTasks})
	return nil
}

// Add creates a task from the draft, assigning id and timestamps, and
// persists it before merging into the mirror. The created task is
// returned.
func (s *TaskStore) Add(draft model.Task) (*model.Task, error) {
	task := draft
	task.ID = model.NewID()
	task.Key = model.GenerateTaskKey(task.ID)
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now
	if task.Priority == "" {
		task.Priority = model.PriorityMedium
	}
	if task.Category == "" {
		task.Category = model.CategoryDay
	}

	if err := s.repo.Create(&task); err != nil {
		return nil, apperrors.NewSystemErrorWithOp("task add", "failed to write task", err)
	}

	s.mu.Lock()
	s.tasks = append(s.tasks, &task)
	s.mu.Unlock()

	s.notify(Event{Kind: EventAdded, Collection: CollectionTasks, ID: task.ID})
	return &task, nil
}

// Update applies a patch to the task with the given id, refreshing its
// updated timestamp. An absent id is a no-op.
func (s *TaskStore) Update(id string, patch model.TaskPatch) error {
	s.mu.RLock()
	existing := findByID(s.tasks, id, func(t *model.Task) string { return t.ID })
	s.mu.RUnlock()
	if existing == nil {
		return nil
	}

	updated := *existing
	patch.Apply(&updated)
	updated.UpdatedAt = time.Now()

	if err := s.repo.Update(&updated); err != nil {
		return apperrors.NewSystemErrorWithOp("task update", "failed to write task", err)
	}

	s.mu.Lock()
	replaceByID(s.tasks, &updated, func(t *model.Task) string { return t.ID })
	s.mu.Unlock()

	s.notify(Event{Kind: EventUpdated, Collection: CollectionTasks, ID: id})
	return nil
}

// Delete removes the task with the given id. An absent id is a no-op.
func (s *TaskStore) Delete(id string) error {
	s.mu.RLock()
	existing := findByID(s.tasks, id, func(t *model.Task) string { return t.ID })
	s.mu.RUnlock()
	if existing == nil {
		return nil
	}

	if err := s.repo.Delete(id); err != nil {
		return apperrors.NewSystemErrorWithOp("task delete", "failed to delete task", err)
	}

	s.mu.Lock()
	s.tasks = removeByID(s.tasks, id, func(t *model.Task) string { return t.ID })
	s.mu.Unlock()

	s.notify(Event{Kind: EventDeleted, Collection: CollectionTasks, ID: id})
	return nil
}

// Toggle flips the completion flag of the task with the given id.
func (s *TaskStore) Toggle(id string) error {
	s.mu.RLock()
	existing := findByID(s.tasks, id, func(t *model.Task) string { return t.ID })
	s.mu.RUnlock()
	if existing == nil {
		return nil
	}

	completed := !existing.Completed
	return s.Update(id, model.TaskPatch{Completed: &completed})
}

// Tasks returns a copy of the full mirror.
func (s *TaskStore) Tasks() []*model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Get returns the task with the given id, or nil.
func (s *TaskStore) Get(id string) *model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return findByID(s.tasks, id, func(t *model.Task) string { return t.ID })
}

// TasksOn returns tasks whose date falls on the given calendar day.
func (s *TaskStore) TasksOn(day time.Time) []*model.Task {
	return s.TasksBetween(dateutil.StartOfDay(day), dateutil.EndOfDay(day))
}

// TasksBetween returns tasks whose date falls in [start, end] inclusive.
func (s *TaskStore) TasksBetween(start, end time.Time) []*model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*model.Task
	for _, t := range s.tasks {
		if !t.Date.Before(start) && !t.Date.After(end) {
			out = append(out, t)
		}
	}
	return out
}

// TasksByCategory returns tasks filed under the given category.
func (s *TaskStore) TasksByCategory(category model.Category) []*model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*model.Task
	for _, t := range s.tasks {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// TodayTasks returns tasks dated on the current day.
func (s *TaskStore) TodayTasks() []*model.Task {
	return s.TasksOn(time.Now())
}

// WeekTasks returns tasks dated in the week containing day.
func (s *TaskStore) WeekTasks(day time.Time, weekStart time.Weekday) []*model.Task {
	return s.TasksBetween(dateutil.StartOfWeek(day, weekStart), dateutil.EndOfWeek(day, weekStart))
}

// MonthTasks returns tasks dated in the month containing day.
func (s *TaskStore) MonthTasks(day time.Time) []*model.Task {
	return s.TasksBetween(dateutil.StartOfMonth(day), dateutil.EndOfMonth(day))
}

// YearTasks returns tasks dated in the year containing day.
func (s *TaskStore) YearTasks(day time.Time) []*model.Task {
	return s.TasksBetween(dateutil.StartOfYear(day), dateutil.EndOfYear(day))
}

// ImportantTasks returns tasks in the important category or with high
// priority.
func (s *TaskStore) ImportantTasks() []*model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*model.Task
	for _, t := range s.tasks {
		if t.Category == model.CategoryImportant || t.Priority == model.PriorityHigh {
			out = append(out, t)
		}
	}
	return out
}
