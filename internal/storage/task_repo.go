package storage

import (
	"github.com/manav03panchal/planner/internal/model"
)

// TaskRepo provides operations for Task entities.
type TaskRepo struct {
	db *DB
}

// NewTaskRepo creates a new task repository.
func NewTaskRepo(db *DB) *TaskRepo {
	return &TaskRepo{db: db}
}

// Create persists a new task.
func (r *TaskRepo) Create(task *model.Task) error {
	task.Key = model.GenerateTaskKey(task.ID)
	return r.db.Set(task)
}

// Get retrieves a task by id.
func (r *TaskRepo) Get(id string) (*model.Task, error) {
	task := &model.Task{}
	if err := r.db.Get(model.GenerateTaskKey(id), task); err != nil {
		return nil, err
	}
	return task, nil
}

// Update updates an existing task.
func (r *TaskRepo) Update(task *model.Task) error {
	return r.db.Set(task)
}

// Delete removes a task.
func (r *TaskRepo) Delete(id string) error {
	return r.db.Delete(model.GenerateTaskKey(id))
}

// List retrieves all tasks.
func (r *TaskRepo) List() ([]*model.Task, error) {
	return GetAllByPrefix(r.db, model.PrefixTask+":", func() *model.Task {
		return &model.Task{}
	})
}

// Exists checks if a task exists.
func (r *TaskRepo) Exists(id string) (bool, error) {
	return r.db.Exists(model.GenerateTaskKey(id))
}
