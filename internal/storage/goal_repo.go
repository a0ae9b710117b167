package storage

import (
	"github.com/manav03panchal/planner/internal/model"
)

// GoalRepo provides operations for FinancialGoal entities.
type GoalRepo struct {
	db *DB
}

// NewGoalRepo creates a new goal repository.
func NewGoalRepo(db *DB) *GoalRepo {
	return &GoalRepo{db: db}
}

// Create persists a new goal.
func (r *GoalRepo) Create(goal *model.FinancialGoal) error {
	goal.Key = model.GenerateGoalKey(goal.ID)
	return r.db.Set(goal)
}

// Get retrieves a goal by id.
func (r *GoalRepo) Get(id string) (*model.FinancialGoal, error) {
	goal := &model.FinancialGoal{}
	if err := r.db.Get(model.GenerateGoalKey(id), goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// Update updates an existing goal.
func (r *GoalRepo) Update(goal *model.FinancialGoal) error {
	return r.db.Set(goal)
}

// Delete removes a goal.
func (r *GoalRepo) Delete(id string) error {
	return r.db.Delete(model.GenerateGoalKey(id))
}

// List retrieves all goals.
func (r *GoalRepo) List() ([]*model.FinancialGoal, error) {
	return GetAllByPrefix(r.db, model.PrefixGoal+":", func() *model.FinancialGoal {
		return &model.FinancialGoal{}
	})
}
