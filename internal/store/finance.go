package store

import (
	"sync"
	"time"

	apperrors "github.com/manav03panchal/planner/internal/errors"
	"github.com/manav03panchal/planner/internal/model"
	"github.com/manav03panchal/planner/internal/storage"
)

// FinanceStore mirrors the financial-goals collection.
type FinanceStore struct {
	notifier

	repo *storage.GoalRepo

	mu    sync.RWMutex
	goals []*model.FinancialGoal
}

// NewFinanceStore creates a finance store over the given repository.
func NewFinanceStore(repo *storage.GoalRepo) *FinanceStore {
	return &FinanceStore{repo: repo}
}

// Load replaces the mirror with the persisted collection. On failure
// the previous mirror is kept and the error is returned.
func (s *FinanceStore) Load() error {
	goals, err := s.repo.List()
	if err != nil {
		return apperrors.NewSystemErrorWithOp("goal load", "failed to read goals", err)
	}

	s.mu.Lock()
	s.goals = goals
	s.mu.Unlock()

	s.notify(Event{Kind: EventLoaded, Collection: CollectionGoals})
	return nil
}

// Add creates a goal from the draft and persists it before merging
// into the mirror.
func (s *FinanceStore) Add(draft model.FinancialGoal) (*model.FinancialGoal, error) {
	goal := draft
	goal.ID = model.NewID()
	goal.Key = model.GenerateGoalKey(goal.ID)
	goal.CreatedAt = time.Now()

	if err := s.repo.Create(&goal); err != nil {
		return nil, apperrors.NewSystemErrorWithOp("goal add", "failed to write goal", err)
	}

	s.mu.Lock()
	s.goals = append(s.goals, &goal)
	s.mu.Unlock()

	s.notify(Event{Kind: EventAdded, Collection: CollectionGoals, ID: goal.ID})
	return &goal, nil
}

// Update applies a patch to the goal with the given id. An absent id
// is a no-op.
func (s *FinanceStore) Update(id string, patch model.GoalPatch) error {
	s.mu.RLock()
	existing := findByID(s.goals, id, func(g *model.FinancialGoal) string { return g.ID })
	s.mu.RUnlock()
	if existing == nil {
		return nil
	}

	updated := *existing
	patch.Apply(&updated)

	if err := s.repo.Update(&updated); err != nil {
		return apperrors.NewSystemErrorWithOp("goal update", "failed to write goal", err)
	}

	s.mu.Lock()
	replaceByID(s.goals, &updated, func(g *model.FinancialGoal) string { return g.ID })
	s.mu.Unlock()

	s.notify(Event{Kind: EventUpdated, Collection: CollectionGoals, ID: id})
	return nil
}

// Delete removes the goal with the given id. An absent id is a no-op.
func (s *FinanceStore) Delete(id string) error {
	s.mu.RLock()
	existing := findByID(s.goals, id, func(g *model.FinancialGoal) string { return g.ID })
	s.mu.RUnlock()
	if existing == nil {
		return nil
	}

	if err := s.repo.Delete(id); err != nil {
		return apperrors.NewSystemErrorWithOp("goal delete", "failed to delete goal", err)
	}

	s.mu.Lock()
	s.goals = removeByID(s.goals, id, func(g *model.FinancialGoal) string { return g.ID })
	s.mu.Unlock()

	s.notify(Event{Kind: EventDeleted, Collection: CollectionGoals, ID: id})
	return nil
}

// AddFunds raises the goal's current amount by amount, clamped so the
// current amount never exceeds the target. An absent id is a no-op.
func (s *FinanceStore) AddFunds(id string, amount float64) error {
	if amount < 0 {
		return apperrors.ErrInvalidAmount
	}

	s.mu.RLock()
	existing := findByID(s.goals, id, func(g *model.FinancialGoal) string { return g.ID })
	s.mu.RUnlock()
	if existing == nil {
		return nil
	}

	current := existing.CurrentAmount + amount
	if current > existing.TargetAmount {
		current = existing.TargetAmount
	}
	return s.Update(id, model.GoalPatch{CurrentAmount: &current})
}

// Goals returns a copy of the full mirror.
func (s *FinanceStore) Goals() []*model.FinancialGoal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.FinancialGoal, len(s.goals))
	copy(out, s.goals)
	return out
}

// Get returns the goal with the given id, or nil.
func (s *FinanceStore) Get(id string) *model.FinancialGoal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return findByID(s.goals, id, func(g *model.FinancialGoal) string { return g.ID })
}

// Progress returns the funded percentage of the goal with the given
// id, zero for an absent id or a zero target.
func (s *FinanceStore) Progress(id string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	goal := findByID(s.goals, id, func(g *model.FinancialGoal) string { return g.ID })
	if goal == nil {
		return 0
	}
	return goal.Progress()
}

// TotalSaved returns the sum of current amounts across all goals.
func (s *FinanceStore) TotalSaved() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var sum float64
	for _, g := range s.goals {
		sum += g.CurrentAmount
	}
	return sum
}

// TotalTarget returns the sum of target amounts across all goals.
func (s *FinanceStore) TotalTarget() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var sum float64
	for _, g := range s.goals {
		sum += g.TargetAmount
	}
	return sum
}
