package model

import (
	"fmt"
	"math"
	"time"
)

// FinancialGoal represents a savings target.
type FinancialGoal struct {
	Key           string     `json:"key"`
	ID            string     `json:"id" validate:"required"`
	Title         string     `json:"title" validate:"required,max=256"`
	TargetAmount  float64    `json:"target_amount" validate:"gte=0"`
	CurrentAmount float64    `json:"current_amount" validate:"gte=0"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	Category      string     `json:"category,omitempty"`
	Color         string     `json:"color,omitempty" validate:"omitempty,hexcolor"`
}

// SetKey sets the database key for this goal.
func (g *FinancialGoal) SetKey(key string) {
	g.Key = key
}

// GetKey returns the database key for this goal.
func (g *FinancialGoal) GetKey() string {
	return g.Key
}

// GenerateGoalKey generates a database key for a financial goal.
func GenerateGoalKey(id string) string {
	return fmt.Sprintf("%s:%s", PrefixGoal, id)
}

// NewFinancialGoal creates a new goal with a fresh id.
func NewFinancialGoal(title string, target float64) *FinancialGoal {
	id := NewID()
	return &FinancialGoal{
		Key:          GenerateGoalKey(id),
		ID:           id,
		Title:        title,
		TargetAmount: target,
		CreatedAt:    time.Now(),
	}
}

// Progress returns the funded percentage, rounded to the nearest percent.
// A zero target reports zero progress.
func (g *FinancialGoal) Progress() int {
	if g.TargetAmount == 0 {
		return 0
	}
	return int(math.Round(g.CurrentAmount / g.TargetAmount * 100))
}

// GoalPatch is a field-level partial update for a financial goal.
type GoalPatch struct {
	Title         *string
	TargetAmount  *float64
	CurrentAmount *float64
	Deadline      **time.Time
	Category      *string
	Color         *string
}

// Apply merges the patch into the goal.
func (p GoalPatch) Apply(g *FinancialGoal) {
	if p.Title != nil {
		g.Title = *p.Title
	}
	if p.TargetAmount != nil {
		g.TargetAmount = *p.TargetAmount
	}
	if p.CurrentAmount != nil {
		g.CurrentAmount = *p.CurrentAmount
	}
	if p.Deadline != nil {
		g.Deadline = *p.Deadline
	}
	if p.Category != nil {
		g.Category = *p.Category
	}
	if p.Color != nil {
		g.Color = *p.Color
	}
}
