package model

import (
	"fmt"
	"time"
)

// Frequency represents how often a habit is intended to recur.
// It is informational only: streak and completion-rate math always
// operates at daily granularity regardless of the declared frequency.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// Habit represents a recurring practice being tracked.
type Habit struct {
	Key         string    `json:"key"`
	ID          string    `json:"id" validate:"required"`
	Name        string    `json:"name" validate:"required,max=128"`
	Description string    `json:"description,omitempty"`
	Frequency   Frequency `json:"frequency" validate:"oneof=daily weekly monthly"`
	Active      bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	Color       string    `json:"color,omitempty" validate:"omitempty,hexcolor"`
	Icon        string    `json:"icon,omitempty"`
}

// SetKey sets the database key for this habit.
func (h *Habit) SetKey(key string) {
	h.Key = key
}

// GetKey returns the database key for this habit.
func (h *Habit) GetKey() string {
	return h.Key
}

// GenerateHabitKey generates a database key for a habit.
func GenerateHabitKey(id string) string {
	return fmt.Sprintf("%s:%s", PrefixHabit, id)
}

// NewHabit creates a new active habit with a fresh id.
func NewHabit(name, description string, frequency Frequency) *Habit {
	id := NewID()
	return &Habit{
		Key:         GenerateHabitKey(id),
		ID:          id,
		Name:        name,
		Description: description,
		Frequency:   frequency,
		Active:      true,
		CreatedAt:   time.Now(),
	}
}

// HabitPatch is a field-level partial update for a habit.
type HabitPatch struct {
	Name        *string
	Description *string
	Frequency   *Frequency
	Active      *bool
	Color       *string
	Icon        *string
}

// Apply merges the patch into the habit.
func (p HabitPatch) Apply(h *Habit) {
	if p.Name != nil {
		h.Name = *p.Name
	}
	if p.Description != nil {
		h.Description = *p.Description
	}
	if p.Frequency != nil {
		h.Frequency = *p.Frequency
	}
	if p.Active != nil {
		h.Active = *p.Active
	}
	if p.Color != nil {
		h.Color = *p.Color
	}
	if p.Icon != nil {
		h.Icon = *p.Icon
	}
}

// LogDateFormat is the date component used in habit log keys.
const LogDateFormat = "2006-01-02"

// HabitLog records a completion mark for a habit on one calendar day.
// The key is derived from (habit, day), so at most one log exists per pair.
type HabitLog struct {
	Key       string    `json:"key"`
	ID        string    `json:"id" validate:"required"`
	HabitID   string    `json:"habit_id" validate:"required"`
	Date      time.Time `json:"date"`
	Completed bool      `json:"is_completed"`
}

// SetKey sets the database key for this habit log.
func (l *HabitLog) SetKey(key string) {
	l.Key = key
}

// GetKey returns the database key for this habit log.
func (l *HabitLog) GetKey() string {
	return l.Key
}

// GenerateHabitLogKey generates a database key for a habit log on a day.
func GenerateHabitLogKey(habitID string, day time.Time) string {
	return fmt.Sprintf("%s:%s:%s", PrefixHabitLog, habitID, day.Format(LogDateFormat))
}

// HabitLogPrefix returns the key prefix covering all logs of one habit.
// Used for the cascade delete when the parent habit is removed.
func HabitLogPrefix(habitID string) string {
	return fmt.Sprintf("%s:%s:", PrefixHabitLog, habitID)
}

// NewHabitLog creates a completed log for a habit on the given day.
// The day is expected to be normalized to start of day by the caller.
func NewHabitLog(habitID string, day time.Time) *HabitLog {
	return &HabitLog{
		Key:       GenerateHabitLogKey(habitID, day),
		ID:        NewID(),
		HabitID:   habitID,
		Date:      day,
		Completed: true,
	}
}
