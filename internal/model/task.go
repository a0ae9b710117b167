package model

import (
	"fmt"
	"time"
)

// Priority represents the urgency level of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Category represents the planning page a task is filed under.
// Category is assigned at creation and is independent of the task date:
// day/week/month/year pages query by date, important is an explicit filter.
type Category string

const (
	CategoryDay       Category = "day"
	CategoryWeek      Category = "week"
	CategoryMonth     Category = "month"
	CategoryYear      Category = "year"
	CategoryImportant Category = "important"
)

// Task represents a single planned item on a calendar day.
type Task struct {
	Key         string     `json:"key"`
	ID          string     `json:"id" validate:"required"`
	Title       string     `json:"title" validate:"required,max=256"`
	Description string     `json:"description,omitempty"`
	Date        time.Time  `json:"date"`
	Time        string     `json:"time,omitempty"`
	Completed   bool       `json:"is_completed"`
	Priority    Priority   `json:"priority" validate:"oneof=low medium high"`
	Category    Category   `json:"category" validate:"oneof=day week month year important"`
	Tags        []string   `json:"tags,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ReminderAt  *time.Time `json:"reminder_at,omitempty"`
}

// SetKey sets the database key for this task.
func (t *Task) SetKey(key string) {
	t.Key = key
}

// GetKey returns the database key for this task.
func (t *Task) GetKey() string {
	return t.Key
}

// GenerateTaskKey generates a database key for a task.
func GenerateTaskKey(id string) string {
	return fmt.Sprintf("%s:%s", PrefixTask, id)
}

// NewTask creates a new task with a fresh id and timestamps.
func NewTask(title, description string, date time.Time, priority Priority, category Category) *Task {
	now := time.Now()
	id := NewID()
	return &Task{
		Key:         GenerateTaskKey(id),
		ID:          id,
		Title:       title,
		Description: description,
		Date:        date,
		Priority:    priority,
		Category:    category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// TaskPatch is a field-level partial update for a task.
// Nil fields are left untouched.
type TaskPatch struct {
	Title       *string
	Description *string
	Date        *time.Time
	Time        *string
	Completed   *bool
	Priority    *Priority
	Category    *Category
	Tags        *[]string
	ReminderAt  **time.Time
}

// Apply merges the patch into the task.
func (p TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.Time != nil {
		t.Time = *p.Time
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Tags != nil {
		t.Tags = *p.Tags
	}
	if p.ReminderAt != nil {
		t.ReminderAt = *p.ReminderAt
	}
}
