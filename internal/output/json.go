package output

import (
	"github.com/manav03panchal/planner/internal/model"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status  string `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// TasksResponse represents the task list output in JSON.
type TasksResponse struct {
	Tasks      []*model.Task `json:"tasks"`
	TotalCount int           `json:"total_count"`
}

// HabitOutput represents a habit with its derived stats in JSON.
type HabitOutput struct {
	Habit          *model.Habit `json:"habit"`
	CompletedToday bool         `json:"completed_today"`
	Streak         int          `json:"streak"`
	CompletionRate int          `json:"completion_rate"`
}

// HabitsResponse represents the habit list output in JSON.
type HabitsResponse struct {
	Habits []*HabitOutput `json:"habits"`
}

// GoalsResponse represents the goal list output in JSON.
type GoalsResponse struct {
	Goals       []*model.FinancialGoal `json:"goals"`
	TotalSaved  float64                `json:"total_saved"`
	TotalTarget float64                `json:"total_target"`
}

// NotesResponse represents the note list output in JSON.
type NotesResponse struct {
	Notes []*model.Note `json:"notes"`
	Query string        `json:"query,omitempty"`
}

// MeetingsResponse represents the meeting list output in JSON.
type MeetingsResponse struct {
	Meetings []*model.Meeting `json:"meetings"`
}
