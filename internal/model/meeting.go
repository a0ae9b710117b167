package model

import (
	"fmt"
	"time"
)

// Meeting represents a scheduled appointment.
type Meeting struct {
	Key          string     `json:"key"`
	ID           string     `json:"id" validate:"required"`
	Title        string     `json:"title" validate:"required,max=256"`
	StartTime    time.Time  `json:"start_time"`
	EndTime      time.Time  `json:"end_time"`
	Location     string     `json:"location,omitempty"`
	Link         string     `json:"link,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	Participants []string   `json:"participants,omitempty"`
	ReminderAt   *time.Time `json:"reminder_at,omitempty"`
}

// SetKey sets the database key for this meeting.
func (m *Meeting) SetKey(key string) {
	m.Key = key
}

// GetKey returns the database key for this meeting.
func (m *Meeting) GetKey() string {
	return m.Key
}

// GenerateMeetingKey generates a database key for a meeting.
func GenerateMeetingKey(id string) string {
	return fmt.Sprintf("%s:%s", PrefixMeeting, id)
}

// NewMeeting creates a new meeting with a fresh id.
func NewMeeting(title string, start, end time.Time) *Meeting {
	id := NewID()
	return &Meeting{
		Key:       GenerateMeetingKey(id),
		ID:        id,
		Title:     title,
		StartTime: start,
		EndTime:   end,
	}
}

// MeetingPatch is a field-level partial update for a meeting.
type MeetingPatch struct {
	Title        *string
	StartTime    *time.Time
	EndTime      *time.Time
	Location     *string
	Link         *string
	Notes        *string
	Participants *[]string
	ReminderAt   **time.Time
}

// Apply merges the patch into the meeting.
func (p MeetingPatch) Apply(m *Meeting) {
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.StartTime != nil {
		m.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		m.EndTime = *p.EndTime
	}
	if p.Location != nil {
		m.Location = *p.Location
	}
	if p.Link != nil {
		m.Link = *p.Link
	}
	if p.Notes != nil {
		m.Notes = *p.Notes
	}
	if p.Participants != nil {
		m.Participants = *p.Participants
	}
	if p.ReminderAt != nil {
		m.ReminderAt = *p.ReminderAt
	}
}
