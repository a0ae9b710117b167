package model

import (
	"fmt"
	"time"
)

// Note represents a free-form note.
type Note struct {
	Key       string    `json:"key"`
	ID        string    `json:"id" validate:"required"`
	Title     string    `json:"title" validate:"required,max=256"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Tags      []string  `json:"tags,omitempty"`
	Color     string    `json:"color,omitempty" validate:"omitempty,hexcolor"`
	Pinned    bool      `json:"is_pinned"`
}

// SetKey sets the database key for this note.
func (n *Note) SetKey(key string) {
	n.Key = key
}

// GetKey returns the database key for this note.
func (n *Note) GetKey() string {
	return n.Key
}

// GenerateNoteKey generates a database key for a note.
func GenerateNoteKey(id string) string {
	return fmt.Sprintf("%s:%s", PrefixNote, id)
}

// NewNote creates a new note with a fresh id and timestamps.
func NewNote(title, content string) *Note {
	now := time.Now()
	id := NewID()
	return &Note{
		Key:       GenerateNoteKey(id),
		ID:        id,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NotePatch is a field-level partial update for a note.
type NotePatch struct {
	Title   *string
	Content *string
	Tags    *[]string
	Color   *string
	Pinned  *bool
}

// Apply merges the patch into the note.
func (p NotePatch) Apply(n *Note) {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.Tags != nil {
		n.Tags = *p.Tags
	}
	if p.Color != nil {
		n.Color = *p.Color
	}
	if p.Pinned != nil {
		n.Pinned = *p.Pinned
	}
}
