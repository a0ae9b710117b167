// Package model defines the domain models for Planner.
package model

import "github.com/google/uuid"

// Model is the interface that all database models must implement.
type Model interface {
	// SetKey sets the database key for this model.
	SetKey(key string)
	// GetKey returns the database key for this model.
	GetKey() string
}

// KeyPrefix constants for database key generation.
const (
	PrefixTask     = "task"
	PrefixHabit    = "habit"
	PrefixHabitLog = "habitlog"
	PrefixGoal     = "goal"
	PrefixNote     = "note"
	PrefixMeeting  = "meeting"
	KeySettings    = "settings"
	KeySchema      = "schema"
)

// NewID generates a new unique record identifier.
// UUIDv7 keeps ids roughly time-ordered, which keeps Badger iteration
// close to insertion order without relying on it.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails if the random source does; fall back to v4.
		return uuid.NewString()
	}
	return id.String()
}
