package storage

import (
	"github.com/manav03panchal/planner/internal/model"
)

// MeetingRepo provides operations for Meeting entities.
type MeetingRepo struct {
	db *DB
}

// NewMeetingRepo creates a new meeting repository.
func NewMeetingRepo(db *DB) *MeetingRepo {
	return &MeetingRepo{db: db}
}

// Create persists a new meeting.
func (r *MeetingRepo) Create(meeting *model.Meeting) error {
	meeting.Key = model.GenerateMeetingKey(meeting.ID)
	return r.db.Set(meeting)
}

// Get retrieves a meeting by id.
func (r *MeetingRepo) Get(id string) (*model.Meeting, error) {
	meeting := &model.Meeting{}
	if err := r.db.Get(model.GenerateMeetingKey(id), meeting); err != nil {
		return nil, err
	}
	return meeting, nil
}

// Update updates an existing meeting.
func (r *MeetingRepo) Update(meeting *model.Meeting) error {
	return r.db.Set(meeting)
}

// Delete removes a meeting.
func (r *MeetingRepo) Delete(id string) error {
	return r.db.Delete(model.GenerateMeetingKey(id))
}

// List retrieves all meetings.
func (r *MeetingRepo) List() ([]*model.Meeting, error) {
	return GetAllByPrefix(r.db, model.PrefixMeeting+":", func() *model.Meeting {
		return &model.Meeting{}
	})
}
