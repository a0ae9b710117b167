package store

import (
	"sort"
	"sync"
	"time"

	"github.com/manav03panchal/planner/internal/dateutil"
	apperrors "github.com/manav03panchal/planner/internal/errors"
	"github.com/manav03panchal/planner/internal/model"
	"github.com/manav03panchal/planner/internal/storage"
)

// upcomingLimit caps the upcoming-meetings view to the soonest few.
const upcomingLimit = 5

// MeetingStore mirrors the meetings collection.
type MeetingStore struct {
	notifier

	repo *storage.MeetingRepo

	mu       sync.RWMutex
	meetings []*model.Meeting
}

// NewMeetingStore creates a meeting store over the given repository.
func NewMeetingStore(repo *storage.MeetingRepo) *MeetingStore {
	return &MeetingStore{repo: repo}
}

// Load replaces the mirror with the persisted collection. On failure
// the previous mirror is kept and the error is returned.
func (s *MeetingStore) Load() error {
	meetings, err := s.repo.List()
	if err != nil {
		return apperrors.NewSystemErrorWithOp("meeting load", "failed to read meetings", err)
	}

	s.mu.Lock()
	s.meetings = meetings
	s.mu.Unlock()

	s.notify(Event{Kind: EventLoaded, Collection: CollectionMeetings})
	return nil
}

// Add creates a meeting from the draft and persists it before merging
// into the mirror.
func (s *MeetingStore) Add(draft model.Meeting) (*model.Meeting, error) {
	if !draft.EndTime.After(draft.StartTime) {
		return nil, apperrors.ErrEndBeforeStart
	}

	meeting := draft
	meeting.ID = model.NewID()
	meeting.Key = model.GenerateMeetingKey(meeting.ID)

	if err := s.repo.Create(&meeting); err != nil {
		return nil, apperrors.NewSystemErrorWithOp("meeting add", "failed to write meeting", err)
	}

	s.mu.Lock()
	s.meetings = append(s.meetings, &meeting)
	s.mu.Unlock()

	s.notify(Event{Kind: EventAdded, Collection: CollectionMeetings, ID: meeting.ID})
	return &meeting, nil
}

// Update applies a patch to the meeting with the given id. An absent
// id is a no-op.
func (s *MeetingStore) Update(id string, patch model.MeetingPatch) error {
	s.mu.RLock()
	existing := findByID(s.meetings, id, func(m *model.Meeting) string { return m.ID })
	s.mu.RUnlock()
	if existing == nil {
		return nil
	}

	updated := *existing
	patch.Apply(&updated)

	if err := s.repo.Update(&updated); err != nil {
		return apperrors.NewSystemErrorWithOp("meeting update", "failed to write meeting", err)
	}

	s.mu.Lock()
	replaceByID(s.meetings, &updated, func(m *model.Meeting) string { return m.ID })
	s.mu.Unlock()

	s.notify(Event{Kind: EventUpdated, Collection: CollectionMeetings, ID: id})
	return nil
}

// Delete removes the meeting with the given id. An absent id is a
// no-op.
func (s *MeetingStore) Delete(id string) error {
	s.mu.RLock()
	existing := findByID(s.meetings, id, func(m *model.Meeting) string { return m.ID })
	s.mu.RUnlock()
	if existing == nil {
		return nil
	}

	if err := s.repo.Delete(id); err != nil {
		return apperrors.NewSystemErrorWithOp("meeting delete", "failed to delete meeting", err)
	}

	s.mu.Lock()
	s.meetings = removeByID(s.meetings, id, func(m *model.Meeting) string { return m.ID })
	s.mu.Unlock()

	s.notify(Event{Kind: EventDeleted, Collection: CollectionMeetings, ID: id})
	return nil
}

// Meetings returns a copy of the full mirror.
func (s *MeetingStore) Meetings() []*model.Meeting {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.Meeting, len(s.meetings))
	copy(out, s.meetings)
	return out
}

// Get returns the meeting with the given id, or nil.
func (s *MeetingStore) Get(id string) *model.Meeting {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return findByID(s.meetings, id, func(m *model.Meeting) string { return m.ID })
}

// MeetingsOn returns meetings starting on the given calendar day.
func (s *MeetingStore) MeetingsOn(day time.Time) []*model.Meeting {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*model.Meeting
	for _, m := range s.meetings {
		if dateutil.SameDay(m.StartTime, day) {
			out = append(out, m)
		}
	}
	return out
}

// TodayMeetings returns meetings starting on the current day.
func (s *MeetingStore) TodayMeetings() []*model.Meeting {
	return s.MeetingsOn(time.Now())
}

// Upcoming returns meetings starting strictly after now, soonest
// first, capped at five.
func (s *MeetingStore) Upcoming() []*model.Meeting {
	now := time.Now()

	s.mu.RLock()
	var out []*model.Meeting
	for _, m := range s.meetings {
		if m.StartTime.After(now) {
			out = append(out, m)
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	if len(out) > upcomingLimit {
		out = out[:upcomingLimit]
	}
	return out
}
