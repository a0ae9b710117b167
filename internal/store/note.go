package store

import (
	"strings"
	"sync"
	"time"

	apperrors "github.com/manav03panchal/planner/internal/errors"
	"github.com/manav03panchal/planner/internal/model"
	"github.com/manav03panchal/planner/internal/storage"
)

// NoteStore mirrors the notes collection and holds the live search
// query used by the filtered view.
type NoteStore struct {
	notifier

	repo *storage.NoteRepo

	mu    sync.RWMutex
	notes []*model.Note
	query string
}

// NewNoteStore creates a note store over the given repository.
func NewNoteStore(repo *storage.NoteRepo) *NoteStore {
	return &NoteStore{repo: repo}
}

// Load replaces the mirror with the persisted collection. On failure
// the previous mirror is kept and the error is returned.
func (s *NoteStore) Load() error {
	notes, err := s.repo.List()
	if err != nil {
		return apperrors.NewSystemErrorWithOp("note load", "failed to read notes", err)
	}

	s.mu.Lock()
	s.notes = notes
	s.mu.Unlock()

	s.notify(Event{Kind: EventLoaded, Collection: CollectionNotes})
	return nil
}

// Add creates a note from the draft, assigning id and timestamps, and
// persists it before merging into the mirror.
func (s *NoteStore) Add(draft model.Note) (*model.Note, error) {
	note := draft
	note.ID = model.NewID()
	note.Key = model.GenerateNoteKey(note.ID)
	now := time.Now()
	note.CreatedAt = now
	note.UpdatedAt = now

	if err := s.repo.Create(&note); err != nil {
		return nil, apperrors.NewSystemErrorWithOp("note add", "failed to write note", err)
	}

	s.mu.Lock()
	s.notes = append(s.notes, &note)
	s.mu.Unlock()

	s.notify(Event{Kind: EventAdded, Collection: CollectionNotes, ID: note.ID})
	return &note, nil
}

// Update applies a patch to the note with the given id, refreshing its
// updated timestamp. An absent id is a no-op.
func (s *NoteStore) Update(id string, patch model.NotePatch) error {
	s.mu.RLock()
	existing := findByID(s.notes, id, func(n *model.Note) string { return n.ID })
	s.mu.RUnlock()
	if existing == nil {
		return nil
	}

	updated := *existing
	patch.Apply(&updated)
	updated.UpdatedAt = time.Now()

	if err := s.repo.Update(&updated); err != nil {
		return apperrors.NewSystemErrorWithOp("note update", "failed to write note", err)
	}

	s.mu.Lock()
	replaceByID(s.notes, &updated, func(n *model.Note) string { return n.ID })
	s.mu.Unlock()

	s.notify(Event{Kind: EventUpdated, Collection: CollectionNotes, ID: id})
	return nil
}

// Delete removes the note with the given id. An absent id is a no-op.
func (s *NoteStore) Delete(id string) error {
	s.mu.RLock()
	existing := findByID(s.notes, id, func(n *model.Note) string { return n.ID })
	s.mu.RUnlock()
	if existing == nil {
		return nil
	}

	if err := s.repo.Delete(id); err != nil {
		return apperrors.NewSystemErrorWithOp("note delete", "failed to delete note", err)
	}

	s.mu.Lock()
	s.notes = removeByID(s.notes, id, func(n *model.Note) string { return n.ID })
	s.mu.Unlock()

	s.notify(Event{Kind: EventDeleted, Collection: CollectionNotes, ID: id})
	return nil
}

// TogglePin flips the pinned flag of the note with the given id.
func (s *NoteStore) TogglePin(id string) error {
	s.mu.RLock()
	existing := findByID(s.notes, id, func(n *model.Note) string { return n.ID })
	s.mu.RUnlock()
	if existing == nil {
		return nil
	}

	pinned := !existing.Pinned
	return s.Update(id, model.NotePatch{Pinned: &pinned})
}

// SetQuery updates the live search query.
func (s *NoteStore) SetQuery(query string) {
	s.mu.Lock()
	s.query = query
	s.mu.Unlock()
}

// Query returns the live search query.
func (s *NoteStore) Query() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query
}

// Notes returns a copy of the full mirror.
func (s *NoteStore) Notes() []*model.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.Note, len(s.notes))
	copy(out, s.notes)
	return out
}

// Get returns the note with the given id, or nil.
func (s *NoteStore) Get(id string) *model.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return findByID(s.notes, id, func(n *model.Note) string { return n.ID })
}

// Pinned returns pinned notes.
func (s *NoteStore) Pinned() []*model.Note {
	return s.partition(true)
}

// Unpinned returns unpinned notes.
func (s *NoteStore) Unpinned() []*model.Note {
	return s.partition(false)
}

func (s *NoteStore) partition(pinned bool) []*model.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*model.Note
	for _, n := range s.notes {
		if n.Pinned == pinned {
			out = append(out, n)
		}
	}
	return out
}

// Filtered returns notes matching the live query: case-insensitive
// substring match against title, content, or any tag. An empty query
// matches everything.
func (s *NoteStore) Filtered() []*model.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.query == "" {
		out := make([]*model.Note, len(s.notes))
		copy(out, s.notes)
		return out
	}

	query := strings.ToLower(s.query)
	var out []*model.Note
	for _, n := range s.notes {
		if noteMatches(n, query) {
			out = append(out, n)
		}
	}
	return out
}

func noteMatches(n *model.Note, query string) bool {
	if strings.Contains(strings.ToLower(n.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(n.Content), query) {
		return true
	}
	for _, tag := range n.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}
