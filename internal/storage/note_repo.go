package storage

import (
	"github.com/manav03panchal/planner/internal/model"
)

// NoteRepo provides operations for Note entities.
type NoteRepo struct {
	db *DB
}

// NewNoteRepo creates a new note repository.
func NewNoteRepo(db *DB) *NoteRepo {
	return &NoteRepo{db: db}
}

// Create persists a new note.
func (r *NoteRepo) Create(note *model.Note) error {
	note.Key = model.GenerateNoteKey(note.ID)
	return r.db.Set(note)
}

// Get retrieves a note by id.
func (r *NoteRepo) Get(id string) (*model.Note, error) {
	note := &model.Note{}
	if err := r.db.Get(model.GenerateNoteKey(id), note); err != nil {
		return nil, err
	}
	return note, nil
}

// Update updates an existing note.
func (r *NoteRepo) Update(note *model.Note) error {
	return r.db.Set(note)
}

// Delete removes a note.
func (r *NoteRepo) Delete(id string) error {
	return r.db.Delete(model.GenerateNoteKey(id))
}

// List retrieves all notes.
func (r *NoteRepo) List() ([]*model.Note, error) {
	return GetAllByPrefix(r.db, model.PrefixNote+":", func() *model.Note {
		return &model.Note{}
	})
}
