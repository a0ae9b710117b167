package storage

import (
	"github.com/manav03panchal/planner/internal/model"
)

// SettingsRepo provides operations for the Settings singleton.
// Settings live under their own key, independent of the six record
// collections, and survive a backup restore.
type SettingsRepo struct {
	db *DB
}

// NewSettingsRepo creates a new settings repository.
func NewSettingsRepo(db *DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

// Get retrieves the settings, creating defaults if they don't exist.
func (r *SettingsRepo) Get() (*model.Settings, error) {
	settings := &model.Settings{}
	err := r.db.Get(model.KeySettings, settings)
	if err == nil {
		return settings, nil
	}

	if !IsErrKeyNotFound(err) {
		return nil, err
	}

	// First run: persist defaults
	settings = model.DefaultSettings()
	if err := r.db.Set(settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Update persists the settings.
func (r *SettingsRepo) Update(settings *model.Settings) error {
	settings.Key = model.KeySettings
	return r.db.Set(settings)
}
