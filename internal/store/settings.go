package store

import (
	"sync"
	"time"

	apperrors "github.com/manav03panchal/planner/internal/errors"
	"github.com/manav03panchal/planner/internal/model"
	"github.com/manav03panchal/planner/internal/storage"
)

// SettingsStore holds the settings singleton: loaded at startup,
// persisted on every change. It is passed as a handle rather than
// living in package state.
type SettingsStore struct {
	notifier

	repo *storage.SettingsRepo

	mu       sync.RWMutex
	settings *model.Settings
}

// NewSettingsStore creates a settings store over the given repository.
func NewSettingsStore(repo *storage.SettingsRepo) *SettingsStore {
	return &SettingsStore{repo: repo}
}

// Load fetches the settings, creating defaults on first run. On
// failure any previously loaded settings are kept.
func (s *SettingsStore) Load() error {
	settings, err := s.repo.Get()
	if err != nil {
		return apperrors.NewSystemErrorWithOp("settings load", "failed to read settings", err)
	}

	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()

	s.notify(Event{Kind: EventLoaded, Collection: CollectionSettings})
	return nil
}

// Settings returns a copy of the current settings. Defaults are
// reported when Load has not run.
func (s *SettingsStore) Settings() model.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.settings == nil {
		return *model.DefaultSettings()
	}
	return *s.settings
}

// WeekStart returns the configured first day of the week.
func (s *SettingsStore) WeekStart() time.Weekday {
	return s.Settings().WeekStartDay
}

// Update applies a patch and persists the result before swapping the
// in-memory copy.
func (s *SettingsStore) Update(patch model.SettingsPatch) error {
	updated := s.Settings()
	patch.Apply(&updated)

	if err := s.repo.Update(&updated); err != nil {
		return apperrors.NewSystemErrorWithOp("settings update", "failed to write settings", err)
	}

	s.mu.Lock()
	s.settings = &updated
	s.mu.Unlock()

	s.notify(Event{Kind: EventUpdated, Collection: CollectionSettings})
	return nil
}

// ToggleTheme advances the theme through the light/dark/system cycle.
func (s *SettingsStore) ToggleTheme() error {
	current := s.Settings()
	next := current.NextTheme()
	return s.Update(model.SettingsPatch{Theme: &next})
}
