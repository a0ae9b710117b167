package model

import "time"

// Theme represents the UI color scheme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// Settings holds application preferences (singleton).
type Settings struct {
	Key                  string       `json:"key"`
	Theme                Theme        `json:"theme" validate:"oneof=light dark system"`
	NotificationsEnabled bool         `json:"notifications_enabled"`
	Language             string       `json:"language" validate:"oneof=en ru"`
	WeekStartDay         time.Weekday `json:"week_start_day" validate:"oneof=0 1"`
}

// SetKey sets the database key for the settings record.
func (s *Settings) SetKey(key string) {
	s.Key = key
}

// GetKey returns the database key for the settings record.
func (s *Settings) GetKey() string {
	return s.Key
}

// DefaultSettings returns settings created on first run.
func DefaultSettings() *Settings {
	return &Settings{
		Key:                  KeySettings,
		Theme:                ThemeSystem,
		NotificationsEnabled: true,
		Language:             "en",
		WeekStartDay:         time.Monday,
	}
}

// NextTheme returns the theme following the light/dark/system cycle.
func (s *Settings) NextTheme() Theme {
	switch s.Theme {
	case ThemeLight:
		return ThemeDark
	case ThemeDark:
		return ThemeSystem
	default:
		return ThemeLight
	}
}

// SettingsPatch is a field-level partial update for settings.
type SettingsPatch struct {
	Theme                *Theme
	NotificationsEnabled *bool
	Language             *string
	WeekStartDay         *time.Weekday
}

// Apply merges the patch into the settings.
func (p SettingsPatch) Apply(s *Settings) {
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
	if p.NotificationsEnabled != nil {
		s.NotificationsEnabled = *p.NotificationsEnabled
	}
	if p.Language != nil {
		s.Language = *p.Language
	}
	if p.WeekStartDay != nil {
		s.WeekStartDay = *p.WeekStartDay
	}
}
