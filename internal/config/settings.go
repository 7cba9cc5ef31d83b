package config

import (
	"fyne.io/fyne/v2"

	"github.com/pazhonic/panel-manager/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage       = "app_language"
	KeySessionToken   = "pazhonic_session_token"
	KeyLastCategory   = "last_active_category"
	KeyDatabasePath   = "host_database_path"
	KeyConfirmDeletes = "confirm_panel_deletes"
)

// Default values
const (
	DefaultLanguage       = "fa"
	DefaultConfirmDeletes = true
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"fa": "فارسی",
		"en": "English",
	}
}

// StoredToken returns the mirrored session token, empty when logged out.
// The bridge host remains authoritative; this only lets the UI restore
// "logged in" state across restarts without a host round trip.
func (s *Settings) StoredToken() string {
	return s.app.Preferences().String(KeySessionToken)
}

// SetStoredToken mirrors the session token, or clears it when empty
func (s *Settings) SetStoredToken(token string) {
	if token == "" {
		s.app.Preferences().RemoveValue(KeySessionToken)
		return
	}
	s.app.Preferences().SetString(KeySessionToken, token)
}

// GetLastCategory returns the category selected when the app last closed
func (s *Settings) GetLastCategory() string {
	return s.app.Preferences().String(KeyLastCategory)
}

// SetLastCategory remembers the active category across restarts
func (s *Settings) SetLastCategory(category string) {
	s.app.Preferences().SetString(KeyLastCategory, category)
}

// GetDatabasePath returns the host database path
func (s *Settings) GetDatabasePath() string {
	path := s.app.Preferences().String(KeyDatabasePath)
	if path == "" {
		path = platform.DefaultDatabasePath()
		s.SetDatabasePath(path)
	}
	return path
}

// SetDatabasePath sets the host database path
func (s *Settings) SetDatabasePath(path string) {
	s.app.Preferences().SetString(KeyDatabasePath, path)
}

// GetConfirmDeletes returns whether panel deletion requires confirmation
func (s *Settings) GetConfirmDeletes() bool {
	return s.app.Preferences().BoolWithFallback(KeyConfirmDeletes, DefaultConfirmDeletes)
}

// SetConfirmDeletes sets whether panel deletion requires confirmation
func (s *Settings) SetConfirmDeletes(confirm bool) {
	s.app.Preferences().SetBool(KeyConfirmDeletes, confirm)
}
