package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestStoredToken(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// No token by default
	if settings.StoredToken() != "" {
		t.Error("Expected empty token by default")
	}

	settings.SetStoredToken("abc.def.ghi")
	if settings.StoredToken() != "abc.def.ghi" {
		t.Errorf("Expected mirrored token, got %s", settings.StoredToken())
	}

	// Empty token clears the mirror
	settings.SetStoredToken("")
	if settings.StoredToken() != "" {
		t.Error("Expected token to be cleared")
	}
}

func TestLastCategory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetLastCategory() != "" {
		t.Error("Expected empty last category by default")
	}

	settings.SetLastCategory("uncategorized")
	if settings.GetLastCategory() != "uncategorized" {
		t.Errorf("Expected 'uncategorized', got %s", settings.GetLastCategory())
	}
}

func TestDatabasePath(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Default resolves to a non-empty path and is persisted
	path := settings.GetDatabasePath()
	if path == "" {
		t.Fatal("Expected non-empty database path")
	}

	settings.SetDatabasePath("/custom/panels.db")
	if settings.GetDatabasePath() != "/custom/panels.db" {
		t.Errorf("Expected custom path, got %s", settings.GetDatabasePath())
	}
}

func TestConfirmDeletes(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if !settings.GetConfirmDeletes() {
		t.Error("Expected confirm deletes to default to true")
	}

	settings.SetConfirmDeletes(false)
	if settings.GetConfirmDeletes() {
		t.Error("Expected confirm deletes to be false after set")
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"fa", "en"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
