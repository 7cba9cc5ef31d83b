package platform

import (
	"os"
	"path/filepath"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// DataDirName is the directory created under the user config dir
const DataDirName = "panel-manager"

// CreateDirectoryIfNotExists creates a directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// DefaultDataDir returns the per-user directory holding the host database.
// Falls back to the system temp dir when the config dir cannot be resolved.
func DefaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, DataDirName)
}

// DefaultDatabasePath returns the default path of the host SQLite database
func DefaultDatabasePath() string {
	return filepath.Join(DefaultDataDir(), "panels.db")
}
