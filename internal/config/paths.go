package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// FilePermissions is the default permission mode for regular files
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories
	DirPermissions = 0755
)

var (
	// RadHome is the radicle home directory ($RAD_HOME or ~/.radicle)
	RadHome string

	// ConfigDir is the tool's own configuration directory
	ConfigDir string

	// SettingsFile is the YAML settings file
	SettingsFile string

	// LogFile is the log file; stdout belongs to the terminal UI,
	// so all logging goes here
	LogFile string
)

// Initialize resolves the radicle home and the tool's configuration
// directory. It creates the configuration directory if it doesn't exist.
func Initialize() error {
	home, err := radHome()
	if err != nil {
		return err
	}
	RadHome = home
	LogFile = filepath.Join(RadHome, "rad-tui.log")

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		configHome = filepath.Join(userHome, ".config")
	}
	ConfigDir = filepath.Join(configHome, "rad-tui")
	SettingsFile = filepath.Join(ConfigDir, "settings.yml")

	if err := os.MkdirAll(ConfigDir, DirPermissions); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", ConfigDir, err)
	}

	return nil
}

func radHome() (string, error) {
	if home := os.Getenv("RAD_HOME"); home != "" {
		return home, nil
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(userHome, ".radicle"), nil
}

// NotificationsDB returns the path of the node's notification database.
func NotificationsDB() string {
	return filepath.Join(RadHome, "node", "notifications.db")
}

// StorageDir returns the storage directory of a repository, which is
// watched for ref updates to refresh the UI.
func StorageDir(rid string) string {
	return filepath.Join(RadHome, "storage", rid)
}
