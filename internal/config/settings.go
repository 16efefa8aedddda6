package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Theme holds the border colors for one terminal background. Values are
// lipgloss-compatible color strings (ANSI index or hex).
type Theme struct {
	BorderColor      string `yaml:"borderColor"`
	FocusBorderColor string `yaml:"focusBorderColor"`
}

// Settings is the user configuration loaded from settings.yml. All fields
// are optional; zero values fall back to defaults.
type Settings struct {
	// HttpdURL is the base URL of the local radicle-httpd API.
	HttpdURL string `yaml:"httpd"`

	// LightTheme and DarkTheme are picked based on the terminal background.
	LightTheme *Theme `yaml:"lightTheme"`
	DarkTheme  *Theme `yaml:"darkTheme"`

	// Keybinds maps context name -> key -> action name and overrides
	// the default bindings.
	Keybinds map[string]map[string]string `yaml:"keybinds"`
}

// DefaultSettings returns the built-in configuration.
func DefaultSettings() Settings {
	return Settings{
		HttpdURL: "http://127.0.0.1:8080",
		LightTheme: &Theme{
			BorderColor:      "#aaaaaa",
			FocusBorderColor: "#000000",
		},
		DarkTheme: &Theme{
			BorderColor:      "236",
			FocusBorderColor: "238",
		},
	}
}

// LoadSettings reads the settings file and merges it over the defaults.
// A missing file is not an error; a malformed one is. The RAD_HTTPD_URL
// environment variable wins over both, file or no file.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return applyEnv(settings), nil
	}
	if err != nil {
		return settings, fmt.Errorf("failed to read settings: %w", err)
	}

	var overrides Settings
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return settings, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if overrides.HttpdURL != "" {
		settings.HttpdURL = overrides.HttpdURL
	}
	if overrides.LightTheme != nil {
		settings.LightTheme = overrides.LightTheme
	}
	if overrides.DarkTheme != nil {
		settings.DarkTheme = overrides.DarkTheme
	}
	if overrides.Keybinds != nil {
		settings.Keybinds = overrides.Keybinds
	}

	return applyEnv(settings), nil
}

// applyEnv applies environment overrides on top of whatever the file said.
func applyEnv(settings Settings) Settings {
	if url := os.Getenv("RAD_HTTPD_URL"); url != "" {
		settings.HttpdURL = url
	}
	return settings
}
