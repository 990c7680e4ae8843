package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix for environment variable overrides,
// e.g. NEODYNIUM_SEARCH_ENGINE.
const EnvPrefix = "NEODYNIUM"

// ErrConfigNotFound is returned when the settings file does not exist.
var ErrConfigNotFound = errors.New("settings file not found")

// LoadSettingsFile loads settings from a YAML file.
// Keys missing from the file keep their default values.
// If the file does not exist, it returns ErrConfigNotFound.
func LoadSettingsFile(path string) (Settings, error) {
	settings := NewSettings()

	data, err := os.ReadFile(path) //nolint:gosec // User-provided settings path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return settings, ErrConfigNotFound
		}
		return settings, err
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return NewSettings(), fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return settings, nil
}

// FindSettingsFile returns the settings file to use:
//  1. configPath, if it is non-empty and exists
//  2. settings.yaml in XDGConfigDir, if it exists
//
// It returns "" when nothing is found. An explicit configPath that does not
// exist also yields "", so callers can report it.
func FindSettingsFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	if _, err := os.Stat(DefaultSettingsPath()); err == nil {
		return DefaultSettingsPath()
	}

	return ""
}

// ApplyEnv overrides settings with NEODYNIUM_* environment variables.
// Variables that are not set leave the corresponding field untouched.
func ApplyEnv(settings Settings) (Settings, error) {
	if err := envconfig.Process(EnvPrefix, &settings); err != nil {
		return settings, fmt.Errorf("failed to read environment overrides: %w", err)
	}
	return settings, nil
}

// Load resolves settings from defaults, the settings file and the environment.
// A missing settings file is only an error when configPath was given explicitly.
func Load(configPath string) (Settings, error) {
	settings := NewSettings()

	path := FindSettingsFile(configPath)
	switch {
	case path != "":
		loaded, err := LoadSettingsFile(path)
		if err != nil {
			return settings, err
		}
		settings = loaded
	case configPath != "":
		return settings, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
	}

	settings, err := ApplyEnv(settings)
	if err != nil {
		return settings, err
	}

	if err := settings.Validate(); err != nil {
		return settings, fmt.Errorf("configuration error: %w", err)
	}
	return settings, nil
}
