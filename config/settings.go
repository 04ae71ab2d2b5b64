package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/transactify/transactify/app/entity"
)

const settingsDirName = "transactify"

// SettingsPath returns the per-user settings file location, e.g.
// ~/.config/transactify/config.json on Linux.
func SettingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, settingsDirName, "config.json"), nil
}

// LoadSettings reads the global settings file. An absent or unparsable
// file yields empty settings, never an error; the first save recreates it.
func LoadSettings(path string) *entity.GlobalSettings {
	settings := &entity.GlobalSettings{Providers: map[string]entity.Credentials{}}

	data, err := os.ReadFile(path)
	if err != nil {
		return settings
	}
	if err := json.Unmarshal(data, settings); err != nil {
		return &entity.GlobalSettings{Providers: map[string]entity.Credentials{}}
	}
	if settings.Providers == nil {
		settings.Providers = map[string]entity.Credentials{}
	}
	return settings
}

// SaveSettings rewrites the whole settings file, creating the parent
// directory when missing. There is no merge and no locking; concurrent
// writers can lose updates.
func SaveSettings(path string, settings *entity.GlobalSettings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
