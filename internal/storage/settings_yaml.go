package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"countertimer/internal/core/model"
	"countertimer/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	PresetMinutes  []int `yaml:"preset_minutes"`
	DefaultSeconds int   `yaml:"default_seconds"`
	AlarmRepeats   int   `yaml:"alarm_repeats"`
	AlarmGapMillis int   `yaml:"alarm_gap_ms"`
	SoundEnabled   *bool `yaml:"sound_enabled"`
	NotifyOnFinish *bool `yaml:"notify_on_finish"`
}

// DefaultDir returns the per-user settings directory for appName.
func DefaultDir(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName), nil
}

// SettingsPath returns the settings file inside dir.
func SettingsPath(dir string) string {
	return filepath.Join(dir, settingsFileName)
}

// LoadSettings reads user preferences from YAML in dir.
// If the file does not exist, default settings are returned.
func LoadSettings(dir string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(SettingsPath(dir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to YAML in dir.
func SaveSettings(dir string, settings preferences.Settings) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	sound := settings.SoundEnabled
	notify := settings.NotifyOnFinish
	fileData := yamlSettings{
		PresetMinutes:  settings.Presets,
		DefaultSeconds: int(settings.DefaultDuration / time.Second),
		AlarmRepeats:   settings.AlarmRepeats,
		AlarmGapMillis: int(settings.AlarmGap / time.Millisecond),
		SoundEnabled:   &sound,
		NotifyOnFinish: &notify,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(SettingsPath(dir), serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if presets := validPresets(fileData.PresetMinutes); len(presets) > 0 {
		settings.Presets = presets
	}
	if fileData.DefaultSeconds >= model.MinSeconds && fileData.DefaultSeconds <= model.MaxSeconds {
		settings.DefaultDuration = time.Duration(fileData.DefaultSeconds) * time.Second
	}
	if fileData.AlarmRepeats > 0 && fileData.AlarmRepeats <= model.MaxAlarmRepeats {
		settings.AlarmRepeats = fileData.AlarmRepeats
	}
	if fileData.AlarmGapMillis > 0 {
		settings.AlarmGap = time.Duration(fileData.AlarmGapMillis) * time.Millisecond
	}
	if fileData.SoundEnabled != nil {
		settings.SoundEnabled = *fileData.SoundEnabled
	}
	if fileData.NotifyOnFinish != nil {
		settings.NotifyOnFinish = *fileData.NotifyOnFinish
	}
}

func validPresets(minutes []int) []int {
	var presets []int
	for _, value := range minutes {
		if value > 0 && value*60 <= model.MaxSeconds {
			presets = append(presets, value)
		}
	}
	return presets
}
