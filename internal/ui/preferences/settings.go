package preferences

import (
	"time"

	"countertimer/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	Presets         []int
	DefaultDuration time.Duration

	AlarmRepeats   int
	AlarmGap       time.Duration
	SoundEnabled   bool
	NotifyOnFinish bool
}

// DefaultSettings returns default settings for CounterTimer.
func DefaultSettings() Settings {
	alarm := model.DefaultAlarmConfig()
	return Settings{
		Presets:         append([]int(nil), model.DefaultPresets...),
		DefaultDuration: model.DefaultSeconds * time.Second,
		AlarmRepeats:    alarm.Repeats,
		AlarmGap:        alarm.Gap,
		SoundEnabled:    true,
		NotifyOnFinish:  true,
	}
}

// TimeKeeperConfig converts settings to TimeKeeperConfig.
func (settings Settings) TimeKeeperConfig() model.TimeKeeperConfig {
	config := model.DefaultTimeKeeperConfig()
	config.DefaultSeconds = int(settings.DefaultDuration / time.Second)
	if len(settings.Presets) > 0 {
		config.Presets = append([]int(nil), settings.Presets...)
	}
	return config.Normalized()
}

// AlarmConfig converts settings to AlarmConfig.
func (settings Settings) AlarmConfig() model.AlarmConfig {
	config := model.DefaultAlarmConfig()
	if settings.AlarmRepeats > 0 {
		config.Repeats = settings.AlarmRepeats
	}
	if settings.AlarmGap > 0 {
		config.Gap = settings.AlarmGap
	}
	return config
}
