package model

import "time"

const (
	// MinSeconds is the shortest duration a committed edit or preset may hold.
	MinSeconds = 1
	// MaxSeconds is the longest duration (90 minutes).
	MaxSeconds = 90 * 60
	// DefaultSeconds is the duration a fresh timer starts with.
	DefaultSeconds = 5 * 60
	// MaxAlarmRepeats caps the number of beeps a finished run plays.
	MaxAlarmRepeats = 10
)

// DefaultPresets lists the preset buttons in minutes.
var DefaultPresets = []int{5, 10, 15, 25, 30, 60}

// AlarmConfig describes the notification sequence played when a run finishes.
type AlarmConfig struct {
	Repeats int
	Gap     time.Duration
}

// TimeKeeperConfig contains runtime settings for the TimeKeeper state machine.
type TimeKeeperConfig struct {
	DefaultSeconds int
	MinSeconds     int
	MaxSeconds     int
	Presets        []int
	TickInterval   time.Duration
}

// DefaultTimeKeeperConfig returns the stock five minute timer with the
// standard preset row.
func DefaultTimeKeeperConfig() TimeKeeperConfig {
	return TimeKeeperConfig{
		DefaultSeconds: DefaultSeconds,
		MinSeconds:     MinSeconds,
		MaxSeconds:     MaxSeconds,
		Presets:        append([]int(nil), DefaultPresets...),
		TickInterval:   time.Second,
	}
}

// DefaultAlarmConfig returns three beeps half a second apart.
func DefaultAlarmConfig() AlarmConfig {
	return AlarmConfig{
		Repeats: 3,
		Gap:     500 * time.Millisecond,
	}
}

// Normalized fills zero values with defaults and keeps the bounds ordered.
func (config TimeKeeperConfig) Normalized() TimeKeeperConfig {
	if config.MinSeconds <= 0 {
		config.MinSeconds = MinSeconds
	}
	if config.MaxSeconds <= 0 {
		config.MaxSeconds = MaxSeconds
	}
	if config.MaxSeconds < config.MinSeconds {
		config.MaxSeconds = config.MinSeconds
	}
	if config.DefaultSeconds <= 0 {
		config.DefaultSeconds = DefaultSeconds
	}
	config.DefaultSeconds = config.Clamp(config.DefaultSeconds)
	if len(config.Presets) == 0 {
		config.Presets = append([]int(nil), DefaultPresets...)
	}
	if config.TickInterval <= 0 {
		config.TickInterval = time.Second
	}
	return config
}

// Clamp bounds seconds to [MinSeconds, MaxSeconds].
func (config TimeKeeperConfig) Clamp(seconds int) int {
	if seconds < config.MinSeconds {
		return config.MinSeconds
	}
	if seconds > config.MaxSeconds {
		return config.MaxSeconds
	}
	return seconds
}
