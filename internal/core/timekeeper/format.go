package timekeeper

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidTime is returned when edit text is neither MM:SS nor whole minutes.
var ErrInvalidTime = errors.New("invalid time")

// ParseTime accepts "MM:SS" (seconds below 60) or a bare number of minutes
// and returns the duration in seconds.
func ParseTime(text string) (int, error) {
	trimmed := strings.TrimSpace(text)
	if strings.Contains(trimmed, ":") {
		parts := strings.Split(trimmed, ":")
		if len(parts) != 2 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTime, text)
		}
		minutes, err := parseNonNegative(parts[0])
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTime, text)
		}
		seconds, err := parseNonNegative(parts[1])
		if err != nil || seconds >= 60 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTime, text)
		}
		return minutes*60 + seconds, nil
	}

	minutes, err := parseNonNegative(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, text)
	}
	return minutes * 60, nil
}

// FormatTime renders seconds as zero-padded MM:SS. Minutes are never
// truncated, so 100 minutes is "100:00".
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func parseNonNegative(value string) (int, error) {
	if value == "" {
		return 0, strconv.ErrSyntax
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	if parsed < 0 {
		return 0, strconv.ErrRange
	}
	// Keeps minutes*60 far from overflow; anything this large is clamped later anyway.
	if parsed > 1_000_000 {
		parsed = 1_000_000
	}
	return parsed, nil
}
