package config

import (
	"errors"
	"fmt"

	"weekwatch/internal/weekrange"
)

// Common validation errors
var (
	ErrNoSchedules       = errors.New("at least one schedule must be configured")
	ErrEmptyScheduleName = errors.New("schedule name cannot be empty")
	ErrDuplicateSchedule = errors.New("schedule names must be unique")
	ErrEmptyRangeSpec    = errors.New("schedule must define at least one range")
)

// Validate validates the entire configuration structure. Every schedule's
// range specification is parsed up front so malformed windows fail at
// config-load time rather than during membership checks.
func Validate(config *Config) error {
	if len(config.Schedules) == 0 {
		return ErrNoSchedules
	}

	seen := make(map[string]bool, len(config.Schedules))
	for _, schedule := range config.Schedules {
		if schedule.Name == "" {
			return ErrEmptyScheduleName
		}
		if seen[schedule.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateSchedule, schedule.Name)
		}
		seen[schedule.Name] = true

		set, err := weekrange.ParseSet(schedule.Ranges)
		if err != nil {
			return fmt.Errorf("schedule %q: %w", schedule.Name, err)
		}
		if set.Len() == 0 {
			return fmt.Errorf("schedule %q: %w", schedule.Name, ErrEmptyRangeSpec)
		}
	}

	if config.CheckInterval < 0 {
		return fmt.Errorf("check_interval_seconds cannot be negative: %d", config.CheckInterval)
	}

	if config.Notifications.Enabled {
		if config.Notifications.Domain == "" {
			return fmt.Errorf("notifications.domain cannot be empty when notifications are enabled")
		}
		if config.Notifications.ApiKey == "" {
			return fmt.Errorf("notifications.api_key cannot be empty when notifications are enabled")
		}
		if config.Notifications.FromEmail == "" || config.Notifications.ToEmail == "" {
			return fmt.Errorf("notifications.from_email and notifications.to_email cannot be empty when notifications are enabled")
		}
	}

	return nil
}
