package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"weekwatch/internal/weekrange"
)

func TestValidate_NoSchedules(t *testing.T) {
	cfg := &Config{}

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Expected validation error for empty schedule list")
	}
	if !errors.Is(err, ErrNoSchedules) {
		t.Errorf("Expected ErrNoSchedules, got: %v", err)
	}
}

func TestValidate_EmptyScheduleName(t *testing.T) {
	cfg := &Config{
		Schedules: []Schedule{
			{Name: "", Ranges: "Mon 09:00 - 18:00"},
		},
	}

	err := Validate(cfg)
	if !errors.Is(err, ErrEmptyScheduleName) {
		t.Errorf("Expected ErrEmptyScheduleName, got: %v", err)
	}
}

func TestValidate_DuplicateScheduleName(t *testing.T) {
	cfg := &Config{
		Schedules: []Schedule{
			{Name: "work", Ranges: "Mon 09:00 - 18:00"},
			{Name: "work", Ranges: "Tue 09:00 - 18:00"},
		},
	}

	err := Validate(cfg)
	if !errors.Is(err, ErrDuplicateSchedule) {
		t.Errorf("Expected ErrDuplicateSchedule, got: %v", err)
	}
}

func TestValidate_MalformedRanges(t *testing.T) {
	tests := []struct {
		name   string
		ranges string
		want   error
	}{
		{"bad grammar", "whenever", weekrange.ErrBadFormat},
		{"bad day", "Xyz 09:00 - 18:00", weekrange.ErrInvalidDay},
		{"hour out of range", "25:00 - 26:00", weekrange.ErrRangeConfig},
		{"empty spec", " , ", ErrEmptyRangeSpec},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Schedules: []Schedule{
					{Name: "work", Ranges: tt.ranges},
				},
			}
			err := Validate(cfg)
			if err == nil {
				t.Fatalf("Expected validation error for ranges %q", tt.ranges)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestValidate_NotificationsIncomplete(t *testing.T) {
	cfg := &Config{
		Schedules: []Schedule{
			{Name: "work", Ranges: "Mon 09:00 - 18:00"},
		},
		Notifications: NotificationsConfig{
			Enabled: true, // missing domain, key and addresses
		},
	}

	if err := Validate(cfg); err == nil {
		t.Fatal("Expected validation error for incomplete notifications config")
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		Schedules: []Schedule{
			{Name: "business-hours", Ranges: "Mon 09:00 - 18:00, Tue 09:00 - 18:00"},
			{Name: "weekend", Ranges: "Fri 22:00 - Mon 06:00", Notify: true},
		},
		CheckInterval: 60,
	}

	if err := Validate(cfg); err != nil {
		t.Fatalf("Expected valid config, got error: %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `
schedules:
  - name: business-hours
    ranges: "Mon 09:00 - 18:00, Tue 09:00 - 18:00"
    notify: true
listen_addr: "127.0.0.1:9000"
check_interval_seconds: 15
log_level: debug
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("Failed to write config fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(cfg.Schedules) != 1 {
		t.Fatalf("Expected 1 schedule, got %d", len(cfg.Schedules))
	}
	if cfg.Schedules[0].Name != "business-hours" || !cfg.Schedules[0].Notify {
		t.Errorf("Unexpected schedule: %+v", cfg.Schedules[0])
	}
	if cfg.ListenAddr != "127.0.0.1:9000" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
	if cfg.Interval() != 15 {
		t.Errorf("Interval() = %d, want 15", cfg.Interval())
	}
	if cfg.Socket() != DefaultSocketPath {
		t.Errorf("Socket() = %q, want default", cfg.Socket())
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("Expected error for missing config file")
	}
}

func TestSetupLogging(t *testing.T) {
	tests := []struct {
		logLevel string
	}{
		{"debug"},
		{"info"},
		{"warn"},
		{"warning"},
		{"error"},
		{"invalid"}, // Should default to info
		{""},        // Should default to info
	}

	for _, tt := range tests {
		t.Run(tt.logLevel, func(t *testing.T) {
			cfg := &Config{LogLevel: tt.logLevel}
			// Should not panic
			SetupLogging(cfg)
		})
	}
}
