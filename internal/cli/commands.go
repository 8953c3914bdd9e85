package cli

import (
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	"weekwatch/internal/config"
	"weekwatch/internal/state"
	"weekwatch/internal/watch"
)

// GetStatusResponse returns a formatted runtime status report.
func GetStatusResponse(cfg *config.Config) string {
	var response strings.Builder
	now := time.Now()

	response.WriteString("╔════════════════════════════════════════════════╗\n")
	response.WriteString("║              WEEKWATCH STATUS                  ║\n")
	response.WriteString("╚════════════════════════════════════════════════╝\n\n")

	response.WriteString(fmt.Sprintf("Current Time: %s\n", now.Format("2006-01-02 15:04:05")))

	startedAt := state.GetStartedAt()
	if !startedAt.IsZero() {
		response.WriteString(fmt.Sprintf("Uptime: %v\n", now.Sub(startedAt).Round(time.Second)))
	}

	scheds := watch.Schedules()
	response.WriteString(fmt.Sprintf("Schedules: %d\n\n", len(scheds)))

	for _, s := range scheds {
		a, known := state.GetActivity(s.Name)
		switch {
		case !known:
			response.WriteString(fmt.Sprintf("  %s: not yet evaluated\n", s.Name))
		case a.Active:
			response.WriteString(fmt.Sprintf("  %s: OPEN since %s (matched %s)\n",
				s.Name, a.Since.Format("2006-01-02 15:04:05"), a.Range))
		default:
			response.WriteString(fmt.Sprintf("  %s: closed since %s\n",
				s.Name, a.Since.Format("2006-01-02 15:04:05")))
		}
	}

	transitions := state.GetTransitions()
	if len(transitions) > 0 {
		response.WriteString(fmt.Sprintf("\nRecent Transitions (%d):\n", len(transitions)))
		shown := transitions
		if len(shown) > 10 {
			shown = shown[len(shown)-10:]
		}
		for _, tr := range shown {
			verb := "closed"
			if tr.Active {
				verb = "opened"
			}
			response.WriteString(fmt.Sprintf("  %s %s %s\n",
				tr.At.Format("2006-01-02 15:04:05"), tr.Schedule, verb))
		}
	}

	response.WriteString("\nEND\n")
	return response.String()
}

// GetInfoResponse returns a formatted configuration information report.
func GetInfoResponse(cfg *config.Config) string {
	var response strings.Builder

	response.WriteString("╔════════════════════════════════════════════════╗\n")
	response.WriteString("║            CONFIGURATION INFO                  ║\n")
	response.WriteString("╚════════════════════════════════════════════════╝\n\n")

	response.WriteString(fmt.Sprintf("Check Interval: %d seconds\n", cfg.Interval()))
	response.WriteString(fmt.Sprintf("Listen Address: %s\n", cfg.ListenAddr))
	response.WriteString(fmt.Sprintf("Socket Path: %s\n", cfg.Socket()))
	response.WriteString(fmt.Sprintf("Email Notifications: %v\n\n", cfg.Notifications.Enabled))

	scheds := watch.Schedules()
	response.WriteString(fmt.Sprintf("Schedules (%d):\n", len(scheds)))
	for _, s := range scheds {
		suffix := ""
		if s.Notify {
			suffix = " [notify]"
		}
		response.WriteString(fmt.Sprintf("  %s: %s%s\n", s.Name, s.Set.String(), suffix))
	}

	response.WriteString("\nEND\n")
	return response.String()
}

// GetCheckResponse reports whether a schedule is open at a given
// instant. rawTime is an optional RFC 3339 timestamp; empty means now.
func GetCheckResponse(name, rawTime string) string {
	s, ok := watch.Lookup(name)
	if !ok {
		return fmt.Sprintf("ERROR: Unknown schedule: %s\nEND\n", name)
	}

	at := time.Now()
	if rawTime != "" {
		parsed, err := time.Parse(time.RFC3339, rawTime)
		if err != nil {
			return fmt.Sprintf("ERROR: Invalid time %q: %v\nEND\n", rawTime, err)
		}
		at = parsed
	}

	if matched, active := s.Set.FirstMatch(at); active {
		return fmt.Sprintf("OPEN: %s at %s (matched %s)\nEND\n",
			name, at.Format("2006-01-02 15:04:05"), matched.String())
	}
	return fmt.Sprintf("CLOSED: %s at %s\nEND\n", name, at.Format("2006-01-02 15:04:05"))
}

// ProcessReloadRequest re-reads the configuration file, validates it,
// and swaps in the rebuilt schedule set. Recorded activity is reset so
// the next evaluation reseeds from the new schedules.
func ProcessReloadRequest(cfg *config.Config, path string) {
	slog.Debug("Processing reload request", "path", path)

	newCfg, err := config.Load(path)
	if err != nil {
		log.Printf("ERROR: Failed to reload config: %v", err)
		return
	}

	if err := config.Validate(newCfg); err != nil {
		log.Printf("ERROR: Invalid config: %v", err)
		return
	}

	scheds, err := watch.BuildSchedules(newCfg)
	if err != nil {
		log.Printf("ERROR: Failed to build schedules: %v", err)
		return
	}

	*cfg = *newCfg
	watch.SetSchedules(scheds)
	state.ResetActivity()

	log.Println("✓ Configuration reloaded successfully")
}
