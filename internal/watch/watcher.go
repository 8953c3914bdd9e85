package watch

import (
	"fmt"
	"log"
	"log/slog"
	"sync"
	"time"

	"weekwatch/internal/config"
	"weekwatch/internal/notify"
	"weekwatch/internal/state"
	"weekwatch/internal/weekrange"
)

// Schedule is a named, compiled set of weekly windows ready for
// membership checks.
type Schedule struct {
	Name   string
	Set    weekrange.RangeSet
	Notify bool
}

// The active schedule list is shared between the watcher loop, the IPC
// server and the HTTP handlers, and replaced wholesale on reload.
var (
	schedulesMutex sync.RWMutex
	schedules      []Schedule
)

// SetSchedules replaces the active schedule list.
func SetSchedules(s []Schedule) {
	schedulesMutex.Lock()
	defer schedulesMutex.Unlock()
	schedules = s
}

// Schedules returns the active schedule list.
func Schedules() []Schedule {
	schedulesMutex.RLock()
	defer schedulesMutex.RUnlock()
	out := make([]Schedule, len(schedules))
	copy(out, schedules)
	return out
}

// Lookup finds an active schedule by name.
func Lookup(name string) (Schedule, bool) {
	schedulesMutex.RLock()
	defer schedulesMutex.RUnlock()
	for _, s := range schedules {
		if s.Name == name {
			return s, true
		}
	}
	return Schedule{}, false
}

// BuildSchedules compiles every configured schedule. The config is
// expected to have passed validation, but parse errors are still
// surfaced rather than ignored.
func BuildSchedules(cfg *config.Config) ([]Schedule, error) {
	built := make([]Schedule, 0, len(cfg.Schedules))
	for _, s := range cfg.Schedules {
		set, err := weekrange.ParseSet(s.Ranges)
		if err != nil {
			return nil, fmt.Errorf("schedule %q: %w", s.Name, err)
		}
		built = append(built, Schedule{Name: s.Name, Set: set, Notify: s.Notify})
	}
	return built, nil
}

// Evaluate checks every schedule at the given instant, records the
// result in state, and returns the transitions since the previous
// evaluation. A schedule seen for the first time never produces a
// transition; it only seeds the recorded state.
func Evaluate(scheds []Schedule, now time.Time) []state.Transition {
	var changed []state.Transition

	for _, s := range scheds {
		matched, active := s.Set.FirstMatch(now)
		rendering := ""
		if active {
			rendering = matched.String()
		}

		prev, known := state.GetActivity(s.Name)
		if known && prev.Active == active {
			continue
		}

		state.SetActivity(s.Name, state.Activity{Active: active, Since: now, Range: rendering})
		if !known {
			continue
		}

		tr := state.Transition{Schedule: s.Name, Active: active, Range: rendering, At: now}
		state.AddTransition(tr)
		changed = append(changed, tr)
	}

	return changed
}

// Run evaluates all schedules once immediately, then on every tick of
// the configured interval, logging and (when configured) emailing each
// open/close transition. It blocks until stop is closed.
func Run(cfg *config.Config, stop <-chan struct{}) {
	interval := time.Duration(cfg.Interval()) * time.Second
	slog.Debug("Starting schedule watcher", "interval", interval, "schedules", len(Schedules()))

	// Seed the recorded state so the first tick only reports real changes.
	Evaluate(Schedules(), time.Now())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			for _, tr := range Evaluate(Schedules(), time.Now()) {
				announce(cfg, tr)
			}
		case <-stop:
			slog.Debug("Schedule watcher stopping")
			return
		}
	}
}

// announce logs one transition and emails it when the schedule opted in.
func announce(cfg *config.Config, tr state.Transition) {
	if tr.Active {
		log.Printf("SCHEDULE OPEN: %s (matched %s)", tr.Schedule, tr.Range)
	} else {
		log.Printf("SCHEDULE CLOSED: %s", tr.Schedule)
	}

	sched, ok := Lookup(tr.Schedule)
	if !ok || !sched.Notify {
		return
	}

	status := "closed"
	body := fmt.Sprintf("Schedule %q closed at %s.", tr.Schedule, tr.At.Format("2006-01-02 15:04:05"))
	if tr.Active {
		status = "open"
		body = fmt.Sprintf("Schedule %q opened at %s (matched window: %s).",
			tr.Schedule, tr.At.Format("2006-01-02 15:04:05"), tr.Range)
	}

	subject := fmt.Sprintf("WEEKWATCH: schedule %s is now %s", tr.Schedule, status)
	if err := notify.SendEmail(cfg, subject, body); err != nil {
		slog.Warn("Failed to send transition email", "schedule", tr.Schedule, "error", err)
	}
}
