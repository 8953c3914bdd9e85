package watch

import (
	"testing"
	"time"

	"weekwatch/internal/config"
	"weekwatch/internal/state"
)

// 2016-01-03 was a Sunday, so day 0 = Sunday through day 6 = Saturday.
func at(day, hour, minute int) time.Time {
	return time.Date(2016, time.January, 3+day, hour, minute, 0, 0, time.UTC)
}

func buildTestSchedules(t *testing.T) []Schedule {
	t.Helper()
	cfg := &config.Config{
		Schedules: []config.Schedule{
			{Name: "business-hours", Ranges: "Mon 09:00 - 18:00, Tue 09:00 - 18:00"},
			{Name: "weekend", Ranges: "Fri 22:00 - Mon 06:00"},
		},
	}
	scheds, err := BuildSchedules(cfg)
	if err != nil {
		t.Fatalf("BuildSchedules failed: %v", err)
	}
	return scheds
}

func TestBuildSchedules(t *testing.T) {
	scheds := buildTestSchedules(t)
	if len(scheds) != 2 {
		t.Fatalf("Built %d schedules, want 2", len(scheds))
	}
	if scheds[0].Name != "business-hours" || scheds[0].Set.Len() != 2 {
		t.Errorf("Unexpected first schedule: %+v", scheds[0])
	}
}

func TestBuildSchedules_BadSpec(t *testing.T) {
	cfg := &config.Config{
		Schedules: []config.Schedule{
			{Name: "broken", Ranges: "nonsense"},
		},
	}
	if _, err := BuildSchedules(cfg); err == nil {
		t.Fatal("Expected error for malformed range spec")
	}
}

func TestEvaluate_FirstRunSeedsWithoutTransitions(t *testing.T) {
	state.ResetActivity()
	state.ClearTransitions()
	scheds := buildTestSchedules(t)

	// Monday 10:00, inside business hours.
	changed := Evaluate(scheds, at(1, 10, 0))
	if len(changed) != 0 {
		t.Errorf("First evaluation produced %d transitions, want 0", len(changed))
	}

	a, ok := state.GetActivity("business-hours")
	if !ok || !a.Active {
		t.Errorf("business-hours activity = %+v, want active", a)
	}
	if a.Range != "Mon 09:00 - Mon 18:00" {
		t.Errorf("matched range = %q", a.Range)
	}

	a, ok = state.GetActivity("weekend")
	if !ok || a.Active {
		t.Errorf("weekend activity = %+v, want inactive", a)
	}
}

func TestEvaluate_ReportsTransitions(t *testing.T) {
	state.ResetActivity()
	state.ClearTransitions()
	scheds := buildTestSchedules(t)

	Evaluate(scheds, at(1, 10, 0)) // seed: business open, weekend closed

	// No change an hour later.
	if changed := Evaluate(scheds, at(1, 11, 0)); len(changed) != 0 {
		t.Errorf("Unchanged evaluation produced %d transitions", len(changed))
	}

	// Monday 18:00: business hours close (right-exclusive boundary).
	changed := Evaluate(scheds, at(1, 18, 0))
	if len(changed) != 1 {
		t.Fatalf("Got %d transitions, want 1", len(changed))
	}
	if changed[0].Schedule != "business-hours" || changed[0].Active {
		t.Errorf("Unexpected transition: %+v", changed[0])
	}

	// Friday 22:00: weekend opens (left-inclusive boundary).
	changed = Evaluate(scheds, at(5, 22, 0))
	if len(changed) != 1 {
		t.Fatalf("Got %d transitions, want 1", len(changed))
	}
	tr := changed[0]
	if tr.Schedule != "weekend" || !tr.Active {
		t.Errorf("Unexpected transition: %+v", tr)
	}
	if tr.Range != "Fri 22:00 - Mon 06:00" {
		t.Errorf("transition range = %q", tr.Range)
	}

	// Transitions are also recorded in the shared history.
	if got := len(state.GetTransitions()); got != 2 {
		t.Errorf("History holds %d transitions, want 2", got)
	}
}

func TestScheduleRegistry(t *testing.T) {
	scheds := buildTestSchedules(t)
	SetSchedules(scheds)
	defer SetSchedules(nil)

	if got := Schedules(); len(got) != 2 {
		t.Fatalf("Schedules() returned %d entries, want 2", len(got))
	}

	s, ok := Lookup("weekend")
	if !ok || s.Name != "weekend" {
		t.Errorf("Lookup(weekend) = %+v, %v", s, ok)
	}
	if _, ok := Lookup("missing"); ok {
		t.Error("Lookup of unknown schedule succeeded")
	}
}
