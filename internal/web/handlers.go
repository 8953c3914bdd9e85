package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shirou/gopsutil/v3/process"

	"weekwatch/internal/state"
	"weekwatch/internal/watch"
)

// StatusResponse is the body of GET /api/v1/status.
type StatusResponse struct {
	StartedAt     time.Time                 `json:"started_at"`
	Uptime        string                    `json:"uptime"`
	Schedules     int                       `json:"schedules"`
	Activity      map[string]ActivityStatus `json:"activity"`
	Transitions   []state.Transition        `json:"recent_transitions"`
	CPUPercent    float64                   `json:"cpu_percent"`
	MemoryRSS     uint64                    `json:"memory_rss_bytes"`
	ProcessUptime string                    `json:"process_uptime,omitempty"`
}

// ActivityStatus is the JSON rendering of one schedule's activity.
type ActivityStatus struct {
	Active bool      `json:"active"`
	Since  time.Time `json:"since"`
	Range  string    `json:"range,omitempty"`
}

// ScheduleResponse describes one schedule and its current activity.
type ScheduleResponse struct {
	Name   string   `json:"name"`
	Ranges []string `json:"ranges"`
	Notify bool     `json:"notify"`
	Active bool     `json:"active"`
	Since  time.Time `json:"since,omitempty"`
	Range  string   `json:"range,omitempty"`
}

// MatchResponse is the body of GET /api/v1/schedules/{name}/match.
type MatchResponse struct {
	Schedule string    `json:"schedule"`
	At       time.Time `json:"at"`
	Active   bool      `json:"active"`
	Range    string    `json:"range,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("Failed to encode JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// handleStatus reports daemon uptime, per-schedule activity, recent
// transitions and the daemon's own resource usage.
func handleStatus(w http.ResponseWriter, r *http.Request) {
	startedAt := state.GetStartedAt()

	resp := StatusResponse{
		StartedAt:   startedAt,
		Schedules:   len(watch.Schedules()),
		Activity:    make(map[string]ActivityStatus),
		Transitions: state.GetTransitions(),
	}
	if !startedAt.IsZero() {
		resp.Uptime = time.Since(startedAt).Round(time.Second).String()
	}

	for name, a := range state.ActivitySnapshot() {
		resp.Activity[name] = ActivityStatus{Active: a.Active, Since: a.Since, Range: a.Range}
	}

	// Process resource usage. Failures are logged but never fail the
	// status request.
	if proc, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if cpu, err := proc.CPUPercent(); err == nil {
			resp.CPUPercent = cpu
		}
		if mem, err := proc.MemoryInfo(); err == nil && mem != nil {
			resp.MemoryRSS = mem.RSS
		}
		if created, err := proc.CreateTime(); err == nil {
			started := time.UnixMilli(created)
			resp.ProcessUptime = time.Since(started).Round(time.Second).String()
		}
	} else {
		slog.Debug("Failed to inspect own process", "error", err)
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleSchedules lists every active schedule with its current activity.
func handleSchedules(w http.ResponseWriter, r *http.Request) {
	scheds := watch.Schedules()
	out := make([]ScheduleResponse, 0, len(scheds))
	for _, s := range scheds {
		out = append(out, scheduleResponse(s))
	}
	writeJSON(w, http.StatusOK, out)
}

// handleSchedule returns one schedule by name.
func handleSchedule(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	s, ok := watch.Lookup(name)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown schedule: "+name)
		return
	}
	writeJSON(w, http.StatusOK, scheduleResponse(s))
}

// handleScheduleMatch checks whether a schedule is open at a given
// instant. The instant defaults to now and can be overridden with an
// RFC 3339 "at" query parameter.
func handleScheduleMatch(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	s, ok := watch.Lookup(name)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown schedule: "+name)
		return
	}

	at := time.Now()
	if raw := r.URL.Query().Get("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid at parameter: "+err.Error())
			return
		}
		at = parsed
	}

	resp := MatchResponse{Schedule: name, At: at}
	if matched, active := s.Set.FirstMatch(at); active {
		resp.Active = true
		resp.Range = matched.String()
	}
	writeJSON(w, http.StatusOK, resp)
}

func scheduleResponse(s watch.Schedule) ScheduleResponse {
	resp := ScheduleResponse{
		Name:   s.Name,
		Notify: s.Notify,
	}
	for _, rg := range s.Set.Ranges() {
		resp.Ranges = append(resp.Ranges, rg.String())
	}
	if a, ok := state.GetActivity(s.Name); ok {
		resp.Active = a.Active
		resp.Since = a.Since
		resp.Range = a.Range
	}
	return resp
}
