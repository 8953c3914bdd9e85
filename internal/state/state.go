package state

import (
	"sync"
	"time"
)

// Activity is the last known status of one named schedule.
type Activity struct {
	Active bool      // currently inside one of the schedule's windows
	Since  time.Time // when the current status was first observed
	Range  string    // rendering of the matched range while active
}

// Transition records one observed open/close change.
type Transition struct {
	Schedule string
	Active   bool
	Range    string
	At       time.Time
}

// maxTransitionLog bounds the in-memory transition history.
const maxTransitionLog = 100

// Global state variables (private, accessed via functions)
var (
	// Schedule activity
	activities    = make(map[string]Activity)
	activityMutex sync.RWMutex

	// Transition history
	transitions      []Transition
	transitionsMutex sync.RWMutex

	// Email rate limiting
	lastEmailTimes = make(map[string]time.Time)
	emailMutex     sync.RWMutex

	// Daemon start time
	startedAt      time.Time
	startedAtMutex sync.RWMutex
)

// Schedule activity functions

// GetActivity returns the last recorded activity for a schedule. The
// second return is false when the schedule has never been evaluated.
func GetActivity(name string) (Activity, bool) {
	activityMutex.RLock()
	defer activityMutex.RUnlock()
	a, ok := activities[name]
	return a, ok
}

// SetActivity records the current activity for a schedule.
func SetActivity(name string, a Activity) {
	activityMutex.Lock()
	defer activityMutex.Unlock()
	activities[name] = a
}

// ActivitySnapshot returns a copy of all recorded schedule activity.
func ActivitySnapshot() map[string]Activity {
	activityMutex.RLock()
	defer activityMutex.RUnlock()
	out := make(map[string]Activity, len(activities))
	for name, a := range activities {
		out[name] = a
	}
	return out
}

// ResetActivity forgets all recorded activity. Used on reload and in tests.
func ResetActivity() {
	activityMutex.Lock()
	defer activityMutex.Unlock()
	activities = make(map[string]Activity)
}

// Transition history functions

// AddTransition appends a transition to the bounded history.
func AddTransition(tr Transition) {
	transitionsMutex.Lock()
	defer transitionsMutex.Unlock()
	transitions = append(transitions, tr)
	if len(transitions) > maxTransitionLog {
		transitions = transitions[len(transitions)-maxTransitionLog:]
	}
}

// GetTransitions returns a copy of the recorded transitions, oldest first.
func GetTransitions() []Transition {
	transitionsMutex.RLock()
	defer transitionsMutex.RUnlock()
	out := make([]Transition, len(transitions))
	copy(out, transitions)
	return out
}

// ClearTransitions empties the transition history.
func ClearTransitions() {
	transitionsMutex.Lock()
	defer transitionsMutex.Unlock()
	transitions = nil
}

// Email rate limiting functions

// GetLastEmailTime returns the last time an email was sent for a specific event type.
func GetLastEmailTime(eventType string) (time.Time, bool) {
	emailMutex.RLock()
	defer emailMutex.RUnlock()
	t, ok := lastEmailTimes[eventType]
	return t, ok
}

// SetLastEmailTime sets the last time an email was sent for a specific event type.
func SetLastEmailTime(eventType string, t time.Time) {
	emailMutex.Lock()
	defer emailMutex.Unlock()
	lastEmailTimes[eventType] = t
}

// Daemon start time functions

// SetStartedAt records when the daemon started.
func SetStartedAt(t time.Time) {
	startedAtMutex.Lock()
	defer startedAtMutex.Unlock()
	startedAt = t
}

// GetStartedAt returns when the daemon started.
func GetStartedAt() time.Time {
	startedAtMutex.RLock()
	defer startedAtMutex.RUnlock()
	return startedAt
}
