package timekeeper

import "time"

// State represents the current TimeKeeper mode.
type State string

const (
	StateIdle     State = "idle"
	StateRunning  State = "running"
	StateFinished State = "finished"
	StateEditing  State = "editing"
)

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventTick        EventType = "tick"
	EventFinished    EventType = "finished"
)

// Event represents a TimeKeeper update for observers.
type Event struct {
	Type     EventType
	State    State
	Snapshot Snapshot
	At       time.Time
}

// Snapshot is a copy of the timer state at one point in time.
type Snapshot struct {
	State     State
	Total     int
	Remaining int
	Running   bool
	Finished  bool
	Editing   bool
	Draft     string
}

// DisplaySeconds is the value shown on the clock: the remaining time while a
// run is active or has just finished, the configured duration otherwise.
func (snapshot Snapshot) DisplaySeconds() int {
	if snapshot.Running || snapshot.Finished {
		return snapshot.Remaining
	}
	return snapshot.Total
}

// Display formats DisplaySeconds as MM:SS.
func (snapshot Snapshot) Display() string {
	return FormatTime(snapshot.DisplaySeconds())
}
