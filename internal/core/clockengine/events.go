package clockengine

import "time"

// EventType defines the type of engine event.
type EventType string

const (
	EventPhaseChange      EventType = "phase_change"
	EventStopTimeChange   EventType = "stop_time_change"
	EventStopTimeRejected EventType = "stop_time_rejected"
	EventReset            EventType = "reset"
)

// Event represents an engine update for observers.
type Event struct {
	Type     EventType
	Phase    Phase
	Display  string
	Time     time.Duration
	StopTime time.Duration
	Message  string
	At       time.Time
}
