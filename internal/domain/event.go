package domain

// EventType type for schedule entries
type EventType string

const (
	EventWorkout  EventType = "workout"
	EventCall     EventType = "call"
	EventReminder EventType = "reminder"
)

// Event is an entry on the schedule calendar. It is independent of Workout
// even though both render on the same calendar. Time is a display string;
// zero-padded "HH:MM" keeps lexicographic order chronological.
type Event struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Date  string    `json:"date"` // ISO date, e.g. "2026-08-28"
	Type  EventType `json:"type"`
	Time  string    `json:"time"`
}
