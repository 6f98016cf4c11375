package domain

// WorkoutStatus type for the workout lifecycle
type WorkoutStatus string

const (
	StatusPending   WorkoutStatus = "pending"
	StatusCompleted WorkoutStatus = "completed"
	StatusMissed    WorkoutStatus = "missed"
)

// Exercise is a single entry within a workout's ordered exercise list.
// Reps is free form on purpose ("8-10", "Max", "20 mins").
type Exercise struct {
	Name   string `json:"name"`
	Sets   int    `json:"sets"`
	Reps   string `json:"reps"`
	Weight string `json:"weight,omitempty"`
	Rest   string `json:"rest,omitempty"`
}

// Workout represents a single training session assigned to one client.
// Date is a calendar day (no time component), compared by string equality.
type Workout struct {
	ID        string        `json:"id"`
	UserID    string        `json:"userId"` // owning client
	Title     string        `json:"title"`
	Date      string        `json:"date"` // ISO date, e.g. "2026-08-28"
	Status    WorkoutStatus `json:"status"`
	Exercises []Exercise    `json:"exercises"`
}
