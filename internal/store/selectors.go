package store

import (
	"sort"
	"strings"
	"trainio/internal/domain"
)

// Derived-view selectors. All are pure functions over a Snapshot; screens
// and handlers compute them at read time instead of persisting them.

// TodaysWorkout returns the workout owned by userID dated today, or nil.
// When several workouts share the day, the first in collection order wins.
func (snap Snapshot) TodaysWorkout(userID, today string) *domain.Workout {
	for i := range snap.Workouts {
		w := &snap.Workouts[i]
		if w.UserID == userID && w.Date == today {
			return w
		}
	}
	return nil
}

// UpcomingWorkouts returns the pending workouts for userID, excluding
// today's workout.
func (snap Snapshot) UpcomingWorkouts(userID, today string) []domain.Workout {
	var todayID string
	if tw := snap.TodaysWorkout(userID, today); tw != nil {
		todayID = tw.ID
	}
	var out []domain.Workout
	for _, w := range snap.Workouts {
		if w.UserID == userID && w.Status == domain.StatusPending && w.ID != todayID {
			out = append(out, w)
		}
	}
	return out
}

// CompletedWorkouts returns the completed workouts for userID.
func (snap Snapshot) CompletedWorkouts(userID string) []domain.Workout {
	var out []domain.Workout
	for _, w := range snap.Workouts {
		if w.UserID == userID && w.Status == domain.StatusCompleted {
			out = append(out, w)
		}
	}
	return out
}

// Conversation returns every message exchanged between a and b, ordered by
// timestamp ascending. The result is symmetric in its arguments; the stable
// sort preserves insertion order for equal timestamps.
func (snap Snapshot) Conversation(a, b string) []domain.Message {
	var out []domain.Message
	for _, m := range snap.Messages {
		if (m.SenderID == a && m.ReceiverID == b) || (m.SenderID == b && m.ReceiverID == a) {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

// Contacts returns every user except userID, optionally filtered by a
// case-insensitive name substring.
func (snap Snapshot) Contacts(userID, filter string) []domain.User {
	filter = strings.ToLower(filter)
	var out []domain.User
	for _, u := range snap.Users {
		if u.ID == userID {
			continue
		}
		if filter != "" && !strings.Contains(strings.ToLower(u.Name), filter) {
			continue
		}
		out = append(out, u)
	}
	return out
}

// MacroTotals are the summed macros of one user's meals for one day.
type MacroTotals struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fats     int `json:"fats"`
}

// DailyMacroTotals sums the macros of every meal userID logged on the given
// calendar day.
func (snap Snapshot) DailyMacroTotals(userID, day string) MacroTotals {
	var t MacroTotals
	for _, m := range snap.Meals {
		if m.UserID != userID || !domain.SameDay(m.Date, day) {
			continue
		}
		t.Calories += m.Calories
		t.Protein += m.Protein
		t.Carbs += m.Carbs
		t.Fats += m.Fats
	}
	return t
}

// Agenda returns the events on the given day, ascending by time string.
// Times are zero-padded "HH:MM", so the lexicographic sort is
// chronological; the stable sort keeps insertion order for equal times.
func (snap Snapshot) Agenda(day string) []domain.Event {
	var out []domain.Event
	for _, e := range snap.Events {
		if e.Date == day {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time < out[j].Time
	})
	return out
}

// SessionsOn counts the training sessions on a day: workout-type events
// plus workouts dated that day. The two calendars are independent and carry
// no linkage to dedupe on, so the count is additive.
func (snap Snapshot) SessionsOn(day string) int {
	n := 0
	for _, e := range snap.Events {
		if e.Date == day && e.Type == domain.EventWorkout {
			n++
		}
	}
	for _, w := range snap.Workouts {
		if w.Date == day {
			n++
		}
	}
	return n
}
