package store

import (
	"testing"
	"time"
	"trainio/internal/domain"
)

const today = "2026-08-28"

func seedWorkouts(s *Store) {
	s.SetWorkouts([]domain.Workout{
		{ID: "w1", UserID: "u1", Title: "Upper Body Power", Date: today, Status: domain.StatusPending},
		{ID: "w2", UserID: "u1", Title: "Leg Day", Date: "2026-08-29", Status: domain.StatusPending},
		{ID: "w3", UserID: "u1", Title: "Cardio & Core", Date: "2026-08-27", Status: domain.StatusCompleted},
		{ID: "w4", UserID: "u2", Title: "Mobility", Date: today, Status: domain.StatusPending},
	})
}

func TestTodaysWorkoutFirstMatchWins(t *testing.T) {
	s := New()
	seedWorkouts(s)
	// a second workout on the same day for the same user
	s.AssignWorkout("u1", domain.Workout{ID: "w5", Title: "Evening Run", Date: today, Status: domain.StatusPending})

	tw := s.Snapshot().TodaysWorkout("u1", today)
	if tw == nil || tw.ID != "w1" {
		t.Fatalf("expected first-in-order w1, got %+v", tw)
	}
}

func TestTodaysWorkoutNoneForDay(t *testing.T) {
	s := New()
	seedWorkouts(s)
	if tw := s.Snapshot().TodaysWorkout("u1", "2026-09-15"); tw != nil {
		t.Fatalf("expected nil, got %+v", tw)
	}
}

func TestUpcomingExcludesTodayAndNonPending(t *testing.T) {
	s := New()
	seedWorkouts(s)

	up := s.Snapshot().UpcomingWorkouts("u1", today)
	if len(up) != 1 || up[0].ID != "w2" {
		t.Fatalf("upcoming = %+v, want just w2", up)
	}

	done := s.Snapshot().CompletedWorkouts("u1")
	if len(done) != 1 || done[0].ID != "w3" {
		t.Fatalf("completed = %+v, want just w3", done)
	}
}

func TestConversationSymmetricAndOrdered(t *testing.T) {
	s := New()
	base := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	// inserted out of chronological order on purpose
	s.AddMessage(domain.Message{ID: "m2", SenderID: "u1", ReceiverID: "t1", Text: "It was intense!", Timestamp: base.Add(10 * time.Minute)})
	s.AddMessage(domain.Message{ID: "m1", SenderID: "t1", ReceiverID: "u1", Text: "How was the workout?", Timestamp: base})
	s.AddMessage(domain.Message{ID: "m3", SenderID: "t1", ReceiverID: "u1", Text: "Updated your plan.", Timestamp: base.Add(20 * time.Minute)})
	// noise from an unrelated pair
	s.AddMessage(domain.Message{ID: "mx", SenderID: "u2", ReceiverID: "t1", Text: "hi", Timestamp: base})

	snap := s.Snapshot()
	ab := snap.Conversation("u1", "t1")
	ba := snap.Conversation("t1", "u1")
	if len(ab) != 3 || len(ba) != 3 {
		t.Fatalf("conversation lengths = %d, %d", len(ab), len(ba))
	}
	for i, want := range []string{"m1", "m2", "m3"} {
		if ab[i].ID != want {
			t.Fatalf("ab[%d] = %s, want %s", i, ab[i].ID, want)
		}
		if ba[i].ID != ab[i].ID {
			t.Fatalf("conversation not symmetric at %d: %s vs %s", i, ba[i].ID, ab[i].ID)
		}
	}
}

func TestContactsFilter(t *testing.T) {
	s := New()
	s.AddClient(domain.User{ID: "u1", Name: "Alex Client", Role: domain.RoleClient})
	s.AddClient(domain.User{ID: "t1", Name: "Coach Sarah", Role: domain.RoleTrainer})
	s.AddClient(domain.User{ID: "u2", Name: "Sam Runner", Role: domain.RoleClient})

	snap := s.Snapshot()
	all := snap.Contacts("u1", "")
	if len(all) != 2 {
		t.Fatalf("contacts = %+v, want 2 entries", all)
	}
	for _, u := range all {
		if u.ID == "u1" {
			t.Fatalf("contacts must exclude the user themselves")
		}
	}

	filtered := snap.Contacts("u1", "saRA")
	if len(filtered) != 1 || filtered[0].ID != "t1" {
		t.Fatalf("case-insensitive filter failed: %+v", filtered)
	}
}

func TestDailyMacroTotals(t *testing.T) {
	s := New()
	day := time.Date(2026, 8, 28, 8, 0, 0, 0, time.UTC)
	s.AddMeal(domain.Meal{UserID: "u1", Name: "Oatmeal", Type: domain.MealBreakfast, Calories: 300, Protein: 12, Carbs: 60, Fats: 6, Date: day})
	s.AddMeal(domain.Meal{UserID: "u1", Name: "Salad", Type: domain.MealLunch, Calories: 200, Protein: 20, Carbs: 10, Fats: 8, Date: day.Add(5 * time.Hour)})
	// different day and different user: both excluded
	s.AddMeal(domain.Meal{UserID: "u1", Name: "Salmon", Type: domain.MealDinner, Calories: 500, Date: day.AddDate(0, 0, 1)})
	s.AddMeal(domain.Meal{UserID: "u2", Name: "Yogurt", Type: domain.MealSnack, Calories: 120, Date: day})

	got := s.Snapshot().DailyMacroTotals("u1", today)
	want := MacroTotals{Calories: 500, Protein: 32, Carbs: 70, Fats: 14}
	if got != want {
		t.Fatalf("totals = %+v, want %+v", got, want)
	}

	if empty := s.Snapshot().DailyMacroTotals("u1", "2026-01-01"); empty != (MacroTotals{}) {
		t.Fatalf("expected zero totals, got %+v", empty)
	}
}

func TestAgendaSortedByTime(t *testing.T) {
	s := New()
	s.AddEvent(domain.Event{ID: "e2", Title: "Check-in Call", Date: today, Type: domain.EventCall, Time: "14:00"})
	s.AddEvent(domain.Event{ID: "e1", Title: "Morning Session", Date: today, Type: domain.EventWorkout, Time: "10:00"})
	s.AddEvent(domain.Event{ID: "e3", Title: "Weekly Review", Date: "2026-08-30", Type: domain.EventCall, Time: "16:00"})

	agenda := s.Snapshot().Agenda(today)
	if len(agenda) != 2 {
		t.Fatalf("agenda = %+v, want 2 entries", agenda)
	}
	if agenda[0].ID != "e1" || agenda[1].ID != "e2" {
		t.Fatalf("agenda out of order: %s then %s", agenda[0].ID, agenda[1].ID)
	}
}

func TestSessionsOnAdditive(t *testing.T) {
	s := New()
	seedWorkouts(s) // w1 and w4 dated today
	s.AddEvent(domain.Event{Title: "PT Session", Date: today, Type: domain.EventWorkout, Time: "10:00"})
	s.AddEvent(domain.Event{Title: "Check-in Call", Date: today, Type: domain.EventCall, Time: "14:00"})

	// workout events and dated workouts are counted additively
	if got := s.Snapshot().SessionsOn(today); got != 3 {
		t.Fatalf("sessions = %d, want 3", got)
	}
	if got := s.Snapshot().SessionsOn("2026-08-29"); got != 1 {
		t.Fatalf("sessions = %d, want 1 (w2 only)", got)
	}
}
