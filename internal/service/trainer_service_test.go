package service

import (
	"context"
	"errors"
	"testing"
	"time"
	"trainio/internal/domain"
	"trainio/internal/store"
)

func newTrainerFixture(now time.Time) (*store.Store, *trainerService) {
	st := store.New()
	svc := NewTrainerService(st).(*trainerService)
	svc.now = func() time.Time { return now }
	return st, svc
}

func TestAddClientForcesRole(t *testing.T) {
	_, svc := newTrainerFixture(time.Now())
	ctx := context.Background()

	client, err := svc.AddClient(ctx, domain.User{
		Name:  "Sam Runner",
		Email: "sam@example.com",
		Role:  domain.RoleTrainer, // must be overridden
	})
	if err != nil {
		t.Fatalf("add client: %v", err)
	}
	if client.Role != domain.RoleClient {
		t.Fatalf("role = %q, want client", client.Role)
	}
	if client.ID == "" {
		t.Fatalf("expected generated id")
	}

	roster, err := svc.GetClients(ctx)
	if err != nil {
		t.Fatalf("get clients: %v", err)
	}
	if len(roster) != 1 || roster[0].ID != client.ID {
		t.Fatalf("roster = %+v", roster)
	}
}

func TestAssignWorkoutValidation(t *testing.T) {
	_, svc := newTrainerFixture(time.Now())
	ctx := context.Background()

	client, _ := svc.AddClient(ctx, domain.User{ID: "u9", Name: "New Client", Email: "new@example.com"})

	if _, err := svc.AssignWorkout(ctx, "missing", domain.Workout{Title: "Leg Day", Date: "2026-09-01"}); !errors.Is(err, ErrClientNotFound) {
		t.Fatalf("err = %v, want ErrClientNotFound", err)
	}

	stored, err := svc.AssignWorkout(ctx, client.ID, domain.Workout{
		UserID: "someone-else",
		Title:  "Leg Day",
		Date:   "2026-09-01",
	})
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if stored.UserID != client.ID {
		t.Fatalf("userId = %q, want %q", stored.UserID, client.ID)
	}
	if stored.Status != domain.StatusPending {
		t.Fatalf("default status = %q, want pending", stored.Status)
	}
}

func TestAssignWorkoutRejectsTrainerTarget(t *testing.T) {
	st, svc := newTrainerFixture(time.Now())
	ctx := context.Background()
	st.AddClient(domain.User{ID: "t1", Name: "Coach Sarah", Role: domain.RoleTrainer})

	if _, err := svc.AssignWorkout(ctx, "t1", domain.Workout{Title: "Leg Day", Date: "2026-09-01"}); !errors.Is(err, ErrClientNotRole) {
		t.Fatalf("err = %v, want ErrClientNotRole", err)
	}
}

func TestUpdateClientNutritionNotFound(t *testing.T) {
	_, svc := newTrainerFixture(time.Now())
	err := svc.UpdateClientNutrition(context.Background(), "missing", domain.NutritionTargets{Calories: 2000, Protein: 150, Carbs: 200, Fats: 60})
	if !errors.Is(err, ErrClientNotFound) {
		t.Fatalf("err = %v, want ErrClientNotFound", err)
	}
}

func TestScheduleEventValidation(t *testing.T) {
	_, svc := newTrainerFixture(time.Now())
	ctx := context.Background()

	if _, err := svc.ScheduleEvent(ctx, domain.Event{Title: "Mystery", Date: "2026-09-01", Type: "party"}); !errors.Is(err, ErrInvalidEvent) {
		t.Fatalf("err = %v, want ErrInvalidEvent", err)
	}
	stored, err := svc.ScheduleEvent(ctx, domain.Event{Title: "Check-in Call", Date: "2026-09-01", Type: domain.EventCall, Time: "14:00"})
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if stored.ID == "" {
		t.Fatalf("expected generated event id")
	}
}

func TestTodaysAgendaAndSessions(t *testing.T) {
	now := time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC)
	st, svc := newTrainerFixture(now)
	ctx := context.Background()

	st.AddEvent(domain.Event{Title: "PT Session", Date: "2026-08-28", Type: domain.EventWorkout, Time: "10:00"})
	st.AddEvent(domain.Event{Title: "Check-in Call", Date: "2026-08-28", Type: domain.EventCall, Time: "08:00"})
	st.AddEvent(domain.Event{Title: "Tomorrow", Date: "2026-08-29", Type: domain.EventCall, Time: "09:00"})
	st.AssignWorkout("u1", domain.Workout{Title: "Upper Body", Date: "2026-08-28", Status: domain.StatusPending})

	agenda, err := svc.TodaysAgenda(ctx)
	if err != nil {
		t.Fatalf("agenda: %v", err)
	}
	if len(agenda) != 2 || agenda[0].Time != "08:00" || agenda[1].Time != "10:00" {
		t.Fatalf("agenda = %+v", agenda)
	}

	sessions, err := svc.SessionsToday(ctx)
	if err != nil {
		t.Fatalf("sessions: %v", err)
	}
	if sessions != 2 { // one workout event + one dated workout
		t.Fatalf("sessions = %d, want 2", sessions)
	}
}
