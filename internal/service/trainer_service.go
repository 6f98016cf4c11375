package service

import (
	"context"
	"errors"
	"time"
	"trainio/internal/domain"
	"trainio/internal/store"

	"github.com/google/uuid"
)

// --- Error Definitions ---
var (
	ErrClientNotFound = errors.New("client user not found")
	ErrClientNotRole  = errors.New("user found but is not a client")
	ErrInvalidEvent   = errors.New("event requires a title, a date and a known type")
)

// TrainerService covers the trainer-side operations: managing the client
// roster, assigning workouts, setting nutrition targets and running the
// schedule.
type TrainerService interface {
	// Client Management
	AddClient(ctx context.Context, client domain.User) (*domain.User, error)
	GetClients(ctx context.Context) ([]domain.User, error)
	UpdateClientNutrition(ctx context.Context, clientID string, targets domain.NutritionTargets) error

	// Workout Assignment
	AssignWorkout(ctx context.Context, clientID string, workout domain.Workout) (*domain.Workout, error)

	// Schedule
	ScheduleEvent(ctx context.Context, event domain.Event) (*domain.Event, error)
	TodaysAgenda(ctx context.Context) ([]domain.Event, error)
	SessionsToday(ctx context.Context) (int, error)
}

// --- Service Implementation ---

type trainerService struct {
	store *store.Store
	now   func() time.Time
}

// NewTrainerService creates a new instance of trainerService.
func NewTrainerService(st *store.Store) TrainerService {
	return &trainerService{store: st, now: time.Now}
}

// === Client Management ===

// AddClient registers a new client on the roster. Deduplication by id is
// the caller's concern; the store appends unconditionally.
func (s *trainerService) AddClient(ctx context.Context, client domain.User) (*domain.User, error) {
	if client.Name == "" || client.Email == "" {
		return nil, errors.New("client name and email are required")
	}
	client.Role = domain.RoleClient
	if client.ID == "" {
		client.ID = uuid.NewString()
	}
	stored := s.store.AddClient(client)
	stored.PasswordHash = ""
	return &stored, nil
}

// GetClients returns the roster, in the order clients were added.
func (s *trainerService) GetClients(ctx context.Context) ([]domain.User, error) {
	clients := s.store.Snapshot().Clients()
	for i := range clients {
		clients[i].PasswordHash = ""
	}
	if clients == nil {
		clients = []domain.User{}
	}
	return clients, nil
}

// UpdateClientNutrition replaces the daily macro targets for one client.
func (s *trainerService) UpdateClientNutrition(ctx context.Context, clientID string, targets domain.NutritionTargets) error {
	if !s.store.UpdateClientNutrition(clientID, targets) {
		return ErrClientNotFound
	}
	return nil
}

// === Workout Assignment ===

// AssignWorkout stores a workout for the client. The client id passed here
// is authoritative; whatever userId came in on the workout is overwritten.
func (s *trainerService) AssignWorkout(ctx context.Context, clientID string, workout domain.Workout) (*domain.Workout, error) {
	snap := s.store.Snapshot()
	client := snap.FindUser(clientID)
	if client == nil {
		return nil, ErrClientNotFound
	}
	if !client.IsClient() {
		return nil, ErrClientNotRole
	}
	if workout.Title == "" || workout.Date == "" {
		return nil, errors.New("workout title and date are required")
	}
	if workout.Status == "" {
		workout.Status = domain.StatusPending
	}
	stored := s.store.AssignWorkout(clientID, workout)
	return &stored, nil
}

// === Schedule ===

// ScheduleEvent adds an entry to the calendar.
func (s *trainerService) ScheduleEvent(ctx context.Context, event domain.Event) (*domain.Event, error) {
	switch event.Type {
	case domain.EventWorkout, domain.EventCall, domain.EventReminder:
	default:
		return nil, ErrInvalidEvent
	}
	if event.Title == "" || event.Date == "" {
		return nil, ErrInvalidEvent
	}
	stored := s.store.AddEvent(event)
	return &stored, nil
}

// TodaysAgenda returns today's events, ascending by time.
func (s *trainerService) TodaysAgenda(ctx context.Context) ([]domain.Event, error) {
	agenda := s.store.Snapshot().Agenda(domain.Day(s.now()))
	if agenda == nil {
		agenda = []domain.Event{}
	}
	return agenda, nil
}

// SessionsToday counts today's training sessions across both calendars.
func (s *trainerService) SessionsToday(ctx context.Context) (int, error) {
	return s.store.Snapshot().SessionsOn(domain.Day(s.now())), nil
}
