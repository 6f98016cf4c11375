package service

import (
	"context"
	"errors"
	"time"
	"trainio/internal/domain"
	"trainio/internal/store"
)

var (
	ErrUnknownRole  = errors.New("user has an unknown role")
	ErrUserNotFound = errors.New("user not found")
)

// Dashboard is the role-scoped home view. Exactly one of Client or Trainer
// is set, matching Role. The role branch lives here and only here; screens
// and handlers render whichever side is populated instead of re-deriving
// the split themselves.
type Dashboard struct {
	Role    domain.Role       `json:"role"`
	Client  *ClientDashboard  `json:"client,omitempty"`
	Trainer *TrainerDashboard `json:"trainer,omitempty"`
}

// ClientDashboard is what a client sees: today's session, what is coming
// up, what is done, and how the day's eating tracks against targets.
type ClientDashboard struct {
	Today     *domain.Workout  `json:"today,omitempty"`
	Upcoming  []domain.Workout `json:"upcoming"`
	Completed []domain.Workout `json:"completed"`
	Nutrition NutritionReport  `json:"nutrition"`
}

// TrainerDashboard is what a trainer sees: the roster, today's agenda and
// the session count.
type TrainerDashboard struct {
	Clients       []domain.User  `json:"clients"`
	Agenda        []domain.Event `json:"agenda"`
	SessionsToday int            `json:"sessionsToday"`
}

// DashboardService derives the role-scoped home view for a user.
type DashboardService interface {
	ForUser(ctx context.Context, userID string) (*Dashboard, error)
}

type dashboardService struct {
	store *store.Store
	now   func() time.Time
}

// NewDashboardService creates a new instance of dashboardService.
func NewDashboardService(st *store.Store) DashboardService {
	return &dashboardService{store: st, now: time.Now}
}

// ForUser dispatches on the user's role.
func (s *dashboardService) ForUser(ctx context.Context, userID string) (*Dashboard, error) {
	snap := s.store.Snapshot()
	today := domain.Day(s.now())

	user := snap.FindUser(userID)
	if user == nil {
		return nil, ErrUserNotFound
	}

	switch user.Role {
	case domain.RoleClient:
		return &Dashboard{
			Role:   domain.RoleClient,
			Client: s.clientDashboard(snap, user, today),
		}, nil
	case domain.RoleTrainer:
		return &Dashboard{
			Role:    domain.RoleTrainer,
			Trainer: s.trainerDashboard(snap, today),
		}, nil
	default:
		return nil, ErrUnknownRole
	}
}

func (s *dashboardService) clientDashboard(snap store.Snapshot, user *domain.User, today string) *ClientDashboard {
	d := &ClientDashboard{
		Today:     snap.TodaysWorkout(user.ID, today),
		Upcoming:  snap.UpcomingWorkouts(user.ID, today),
		Completed: snap.CompletedWorkouts(user.ID),
		Nutrition: NutritionReport{
			Date:    today,
			Totals:  snap.DailyMacroTotals(user.ID, today),
			Targets: user.NutritionTargetsOrDefault(),
		},
	}
	if d.Upcoming == nil {
		d.Upcoming = []domain.Workout{}
	}
	if d.Completed == nil {
		d.Completed = []domain.Workout{}
	}
	return d
}

func (s *dashboardService) trainerDashboard(snap store.Snapshot, today string) *TrainerDashboard {
	d := &TrainerDashboard{
		Clients:       snap.Clients(),
		Agenda:        snap.Agenda(today),
		SessionsToday: snap.SessionsOn(today),
	}
	for i := range d.Clients {
		d.Clients[i].PasswordHash = ""
	}
	if d.Clients == nil {
		d.Clients = []domain.User{}
	}
	if d.Agenda == nil {
		d.Agenda = []domain.Event{}
	}
	return d
}
