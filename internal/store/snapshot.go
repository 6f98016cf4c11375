package store

import "trainio/internal/domain"

// Snapshot is an immutable copy of the full store state. Derived views are
// computed over snapshots so they never observe a half-applied mutation.
type Snapshot struct {
	User      *domain.User // session user, nil when logged out
	IsTrainer bool
	Users     []domain.User
	Workouts  []domain.Workout
	Messages  []domain.Message
	Events    []domain.Event
	Meals     []domain.Meal
}

// Snapshot copies the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Users:    make([]domain.User, len(s.users)),
		Workouts: make([]domain.Workout, len(s.workouts)),
		Messages: append([]domain.Message(nil), s.messages...),
		Events:   append([]domain.Event(nil), s.events...),
		Meals:    append([]domain.Meal(nil), s.meals...),
	}
	for i, u := range s.users {
		snap.Users[i] = cloneUser(u)
	}
	for i, w := range s.workouts {
		snap.Workouts[i] = cloneWorkout(w)
	}
	if i := s.userIndex(s.sessionID); i >= 0 {
		u := cloneUser(s.users[i])
		snap.User = &u
		snap.IsTrainer = u.IsTrainer()
	}
	return snap
}

// Clients returns the users holding the client role, in table order.
func (snap Snapshot) Clients() []domain.User {
	var clients []domain.User
	for _, u := range snap.Users {
		if u.IsClient() {
			clients = append(clients, u)
		}
	}
	return clients
}

// FindUser looks up a user by id.
func (snap Snapshot) FindUser(id string) *domain.User {
	for i := range snap.Users {
		if snap.Users[i].ID == id {
			return &snap.Users[i]
		}
	}
	return nil
}
