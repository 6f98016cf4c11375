package store

import (
	"sync"
	"trainio/internal/domain"

	"github.com/google/uuid"
)

// Store is the single source of truth for the session user and every entity
// collection. All state transitions go through its mutation methods.
//
// Users live in one canonical ordered table keyed by id; the session user
// and the clients subset are views over that table, so an update written
// through any mutation is visible everywhere at once.
//
// Handlers run concurrently, so the store guards its state with a mutex
// and only ever hands out copies. Mutations never fail: a mutation
// addressed at a missing target or issued without its precondition is a
// silent no-op, reported through the boolean result where callers need
// feedback.
type Store struct {
	mu        sync.Mutex
	users     []domain.User
	workouts  []domain.Workout
	messages  []domain.Message
	events    []domain.Event
	meals     []domain.Meal
	sessionID string // id of the logged-in user, "" when logged out

	subMu  sync.Mutex
	subs   map[int]Subscriber
	nextID int
}

// Subscriber is notified with a fresh snapshot after every applied mutation.
type Subscriber func(Snapshot)

// New creates an empty store.
func New() *Store {
	return &Store{subs: make(map[int]Subscriber)}
}

// Subscribe registers fn to run after each applied mutation and returns a
// function that removes the subscription.
func (s *Store) Subscribe(fn Subscriber) (unsubscribe func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

// notify runs subscribers outside the state lock, in registration order.
func (s *Store) notify() {
	snap := s.Snapshot()
	s.subMu.Lock()
	fns := make([]Subscriber, 0, len(s.subs))
	for i := 0; i < s.nextID; i++ {
		if fn, ok := s.subs[i]; ok {
			fns = append(fns, fn)
		}
	}
	s.subMu.Unlock()
	for _, fn := range fns {
		fn(snap)
	}
}

// === Session ===

// SetUser sets (or clears, with nil) the current session user. The user is
// upserted into the canonical table so that session, users and clients views
// all resolve to the same record. No credential checks happen here.
func (s *Store) SetUser(user *domain.User) {
	s.mu.Lock()
	if user == nil {
		s.sessionID = ""
	} else {
		u := cloneUser(*user)
		if i := s.userIndex(u.ID); i >= 0 {
			s.users[i] = u
		} else {
			s.users = append(s.users, u)
		}
		s.sessionID = u.ID
	}
	s.mu.Unlock()
	s.notify()
}

// CurrentUser returns a copy of the session user, or nil when logged out.
func (s *Store) CurrentUser() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.userIndex(s.sessionID); i >= 0 {
		u := cloneUser(s.users[i])
		return &u
	}
	return nil
}

// IsTrainer reports whether the session user holds the trainer role. False
// whenever nobody is logged in.
func (s *Store) IsTrainer() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.userIndex(s.sessionID); i >= 0 {
		return s.users[i].IsTrainer()
	}
	return false
}

// UserPatch is a partial user update. Nil fields are left untouched.
type UserPatch struct {
	Name    *string
	Email   *string
	Avatar  *string
	Goals   []string
	Metrics *domain.Metrics
	Targets *domain.NutritionTargets
}

// UpdateUser merges the patch into the session user. No-op (returns false)
// when nobody is logged in. Because users are a single table, the matching
// entries in the users and clients views carry the same merge by
// construction.
func (s *Store) UpdateUser(patch UserPatch) bool {
	s.mu.Lock()
	i := s.userIndex(s.sessionID)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	u := &s.users[i]
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Avatar != nil {
		u.Avatar = *patch.Avatar
	}
	if patch.Goals != nil {
		u.Goals = append([]string(nil), patch.Goals...)
	}
	if patch.Metrics != nil {
		m := *patch.Metrics
		u.Metrics = &m
	}
	if patch.Targets != nil {
		t := *patch.Targets
		u.Targets = &t
	}
	s.mu.Unlock()
	s.notify()
	return true
}

// === Users / clients ===

// AddClient appends a user to the table. Deduplication by id is the
// caller's responsibility. Returns the stored copy (with a generated id if
// the caller supplied none).
func (s *Store) AddClient(user domain.User) domain.User {
	s.mu.Lock()
	u := cloneUser(user)
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	s.users = append(s.users, u)
	stored := cloneUser(u)
	s.mu.Unlock()
	s.notify()
	return stored
}

// UpdateClientNutrition replaces the nutrition targets of the user with the
// given id. The session user sees the change too when it is the same
// record. No-op (returns false) when the id is unknown.
func (s *Store) UpdateClientNutrition(clientID string, targets domain.NutritionTargets) bool {
	s.mu.Lock()
	i := s.userIndex(clientID)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	t := targets
	s.users[i].Targets = &t
	s.mu.Unlock()
	s.notify()
	return true
}

// LogWeight replaces metrics.weight for the session user, leaving height
// and age untouched. No-op (returns false) when nobody is logged in or the
// user has no metrics.
func (s *Store) LogWeight(weight int) bool {
	s.mu.Lock()
	i := s.userIndex(s.sessionID)
	if i < 0 || s.users[i].Metrics == nil {
		s.mu.Unlock()
		return false
	}
	m := *s.users[i].Metrics
	m.Weight = weight
	s.users[i].Metrics = &m
	s.mu.Unlock()
	s.notify()
	return true
}

// === Workouts ===

// SetWorkouts bulk-replaces the workout collection (used to seed history).
func (s *Store) SetWorkouts(workouts []domain.Workout) {
	s.mu.Lock()
	s.workouts = make([]domain.Workout, len(workouts))
	for i, w := range workouts {
		s.workouts[i] = cloneWorkout(w)
	}
	s.mu.Unlock()
	s.notify()
}

// AssignWorkout appends a workout for the given client. The clientID is
// authoritative: any userId preset on the passed workout is overwritten.
func (s *Store) AssignWorkout(clientID string, workout domain.Workout) domain.Workout {
	s.mu.Lock()
	w := cloneWorkout(workout)
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	w.UserID = clientID
	s.workouts = append(s.workouts, w)
	stored := cloneWorkout(w)
	s.mu.Unlock()
	s.notify()
	return stored
}

// CompleteWorkout sets the status of the matching workout to completed.
// Idempotent; no-op (returns false) when the id is unknown.
func (s *Store) CompleteWorkout(workoutID string) bool {
	s.mu.Lock()
	for i := range s.workouts {
		if s.workouts[i].ID == workoutID {
			s.workouts[i].Status = domain.StatusCompleted
			s.mu.Unlock()
			s.notify()
			return true
		}
	}
	s.mu.Unlock()
	return false
}

// === Append-only collections ===

// AddMessage appends a chat message. Foreign keys are not validated; a
// message addressed to an unknown user id is accepted.
func (s *Store) AddMessage(msg domain.Message) domain.Message {
	s.mu.Lock()
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	s.messages = append(s.messages, msg)
	s.mu.Unlock()
	s.notify()
	return msg
}

// AddEvent appends a schedule event.
func (s *Store) AddEvent(event domain.Event) domain.Event {
	s.mu.Lock()
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	s.events = append(s.events, event)
	s.mu.Unlock()
	s.notify()
	return event
}

// AddMeal appends a logged meal.
func (s *Store) AddMeal(meal domain.Meal) domain.Meal {
	s.mu.Lock()
	if meal.ID == "" {
		meal.ID = uuid.NewString()
	}
	s.meals = append(s.meals, meal)
	s.mu.Unlock()
	s.notify()
	return meal
}

// userIndex returns the table index for id, or -1. Callers hold s.mu.
func (s *Store) userIndex(id string) int {
	if id == "" {
		return -1
	}
	for i := range s.users {
		if s.users[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneUser(u domain.User) domain.User {
	if u.Goals != nil {
		u.Goals = append([]string(nil), u.Goals...)
	}
	if u.Metrics != nil {
		m := *u.Metrics
		u.Metrics = &m
	}
	if u.Targets != nil {
		t := *u.Targets
		u.Targets = &t
	}
	return u
}

func cloneWorkout(w domain.Workout) domain.Workout {
	if w.Exercises != nil {
		w.Exercises = append([]domain.Exercise(nil), w.Exercises...)
	}
	return w
}
