package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"
	"trainio/internal/domain"
	"trainio/internal/storage"
	"trainio/internal/store"

	"github.com/google/uuid"
)

// --- Error Definitions ---
var (
	ErrWorkoutNotFound  = errors.New("workout not found")
	ErrNoActiveSession  = errors.New("no user is logged in")
	ErrNoMetrics        = errors.New("user has no metrics to log weight against")
	ErrStorageDisabled  = errors.New("file storage is not configured")
	ErrUploadURLError   = errors.New("failed to generate upload URL")
	ErrDownloadURLError = errors.New("failed to generate download URL")
	ErrNoAvatar         = errors.New("user has no avatar")
)

// WorkoutOverview is the client's workout screen: today's session plus the
// upcoming and completed lists.
type WorkoutOverview struct {
	Today     *domain.Workout  `json:"today,omitempty"`
	Upcoming  []domain.Workout `json:"upcoming"`
	Completed []domain.Workout `json:"completed"`
}

// NutritionReport compares one day's logged macros against the user's
// targets (falling back to the app defaults).
type NutritionReport struct {
	Date    string                  `json:"date"`
	Totals  store.MacroTotals       `json:"totals"`
	Targets domain.NutritionTargets `json:"targets"`
}

// UploadURLResponse carries a presigned URL and the object key the client
// reports back on confirm.
type UploadURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"`
}

// ClientService covers the client-side operations: dashboard views,
// completing workouts, logging weight and meals, and profile upkeep.
type ClientService interface {
	Workouts(ctx context.Context, userID string) (*WorkoutOverview, error)
	CompleteWorkout(ctx context.Context, workoutID string) error

	LogMeal(ctx context.Context, meal domain.Meal) (*domain.Meal, error)
	DailyNutrition(ctx context.Context, userID, day string) (*NutritionReport, error)

	UpdateProfile(ctx context.Context, patch store.UserPatch) (*domain.User, error)
	LogWeight(ctx context.Context, weight int) (*domain.Metrics, error)

	RequestAvatarUploadURL(ctx context.Context, userID, contentType string) (*UploadURLResponse, error)
	ConfirmAvatar(ctx context.Context, objectKey string) (*domain.User, error)
	AvatarDownloadURL(ctx context.Context, userID string) (string, error)
}

// --- Service Implementation ---

type clientService struct {
	store       *store.Store
	fileStorage storage.FileStorage // nil when object storage is disabled
	now         func() time.Time
}

// NewClientService creates a new instance of clientService.
func NewClientService(st *store.Store, fileStorage storage.FileStorage) ClientService {
	return &clientService{store: st, fileStorage: fileStorage, now: time.Now}
}

// === Workouts ===

// Workouts computes the client's workout overview for today.
func (s *clientService) Workouts(ctx context.Context, userID string) (*WorkoutOverview, error) {
	snap := s.store.Snapshot()
	today := domain.Day(s.now())
	overview := &WorkoutOverview{
		Today:     snap.TodaysWorkout(userID, today),
		Upcoming:  snap.UpcomingWorkouts(userID, today),
		Completed: snap.CompletedWorkouts(userID),
	}
	if overview.Upcoming == nil {
		overview.Upcoming = []domain.Workout{}
	}
	if overview.Completed == nil {
		overview.Completed = []domain.Workout{}
	}
	return overview, nil
}

// CompleteWorkout marks a workout completed. The store treats an unknown id
// as a no-op; this layer surfaces that as not-found so callers get feedback.
func (s *clientService) CompleteWorkout(ctx context.Context, workoutID string) error {
	if !s.store.CompleteWorkout(workoutID) {
		return ErrWorkoutNotFound
	}
	return nil
}

// === Nutrition ===

// LogMeal appends a meal entry, stamping the time when the caller left it
// zero.
func (s *clientService) LogMeal(ctx context.Context, meal domain.Meal) (*domain.Meal, error) {
	switch meal.Type {
	case domain.MealBreakfast, domain.MealLunch, domain.MealDinner, domain.MealSnack:
	default:
		return nil, errors.New("meal type must be breakfast, lunch, dinner or snack")
	}
	if meal.UserID == "" || meal.Name == "" {
		return nil, errors.New("meal userId and name are required")
	}
	if meal.Date.IsZero() {
		meal.Date = s.now()
	}
	stored := s.store.AddMeal(meal)
	return &stored, nil
}

// DailyNutrition sums the day's macros against the user's targets.
func (s *clientService) DailyNutrition(ctx context.Context, userID, day string) (*NutritionReport, error) {
	snap := s.store.Snapshot()
	if day == "" {
		day = domain.Day(s.now())
	}
	targets := domain.DefaultNutritionTargets
	if u := snap.FindUser(userID); u != nil {
		targets = u.NutritionTargetsOrDefault()
	}
	return &NutritionReport{
		Date:    day,
		Totals:  snap.DailyMacroTotals(userID, day),
		Targets: targets,
	}, nil
}

// === Profile ===

// UpdateProfile merges a partial update into the session user.
func (s *clientService) UpdateProfile(ctx context.Context, patch store.UserPatch) (*domain.User, error) {
	if !s.store.UpdateUser(patch) {
		return nil, ErrNoActiveSession
	}
	user := s.store.CurrentUser()
	user.PasswordHash = ""
	return user, nil
}

// LogWeight replaces metrics.weight for the session user.
func (s *clientService) LogWeight(ctx context.Context, weight int) (*domain.Metrics, error) {
	if weight <= 0 {
		return nil, errors.New("weight must be positive")
	}
	if !s.store.LogWeight(weight) {
		if s.store.CurrentUser() == nil {
			return nil, ErrNoActiveSession
		}
		return nil, ErrNoMetrics
	}
	return s.store.CurrentUser().Metrics, nil
}

// === Avatar ===

// RequestAvatarUploadURL generates a presigned PUT URL for an avatar image.
func (s *clientService) RequestAvatarUploadURL(ctx context.Context, userID, contentType string) (*UploadURLResponse, error) {
	if s.fileStorage == nil {
		return nil, ErrStorageDisabled
	}
	if userID == "" {
		return nil, errors.New("user ID is required")
	}
	if contentType == "" || !strings.HasPrefix(strings.ToLower(contentType), "image/") {
		return nil, errors.New("invalid or missing image content type")
	}

	fileExtension := ""
	if parts := strings.Split(contentType, "/"); len(parts) == 2 {
		fileExtension = parts[1]
	}
	objectKey := path.Join("avatars", userID, fmt.Sprintf("%s.%s", uuid.NewString(), fileExtension))

	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, ErrUploadURLError
	}
	return &UploadURLResponse{UploadURL: uploadURL, ObjectKey: objectKey}, nil
}

// ConfirmAvatar records the uploaded object key on the session user's
// profile. Download URLs are minted on demand because presigned URLs
// expire.
func (s *clientService) ConfirmAvatar(ctx context.Context, objectKey string) (*domain.User, error) {
	if objectKey == "" {
		return nil, errors.New("object key is required")
	}
	previous := ""
	if u := s.store.CurrentUser(); u != nil {
		previous = u.Avatar
	}
	user, err := s.UpdateProfile(ctx, store.UserPatch{Avatar: &objectKey})
	if err != nil {
		return nil, err
	}
	if s.fileStorage != nil && previous != "" && previous != objectKey {
		// Best effort; an orphaned object is harmless.
		_ = s.fileStorage.DeleteObject(ctx, previous)
	}
	return user, nil
}

// AvatarDownloadURL presigns a GET for the given user's avatar object.
func (s *clientService) AvatarDownloadURL(ctx context.Context, userID string) (string, error) {
	if s.fileStorage == nil {
		return "", ErrStorageDisabled
	}
	user := s.store.Snapshot().FindUser(userID)
	if user == nil || user.Avatar == "" {
		return "", ErrNoAvatar
	}
	url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, user.Avatar, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return "", ErrDownloadURLError
	}
	return url, nil
}
