package domain

// Role type to distinguish between user roles
type Role string

// Define constants for roles
const (
	RoleTrainer Role = "trainer"
	RoleClient  Role = "client"
)

// Metrics holds the basic body measurements tracked for a client.
type Metrics struct {
	Height int `json:"height"` // cm
	Weight int `json:"weight"` // kg
	Age    int `json:"age"`
}

// NutritionTargets are the daily macro goals a trainer sets for a client.
type NutritionTargets struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"` // grams
	Carbs    int `json:"carbs"`   // grams
	Fats     int `json:"fats"`    // grams
}

// DefaultNutritionTargets is used whenever a user has no targets of their own.
var DefaultNutritionTargets = NutritionTargets{
	Calories: 2400,
	Protein:  160,
	Carbs:    250,
	Fats:     70,
}

// User represents a user in the system (either a Trainer or a Client).
// Role is fixed at account creation and never changes afterwards.
type User struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Email        string            `json:"email"` // Should be unique
	PasswordHash string            `json:"-"`     // Never expose this via JSON
	Role         Role              `json:"role"`
	Avatar       string            `json:"avatar,omitempty"`
	Goals        []string          `json:"goals,omitempty"`
	Metrics      *Metrics          `json:"metrics,omitempty"`
	Targets      *NutritionTargets `json:"nutritionTargets,omitempty"`
}

func (u *User) IsTrainer() bool {
	return u.Role == RoleTrainer
}

func (u *User) IsClient() bool {
	return u.Role == RoleClient
}

// NutritionTargetsOrDefault returns the user's own targets, falling back to
// the application-wide defaults when none have been set.
func (u *User) NutritionTargetsOrDefault() NutritionTargets {
	if u.Targets != nil {
		return *u.Targets
	}
	return DefaultNutritionTargets
}
