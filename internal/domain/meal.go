package domain

import "time"

// MealType type for the four meal slots of a day
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// Meal is a single logged food entry. Meals are aggregated per user per
// calendar day and compared against that user's nutrition targets.
type Meal struct {
	ID       string    `json:"id"`
	UserID   string    `json:"userId"`
	Name     string    `json:"name"`
	Type     MealType  `json:"type"`
	Calories int       `json:"calories"`
	Protein  int       `json:"protein"`
	Carbs    int       `json:"carbs"`
	Fats     int       `json:"fats"`
	Date     time.Time `json:"date"`
}
