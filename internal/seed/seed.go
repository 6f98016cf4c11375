// Package seed loads the demo dataset through the store's own mutation
// API. State is process-memory only, so a fresh server is empty without it.
package seed

import (
	"log"
	"time"
	"trainio/internal/domain"
	"trainio/internal/store"

	"golang.org/x/crypto/bcrypt"
)

// DemoPassword is the login password for every seeded account.
const DemoPassword = "password123"

// Demo populates the store with the sample coaching setup: one client, one
// trainer, a short workout history, a conversation and a day's meals.
func Demo(st *store.Store, now time.Time) {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("WARN: demo seed skipped, could not hash password: %v", err)
		return
	}

	today := domain.Day(now)
	yesterday := domain.Day(now.AddDate(0, 0, -1))
	tomorrow := domain.Day(now.AddDate(0, 0, 1))

	st.AddClient(domain.User{
		ID:           "u1",
		Name:         "Alex Client",
		Email:        "alex@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleClient,
		Goals:        []string{"Build Muscle", "Improve Stamina"},
		Metrics:      &domain.Metrics{Height: 180, Weight: 75, Age: 28},
	})
	st.AddClient(domain.User{
		ID:           "t1",
		Name:         "Coach Sarah",
		Email:        "sarah@trainio.com",
		PasswordHash: string(hash),
		Role:         domain.RoleTrainer,
	})

	st.SetWorkouts([]domain.Workout{
		{
			ID: "w1", UserID: "u1", Title: "Upper Body Power", Date: today, Status: domain.StatusPending,
			Exercises: []domain.Exercise{
				{Name: "Bench Press", Sets: 4, Reps: "8-10", Weight: "60kg", Rest: "90s"},
				{Name: "Pull Ups", Sets: 3, Reps: "Max", Rest: "60s"},
				{Name: "Shoulder Press", Sets: 3, Reps: "12", Weight: "20kg", Rest: "60s"},
			},
		},
		{
			ID: "w2", UserID: "u1", Title: "Leg Day", Date: tomorrow, Status: domain.StatusPending,
			Exercises: []domain.Exercise{
				{Name: "Squats", Sets: 5, Reps: "5", Weight: "100kg", Rest: "120s"},
				{Name: "Lunges", Sets: 3, Reps: "12/leg", Weight: "20kg", Rest: "60s"},
			},
		},
		{
			ID: "w3", UserID: "u1", Title: "Cardio & Core", Date: yesterday, Status: domain.StatusCompleted,
			Exercises: []domain.Exercise{
				{Name: "Treadmill Run", Sets: 1, Reps: "20 mins", Rest: "0"},
				{Name: "Plank", Sets: 3, Reps: "60s", Rest: "30s"},
			},
		},
	})

	st.AddMessage(domain.Message{ID: "m1", SenderID: "t1", ReceiverID: "u1", Text: "Hey Alex! How was the workout yesterday?", Timestamp: now.Add(-10000 * time.Second)})
	st.AddMessage(domain.Message{ID: "m2", SenderID: "u1", ReceiverID: "t1", Text: "It was intense! Loved the core finisher.", Timestamp: now.Add(-9000 * time.Second)})
	st.AddMessage(domain.Message{ID: "m3", SenderID: "t1", ReceiverID: "u1", Text: "Great to hear. I've updated your plan for next week.", Timestamp: now.Add(-8000 * time.Second)})

	st.AddEvent(domain.Event{ID: "c1", Title: "Check-in Call", Date: today, Type: domain.EventCall, Time: "14:00"})
	st.AddEvent(domain.Event{ID: "c2", Title: "Weekly Review", Date: domain.Day(now.AddDate(0, 0, 2)), Type: domain.EventCall, Time: "16:00"})
	st.AddEvent(domain.Event{ID: "e1", Title: "Upper Body Power", Date: today, Type: domain.EventWorkout, Time: "10:00"})

	st.AddMeal(domain.Meal{UserID: "u1", Name: "Oatmeal with Berries", Type: domain.MealBreakfast, Calories: 350, Protein: 12, Carbs: 60, Fats: 6, Date: now})
	st.AddMeal(domain.Meal{UserID: "u1", Name: "Grilled Chicken Salad", Type: domain.MealLunch, Calories: 450, Protein: 40, Carbs: 15, Fats: 20, Date: now})
	st.AddMeal(domain.Meal{UserID: "u1", Name: "Salmon with Asparagus", Type: domain.MealDinner, Calories: 500, Protein: 35, Carbs: 10, Fats: 30, Date: now})
	st.AddMeal(domain.Meal{UserID: "u1", Name: "Greek Yogurt", Type: domain.MealSnack, Calories: 120, Protein: 15, Carbs: 8, Fats: 0, Date: now})

	log.Printf("Demo data seeded: 2 users, 3 workouts, 3 messages, 3 events, 4 meals")
}
