package api

import (
	"errors"
	"fmt"
	"net/http"
	"trainio/internal/domain"
	"trainio/internal/service"

	"github.com/gin-gonic/gin"
)

// TrainerHandler holds the trainer service dependency.
type TrainerHandler struct {
	trainerService service.TrainerService
}

// NewTrainerHandler creates a new TrainerHandler.
func NewTrainerHandler(trainerService service.TrainerService) *TrainerHandler {
	return &TrainerHandler{trainerService: trainerService}
}

// --- DTOs ---

type AddClientRequest struct {
	Name    string          `json:"name" binding:"required"`
	Email   string          `json:"email" binding:"required,email"`
	Goals   []string        `json:"goals"`
	Metrics *domain.Metrics `json:"metrics"`
}

type AssignWorkoutRequest struct {
	Title     string            `json:"title" binding:"required"`
	Date      string            `json:"date" binding:"required,datetime=2006-01-02"`
	Exercises []ExerciseRequest `json:"exercises" binding:"dive"`
}

// ExerciseRequest mirrors one entry of a workout's exercise list. Sets must
// be a positive integer; reps stays free form.
type ExerciseRequest struct {
	Name   string `json:"name" binding:"required"`
	Sets   int    `json:"sets" binding:"required,gt=0"`
	Reps   string `json:"reps" binding:"required"`
	Weight string `json:"weight"`
	Rest   string `json:"rest"`
}

type UpdateNutritionRequest struct {
	Calories int `json:"calories" binding:"required,gt=0"`
	Protein  int `json:"protein" binding:"required,gt=0"`
	Carbs    int `json:"carbs" binding:"required,gt=0"`
	Fats     int `json:"fats" binding:"required,gt=0"`
}

type ScheduleEventRequest struct {
	Title string           `json:"title" binding:"required"`
	Date  string           `json:"date" binding:"required,datetime=2006-01-02"`
	Type  domain.EventType `json:"type" binding:"required,oneof=workout call reminder"`
	Time  string           `json:"time" binding:"required,datetime=15:04"`
}

// --- Handler Methods ---

// AddClient adds a new client to the roster.
func (h *TrainerHandler) AddClient(c *gin.Context) {
	var req AddClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	client, err := h.trainerService.AddClient(c.Request.Context(), domain.User{
		Name:    req.Name,
		Email:   req.Email,
		Goals:   req.Goals,
		Metrics: req.Metrics,
	})
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusCreated, MapUserToResponse(client))
}

// GetClients lists the roster.
func (h *TrainerHandler) GetClients(c *gin.Context) {
	clients, err := h.trainerService.GetClients(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not load clients")
		return
	}
	c.JSON(http.StatusOK, MapUsersToResponse(clients))
}

// AssignWorkout stores a workout for a client. The clientId in the path is
// authoritative for ownership.
func (h *TrainerHandler) AssignWorkout(c *gin.Context) {
	clientID := c.Param("clientId")

	var req AssignWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	exercises := make([]domain.Exercise, len(req.Exercises))
	for i, ex := range req.Exercises {
		exercises[i] = domain.Exercise{
			Name:   ex.Name,
			Sets:   ex.Sets,
			Reps:   ex.Reps,
			Weight: ex.Weight,
			Rest:   ex.Rest,
		}
	}

	workout, err := h.trainerService.AssignWorkout(c.Request.Context(), clientID, domain.Workout{
		Title:     req.Title,
		Date:      req.Date,
		Exercises: exercises,
	})
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else if errors.Is(err, service.ErrClientNotRole) {
			abortWithError(c, http.StatusConflict, err.Error())
		} else {
			abortWithError(c, http.StatusBadRequest, err.Error())
		}
		return
	}
	c.JSON(http.StatusCreated, workout)
}

// UpdateClientNutrition replaces a client's daily macro targets.
func (h *TrainerHandler) UpdateClientNutrition(c *gin.Context) {
	clientID := c.Param("clientId")

	var req UpdateNutritionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	err := h.trainerService.UpdateClientNutrition(c.Request.Context(), clientID, domain.NutritionTargets{
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fats:     req.Fats,
	})
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Could not update nutrition targets")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// ScheduleEvent adds an entry to the calendar.
func (h *TrainerHandler) ScheduleEvent(c *gin.Context) {
	var req ScheduleEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	event, err := h.trainerService.ScheduleEvent(c.Request.Context(), domain.Event{
		Title: req.Title,
		Date:  req.Date,
		Type:  req.Type,
		Time:  req.Time,
	})
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusCreated, event)
}

// GetAgenda returns today's events with the session count.
func (h *TrainerHandler) GetAgenda(c *gin.Context) {
	agenda, err := h.trainerService.TodaysAgenda(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not load agenda")
		return
	}
	sessions, err := h.trainerService.SessionsToday(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not count sessions")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"events":        agenda,
		"sessionsToday": sessions,
	})
}
