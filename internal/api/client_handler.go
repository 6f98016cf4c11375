package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"
	"trainio/internal/domain"
	"trainio/internal/service"
	"trainio/internal/store"

	"github.com/gin-gonic/gin"
)

// ClientHandler holds the client-facing service dependencies.
type ClientHandler struct {
	clientService    service.ClientService
	dashboardService service.DashboardService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(clientService service.ClientService, dashboardService service.DashboardService) *ClientHandler {
	return &ClientHandler{
		clientService:    clientService,
		dashboardService: dashboardService,
	}
}

// --- DTOs ---

// UpdateProfileRequest is a partial update; absent fields stay untouched.
type UpdateProfileRequest struct {
	Name    *string                  `json:"name" binding:"omitempty,min=1"`
	Email   *string                  `json:"email" binding:"omitempty,email"`
	Goals   []string                 `json:"goals"`
	Metrics *domain.Metrics          `json:"metrics"`
	Targets *domain.NutritionTargets `json:"nutritionTargets"`
}

type LogWeightRequest struct {
	Weight int `json:"weight" binding:"required,gt=0"`
}

type LogMealRequest struct {
	Name     string          `json:"name" binding:"required"`
	Type     domain.MealType `json:"type" binding:"required,oneof=breakfast lunch dinner snack"`
	Calories int             `json:"calories" binding:"gte=0"`
	Protein  int             `json:"protein" binding:"gte=0"`
	Carbs    int             `json:"carbs" binding:"gte=0"`
	Fats     int             `json:"fats" binding:"gte=0"`
	Date     *time.Time      `json:"date"`
}

type AvatarUploadRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

type ConfirmAvatarRequest struct {
	ObjectKey string `json:"objectKey" binding:"required"`
}

// --- Handler Methods ---

// GetDashboard returns the role-scoped home view for the requesting user.
func (h *ClientHandler) GetDashboard(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	dashboard, err := h.dashboardService.ForUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Could not build dashboard")
		}
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// GetWorkouts returns today's/upcoming/completed workouts for the user.
func (h *ClientHandler) GetWorkouts(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	overview, err := h.clientService.Workouts(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not load workouts")
		return
	}
	c.JSON(http.StatusOK, overview)
}

// CompleteWorkout marks a workout completed.
func (h *ClientHandler) CompleteWorkout(c *gin.Context) {
	workoutID := c.Param("id")
	if err := h.clientService.CompleteWorkout(c.Request.Context(), workoutID); err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Could not complete workout")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// LogMeal appends a meal for the requesting user.
func (h *ClientHandler) LogMeal(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	var req LogMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	meal := domain.Meal{
		UserID:   userID,
		Name:     req.Name,
		Type:     req.Type,
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fats:     req.Fats,
	}
	if req.Date != nil {
		meal.Date = *req.Date
	}

	stored, err := h.clientService.LogMeal(c.Request.Context(), meal)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusCreated, stored)
}

// GetNutrition reports the day's macro totals against targets.
// ?date=YYYY-MM-DD, defaulting to today.
func (h *ClientHandler) GetNutrition(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	day := c.Query("date")
	if day != "" {
		if _, err := time.Parse(domain.DateLayout, day); err != nil {
			abortWithError(c, http.StatusBadRequest, "date must be formatted YYYY-MM-DD")
			return
		}
	}

	report, err := h.clientService.DailyNutrition(c.Request.Context(), userID, day)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not compute nutrition report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// UpdateProfile merges a partial update into the session user.
func (h *ClientHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	user, err := h.clientService.UpdateProfile(c.Request.Context(), store.UserPatch{
		Name:    req.Name,
		Email:   req.Email,
		Goals:   req.Goals,
		Metrics: req.Metrics,
		Targets: req.Targets,
	})
	if err != nil {
		if errors.Is(err, service.ErrNoActiveSession) {
			abortWithError(c, http.StatusConflict, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Could not update profile")
		}
		return
	}
	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// LogWeight replaces the session user's weight.
func (h *ClientHandler) LogWeight(c *gin.Context) {
	var req LogWeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	metrics, err := h.clientService.LogWeight(c.Request.Context(), req.Weight)
	if err != nil {
		if errors.Is(err, service.ErrNoActiveSession) || errors.Is(err, service.ErrNoMetrics) {
			abortWithError(c, http.StatusConflict, err.Error())
		} else {
			abortWithError(c, http.StatusBadRequest, err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// RequestAvatarUploadURL presigns a PUT for an avatar image.
func (h *ClientHandler) RequestAvatarUploadURL(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	var req AvatarUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	resp, err := h.clientService.RequestAvatarUploadURL(c.Request.Context(), userID, req.ContentType)
	if err != nil {
		if errors.Is(err, service.ErrStorageDisabled) {
			abortWithError(c, http.StatusServiceUnavailable, err.Error())
		} else if errors.Is(err, service.ErrUploadURLError) {
			abortWithError(c, http.StatusInternalServerError, err.Error())
		} else {
			abortWithError(c, http.StatusBadRequest, err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ConfirmAvatar records the uploaded object key on the profile.
func (h *ClientHandler) ConfirmAvatar(c *gin.Context) {
	var req ConfirmAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	user, err := h.clientService.ConfirmAvatar(c.Request.Context(), req.ObjectKey)
	if err != nil {
		if errors.Is(err, service.ErrNoActiveSession) {
			abortWithError(c, http.StatusConflict, err.Error())
		} else {
			abortWithError(c, http.StatusBadRequest, err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// GetAvatarURL presigns a GET for the requesting user's avatar.
func (h *ClientHandler) GetAvatarURL(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	url, err := h.clientService.AvatarDownloadURL(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrStorageDisabled) {
			abortWithError(c, http.StatusServiceUnavailable, err.Error())
		} else if errors.Is(err, service.ErrNoAvatar) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
