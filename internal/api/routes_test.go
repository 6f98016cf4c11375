package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"trainio/internal/domain"
	"trainio/internal/service"
	"trainio/internal/store"

	"github.com/gin-gonic/gin"
)

const testSecret = "test-secret"

func newTestRouter() (*gin.Engine, *store.Store) {
	gin.SetMode(gin.TestMode)

	st := store.New()
	authService := service.NewAuthService(st, testSecret, time.Hour)
	trainerService := service.NewTrainerService(st)
	clientService := service.NewClientService(st, nil)
	chatService := service.NewChatService(st)
	dashboardService := service.NewDashboardService(st)

	router := gin.New()
	router.Use(RecoveryMiddleware())
	SetupRoutes(router, testSecret, authService, trainerService, clientService, chatService, dashboardService)
	return router, st
}

func doJSON(t *testing.T, router *gin.Engine, method, url, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func register(t *testing.T, router *gin.Engine, name, email string, role domain.Role) {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name": name, "email": email, "password": "password123", "role": role,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: status %d, body %s", email, w.Code, w.Body.String())
	}
}

func login(t *testing.T, router *gin.Engine, email string) (token, userID string) {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email": email, "password": "password123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: status %d, body %s", email, w.Code, w.Body.String())
	}
	var resp LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	return resp.Token, resp.User.ID
}

func TestAuthFlowAndRoleGating(t *testing.T) {
	router, _ := newTestRouter()

	register(t, router, "Coach Sarah", "sarah@trainio.com", domain.RoleTrainer)
	register(t, router, "Alex Client", "alex@example.com", domain.RoleClient)

	trainerToken, _ := login(t, router, "sarah@trainio.com")
	clientToken, _ := login(t, router, "alex@example.com")

	// unauthenticated requests get the JSON error body
	w := doJSON(t, router, http.MethodGet, "/api/v1/trainer/clients", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	var errBody map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &errBody); err != nil || errBody["message"] == "" {
		t.Fatalf("error body = %s", w.Body.String())
	}

	// clients are locked out of the trainer group
	if w := doJSON(t, router, http.MethodGet, "/api/v1/trainer/clients", clientToken, nil); w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}

	// trainers get through
	if w := doJSON(t, router, http.MethodGet, "/api/v1/trainer/clients", trainerToken, nil); w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
}

func TestTrainerAssignsWorkoutClientCompletes(t *testing.T) {
	router, _ := newTestRouter()

	register(t, router, "Coach Sarah", "sarah@trainio.com", domain.RoleTrainer)
	register(t, router, "Alex Client", "alex@example.com", domain.RoleClient)
	trainerToken, _ := login(t, router, "sarah@trainio.com")
	clientToken, clientID := login(t, router, "alex@example.com")

	today := domain.Day(time.Now())
	w := doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/v1/trainer/clients/%s/workouts", clientID), trainerToken, gin.H{
		"title": "Upper Body Power",
		"date":  today,
		"exercises": []gin.H{
			{"name": "Bench Press", "sets": 4, "reps": "8-10", "weight": "60kg", "rest": "90s"},
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("assign: status %d, body %s", w.Code, w.Body.String())
	}
	var workout domain.Workout
	if err := json.Unmarshal(w.Body.Bytes(), &workout); err != nil {
		t.Fatalf("decode workout: %v", err)
	}
	if workout.UserID != clientID || workout.Status != domain.StatusPending {
		t.Fatalf("workout = %+v", workout)
	}

	// the workout shows up as today's on the client overview
	w = doJSON(t, router, http.MethodGet, "/api/v1/workouts", clientToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("workouts: status %d", w.Code)
	}
	var overview service.WorkoutOverview
	if err := json.Unmarshal(w.Body.Bytes(), &overview); err != nil {
		t.Fatalf("decode overview: %v", err)
	}
	if overview.Today == nil || overview.Today.ID != workout.ID {
		t.Fatalf("overview = %+v", overview)
	}

	// complete it; a second completion is still a success (idempotent)
	url := fmt.Sprintf("/api/v1/workouts/%s/complete", workout.ID)
	if w := doJSON(t, router, http.MethodPost, url, clientToken, nil); w.Code != http.StatusNoContent {
		t.Fatalf("complete: status %d", w.Code)
	}
	if w := doJSON(t, router, http.MethodPost, url, clientToken, nil); w.Code != http.StatusNoContent {
		t.Fatalf("re-complete: status %d", w.Code)
	}

	// unknown id surfaces as not found
	if w := doJSON(t, router, http.MethodPost, "/api/v1/workouts/ghost/complete", clientToken, nil); w.Code != http.StatusNotFound {
		t.Fatalf("ghost complete: status %d", w.Code)
	}
}

func TestDashboardRoleViews(t *testing.T) {
	router, _ := newTestRouter()

	register(t, router, "Coach Sarah", "sarah@trainio.com", domain.RoleTrainer)
	register(t, router, "Alex Client", "alex@example.com", domain.RoleClient)
	trainerToken, _ := login(t, router, "sarah@trainio.com")
	clientToken, _ := login(t, router, "alex@example.com")

	var dash service.Dashboard
	w := doJSON(t, router, http.MethodGet, "/api/v1/me/dashboard", clientToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("client dashboard: status %d", w.Code)
	}
	if err := json.Unmarshal(w.Body.Bytes(), &dash); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if dash.Role != domain.RoleClient || dash.Client == nil || dash.Trainer != nil {
		t.Fatalf("client dashboard = %+v", dash)
	}

	dash = service.Dashboard{}
	w = doJSON(t, router, http.MethodGet, "/api/v1/me/dashboard", trainerToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("trainer dashboard: status %d", w.Code)
	}
	if err := json.Unmarshal(w.Body.Bytes(), &dash); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if dash.Role != domain.RoleTrainer || dash.Trainer == nil || dash.Client != nil {
		t.Fatalf("trainer dashboard = %+v", dash)
	}
	if len(dash.Trainer.Clients) != 1 {
		t.Fatalf("roster = %+v", dash.Trainer.Clients)
	}
}

func TestMealLoggingAndNutritionReport(t *testing.T) {
	router, _ := newTestRouter()

	register(t, router, "Alex Client", "alex@example.com", domain.RoleClient)
	clientToken, _ := login(t, router, "alex@example.com")

	for _, meal := range []gin.H{
		{"name": "Oatmeal", "type": "breakfast", "calories": 300, "protein": 12, "carbs": 60, "fats": 6},
		{"name": "Salad", "type": "lunch", "calories": 200, "protein": 20, "carbs": 10, "fats": 8},
	} {
		if w := doJSON(t, router, http.MethodPost, "/api/v1/meals", clientToken, meal); w.Code != http.StatusCreated {
			t.Fatalf("log meal: status %d, body %s", w.Code, w.Body.String())
		}
	}

	// malformed meal type is rejected at the boundary
	if w := doJSON(t, router, http.MethodPost, "/api/v1/meals", clientToken, gin.H{"name": "Mystery", "type": "brunch"}); w.Code != http.StatusBadRequest {
		t.Fatalf("bad meal type: status %d", w.Code)
	}

	w := doJSON(t, router, http.MethodGet, "/api/v1/nutrition", clientToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("nutrition: status %d", w.Code)
	}
	var report service.NutritionReport
	if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if report.Totals.Calories != 500 {
		t.Fatalf("calories = %d, want 500", report.Totals.Calories)
	}
	if report.Targets != domain.DefaultNutritionTargets {
		t.Fatalf("targets = %+v, want defaults", report.Targets)
	}

	if w := doJSON(t, router, http.MethodGet, "/api/v1/nutrition?date=not-a-date", clientToken, nil); w.Code != http.StatusBadRequest {
		t.Fatalf("bad date: status %d", w.Code)
	}
}

func TestChatEndpoints(t *testing.T) {
	router, _ := newTestRouter()

	register(t, router, "Coach Sarah", "sarah@trainio.com", domain.RoleTrainer)
	register(t, router, "Alex Client", "alex@example.com", domain.RoleClient)
	trainerToken, trainerID := login(t, router, "sarah@trainio.com")
	clientToken, clientID := login(t, router, "alex@example.com")

	if w := doJSON(t, router, http.MethodPost, "/api/v1/messages", trainerToken, gin.H{"receiverId": clientID, "text": "How was the workout?"}); w.Code != http.StatusCreated {
		t.Fatalf("send: status %d, body %s", w.Code, w.Body.String())
	}
	if w := doJSON(t, router, http.MethodPost, "/api/v1/messages", clientToken, gin.H{"receiverId": trainerID, "text": "Intense!"}); w.Code != http.StatusCreated {
		t.Fatalf("send: status %d", w.Code)
	}

	w := doJSON(t, router, http.MethodGet, "/api/v1/messages/"+trainerID, clientToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("conversation: status %d", w.Code)
	}
	var msgs []domain.Message
	if err := json.Unmarshal(w.Body.Bytes(), &msgs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(msgs) != 2 || msgs[0].Text != "How was the workout?" {
		t.Fatalf("conversation = %+v", msgs)
	}

	// contacts exclude the requester and support name filtering
	w = doJSON(t, router, http.MethodGet, "/api/v1/contacts?q=sarah", clientToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("contacts: status %d", w.Code)
	}
	var contacts []UserResponse
	if err := json.Unmarshal(w.Body.Bytes(), &contacts); err != nil {
		t.Fatalf("decode contacts: %v", err)
	}
	if len(contacts) != 1 || contacts[0].ID != trainerID {
		t.Fatalf("contacts = %+v", contacts)
	}
}

func TestUpdateNutritionTargetsEndToEnd(t *testing.T) {
	router, st := newTestRouter()

	register(t, router, "Coach Sarah", "sarah@trainio.com", domain.RoleTrainer)
	register(t, router, "Alex Client", "alex@example.com", domain.RoleClient)
	trainerToken, _ := login(t, router, "sarah@trainio.com")
	_, clientID := login(t, router, "alex@example.com")

	url := fmt.Sprintf("/api/v1/trainer/clients/%s/nutrition", clientID)
	w := doJSON(t, router, http.MethodPut, url, trainerToken, gin.H{
		"calories": 2000, "protein": 150, "carbs": 200, "fats": 60,
	})
	if w.Code != http.StatusNoContent {
		t.Fatalf("update nutrition: status %d, body %s", w.Code, w.Body.String())
	}

	if u := st.Snapshot().FindUser(clientID); u.Targets == nil || u.Targets.Calories != 2000 {
		t.Fatalf("targets not stored: %+v", u.Targets)
	}

	// unknown client id maps the store no-op to 404
	w = doJSON(t, router, http.MethodPut, "/api/v1/trainer/clients/ghost/nutrition", trainerToken, gin.H{
		"calories": 2000, "protein": 150, "carbs": 200, "fats": 60,
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("ghost client: status %d", w.Code)
	}
}
