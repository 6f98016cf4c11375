package api

import (
	"net/http"
	"trainio/internal/domain"
	"trainio/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers the full API surface on the router.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	trainerService service.TrainerService,
	clientService service.ClientService,
	chatService service.ChatService,
	dashboardService service.DashboardService,
) {
	authHandler := NewAuthHandler(authService)
	trainerHandler := NewTrainerHandler(trainerService)
	clientHandler := NewClientHandler(clientService, dashboardService)
	chatHandler := NewChatHandler(chatService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/logout", authMiddleware, authHandler.Logout)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		// --- Profile / session user ---
		meGroup := protected.Group("/me")
		{
			meGroup.GET("/dashboard", clientHandler.GetDashboard)
			meGroup.PUT("", clientHandler.UpdateProfile)
			meGroup.PUT("/weight", clientHandler.LogWeight)
			meGroup.POST("/avatar-url", clientHandler.RequestAvatarUploadURL)
			meGroup.POST("/avatar", clientHandler.ConfirmAvatar)
			meGroup.GET("/avatar-url", clientHandler.GetAvatarURL)
		}

		// --- Workouts ---
		workoutGroup := protected.Group("/workouts")
		{
			workoutGroup.GET("", clientHandler.GetWorkouts)
			workoutGroup.POST("/:id/complete", clientHandler.CompleteWorkout)
		}

		// --- Nutrition ---
		protected.POST("/meals", clientHandler.LogMeal)
		protected.GET("/nutrition", clientHandler.GetNutrition)

		// --- Chat ---
		protected.GET("/contacts", chatHandler.GetContacts)
		protected.GET("/messages/:userId", chatHandler.GetConversation)
		protected.POST("/messages", chatHandler.SendMessage)

		// --- Trainer Specific Routes ---
		// All routes in this group require authentication AND the trainer role.
		trainerApiGroup := protected.Group("/trainer")
		trainerApiGroup.Use(RoleMiddleware(domain.RoleTrainer))
		{
			trainerApiGroup.POST("/clients", trainerHandler.AddClient)
			trainerApiGroup.GET("/clients", trainerHandler.GetClients)
			trainerApiGroup.POST("/clients/:clientId/workouts", trainerHandler.AssignWorkout)
			trainerApiGroup.PUT("/clients/:clientId/nutrition", trainerHandler.UpdateClientNutrition)
			trainerApiGroup.POST("/events", trainerHandler.ScheduleEvent)
			trainerApiGroup.GET("/agenda", trainerHandler.GetAgenda)
		}
	}
}
