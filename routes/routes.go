package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"JournalGo/controllers"
	"JournalGo/middleware"
	"JournalGo/services"
)

func RegisterRoutes(r *gin.Engine, client *services.GeminiClient, otpStore services.OTPStore) {
	authController := controllers.NewAuthController(otpStore)
	coachingService := services.NewCoachingService(client)
	coachingController := controllers.NewCoachingController(coachingService)
	userController := controllers.UserController{}
	entryController := controllers.EntryController{}

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/auth/send-otp", authController.SendOTP)
		public.POST("/auth/verify-otp", authController.VerifyOTP)
		public.POST("/auth/google", authController.GoogleLogin)
	}

	// Routes requiring a bearer token
	private := r.Group("/api")
	private.Use(middleware.AuthMiddleware())
	{
		private.GET("/auth/me", userController.Me)
		private.POST("/auth/logout", authController.Logout)
		private.GET("/auth/profile", userController.GetProfile)
		private.PUT("/auth/profile", userController.UpdateProfile)
		private.DELETE("/auth/account", userController.DeleteAccount)

		private.GET("/entries", entryController.ListEntries)
		private.POST("/entries", entryController.CreateEntry)
		private.DELETE("/entries/:entryId", entryController.DeleteEntry)
		private.POST("/mood-followup/:entryId", entryController.MoodFollowUp)

		private.POST("/coaching/:entryId", coachingController.Coaching)
		private.POST("/coaching/:entryId/followup", coachingController.CoachingFollowUp)
		private.POST("/personalized-coaching/:entryId", coachingController.PersonalizedCoaching)
		private.POST("/capability-assessment/:entryId", coachingController.CapabilityAssessment)

		private.GET("/analytics/mood", entryController.MoodAnalytics)
		private.GET("/insights", entryController.Insights)
	}

	startedAt := time.Now()
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"timestamp": time.Now().Format(time.RFC3339),
			"uptime":    time.Since(startedAt).Seconds(),
		})
	})

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
