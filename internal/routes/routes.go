package routes

import (
	"github.com/gin-gonic/gin"

	"studysimplifier/internal/handlers"
	"studysimplifier/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	jwtSecret []byte,
	authHandler *handlers.AuthHandler,
	verifyHandler *handlers.VerifyHandler,
	todoHandler *handlers.TodoHandler,
	linkHandler *handlers.LinkHandler,
	notificationHandler *handlers.NotificationHandler,
	adminHandler *handlers.AdminHandler,
) *gin.Engine {

	// ---- public
	r.POST("/api/auth/login", authHandler.Login)
	r.POST("/api/auth/register", authHandler.Register)
	r.POST("/api/auth/verify-email", verifyHandler.VerifyEmail)
	r.POST("/api/auth/resend-code", verifyHandler.ResendCode)

	// ---- protected
	r.Use(middleware.AuthMiddleware(jwtSecret))

	auth := r.Group("/api/auth")
	{
		auth.GET("/me", authHandler.Me)
		auth.PUT("/update-profile", authHandler.UpdateProfile)
		auth.PUT("/profile-image", authHandler.UpdateProfileImage)
		auth.PUT("/change-password", authHandler.ChangePassword)
		auth.DELETE("/delete-account", authHandler.DeleteAccount)
	}

	todos := r.Group("/api/todos")
	{
		todos.GET("/", todoHandler.List)
		todos.POST("/", todoHandler.Create)
		todos.PUT("/:id", todoHandler.Update)
		todos.DELETE("/:id", todoHandler.Delete)
	}

	links := r.Group("/api/links")
	{
		links.GET("/", linkHandler.List)
		links.POST("/", linkHandler.Create)
		links.DELETE("/:id", linkHandler.Delete)
	}

	notifications := r.Group("/api/notifications")
	{
		notifications.GET("/settings", notificationHandler.GetSettings)
		notifications.PUT("/settings", notificationHandler.UpdateSettings)
		notifications.POST("/check-tasks", notificationHandler.CheckTasks)
		notifications.POST("/new-feature", notificationHandler.NewFeature)
		notifications.POST("/test-email", notificationHandler.TestEmail)
		notifications.POST("/test-desktop", notificationHandler.TestDesktop)
	}

	admin := r.Group("/api/admin")
	{
		admin.POST("/reset-database", adminHandler.ResetDatabase)
	}

	return r
}
