package app

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"studysimplifier/internal/config"
	"studysimplifier/internal/handlers"
	"studysimplifier/internal/middleware"
	"studysimplifier/internal/repositories"
	"studysimplifier/internal/routes"
	"studysimplifier/internal/services"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	_ "studysimplifier/docs"
)

func Run() {
	cfg := config.LoadConfig()

	// === DB ===
	ctx := context.Background()
	client, err := repositories.Connect(ctx, cfg.Database.URI)
	if err != nil {
		log.Fatal("MongoDB Verbindungsfehler: ", err)
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.Printf("MongoDB disconnect: %v", err)
		}
	}()
	db := client.Database(cfg.Database.Name)

	// === Repos ===
	userRepo := repositories.NewUserRepository(db)
	todoRepo := repositories.NewTodoRepository(db)
	linkRepo := repositories.NewLinkRepository(db)

	// === Services ===
	authService := services.NewAuthService(cfg.Auth.JWTSecret)
	emailService := services.NewEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
		cfg.Frontend.BaseURL,
	)
	verificationService := services.NewVerificationService(userRepo, emailService, authService)
	notificationService := services.NewNotificationService(todoRepo, userRepo, emailService)
	userService := services.NewUserService(userRepo, todoRepo, linkRepo, verificationService, authService)
	todoService := services.NewTodoService(todoRepo)
	linkService := services.NewLinkService(linkRepo)

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(userService, authService)
	verifyHandler := handlers.NewVerifyHandler(userService, verificationService)
	todoHandler := handlers.NewTodoHandler(todoService)
	linkHandler := handlers.NewLinkHandler(linkService)
	notificationHandler := handlers.NewNotificationHandler(userService, authService, emailService, notificationService)
	adminHandler := handlers.NewAdminHandler(userRepo, todoRepo, linkRepo, cfg.Admin.Password)

	// === Gin ===
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(middleware.RequestID())

	router.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(
		router,
		[]byte(cfg.Auth.JWTSecret),
		authHandler,
		verifyHandler,
		todoHandler,
		linkHandler,
		notificationHandler,
		adminHandler,
	)

	// First sweep shortly after start, then per interval.
	notificationService.StartScheduler(ctx, cfg.Notifications.SweepInitialDelay, cfg.Notifications.SweepInterval)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server läuft auf %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("Fehler beim Starten des Servers: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization, X-Request-ID")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
