package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/collabboard/collabboard-api/internal/config"
	"github.com/collabboard/collabboard-api/internal/credentials"
	"github.com/collabboard/collabboard-api/internal/database"
	"github.com/collabboard/collabboard-api/internal/handlers"
	"github.com/collabboard/collabboard-api/internal/middleware"
	"github.com/collabboard/collabboard-api/internal/repository"
	"github.com/collabboard/collabboard-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Credential service: password hashing and signed bearer tokens
	creds := credentials.NewService(cfg.JWTSecret, cfg.TokenTTL)

	// Repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	chatRepo := repository.NewChatRepository(db)

	// Services
	authService := services.NewAuthService(userRepo, creds)
	boardService := services.NewBoardService(boardRepo, userRepo, taskRepo)
	taskService := services.NewTaskService(taskRepo, boardRepo, userRepo)
	chatService := services.NewChatService(chatRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(authService)
	boardHandler := handlers.NewBoardHandler(boardService)
	taskHandler := handlers.NewTaskHandler(taskService)
	chatHandler := handlers.NewChatHandler(chatService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "CollabBoard API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Public routes
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		// Authenticated routes
		authed := api.Group("")
		authed.Use(middleware.RequireAuth(creds))
		{
			authed.GET("/profile", authHandler.GetProfile)
			authed.GET("/users/search", userHandler.SearchUsers)

			authed.POST("/boards", boardHandler.CreateBoard)
			authed.GET("/boards", boardHandler.ListBoards)
			authed.GET("/boards/:id", middleware.RequireBoardMember(), boardHandler.GetBoardDetail)
			authed.DELETE("/boards/:id", middleware.RequireBoardMember(), middleware.RequireBoardOwner(), boardHandler.DeleteBoard)
			authed.POST("/boards/:id/members", middleware.RequireBoardMember(), middleware.RequireBoardOwner(), boardHandler.AddMember)

			authed.POST("/boards/:id/tasks", middleware.RequireBoardMember(), taskHandler.CreateTask)
			authed.PUT("/tasks/:id", middleware.RequireTaskAccess(), taskHandler.UpdateTask)

			authed.GET("/boards/:id/chat", middleware.RequireBoardMember(), chatHandler.ListMessages)
			authed.POST("/boards/:id/chat", middleware.RequireBoardMember(), chatHandler.PostMessage)
		}
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
