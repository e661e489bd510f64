package handlers

import (
	"bytes"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/collabboard/collabboard-api/internal/credentials"
	"github.com/collabboard/collabboard-api/internal/database"
	"github.com/collabboard/collabboard-api/internal/middleware"
	"github.com/collabboard/collabboard-api/internal/models"
	"github.com/collabboard/collabboard-api/internal/repository"
	"github.com/collabboard/collabboard-api/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	db           *gorm.DB
	router       *gin.Engine
	creds        *credentials.Service
	authService  *services.AuthService
	boardService *services.BoardService
	taskService  *services.TaskService
	chatService  *services.ChatService
}

func setupTestEnv(t *testing.T) testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Board{},
		&models.BoardMember{},
		&models.Task{},
		&models.ChatMessage{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	creds := credentials.NewService("test-secret", time.Hour)

	userRepo := repository.NewUserRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	chatRepo := repository.NewChatRepository(db)

	authService := services.NewAuthService(userRepo, creds)
	boardService := services.NewBoardService(boardRepo, userRepo, taskRepo)
	taskService := services.NewTaskService(taskRepo, boardRepo, userRepo)
	chatService := services.NewChatService(chatRepo)

	authHandler := NewAuthHandler(authService)
	userHandler := NewUserHandler(authService)
	boardHandler := NewBoardHandler(boardService)
	taskHandler := NewTaskHandler(taskService)
	chatHandler := NewChatHandler(chatService)

	r := gin.New()
	api := r.Group("/api")
	{
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

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

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return testEnv{
		db:           db,
		router:       r,
		creds:        creds,
		authService:  authService,
		boardService: boardService,
		taskService:  taskService,
		chatService:  chatService,
	}
}

func registerTestUser(t *testing.T, env testEnv, username, email, password string) *models.User {
	t.Helper()

	user, err := env.authService.Register(services.RegisterInput{
		Username: username,
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	return user
}

func tokenFor(t *testing.T, env testEnv, user *models.User) string {
	t.Helper()

	token, err := env.creds.IssueToken(user.ID)
	require.NoError(t, err)
	return token
}

func doRequest(env testEnv, method, url string, body []byte, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func createTestBoard(t *testing.T, env testEnv, owner *models.User, name string) *models.Board {
	t.Helper()

	board, err := env.boardService.CreateBoard(services.CreateBoardInput{
		Name:    name,
		OwnerID: owner.ID,
	})
	require.NoError(t, err)
	return board
}
