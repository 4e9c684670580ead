package server

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hometasks/internal/assist"
	"hometasks/internal/config"
	"hometasks/internal/handler"
	"hometasks/internal/middleware"
	"hometasks/internal/repository"
	"hometasks/internal/service"
	"hometasks/internal/store"

	"github.com/gin-gonic/gin"
)

type Server struct {
	Engine *gin.Engine
	Store  *store.Store
	Config *config.Config
}

func Init(cfg *config.Config, st *store.Store, logger *slog.Logger) (*Server, error) {
	// Setup Gin
	r := gin.Default()

	// Initialize repositories
	taskRepo := repository.NewTaskRepository(st)
	userRepo := repository.NewUserRepository(st)
	sectionRepo := repository.NewSectionRepository(st)
	jobPositionRepo := repository.NewJobPositionRepository(st)
	projectRepo := repository.NewProjectRepository(st)
	notificationRepo := repository.NewNotificationRepository(st)

	// Initialize services
	credentials, err := service.SeedCredentials()
	if err != nil {
		return nil, err
	}
	authService := service.NewAuthService(credentials)
	notificationService := service.NewNotificationService(notificationRepo)
	taskService := service.NewTaskService(taskRepo, sectionRepo, notificationService, logger)
	catalogService := service.NewCatalogService(sectionRepo, jobPositionRepo, projectRepo, taskRepo)
	employeeService := service.NewEmployeeService(userRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	taskHandler := handler.NewTaskHandler(taskService)
	catalogHandler := handler.NewCatalogHandler(catalogService, taskService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	assistHandler := handler.NewAssistHandler(assist.NewClient(cfg.GeminiAPIKey, cfg.AssistTimeout, logger))

	// Public routes
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.POST("/login", authHandler.Login)

	// Protected routes - require authentication
	authorized := r.Group("/")
	authorized.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	{
		// Task routes
		authorized.GET("/tasks", taskHandler.GetAll)
		authorized.GET("/tasks/mine", taskHandler.Mine)
		authorized.GET("/tasks/calendar", taskHandler.Calendar)
		authorized.GET("/tasks/:id", taskHandler.GetByID)
		authorized.POST("/tasks/:id/complete", taskHandler.Complete)
		authorized.POST("/tasks/:id/comments", taskHandler.AddComment)

		// Notification routes
		authorized.GET("/notifications", notificationHandler.GetAll)
		authorized.GET("/notifications/unread-count", notificationHandler.UnreadCount)
		authorized.POST("/notifications/:id/read", notificationHandler.MarkRead)
		authorized.POST("/notifications/read-all", notificationHandler.MarkAllRead)

		// Catalog reads are available to every session
		authorized.GET("/sections", catalogHandler.GetSections)
		authorized.GET("/job-positions", catalogHandler.GetJobPositions)
		authorized.GET("/projects", catalogHandler.GetProjects)
		authorized.GET("/employees", employeeHandler.GetAll)
	}

	// Admin routes - task and catalog management
	admin := r.Group("/")
	admin.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.AdminOnly())
	{
		admin.POST("/tasks", taskHandler.Create)
		admin.PUT("/tasks/:id", taskHandler.Update)
		admin.DELETE("/tasks/:id", taskHandler.Delete)

		admin.POST("/sections", catalogHandler.CreateSection)
		admin.PUT("/sections/:id", catalogHandler.UpdateSection)
		admin.DELETE("/sections/:id", catalogHandler.DeleteSection)

		admin.POST("/job-positions", catalogHandler.CreateJobPosition)
		admin.PUT("/job-positions/:id", catalogHandler.UpdateJobPosition)
		admin.DELETE("/job-positions/:id", catalogHandler.DeleteJobPosition)

		admin.POST("/projects", catalogHandler.CreateProject)
		admin.PUT("/projects/:id", catalogHandler.UpdateProject)
		admin.DELETE("/projects/:id", catalogHandler.DeleteProject)

		admin.POST("/employees", employeeHandler.Create)
		admin.PUT("/employees/:id", employeeHandler.Update)
		admin.DELETE("/employees/:id", employeeHandler.Delete)

		admin.POST("/assist/task-description", assistHandler.GenerateDescription)
	}

	return &Server{
		Engine: r,
		Store:  st,
		Config: cfg,
	}, nil
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		log.Printf("🚀 Server running on port %s\n", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %s", err)
	}

	log.Println("✅ Server exited properly")
}
