package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Seba01D/pm-app/internal/accesscode"
	"github.com/Seba01D/pm-app/internal/auth"
	"github.com/Seba01D/pm-app/internal/authz"
	"github.com/Seba01D/pm-app/internal/config"
	"github.com/Seba01D/pm-app/internal/database"
	"github.com/Seba01D/pm-app/internal/handler"
	"github.com/Seba01D/pm-app/internal/middleware"
	"github.com/Seba01D/pm-app/internal/repository"
	"github.com/Seba01D/pm-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
	Log    *slog.Logger
}

func Init(cfg *config.Config, log *slog.Logger) (*Server, error) {
	if cfg.MigrationsAuto {
		if err := database.MigrateUp(cfg.MigrateURL(), log); err != nil {
			return nil, fmt.Errorf("failed to apply migrations: %w", err)
		}
	}

	db, err := database.Open(cfg.PostgresDSN(), database.Pool{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}
	log.Info("connected to database", slog.String("host", cfg.DBHost), slog.String("db", cfg.DBName))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	engine, err := NewEngine(db, cfg, log, reg)
	if err != nil {
		return nil, err
	}
	return &Server{
		Engine: engine,
		DB:     db,
		Config: cfg,
		Log:    log,
	}, nil
}

// NewEngine wires repositories, services and handlers on top of db and
// registers every route. Request metrics go to reg and are served from it.
func NewEngine(db *gorm.DB, cfg *config.Config, log *slog.Logger, reg *prometheus.Registry) (*gin.Engine, error) {
	// Repositories
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	memberRepo := repository.NewMembershipRepository(db)
	tileRepo := repository.NewTileRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	priorityRepo := repository.NewPriorityRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Identity
	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiryHours)
	identity := auth.NewJWTIdentityProvider(issuer, userRepo)

	// Services
	accounts := service.NewAccountService(userRepo, issuer)
	membership := service.NewMembershipService(identity, projectRepo, memberRepo, log)
	projects := service.NewProjectService(projectRepo, memberRepo, accesscode.Generate, cfg.AccessCodeRetries, log)
	tiles := service.NewTileService(tileRepo, projectRepo, log)
	tasks := service.NewTaskService(taskRepo, tileRepo, priorityRepo, log)
	settings := service.NewSettingsService(settingsRepo, log)

	enforcer, err := authz.NewEnforcer(membership, log)
	if err != nil {
		return nil, fmt.Errorf("failed to build access policy: %w", err)
	}

	// Handlers
	userHandler := handler.NewUserHandler(accounts)
	projectHandler := handler.NewProjectHandler(projects, enforcer)
	membershipHandler := handler.NewMembershipHandler(membership)
	tileHandler := handler.NewTileHandler(tiles, enforcer)
	taskHandler := handler.NewTaskHandler(tasks, tiles, enforcer)
	settingsHandler := handler.NewSettingsHandler(settings)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log), middleware.NewMetrics(reg).Handler())

	// Public routes
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.POST("/register", userHandler.Register)
	r.POST("/login", userHandler.Login)
	// Join validates its own bearer token so a missing code is reported first.
	r.POST("/api/joinProject", membershipHandler.Join)

	// Protected routes - require authentication
	authorized := r.Group("/api")
	authorized.Use(middleware.JWTAuthMiddleware(identity))
	{
		// Project routes
		authorized.POST("/addProject", projectHandler.Create)
		authorized.GET("/projects/owned", projectHandler.GetOwned)
		authorized.GET("/projects/joined", projectHandler.GetJoined)
		authorized.GET("/projects/:id", projectHandler.GetByID)
		authorized.PUT("/projects/:id", projectHandler.Rename)
		authorized.DELETE("/projects/:id", projectHandler.Delete)
		authorized.DELETE("/projects/:id/membership", projectHandler.Leave)
		authorized.GET("/dashboard", projectHandler.Dashboard)

		// Tile routes
		authorized.Any("/tiles", tileHandler.Collection)

		// Task routes
		authorized.GET("/tiles/:id/tasks", taskHandler.GetByTile)
		authorized.POST("/tiles/:id/tasks", taskHandler.Create)
		authorized.POST("/tasks/:id/toggle", taskHandler.Toggle)
		authorized.PUT("/tasks/:id/description", taskHandler.UpdateDescription)
		authorized.PATCH("/tasks/:id", taskHandler.UpdateDetails)
		authorized.DELETE("/tasks/:id", taskHandler.Delete)
		authorized.GET("/priorities", taskHandler.Priorities)

		// Settings routes
		authorized.GET("/settings", settingsHandler.Get)
		authorized.PUT("/settings", settingsHandler.Update)
	}
	return r, nil
}

func (s *Server) Run() error {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	errCh := make(chan error, 1)
	go func() {
		s.Log.Info("server running", slog.String("port", s.Config.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("failed to listen: %w", err)
	case <-quit:
	}
	s.Log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	if sqlDB, err := s.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	s.Log.Info("server exited properly")
	return nil
}
