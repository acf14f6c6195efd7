package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/forgo/roam/api/internal/config"
	"github.com/forgo/roam/api/internal/database"
	"github.com/forgo/roam/api/internal/handler"
	"github.com/forgo/roam/api/internal/jobs"
	"github.com/forgo/roam/api/internal/middleware"
	"github.com/forgo/roam/api/internal/observability"
	"github.com/forgo/roam/api/internal/repository"
	"github.com/forgo/roam/api/internal/service"
	"github.com/forgo/roam/api/pkg/jwt"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Initialize JWT validation
	jwtService, err := jwt.NewService(jwt.Config{
		PrivateKeyPath: cfg.JWT.PrivateKeyPath,
		PublicKeyPath:  cfg.JWT.PublicKeyPath,
		Issuer:         cfg.JWT.Issuer,
		ExpirationMins: cfg.JWT.ExpirationMins,
	})
	if err != nil {
		slog.Error("failed to initialize JWT service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	adventureRepo := repository.NewAdventureRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	workflowRepo := repository.NewWorkflowRepository(db)

	// Initialize services
	adventureService := service.NewAdventureService(service.AdventureServiceConfig{
		Adventures: adventureRepo,
		Users:      userRepo,
	})
	followService := service.NewFollowService(service.FollowServiceConfig{
		Users:         userRepo,
		Notifications: notificationRepo,
	})
	activityService := service.NewActivityService(service.ActivityServiceConfig{
		Users:         userRepo,
		Adventures:    adventureRepo,
		Notifications: notificationRepo,
		Workflow:      workflowRepo,
	})
	twinService := service.NewTwinService(service.TwinServiceConfig{
		Users: userRepo,
	})
	userService := service.NewUserService(service.UserServiceConfig{
		Users: userRepo,
	})
	notificationService := service.NewNotificationService(service.NotificationServiceConfig{
		Notifications: notificationRepo,
	})

	// Initialize handlers
	adventureHandler := handler.NewAdventureHandler(adventureService)
	followHandler := handler.NewFollowHandler(followService)
	activityHandler := handler.NewActivityHandler(activityService)
	twinsHandler := handler.NewTwinsHandler(twinService)
	profileHandler := handler.NewProfileHandler(userService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	healthHandler := handler.NewHealthHandler(db)

	// Create router and register routes
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", healthHandler.Live)
	mux.HandleFunc("GET /readyz", healthHandler.Ready)
	mux.Handle("GET /metrics", observability.Handler())

	requireAuth := middleware.Auth(jwtService)
	optionalAuth := middleware.OptionalAuth(jwtService)

	// Viewer-scoped reads: guests allowed
	mux.Handle("GET /v1/feed", optionalAuth(http.HandlerFunc(adventureHandler.Feed)))
	mux.Handle("GET /v1/adventures/{adventureId}", optionalAuth(http.HandlerFunc(adventureHandler.GetByID)))
	mux.Handle("GET /v1/users/{userId}", optionalAuth(http.HandlerFunc(profileHandler.Get)))
	mux.Handle("GET /v1/users/{userId}/adventures", optionalAuth(http.HandlerFunc(adventureHandler.ListByAuthor)))

	// Adventures
	mux.Handle("POST /v1/adventures", requireAuth(http.HandlerFunc(adventureHandler.Create)))
	mux.Handle("PUT /v1/adventures/{adventureId}/interest", requireAuth(http.HandlerFunc(adventureHandler.SetInterested)))

	// Follow graph
	mux.Handle("POST /v1/users/{userId}/follow", requireAuth(http.HandlerFunc(followHandler.Toggle)))
	mux.Handle("DELETE /v1/users/{userId}/followers/{followerId}", requireAuth(http.HandlerFunc(followHandler.RemoveFollower)))

	// Attendance workflow
	mux.Handle("POST /v1/adventures/{adventureId}/done", requireAuth(http.HandlerFunc(activityHandler.MarkDone)))
	mux.Handle("POST /v1/notifications/{notificationId}/confirm", requireAuth(http.HandlerFunc(activityHandler.Confirm)))
	mux.Handle("POST /v1/notifications/{notificationId}/deny", requireAuth(http.HandlerFunc(activityHandler.Deny)))
	mux.Handle("POST /v1/adventures/{adventureId}/rating", requireAuth(http.HandlerFunc(activityHandler.SubmitRating)))

	// Twins
	mux.Handle("GET /v1/twins", requireAuth(http.HandlerFunc(twinsHandler.Find)))

	// Profile
	mux.Handle("GET /v1/users/me", requireAuth(http.HandlerFunc(profileHandler.GetMe)))
	mux.Handle("PATCH /v1/users/me/profile", requireAuth(http.HandlerFunc(profileHandler.UpdateProfile)))
	mux.Handle("PATCH /v1/users/me/privacy", requireAuth(http.HandlerFunc(profileHandler.UpdatePrivacy)))

	// Notifications
	mux.Handle("GET /v1/notifications", requireAuth(http.HandlerFunc(notificationHandler.List)))
	mux.Handle("POST /v1/notifications/read", requireAuth(http.HandlerFunc(notificationHandler.MarkAllRead)))

	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Metrics,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
	)

	// Background workers
	var subscriber database.Subscriber
	if cfg.Jobs.LiveEvents {
		subscriber = db
	}
	reconciler := jobs.NewFollowReconciler(userRepo, subscriber, cfg.Jobs.ReconcileInterval)
	reconciler.Start()
	defer reconciler.Stop()

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
