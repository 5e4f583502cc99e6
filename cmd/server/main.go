package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	httpapi "launchpad-backend/internal/api/http"
	"launchpad-backend/internal/config"
	"launchpad-backend/internal/jobs"
	"launchpad-backend/internal/logger"
	"launchpad-backend/internal/repository/postgres"
	"launchpad-backend/internal/scheduler"
	"launchpad-backend/internal/security"
	"launchpad-backend/internal/service"
	"launchpad-backend/internal/storage"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Launchpad backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	fileStore, err := storage.NewLocalFileStore(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize file storage: %v", err)
	}
	logger.Info("Using local file storage", "upload_dir", cfg.Storage.UploadDir)

	emailSvc := service.NewEmailService(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.From)
	userSvc := service.NewUserService(store.Users, tokenManager)
	subscriptionSvc := service.NewSubscriptionService(store.Subscriptions, store.Users)
	projectSvc := service.NewProjectService(store.Projects, subscriptionSvc)
	reviewSvc := service.NewReviewService(store.Projects, store.Analytics, store.Users, subscriptionSvc, emailSvc, fileStore)
	assignmentSvc := service.NewAssignmentService(store.Assignments, store.Projects, store.Users)
	analyticsSvc := service.NewAnalyticsService(store.Analytics, store.Projects, subscriptionSvc, fileStore)
	communitySvc := service.NewCommunityService(store.Community, store.Users)
	joinSvc := service.NewJoinService(store.JoinRequests, store.Community, store.Users, emailSvc)

	handlers := httpapi.Handlers{
		Auth:         httpapi.NewAuthHandler(userSvc),
		Project:      httpapi.NewProjectHandler(projectSvc, reviewSvc),
		Review:       httpapi.NewReviewHandler(reviewSvc, assignmentSvc),
		Analytics:    httpapi.NewAnalyticsHandler(analyticsSvc),
		Community:    httpapi.NewCommunityHandler(communitySvc, joinSvc),
		Subscription: httpapi.NewSubscriptionHandler(subscriptionSvc),
		File:         httpapi.NewFileHandler(fileStore),
	}
	router := httpapi.NewRouter(handlers, tokenManager)

	jobRunner := jobs.NewJobRunner(store.Subscriptions, emailSvc, cfg)
	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()
	defer cronScheduler.Stop()

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}
