package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"launchpad-backend/internal/config"
	"launchpad-backend/internal/jobs"
	"launchpad-backend/internal/logger"
	"launchpad-backend/internal/repository/postgres"
	"launchpad-backend/internal/scheduler"
	"launchpad-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g. 'expire-subscriptions', 'send-expiry-reminders', 'all-nightly')")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Launchpad cronjob runner...", "log_level", cfg.Log.Level)

	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
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
	emailSvc := service.NewEmailService(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.From)
	jobRunner := jobs.NewJobRunner(store.Subscriptions, emailSvc, cfg)

	if *runOnce != "" {
		if err := runSingleJob(jobRunner, *runOnce); err != nil {
			log.Fatalf("Job failed: %v", err)
		}
		logger.Info("Job completed", "job", *runOnce)
		return
	}

	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()
	logger.Info("Cronjob runner ready", "expire_schedule", cfg.Scheduler.ExpireSubscriptions, "reminder_schedule", cfg.Scheduler.SendExpiryReminders)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	cronScheduler.Stop()
	logger.Info("Cronjob runner stopped")
}

func runSingleJob(jobRunner *jobs.JobRunner, name string) error {
	switch name {
	case "expire-subscriptions":
		jobRunner.ExpireSubscriptions()
	case "send-expiry-reminders":
		jobRunner.SendExpiryReminders()
	case "all-nightly":
		jobRunner.RunAllNightlyJobs()
	default:
		return fmt.Errorf("unknown job %q", name)
	}
	return nil
}
