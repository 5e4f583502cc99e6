package jobs

import (
	"sync"

	"launchpad-backend/internal/config"
	"launchpad-backend/internal/logger"
	"launchpad-backend/internal/repository"
	"launchpad-backend/internal/service"
)

// JobRunner coordinates the scheduled subscription sweeps.
type JobRunner struct {
	subRepo  repository.SubscriptionRepository
	emailSvc service.EmailService
	config   *config.Config

	// One mutex per job name; a sweep never runs concurrently with itself,
	// even if a cron tick fires while the previous run is still going.
	running sync.Map
}

func NewJobRunner(subRepo repository.SubscriptionRepository, emailSvc service.EmailService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		subRepo:  subRepo,
		emailSvc: emailSvc,
		config:   cfg,
	}
}

func (jr *JobRunner) Config() *config.Config { return jr.config }

// runExclusive wraps job execution with panic recovery and a single-flight
// guard keyed by job name.
func (jr *JobRunner) runExclusive(jobName string, jobFunc func()) {
	muIface, _ := jr.running.LoadOrStore(jobName, &sync.Mutex{})
	mu := muIface.(*sync.Mutex)
	if !mu.TryLock() {
		logger.Warn("Job still running, skipping this tick", "job", jobName)
		return
	}
	defer mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllNightlyJobs runs all nightly jobs (for manual execution)
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.ExpireSubscriptions()
	jr.SendExpiryReminders()
}
