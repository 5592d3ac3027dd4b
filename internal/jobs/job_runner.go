package jobs

import (
	"context"
	"time"

	"contribution-rewards-backend/internal/config"
	"contribution-rewards-backend/internal/logger"
	"contribution-rewards-backend/internal/service"
)

// jobTimeout bounds a single job run.
const jobTimeout = 5 * time.Minute

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	services *Services
	config   *config.Config
	now      service.Clock
}

// Services holds all service dependencies needed by jobs
type Services struct {
	Admin service.AdminService
	Stats service.StatsService
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(services *Services, cfg *config.Config, now service.Clock) *JobRunner {
	if now == nil {
		now = time.Now
	}
	return &JobRunner{
		services: services,
		config:   cfg,
		now:      now,
	}
}

func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func(ctx context.Context) error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	logger.Info("Starting job", "job", jobName)
	start := jr.now()
	if err := jobFunc(ctx); err != nil {
		logger.Error("Job failed", "job", jobName, "error", err)
		return
	}
	logger.Info("Job completed", "job", jobName, "duration", jr.now().Sub(start))
}

// RunAll runs every job once (for manual execution)
func (jr *JobRunner) RunAll() {
	jr.CleanupSampleUsers()
	jr.ReportMonthlyLeaderboard()
}
