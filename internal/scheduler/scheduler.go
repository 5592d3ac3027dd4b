package scheduler

import (
	"contribution-rewards-backend/internal/jobs"
	"contribution-rewards-backend/internal/logger"

	"github.com/robfig/cron/v3"
)

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

// NewScheduler creates a new scheduler with the provided job runner. Specs
// use seconds precision and the ledger time zone.
func NewScheduler(jobRunner *jobs.JobRunner) *Scheduler {
	c := cron.New(
		cron.WithLocation(jobRunner.Config().Location()),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	s.registerJobs()
	return s
}

// registerJobs registers all scheduled jobs with the cron scheduler. An
// empty spec disables the job.
func (s *Scheduler) registerJobs() {
	cfg := s.jobs.Config().Scheduler

	s.register("CleanupSampleUsers", cfg.CleanupSamples, s.jobs.CleanupSampleUsers)
	s.register("ReportMonthlyLeaderboard", cfg.LeaderboardReport, s.jobs.ReportMonthlyLeaderboard)

	logger.Info("Cron jobs registered", "count", len(s.cron.Entries()))
}

func (s *Scheduler) register(name, spec string, job func()) {
	if spec == "" {
		logger.Info("Cron job disabled", "job", name)
		return
	}
	if _, err := s.cron.AddFunc(spec, job); err != nil {
		logger.Error("Failed to register cron job", "job", name, "spec", spec, "error", err)
	}
}

// Start begins the cron scheduler
func (s *Scheduler) Start() {
	logger.Info("Starting cron scheduler...")
	s.cron.Start()
	logger.Info("Cron scheduler started successfully")
}

// Stop gracefully stops the cron scheduler
func (s *Scheduler) Stop() {
	logger.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Cron scheduler stopped")
}

// IsRunning returns true if any job is scheduled
func (s *Scheduler) IsRunning() bool {
	return len(s.cron.Entries()) > 0
}
