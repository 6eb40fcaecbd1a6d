package jobs

import (
	"github.com/MysticHqra/Rydio/internal/config"
	"github.com/MysticHqra/Rydio/internal/logger"
	"github.com/MysticHqra/Rydio/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	bookingSvc service.BookingService
	config     *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(bookingSvc service.BookingService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		bookingSvc: bookingSvc,
		config:     cfg,
	}
}

// Config exposes the loaded configuration to the scheduler
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllJobs runs every job once (for manual execution via cmd/cronjob)
func (jr *JobRunner) RunAllJobs() {
	jr.AutoActivateBookings()
	jr.FlagOverdueBookings()
}
