package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"ordertracker/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop background jobs.
type JobManager struct {
	statusAdvancementJob *StatusAdvancementJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	advanceStatusesHandler commands.AdvanceStatusesCommandHandler,
	advancementSchedule string,
	location *time.Location,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		statusAdvancementJob: NewStatusAdvancementJob(advanceStatusesHandler, advancementSchedule, location, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.statusAdvancementJob.Start(); err != nil {
		return fmt.Errorf("failed to start status advancement job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.statusAdvancementJob.Stop()
}
