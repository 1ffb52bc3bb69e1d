package jobs

import (
	"context"
	"log/slog"
	"time"

	"ordertracker/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StatusAdvancementJob runs the daily order advancement pass.
// The schedule is evaluated in the business timezone so "every morning"
// means the shop's morning, not the server's.
type StatusAdvancementJob struct {
	handler  commands.AdvanceStatusesCommandHandler
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

// NewStatusAdvancementJob creates the daily advancement job.
// The schedule is a standard five-field cron expression, e.g. "0 7 * * *"
// for seven in the morning in the given location.
func NewStatusAdvancementJob(
	handler commands.AdvanceStatusesCommandHandler,
	schedule string,
	location *time.Location,
	logger *slog.Logger,
) *StatusAdvancementJob {
	return &StatusAdvancementJob{
		handler:  handler,
		cron:     cron.New(cron.WithLocation(location)),
		schedule: schedule,
		logger:   logger.With("component", "status_advancement_job"),
	}
}

// Start begins the advancement job on its schedule.
func (j *StatusAdvancementJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewAdvanceStatusesCommand()

		result, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Status advancement pass failed", "error", handleErr)
			return
		}

		j.logger.InfoContext(ctx, "Status advancement pass finished",
			"processed", result.Processed, "advanced", result.Advanced)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Status advancement job started", "schedule", j.schedule)
	return nil
}

// Stop stops the advancement job.
func (j *StatusAdvancementJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Status advancement job stopped")
}
