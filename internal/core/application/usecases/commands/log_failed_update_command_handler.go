package commands

import (
	"context"

	"ordertracker/internal/core/ports"
)

// LogFailedUpdateCommandHandler appends failed-update reports to the
// write-once update log.
type LogFailedUpdateCommandHandler struct {
	uowFactory UpdateLogUoWFactory
	now        Clock
}

// NewLogFailedUpdateCommandHandler creates a handler for failed-update reports.
func NewLogFailedUpdateCommandHandler(uowFactory UpdateLogUoWFactory, now Clock) LogFailedUpdateCommandHandler {
	return LogFailedUpdateCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle appends one log entry. Order records are never read or written here.
func (h *LogFailedUpdateCommandHandler) Handle(ctx context.Context, cmd LogFailedUpdateCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	entry := ports.UpdateLogEntry{
		LoggedAt:     h.now(),
		OrderID:      cmd.OrderID(),
		CustomerName: cmd.CustomerName(),
		StatusStep:   cmd.StatusStep(),
		Reason:       cmd.Reason(),
		RemoteIP:     cmd.RemoteIP(),
	}

	if err := uow.UpdateLogRepository().Append(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
