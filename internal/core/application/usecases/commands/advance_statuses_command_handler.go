package commands

import (
	"context"
	"log/slog"

	"ordertracker/internal/core/domain/services"
)

// AdvanceStatusesResult summarizes one advancement pass.
type AdvanceStatusesResult struct {
	// Processed is the number of non-terminal orders examined.
	Processed int

	// Advanced is the number of orders whose record changed (step moved
	// forward or missing timestamp backfilled).
	Advanced int
}

// AdvanceStatusesCommandHandler runs the daily advancement pass: one batch
// read of all unfinished orders, the StatusAdvancer per order, and one
// transaction for all writes.
//
// A failure on a single order is logged and skipped so one bad row cannot
// stall the rest of the batch; the write transaction itself is atomic.
type AdvanceStatusesCommandHandler struct {
	uowFactory OrderUoWFactory
	advancer   services.StatusAdvancer
	now        Clock
	logger     *slog.Logger
}

// NewAdvanceStatusesCommandHandler creates a handler for the daily
// advancement pass.
func NewAdvanceStatusesCommandHandler(
	uowFactory OrderUoWFactory,
	advancer services.StatusAdvancer,
	now Clock,
	logger *slog.Logger,
) AdvanceStatusesCommandHandler {
	return AdvanceStatusesCommandHandler{
		uowFactory: uowFactory,
		advancer:   advancer,
		now:        now,
		logger:     logger.With("component", "advance_statuses"),
	}
}

// Handle runs one advancement pass over every unfinished order.
func (h *AdvanceStatusesCommandHandler) Handle(
	ctx context.Context,
	cmd AdvanceStatusesCommand,
) (AdvanceStatusesResult, error) {
	if err := cmd.Validate(); err != nil {
		return AdvanceStatusesResult{}, err
	}

	now := h.now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AdvanceStatusesResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	orders, err := repo.GetAllUnfinished(ctx)
	if err != nil {
		return AdvanceStatusesResult{}, err
	}

	result := AdvanceStatusesResult{Processed: len(orders)}

	for _, o := range orders {
		changed, advErr := h.advancer.Advance(ctx, o, now)
		if advErr != nil {
			h.logger.ErrorContext(ctx, "Skipping order after advancement failure",
				"order_id", o.ID().String(), "error", advErr)
			continue
		}
		if !changed {
			continue
		}

		if err = repo.Update(ctx, o); err != nil {
			return AdvanceStatusesResult{}, err
		}
		result.Advanced++
	}

	if err = uow.Commit(ctx); err != nil {
		return AdvanceStatusesResult{}, err
	}

	return result, nil
}
