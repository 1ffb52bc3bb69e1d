package commands

import (
	"context"

	"ordertracker/internal/core/domain/services"
)

// RefreshTrackerLinksResult reports how many stored links actually changed.
type RefreshTrackerLinksResult struct {
	Scanned   int
	Refreshed int
}

// RefreshTrackerLinksCommandHandler recomputes tracker links across all
// orders. Rows whose computed link equals the stored one are left untouched,
// so repeated runs are idempotent and write nothing.
type RefreshTrackerLinksCommandHandler struct {
	uowFactory OrderUoWFactory
	links      services.TrackerLinkBuilder
}

// NewRefreshTrackerLinksCommandHandler creates a handler for the link backfill.
func NewRefreshTrackerLinksCommandHandler(
	uowFactory OrderUoWFactory,
	links services.TrackerLinkBuilder,
) RefreshTrackerLinksCommandHandler {
	return RefreshTrackerLinksCommandHandler{
		uowFactory: uowFactory,
		links:      links,
	}
}

// Handle walks every order and persists only rows whose link or token changed.
func (h *RefreshTrackerLinksCommandHandler) Handle(
	ctx context.Context,
	cmd RefreshTrackerLinksCommand,
) (RefreshTrackerLinksResult, error) {
	if err := cmd.Validate(); err != nil {
		return RefreshTrackerLinksResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RefreshTrackerLinksResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	orders, err := repo.GetAll(ctx)
	if err != nil {
		return RefreshTrackerLinksResult{}, err
	}

	result := RefreshTrackerLinksResult{Scanned: len(orders)}

	for _, o := range orders {
		issued := o.EnsureToken()
		changed := o.RefreshTrackerURL(h.links.Build(o.ID(), o.Token()))
		if !issued && !changed {
			continue
		}

		if err = repo.Update(ctx, o); err != nil {
			return RefreshTrackerLinksResult{}, err
		}
		result.Refreshed++
	}

	if err = uow.Commit(ctx); err != nil {
		return RefreshTrackerLinksResult{}, err
	}

	return result, nil
}
