package commands

import (
	"context"
	"errors"
	"time"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/core/domain/services"
	"ordertracker/internal/pkg/errs"
)

// Clock supplies the current moment to command handlers. Production wiring
// passes time.Now; tests pass a fixed moment.
type Clock func() time.Time

// UpsertOrderResult reports the outcome of an upsert back to the webhook
// caller: the affected order, its token and the tracker link to hand out.
type UpsertOrderResult struct {
	OrderID    string
	Token      string
	TrackerURL string
	StatusStep int
	Created    bool
}

// UpsertOrderCommandHandler handles the find-or-create logic behind webhook
// order updates.
//
// Semantics:
//   - a new identifier creates the order and issues its token
//   - an existing identifier merges the update; a blank customer name
//     preserves the stored one
//   - the token is never regenerated once issued
//   - the tracker URL is recomputed from the current identifier and token
//   - updated_at is stamped to the current moment
//
// Concurrent upserts on the same identifier are last-write-wins per field;
// each call runs in its own transaction but no cross-call ordering is
// guaranteed.
type UpsertOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	links      services.TrackerLinkBuilder
	now        Clock
}

// NewUpsertOrderCommandHandler creates a handler for webhook order upserts.
func NewUpsertOrderCommandHandler(
	uowFactory OrderUoWFactory,
	links services.TrackerLinkBuilder,
	now Clock,
) UpsertOrderCommandHandler {
	return UpsertOrderCommandHandler{
		uowFactory: uowFactory,
		links:      links,
		now:        now,
	}
}

// Handle processes one upsert command inside a transaction.
func (h *UpsertOrderCommandHandler) Handle(ctx context.Context, cmd UpsertOrderCommand) (UpsertOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return UpsertOrderResult{}, err
	}

	now := h.now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UpsertOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	existing, err := repo.Get(ctx, cmd.OrderID())
	created := false

	switch {
	case err == nil:
		existing.ApplyUpdate(cmd.CustomerName(), cmd.StatusStep(), now)
		existing.RefreshTrackerURL(h.links.Build(existing.ID(), existing.Token()))
		if err = repo.Update(ctx, existing); err != nil {
			return UpsertOrderResult{}, err
		}

	case errors.Is(err, errs.ErrObjectNotFound):
		existing, err = order.NewOrder(cmd.OrderID(), cmd.CustomerName(), cmd.StatusStep(), now)
		if err != nil {
			return UpsertOrderResult{}, err
		}
		existing.RefreshTrackerURL(h.links.Build(existing.ID(), existing.Token()))
		if err = repo.Add(ctx, existing); err != nil {
			return UpsertOrderResult{}, err
		}
		created = true

	default:
		return UpsertOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return UpsertOrderResult{}, err
	}

	return UpsertOrderResult{
		OrderID:    existing.ID().String(),
		Token:      existing.Token().String(),
		TrackerURL: existing.TrackerURL(),
		StatusStep: int(existing.Step()),
		Created:    created,
	}, nil
}
