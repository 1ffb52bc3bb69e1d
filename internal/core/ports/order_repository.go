// Package ports defines the contracts between the order tracking core and
// its infrastructure: persistence for orders and the failed-update log, the
// unit of work boundary, and the holiday calendar collaborators used by the
// business-day rules.
package ports

import (
	"context"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are keyed by their external identifier; there is exactly one row
// per identifier.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and its identifier must not already exist.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its external identifier.
	// Returns an ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetAllUnfinished retrieves every order that has not reached the terminal
	// step. Used by the daily advancement job as its batch read.
	GetAllUnfinished(ctx context.Context) ([]*order.Order, error)

	// GetAll retrieves every tracked order. Used by the tracker-link backfill.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
