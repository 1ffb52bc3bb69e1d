// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"ordertracker/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// UpdateLogRepoFactory provides access to the failed-update log within a transaction.
	UpdateLogRepoFactory interface {
		UpdateLogRepository() ports.UpdateLogRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by the upsert, advancement and link-refresh commands.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UpdateLogUoW manages transactions for failed-update log appends.
	UpdateLogUoW interface {
		TxManager
		UpdateLogRepoFactory
	}

	// UpdateLogUoWFactory creates new update-log unit of work instances.
	UpdateLogUoWFactory interface {
		Create() UpdateLogUoW
	}
)
