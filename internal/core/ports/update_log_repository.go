package ports

import (
	"context"
	"time"
)

// UpdateLogEntry is one append-only record of a failed order update reported
// by the upstream automation. Entries are written once and never read back by
// this service; they exist for manual inspection.
type UpdateLogEntry struct {
	LoggedAt     time.Time
	OrderID      string
	CustomerName string
	StatusStep   int
	Reason       string
	RemoteIP     string
}

// UpdateLogRepository defines the persistence contract for the failed-update log.
type UpdateLogRepository interface {
	// Append writes one log entry. Entries are immutable once written.
	Append(ctx context.Context, entry UpdateLogEntry) error
}
