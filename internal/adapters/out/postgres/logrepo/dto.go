// Package logrepo persists the append-only log of failed order updates.
// Entries are written when the upstream shop automation reports that it could
// not apply an update; nothing in the service ever reads them back.
package logrepo

import (
	"time"

	"ordertracker/internal/core/ports"
)

// UpdateLogEntryDTO represents one row of the failed-update log.
// The surrogate key exists only because the table is append-only; rows carry
// no natural identifier.
type UpdateLogEntryDTO struct {
	ID           uint `gorm:"primaryKey;autoIncrement"`
	LoggedAt     time.Time
	OrderID      string `gorm:"size:128;index"`
	CustomerName string
	StatusStep   int
	Reason       string
	RemoteIP     string `gorm:"size:45"`
}

// TableName specifies the database table name for log entries.
func (UpdateLogEntryDTO) TableName() string {
	return "update_log"
}

func fromEntry(entry ports.UpdateLogEntry) UpdateLogEntryDTO {
	return UpdateLogEntryDTO{
		LoggedAt:     entry.LoggedAt,
		OrderID:      entry.OrderID,
		CustomerName: entry.CustomerName,
		StatusStep:   entry.StatusStep,
		Reason:       entry.Reason,
		RemoteIP:     entry.RemoteIP,
	}
}
