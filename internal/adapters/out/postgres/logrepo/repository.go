package logrepo

import (
	"context"

	"ordertracker/internal/core/ports"

	"gorm.io/gorm"
)

// GormUpdateLogRepository implements UpdateLogRepository using GORM.
type GormUpdateLogRepository struct {
	db *gorm.DB
}

// NewGormUpdateLogRepository creates a new GORM failed-update log repository.
func NewGormUpdateLogRepository(db *gorm.DB) *GormUpdateLogRepository {
	return &GormUpdateLogRepository{db: db}
}

// Append writes one log entry. Entries are immutable once written.
func (r *GormUpdateLogRepository) Append(ctx context.Context, entry ports.UpdateLogEntry) error {
	dto := fromEntry(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}
