package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/errs"

	"gorm.io/gorm"
)

// TrackOrderQueryHandler serves tracker page lookups straight from the
// database, bypassing the aggregate. Reads never mutate the order, so the
// handler works on a plain connection rather than a unit of work.
//
// Example:
//
//	handler := NewTrackOrderQueryHandler(db, loc)
//	query, _ := NewTrackOrderQuery("SO-1042", "1f8a9c0d2b3e4f5a")
//
//	status, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%s: %s\n", status.OrderID, status.StatusLabel)
type TrackOrderQueryHandler struct {
	db       *gorm.DB
	location *time.Location
}

// NewTrackOrderQueryHandler creates a handler for tracker lookups.
// The location controls how LastUpdated is rendered; pass the timezone the
// business operates in, not the server's.
func NewTrackOrderQueryHandler(db *gorm.DB, location *time.Location) TrackOrderQueryHandler {
	if location == nil {
		location = time.UTC
	}
	return TrackOrderQueryHandler{db: db, location: location}
}

// Handle looks up one order by identifier and token.
//
// Identifier and token are matched together in a single predicate, so an
// unknown order and a wrong token are indistinguishable to the caller: both
// come back as errs.ErrObjectNotFound.
func (h TrackOrderQueryHandler) Handle(
	ctx context.Context,
	query TrackOrderQuery,
) (TrackOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			customer_name,
			status_step,
			updated_at
		FROM orders
		WHERE order_id = ? AND token = ?
	`, query.OrderID(), query.Token()).Row()

	var (
		customerName string
		statusStep   int
		updatedAt    sql.NullTime
	)
	if err := row.Scan(&customerName, &statusStep, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TrackOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
		}
		return TrackOrderQueryResponse{}, err
	}

	step := order.NormalizeStep(statusStep)

	lastUpdated := ""
	if updatedAt.Valid {
		lastUpdated = updatedAt.Time.In(h.location).Format(time.DateOnly)
	}

	return TrackOrderQueryResponse{
		OrderID:      query.OrderID(),
		CustomerName: customerName,
		StatusStep:   int(step),
		StatusLabel:  step.String(),
		LastUpdated:  lastUpdated,
	}, nil
}
