// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The external shop identifier is the primary key: the table holds exactly
// one row per order, and webhooks upsert against it.
type OrderDTO struct {
	OrderID      string `gorm:"primaryKey;size:128"`
	CustomerName string
	StatusStep   int
	Token        string `gorm:"size:16;index"`
	UpdatedAt    time.Time
	TrackerURL   string
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// An unissued token is stored as the empty string.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		OrderID:      aggregate.ID().String(),
		CustomerName: aggregate.CustomerName(),
		StatusStep:   int(aggregate.Step()),
		Token:        aggregate.Token().String(),
		UpdatedAt:    aggregate.UpdatedAt(),
		TrackerURL:   aggregate.TrackerURL(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder. Rows written before token issuance restore with a zero token.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewOrderID(dto.OrderID)
	if err != nil {
		return nil, err
	}

	var token kernel.Token
	if dto.Token != "" {
		token, err = kernel.TokenFromString(dto.Token)
		if err != nil {
			return nil, err
		}
	}

	return order.RestoreOrder(
		id,
		dto.CustomerName,
		dto.StatusStep,
		token,
		dto.UpdatedAt,
		dto.TrackerURL,
	)
}
