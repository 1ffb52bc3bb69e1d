package commands

import (
	"errors"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/pkg/guard"
)

var (
	ErrUpsertOrderCommandIsNotConstructed = errors.New(
		"UpsertOrderCommand must be created via NewUpsertOrderCommand constructor",
	)
)

// UpsertOrderCommand represents one inbound order update from the webhook:
// create the order if its identifier is unknown, otherwise merge the update
// into the existing record.
//
// Example:
//
//	id, _ := kernel.NewOrderID("SO-1042")
//	cmd, err := commands.NewUpsertOrderCommand(id, "Dana", 2)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
type UpsertOrderCommand struct {
	orderID      kernel.OrderID
	customerName string
	statusStep   int

	guard guard.ConstructorGuard
}

// NewUpsertOrderCommand creates an upsert command for the given order.
// The customer name may be blank (the existing name is then preserved) and
// the status step may be any integer (it is normalized during the upsert).
func NewUpsertOrderCommand(orderID kernel.OrderID, customerName string, statusStep int) (UpsertOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpsertOrderCommand{}, err
	}

	return UpsertOrderCommand{
		orderID:      orderID,
		customerName: customerName,
		statusStep:   statusStep,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpsertOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpsertOrderCommandIsNotConstructed)
}

// OrderID returns the external order identifier.
func (c UpsertOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// CustomerName returns the customer display name carried by the update.
func (c UpsertOrderCommand) CustomerName() string {
	return c.customerName
}

// StatusStep returns the raw status step carried by the update.
func (c UpsertOrderCommand) StatusStep() int {
	return c.statusStep
}
