package commands

import (
	"errors"

	"ordertracker/internal/pkg/guard"
)

var (
	ErrLogFailedUpdateCommandIsNotConstructed = errors.New(
		"LogFailedUpdateCommand must be created via NewLogFailedUpdateCommand constructor",
	)
)

// LogFailedUpdateCommand records a failed-update event reported by the
// upstream automation. All fields are optional passthrough; the log is a
// diagnostic sink, not order data, and never touches an order record.
type LogFailedUpdateCommand struct {
	orderID      string
	customerName string
	statusStep   int
	reason       string
	remoteIP     string

	guard guard.ConstructorGuard
}

// NewLogFailedUpdateCommand creates a failed-update log command.
// Fields are stored verbatim; an empty order identifier is allowed because
// the upstream failure may be exactly that the identifier was missing.
func NewLogFailedUpdateCommand(orderID, customerName string, statusStep int, reason, remoteIP string) LogFailedUpdateCommand {
	return LogFailedUpdateCommand{
		orderID:      orderID,
		customerName: customerName,
		statusStep:   statusStep,
		reason:       reason,
		remoteIP:     remoteIP,
		guard:        guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c LogFailedUpdateCommand) Validate() error {
	return c.guard.Validate(ErrLogFailedUpdateCommandIsNotConstructed)
}

// OrderID returns the order identifier as reported, possibly empty.
func (c LogFailedUpdateCommand) OrderID() string {
	return c.orderID
}

// CustomerName returns the customer name as reported.
func (c LogFailedUpdateCommand) CustomerName() string {
	return c.customerName
}

// StatusStep returns the status step as reported.
func (c LogFailedUpdateCommand) StatusStep() int {
	return c.statusStep
}

// Reason returns the upstream failure description.
func (c LogFailedUpdateCommand) Reason() string {
	return c.reason
}

// RemoteIP returns the address the report arrived from.
func (c LogFailedUpdateCommand) RemoteIP() string {
	return c.remoteIP
}
