package commands

import (
	"errors"

	"ordertracker/internal/pkg/guard"
)

var (
	ErrAdvanceStatusesCommandIsNotConstructed = errors.New(
		"AdvanceStatusesCommand must be created via NewAdvanceStatusesCommand constructor",
	)
)

// AdvanceStatusesCommand triggers one pass of the daily status advancement:
// every non-terminal order is checked against the business-day rules and
// moved forward where enough time has elapsed.
type AdvanceStatusesCommand struct {
	guard guard.ConstructorGuard
}

// NewAdvanceStatusesCommand creates a command for one advancement pass.
func NewAdvanceStatusesCommand() AdvanceStatusesCommand {
	return AdvanceStatusesCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c AdvanceStatusesCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceStatusesCommandIsNotConstructed)
}
