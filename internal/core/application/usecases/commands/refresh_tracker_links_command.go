package commands

import (
	"errors"

	"ordertracker/internal/pkg/guard"
)

var (
	ErrRefreshTrackerLinksCommandIsNotConstructed = errors.New(
		"RefreshTrackerLinksCommand must be created via NewRefreshTrackerLinksCommand constructor",
	)
)

// RefreshTrackerLinksCommand recomputes the tracker URL for every order,
// issuing tokens to rows that predate token issuance. Used after a base URL
// or branding change to backfill all stored links.
type RefreshTrackerLinksCommand struct {
	guard guard.ConstructorGuard
}

// NewRefreshTrackerLinksCommand creates a link backfill command.
func NewRefreshTrackerLinksCommand() RefreshTrackerLinksCommand {
	return RefreshTrackerLinksCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c RefreshTrackerLinksCommand) Validate() error {
	return c.guard.Validate(ErrRefreshTrackerLinksCommandIsNotConstructed)
}
