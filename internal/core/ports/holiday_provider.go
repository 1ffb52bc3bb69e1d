package ports

import (
	"context"
	"time"
)

// HolidayProvider answers whether a given calendar date is an all-day public
// holiday. Implementations wrap external calendar sources; a failing provider
// returns an error so the business calendar can fall through to the next
// candidate in its list.
type HolidayProvider interface {
	// Name identifies the provider in logs.
	Name() string

	// IsHoliday reports whether the date (interpreted date-only) is a holiday.
	IsHoliday(ctx context.Context, day time.Time) (bool, error)
}
