package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"ordertracker/internal/core/ports"
)

// BusinessCalendar implements the Israel business-day rules used by status
// advancement: Friday and Saturday are never business days, and neither is
// any date reported as an all-day holiday by one of the configured holiday
// providers.
//
// Providers form an ordered candidate chain. For each date the calendar asks
// them in turn and takes the first answer that arrives without error. When
// every provider fails the calendar degrades to the weekday-only rule; that
// state is logged once rather than silently swallowed, so a misconfigured
// calendar is visible in operation.
type BusinessCalendar struct {
	providers []ports.HolidayProvider
	location  *time.Location
	logger    *slog.Logger

	degradedOnce sync.Once
}

// NewBusinessCalendar creates a calendar over the given holiday provider
// chain. The location fixes the timezone in which "date" is interpreted.
// An empty provider chain is valid and yields weekday-only behavior.
func NewBusinessCalendar(
	providers []ports.HolidayProvider,
	location *time.Location,
	logger *slog.Logger,
) *BusinessCalendar {
	return &BusinessCalendar{
		providers: providers,
		location:  location,
		logger:    logger.With("component", "business_calendar"),
	}
}

// Location returns the timezone the calendar operates in.
func (c *BusinessCalendar) Location() *time.Location {
	return c.location
}

// DateOnly truncates a moment to its calendar date in the given location.
func DateOnly(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// IsBusinessDay reports whether the given date counts as a business day.
// Holiday provider failures never bubble up; they only shrink the rule set
// down to the weekday check.
func (c *BusinessCalendar) IsBusinessDay(ctx context.Context, day time.Time) bool {
	day = DateOnly(day, c.location)

	switch day.Weekday() {
	case time.Friday, time.Saturday:
		return false
	}

	return !c.isHoliday(ctx, day)
}

// AddBusinessDays returns the date reached by moving forward from the given
// date by n business days. The walk starts on the following calendar day, so
// a Wednesday plus one business day is Thursday.
func (c *BusinessCalendar) AddBusinessDays(ctx context.Context, from time.Time, n int) time.Time {
	day := DateOnly(from, c.location)
	for counted := 0; counted < n; {
		day = day.AddDate(0, 0, 1)
		if c.IsBusinessDay(ctx, day) {
			counted++
		}
	}
	return day
}

// isHoliday walks the provider chain, first successful answer wins.
func (c *BusinessCalendar) isHoliday(ctx context.Context, day time.Time) bool {
	for _, provider := range c.providers {
		holiday, err := provider.IsHoliday(ctx, day)
		if err != nil {
			c.logger.DebugContext(ctx, "Holiday provider failed, trying next candidate",
				"provider", provider.Name(), "date", day.Format(time.DateOnly), "error", err)
			continue
		}
		return holiday
	}

	if len(c.providers) > 0 {
		c.degradedOnce.Do(func() {
			c.logger.WarnContext(ctx, "All holiday providers failed, using weekday-only business-day rule")
		})
	}
	return false
}
