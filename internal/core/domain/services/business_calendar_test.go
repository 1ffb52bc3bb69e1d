package services_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"ordertracker/internal/core/domain/services"
	"ordertracker/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHolidayProvider answers from a fixed date set, or always fails.
type fakeHolidayProvider struct {
	name     string
	holidays map[string]bool
	err      error
}

func (p *fakeHolidayProvider) Name() string { return p.name }

func (p *fakeHolidayProvider) IsHoliday(_ context.Context, day time.Time) (bool, error) {
	if p.err != nil {
		return false, p.err
	}
	return p.holidays[day.Format(time.DateOnly)], nil
}

func date(t *testing.T, value string) time.Time {
	t.Helper()
	day, err := time.Parse(time.DateOnly, value)
	require.NoError(t, err)
	return day
}

func newCalendar(providers ...ports.HolidayProvider) *services.BusinessCalendar {
	return services.NewBusinessCalendar(providers, time.UTC, slog.Default())
}

func TestBusinessCalendar_IsBusinessDay(t *testing.T) {
	ctx := t.Context()

	t.Run("friday_and_saturday_are_never_business_days", func(t *testing.T) {
		cal := newCalendar()

		assert.False(t, cal.IsBusinessDay(ctx, date(t, "2025-03-14"))) // Friday
		assert.False(t, cal.IsBusinessDay(ctx, date(t, "2025-03-15"))) // Saturday
	})

	t.Run("sunday_through_thursday_are_business_days", func(t *testing.T) {
		cal := newCalendar()

		assert.True(t, cal.IsBusinessDay(ctx, date(t, "2025-03-16"))) // Sunday
		assert.True(t, cal.IsBusinessDay(ctx, date(t, "2025-03-17"))) // Monday
		assert.True(t, cal.IsBusinessDay(ctx, date(t, "2025-03-13"))) // Thursday
	})

	t.Run("holiday_excludes_an_otherwise_working_day", func(t *testing.T) {
		cal := newCalendar(&fakeHolidayProvider{
			name:     "static",
			holidays: map[string]bool{"2025-03-13": true},
		})

		assert.False(t, cal.IsBusinessDay(ctx, date(t, "2025-03-13")))
		assert.True(t, cal.IsBusinessDay(ctx, date(t, "2025-03-12")))
	})

	t.Run("failed_provider_falls_through_to_next_candidate", func(t *testing.T) {
		broken := &fakeHolidayProvider{name: "broken", err: errors.New("calendar unreachable")}
		working := &fakeHolidayProvider{
			name:     "static",
			holidays: map[string]bool{"2025-03-13": true},
		}
		cal := newCalendar(broken, working)

		assert.False(t, cal.IsBusinessDay(ctx, date(t, "2025-03-13")))
	})

	t.Run("all_providers_failing_degrades_to_weekday_rule", func(t *testing.T) {
		broken := &fakeHolidayProvider{name: "broken", err: errors.New("calendar unreachable")}
		cal := newCalendar(broken)

		assert.True(t, cal.IsBusinessDay(ctx, date(t, "2025-03-13")))  // Thursday
		assert.False(t, cal.IsBusinessDay(ctx, date(t, "2025-03-14"))) // Friday still excluded
	})
}

func TestBusinessCalendar_AddBusinessDays(t *testing.T) {
	ctx := t.Context()

	t.Run("wednesday_plus_one_is_thursday", func(t *testing.T) {
		cal := newCalendar()

		due := cal.AddBusinessDays(ctx, date(t, "2025-03-12"), 1)

		assert.Equal(t, "2025-03-13", due.Format(time.DateOnly))
	})

	t.Run("thursday_plus_one_skips_the_weekend_to_sunday", func(t *testing.T) {
		cal := newCalendar()

		due := cal.AddBusinessDays(ctx, date(t, "2025-03-13"), 1)

		assert.Equal(t, "2025-03-16", due.Format(time.DateOnly))
	})

	t.Run("holiday_pushes_the_due_date_out", func(t *testing.T) {
		cal := newCalendar(&fakeHolidayProvider{
			name:     "static",
			holidays: map[string]bool{"2025-03-13": true},
		})

		// Wednesday + 1: Thursday is a holiday, Fri/Sat are weekend.
		due := cal.AddBusinessDays(ctx, date(t, "2025-03-12"), 1)

		assert.Equal(t, "2025-03-16", due.Format(time.DateOnly))
	})

	t.Run("multiple_business_days", func(t *testing.T) {
		cal := newCalendar()

		// Wednesday + 3: Thu, (Fri/Sat skipped), Sun, Mon.
		due := cal.AddBusinessDays(ctx, date(t, "2025-03-12"), 3)

		assert.Equal(t, "2025-03-17", due.Format(time.DateOnly))
	})
}

func TestDateOnly(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jerusalem")
	require.NoError(t, err)

	// 23:30 UTC is already the next day in Israel.
	moment := time.Date(2025, 3, 12, 23, 30, 0, 0, time.UTC)
	day := services.DateOnly(moment, loc)

	assert.Equal(t, "2025-03-13", day.Format(time.DateOnly))
	assert.Equal(t, loc, day.Location())
}
