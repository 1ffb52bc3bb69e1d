package services_test

import (
	"testing"
	"time"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdvancer(t *testing.T, cal *services.BusinessCalendar) services.StatusAdvancer {
	t.Helper()
	advancer, err := services.NewStatusAdvancer(cal, services.DefaultStepDurations())
	require.NoError(t, err)
	return advancer
}

func orderAtStep(t *testing.T, step int, updatedAt time.Time) *order.Order {
	t.Helper()
	id, err := kernel.NewOrderID("SO-1")
	require.NoError(t, err)
	o, err := order.RestoreOrder(id, "Dana", step, kernel.NewToken(), updatedAt, "")
	require.NoError(t, err)
	return o
}

func TestNewStatusAdvancer(t *testing.T) {
	t.Run("rejects_non_positive_durations", func(t *testing.T) {
		_, err := services.NewStatusAdvancer(newCalendar(), services.StepDurations{
			order.StepReceived: 0,
		})
		require.Error(t, err)
	})

	t.Run("rejects_durations_for_invalid_steps", func(t *testing.T) {
		_, err := services.NewStatusAdvancer(newCalendar(), services.StepDurations{
			order.Step(9): 1,
		})
		require.Error(t, err)
	})
}

func TestStatusAdvancer_Advance(t *testing.T) {
	ctx := t.Context()

	t.Run("does_not_advance_before_the_due_date", func(t *testing.T) {
		// Updated Wednesday, checked the same Wednesday: due is Thursday.
		o := orderAtStep(t, 1, date(t, "2025-03-12"))
		advancer := newAdvancer(t, newCalendar())

		changed, err := advancer.Advance(ctx, o, date(t, "2025-03-12"))

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, order.StepReceived, o.Step())
	})

	t.Run("advances_one_step_on_the_due_date", func(t *testing.T) {
		o := orderAtStep(t, 1, date(t, "2025-03-12"))
		advancer := newAdvancer(t, newCalendar())

		now := date(t, "2025-03-13").Add(7 * time.Hour)
		changed, err := advancer.Advance(ctx, o, now)

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, order.StepProcessing, o.Step())
		assert.Equal(t, now, o.UpdatedAt())
	})

	t.Run("weekend_does_not_count_toward_the_dwell_time", func(t *testing.T) {
		// Updated Thursday; Friday and Saturday do not count, due is Sunday.
		o := orderAtStep(t, 1, date(t, "2025-03-13"))
		advancer := newAdvancer(t, newCalendar())

		changed, err := advancer.Advance(ctx, o, date(t, "2025-03-15")) // Saturday
		require.NoError(t, err)
		assert.False(t, changed)

		changed, err = advancer.Advance(ctx, o, date(t, "2025-03-16")) // Sunday
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, order.StepProcessing, o.Step())
	})

	t.Run("holiday_defers_advancement", func(t *testing.T) {
		cal := newCalendar(&fakeHolidayProvider{
			name:     "static",
			holidays: map[string]bool{"2025-03-13": true},
		})
		o := orderAtStep(t, 1, date(t, "2025-03-12"))
		advancer := newAdvancer(t, cal)

		changed, err := advancer.Advance(ctx, o, date(t, "2025-03-13"))
		require.NoError(t, err)
		assert.False(t, changed)

		changed, err = advancer.Advance(ctx, o, date(t, "2025-03-16"))
		require.NoError(t, err)
		assert.True(t, changed)
	})

	t.Run("long_gap_catches_up_through_multiple_steps", func(t *testing.T) {
		// Ten calendar days at step 1 cover all remaining dwell times
		// (1 + 2 + 1 business days), so one run reaches the final step.
		o := orderAtStep(t, 1, date(t, "2025-03-12"))
		advancer := newAdvancer(t, newCalendar())

		changed, err := advancer.Advance(ctx, o, date(t, "2025-03-22"))

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, order.StepDelivered, o.Step())
	})

	t.Run("catch_up_stops_at_the_first_unearned_step", func(t *testing.T) {
		// Due chain from Wednesday: step 2 on Thursday, step 3 on the
		// following Monday. On Sunday only the first advancement is earned.
		o := orderAtStep(t, 1, date(t, "2025-03-12"))
		advancer := newAdvancer(t, newCalendar())

		changed, err := advancer.Advance(ctx, o, date(t, "2025-03-16"))

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, order.StepProcessing, o.Step())
	})

	t.Run("terminal_step_is_never_touched", func(t *testing.T) {
		o := orderAtStep(t, 4, date(t, "2025-01-01"))
		advancer := newAdvancer(t, newCalendar())

		changed, err := advancer.Advance(ctx, o, date(t, "2025-03-16"))

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, order.StepDelivered, o.Step())
	})

	t.Run("step_without_configured_duration_stays_put", func(t *testing.T) {
		advancer, err := services.NewStatusAdvancer(newCalendar(), services.StepDurations{
			order.StepReceived: 1,
		})
		require.NoError(t, err)

		o := orderAtStep(t, 2, date(t, "2025-03-01"))
		changed, err := advancer.Advance(ctx, o, date(t, "2025-03-16"))

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, order.StepProcessing, o.Step())
	})

	t.Run("missing_timestamp_is_backfilled_without_advancing", func(t *testing.T) {
		o := orderAtStep(t, 1, time.Time{})
		advancer := newAdvancer(t, newCalendar())

		now := date(t, "2025-03-12").Add(7 * time.Hour)
		changed, err := advancer.Advance(ctx, o, now)

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, order.StepReceived, o.Step())
		assert.Equal(t, now, o.UpdatedAt())
	})

	t.Run("unconstructed_order_is_rejected", func(t *testing.T) {
		advancer := newAdvancer(t, newCalendar())

		var o order.Order
		_, err := advancer.Advance(ctx, &o, time.Now())

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}
