package services

import (
	"context"
	"time"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/errs"
)

// StepDurations maps each pipeline step to the number of business days an
// order sits at that step before the daily job moves it forward. Steps with
// no mapping never advance automatically; the terminal step needs none.
type StepDurations map[order.Step]int

// DefaultStepDurations returns the production dwell times:
// one business day at Received, two at Processing, one at Shipped.
func DefaultStepDurations() StepDurations {
	return StepDurations{
		order.StepReceived:   1,
		order.StepProcessing: 2,
		order.StepShipped:    1,
	}
}

// Validate checks that every configured dwell time is positive.
func (d StepDurations) Validate() error {
	for step, days := range d {
		if err := step.Validate(); err != nil {
			return err
		}
		if days <= 0 {
			return errs.NewValueIsInvalidError("step duration")
		}
	}
	return nil
}

// StatusAdvancer is the domain service behind the daily advancement job.
// Given an order and the current moment it decides how many pipeline steps
// the order has earned since its last update, counting only business days.
//
// Catch-up semantics: an order untouched for a long stretch advances through
// several steps in one call. After each advanced step the reference date
// moves to that step's due date, so dwell times accumulate the same way they
// would have if the job had run every day.
//
// Example:
//
//	advancer, _ := services.NewStatusAdvancer(calendar, services.DefaultStepDurations())
//	changed, err := advancer.Advance(ctx, o, time.Now())
//	if changed {
//	    // persist o
//	}
type StatusAdvancer struct {
	calendar  *BusinessCalendar
	durations StepDurations
}

// NewStatusAdvancer creates a StatusAdvancer over the given calendar and
// per-step dwell times.
func NewStatusAdvancer(calendar *BusinessCalendar, durations StepDurations) (StatusAdvancer, error) {
	if err := durations.Validate(); err != nil {
		return StatusAdvancer{}, err
	}
	return StatusAdvancer{calendar: calendar, durations: durations}, nil
}

// Advance applies the elapsed business-day rules to one order as of now.
// Reports whether the order changed: either its step advanced or a missing
// last-update timestamp was backfilled. Terminal orders are never touched.
//
// The caller owns persistence; Advance mutates only the in-memory aggregate.
func (a StatusAdvancer) Advance(ctx context.Context, o *order.Order, now time.Time) (bool, error) {
	if err := o.Validate(); err != nil {
		return false, err
	}
	if o.IsTerminal() {
		return false, nil
	}

	loc := a.calendar.Location()
	today := DateOnly(now, loc)
	changed := false

	var ref time.Time
	if o.UpdatedAt().IsZero() {
		// Missing timestamp: treat the order as updated today and backfill.
		ref = today
		o.TouchUpdatedAt(now)
		changed = true
	} else {
		ref = DateOnly(o.UpdatedAt(), loc)
	}

	step := o.Step()
	progressed := false
	for !step.IsTerminal() {
		need, ok := a.durations[step]
		if !ok {
			break
		}

		due := a.calendar.AddBusinessDays(ctx, ref, need)
		if today.Before(due) {
			break
		}

		step = step.Next()
		ref = due
		progressed = true
	}

	if progressed {
		if err := o.AdvanceTo(step, now); err != nil {
			return false, err
		}
		changed = true
	}

	return changed, nil
}
