package order

import (
	"errors"
	"strings"
	"time"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders carry a valid
	// identifier and token.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrStepNotMonotonic is returned when an advancement would move an order
	// backwards in the pipeline.
	ErrStepNotMonotonic = errors.New("status step may only move forward")
)

// DefaultCustomerName is used when an update does not carry a customer name.
const DefaultCustomerName = "Customer"

func errStepOutOfRange(v int) error {
	return errs.NewValueIsOutOfRangeError("status_step", v, int(StepReceived), int(StepDelivered))
}

// Order is the aggregate root for one tracked shop order.
//
// Invariants:
//   - the identifier is set and never changes
//   - the token is issued exactly once and never regenerated
//   - the step only moves forward, saturating at StepDelivered
//   - updatedAt is stamped on every mutation
//   - the tracker URL is kept consistent with identifier and token
type Order struct {
	id           kernel.OrderID
	customerName string
	step         Step
	token        kernel.Token
	updatedAt    time.Time
	trackerURL   string

	isConstructed bool
}

// NewOrder creates a fresh order at the given pipeline step, issuing its
// lookup token and stamping updatedAt to now. A blank customer name defaults
// to DefaultCustomerName; rawStep goes through NormalizeStep.
func NewOrder(id kernel.OrderID, customerName string, rawStep int, now time.Time) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(customerName)
	if name == "" {
		name = DefaultCustomerName
	}

	return &Order{
		id:            id,
		customerName:  name,
		step:          NormalizeStep(rawStep),
		token:         kernel.NewToken(),
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence without issuing a new
// token. The token may be the zero value for rows that predate token issuance;
// EnsureToken issues one on the next upsert. The step is normalized so that
// manually edited rows with out-of-range steps stay usable.
func RestoreOrder(
	id kernel.OrderID,
	customerName string,
	rawStep int,
	token kernel.Token,
	updatedAt time.Time,
	trackerURL string,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		customerName:  customerName,
		step:          NormalizeStep(rawStep),
		token:         token,
		updatedAt:     updatedAt,
		trackerURL:    trackerURL,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the external order identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// CustomerName returns the display name shown on the tracker page.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Step returns the current pipeline station.
func (o *Order) Step() Step {
	return o.step
}

// Token returns the lookup token. It is the zero token only for restored
// rows that have not been through an upsert yet.
func (o *Order) Token() kernel.Token {
	return o.token
}

// UpdatedAt returns the time of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// TrackerURL returns the shareable tracker link as last persisted.
func (o *Order) TrackerURL() string {
	return o.trackerURL
}

// ApplyUpdate merges a webhook update into the order.
//
// A blank customer name preserves the existing one. The step is normalized
// from raw input. The token is never touched once issued; a missing token is
// issued here. updatedAt is stamped to now.
func (o *Order) ApplyUpdate(customerName string, rawStep int, now time.Time) {
	if name := strings.TrimSpace(customerName); name != "" {
		o.customerName = name
	}
	o.step = NormalizeStep(rawStep)
	o.EnsureToken()
	o.updatedAt = now
}

// EnsureToken issues a token if the order has none.
// Reports whether a token was issued; an existing token is never replaced.
func (o *Order) EnsureToken() bool {
	if !o.token.IsZero() {
		return false
	}
	o.token = kernel.NewToken()
	return true
}

// RefreshTrackerURL stores the computed tracker link, reporting whether the
// stored value actually changed. Callers use the return value to skip writes
// when nothing moved.
func (o *Order) RefreshTrackerURL(url string) bool {
	if o.trackerURL == url {
		return false
	}
	o.trackerURL = url
	return true
}

// TouchUpdatedAt stamps updatedAt without changing anything else. Used by the
// advancement job to backfill rows whose timestamp is missing.
func (o *Order) TouchUpdatedAt(now time.Time) {
	o.updatedAt = now
}

// AdvanceTo moves the order forward to the given step, stamping updatedAt.
//
// The move must be monotonic: targets behind the current step return
// ErrStepNotMonotonic. Targets past StepDelivered are out of range.
func (o *Order) AdvanceTo(step Step, now time.Time) error {
	if err := step.Validate(); err != nil {
		return err
	}
	if step < o.step {
		return ErrStepNotMonotonic
	}

	o.step = step
	o.updatedAt = now
	return nil
}

// IsTerminal reports whether the order reached the final station.
func (o *Order) IsTerminal() bool {
	return o.step.IsTerminal()
}
