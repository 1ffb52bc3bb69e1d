package order

// Step represents the position of an order in the fulfillment pipeline.
// It is a small state machine with four stations; orders only move forward.
//
//	Received (1) ──> Processing (2) ──> Shipped (3) ──> Delivered (4)
//
// Delivered is terminal: the daily advancement job never moves an order
// past it, and manual edits are the only way to change a delivered order.
//
// Step values arrive from webhooks as loosely typed JSON, so NormalizeStep
// is the canonical entry point for external input: anything that is not a
// step in [Received, Delivered] collapses to Received, values above
// Delivered clamp to Delivered.
type Step int

const (
	// StepReceived is the initial station: the order exists and is queued.
	StepReceived Step = iota + 1

	// StepProcessing means the order is being prepared.
	StepProcessing

	// StepShipped means the order has left for delivery.
	StepShipped

	// StepDelivered is the terminal station. No further advancement.
	StepDelivered
)

// NormalizeStep maps arbitrary integer input onto a valid Step.
// Non-positive values default to StepReceived; values past StepDelivered
// clamp to StepDelivered.
func NormalizeStep(raw int) Step {
	if raw < int(StepReceived) {
		return StepReceived
	}
	if raw > int(StepDelivered) {
		return StepDelivered
	}
	return Step(raw)
}

// String returns the human-readable station name.
func (s Step) String() string {
	switch s {
	case StepReceived:
		return "Received"
	case StepProcessing:
		return "Processing"
	case StepShipped:
		return "Shipped"
	case StepDelivered:
		return "Delivered"
	}
	return "Unknown"
}

// IsTerminal reports whether the step allows no further advancement.
func (s Step) IsTerminal() bool {
	return s >= StepDelivered
}

// Next returns the following station, saturating at StepDelivered.
func (s Step) Next() Step {
	if s.IsTerminal() {
		return StepDelivered
	}
	return s + 1
}

// Validate checks that the step is one of the four defined stations.
func (s Step) Validate() error {
	if s < StepReceived || s > StepDelivered {
		return errStepOutOfRange(int(s))
	}
	return nil
}
