// Package services contains the domain services of the order tracker:
//
//   - BusinessCalendar decides which calendar days count as business days
//     under the Israel working-week rules (Friday and Saturday off) combined
//     with an ordered chain of holiday providers.
//   - StatusAdvancer applies the elapsed-business-day rules that move orders
//     through the fulfillment pipeline, including multi-step catch-up after
//     quiet periods.
//   - TrackerLinkBuilder composes the shareable tracker URL from an order
//     identifier, its lookup token and optional branding parameters.
//
// All three are pure with respect to storage: they operate on aggregates and
// values handed to them and leave persistence to the application layer.
package services
