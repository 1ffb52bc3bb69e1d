// Package order contains the Order aggregate and its Step state machine.
//
// An Order mirrors one row of the backing orders table: external identifier,
// customer display name, pipeline step, lookup token, last-update timestamp
// and the derived tracker URL. The aggregate owns the rules that the webhook
// upsert, the public lookup and the daily advancement job all rely on:
// tokens are issued once and never regenerated, steps only move forward, and
// StepDelivered is terminal.
package order
