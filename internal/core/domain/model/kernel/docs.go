// Package kernel contains the shared value objects of the order tracking domain:
// the external order identifier and the per-order lookup token.
//
// Both types are immutable value objects. Their zero values are invalid and
// fail Validate, so aggregates can detect fields that bypassed a constructor.
package kernel
