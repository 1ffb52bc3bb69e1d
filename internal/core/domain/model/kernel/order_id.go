package kernel

import (
	"strings"

	"ordertracker/internal/pkg/errs"
)

// ErrOrderIDIsRequired indicates an empty or whitespace-only order identifier.
var ErrOrderIDIsRequired = errs.NewValueIsRequiredError("order_id")

// OrderID is a value object wrapping the external order identifier.
// The identifier is assigned by the upstream shop system and is treated as an
// opaque string; the only rules this domain enforces are that it is non-empty
// and compared after trimming surrounding whitespace.
//
// The zero value is invalid and must be constructed via NewOrderID.
//
// Example:
//
//	id, err := kernel.NewOrderID(" SO-1042 ")
//	if err != nil {
//	    // handle missing identifier
//	}
//	id.String() // "SO-1042"
type OrderID struct {
	value string
}

// NewOrderID creates an OrderID from its raw string form.
// Surrounding whitespace is trimmed. Returns ErrOrderIDIsRequired when the
// trimmed value is empty.
func NewOrderID(raw string) (OrderID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return OrderID{}, ErrOrderIDIsRequired
	}
	return OrderID{value: trimmed}, nil
}

// String returns the identifier as stored, without surrounding whitespace.
func (id OrderID) String() string {
	return id.value
}

// IsEqual compares two order identifiers for exact equality.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// Validate checks that the OrderID was created via NewOrderID.
// Returns ErrOrderIDIsRequired for the zero value.
func (id OrderID) Validate() error {
	if id.value == "" {
		return ErrOrderIDIsRequired
	}
	return nil
}
