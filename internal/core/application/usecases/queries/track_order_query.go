package queries

import (
	"errors"
	"strings"

	"ordertracker/internal/pkg/errs"
	"ordertracker/internal/pkg/guard"
)

var (
	ErrTrackOrderQueryIsNotConstructed = errors.New(
		"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
	)
)

// TrackOrderQuery looks up a single order by its public identifier and
// lookup token. Both values come straight from tracker page query strings,
// so the constructor trims whitespace before validating.
//
// Example:
//
//	query, err := NewTrackOrderQuery(" SO-1042 ", "1f8a9c0d2b3e4f5a")
//	if err != nil {
//	    return err // missing identifier or token
//	}
//
//	status, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown order or wrong token: same answer for both
//	}
type TrackOrderQuery struct {
	orderID string
	token   string

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a lookup query from raw request parameters.
// Returns ErrValueIsRequired when either value is blank after trimming;
// a missing token must never widen the lookup to all rows of the order.
func NewTrackOrderQuery(rawOrderID, rawToken string) (TrackOrderQuery, error) {
	orderID := strings.TrimSpace(rawOrderID)
	if orderID == "" {
		return TrackOrderQuery{}, errs.NewValueIsRequiredError("order_id")
	}

	token := strings.TrimSpace(rawToken)
	if token == "" {
		return TrackOrderQuery{}, errs.NewValueIsRequiredError("token")
	}

	return TrackOrderQuery{
		orderID: orderID,
		token:   token,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrTrackOrderQueryIsNotConstructed if validation fails.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// OrderID returns the trimmed order identifier.
func (q TrackOrderQuery) OrderID() string {
	return q.orderID
}

// Token returns the trimmed lookup token.
func (q TrackOrderQuery) Token() string {
	return q.token
}

// TrackOrderQueryResponse is the public projection served to tracker pages.
// It deliberately carries no token and no tracker URL: the caller already
// proved possession of both.
//
// LastUpdated is pre-formatted as a date in the tracker's timezone because
// the page renders it verbatim.
type TrackOrderQueryResponse struct {
	OrderID      string `json:"order_id"`
	CustomerName string `json:"customer_name"`
	StatusStep   int    `json:"status_step"`
	StatusLabel  string `json:"status_label"`
	LastUpdated  string `json:"last_updated"`
}
