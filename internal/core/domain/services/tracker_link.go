package services

import (
	"net/url"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/pkg/errs"
)

// Branding carries the optional logo parameters appended to every tracker
// link. Empty fields are omitted from the URL.
type Branding struct {
	Logo      string
	LogoDark  string
	LogoLight string
}

// TrackerLinkBuilder composes the shareable tracker URL for an order:
// the configured front-end base URL with the order identifier under `o`,
// the lookup token under `t`, and any branding parameters.
//
// Example:
//
//	builder, _ := services.NewTrackerLinkBuilder("https://track.example/", services.Branding{})
//	link := builder.Build(orderID, token)
//	// https://track.example/?o=SO-1042&t=3f2a9c4d1b8e6a70
type TrackerLinkBuilder struct {
	base     *url.URL
	branding Branding
}

// NewTrackerLinkBuilder creates a builder for the given front-end base URL.
// The base must be an absolute URL.
func NewTrackerLinkBuilder(baseURL string, branding Branding) (TrackerLinkBuilder, error) {
	if baseURL == "" {
		return TrackerLinkBuilder{}, errs.NewValueIsRequiredError("base URL")
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return TrackerLinkBuilder{}, errs.NewValueIsInvalidErrorWithCause("base URL", err)
	}
	if !base.IsAbs() {
		return TrackerLinkBuilder{}, errs.NewValueIsInvalidError("base URL")
	}

	return TrackerLinkBuilder{base: base, branding: branding}, nil
}

// Build returns the tracker URL for the given order identifier and token.
// Query values are URL-encoded; existing query parameters on the base URL
// are preserved.
func (b TrackerLinkBuilder) Build(id kernel.OrderID, token kernel.Token) string {
	u := *b.base
	q := u.Query()
	q.Set("o", id.String())
	q.Set("t", token.String())

	if b.branding.Logo != "" {
		q.Set("logo", b.branding.Logo)
	}
	if b.branding.LogoDark != "" {
		q.Set("logoDark", b.branding.LogoDark)
	}
	if b.branding.LogoLight != "" {
		q.Set("logoLight", b.branding.LogoLight)
	}

	u.RawQuery = q.Encode()
	return u.String()
}
