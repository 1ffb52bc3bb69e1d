package hebcal

import (
	"context"
	"time"

	"ordertracker/internal/core/ports"
)

// StaticProvider answers holiday questions from a fixed set of dates supplied
// through configuration. It never fails, which makes it a useful last
// candidate behind the API-backed provider: the operator's hand-maintained
// list takes over when the network is down.
type StaticProvider struct {
	dates map[string]struct{}
}

var _ ports.HolidayProvider = (*StaticProvider)(nil)

// NewStaticProvider creates a provider over the given dates, each formatted
// as "2006-01-02". Unparseable entries are ignored rather than rejected so a
// typo in one date does not take the whole list down.
func NewStaticProvider(dates []string) *StaticProvider {
	set := make(map[string]struct{}, len(dates))
	for _, raw := range dates {
		if parsed, err := time.Parse(time.DateOnly, raw); err == nil {
			set[parsed.Format(time.DateOnly)] = struct{}{}
		}
	}
	return &StaticProvider{dates: set}
}

// Name identifies the provider in logs.
func (p *StaticProvider) Name() string {
	return "static"
}

// IsHoliday reports whether the date is in the configured set.
func (p *StaticProvider) IsHoliday(_ context.Context, day time.Time) (bool, error) {
	_, holiday := p.dates[day.Format(time.DateOnly)]
	return holiday, nil
}
