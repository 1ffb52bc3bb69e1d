// Package hebcal implements the holiday provider port against the Hebcal
// Jewish-calendar API (https://www.hebcal.com/home/developer-apis).
//
// Holidays are fetched once per Gregorian year and cached for the lifetime of
// the process; the advancement job asks about a handful of consecutive dates
// every morning, so a year-granular cache removes nearly all traffic.
package hebcal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"ordertracker/internal/core/ports"
)

// DefaultBaseURL is the production Hebcal API endpoint.
const DefaultBaseURL = "https://www.hebcal.com/hebcal"

const requestTimeout = 10 * time.Second

// Provider answers holiday questions from the Hebcal API.
// Only major holidays flagged as yom tov (work-restricted days) count; minor
// observances do not pause order fulfillment.
//
// Safe for concurrent use.
type Provider struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.Mutex
	years map[int]map[string]struct{}
}

var _ ports.HolidayProvider = (*Provider)(nil)

// Option configures a Provider.
type Option func(*Provider)

// WithBaseURL overrides the API endpoint. Used by tests.
func WithBaseURL(baseURL string) Option {
	return func(p *Provider) {
		p.baseURL = baseURL
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(p *Provider) {
		p.httpClient = client
	}
}

// NewProvider creates a Hebcal-backed holiday provider.
func NewProvider(opts ...Option) *Provider {
	p := &Provider{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
		years:      make(map[int]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name identifies the provider in logs.
func (p *Provider) Name() string {
	return "hebcal"
}

// IsHoliday reports whether the date falls on a major holiday in Israel.
// The first question about a year triggers one API call; subsequent questions
// for the same year are answered from cache.
func (p *Provider) IsHoliday(ctx context.Context, day time.Time) (bool, error) {
	year := day.Year()

	p.mu.Lock()
	dates, ok := p.years[year]
	p.mu.Unlock()

	if !ok {
		fetched, err := p.fetchYear(ctx, year)
		if err != nil {
			return false, err
		}

		p.mu.Lock()
		p.years[year] = fetched
		p.mu.Unlock()
		dates = fetched
	}

	_, holiday := dates[day.Format(time.DateOnly)]
	return holiday, nil
}

// calendarItem is the subset of the Hebcal response this provider reads.
type calendarItem struct {
	Title    string `json:"title"`
	Date     string `json:"date"`
	Category string `json:"category"`
	YomTov   bool   `json:"yomtov"`
}

type calendarResponse struct {
	Items []calendarItem `json:"items"`
}

// fetchYear downloads the major-holiday calendar for one year using the
// Israel holiday schedule.
func (p *Provider) fetchYear(ctx context.Context, year int) (map[string]struct{}, error) {
	query := url.Values{}
	query.Set("v", "1")
	query.Set("cfg", "json")
	query.Set("maj", "on")
	query.Set("i", "on")
	query.Set("year", fmt.Sprintf("%d", year))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("hebcal: unexpected status %d for year %d", resp.StatusCode, year)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var calendar calendarResponse
	if err := json.Unmarshal(body, &calendar); err != nil {
		return nil, fmt.Errorf("hebcal: decoding calendar for year %d: %w", year, err)
	}

	dates := make(map[string]struct{})
	for _, item := range calendar.Items {
		if item.Category != "holiday" || !item.YomTov {
			continue
		}
		// Dates may carry a time component; keep the date part only.
		if len(item.Date) >= 10 {
			dates[item.Date[:10]] = struct{}{}
		}
	}

	return dates, nil
}
