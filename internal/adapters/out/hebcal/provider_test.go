package hebcal_test

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"ordertracker/internal/adapters/out/hebcal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const calendarFixture = `{
	"title": "Hebcal Israel 2025",
	"items": [
		{"title": "Pesach I", "date": "2025-04-13", "category": "holiday", "yomtov": true},
		{"title": "Pesach II (CH''M)", "date": "2025-04-14", "category": "holiday", "yomtov": false},
		{"title": "Yom HaAtzma'ut", "date": "2025-05-01", "category": "holiday", "yomtov": false},
		{"title": "Shavuot", "date": "2025-06-02", "category": "holiday", "yomtov": true},
		{"title": "Candle lighting", "date": "2025-04-11T18:30:00+03:00", "category": "candles"}
	]
}`

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestProvider_IsHoliday(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2025", r.URL.Query().Get("year"))
		assert.Equal(t, "on", r.URL.Query().Get("i"), "Israel schedule must be requested")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(calendarFixture))
	}))
	defer server.Close()

	provider := hebcal.NewProvider(hebcal.WithBaseURL(server.URL))

	holiday, err := provider.IsHoliday(t.Context(), date(2025, time.April, 13))
	require.NoError(t, err)
	assert.True(t, holiday)

	// Intermediate festival days do not pause fulfillment.
	holiday, err = provider.IsHoliday(t.Context(), date(2025, time.April, 14))
	require.NoError(t, err)
	assert.False(t, holiday)

	holiday, err = provider.IsHoliday(t.Context(), date(2025, time.June, 2))
	require.NoError(t, err)
	assert.True(t, holiday)

	holiday, err = provider.IsHoliday(t.Context(), date(2025, time.March, 12))
	require.NoError(t, err)
	assert.False(t, holiday)
}

func TestProvider_CachesPerYear(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(calendarFixture))
	}))
	defer server.Close()

	provider := hebcal.NewProvider(hebcal.WithBaseURL(server.URL))

	for range 5 {
		_, err := provider.IsHoliday(t.Context(), date(2025, time.April, 13))
		require.NoError(t, err)
	}

	assert.Equal(t, int32(1), calls.Load(), "one fetch per year")
}

func TestProvider_ServerError_ReturnsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	provider := hebcal.NewProvider(hebcal.WithBaseURL(server.URL))

	_, err := provider.IsHoliday(t.Context(), date(2025, time.April, 13))
	require.Error(t, err)
}

func TestProvider_FailedFetchIsNotCached(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(calendarFixture))
	}))
	defer server.Close()

	provider := hebcal.NewProvider(hebcal.WithBaseURL(server.URL))

	_, err := provider.IsHoliday(t.Context(), date(2025, time.April, 13))
	require.Error(t, err)

	holiday, err := provider.IsHoliday(t.Context(), date(2025, time.April, 13))
	require.NoError(t, err)
	assert.True(t, holiday)
	assert.Equal(t, int32(2), calls.Load())
}

func TestStaticProvider_IsHoliday(t *testing.T) {
	provider := hebcal.NewStaticProvider([]string{"2025-04-13", "not-a-date", "2025-06-02"})

	holiday, err := provider.IsHoliday(t.Context(), date(2025, time.April, 13))
	require.NoError(t, err)
	assert.True(t, holiday)

	holiday, err = provider.IsHoliday(t.Context(), date(2025, time.April, 14))
	require.NoError(t, err)
	assert.False(t, holiday)

	assert.Equal(t, "static", provider.Name())
}
