package weather

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const forecastBody = `{
	"list": [{
		"main": {"temp": 16.2},
		"weather": [{"description": "light rain"}],
		"wind": {"speed": 5.0},
		"pop": 0.4
	}],
	"city": {"name": "Leeds"}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient("test-key", time.Minute, time.Second, slog.New(slog.DiscardHandler))
	c.baseURL = srv.URL
	return c
}

func TestForecastParsesResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Leeds,UK", r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(forecastBody))
	})

	f, err := c.Forecast(context.Background(), "Leeds,UK")
	require.NoError(t, err)
	assert.Equal(t, "Leeds", f.Location)
	assert.Equal(t, "light rain", f.Description)
	assert.InDelta(t, 16.2, f.TempC, 0.001)
	assert.InDelta(t, 18.0, f.WindKph, 0.001) // 5 m/s
	assert.InDelta(t, 0.4, f.RainChance, 0.001)
}

func TestForecastCachesWithinTTL(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls++
		_, _ = w.Write([]byte(forecastBody))
	})

	_, err := c.Forecast(context.Background(), "Leeds,UK")
	require.NoError(t, err)
	_, err = c.Forecast(context.Background(), "Leeds,UK")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	c.Invalidate("Leeds,UK")
	_, err = c.Forecast(context.Background(), "Leeds,UK")
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestForecastTruncatedBodyIsReadError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		// advertise more bytes than are sent so the read fails mid-body
		w.Header().Set("Content-Length", "4096")
		_, _ = w.Write([]byte(forecastBody[:32]))
	})

	_, err := c.Forecast(context.Background(), "Leeds,UK")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read response")
}

func TestForecastNon2xxStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.Forecast(context.Background(), "Leeds,UK")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
