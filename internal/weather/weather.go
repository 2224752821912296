package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"
)

// Forecast is the subset of forecast data the job screens render.
type Forecast struct {
	Location    string
	Description string
	TempC       float64
	WindKph     float64
	RainChance  float64 // 0..1 probability of precipitation
	FetchedAt   time.Time
}

// Forecaster is the collaborator boundary the bot depends on. The job
// screens only need a forecast for a location string and a way to drop a
// cached entry on refresh.
type Forecaster interface {
	Forecast(ctx context.Context, location string) (*Forecast, error)
	Invalidate(location string)
}

const defaultBaseURL = "https://api.openweathermap.org/data/2.5/forecast"

// Client fetches forecasts from OpenWeatherMap with an in-memory TTL cache.
type Client struct {
	apiKey  string
	baseURL string
	ttl     time.Duration
	http    *http.Client
	logger  *slog.Logger

	mu    sync.Mutex
	cache map[string]*Forecast
}

func NewClient(apiKey string, ttl, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		ttl:     ttl,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
		cache:   make(map[string]*Forecast),
	}
}

// Enabled reports whether the client has an API key to work with. Without
// one, job screens simply omit the weather section.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

func (c *Client) Forecast(ctx context.Context, location string) (*Forecast, error) {
	c.mu.Lock()
	if f, ok := c.cache[location]; ok && time.Since(f.FetchedAt) < c.ttl {
		c.mu.Unlock()
		return f, nil
	}
	c.mu.Unlock()

	f, err := c.fetch(ctx, location)
	if err != nil {
		c.logger.Warn("weather lookup failed", "location", location, "error", err)
		return nil, err
	}

	c.mu.Lock()
	c.cache[location] = f
	c.mu.Unlock()
	return f, nil
}

func (c *Client) Invalidate(location string) {
	c.mu.Lock()
	delete(c.cache, location)
	c.mu.Unlock()
}

// owmResponse mirrors the fields we read from the OpenWeatherMap forecast
// endpoint; everything else in the payload is ignored.
type owmResponse struct {
	List []struct {
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
		Wind struct {
			Speed float64 `json:"speed"` // m/s
		} `json:"wind"`
		Pop float64 `json:"pop"`
	} `json:"list"`
	City struct {
		Name string `json:"name"`
	} `json:"city"`
}

func (c *Client) fetch(ctx context.Context, location string) (*Forecast, error) {
	start := time.Now()

	q := url.Values{}
	q.Set("q", location)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")
	q.Set("cnt", "1")
	endpoint := c.baseURL + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.logger.Warn("weather.response_body_close_error", "error", err)
		}
	}(resp.Body)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	c.logger.Info("weather.response",
		"location", location,
		"status", resp.StatusCode,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("non-2xx status: %d", resp.StatusCode)
	}

	var payload owmResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode forecast: %w", err)
	}
	if len(payload.List) == 0 {
		return nil, fmt.Errorf("empty forecast for %q", location)
	}

	entry := payload.List[0]
	desc := ""
	if len(entry.Weather) > 0 {
		desc = entry.Weather[0].Description
	}
	return &Forecast{
		Location:    payload.City.Name,
		Description: desc,
		TempC:       entry.Main.Temp,
		WindKph:     entry.Wind.Speed * 3.6,
		RainChance:  entry.Pop,
		FetchedAt:   time.Now(),
	}, nil
}
