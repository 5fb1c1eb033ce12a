// Package weather implements the HTTP client for the external weather
// provider. The provider's schema and availability are outside our control;
// callers receive the raw payload and interpret it themselves.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/secureweather/weather-gateway/internal/api/metrics"
	"github.com/secureweather/weather-gateway/internal/core/domain"
)

const (
	defaultTimeout = 10 * time.Second

	// maxBodyBytes bounds how much of an untrusted provider response is read.
	maxBodyBytes = 1 << 20
)

// Client calls the provider's per-city lookup endpoint, e.g.
// GET <base>/weather/Riyadh.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for the given base URL. If timeout <= 0,
// defaultTimeout is applied so a request can never hang forever.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Fetch issues a single lookup for city and returns the provider's raw JSON
// body. A non-success provider status maps to domain.ErrWeatherUpstream;
// transport failures surface as wrapped errors.
func (c *Client) Fetch(ctx context.Context, city string) (json.RawMessage, error) {
	endpoint := c.baseURL + "/weather/" + url.PathEscape(city)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build weather request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.WeatherUpstreamDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return nil, fmt.Errorf("weather request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		metrics.WeatherUpstreamDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return nil, fmt.Errorf("%w: status %d", domain.ErrWeatherUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		metrics.WeatherUpstreamDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return nil, fmt.Errorf("read weather response: %w", err)
	}

	metrics.WeatherUpstreamDuration.WithLabelValues("ok").Observe(time.Since(start).Seconds())
	return body, nil
}
