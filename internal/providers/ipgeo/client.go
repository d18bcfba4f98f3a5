package ipgeo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"haulplan/internal/types"
)

// ErrAllProvidersFailed is returned when no provider produced a usable code.
var ErrAllProvidersFailed = errors.New("all ip geolocation providers failed")

// Provider is one unauthenticated IP geolocation endpoint. Each provider
// names the country code differently, so the JSON field is part of the entry.
type Provider struct {
	Name  string
	URL   string
	Field string
}

// DefaultProviders returns the built-in provider list, tried in order.
func DefaultProviders() []Provider {
	return []Provider{
		{Name: "ipapi.co", URL: "https://ipapi.co/json/", Field: "country_code"},
		{Name: "ipwho.is", URL: "https://ipwho.is/", Field: "country_code"},
		{Name: "country.is", URL: "https://api.country.is/", Field: "country"},
	}
}

type Client struct {
	httpClient *http.Client
	providers  []Provider
	timeout    time.Duration
	logger     *slog.Logger
}

// NewClient creates a client over the default provider list. timeout bounds
// each individual provider call, not the whole sequence.
func NewClient(timeout time.Duration, logger *slog.Logger) *Client {
	return NewClientWithProviders(DefaultProviders(), timeout, logger)
}

// NewClientWithProviders creates a client over a custom provider list.
// This is useful for testing with local endpoints.
func NewClientWithProviders(providers []Provider, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{},
		providers:  providers,
		timeout:    timeout,
		logger:     logger.With("component", "ipgeo-client"),
	}
}

// Detect queries the providers strictly in sequence and returns the first
// valid two-letter country code. A timeout, network failure, non-2xx status,
// or unusable body skips to the next provider; a success short-circuits the
// rest. Providers run sequentially to respect their per-IP rate limits.
func (c *Client) Detect(ctx context.Context) (code string, provider string, err error) {
	for _, p := range c.providers {
		got, queryErr := c.query(ctx, p)
		if queryErr != nil {
			c.logger.Debug("ip geolocation provider skipped",
				"provider", p.Name,
				"error", queryErr,
			)
			if ctx.Err() != nil {
				return "", "", ctx.Err()
			}
			continue
		}
		c.logger.Debug("ip geolocation succeeded",
			"provider", p.Name,
			"country_code", got,
		)
		return got, p.Name, nil
	}
	return "", "", ErrAllProvidersFailed
}

func (c *Client) query(ctx context.Context, p Provider) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(callCtx, http.MethodGet, p.URL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetch returned status %d", resp.StatusCode)
	}

	var payload map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	raw, ok := payload[p.Field]
	if !ok {
		return "", fmt.Errorf("response missing field %q", p.Field)
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", fmt.Errorf("field %q is not a string: %w", p.Field, err)
	}

	code := types.NormalizeCountryCode(value)
	if !types.ValidCountryCode(code) {
		return "", fmt.Errorf("provider returned invalid country code %q", value)
	}
	return code, nil
}
