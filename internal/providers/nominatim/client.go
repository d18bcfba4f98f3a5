package nominatim

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// API Docs: https://docs.locationiq.com/docs/search-forward-geocoding
// The service speaks the Nominatim API with an api-key query parameter.
// Sample request: https://us1.locationiq.com/v1/search?key=...&q=baltimore&format=json

var (
	// ErrAuth means the upstream rejected the API key (HTTP 401).
	ErrAuth = errors.New("gazetteer rejected credentials")
	// ErrRateLimited means the upstream throttled us (HTTP 429).
	ErrRateLimited = errors.New("gazetteer rate limit exceeded")
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *slog.Logger
}

// NewClient creates a gazetteer client. timeout bounds every call so a slow
// upstream cannot stall the search UI.
func NewClient(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		logger:     logger.With("component", "nominatim-client"),
	}
}

// Autocomplete returns partial-query matches, optionally scoped to a country.
func (c *Client) Autocomplete(ctx context.Context, query, countryCode string, limit int) ([]PlaceAPIResponse, error) {
	params := url.Values{}
	params.Set("q", query)
	if countryCode != "" {
		params.Set("countrycodes", countryCode)
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	return c.fetchList(ctx, "/autocomplete", params)
}

// Search performs forward geocoding of a full address.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]PlaceAPIResponse, error) {
	params := url.Values{}
	params.Set("q", query)
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	return c.fetchList(ctx, "/search", params)
}

// Reverse resolves coordinates to the nearest place record.
func (c *Client) Reverse(ctx context.Context, latitude, longitude float64) (*PlaceAPIResponse, error) {
	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%f", latitude))
	params.Set("lon", fmt.Sprintf("%f", longitude))

	body, err := c.fetch(ctx, "/reverse", params)
	if err != nil {
		return nil, err
	}

	var place PlaceAPIResponse
	if err := json.Unmarshal(body, &place); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &place, nil
}

func (c *Client) fetchList(ctx context.Context, endpoint string, params url.Values) ([]PlaceAPIResponse, error) {
	body, err := c.fetch(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}

	var places []PlaceAPIResponse
	if err := json.Unmarshal(body, &places); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return places, nil
}

func (c *Client) fetch(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	u, err := url.Parse(c.baseURL + endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	params.Set("key", c.apiKey)
	params.Set("format", "json")
	params.Set("addressdetails", "1")
	u.RawQuery = params.Encode()

	c.logger.Debug("fetching gazetteer data",
		"endpoint", endpoint,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to read the body
	case http.StatusUnauthorized:
		return nil, ErrAuth
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	default:
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("gazetteer returned error",
			"status_code", resp.StatusCode,
			"endpoint", endpoint,
			"response_body", string(body),
		)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}
