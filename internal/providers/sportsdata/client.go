package sportsdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"catchup-service/internal/providers"
)

// Config controls how the client reaches the upstream sports-data API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// Client fetches the raw game-detail payload from the sports-data API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
}

// NewClient constructs a sports-data client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// FetchGameDetail retrieves the full per-game payload (game, plays, stats,
// social posts). Transport failures and non-2xx statuses come back as a
// *providers.ConnectionError; a decode failure is a plain error so the
// caller can degrade to "no data" instead of offering a retry.
func (c *Client) FetchGameDetail(ctx context.Context, gameID string) (providers.RawGamePayload, error) {
	req, err := c.buildRequest(ctx, gameID)
	if err != nil {
		return providers.RawGamePayload{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return providers.RawGamePayload{}, &providers.ConnectionError{Provider: providerName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return providers.RawGamePayload{}, &providers.ConnectionError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}

	var payload providers.RawGamePayload
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return providers.RawGamePayload{}, decodeErr
	}

	return payload, nil
}

func (c *Client) buildRequest(ctx context.Context, gameID string) (*http.Request, error) {
	endpoint := c.baseURL + "/api/admin/sports/games/" + url.PathEscape(gameID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	return req, nil
}
