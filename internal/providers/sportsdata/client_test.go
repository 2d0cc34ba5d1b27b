package sportsdata

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"catchup-service/internal/providers"
)

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newTestClient(rt roundTripperFunc, apiKey string) *Client {
	return NewClient(Config{
		BaseURL:    "http://example.com",
		APIKey:     apiKey,
		HTTPClient: &http.Client{Transport: rt},
	})
}

func TestFetchGameDetailHitsAPIAndDecodes(t *testing.T) {
	var capturedPath string
	var capturedAuth string

	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		capturedPath = req.URL.Path
		capturedAuth = req.Header.Get("Authorization")

		body := `{
			"game": {
				"id": 1001,
				"home_team": "Boston Celtics",
				"away_team": "Los Angeles Lakers",
				"game_date": "2024-01-15T19:30:00Z",
				"home_score": 112,
				"away_score": 108
			},
			"plays": [
				{"play_index": 0, "quarter": 1, "game_clock": "12:00", "description": "Jump ball"}
			],
			"social_posts": [
				{"id": 1, "post_url": "https://twitter.com/celtics/status/1001", "posted_at": "2024-01-15T18:00:00Z"}
			]
		}`
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     make(http.Header),
		}, nil
	})

	client := newTestClient(rt, "secret")
	payload, err := client.FetchGameDetail(context.Background(), "1001")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if capturedPath != "/api/admin/sports/games/1001" {
		t.Fatalf("unexpected path %s", capturedPath)
	}
	if capturedAuth != "Bearer secret" {
		t.Fatalf("expected authorization header, got %q", capturedAuth)
	}
	if payload.Game == nil || *payload.Game.ID != 1001 {
		t.Fatalf("unexpected game %+v", payload.Game)
	}
	if payload.Game.HomeTeam != "Boston Celtics" {
		t.Fatalf("unexpected home team %s", payload.Game.HomeTeam)
	}
	if len(payload.Plays) != 1 || len(payload.SocialPosts) != 1 {
		t.Fatalf("unexpected payload counts %d/%d", len(payload.Plays), len(payload.SocialPosts))
	}
}

func TestFetchGameDetailOmitsAuthWithoutKey(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if req.Header.Get("Authorization") != "" {
			t.Fatalf("expected no authorization header")
		}
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{}`)),
			Header:     make(http.Header),
		}, nil
	})

	client := newTestClient(rt, "")
	if _, err := client.FetchGameDetail(context.Background(), "1001"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestFetchGameDetailEscapesGameID(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if !strings.HasSuffix(req.URL.EscapedPath(), "/games/..%2Fescape") {
			t.Fatalf("expected escaped path, got %s", req.URL.EscapedPath())
		}
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{}`)),
			Header:     make(http.Header),
		}, nil
	})

	client := newTestClient(rt, "")
	if _, err := client.FetchGameDetail(context.Background(), "../escape"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestFetchGameDetailTransportErrorIsConnectionError(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		_ = req
		return nil, errors.New("connection refused")
	})

	client := newTestClient(rt, "")
	_, err := client.FetchGameDetail(context.Background(), "1001")
	connErr, ok := providers.AsConnectionError(err)
	if !ok {
		t.Fatalf("expected connection error, got %v", err)
	}
	if connErr.Provider != providerName {
		t.Fatalf("unexpected provider %s", connErr.Provider)
	}
}

func TestFetchGameDetailNon2xxIsConnectionError(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		_ = req
		return &http.Response{
			StatusCode: http.StatusBadGateway,
			Body:       io.NopCloser(strings.NewReader("upstream exploded")),
			Header:     make(http.Header),
		}, nil
	})

	client := newTestClient(rt, "")
	_, err := client.FetchGameDetail(context.Background(), "1001")
	connErr, ok := providers.AsConnectionError(err)
	if !ok {
		t.Fatalf("expected connection error, got %v", err)
	}
	if connErr.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected status captured, got %d", connErr.StatusCode)
	}
	if !strings.Contains(connErr.Error(), "upstream exploded") {
		t.Fatalf("expected body excerpt in error, got %q", connErr.Error())
	}
}

func TestFetchGameDetailDecodeErrorIsPlain(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		_ = req
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader("{bad json")),
			Header:     make(http.Header),
		}, nil
	})

	client := newTestClient(rt, "")
	_, err := client.FetchGameDetail(context.Background(), "1001")
	if err == nil {
		t.Fatal("expected decode error")
	}
	if _, ok := providers.AsConnectionError(err); ok {
		t.Fatal("expected decode error to stay plain so callers degrade to no-data")
	}
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(Config{})
	if c.baseURL != defaultBaseURL {
		t.Fatalf("expected default base url, got %s", c.baseURL)
	}
	httpClient, ok := c.httpClient.(*http.Client)
	if !ok {
		t.Fatal("expected default http client")
	}
	if httpClient.Timeout != defaultHTTPTimeout {
		t.Fatalf("expected timeout set, got %s", httpClient.Timeout)
	}
}

func TestNormalizeBaseURLTrimsTrailingSlash(t *testing.T) {
	if got := normalizeBaseURL("http://example.com/"); got != "http://example.com" {
		t.Fatalf("expected trailing slash trimmed, got %s", got)
	}
	if got := normalizeBaseURL(""); got != defaultBaseURL {
		t.Fatalf("expected default for empty input, got %s", got)
	}
}
