package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	keys := []string{
		envPort, envProvider, envConfigFile, envCORSOrigins, envSentryDSN,
		envRetryMax, envRetryBackoff, envRateRPS, envRateBurst,
		envMetricsPort, envMetricsOn, envOtelEndpoint, envOtelService, envOtelInsecure,
		envSportsBaseURL, envSportsAPIKey,
	}
	for _, key := range keys {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg := Load()
	if cfg.Port != "4000" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.Provider != "fixture" {
		t.Fatalf("expected fixture provider by default, got %s", cfg.Provider)
	}
	if !reflect.DeepEqual(cfg.CORSOrigins, []string{"*"}) {
		t.Fatalf("expected wildcard CORS, got %v", cfg.CORSOrigins)
	}
	if cfg.SportsData.BaseURL != "http://localhost:8000" {
		t.Fatalf("unexpected sports data base url %s", cfg.SportsData.BaseURL)
	}
	if cfg.RateLimit.RequestsPerSecond != 2.0 || cfg.RateLimit.Burst != 5 {
		t.Fatalf("unexpected rate limit defaults %+v", cfg.RateLimit)
	}
	if cfg.Metrics.Enabled {
		t.Fatal("expected metrics disabled by default")
	}
	if cfg.Metrics.Port != "9090" {
		t.Fatalf("unexpected metrics port %s", cfg.Metrics.Port)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv(envPort, "8080")
	t.Setenv(envProvider, "sportsdata")
	t.Setenv(envCORSOrigins, "https://app.example.com, https://staging.example.com")
	t.Setenv(envSentryDSN, "https://key@sentry.example.com/1")
	t.Setenv(envRetryMax, "5")
	t.Setenv(envRetryBackoff, "150ms")
	t.Setenv(envRateRPS, "0.5")
	t.Setenv(envRateBurst, "2")
	t.Setenv(envSportsBaseURL, "https://api.example.com/")
	t.Setenv(envSportsAPIKey, "secret")
	t.Setenv(envMetricsOn, "true")

	cfg := Load()
	if cfg.Port != "8080" || cfg.Provider != "sportsdata" {
		t.Fatalf("unexpected core config %+v", cfg)
	}
	want := []string{"https://app.example.com", "https://staging.example.com"}
	if !reflect.DeepEqual(cfg.CORSOrigins, want) {
		t.Fatalf("unexpected origins %v", cfg.CORSOrigins)
	}
	if cfg.SentryDSN == "" {
		t.Fatal("expected sentry dsn carried through")
	}
	if cfg.Retry.MaxAttempts != 5 || cfg.Retry.Backoff != Duration(150*time.Millisecond) {
		t.Fatalf("unexpected retry config %+v", cfg.Retry)
	}
	if cfg.RateLimit.RequestsPerSecond != 0.5 || cfg.RateLimit.Burst != 2 {
		t.Fatalf("unexpected rate limit config %+v", cfg.RateLimit)
	}
	if cfg.SportsData.APIKey != "secret" {
		t.Fatalf("unexpected sports data config %+v", cfg.SportsData)
	}
	if !cfg.Metrics.Enabled {
		t.Fatal("expected metrics enabled")
	}
}

func TestLoadOverlaysYAMLFile(t *testing.T) {
	clearConfigEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("port: \"9999\"\nprovider: sportsdata\nsports_data:\n  base_url: https://file.example.com\nretry:\n  max_attempts: 7\n  backoff: 250ms\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("failed writing config file: %v", err)
	}
	t.Setenv(envConfigFile, path)

	cfg := Load()
	if cfg.Port != "9999" {
		t.Fatalf("expected file port to win, got %s", cfg.Port)
	}
	if cfg.Provider != "sportsdata" {
		t.Fatalf("expected file provider, got %s", cfg.Provider)
	}
	if cfg.SportsData.BaseURL != "https://file.example.com" {
		t.Fatalf("expected file base url, got %s", cfg.SportsData.BaseURL)
	}
	if cfg.Retry.MaxAttempts != 7 || cfg.Retry.Backoff != Duration(250*time.Millisecond) {
		t.Fatalf("expected file retry config decoded, got %+v", cfg.Retry)
	}
	// Untouched by the file: env defaults survive.
	if cfg.Metrics.Port != "9090" {
		t.Fatalf("expected default metrics port preserved, got %s", cfg.Metrics.Port)
	}
}

func TestOverlayFileMissingOrMalformedLeavesConfig(t *testing.T) {
	base := Config{Port: "4000"}

	if got := overlayFile(base, filepath.Join(t.TempDir(), "missing.yaml")); got.Port != "4000" {
		t.Fatalf("expected config untouched for missing file, got %+v", got)
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("port: [unclosed"), 0o600); err != nil {
		t.Fatalf("failed writing config file: %v", err)
	}
	if got := overlayFile(base, path); got.Port != "4000" {
		t.Fatalf("expected config untouched for malformed file, got %+v", got)
	}

	path = filepath.Join(t.TempDir(), "bad_duration.yaml")
	if err := os.WriteFile(path, []byte("retry:\n  backoff: soon\n"), 0o600); err != nil {
		t.Fatalf("failed writing config file: %v", err)
	}
	if got := overlayFile(base, path); got.Port != "4000" || got.Retry.Backoff != 0 {
		t.Fatalf("expected config untouched for bad duration, got %+v", got)
	}
}

func TestSplitOrigins(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{name: "single", raw: "*", expected: []string{"*"}},
		{name: "multiple_with_spaces", raw: "a.com, b.com ,c.com", expected: []string{"a.com", "b.com", "c.com"}},
		{name: "empty_parts_dropped", raw: "a.com,,", expected: []string{"a.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitOrigins(tt.raw); !reflect.DeepEqual(got, tt.expected) {
				t.Fatalf("splitOrigins(%q) = %v, want %v", tt.raw, got, tt.expected)
			}
		})
	}
}
