package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so config files can use human-readable
// values like "200ms" or "1.5s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// RetryConfig tunes the retrying provider decorator.
type RetryConfig struct {
	MaxAttempts int      `yaml:"max_attempts"`
	Backoff     Duration `yaml:"backoff"`
}

// RateLimitConfig tunes the rate-limited provider decorator.
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// Config holds runtime configuration for the server.
type Config struct {
	Port        string           `yaml:"port"`
	Provider    string           `yaml:"provider"`
	CORSOrigins []string         `yaml:"cors_origins"`
	SentryDSN   string           `yaml:"sentry_dsn"`
	SportsData  SportsDataConfig `yaml:"sports_data"`
	Retry       RetryConfig      `yaml:"retry"`
	RateLimit   RateLimitConfig  `yaml:"rate_limit"`
	Metrics     MetricsConfig    `yaml:"metrics"`
}

// Load reads configuration from environment variables with sensible
// defaults. A .env file in the working directory is applied first when
// present, then an optional YAML file named by CONFIG_FILE overlays the
// result.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:        envOrDefault(envPort, defaultPort),
		Provider:    envOrDefault(envProvider, defaultProvider),
		CORSOrigins: splitOrigins(envOrDefault(envCORSOrigins, defaultCORSOrigins)),
		SentryDSN:   envOrDefault(envSentryDSN, ""),
		SportsData:  loadSportsData(),
		Retry: RetryConfig{
			MaxAttempts: intEnvOrDefault(envRetryMax, 0),
			Backoff:     Duration(durationEnvOrDefault(envRetryBackoff, 0)),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: floatEnvOrDefault(envRateRPS, defaultRateRPS),
			Burst:             intEnvOrDefault(envRateBurst, defaultRateBurst),
		},
		Metrics: loadMetrics(),
	}

	if path := envOrDefault(envConfigFile, ""); path != "" {
		cfg = overlayFile(cfg, path)
	}
	return cfg
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
