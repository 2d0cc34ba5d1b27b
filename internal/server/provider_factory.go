package server

import (
	"log/slog"
	"time"

	"catchup-service/internal/config"
	"catchup-service/internal/metrics"
	"catchup-service/internal/providers"
	"catchup-service/internal/providers/fixture"
	"catchup-service/internal/providers/sportsdata"
)

// providerFactory assembles the provider with shared wrappers (rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.CatchupProvider {
	base := selectProvider(cfg)
	limited := providers.NewRateLimitedProvider(base, cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, f.logger)
	return providers.NewRetryingProvider(limited, f.logger, f.metrics, cfg.Provider, cfg.Retry.MaxAttempts, time.Duration(cfg.Retry.Backoff))
}

func selectProvider(cfg config.Config) providers.CatchupProvider {
	switch cfg.Provider {
	case "sportsdata":
		return sportsdata.NewClient(sportsdata.Config{
			BaseURL: cfg.SportsData.BaseURL,
			APIKey:  cfg.SportsData.APIKey,
		})
	default:
		return fixture.New()
	}
}
