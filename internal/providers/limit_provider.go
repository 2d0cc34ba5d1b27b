package providers

import (
	"context"
	"log/slog"

	"golang.org/x/time/rate"
)

const (
	defaultRequestsPerSecond = 2.0
	defaultBurst             = 5
)

// rateLimitedProvider wraps a CatchupProvider and throttles upstream calls.
// Calls block until the limiter admits them, so upstream quota is respected
// even when several catchup requests arrive at once.
type rateLimitedProvider struct {
	next    CatchupProvider
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewRateLimitedProvider returns a CatchupProvider limited to rps requests
// per second with the given burst. Non-positive values fall back to defaults.
func NewRateLimitedProvider(next CatchupProvider, rps float64, burst int, logger *slog.Logger) CatchupProvider {
	if rps <= 0 {
		rps = defaultRequestsPerSecond
	}
	if burst <= 0 {
		burst = defaultBurst
	}
	return &rateLimitedProvider{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		logger:  logger,
	}
}

func (p *rateLimitedProvider) FetchGameDetail(ctx context.Context, gameID string) (RawGamePayload, error) {
	if p == nil || p.next == nil {
		if p != nil && p.logger != nil {
			p.logger.Warn("provider unavailable", slog.String("provider", "rate-limited"))
		}
		return RawGamePayload{}, ErrProviderUnavailable
	}
	if err := p.limiter.Wait(ctx); err != nil {
		if p.logger != nil {
			p.logger.Warn("rate-limited fetch canceled", slog.String("provider", "rate-limited"))
		}
		return RawGamePayload{}, err
	}
	return p.next.FetchGameDetail(ctx, gameID)
}
