// Package assembler builds spoiler-safe catchup documents: it fetches the
// raw per-game payload from an injected data source and merges game metadata,
// play-by-play events and social posts into one chronologically ordered,
// partitioned timeline.
package assembler

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"catchup-service/internal/domain/catchup"
	"catchup-service/internal/logging"
	"catchup-service/internal/metrics"
	"catchup-service/internal/providers"
)

// Assembler turns raw upstream game payloads into catchup responses. The
// data source is injected; the decision of which concrete provider to use is
// made once at wiring time, never at call time.
type Assembler struct {
	provider providers.CatchupProvider
	logger   *slog.Logger
	metrics  *metrics.Recorder
}

// New constructs an Assembler around the given provider.
func New(provider providers.CatchupProvider, logger *slog.Logger, recorder *metrics.Recorder) *Assembler {
	return &Assembler{
		provider: provider,
		logger:   logger,
		metrics:  recorder,
	}
}

// AssembleCatchup fetches and assembles the catchup document for one game.
//
// A missing game id resolves to (nil, nil): logged, never an error. Only a
// connection failure reaching the data source propagates, recognizable via
// providers.AsConnectionError so the caller can offer a retry. Any other
// upstream problem degrades to (nil, nil) rather than failing the page.
func (a *Assembler) AssembleCatchup(ctx context.Context, gameID string) (*catchup.Response, error) {
	if strings.TrimSpace(gameID) == "" {
		a.logWarn(ctx, "catchup requested without game id")
		return nil, nil
	}

	start := time.Now()
	payload, err := a.provider.FetchGameDetail(ctx, gameID)
	if err != nil {
		if _, ok := providers.AsConnectionError(err); ok {
			return nil, err
		}
		a.logWarn(ctx, "failed to load catchup payload", logging.FieldGameID, gameID, "err", err)
		return nil, nil
	}

	resp := mapPayload(payload)
	a.metrics.RecordAssembly(time.Since(start), len(resp.Timeline), len(payload.SocialPosts))
	a.logInfo(ctx, "catchup assembled",
		logging.FieldGameID, gameID,
		"timeline_entries", len(resp.Timeline),
		"pre_game_posts", len(resp.PreGamePosts),
		"post_game_posts", len(resp.PostGamePosts),
	)
	return resp, nil
}

// GameDetail fetches the spoiler-bearing game view for the explicit reveal
// surface. Same failure semantics as AssembleCatchup.
func (a *Assembler) GameDetail(ctx context.Context, gameID string) (*catchup.GameDetail, error) {
	if strings.TrimSpace(gameID) == "" {
		a.logWarn(ctx, "game detail requested without game id")
		return nil, nil
	}

	payload, err := a.provider.FetchGameDetail(ctx, gameID)
	if err != nil {
		if _, ok := providers.AsConnectionError(err); ok {
			return nil, err
		}
		a.logWarn(ctx, "failed to load game detail", logging.FieldGameID, gameID, "err", err)
		return nil, nil
	}

	game := payload.Game
	if game == nil {
		game = &providers.RawGame{}
	}
	resp := mapPayload(payload)
	return &catchup.GameDetail{
		GameHeader:  resp.Game,
		HomeScore:   game.HomeScore,
		AwayScore:   game.AwayScore,
		TeamStats:   resp.TeamStats,
		PlayerStats: resp.PlayerStats,
	}, nil
}

func (a *Assembler) logWarn(ctx context.Context, msg string, args ...any) {
	logging.Warn(logging.FromContext(ctx, a.logger), msg, args...)
}

func (a *Assembler) logInfo(ctx context.Context, msg string, args ...any) {
	logging.Info(logging.FromContext(ctx, a.logger), msg, args...)
}
