package providers

import "context"

// CatchupProvider defines how the raw per-game payload is fetched from the
// upstream sports-data source. Implementations return the payload as-is;
// normalization into the catchup document happens in the assembler.
type CatchupProvider interface {
	FetchGameDetail(ctx context.Context, gameID string) (RawGamePayload, error)
}
