package fixture

import (
	"context"

	"catchup-service/internal/providers"
)

// Provider returns a static game payload useful for local testing and
// bootstrapping without upstream credentials.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchGameDetail returns a deterministic example payload regardless of id.
func (p *Provider) FetchGameDetail(ctx context.Context, gameID string) (providers.RawGamePayload, error) {
	_ = ctx
	_ = gameID

	return providers.RawGamePayload{
		Game: &providers.RawGame{
			ID:               int64Ptr(1001),
			HomeTeam:         "Boston Celtics",
			AwayTeam:         "Los Angeles Lakers",
			GameDate:         "2024-01-15T19:30:00Z",
			Venue:            "TD Garden",
			HomeScore:        intPtr(112),
			AwayScore:        intPtr(108),
			Attendance:       intPtr(19156),
			GameEndTime:      "2024-01-15T22:10:00Z",
			FinalWhistleTime: "2024-01-15T22:05:00Z",
		},
		Plays: []providers.RawPlay{
			{PlayIndex: intPtr(0), Quarter: intPtr(1), GameClock: "12:00", PlayType: "jumpball", Description: "Jump ball, Celtics control"},
			{PlayIndex: intPtr(1), Quarter: intPtr(1), GameClock: "10:42", PlayType: "shot", TeamAbbreviation: "BOS", PlayerName: "J. Tatum", Description: "Tatum pull-up three", HomeScore: intPtr(3), AwayScore: intPtr(0)},
			{PlayIndex: intPtr(2), Quarter: intPtr(2), GameClock: "8:15", PlayType: "shot", TeamAbbreviation: "LAL", PlayerName: "L. James", Description: "James driving dunk", HomeScore: intPtr(28), AwayScore: intPtr(26)},
			{PlayIndex: intPtr(3), Quarter: intPtr(3), GameClock: "5:30", PlayType: "shot", TeamAbbreviation: "BOS", PlayerName: "J. Brown", Description: "Brown corner three", HomeScore: intPtr(71), AwayScore: intPtr(64)},
			{PlayIndex: intPtr(4), Quarter: intPtr(4), GameClock: "0:04", PlayType: "freethrow", TeamAbbreviation: "BOS", PlayerName: "J. Tatum", Description: "Tatum makes both free throws", HomeScore: intPtr(112), AwayScore: intPtr(108)},
		},
		SocialPosts: []providers.RawSocialPost{
			{ID: int64Ptr(1), PostURL: "https://twitter.com/celtics/status/1001", PostedAt: "2024-01-15T18:00:00Z", TeamAbbreviation: "BOS", TweetText: "Starting five for tonight", SourceHandle: "@celtics", MediaType: "image", ImageURL: "https://cdn.example.com/starters.jpg"},
			{ID: int64Ptr(2), PostURL: "https://twitter.com/lakers/status/1002", PostedAt: "2024-01-15T19:45:00Z", TeamAbbreviation: "LAL", TweetText: "We are underway in Boston", SourceHandle: "@lakers"},
			{ID: int64Ptr(3), PostURL: "https://twitter.com/celtics/status/1003", PostedAt: "2024-01-15T20:30:00Z", TeamAbbreviation: "BOS", TweetText: "Tatum is heating up", SourceHandle: "@celtics", MediaType: "video", VideoURL: "https://cdn.example.com/tatum.mp4"},
			{ID: int64Ptr(4), PostURL: "https://twitter.com/lakers/status/1004", PostedAt: "2024-01-15T21:15:00Z", TeamAbbreviation: "LAL", TweetText: "What a block", SourceHandle: "@lakers", VideoURL: "https://cdn.example.com/block.mp4"},
			{ID: int64Ptr(5), PostURL: "https://twitter.com/celtics/status/1005", PostedAt: "2024-01-15T22:20:00Z", TeamAbbreviation: "BOS", TweetText: "FINAL: Celtics win 112-108", SourceHandle: "@celtics"},
		},
		TeamStats: []providers.RawTeamStat{
			{Team: "BOS", IsHome: boolPtr(true), Stats: map[string]any{"fg_pct": 0.48, "rebounds": 44}},
			{Team: "LAL", IsHome: boolPtr(false), Stats: map[string]any{"fg_pct": 0.46, "rebounds": 41}},
		},
		PlayerStats: []providers.RawPlayerStat{
			{Team: "BOS", PlayerName: "J. Tatum", Points: intPtr(34), Rebounds: intPtr(8), Assists: intPtr(5), Minutes: float64Ptr(38.5)},
			{Team: "LAL", PlayerName: "L. James", Points: intPtr(31), Rebounds: intPtr(9), Assists: intPtr(11), Minutes: float64Ptr(40.1)},
		},
	}, nil
}

func intPtr(v int) *int             { return &v }
func int64Ptr(v int64) *int64       { return &v }
func boolPtr(v bool) *bool          { return &v }
func float64Ptr(v float64) *float64 { return &v }
