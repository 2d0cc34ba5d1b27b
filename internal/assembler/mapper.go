package assembler

import (
	"fmt"
	"strconv"

	"catchup-service/internal/domain/catchup"
	"catchup-service/internal/providers"
	"catchup-service/internal/spoiler"
)

// mapPayload runs the full assembly pipeline over a raw upstream payload:
// normalize posts, sort chronologically, partition into pre/in/post-game,
// build the timeline from plays, distribute in-game posts, and assemble the
// response. Missing fields degrade to defaults per field; nothing here fails.
func mapPayload(payload providers.RawGamePayload) *catchup.Response {
	game := payload.Game
	if game == nil {
		game = &providers.RawGame{}
	}
	gameID := formatGameID(game.ID)

	posts := make([]catchup.SocialPost, 0, len(payload.SocialPosts))
	for _, raw := range payload.SocialPosts {
		posts = append(posts, mapPost(raw, gameID))
	}
	sortPostsByTime(posts)

	remaining, postGamePosts := splitPostGame(posts, game)
	preGamePosts, inGamePosts := splitPreGame(remaining)

	timeline := make([]catchup.TimelineEntry, 0, len(payload.Plays))
	for i, play := range payload.Plays {
		timeline = append(timeline, catchup.TimelineEntry{
			Event:      mapPlay(play, gameID, i),
			Highlights: []catchup.SocialPost{},
		})
	}
	distributeHighlights(timeline, inGamePosts)

	playerStats := make([]catchup.PlayerStat, 0, len(payload.PlayerStats))
	for _, raw := range payload.PlayerStats {
		playerStats = append(playerStats, mapPlayerStat(raw))
	}
	teamStats := make([]catchup.TeamStat, 0, len(payload.TeamStats))
	for _, raw := range payload.TeamStats {
		teamStats = append(teamStats, mapTeamStat(raw))
	}

	if preGamePosts == nil {
		preGamePosts = []catchup.SocialPost{}
	}
	if postGamePosts == nil {
		postGamePosts = []catchup.SocialPost{}
	}

	return &catchup.Response{
		Game:          mapHeader(game, gameID),
		PreGamePosts:  preGamePosts,
		Timeline:      timeline,
		PostGamePosts: postGamePosts,
		PlayerStats:   playerStats,
		TeamStats:     teamStats,
		FinalDetails: catchup.FinalDetails{
			HomeScore:  game.HomeScore,
			AwayScore:  game.AwayScore,
			Attendance: game.Attendance,
			Notes:      game.Notes,
		},
	}
}

func mapHeader(game *providers.RawGame, gameID string) catchup.GameHeader {
	return catchup.GameHeader{
		ID:       gameID,
		HomeTeam: game.HomeTeam,
		AwayTeam: game.AwayTeam,
		Date:     game.GameDate,
		Venue:    game.Venue,
	}
}

func mapPost(raw providers.RawSocialPost, gameID string) catchup.SocialPost {
	mediaType := NormalizeMediaType(raw.MediaType, raw.VideoURL, raw.ImageURL)
	return catchup.SocialPost{
		ID:            formatPostID(raw.ID),
		GameID:        gameID,
		Team:          raw.TeamAbbreviation,
		PostURL:       raw.PostURL,
		TweetID:       ExtractTweetID(raw.PostURL),
		PostedAt:      raw.PostedAt,
		HasVideo:      mediaType == catchup.MediaVideo,
		MediaType:     mediaType,
		MediaTypeRaw:  raw.MediaType,
		VideoURL:      raw.VideoURL,
		ImageURL:      raw.ImageURL,
		SourceHandle:  raw.SourceHandle,
		TweetText:     raw.TweetText,
		ContainsScore: spoiler.Contains(raw.TweetText),
	}
}

func mapPlay(raw providers.RawPlay, gameID string, index int) catchup.PlayEvent {
	idx := index
	if raw.PlayIndex != nil {
		idx = *raw.PlayIndex
	}
	period := 0
	if raw.Quarter != nil {
		period = *raw.Quarter
	}
	eventType := raw.PlayType
	if eventType == "" {
		eventType = "play"
	}

	return catchup.PlayEvent{
		ID:             fmt.Sprintf("pbp-%d", idx),
		GameID:         gameID,
		Period:         period,
		GameClock:      raw.GameClock,
		ElapsedSeconds: ElapsedSeconds(period, raw.GameClock),
		EventType:      eventType,
		Description:    raw.Description,
		Team:           raw.TeamAbbreviation,
		PlayerName:     raw.PlayerName,
		HomeScore:      raw.HomeScore,
		AwayScore:      raw.AwayScore,
	}
}

func mapPlayerStat(raw providers.RawPlayerStat) catchup.PlayerStat {
	stats := raw.RawStats
	if stats == nil {
		stats = map[string]any{}
	}
	return catchup.PlayerStat{
		Team:       raw.Team,
		PlayerName: raw.PlayerName,
		Points:     raw.Points,
		Rebounds:   raw.Rebounds,
		Assists:    raw.Assists,
		Minutes:    raw.Minutes,
		RawStats:   stats,
	}
}

func mapTeamStat(raw providers.RawTeamStat) catchup.TeamStat {
	stats := raw.Stats
	if stats == nil {
		stats = map[string]any{}
	}
	isHome := false
	if raw.IsHome != nil {
		isHome = *raw.IsHome
	}
	return catchup.TeamStat{
		Team:   raw.Team,
		IsHome: isHome,
		Stats:  stats,
	}
}

// formatGameID renders the upstream numeric id as a string. Zero and absent
// ids both become "", matching the upstream client's falsy handling.
func formatGameID(id *int64) string {
	if id == nil || *id == 0 {
		return ""
	}
	return strconv.FormatInt(*id, 10)
}

func formatPostID(id *int64) string {
	return formatGameID(id)
}
