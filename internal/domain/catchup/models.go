package catchup

// MediaType classifies the media attached to a social post. Values are
// normalized on ingest; a post always carries exactly one of the three.
type MediaType string

const (
	MediaVideo MediaType = "video"
	MediaImage MediaType = "image"
	MediaNone  MediaType = "none"
)

// GameHeader is the spoiler-safe projection of a game: identity only, never scores.
type GameHeader struct {
	ID       string `json:"id"`
	HomeTeam string `json:"homeTeam"`
	AwayTeam string `json:"awayTeam"`
	Date     string `json:"date"`
	Venue    string `json:"venue,omitempty"`
}

// FinalDetails carries the spoiler-bearing complement of the header.
// Pointer fields stay nil when upstream omits a value so consumers can
// tell "unknown" from zero.
type FinalDetails struct {
	HomeScore  *int   `json:"homeScore,omitempty"`
	AwayScore  *int   `json:"awayScore,omitempty"`
	Attendance *int   `json:"attendance,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// PlayEvent is one play-by-play record with its derived elapsed game time.
type PlayEvent struct {
	ID             string `json:"id"`
	GameID         string `json:"gameId"`
	Period         int    `json:"period"`
	GameClock      string `json:"gameClock"`
	ElapsedSeconds int    `json:"elapsedSeconds"`
	EventType      string `json:"eventType"`
	Description    string `json:"description"`
	Team           string `json:"team,omitempty"`
	PlayerName     string `json:"playerName,omitempty"`
	HomeScore      *int   `json:"homeScore,omitempty"`
	AwayScore      *int   `json:"awayScore,omitempty"`
}

// SocialPost is one normalized social-media post tied to a game.
type SocialPost struct {
	ID           string    `json:"id"`
	GameID       string    `json:"gameId"`
	Team         string    `json:"team"`
	PostURL      string    `json:"postUrl"`
	TweetID      string    `json:"tweetId"`
	PostedAt     string    `json:"postedAt"`
	HasVideo     bool      `json:"hasVideo"`
	MediaType    MediaType `json:"mediaType"`
	MediaTypeRaw string    `json:"mediaTypeRaw,omitempty"`
	VideoURL     string    `json:"videoUrl"`
	ImageURL     string    `json:"imageUrl"`
	SourceHandle string    `json:"sourceHandle"`
	TweetText    string    `json:"tweetText"`
	// ContainsScore is set when the tweet text matches an outcome-revealing
	// pattern, so clients can blur the post until the user reveals the result.
	ContainsScore bool `json:"containsScore,omitempty"`
}

// TimelineEntry pairs one play event with the highlights attached to that moment.
type TimelineEntry struct {
	Event      PlayEvent    `json:"event"`
	Highlights []SocialPost `json:"highlights"`
}

// TeamStat is one raw team stat line passed through from upstream.
type TeamStat struct {
	Team   string         `json:"team"`
	IsHome bool           `json:"is_home"`
	Stats  map[string]any `json:"stats"`
}

// PlayerStat is one raw player stat line passed through from upstream.
type PlayerStat struct {
	Team       string         `json:"team"`
	PlayerName string         `json:"player_name"`
	Points     *int           `json:"points,omitempty"`
	Rebounds   *int           `json:"rebounds,omitempty"`
	Assists    *int           `json:"assists,omitempty"`
	Minutes    *float64       `json:"minutes,omitempty"`
	RawStats   map[string]any `json:"raw_stats"`
}

// Response is the assembled catchup document for one game: the spoiler-safe
// header, the three chronological post buckets, the populated timeline, and
// the final (spoiler) statistics block.
//
// Invariant: every social post returned by upstream for the game appears in
// exactly one of PreGamePosts, a timeline entry's Highlights, or PostGamePosts.
type Response struct {
	Game          GameHeader      `json:"game"`
	PreGamePosts  []SocialPost    `json:"preGamePosts"`
	Timeline      []TimelineEntry `json:"timeline"`
	PostGamePosts []SocialPost    `json:"postGamePosts"`
	PlayerStats   []PlayerStat    `json:"playerStats"`
	TeamStats     []TeamStat      `json:"teamStats"`
	FinalDetails  FinalDetails    `json:"finalDetails"`
}

// GameDetail is the spoiler-bearing game view served by the explicit reveal
// surface. It is the same upstream entity as GameHeader plus FinalDetails.
type GameDetail struct {
	GameHeader
	HomeScore   *int         `json:"homeScore,omitempty"`
	AwayScore   *int         `json:"awayScore,omitempty"`
	TeamStats   []TeamStat   `json:"teamStats,omitempty"`
	PlayerStats []PlayerStat `json:"playerStats,omitempty"`
}
