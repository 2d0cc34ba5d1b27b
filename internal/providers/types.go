package providers

// RawGamePayload mirrors the upstream game-detail JSON. Every field is
// optional; absent arrays decode to nil and are treated as empty downstream.
type RawGamePayload struct {
	Game        *RawGame        `json:"game"`
	TeamStats   []RawTeamStat   `json:"team_stats"`
	PlayerStats []RawPlayerStat `json:"player_stats"`
	Plays       []RawPlay       `json:"plays"`
	SocialPosts []RawSocialPost `json:"social_posts"`
}

// RawGame is the upstream game record. Scalar optionals are pointers so a
// missing value is distinguishable from zero.
type RawGame struct {
	ID               *int64 `json:"id"`
	HomeTeam         string `json:"home_team"`
	AwayTeam         string `json:"away_team"`
	GameDate         string `json:"game_date"`
	Venue            string `json:"venue"`
	HomeScore        *int   `json:"home_score"`
	AwayScore        *int   `json:"away_score"`
	Attendance       *int   `json:"attendance"`
	Notes            string `json:"notes"`
	GameEndTime      string `json:"game_end_time"`
	FinalWhistleTime string `json:"final_whistle_time"`
}

// RawPlay is one upstream play-by-play record.
type RawPlay struct {
	PlayIndex        *int   `json:"play_index"`
	Quarter          *int   `json:"quarter"`
	GameClock        string `json:"game_clock"`
	PlayType         string `json:"play_type"`
	TeamAbbreviation string `json:"team_abbreviation"`
	PlayerName       string `json:"player_name"`
	Description      string `json:"description"`
	HomeScore        *int   `json:"home_score"`
	AwayScore        *int   `json:"away_score"`
}

// RawSocialPost is one upstream social-media post record.
type RawSocialPost struct {
	ID               *int64 `json:"id"`
	PostURL          string `json:"post_url"`
	PostedAt         string `json:"posted_at"`
	HasVideo         *bool  `json:"has_video"`
	TeamAbbreviation string `json:"team_abbreviation"`
	TweetText        string `json:"tweet_text"`
	VideoURL         string `json:"video_url"`
	ImageURL         string `json:"image_url"`
	SourceHandle     string `json:"source_handle"`
	MediaType        string `json:"media_type"`
}

// RawTeamStat is one upstream team stat record.
type RawTeamStat struct {
	Team   string         `json:"team"`
	IsHome *bool          `json:"is_home"`
	Stats  map[string]any `json:"stats"`
}

// RawPlayerStat is one upstream player stat record.
type RawPlayerStat struct {
	Team       string         `json:"team"`
	PlayerName string         `json:"player_name"`
	Points     *int           `json:"points"`
	Rebounds   *int           `json:"rebounds"`
	Assists    *int           `json:"assists"`
	Minutes    *float64       `json:"minutes"`
	RawStats   map[string]any `json:"raw_stats"`
}
