// Package socialdir holds the directory of official team social accounts and
// the per-game capture windows used when collecting posts for a matchup.
package socialdir

import "time"

// TeamSocialAccount identifies one team's official account on a platform.
type TeamSocialAccount struct {
	TeamID     string `json:"teamId"`
	TeamName   string `json:"teamName"`
	Platform   string `json:"platform"`
	Handle     string `json:"handle"`
	ProfileURL string `json:"profileUrl"`
}

// GameSocialWindow bounds the time span in which posts are considered part
// of a game's social feed: a couple hours before tip-off through roughly the
// game's duration after it, which avoids most "FINAL" tweets.
type GameSocialWindow struct {
	GameID        string              `json:"gameId"`
	GameStartTime time.Time           `json:"gameStartTime"`
	WindowStart   time.Time           `json:"windowStart"`
	WindowEnd     time.Time           `json:"windowEnd"`
	Teams         []TeamSocialAccount `json:"teams"`
}

const (
	preGameWindowHours  = 2
	postGameWindowHours = 3
)

// firstString returns the first value among the candidate keys that is
// present in the map and is a string. The key list is checked in priority
// order; historical feed shapes used different casings for the same field.
func firstString(record map[string]any, keys ...string) string {
	for _, key := range keys {
		if value, ok := record[key].(string); ok {
			return value
		}
	}
	return ""
}
