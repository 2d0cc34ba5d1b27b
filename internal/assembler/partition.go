package assembler

import (
	"sort"
	"time"

	"catchup-service/internal/domain/catchup"
	"catchup-service/internal/providers"
)

// Bucket ratio constants. Both are heuristics carried over for behavioral
// compatibility; tune here, not inline.
const (
	// postGameFallbackRatio is used when no usable end-of-game timestamp
	// exists: the last 10% of posts (min 1) are treated as post-game.
	postGameFallbackRatio = 0.1
	// preGameRatio marks the earliest 20% of non-post-game posts (min 1)
	// as pre-game.
	preGameRatio = 0.2
)

// postedAtLayouts are tried in order when parsing post timestamps.
var postedAtLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTimestamp parses an upstream timestamp string. Unparseable values
// return the zero time and ok=false; callers sort those first, matching the
// upstream client behavior for invalid dates.
func parseTimestamp(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range postedAtLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// sortPostsByTime orders posts ascending by parsed PostedAt. The sort is
// stable: posts with identical or unparseable timestamps keep their original
// feed order.
func sortPostsByTime(posts []catchup.SocialPost) {
	sort.SliceStable(posts, func(i, j int) bool {
		ti, _ := parseTimestamp(posts[i].PostedAt)
		tj, _ := parseTimestamp(posts[j].PostedAt)
		return ti.Before(tj)
	})
}

// splitPostGame partitions chronologically sorted posts into (remaining,
// postGame). Posts strictly after the game's end timestamp are post-game;
// when no usable end timestamp exists or it matches nothing, the last 10%
// (min 1) serve as a crude fallback.
func splitPostGame(posts []catchup.SocialPost, game *providers.RawGame) (remaining, postGame []catchup.SocialPost) {
	if len(posts) == 0 {
		return nil, nil
	}

	if game != nil {
		endValue := game.FinalWhistleTime
		if endValue == "" {
			endValue = game.GameEndTime
		}
		if end, ok := parseTimestamp(endValue); ok {
			for _, post := range posts {
				if posted, parsed := parseTimestamp(post.PostedAt); parsed && posted.After(end) {
					postGame = append(postGame, post)
				} else {
					remaining = append(remaining, post)
				}
			}
			if len(postGame) > 0 {
				return remaining, postGame
			}
			remaining = nil
		}
	}

	count := int(float64(len(posts))*postGameFallbackRatio + 0.5)
	if count < 1 {
		count = 1
	}
	cut := len(posts) - count
	return posts[:cut], posts[cut:]
}

// splitPreGame slices the earliest 20% (min 1 if any remain) off the
// non-post-game posts; the rest are in-game and eligible for timeline
// attachment.
func splitPreGame(posts []catchup.SocialPost) (preGame, inGame []catchup.SocialPost) {
	if len(posts) == 0 {
		return nil, nil
	}
	count := int(float64(len(posts)) * preGameRatio)
	if count < 1 {
		count = 1
	}
	return posts[:count], posts[count:]
}

// distributeHighlights spreads in-game posts roughly evenly across the
// timeline by index position. This is deliberately not a timestamp join: if
// upstream ever supplies per-post elapsed game time, replace this with a
// nearest-timestamp match.
func distributeHighlights(timeline []catchup.TimelineEntry, inGame []catchup.SocialPost) {
	if len(timeline) == 0 || len(inGame) == 0 {
		return
	}

	postsPerSection := (len(timeline) + len(inGame) - 1) / len(inGame)
	for i, post := range inGame {
		target := i * postsPerSection
		if target > len(timeline)-1 {
			target = len(timeline) - 1
		}
		timeline[target].Highlights = append(timeline[target].Highlights, post)
	}
}
