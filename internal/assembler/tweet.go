package assembler

import "regexp"

var tweetIDPattern = regexp.MustCompile(`status/(\d+)`)

// ExtractTweetID parses the numeric id following "status/" in a post URL.
// Absent or malformed URLs resolve to an empty string, never an error.
func ExtractTweetID(postURL string) string {
	if postURL == "" {
		return ""
	}
	match := tweetIDPattern.FindStringSubmatch(postURL)
	if match == nil {
		return ""
	}
	return match[1]
}
