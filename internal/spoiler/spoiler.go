// Package spoiler detects outcome-revealing content in social post text so
// the catchup surface can withhold it until the viewer opts in.
package spoiler

import "regexp"

// Reason categorizes why a text was flagged.
type Reason string

const (
	ReasonScore        Reason = "score"
	ReasonFinalKeyword Reason = "final_keyword"
	ReasonRecap        Reason = "recap"
)

// scorePatterns match final-score formats like "112-108", "W 112-108",
// "Final: 112-108" (hyphen, en-dash or em-dash).
var scorePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{2,3}\s*[-–—]\s*\d{2,3}\b`),
	regexp.MustCompile(`(?i)\b[WL]\s*\d{2,3}\s*[-–—]\s*\d{2,3}\b`),
	regexp.MustCompile(`(?i)final\s*:?\s*\d{2,3}\s*[-–—]\s*\d{2,3}`),
}

// finalKeywords strongly indicate game conclusion.
var finalKeywords = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bfinal\b`),
	regexp.MustCompile(`(?i)\bfinal score\b`),
	regexp.MustCompile(`(?i)\bend of (game|regulation)\b`),
	regexp.MustCompile(`(?i)\bgame over\b`),
	regexp.MustCompile(`(?i)\bwe win\b`),
	regexp.MustCompile(`(?i)\bwe lose\b`),
	regexp.MustCompile(`(?i)\bvictory\b`),
	regexp.MustCompile(`(?i)\bdefeat\b`),
	regexp.MustCompile(`(?i)\bwins\s+\d{2,3}\s*[-–—]\s*\d{2,3}\b`),
	regexp.MustCompile(`(?i)\blose[sd]?\s+\d{2,3}\s*[-–—]\s*\d{2,3}\b`),
}

// recapPatterns match recap/summary content.
var recapPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\brecap\b`),
	regexp.MustCompile(`(?i)\bgame recap\b`),
	regexp.MustCompile(`(?i)\bpost-?game\b`),
	regexp.MustCompile(`(?i)\bhighlights from\b`),
	regexp.MustCompile(`(?i)\bfull (game )?highlights\b`),
	regexp.MustCompile(`(?i)\bwatch the (full )?recap\b`),
}

// CheckResult reports whether text was flagged and why.
type CheckResult struct {
	IsSpoiler      bool   `json:"isSpoiler"`
	Reason         Reason `json:"reason,omitempty"`
	MatchedPattern string `json:"matchedPattern,omitempty"`
}

// Check scans text for spoiler content. Score patterns are checked first as
// the most definitive signal, then final keywords, then recap phrasing.
func Check(text string) CheckResult {
	if text == "" {
		return CheckResult{}
	}

	for _, pattern := range scorePatterns {
		if pattern.MatchString(text) {
			return CheckResult{IsSpoiler: true, Reason: ReasonScore, MatchedPattern: pattern.String()}
		}
	}
	for _, pattern := range finalKeywords {
		if pattern.MatchString(text) {
			return CheckResult{IsSpoiler: true, Reason: ReasonFinalKeyword, MatchedPattern: pattern.String()}
		}
	}
	for _, pattern := range recapPatterns {
		if pattern.MatchString(text) {
			return CheckResult{IsSpoiler: true, Reason: ReasonRecap, MatchedPattern: pattern.String()}
		}
	}

	return CheckResult{}
}

// Contains is the quick boolean form of Check.
func Contains(text string) bool {
	return Check(text).IsSpoiler
}
