package assembler

import (
	"regexp"
	"strconv"
)

// quarterSeconds is the regulation quarter length. Overtime periods are
// treated the same; elapsed time past the 4th quarter keeps growing on the
// same scale, which is all the ordering needs.
const quarterSeconds = 12 * 60

// clockPattern matches the leading minutes:seconds of a game clock string.
// Fractional seconds ("5:30.0") are ignored.
var clockPattern = regexp.MustCompile(`^(\d+):(\d+)`)

// ElapsedSeconds converts a period number and raw game-clock string into
// seconds elapsed since tip-off. Periods <= 0 contribute no completed-quarter
// time; an unparseable clock contributes no in-quarter offset.
func ElapsedSeconds(period int, gameClock string) int {
	completed := period - 1
	if completed < 0 {
		completed = 0
	}
	elapsed := completed * quarterSeconds

	match := clockPattern.FindStringSubmatch(gameClock)
	if match == nil {
		return elapsed
	}

	minutes, _ := strconv.Atoi(match[1])
	seconds, _ := strconv.Atoi(match[2])
	remaining := minutes*60 + seconds
	return elapsed + quarterSeconds - remaining
}
