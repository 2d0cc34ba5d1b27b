package catchup

import "fmt"

// PeriodGroup is a contiguous run of timeline entries sharing a period,
// used to render period dividers.
type PeriodGroup struct {
	Period  int             `json:"period"`
	Label   string          `json:"label"`
	Entries []TimelineEntry `json:"entries"`
}

// GroupByPeriod buckets timeline entries by period in first-seen order.
func GroupByPeriod(timeline []TimelineEntry) []PeriodGroup {
	groups := make([]PeriodGroup, 0)
	index := make(map[int]int)

	for _, entry := range timeline {
		period := entry.Event.Period
		at, ok := index[period]
		if !ok {
			index[period] = len(groups)
			groups = append(groups, PeriodGroup{
				Period: period,
				Label:  PeriodLabel(period),
			})
			at = index[period]
		}
		groups[at].Entries = append(groups[at].Entries, entry)
	}

	return groups
}

var quarterLabels = [...]string{"", "1st Quarter", "2nd Quarter", "3rd Quarter", "4th Quarter"}

// PeriodLabel renders a display label for a period, including overtime.
func PeriodLabel(period int) string {
	if period > 4 {
		if period == 5 {
			return "Overtime"
		}
		return fmt.Sprintf("Overtime %d", period-4)
	}
	if period >= 1 {
		return quarterLabels[period]
	}
	return fmt.Sprintf("Period %d", period)
}

// PeriodShortLabel renders the compact form (Q1..Q4, OT, OT2...).
func PeriodShortLabel(period int) string {
	if period > 4 {
		if period == 5 {
			return "OT"
		}
		return fmt.Sprintf("OT%d", period-4)
	}
	if period >= 1 {
		return fmt.Sprintf("Q%d", period)
	}
	return "Period"
}

// LastScoreSnapshot walks the entries backwards and returns the most recent
// play that carried both scores. ok is false when no play did.
func LastScoreSnapshot(entries []TimelineEntry) (home, away int, ok bool) {
	for i := len(entries) - 1; i >= 0; i-- {
		event := entries[i].Event
		if event.HomeScore != nil && event.AwayScore != nil {
			return *event.HomeScore, *event.AwayScore, true
		}
	}
	return 0, 0, false
}
