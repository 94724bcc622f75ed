package analyzer

import (
	"fmt"
	"strings"

	"github.com/moodpath/backend/internal/models"
	"github.com/moodpath/backend/internal/stats"
)

// timeBuckets is the fixed bucket order used for deterministic tie-breaks.
// Full-day entries carry no time-of-day signal and are excluded.
var timeBuckets = []models.TimeOfDay{
	models.TimeMorning,
	models.TimeAfternoon,
	models.TimeEvening,
	models.TimeNight,
}

// TimeOfDay finds the parts of the day where the user consistently feels
// best and worst. Both a best and a worst insight are emitted when the gap
// between the two bucket averages reaches the threshold.
func TimeOfDay(s Snapshot) []models.Insight {
	groups := stats.GroupAverage(s.Entries, func(e models.MoodEntry) string {
		if e.TimeOfDay == models.TimeFullDay || !e.TimeOfDay.Valid() {
			return ""
		}
		return string(e.TimeOfDay)
	}, minPerTimeBucket)

	if len(groups) < minQualifyingBuckets {
		return nil
	}

	var best, worst models.TimeOfDay
	bestAvg, worstAvg := -1.0, 5.0
	for _, bucket := range timeBuckets {
		g, ok := groups[string(bucket)]
		if !ok {
			continue
		}
		if g.Average > bestAvg {
			bestAvg = g.Average
			best = bucket
		}
		if g.Average < worstAvg {
			worstAvg = g.Average
			worst = bucket
		}
	}

	if best == worst || bestAvg-worstAvg < timeOfDayGapThreshold {
		return nil
	}

	return []models.Insight{
		{
			ID:          insightID("time_of_day", "best", string(best)),
			Analyzer:    "time_of_day",
			Title:       fmt.Sprintf("You Feel Best During the %s", titleCase(string(best))),
			Description: fmt.Sprintf("Based on your logs, you tend to feel %s during the %s.", models.MoodFromScore(bestAvg), best),
			ActionItem:  fmt.Sprintf("Try to schedule important activities during the %s when possible.", best),
			Category:    models.InsightCategoryPattern,
			Priority:    models.PriorityMedium,
			SampleSize:  groups[string(best)].Count,
			CreatedAt:   latestTimestamp(entriesInBucket(s.Entries, best)),
			Related:     &models.RelatedContext{Kind: models.RelatedTimeOfDay, Value: string(best)},
		},
		{
			ID:          insightID("time_of_day", "worst", string(worst)),
			Analyzer:    "time_of_day",
			Title:       fmt.Sprintf("You Feel Less Positive During the %s", titleCase(string(worst))),
			Description: fmt.Sprintf("Your mood tends to be %s during the %s.", models.MoodFromScore(worstAvg), worst),
			ActionItem:  fmt.Sprintf("Consider adding mood-boosting activities to your %s routine.", worst),
			Category:    models.InsightCategoryPattern,
			Priority:    models.PriorityMedium,
			SampleSize:  groups[string(worst)].Count,
			CreatedAt:   latestTimestamp(entriesInBucket(s.Entries, worst)),
			Related:     &models.RelatedContext{Kind: models.RelatedTimeOfDay, Value: string(worst)},
		},
	}
}

func entriesInBucket(entries []models.MoodEntry, bucket models.TimeOfDay) []models.MoodEntry {
	out := make([]models.MoodEntry, 0, len(entries))
	for _, e := range entries {
		if e.TimeOfDay == bucket {
			out = append(out, e)
		}
	}
	return out
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
