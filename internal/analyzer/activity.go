package analyzer

import (
	"fmt"

	"github.com/moodpath/backend/internal/models"
	"github.com/moodpath/backend/internal/stats"
)

// Activity correlates free-form activity labels with mood. An entry tagged
// with several activities contributes its score to each of them.
func Activity(s Snapshot) []models.Insight {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	latest := make(map[string]models.MoodEntry)

	for _, e := range s.Entries {
		for _, a := range models.NormalizeActivities(e.Activities) {
			sums[a] += e.Mood.Score()
			counts[a]++
			if e.Timestamp.After(latest[a].Timestamp) {
				latest[a] = e
			}
		}
	}

	qualifying := make(map[string]stats.Group)
	for label, count := range counts {
		if count < minPerActivity {
			continue
		}
		qualifying[label] = stats.Group{Average: sums[label] / float64(count), Count: count}
	}

	if len(qualifying) < minActivitiesForTop {
		return nil
	}

	// Deterministic iteration: lexicographic label order breaks ties.
	var top, bottom string
	topAvg, bottomAvg := -1.0, 5.0
	for _, label := range sortedKeys(qualifying) {
		g := qualifying[label]
		if g.Average > topAvg {
			topAvg = g.Average
			top = label
		}
		if g.Average < bottomAvg {
			bottomAvg = g.Average
			bottom = label
		}
	}

	insights := []models.Insight{{
		ID:          insightID("activity", "top", top),
		Analyzer:    "activity",
		Title:       fmt.Sprintf("%s Boosts Your Mood", titleCase(top)),
		Description: fmt.Sprintf("Your mood averages %s when your day includes %s.", models.MoodFromScore(topAvg), top),
		ActionItem:  fmt.Sprintf("Make room for %s more often, especially on harder days.", top),
		Category:    models.InsightCategoryPattern,
		Priority:    models.PriorityMedium,
		SampleSize:  qualifying[top].Count,
		CreatedAt:   latest[top].Timestamp,
		Related:     &models.RelatedContext{Kind: models.RelatedActivity, Value: top},
	}}

	if len(qualifying) >= minActivitiesForSpread && top != bottom && topAvg-bottomAvg >= activityGapThreshold {
		insights = append(insights, models.Insight{
			ID:          insightID("activity", "spread", top, bottom),
			Analyzer:    "activity",
			Title:       "Your Activities Shape Your Mood",
			Description: fmt.Sprintf("Days with %s average %s, while days with %s average %s.", top, models.MoodFromScore(topAvg), bottom, models.MoodFromScore(bottomAvg)),
			ActionItem:  fmt.Sprintf("Pairing %s with something you enjoy may soften its effect.", bottom),
			Category:    models.InsightCategoryPattern,
			Priority:    models.PriorityLow,
			SampleSize:  qualifying[top].Count + qualifying[bottom].Count,
			CreatedAt:   laterOf(latest[top].Timestamp, latest[bottom].Timestamp),
			Related:     &models.RelatedContext{Kind: models.RelatedActivity, Value: bottom},
		})
	}

	return insights
}
