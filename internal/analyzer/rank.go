package analyzer

import (
	"sort"

	"github.com/moodpath/backend/internal/models"
)

// Generate runs every analyzer over the records and returns the ranked,
// merged insight list. With fewer than MinEntriesForInsights records no
// analyzer is invoked; a single insufficient-data insight is returned so
// the caller can still render something meaningful.
func Generate(entries []models.MoodEntry) []models.Insight {
	if len(entries) < MinEntriesForInsights {
		return []models.Insight{insufficientData(entries)}
	}

	s := NewSnapshot(entries)
	var insights []models.Insight
	for _, analyze := range analyzers {
		insights = append(insights, analyze(s)...)
	}
	return Rank(insights)
}

// Rank orders insights by priority ascending (high first), then by
// CreatedAt descending, then by ID for full determinism. Each analyzer's
// threshold is the only noise gate; the ranker does not deduplicate
// across analyzers.
func Rank(insights []models.Insight) []models.Insight {
	sort.SliceStable(insights, func(i, j int) bool {
		a, b := insights[i], insights[j]
		if a.Priority.Rank() != b.Priority.Rank() {
			return a.Priority.Rank() < b.Priority.Rank()
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID < b.ID
	})
	return insights
}

func insufficientData(entries []models.MoodEntry) models.Insight {
	return models.Insight{
		ID:          insightID("ranker", "insufficient_data"),
		Analyzer:    "ranker",
		Title:       "Keep Logging Your Mood",
		Description: "We need more data to generate personalized insights. Keep logging your mood daily.",
		Category:    models.InsightCategorySuggestion,
		Priority:    models.PriorityLow,
		SampleSize:  len(entries),
		CreatedAt:   latestTimestamp(entries),
	}
}
