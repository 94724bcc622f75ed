package analyzer

import (
	"fmt"
	"strconv"
	"time"

	"github.com/moodpath/backend/internal/models"
	"github.com/moodpath/backend/internal/stats"
)

// DayOfWeek looks for days of the week with consistently different moods,
// and separately compares the weekday aggregate against the weekend.
func DayOfWeek(s Snapshot) []models.Insight {
	insights := bestWorstWeekday(s)
	if weekend := weekendComparison(s); weekend != nil {
		insights = append(insights, *weekend)
	}
	return insights
}

func bestWorstWeekday(s Snapshot) []models.Insight {
	groups := stats.GroupAverage(s.Entries, func(e models.MoodEntry) string {
		return strconv.Itoa(int(e.Timestamp.UTC().Weekday()))
	}, minPerWeekday)

	if len(groups) < minWeekdaysRepresented {
		return nil
	}

	// Iterate Sunday..Saturday for a deterministic tie-break.
	bestDay, worstDay := -1, -1
	bestAvg, worstAvg := -1.0, 5.0
	for day := 0; day < 7; day++ {
		g, ok := groups[strconv.Itoa(day)]
		if !ok {
			continue
		}
		if g.Average > bestAvg {
			bestAvg = g.Average
			bestDay = day
		}
		if g.Average < worstAvg {
			worstAvg = g.Average
			worstDay = day
		}
	}

	if bestDay == worstDay || bestAvg-worstAvg < weekdayGapThreshold {
		return nil
	}

	bestName := time.Weekday(bestDay).String()
	worstName := time.Weekday(worstDay).String()

	return []models.Insight{{
		ID:          insightID("day_of_week", bestName, worstName),
		Analyzer:    "day_of_week",
		Title:       fmt.Sprintf("%ss Are Your Best Day", bestName),
		Description: fmt.Sprintf("Your mood is typically %s on %ss and %s on %ss.", models.MoodFromScore(bestAvg), bestName, models.MoodFromScore(worstAvg), worstName),
		ActionItem:  fmt.Sprintf("Consider what makes %ss better and try to bring those elements to other days.", bestName),
		Category:    models.InsightCategoryPattern,
		Priority:    models.PriorityMedium,
		SampleSize:  groups[strconv.Itoa(bestDay)].Count + groups[strconv.Itoa(worstDay)].Count,
		CreatedAt:   latestTimestamp(entriesOnWeekday(s.Entries, time.Weekday(bestDay), time.Weekday(worstDay))),
		Related:     &models.RelatedContext{Kind: models.RelatedWeekday, Value: bestName},
	}}
}

func weekendComparison(s Snapshot) *models.Insight {
	var weekdayScores, weekendScores []float64
	for _, e := range s.Entries {
		if isWeekend(e.Timestamp.UTC().Weekday()) {
			weekendScores = append(weekendScores, e.Mood.Score())
		} else {
			weekdayScores = append(weekdayScores, e.Mood.Score())
		}
	}

	if len(weekdayScores) < minWeekdayRecords || len(weekendScores) < minWeekendRecords {
		return nil
	}

	weekdayAvg := stats.Mean(weekdayScores)
	weekendAvg := stats.Mean(weekendScores)
	gap := weekendAvg - weekdayAvg
	if gap < weekendGapThreshold && gap > -weekendGapThreshold {
		return nil
	}

	insight := models.Insight{
		Analyzer:   "day_of_week",
		Category:   models.InsightCategoryPattern,
		Priority:   models.PriorityMedium,
		SampleSize: len(weekdayScores) + len(weekendScores),
		CreatedAt:  s.Latest,
	}

	if gap > 0 {
		insight.ID = insightID("day_of_week", "weekend_better")
		insight.Title = "Weekends Lift Your Mood"
		insight.Description = fmt.Sprintf("Your mood averages %s on weekends but %s during the week.", models.MoodFromScore(weekendAvg), models.MoodFromScore(weekdayAvg))
		insight.ActionItem = "Look for ways to bring weekend activities into your weekday routine."
	} else {
		insight.ID = insightID("day_of_week", "weekday_better")
		insight.Title = "Weekdays Suit You Better"
		insight.Description = fmt.Sprintf("Your mood averages %s during the week but %s on weekends.", models.MoodFromScore(weekdayAvg), models.MoodFromScore(weekendAvg))
		insight.ActionItem = "Weekend structure may help: consider planning activities ahead."
	}

	return &insight
}

func isWeekend(d time.Weekday) bool {
	return d == time.Saturday || d == time.Sunday
}

func entriesOnWeekday(entries []models.MoodEntry, days ...time.Weekday) []models.MoodEntry {
	out := make([]models.MoodEntry, 0, len(entries))
	for _, e := range entries {
		for _, d := range days {
			if e.Timestamp.UTC().Weekday() == d {
				out = append(out, e)
				break
			}
		}
	}
	return out
}
