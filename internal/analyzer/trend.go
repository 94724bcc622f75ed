package analyzer

import (
	"fmt"
	"sort"
	"time"

	"github.com/moodpath/backend/internal/models"
	"github.com/moodpath/backend/internal/stats"
)

// Trend covers the time-series analyzers: week-over-week mood change,
// logging consistency over the trailing two weeks, and runs of
// consecutive negative or positive days.
//
// Windows anchor at the newest observation's calendar day, never the wall
// clock, so identical snapshots always produce identical output.
func Trend(s Snapshot) []models.Insight {
	var insights []models.Insight
	if change := moodChange(s); change != nil {
		insights = append(insights, *change)
	}
	if consistency := loggingConsistency(s); consistency != nil {
		insights = append(insights, *consistency)
	}
	insights = append(insights, consecutiveRuns(s)...)
	return insights
}

// moodChange compares the trailing seven days against the seven before.
func moodChange(s Snapshot) *models.Insight {
	ref := s.RefDay()
	recentStart := ref.AddDate(0, 0, -(trendWindowDays - 1))
	previousStart := recentStart.AddDate(0, 0, -trendWindowDays)

	var recent, previous []float64
	for _, e := range s.Entries {
		day := e.Day()
		switch {
		case !day.Before(recentStart):
			recent = append(recent, e.Mood.Score())
		case !day.Before(previousStart):
			previous = append(previous, e.Mood.Score())
		}
	}

	if len(recent) < minPerTrendWindow || len(previous) < minPerTrendWindow {
		return nil
	}

	delta := stats.Mean(recent) - stats.Mean(previous)
	switch {
	case delta >= trendDeltaThreshold:
		return &models.Insight{
			ID:          insightID("trend", "improving"),
			Analyzer:    "trend",
			Title:       "Your Mood Has Been Improving",
			Description: "Your average mood has significantly improved over the past week compared to the previous week.",
			ActionItem:  "Reflect on what positive changes you've made recently and continue these practices.",
			Category:    models.InsightCategoryAchievement,
			Priority:    models.PriorityMedium,
			SampleSize:  len(recent) + len(previous),
			CreatedAt:   s.Latest,
		}
	case delta <= -trendDeltaThreshold:
		return &models.Insight{
			ID:          insightID("trend", "declining"),
			Analyzer:    "trend",
			Title:       "Your Mood Has Been Lower Recently",
			Description: "Your average mood has been lower over the past week compared to the previous week.",
			ActionItem:  "Consider what factors might be affecting your mood and try introducing more self-care activities.",
			Category:    models.InsightCategoryWarning,
			Priority:    models.PriorityHigh,
			SampleSize:  len(recent) + len(previous),
			CreatedAt:   s.Latest,
		}
	}
	return nil
}

// loggingConsistency rewards covering most of the trailing fourteen days.
func loggingConsistency(s Snapshot) *models.Insight {
	ref := s.RefDay()
	windowStart := ref.AddDate(0, 0, -(coverageWindowDays - 1))

	days := make(map[time.Time]bool)
	for _, e := range s.Entries {
		if day := e.Day(); !day.Before(windowStart) && !day.After(ref) {
			days[day] = true
		}
	}

	ratio := float64(len(days)) / float64(coverageWindowDays)
	if ratio < coverageThreshold {
		return nil
	}

	return &models.Insight{
		ID:          insightID("trend", "consistency"),
		Analyzer:    "trend",
		Title:       "You're Tracking Consistently",
		Description: fmt.Sprintf("You've logged your mood on %d of the last %d days. Consistent tracking makes your insights more reliable.", len(days), coverageWindowDays),
		Category:    models.InsightCategoryAchievement,
		Priority:    models.PriorityLow,
		SampleSize:  len(days),
		CreatedAt:   s.Latest,
	}
}

// dayMood is one calendar day reduced to its dominant mood.
type dayMood struct {
	day  time.Time
	mood models.MoodLevel
	last time.Time
}

// consecutiveRuns scans for three consecutive calendar days dominated by
// negative or positive moods. Each qualifying run emits one insight,
// dated to the run's third day.
func consecutiveRuns(s Snapshot) []models.Insight {
	days := dominantByDay(s.Entries)
	if len(days) < consecutiveRunLength {
		return nil
	}

	var insights []models.Insight
	negative, positive := 0, 0
	for i, d := range days {
		if i > 0 && !d.day.Equal(days[i-1].day.AddDate(0, 0, 1)) {
			negative, positive = 0, 0
		}

		switch {
		case d.mood.IsNegative():
			negative++
			positive = 0
		case d.mood.IsPositive():
			positive++
			negative = 0
		default:
			negative, positive = 0, 0
		}

		dayKey := d.day.Format("2006-01-02")
		if negative == consecutiveRunLength {
			insights = append(insights, models.Insight{
				ID:          insightID("trend", "negative_run", dayKey),
				Analyzer:    "trend",
				Title:       "You've Had Several Challenging Days",
				Description: fmt.Sprintf("You've logged negative moods for %d consecutive days, ending on %s.", consecutiveRunLength, d.day.Format("Jan 2, 2006")),
				ActionItem:  "Consider reaching out to a friend or trying a new self-care activity to break this cycle.",
				Category:    models.InsightCategoryWarning,
				Priority:    models.PriorityHigh,
				SampleSize:  consecutiveRunLength,
				CreatedAt:   d.last,
				Related:     &models.RelatedContext{Kind: models.RelatedDate, Value: dayKey},
			})
		}
		if positive == consecutiveRunLength {
			insights = append(insights, models.Insight{
				ID:          insightID("trend", "positive_run", dayKey),
				Analyzer:    "trend",
				Title:       "You're On a Positive Streak!",
				Description: fmt.Sprintf("You've logged positive moods for %d consecutive days, ending on %s.", consecutiveRunLength, d.day.Format("Jan 2, 2006")),
				ActionItem:  "Reflect on what's been contributing to this positive streak and try to maintain these factors.",
				Category:    models.InsightCategoryAchievement,
				Priority:    models.PriorityMedium,
				SampleSize:  consecutiveRunLength,
				CreatedAt:   d.last,
				Related:     &models.RelatedContext{Kind: models.RelatedDate, Value: dayKey},
			})
		}
	}
	return insights
}

// dominantByDay reduces each calendar day to the mode of its moods.
// Ties go to the ordinal closest to Okay so a split day never reads as
// more extreme than it was; equidistant ties go to the lower ordinal.
func dominantByDay(entries []models.MoodEntry) []dayMood {
	type tally struct {
		counts [5]int
		last   time.Time
	}
	byDay := make(map[time.Time]*tally)
	for _, e := range entries {
		day := e.Day()
		t, ok := byDay[day]
		if !ok {
			t = &tally{}
			byDay[day] = t
		}
		t.counts[e.Mood.Clamp()]++
		if e.Timestamp.After(t.last) {
			t.last = e.Timestamp
		}
	}

	out := make([]dayMood, 0, len(byDay))
	for day, t := range byDay {
		out = append(out, dayMood{day: day, mood: dominantMood(t.counts), last: t.last})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].day.Before(out[j].day) })
	return out
}

func dominantMood(counts [5]int) models.MoodLevel {
	best := models.MoodOkay
	bestCount := -1
	for level := models.MoodVeryBad; level <= models.MoodVeryGood; level++ {
		c := counts[level]
		if c == 0 {
			continue
		}
		if c > bestCount {
			best = level
			bestCount = c
			continue
		}
		if c == bestCount && distanceFromOkay(level) < distanceFromOkay(best) {
			best = level
		}
	}
	return best
}

func distanceFromOkay(m models.MoodLevel) int {
	d := int(m) - int(models.MoodOkay)
	if d < 0 {
		return -d
	}
	return d
}
