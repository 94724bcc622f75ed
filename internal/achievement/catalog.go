package achievement

import (
	"math"

	"github.com/moodpath/backend/internal/models"
)

// Goal pairs a catalog definition with its progress metric. Metrics return
// a value in [0,100]; ratio metrics report at most 99 until the criterion
// is fully met, so completion is always an explicit crossing.
type Goal struct {
	models.GoalDefinition
	Metric func(Snapshot) float64
}

// ratio converts current/target into a 0-99 percentage, or 100 once the
// target is reached.
func ratio(current, target int) float64 {
	if current >= target {
		return 100
	}
	if current <= 0 {
		return 0
	}
	p := math.Round(float64(current) / float64(target) * 100)
	if p > 99 {
		p = 99
	}
	return p
}

// DefaultCatalog returns the built-in goal list. The catalog is versioned
// with the binary: callers inject it at construction and must not mutate
// it at runtime.
func DefaultCatalog() []Goal {
	return []Goal{
		{
			GoalDefinition: models.GoalDefinition{
				ID:           "first-entry",
				Name:         "Getting Started",
				Description:  "Log your first mood entry",
				Criteria:     "1 mood entry",
				RewardPoints: 10,
				Tier:         models.TierBronze,
			},
			Metric: func(s Snapshot) float64 {
				if s.TotalEntries > 0 {
					return 100
				}
				return 0
			},
		},
		{
			GoalDefinition: models.GoalDefinition{
				ID:           "week-streak",
				Name:         "Week Warrior",
				Description:  "Log your mood every day for a week",
				Criteria:     "7-day streak",
				RewardPoints: 50,
				Tier:         models.TierSilver,
			},
			Metric: func(s Snapshot) float64 { return ratio(s.CurrentStreakDays, 7) },
		},
		{
			GoalDefinition: models.GoalDefinition{
				ID:           "monthly-master",
				Name:         "Monthly Master",
				Description:  "Log a mood every day for a full month",
				Criteria:     "30-day streak",
				RewardPoints: 500,
				Tier:         models.TierElite,
			},
			Metric: func(s Snapshot) float64 { return ratio(s.CurrentStreakDays, 30) },
		},
		{
			GoalDefinition: models.GoalDefinition{
				ID:           "quarterly-journey",
				Name:         "Quarterly Champion",
				Description:  "Record ninety mood entries on your journey",
				Criteria:     "90 entries",
				RewardPoints: 1000,
				Tier:         models.TierPlatinum,
			},
			Metric: func(s Snapshot) float64 { return ratio(s.TotalEntries, 90) },
		},
		{
			GoalDefinition: models.GoalDefinition{
				ID:           "mood-master",
				Name:         "Mood Master",
				Description:  "Track over five hundred mood entries",
				Criteria:     "500 entries",
				RewardPoints: 3000,
				Tier:         models.TierElite,
			},
			Metric: func(s Snapshot) float64 { return ratio(s.TotalEntries, 500) },
		},
		{
			GoalDefinition: models.GoalDefinition{
				ID:           "emotion-range",
				Name:         "Emotion Explorer",
				Description:  "Use every mood level at least once",
				Criteria:     "All 5 mood levels",
				RewardPoints: 75,
				Tier:         models.TierSilver,
			},
			Metric: func(s Snapshot) float64 { return ratio(s.MoodCoverage, 5) },
		},
		{
			GoalDefinition: models.GoalDefinition{
				ID:           "detailed-logger",
				Name:         "Detailed Observer",
				Description:  "Log five entries with detailed notes",
				Criteria:     "5 notes over 50 characters",
				RewardPoints: 30,
				Tier:         models.TierBronze,
			},
			Metric: func(s Snapshot) float64 { return ratio(s.DetailedNotes, 5) },
		},
		{
			GoalDefinition: models.GoalDefinition{
				ID:           "reflective-thinker",
				Name:         "Reflective Thinker",
				Description:  "Add fifty journal notes to mood logs",
				Criteria:     "50 notes of 20+ characters",
				RewardPoints: 275,
				Tier:         models.TierGold,
			},
			Metric: func(s Snapshot) float64 { return ratio(s.ReflectiveNotes, 50) },
		},
		{
			GoalDefinition: models.GoalDefinition{
				ID:           "weather-watcher",
				Name:         "Weather Watcher",
				Description:  "Track weather with moods for thirty entries",
				Criteria:     "30 entries with weather",
				RewardPoints: 225,
				Tier:         models.TierSilver,
			},
			Metric: func(s Snapshot) float64 { return ratio(s.WeatherEntries, 30) },
		},
		{
			GoalDefinition: models.GoalDefinition{
				ID:           "activity-analyst",
				Name:         "Activity Analyst",
				Description:  "Log twenty different activities with moods",
				Criteria:     "20 distinct activities",
				RewardPoints: 325,
				Tier:         models.TierPlatinum,
			},
			Metric: func(s Snapshot) float64 { return ratio(s.DistinctActivities, 20) },
		},
		{
			GoalDefinition: models.GoalDefinition{
				ID:           "upward-trend",
				Name:         "Upward Trend",
				Description:  "Show improvement in mood over two weeks",
				Criteria:     "2-week mood improvement",
				RewardPoints: 100,
				Tier:         models.TierGold,
			},
			Metric: func(s Snapshot) float64 {
				if s.Improved {
					return 100
				}
				return 0
			},
		},
	}
}
