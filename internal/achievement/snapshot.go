// Package achievement evaluates a fixed goal catalog against a user's mood
// history and tracks monotonically increasing progress toward each goal.
package achievement

import (
	"sort"
	"time"

	"github.com/moodpath/backend/internal/models"
)

// Snapshot is everything the goal metrics need, derived once per
// evaluation from the record snapshot. Metrics are pure functions of this
// struct, so progress is always reproducible from the same records.
type Snapshot struct {
	TotalEntries       int
	CurrentStreakDays  int
	LongestStreakDays  int
	DistinctActivities int
	DetailedNotes      int // notes longer than 50 characters
	ReflectiveNotes    int // notes of at least 20 characters
	WeatherEntries     int
	MoodCoverage       int // distinct mood ordinals used, 0-5
	Improved           bool
}

// BuildSnapshot derives the metric inputs from the raw entries. The
// current streak anchors on the newest observation's calendar day rather
// than the wall clock, keeping evaluation deterministic per snapshot.
func BuildSnapshot(entries []models.MoodEntry) Snapshot {
	s := Snapshot{TotalEntries: len(entries)}
	if len(entries) == 0 {
		return s
	}

	activities := make(map[string]bool)
	moods := make(map[models.MoodLevel]bool)
	daySet := make(map[time.Time]bool)

	for _, e := range entries {
		daySet[e.Day()] = true
		moods[e.Mood.Clamp()] = true
		for _, a := range models.NormalizeActivities(e.Activities) {
			activities[a] = true
		}
		if n := len(e.Notes); n > 50 {
			s.DetailedNotes++
		}
		if n := len(e.Notes); n >= 20 {
			s.ReflectiveNotes++
		}
		if w := models.SanitizeWeather(e.Weather); w != nil {
			s.WeatherEntries++
		}
	}

	s.DistinctActivities = len(activities)
	s.MoodCoverage = len(moods)
	s.CurrentStreakDays, s.LongestStreakDays = streaks(daySet)
	s.Improved = checkImprovement(entries)
	return s
}

// streaks computes the run of consecutive logged days ending at the newest
// day, and the longest such run anywhere in the history.
func streaks(daySet map[time.Time]bool) (current, longest int) {
	if len(daySet) == 0 {
		return 0, 0
	}

	days := make([]time.Time, 0, len(daySet))
	for d := range daySet {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	run := 1
	longest = 1
	for i := 1; i < len(days); i++ {
		if days[i].Equal(days[i-1].AddDate(0, 0, 1)) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	// The current streak is the run that ends on the newest logged day.
	current = 1
	for i := len(days) - 1; i > 0; i-- {
		if days[i-1].Equal(days[i].AddDate(0, 0, -1)) {
			current++
		} else {
			break
		}
	}
	return current, longest
}

// checkImprovement reports whether the second half of the trailing
// fourteen days averages at least half a point above the first half.
func checkImprovement(entries []models.MoodEntry) bool {
	sorted := make([]models.MoodEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	newest := sorted[len(sorted)-1]
	windowStart := newest.Day().AddDate(0, 0, -13)

	recent := make([]models.MoodEntry, 0, len(sorted))
	for _, e := range sorted {
		if !e.Day().Before(windowStart) {
			recent = append(recent, e)
		}
	}

	if len(recent) < 7 {
		return false
	}

	half := len(recent) / 2
	firstAvg := averageScore(recent[:half])
	secondAvg := averageScore(recent[half:])
	return secondAvg > firstAvg+0.5
}

func averageScore(entries []models.MoodEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	var sum float64
	for _, e := range entries {
		sum += e.Mood.Score()
	}
	return sum / float64(len(entries))
}
