// Package analyzer derives personalized insights from a snapshot of mood
// observations. Each analyzer is a pure function over the snapshot and
// independently decides whether it has enough evidence; below its minimum
// sample size it returns nothing rather than extrapolate.
//
// All thresholds are fixed constants so a given snapshot always produces
// the same ranked output.
package analyzer

import (
	"fmt"
	"hash/fnv"
	"sort"
	"time"

	"github.com/moodpath/backend/internal/models"
)

const (
	// MinEntriesForInsights is the floor below which no analyzer runs and
	// a single insufficient-data insight is returned instead.
	MinEntriesForInsights = 5

	// Time-of-day analysis
	minPerTimeBucket      = 5
	minQualifyingBuckets  = 2
	timeOfDayGapThreshold = 1.0

	// Day-of-week analysis
	minPerWeekday          = 2
	minWeekdaysRepresented = 3
	weekdayGapThreshold    = 0.7
	minWeekdayRecords      = 5
	minWeekendRecords      = 2
	weekendGapThreshold    = 0.5

	// Activity analysis
	minPerActivity         = 3
	minActivitiesForTop    = 2
	minActivitiesForSpread = 4
	activityGapThreshold   = 1.0

	// Weather analysis
	minPerCondition       = 3
	weatherGapThreshold   = 0.5
	minPerConditionStrict = 5
	tempCorrThreshold     = 0.4

	// Trend and consistency analysis
	trendWindowDays      = 7
	minPerTrendWindow    = 3
	trendDeltaThreshold  = 0.5
	coverageWindowDays   = 14
	coverageThreshold    = 0.7
	consecutiveRunLength = 3
)

// Func is a single pattern analyzer: a side-effect-free function from a
// snapshot to zero or more insights.
type Func func(Snapshot) []models.Insight

// analyzers lists every registered analyzer in a fixed order.
var analyzers = []Func{TimeOfDay, DayOfWeek, Activity, Weather, Trend}

// Snapshot is an immutable, chronologically sorted view of a user's mood
// history. Analyzers never see the store; they operate on this alone.
type Snapshot struct {
	Entries []models.MoodEntry
	Latest  time.Time
}

// NewSnapshot copies and sorts the entries by timestamp ascending.
func NewSnapshot(entries []models.MoodEntry) Snapshot {
	sorted := make([]models.MoodEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	s := Snapshot{Entries: sorted}
	if len(sorted) > 0 {
		s.Latest = sorted[len(sorted)-1].Timestamp
	}
	return s
}

// RefDay returns the calendar day of the newest observation in UTC.
// Trailing windows anchor here rather than on the wall clock so that
// identical snapshots always produce identical output.
func (s Snapshot) RefDay() time.Time {
	y, m, d := s.Latest.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// insightID derives a stable identifier from the analyzer name and the
// group keys the insight reasoned about. Identical snapshots therefore
// yield identical IDs across runs.
func insightID(analyzer string, keys ...string) string {
	h := fnv.New64a()
	h.Write([]byte(analyzer))
	for _, k := range keys {
		h.Write([]byte{0})
		h.Write([]byte(k))
	}
	return fmt.Sprintf("%s-%016x", analyzer, h.Sum64())
}

// latestTimestamp returns the newest timestamp among the given entries.
// Used as an insight's CreatedAt so identity stays derived from data.
func latestTimestamp(entries []models.MoodEntry) time.Time {
	var latest time.Time
	for _, e := range entries {
		if e.Timestamp.After(latest) {
			latest = e.Timestamp
		}
	}
	return latest
}

func laterOf(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}

// sortedKeys returns map keys in deterministic order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
