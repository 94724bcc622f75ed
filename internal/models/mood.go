package models

import (
	"math"
	"sort"
	"strings"
	"time"
)

// MoodLevel is the ordinal mood scale used for all arithmetic.
// Labels are a view of this ordinal, never the source of truth.
type MoodLevel int

const (
	MoodVeryBad MoodLevel = iota
	MoodBad
	MoodOkay
	MoodGood
	MoodVeryGood
)

var moodLabels = [...]string{"Very Bad", "Bad", "Okay", "Good", "Very Good"}

// String returns the canonical label for the mood level.
func (m MoodLevel) String() string {
	if m < MoodVeryBad || m > MoodVeryGood {
		return moodLabels[MoodOkay]
	}
	return moodLabels[m]
}

// Score returns the 0-4 numeric value used in aggregation.
func (m MoodLevel) Score() float64 {
	return float64(m.Clamp())
}

// Clamp forces the level into the valid ordinal range.
func (m MoodLevel) Clamp() MoodLevel {
	if m < MoodVeryBad {
		return MoodVeryBad
	}
	if m > MoodVeryGood {
		return MoodVeryGood
	}
	return m
}

// IsNegative reports whether the level falls in the Bad/Very Bad band.
func (m MoodLevel) IsNegative() bool { return m <= MoodBad }

// IsPositive reports whether the level falls in the Good/Very Good band.
func (m MoodLevel) IsPositive() bool { return m >= MoodGood }

// legacy label forms seen in exported data from older clients
var legacyMoodLabels = map[string]MoodLevel{
	"verybad":   MoodVeryBad,
	"bad":       MoodBad,
	"neutral":   MoodOkay,
	"okay":      MoodOkay,
	"ok":        MoodOkay,
	"good":      MoodGood,
	"verygood":  MoodVeryGood,
	"very bad":  MoodVeryBad,
	"very good": MoodVeryGood,
}

// ParseMoodLabel normalizes a mood label to its ordinal. Unknown or legacy
// labels resolve deterministically; an unrecognized label maps to Okay so a
// corrupt record never blocks aggregation.
func ParseMoodLabel(label string) MoodLevel {
	for i, l := range moodLabels {
		if l == label {
			return MoodLevel(i)
		}
	}
	if m, ok := legacyMoodLabels[strings.ToLower(strings.TrimSpace(label))]; ok {
		return m
	}
	return MoodOkay
}

// MoodFromScore maps an average score back to the nearest ordinal,
// rounding half up.
func MoodFromScore(score float64) MoodLevel {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return MoodOkay
	}
	return MoodLevel(math.Floor(score + 0.5)).Clamp()
}

// TimeOfDay buckets an observation within its calendar day.
type TimeOfDay string

const (
	TimeMorning   TimeOfDay = "morning"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeEvening   TimeOfDay = "evening"
	TimeNight     TimeOfDay = "night"
	TimeFullDay   TimeOfDay = "full-day"
)

// Valid reports whether the bucket is one of the five known values.
func (t TimeOfDay) Valid() bool {
	switch t {
	case TimeMorning, TimeAfternoon, TimeEvening, TimeNight, TimeFullDay:
		return true
	}
	return false
}

// Weather holds optional conditions captured alongside an observation.
type Weather struct {
	Condition   string  `json:"condition"`
	Temperature float64 `json:"temperature,omitempty"`
	Humidity    float64 `json:"humidity,omitempty"`
}

// MoodEntry is a single mood observation. Immutable once created; changes
// go through an explicit update.
type MoodEntry struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Timestamp  time.Time `json:"timestamp"`
	TimeOfDay  TimeOfDay `json:"time_of_day"`
	Mood       MoodLevel `json:"mood"`
	MoodLabel  string    `json:"mood_label"`
	Notes      string    `json:"notes,omitempty"`
	Activities []string  `json:"activities,omitempty"`
	Weather    *Weather  `json:"weather,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Day returns the entry's calendar day in UTC.
func (e *MoodEntry) Day() time.Time {
	y, m, d := e.Timestamp.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NormalizeActivities collapses duplicate labels and drops empties.
// Order of the result is deterministic.
func NormalizeActivities(activities []string) []string {
	seen := make(map[string]bool, len(activities))
	out := make([]string, 0, len(activities))
	for _, a := range activities {
		a = strings.TrimSpace(a)
		if a == "" || seen[a] {
			continue
		}
		seen[a] = true
		out = append(out, a)
	}
	sort.Strings(out)
	return out
}

// SanitizeWeather drops non-finite numeric fields and returns nil when
// nothing usable remains.
func SanitizeWeather(w *Weather) *Weather {
	if w == nil {
		return nil
	}
	clean := Weather{Condition: strings.TrimSpace(w.Condition)}
	if isFinite(w.Temperature) {
		clean.Temperature = w.Temperature
	}
	if isFinite(w.Humidity) {
		clean.Humidity = w.Humidity
	}
	if clean.Condition == "" && clean.Temperature == 0 && clean.Humidity == 0 {
		return nil
	}
	return &clean
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// CreateEntryRequest is the payload for creating a mood entry.
type CreateEntryRequest struct {
	Timestamp  time.Time `json:"timestamp" binding:"required"`
	TimeOfDay  TimeOfDay `json:"time_of_day"`
	Mood       string    `json:"mood" binding:"required"`
	Notes      string    `json:"notes"`
	Activities []string  `json:"activities"`
	Weather    *Weather  `json:"weather"`
}

// UpdateEntryRequest is the payload for updating a mood entry.
// Nil fields are left unchanged.
type UpdateEntryRequest struct {
	Timestamp  *time.Time `json:"timestamp"`
	TimeOfDay  *TimeOfDay `json:"time_of_day"`
	Mood       *string    `json:"mood"`
	Notes      *string    `json:"notes"`
	Activities []string   `json:"activities"`
	Weather    *Weather   `json:"weather"`
}
