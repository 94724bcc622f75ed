package models

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseMoodLabel(t *testing.T) {
	tests := []struct {
		label string
		want  MoodLevel
	}{
		{"Very Bad", MoodVeryBad},
		{"Bad", MoodBad},
		{"Okay", MoodOkay},
		{"Good", MoodGood},
		{"Very Good", MoodVeryGood},
		// Legacy client export forms.
		{"veryBad", MoodVeryBad},
		{"neutral", MoodOkay},
		{"ok", MoodOkay},
		{"veryGood", MoodVeryGood},
		{" good ", MoodGood},
		// Unknown labels resolve to Okay rather than failing.
		{"ecstatic", MoodOkay},
		{"", MoodOkay},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseMoodLabel(tt.label))
		})
	}
}

func TestMoodFromScore(t *testing.T) {
	assert.Equal(t, MoodOkay, MoodFromScore(2.4))
	assert.Equal(t, MoodGood, MoodFromScore(2.5))
	assert.Equal(t, MoodVeryBad, MoodFromScore(-3))
	assert.Equal(t, MoodVeryGood, MoodFromScore(9))
	assert.Equal(t, MoodOkay, MoodFromScore(math.NaN()))
	assert.Equal(t, MoodOkay, MoodFromScore(math.Inf(1)))
}

func TestMoodLevelBands(t *testing.T) {
	assert.True(t, MoodVeryBad.IsNegative())
	assert.True(t, MoodBad.IsNegative())
	assert.False(t, MoodOkay.IsNegative())
	assert.False(t, MoodOkay.IsPositive())
	assert.True(t, MoodGood.IsPositive())
	assert.True(t, MoodVeryGood.IsPositive())
}

func TestNormalizeActivities(t *testing.T) {
	got := NormalizeActivities([]string{"reading", " exercise ", "", "reading", "exercise"})
	assert.Equal(t, []string{"exercise", "reading"}, got)

	assert.Empty(t, NormalizeActivities(nil))
}

func TestSanitizeWeather(t *testing.T) {
	assert.Nil(t, SanitizeWeather(nil))
	assert.Nil(t, SanitizeWeather(&Weather{Condition: "  "}))

	w := SanitizeWeather(&Weather{Condition: "sunny", Temperature: math.NaN(), Humidity: math.Inf(1)})
	assert.NotNil(t, w)
	assert.Equal(t, "sunny", w.Condition)
	assert.Equal(t, 0.0, w.Temperature)
	assert.Equal(t, 0.0, w.Humidity)
}

func TestEntryDayIsUTC(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	e := MoodEntry{Timestamp: time.Date(2025, 6, 17, 2, 0, 0, 0, loc)}

	assert.Equal(t, time.Date(2025, 6, 16, 21, 0, 0, 0, time.UTC), e.Timestamp.UTC())
	assert.Equal(t, time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), e.Day())
}

func TestPriorityRank(t *testing.T) {
	assert.Equal(t, 1, PriorityHigh.Rank())
	assert.Equal(t, 2, PriorityMedium.Rank())
	assert.Equal(t, 3, PriorityLow.Rank())
	assert.Equal(t, 4, InsightPriority("unknown").Rank())
}
