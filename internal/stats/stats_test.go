package stats

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/moodpath/backend/internal/models"
)

func entryWithMood(mood models.MoodLevel, bucket models.TimeOfDay) models.MoodEntry {
	return models.MoodEntry{
		Timestamp: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		TimeOfDay: bucket,
		Mood:      mood,
	}
}

func TestGroupAverage(t *testing.T) {
	entries := []models.MoodEntry{
		entryWithMood(models.MoodGood, models.TimeMorning),
		entryWithMood(models.MoodVeryGood, models.TimeMorning),
		entryWithMood(models.MoodBad, models.TimeNight),
	}

	groups := GroupAverage(entries, func(e models.MoodEntry) string {
		return string(e.TimeOfDay)
	}, 1)

	assert.Len(t, groups, 2)
	assert.InDelta(t, 3.5, groups["morning"].Average, 1e-9)
	assert.Equal(t, 2, groups["morning"].Count)
	assert.InDelta(t, 1.0, groups["night"].Average, 1e-9)
}

func TestGroupAverageOmitsUnderpoweredGroups(t *testing.T) {
	entries := []models.MoodEntry{
		entryWithMood(models.MoodGood, models.TimeMorning),
		entryWithMood(models.MoodGood, models.TimeMorning),
		entryWithMood(models.MoodBad, models.TimeNight),
	}

	groups := GroupAverage(entries, func(e models.MoodEntry) string {
		return string(e.TimeOfDay)
	}, 2)

	assert.Len(t, groups, 1)
	assert.Contains(t, groups, "morning")
	assert.NotContains(t, groups, "night")
}

func TestGroupAverageSkipsEmptyKeys(t *testing.T) {
	entries := []models.MoodEntry{
		entryWithMood(models.MoodGood, models.TimeFullDay),
		entryWithMood(models.MoodGood, models.TimeMorning),
	}

	groups := GroupAverage(entries, func(e models.MoodEntry) string {
		if e.TimeOfDay == models.TimeFullDay {
			return ""
		}
		return string(e.TimeOfDay)
	}, 1)

	assert.Len(t, groups, 1)
	assert.Contains(t, groups, "morning")
}

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.InDelta(t, 2.0, Mean([]float64{1, 2, 3}), 1e-9)
	assert.InDelta(t, 2.0, Mean([]float64{1, math.NaN(), 3, math.Inf(1)}), 1e-9)
}

func TestVariance(t *testing.T) {
	assert.Equal(t, 0.0, Variance(nil))
	assert.Equal(t, 0.0, Variance([]float64{4, 4, 4}))
	assert.InDelta(t, 2.0/3.0, Variance([]float64{1, 2, 3}), 1e-9)
}

func TestPearsonCorrelation(t *testing.T) {
	t.Run("perfect positive", func(t *testing.T) {
		xs := []float64{1, 2, 3, 4, 5, 6}
		ys := []float64{2, 4, 6, 8, 10, 12}
		assert.InDelta(t, 1.0, PearsonCorrelation(xs, ys), 1e-9)
	})

	t.Run("perfect negative", func(t *testing.T) {
		xs := []float64{1, 2, 3, 4, 5, 6}
		ys := []float64{6, 5, 4, 3, 2, 1}
		assert.InDelta(t, -1.0, PearsonCorrelation(xs, ys), 1e-9)
	})

	t.Run("below minimum pairs", func(t *testing.T) {
		xs := []float64{1, 2, 3, 4, 5}
		ys := []float64{2, 4, 6, 8, 10}
		assert.Equal(t, 0.0, PearsonCorrelation(xs, ys))
	})

	t.Run("non-finite pairs are dropped", func(t *testing.T) {
		xs := []float64{1, 2, 3, 4, 5, math.NaN()}
		ys := []float64{2, 4, 6, 8, 10, 12}
		assert.Equal(t, 0.0, PearsonCorrelation(xs, ys))
	})

	t.Run("zero variance", func(t *testing.T) {
		xs := []float64{3, 3, 3, 3, 3, 3}
		ys := []float64{1, 2, 3, 4, 5, 6}
		assert.Equal(t, 0.0, PearsonCorrelation(xs, ys))
	})
}
