package analyzer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodpath/backend/internal/models"
)

func entryWithWeather(ts time.Time, mood models.MoodLevel, condition string) models.MoodEntry {
	e := entryAt(ts, mood, models.TimeMorning)
	e.Weather = &models.Weather{Condition: condition}
	return e
}

func TestWeatherBestWorstCondition(t *testing.T) {
	var entries []models.MoodEntry
	for i := 0; i < 3; i++ {
		entries = append(entries, entryWithWeather(daysAgo(i), models.MoodGood, "sunny"))
		entries = append(entries, entryWithWeather(daysAgo(i+3), models.MoodBad, "rainy"))
	}

	insights := Weather(NewSnapshot(entries))

	require.Len(t, insights, 1)
	assert.Equal(t, "Weather Affects Your Mood", insights[0].Title)
	assert.Equal(t, 6, insights[0].SampleSize)
	require.NotNil(t, insights[0].Related)
	assert.Equal(t, "sunny", insights[0].Related.Value)
}

func TestWeatherConditionImpact(t *testing.T) {
	var entries []models.MoodEntry
	for i := 0; i < 6; i++ {
		entries = append(entries, entryWithWeather(daysAgo(i), models.MoodVeryGood, "sunny"))
		entries = append(entries, entryWithWeather(daysAgo(i+6), models.MoodOkay, "cloudy"))
	}

	insights := Weather(NewSnapshot(entries))

	require.Len(t, insights, 2)
	impact := insights[1]
	assert.Equal(t, "Sunny Weather Stands Out", impact.Title)
	assert.Contains(t, impact.Description, "positive")
	assert.Equal(t, 6, impact.SampleSize)
	// confidence = 0.5 + 6/20
	assert.InDelta(t, 0.8, impact.Confidence, 1e-9)
}

func TestWeatherConfidenceIsCapped(t *testing.T) {
	var entries []models.MoodEntry
	for i := 0; i < 12; i++ {
		entries = append(entries, entryWithWeather(daysAgo(i%7).Add(time.Duration(i)*time.Minute), models.MoodVeryBad, "stormy"))
		entries = append(entries, entryWithWeather(daysAgo(i%7).Add(time.Duration(i+20)*time.Minute), models.MoodGood, "sunny"))
	}

	insights := Weather(NewSnapshot(entries))

	var impact *models.Insight
	for i := range insights {
		if insights[i].Confidence > 0 {
			impact = &insights[i]
		}
	}
	require.NotNil(t, impact)
	assert.Contains(t, impact.Description, "negative")
	assert.Equal(t, 0.95, impact.Confidence)
}

func TestWeatherGapAtThreshold(t *testing.T) {
	// Sunny averages 2.5 and rainy 2.0; a gap of exactly 0.5 qualifies.
	var entries []models.MoodEntry
	entries = append(entries,
		entryWithWeather(daysAgo(0), models.MoodOkay, "sunny"),
		entryWithWeather(daysAgo(1), models.MoodOkay, "sunny"),
		entryWithWeather(daysAgo(2), models.MoodGood, "sunny"),
		entryWithWeather(daysAgo(3), models.MoodGood, "sunny"),
	)
	for i := 0; i < 3; i++ {
		entries = append(entries, entryWithWeather(daysAgo(i+4), models.MoodOkay, "rainy"))
	}

	insights := Weather(NewSnapshot(entries))

	require.Len(t, insights, 1)
	assert.Equal(t, "Weather Affects Your Mood", insights[0].Title)
	require.NotNil(t, insights[0].Related)
	assert.Equal(t, "sunny", insights[0].Related.Value)
}

func TestWeatherGapBelowThreshold(t *testing.T) {
	// Sunny averages 2.25 against rainy's 2.0; the 0.25 gap is noise.
	var entries []models.MoodEntry
	entries = append(entries,
		entryWithWeather(daysAgo(0), models.MoodOkay, "sunny"),
		entryWithWeather(daysAgo(1), models.MoodOkay, "sunny"),
		entryWithWeather(daysAgo(2), models.MoodOkay, "sunny"),
		entryWithWeather(daysAgo(3), models.MoodGood, "sunny"),
	)
	for i := 0; i < 3; i++ {
		entries = append(entries, entryWithWeather(daysAgo(i+4), models.MoodOkay, "rainy"))
	}

	assert.Empty(t, Weather(NewSnapshot(entries)))
}

func entryWithTemperature(ts time.Time, mood models.MoodLevel, temp float64) models.MoodEntry {
	e := entryAt(ts, mood, models.TimeMorning)
	e.Weather = &models.Weather{Condition: "clear", Temperature: temp}
	return e
}

func TestTemperatureCorrelation(t *testing.T) {
	temps := []float64{10, 12, 14, 16, 18, 20}
	moods := []models.MoodLevel{
		models.MoodVeryBad, models.MoodBad, models.MoodOkay,
		models.MoodGood, models.MoodVeryGood, models.MoodGood,
	}

	var entries []models.MoodEntry
	for i := range temps {
		entries = append(entries, entryWithTemperature(daysAgo(i), moods[i], temps[i]))
	}

	insight := temperatureCorrelation(entries)

	require.NotNil(t, insight)
	assert.Equal(t, "Temperature Tracks Your Mood", insight.Title)
	assert.Contains(t, insight.Description, "warmer")
	assert.Equal(t, 6, insight.SampleSize)
	assert.Greater(t, insight.Confidence, 0.4)
}

func TestTemperatureCorrelationInverse(t *testing.T) {
	temps := []float64{30, 28, 26, 24, 22, 20}
	moods := []models.MoodLevel{
		models.MoodVeryBad, models.MoodBad, models.MoodBad,
		models.MoodOkay, models.MoodGood, models.MoodVeryGood,
	}

	var entries []models.MoodEntry
	for i := range temps {
		entries = append(entries, entryWithTemperature(daysAgo(i), moods[i], temps[i]))
	}

	insight := temperatureCorrelation(entries)

	require.NotNil(t, insight)
	assert.Contains(t, insight.Description, "cooler")
}

func TestTemperatureCorrelationNeedsSignal(t *testing.T) {
	// A flat temperature series carries no signal.
	var flat []models.MoodEntry
	for i := 0; i < 8; i++ {
		flat = append(flat, entryWithTemperature(daysAgo(i), models.MoodLevel(i%5), 18))
	}
	assert.Nil(t, temperatureCorrelation(flat))

	// An uncorrelated mood series stays below the coefficient floor.
	var uncorrelated []models.MoodEntry
	for i := 0; i < 8; i++ {
		uncorrelated = append(uncorrelated, entryWithTemperature(daysAgo(i), models.MoodOkay, float64(10+i)))
	}
	assert.Nil(t, temperatureCorrelation(uncorrelated))

	// Five pairs is one short of the correlation minimum.
	var short []models.MoodEntry
	for i := 0; i < 5; i++ {
		short = append(short, entryWithTemperature(daysAgo(i), models.MoodLevel(i), float64(10+2*i)))
	}
	assert.Nil(t, temperatureCorrelation(short))
}

func TestWeatherIgnoresEntriesWithoutCondition(t *testing.T) {
	var entries []models.MoodEntry
	for i := 0; i < 6; i++ {
		entries = append(entries, entryAt(daysAgo(i), models.MoodGood, models.TimeMorning))
	}

	assert.Empty(t, Weather(NewSnapshot(entries)))
}

func TestWeatherSingleConditionNoComparison(t *testing.T) {
	var entries []models.MoodEntry
	for i := 0; i < 4; i++ {
		entries = append(entries, entryWithWeather(daysAgo(i), models.MoodOkay, "sunny"))
	}

	assert.Empty(t, Weather(NewSnapshot(entries)))
}
