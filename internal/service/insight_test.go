package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodpath/backend/internal/models"
	"github.com/moodpath/backend/internal/repository"
)

func seedEntries(t *testing.T, repo repository.EntryRepository, userID string, count int, mood models.MoodLevel, bucket models.TimeOfDay) {
	t.Helper()
	base := time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC)
	for i := 0; i < count; i++ {
		_, err := repo.Create(context.Background(), &models.MoodEntry{
			ID:        fmt.Sprintf("%s-%d", bucket, i),
			UserID:    userID,
			Timestamp: base.AddDate(0, 0, -i).Add(time.Duration(i) * time.Minute),
			TimeOfDay: bucket,
			Mood:      mood,
			MoodLabel: mood.String(),
		})
		require.NoError(t, err)
	}
}

func TestGenerateInsightsInsufficientData(t *testing.T) {
	repo := repository.NewMemoryEntryRepository()
	seedEntries(t, repo, "user-1", 3, models.MoodGood, models.TimeMorning)

	svc := NewInsightService(repo)
	resp, err := svc.GenerateInsights(context.Background(), "user-1")
	require.NoError(t, err)

	assert.False(t, resp.Sufficient)
	assert.Equal(t, 3, resp.TotalUsed)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, models.InsightCategorySuggestion, resp.Items[0].Category)
}

func TestGenerateInsightsFindsTimeOfDayPattern(t *testing.T) {
	repo := repository.NewMemoryEntryRepository()
	seedEntries(t, repo, "user-1", 6, models.MoodVeryGood, models.TimeMorning)
	seedEntries(t, repo, "user-1", 6, models.MoodBad, models.TimeNight)

	svc := NewInsightService(repo)
	resp, err := svc.GenerateInsights(context.Background(), "user-1")
	require.NoError(t, err)

	assert.True(t, resp.Sufficient)
	assert.Equal(t, 12, resp.TotalUsed)

	var analyzers []string
	for _, in := range resp.Items {
		analyzers = append(analyzers, in.Analyzer)
	}
	assert.Contains(t, analyzers, "time_of_day")
	assert.False(t, resp.ComputedAt.IsZero())
}

func TestGenerateInsightsIsRepeatable(t *testing.T) {
	repo := repository.NewMemoryEntryRepository()
	seedEntries(t, repo, "user-1", 8, models.MoodGood, models.TimeMorning)
	seedEntries(t, repo, "user-1", 5, models.MoodVeryBad, models.TimeEvening)

	svc := NewInsightService(repo)

	first, err := svc.GenerateInsights(context.Background(), "user-1")
	require.NoError(t, err)
	second, err := svc.GenerateInsights(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
