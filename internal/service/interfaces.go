package service

import (
	"context"

	"github.com/moodpath/backend/internal/models"
)

// EntryService defines the interface for mood entry business logic
type EntryService interface {
	CreateEntry(ctx context.Context, userID string, req *models.CreateEntryRequest) (*models.MoodEntry, error)
	GetEntry(ctx context.Context, userID, entryID string) (*models.MoodEntry, error)
	ListEntries(ctx context.Context, userID string) ([]models.MoodEntry, error)
	UpdateEntry(ctx context.Context, userID, entryID string, req *models.UpdateEntryRequest) (*models.MoodEntry, error)
	DeleteEntry(ctx context.Context, userID, entryID string) error
}

// InsightService defines the interface for insight generation
type InsightService interface {
	GenerateInsights(ctx context.Context, userID string) (*models.InsightsResponse, error)
}

// AchievementService defines the interface for goal progress tracking
type AchievementService interface {
	// UpdateProgress recomputes progress from the current record snapshot,
	// persists any increases, and reports newly completed goals.
	UpdateProgress(ctx context.Context, userID string) (*models.AchievementsResponse, error)
	// GetProgress returns the stored progress without recomputing.
	GetProgress(ctx context.Context, userID string) (*models.AchievementsResponse, error)
}
