package service

import (
	"context"
	"fmt"

	"github.com/moodpath/backend/internal/analyzer"
	"github.com/moodpath/backend/internal/logger"
	"github.com/moodpath/backend/internal/models"
	"github.com/moodpath/backend/internal/repository"
)

type insightService struct {
	entryRepo repository.EntryRepository
}

// NewInsightService creates a new insight service
func NewInsightService(entryRepo repository.EntryRepository) InsightService {
	return &insightService{entryRepo: entryRepo}
}

// GenerateInsights loads the user's record snapshot and runs the analyzer
// pipeline over it. The computation is pure: calling it twice on the same
// snapshot yields identical ranked output.
func (s *insightService) GenerateInsights(ctx context.Context, userID string) (*models.InsightsResponse, error) {
	entries, err := s.entryRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	insights := analyzer.Generate(entries)
	sufficient := len(entries) >= analyzer.MinEntriesForInsights

	log := logger.Ctx(ctx)
	log.Debug("insights generated",
		logger.String("user_id", userID),
		logger.Int("entries", len(entries)),
		logger.Int("insights", len(insights)))

	resp := &models.InsightsResponse{
		Items:      insights,
		TotalUsed:  len(entries),
		Sufficient: sufficient,
	}
	if len(insights) > 0 {
		resp.ComputedAt = insights[0].CreatedAt
		for _, in := range insights {
			if in.CreatedAt.After(resp.ComputedAt) {
				resp.ComputedAt = in.CreatedAt
			}
		}
	}
	return resp, nil
}
