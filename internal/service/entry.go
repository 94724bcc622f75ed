package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/moodpath/backend/internal/models"
	"github.com/moodpath/backend/internal/repository"
)

type entryService struct {
	entryRepo repository.EntryRepository
}

// NewEntryService creates a new mood entry service
func NewEntryService(entryRepo repository.EntryRepository) EntryService {
	return &entryService{entryRepo: entryRepo}
}

func (s *entryService) CreateEntry(ctx context.Context, userID string, req *models.CreateEntryRequest) (*models.MoodEntry, error) {
	timeOfDay := req.TimeOfDay
	if !timeOfDay.Valid() {
		timeOfDay = models.TimeFullDay
	}

	mood := models.ParseMoodLabel(req.Mood)
	now := time.Now().UTC()

	entry := &models.MoodEntry{
		ID:         uuid.New().String(),
		UserID:     userID,
		Timestamp:  req.Timestamp.UTC(),
		TimeOfDay:  timeOfDay,
		Mood:       mood,
		MoodLabel:  mood.String(),
		Notes:      req.Notes,
		Activities: models.NormalizeActivities(req.Activities),
		Weather:    models.SanitizeWeather(req.Weather),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	return s.entryRepo.Create(ctx, entry)
}

func (s *entryService) GetEntry(ctx context.Context, userID, entryID string) (*models.MoodEntry, error) {
	return s.entryRepo.GetByID(ctx, userID, entryID)
}

func (s *entryService) ListEntries(ctx context.Context, userID string) ([]models.MoodEntry, error) {
	return s.entryRepo.ListByUser(ctx, userID)
}

func (s *entryService) UpdateEntry(ctx context.Context, userID, entryID string, req *models.UpdateEntryRequest) (*models.MoodEntry, error) {
	existing, err := s.entryRepo.GetByID(ctx, userID, entryID)
	if err != nil {
		return nil, fmt.Errorf("entry not found: %w", err)
	}

	if req.Timestamp != nil {
		existing.Timestamp = req.Timestamp.UTC()
	}
	if req.TimeOfDay != nil && req.TimeOfDay.Valid() {
		existing.TimeOfDay = *req.TimeOfDay
	}
	if req.Mood != nil {
		existing.Mood = models.ParseMoodLabel(*req.Mood)
		existing.MoodLabel = existing.Mood.String()
	}
	if req.Notes != nil {
		existing.Notes = *req.Notes
	}
	if req.Activities != nil {
		existing.Activities = models.NormalizeActivities(req.Activities)
	}
	if req.Weather != nil {
		existing.Weather = models.SanitizeWeather(req.Weather)
	}
	existing.UpdatedAt = time.Now().UTC()

	return s.entryRepo.Update(ctx, existing)
}

func (s *entryService) DeleteEntry(ctx context.Context, userID, entryID string) error {
	return s.entryRepo.Delete(ctx, userID, entryID)
}
