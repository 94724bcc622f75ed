package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/moodpath/backend/internal/achievement"
	"github.com/moodpath/backend/internal/logger"
	"github.com/moodpath/backend/internal/models"
	"github.com/moodpath/backend/internal/repository"
)

// CompletionListener receives goal-completed events. The default listener
// only logs; the hosting application wires its rewards notifier here.
type CompletionListener func(models.GoalCompleted)

type achievementService struct {
	entryRepo    repository.EntryRepository
	progressRepo repository.ProgressRepository
	tracker      *achievement.Tracker
	onCompleted  CompletionListener

	// Per-user serialization of the read-evaluate-write cycle keeps the
	// ledger's monotonicity intact when two requests race.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewAchievementService creates a new achievement service over the given
// tracker. listener may be nil.
func NewAchievementService(entryRepo repository.EntryRepository, progressRepo repository.ProgressRepository, tracker *achievement.Tracker, listener CompletionListener) AchievementService {
	return &achievementService{
		entryRepo:    entryRepo,
		progressRepo: progressRepo,
		tracker:      tracker,
		onCompleted:  listener,
		locks:        make(map[string]*sync.Mutex),
	}
}

func (s *achievementService) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	return l
}

func (s *achievementService) UpdateProgress(ctx context.Context, userID string) (*models.AchievementsResponse, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	entries, err := s.entryRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	ledger, err := s.progressRepo.Load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress ledger: %w", err)
	}

	merged, completed, changed := s.tracker.Evaluate(entries, ledger, time.Now().UTC())

	if changed {
		if err := s.progressRepo.Save(ctx, userID, merged); err != nil {
			return nil, fmt.Errorf("failed to save progress ledger: %w", err)
		}
	}

	log := logger.Ctx(ctx)
	for _, c := range completed {
		log.Info("achievement unlocked",
			logger.String("user_id", userID),
			logger.String("goal_id", c.GoalID))
		if s.onCompleted != nil {
			s.onCompleted(c)
		}
	}

	resp := s.buildResponse(merged)
	resp.Completed = completed
	return resp, nil
}

func (s *achievementService) GetProgress(ctx context.Context, userID string) (*models.AchievementsResponse, error) {
	ledger, err := s.progressRepo.Load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress ledger: %w", err)
	}
	return s.buildResponse(ledger), nil
}

func (s *achievementService) buildResponse(ledger models.ProgressLedger) *models.AchievementsResponse {
	resp := &models.AchievementsResponse{}
	for _, goal := range s.tracker.Catalog() {
		rec := ledger[goal.ID]
		gp := models.GoalProgress{
			Goal:     goal.GoalDefinition,
			Progress: rec.Progress,
			Earned:   rec.Earned(),
			EarnedAt: rec.EarnedAt,
		}
		if gp.Earned {
			resp.EarnedCount++
			resp.TotalPoints += goal.RewardPoints
		}
		resp.Goals = append(resp.Goals, gp)
	}
	sort.SliceStable(resp.Goals, func(i, j int) bool {
		return resp.Goals[i].Goal.ID < resp.Goals[j].Goal.ID
	})
	return resp
}
