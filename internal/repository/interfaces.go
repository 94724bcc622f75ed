// Package repository holds the storage collaborators for the analytics
// core: the mood entry store and the per-user progress ledger.
package repository

import (
	"context"
	"errors"

	"github.com/moodpath/backend/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// EntryRepository supplies the mood observation snapshot and the
// create/update/delete boundary. The engine reads it once per invocation;
// it never queries the store from inside an analyzer.
type EntryRepository interface {
	Create(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error)
	GetByID(ctx context.Context, userID, id string) (*models.MoodEntry, error)
	ListByUser(ctx context.Context, userID string) ([]models.MoodEntry, error)
	Update(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error)
	Delete(ctx context.Context, userID, id string) error
}

// ProgressRepository persists the goal progress ledger for one user.
// Loading a previously saved ledger and saving it again must be a no-op.
type ProgressRepository interface {
	Load(ctx context.Context, userID string) (models.ProgressLedger, error)
	Save(ctx context.Context, userID string, ledger models.ProgressLedger) error
}
