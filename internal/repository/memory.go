package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/moodpath/backend/internal/models"
)

// memoryEntryRepository keeps entries in memory, keyed per user. Listing
// returns an independent snapshot so the engine never observes concurrent
// edits mid-computation.
type memoryEntryRepository struct {
	mu      sync.RWMutex
	entries map[string]map[string]models.MoodEntry // userID -> entryID -> entry
}

// NewMemoryEntryRepository creates an empty in-memory entry store.
func NewMemoryEntryRepository() EntryRepository {
	return &memoryEntryRepository{
		entries: make(map[string]map[string]models.MoodEntry),
	}
}

func (r *memoryEntryRepository) Create(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	userEntries, ok := r.entries[entry.UserID]
	if !ok {
		userEntries = make(map[string]models.MoodEntry)
		r.entries[entry.UserID] = userEntries
	}

	userEntries[entry.ID] = *entry
	created := *entry
	return &created, nil
}

func (r *memoryEntryRepository) GetByID(ctx context.Context, userID, id string) (*models.MoodEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[userID][id]
	if !ok {
		return nil, ErrNotFound
	}
	found := entry
	return &found, nil
}

func (r *memoryEntryRepository) ListByUser(ctx context.Context, userID string) ([]models.MoodEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userEntries := r.entries[userID]
	out := make([]models.MoodEntry, 0, len(userEntries))
	for _, e := range userEntries {
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].Timestamp.Before(out[j].Timestamp)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *memoryEntryRepository) Update(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	userEntries := r.entries[entry.UserID]
	if _, ok := userEntries[entry.ID]; !ok {
		return nil, ErrNotFound
	}

	userEntries[entry.ID] = *entry
	updated := *entry
	return &updated, nil
}

func (r *memoryEntryRepository) Delete(ctx context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	userEntries := r.entries[userID]
	if _, ok := userEntries[id]; !ok {
		return ErrNotFound
	}
	delete(userEntries, id)
	return nil
}
