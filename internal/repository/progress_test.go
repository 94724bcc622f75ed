package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodpath/backend/internal/models"
)

func TestFileProgressRoundTrip(t *testing.T) {
	repo, err := NewFileProgressRepository(t.TempDir(), nil)
	require.NoError(t, err)

	ctx := context.Background()
	earned := time.Date(2025, 6, 16, 12, 0, 0, 0, time.UTC)
	ledger := models.ProgressLedger{
		"week-streak": {GoalID: "week-streak", Progress: 100, LastUpdated: earned, EarnedAt: &earned},
		"mood-master": {GoalID: "mood-master", Progress: 43, LastUpdated: earned},
	}

	require.NoError(t, repo.Save(ctx, "user-1", ledger))

	loaded, err := repo.Load(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, ledger, loaded)
}

func TestFileProgressMissingFileYieldsEmptyLedger(t *testing.T) {
	repo, err := NewFileProgressRepository(t.TempDir(), nil)
	require.NoError(t, err)

	ledger, err := repo.Load(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, ledger)
}

func TestFileProgressClampsCorruptValues(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewFileProgressRepository(dir, nil)
	require.NoError(t, err)

	raw := `{
  "week-streak": {"goal_id": "week-streak", "progress": 140},
  "mood-master": {"progress": -5}
}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "user-1.json"), []byte(raw), 0o644))

	ledger, err := repo.Load(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, 100.0, ledger["week-streak"].Progress)
	assert.Equal(t, 0.0, ledger["mood-master"].Progress)
	// A record stored without its key gets it backfilled.
	assert.Equal(t, "mood-master", ledger["mood-master"].GoalID)
}

func TestFileProgressPathIsSanitized(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewFileProgressRepository(dir, nil)
	require.NoError(t, err)

	ctx := context.Background()
	ledger := models.ProgressLedger{"first-entry": {GoalID: "first-entry", Progress: 100}}
	require.NoError(t, repo.Save(ctx, "../sneaky/user", ledger))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "___sneaky_user.json", entries[0].Name())

	loaded, err := repo.Load(ctx, "../sneaky/user")
	require.NoError(t, err)
	assert.Equal(t, ledger, loaded)
}

func TestFileProgressIsolatesUsers(t *testing.T) {
	repo, err := NewFileProgressRepository(t.TempDir(), nil)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, "alice", models.ProgressLedger{
		"first-entry": {GoalID: "first-entry", Progress: 100},
	}))

	ledger, err := repo.Load(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, ledger)
}
