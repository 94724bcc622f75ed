package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/moodpath/backend/internal/logger"
	"github.com/moodpath/backend/internal/models"
)

// fileProgressRepository stores one JSON ledger file per user under a data
// directory. Writes go through a temp file and rename so a crash never
// leaves a half-written ledger behind.
type fileProgressRepository struct {
	dir string
	mu  sync.Mutex
	log logger.Logger
}

// NewFileProgressRepository creates a ledger store rooted at dir,
// creating the directory if needed.
func NewFileProgressRepository(dir string, log logger.Logger) (ProgressRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create ledger directory: %w", err)
	}
	if log == nil {
		log = logger.Default()
	}
	return &fileProgressRepository{dir: dir, log: log}, nil
}

func (r *fileProgressRepository) path(userID string) string {
	// One file per user; anything path-unsafe in the id is flattened.
	safe := strings.Map(func(c rune) rune {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
			return c
		}
		return '_'
	}, userID)
	return filepath.Join(r.dir, safe+".json")
}

// Load reads the user's ledger. A missing file yields an empty ledger.
// Stored progress outside [0,100] is clamped and logged, never propagated
// as a failure; a user's earned progress is never silently lowered below
// what the clamp requires.
func (r *fileProgressRepository) Load(ctx context.Context, userID string) (models.ProgressLedger, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path(userID))
	if os.IsNotExist(err) {
		return models.ProgressLedger{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read progress ledger: %w", err)
	}

	var ledger models.ProgressLedger
	if err := json.Unmarshal(data, &ledger); err != nil {
		return nil, fmt.Errorf("failed to decode progress ledger: %w", err)
	}

	for goalID, rec := range ledger {
		if rec.GoalID == "" {
			rec.GoalID = goalID
		}
		if rec.Progress > 100 {
			r.log.Warn("clamping stored progress above 100",
				logger.String("user_id", userID),
				logger.String("goal_id", goalID),
				logger.Float64("stored", rec.Progress))
			rec.Progress = 100
		}
		if rec.Progress < 0 {
			r.log.Warn("clamping negative stored progress",
				logger.String("user_id", userID),
				logger.String("goal_id", goalID),
				logger.Float64("stored", rec.Progress))
			rec.Progress = 0
		}
		ledger[goalID] = rec
	}

	return ledger, nil
}

// Save writes the ledger atomically. Saving a just-loaded ledger produces
// a byte-identical file.
func (r *fileProgressRepository) Save(ctx context.Context, userID string, ledger models.ProgressLedger) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.MarshalIndent(ledger, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode progress ledger: %w", err)
	}

	path := r.path(userID)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write progress ledger: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace progress ledger: %w", err)
	}
	return nil
}
