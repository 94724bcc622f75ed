package achievement

import (
	"time"

	"github.com/moodpath/backend/internal/logger"
	"github.com/moodpath/backend/internal/models"
)

// Tracker evaluates the goal catalog against a record snapshot and merges
// the result into a persisted ledger. It holds no state of its own beyond
// the injected catalog; callers own loading and saving the ledger and must
// serialize calls against the same ledger.
type Tracker struct {
	catalog []Goal
	log     logger.Logger
}

// NewTracker creates a tracker over an immutable goal catalog.
func NewTracker(catalog []Goal, log logger.Logger) *Tracker {
	if log == nil {
		log = logger.Default()
	}
	return &Tracker{catalog: catalog, log: log}
}

// Catalog returns the goal definitions the tracker evaluates.
func (t *Tracker) Catalog() []Goal {
	return t.catalog
}

// Evaluate computes fresh progress for every catalog goal and merges it
// into the ledger. Stored progress never decreases, even when the
// underlying metric regresses (a broken streak does not roll back an
// already-reached percentage). Ledger records for goals no longer in the
// catalog are preserved untouched.
//
// Returns the merged ledger, the goals completed by this evaluation, and
// whether anything changed (so callers can skip a redundant save).
func (t *Tracker) Evaluate(entries []models.MoodEntry, ledger models.ProgressLedger, now time.Time) (models.ProgressLedger, []models.GoalCompleted, bool) {
	snap := BuildSnapshot(entries)
	merged := ledger.Clone()
	if merged == nil {
		merged = make(models.ProgressLedger, len(t.catalog))
	}

	var completed []models.GoalCompleted
	changed := false

	for _, goal := range t.catalog {
		stored, ok := merged[goal.ID]
		if !ok {
			stored = models.ProgressRecord{GoalID: goal.ID}
			changed = true
		}

		rec, justEarned := Merge(stored, goal.Metric(snap), now)
		if rec != stored {
			changed = true
		}
		merged[goal.ID] = rec

		if justEarned {
			t.log.Info("goal completed",
				logger.String("goal_id", goal.ID),
				logger.Int("reward_points", goal.RewardPoints))
			completed = append(completed, models.GoalCompleted{
				GoalID:       goal.ID,
				Name:         goal.Name,
				RewardPoints: goal.RewardPoints,
				Tier:         goal.Tier,
				EarnedAt:     now,
			})
		}
	}

	return merged, completed, changed
}

// Merge is the single place the monotonicity invariant is enforced: the
// stored record is updated only when the freshly computed value exceeds
// it, and EarnedAt is set exactly once when progress first reaches 100.
func Merge(stored models.ProgressRecord, computed float64, now time.Time) (models.ProgressRecord, bool) {
	if computed < 0 {
		computed = 0
	}
	if computed > 100 {
		computed = 100
	}

	if computed > stored.Progress {
		stored.Progress = computed
		stored.LastUpdated = now
	}

	if stored.Progress >= 100 && stored.EarnedAt == nil {
		earned := now
		stored.EarnedAt = &earned
		stored.Progress = 100
		return stored, true
	}

	return stored, false
}
