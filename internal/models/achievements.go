package models

import "time"

// GoalTier groups goals by how hard they are to earn.
type GoalTier string

const (
	TierBronze   GoalTier = "bronze"
	TierSilver   GoalTier = "silver"
	TierGold     GoalTier = "gold"
	TierPlatinum GoalTier = "platinum"
	TierElite    GoalTier = "elite"
)

// GoalDefinition is a static catalog entry. The catalog is injected at
// construction and never edited at runtime.
type GoalDefinition struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Criteria     string   `json:"criteria"`
	RewardPoints int      `json:"reward_points"`
	Tier         GoalTier `json:"tier"`
}

// ProgressRecord is the persisted progress toward one goal.
// Progress is monotonic: once increased it is never reported lower.
type ProgressRecord struct {
	GoalID      string     `json:"goal_id"`
	Progress    float64    `json:"progress"`
	LastUpdated time.Time  `json:"last_updated"`
	EarnedAt    *time.Time `json:"earned_at,omitempty"`
}

// Earned reports whether the goal has been completed.
func (r ProgressRecord) Earned() bool { return r.EarnedAt != nil }

// ProgressLedger is the persisted map of goal id to progress for one user.
type ProgressLedger map[string]ProgressRecord

// Clone returns a deep copy of the ledger.
func (l ProgressLedger) Clone() ProgressLedger {
	out := make(ProgressLedger, len(l))
	for id, rec := range l {
		out[id] = rec
	}
	return out
}

// GoalCompleted is emitted when a goal first crosses 100 progress.
// Consumed by the rewards-notification collaborator.
type GoalCompleted struct {
	GoalID       string    `json:"goal_id"`
	Name         string    `json:"name"`
	RewardPoints int       `json:"reward_points"`
	Tier         GoalTier  `json:"tier"`
	EarnedAt     time.Time `json:"earned_at"`
}

// GoalProgress pairs a catalog entry with its current progress for display.
type GoalProgress struct {
	Goal     GoalDefinition `json:"goal"`
	Progress float64        `json:"progress"`
	Earned   bool           `json:"earned"`
	EarnedAt *time.Time     `json:"earned_at,omitempty"`
}

// AchievementsResponse is the API payload for the achievements endpoint.
type AchievementsResponse struct {
	Goals       []GoalProgress  `json:"goals"`
	EarnedCount int             `json:"earned_count"`
	TotalPoints int             `json:"total_points"`
	Completed   []GoalCompleted `json:"newly_completed,omitempty"`
}
