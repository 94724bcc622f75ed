package models

import "time"

// InsightCategory classifies what an insight is telling the user.
type InsightCategory string

const (
	InsightCategoryPattern     InsightCategory = "pattern"
	InsightCategorySuggestion  InsightCategory = "suggestion"
	InsightCategoryAchievement InsightCategory = "achievement"
	InsightCategoryWarning     InsightCategory = "warning"
)

// InsightPriority orders insights for display. High sorts first.
type InsightPriority string

const (
	PriorityHigh   InsightPriority = "high"
	PriorityMedium InsightPriority = "medium"
	PriorityLow    InsightPriority = "low"
)

// Rank returns the sort ordinal for the priority (1 = most severe).
func (p InsightPriority) Rank() int {
	switch p {
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

// RelatedKind names what a related insight value refers to.
type RelatedKind string

const (
	RelatedTimeOfDay RelatedKind = "time_of_day"
	RelatedMood      RelatedKind = "mood"
	RelatedDate      RelatedKind = "date"
	RelatedActivity  RelatedKind = "activity"
	RelatedWeather   RelatedKind = "weather"
	RelatedWeekday   RelatedKind = "weekday"
)

// RelatedContext points an insight at the thing it reasoned about.
type RelatedContext struct {
	Kind  RelatedKind `json:"kind"`
	Value string      `json:"value"`
}

// Insight is a single derived observation about the user's mood history.
// Insights are recomputed per request and never persisted by the engine.
//
// The ID is derived from the analyzer name and the group keys that produced
// the insight, so identical snapshots always yield identical IDs.
type Insight struct {
	ID          string          `json:"id"`
	Analyzer    string          `json:"analyzer"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	ActionItem  string          `json:"action_item,omitempty"`
	Category    InsightCategory `json:"category"`
	Priority    InsightPriority `json:"priority"`
	SampleSize  int             `json:"sample_size"`
	Confidence  float64         `json:"confidence,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	Related     *RelatedContext `json:"related,omitempty"`
}

// InsightsResponse is the API payload for the insights endpoint.
type InsightsResponse struct {
	Items      []Insight `json:"insights"`
	ComputedAt time.Time `json:"computed_at"`
	TotalUsed  int       `json:"entries_analyzed"`
	Sufficient bool      `json:"data_sufficient"`
}
