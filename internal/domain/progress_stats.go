package domain

import "time"

// ProgressStats is the dashboard-level summary of a learner's vocabulary
// cohort. It has no persisted identity: the progress aggregator recomputes
// it from scratch on every call from the item collection and the session
// history.
type ProgressStats struct {
	TotalVocabCount   int        `json:"total_vocab_count"`
	LearnedVocabCount int        `json:"learned_vocab_count"`
	ReviewDueCount    int        `json:"review_due_count"`
	StreakDays        int        `json:"streak_days"`
	LastSessionAt     *time.Time `json:"last_session_at,omitempty"`
}
