package domain

import "time"

// SkillBucket accumulates attempt counts for one skill axis of one item.
// Counts are monotonically non-decreasing over the item's lifetime; the
// scheduling core only ever increments them.
type SkillBucket struct {
	CorrectCount   int        `json:"correct_count"`
	IncorrectCount int        `json:"incorrect_count"`
	LastAttemptAt  *time.Time `json:"last_attempt_at,omitempty"`
}

// Attempts returns the total number of attempts recorded in the bucket.
func (b SkillBucket) Attempts() int {
	return b.CorrectCount + b.IncorrectCount
}

// Accuracy returns the fraction of correct attempts in [0,1].
// Returns 0 if the bucket has no attempts; callers that need to distinguish
// "no data" from "all wrong" should check Attempts first.
func (b SkillBucket) Accuracy() float64 {
	total := b.Attempts()
	if total == 0 {
		return 0
	}
	return float64(b.CorrectCount) / float64(total)
}

// PerformanceCounters tracks a learner's per-skill history for one
// vocabulary item across two independent axes: recognition (passive recall,
// seeing the term and judging correctness) and production (active recall,
// generating the term, e.g. translation drills).
type PerformanceCounters struct {
	Recognition SkillBucket `json:"recognition"`
	Production  SkillBucket `json:"production"`
}

// Bucket returns the counters for the given activity type. The boolean is
// false for unknown activity types.
func (p PerformanceCounters) Bucket(activity ActivityType) (SkillBucket, bool) {
	switch activity {
	case ActivityTypeRecognition:
		return p.Recognition, true
	case ActivityTypeProduction:
		return p.Production, true
	default:
		return SkillBucket{}, false
	}
}
