// Package review translates heterogeneous drill outcomes into the single
// graded quality signal the interval engine consumes, and accumulates the
// per-skill performance counters each outcome contributes to. Like the
// engine it is pure: every function only reads its arguments and allocates
// new output values.
package review

import (
	"time"

	"github.com/wordtrail/wordtrail-api/internal/domain"
	"github.com/wordtrail/wordtrail-api/internal/domain/srs"
)

// Production score quantization breakpoints. These are a tunable policy,
// not a contract: any monotonic mapping works as long as scores of 0.9 and
// above earn the maximum grade and WasCorrect dominates the success/fail
// boundary.
const (
	scorePerfect  = 0.9  // correct with score >= this earns quality 5
	scoreSolid    = 0.75 // correct with score >= this earns quality 4
	scoreNearMiss = 0.5  // incorrect with score >= this earns quality 2
)

// Binary grades used when no continuous score applies.
const (
	qualityCorrectBinary   = 4 // clearly successful
	qualityIncorrectBinary = 1 // clearly failed
)

// ApplyOutcome folds one learner action into an item's review state. It
// updates the performance bucket matching the outcome's activity type,
// derives a graded quality from the outcome, and delegates to the interval
// engine for the new schedule. The returned schedule and counters are fresh
// values; the item is not modified, and persisting the result is the
// caller's responsibility.
//
// The derived quality is always clamped into the engine's valid range, so
// any outcome that passes Validate produces a result without error.
func ApplyOutcome(
	item *domain.VocabItem,
	outcome domain.ActivityOutcome,
	params *srs.Params,
) (*domain.ScheduleState, *domain.PerformanceCounters, error) {
	if err := outcome.Validate(); err != nil {
		return nil, nil, err
	}

	performance := updatedCounters(item.Performance, outcome)

	quality := clampQuality(deriveQuality(outcome))
	schedule, err := srs.Schedule(quality, outcome.AttemptedAt, item.Schedule, params)
	if err != nil {
		return nil, nil, err
	}

	return schedule, performance, nil
}

// deriveQuality maps an activity outcome to a 0..5 quality grade.
//
// Recognition drills carry a binary signal. Production drills use the
// continuous score when present, quantized so that high scores earn high
// grades; WasCorrect always decides which side of the success boundary the
// grade lands on, even when the score disagrees. Production without a score
// falls back to the binary mapping.
func deriveQuality(outcome domain.ActivityOutcome) int {
	switch outcome.ActivityType {
	case domain.ActivityTypeRecognition:
		return binaryQuality(outcome.WasCorrect)

	case domain.ActivityTypeProduction:
		if outcome.Score == nil {
			return binaryQuality(outcome.WasCorrect)
		}
		score := *outcome.Score
		if outcome.WasCorrect {
			switch {
			case score >= scorePerfect:
				return srs.MaxQuality
			case score >= scoreSolid:
				return 4
			default:
				return srs.SuccessThreshold
			}
		}
		if score >= scoreNearMiss {
			return 2
		}
		return 1

	default:
		// Unreachable for validated outcomes; grade unknown drills as failed.
		return qualityIncorrectBinary
	}
}

func binaryQuality(wasCorrect bool) int {
	if wasCorrect {
		return qualityCorrectBinary
	}
	return qualityIncorrectBinary
}

func clampQuality(quality int) int {
	if quality < srs.MinQuality {
		return srs.MinQuality
	}
	if quality > srs.MaxQuality {
		return srs.MaxQuality
	}
	return quality
}

// updatedCounters returns a copy of prev with the bucket matching the
// outcome's activity type incremented. The other bucket is untouched.
// A nil prev counts as empty counters.
func updatedCounters(
	prev *domain.PerformanceCounters,
	outcome domain.ActivityOutcome,
) *domain.PerformanceCounters {
	counters := domain.PerformanceCounters{}
	if prev != nil {
		counters = *prev
	}

	switch outcome.ActivityType {
	case domain.ActivityTypeRecognition:
		counters.Recognition = bumpBucket(counters.Recognition, outcome.WasCorrect, outcome.AttemptedAt)
	case domain.ActivityTypeProduction:
		counters.Production = bumpBucket(counters.Production, outcome.WasCorrect, outcome.AttemptedAt)
	}

	return &counters
}

func bumpBucket(bucket domain.SkillBucket, wasCorrect bool, attemptedAt time.Time) domain.SkillBucket {
	if wasCorrect {
		bucket.CorrectCount++
	} else {
		bucket.IncorrectCount++
	}
	at := attemptedAt
	bucket.LastAttemptAt = &at
	return bucket
}
