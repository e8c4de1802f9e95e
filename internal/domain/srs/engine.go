package srs

import (
	"fmt"
	"math"
	"time"

	"github.com/wordtrail/wordtrail-api/internal/domain"
)

// AlgorithmSM2 is the identifier stored on schedule states produced by this
// engine. The field exists so stored data can survive a future algorithm
// migration: states carrying a different identifier can be detected and
// converted instead of silently misinterpreted.
const AlgorithmSM2 = "sm2"

// Quality grade bounds and the success boundary.
const (
	MinQuality = 0
	MaxQuality = 5

	// SuccessThreshold is the lowest quality grade counted as a successful
	// review. Grades below it reset the streak and relapse the interval.
	SuccessThreshold = 3
)

// ErrInvalidQuality is returned when a quality grade is outside [0,5].
// It wraps domain.ErrInvalidInput; this is the engine's only failure mode.
var ErrInvalidQuality = fmt.Errorf("%w: quality must be within [%d,%d]",
	domain.ErrInvalidInput, MinQuality, MaxQuality)

// Schedule computes the schedule state following one review.
//
// quality grades the review on the 0..5 scale (0 = total failure,
// 5 = perfect recall); grades of SuccessThreshold and above are successes.
// prev is the item's schedule state before the review, or nil for an item
// that has never been reviewed. params may be nil, in which case defaults
// apply. The returned state is a fresh value; prev is never modified.
//
// The ease factor moves by 0.1 - (5-q)*(0.08 + (5-q)*0.02), so quality 4 is
// the neutral grade: 5 raises ease, 3 and below lower it. The result is
// floored at params.MinEaseFactor and rounded to four decimal places.
//
// On success the interval graduates: the first success earns the minimum
// interval, the second consecutive success a fixed multiple of it, and
// later successes grow the previous interval by the new ease factor. On
// failure the streak resets to zero and the interval relapses to the
// minimum, with no partial credit.
func Schedule(
	quality int,
	reviewedAt time.Time,
	prev *domain.ScheduleState,
	params *Params,
) (*domain.ScheduleState, error) {
	if quality < MinQuality || quality > MaxQuality {
		return nil, ErrInvalidQuality
	}

	p := params.normalized()

	prevEase := p.InitialEaseFactor
	prevStreak := 0
	prevInterval := 0.0
	algorithm := AlgorithmSM2
	if prev != nil {
		prevEase = prev.EaseFactor
		prevStreak = prev.Streak
		prevInterval = prev.IntervalHours
		if prev.Algorithm != "" {
			algorithm = prev.Algorithm
		}
	}

	ease := prevEase + easeDelta(quality)
	if ease < p.MinEaseFactor {
		ease = p.MinEaseFactor
	}
	ease = roundEase(ease)

	var streak int
	var interval float64
	if quality >= SuccessThreshold {
		streak = prevStreak + 1
		switch prevStreak {
		case 0:
			// First success, including the first success after a relapse.
			interval = p.MinIntervalHours
		case 1:
			// Fixed graduation step, independent of ease.
			interval = p.GraduationFactor * p.MinIntervalHours
		default:
			interval = math.Round(prevInterval * ease)
			if interval < p.MinIntervalHours {
				interval = p.MinIntervalHours
			}
		}
	} else {
		// Full relapse: the item starts its climb over.
		streak = 0
		interval = p.MinIntervalHours
	}

	return &domain.ScheduleState{
		Algorithm:      algorithm,
		Streak:         streak,
		IntervalHours:  interval,
		EaseFactor:     ease,
		DueAt:          reviewedAt.Add(time.Duration(interval * float64(time.Hour))),
		LastReviewedAt: reviewedAt,
	}, nil
}

// easeDelta computes the signed ease-factor adjustment for a quality grade.
func easeDelta(quality int) float64 {
	miss := float64(MaxQuality - quality)
	return 0.1 - miss*(0.08+miss*0.02)
}
