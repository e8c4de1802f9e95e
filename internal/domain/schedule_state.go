package domain

import (
	"errors"
	"time"
)

// ScheduleState validation errors
var (
	ErrInvalidAlgorithm  = errors.New("schedule algorithm identifier cannot be empty")
	ErrInvalidStreak     = errors.New("streak must be greater than or equal to 0")
	ErrInvalidInterval   = errors.New("interval hours must be greater than or equal to 0")
	ErrInvalidEaseFactor = errors.New("ease factor must be greater than 1.0")
)

// ScheduleState is the persisted spaced-repetition bookkeeping for one
// vocabulary item. It is absent (nil on the owning VocabItem) until the
// item's first review and replaced wholesale on every subsequent review.
//
// Invariants maintained by the srs package:
//   - Streak resets to 0 on any failed review and increments by 1 on success.
//   - IntervalHours is always at least the configured minimum after a review.
//   - EaseFactor never drops below the configured floor (default 1.3).
//   - DueAt equals LastReviewedAt plus IntervalHours.
type ScheduleState struct {
	Algorithm      string    `json:"algorithm"`
	Streak         int       `json:"streak"`
	IntervalHours  float64   `json:"interval_hours"`
	EaseFactor     float64   `json:"ease_factor"`
	DueAt          time.Time `json:"due_at"`
	LastReviewedAt time.Time `json:"last_reviewed_at"`
}

// Validate checks if the ScheduleState has valid data.
// Returns an error if any field fails validation.
func (s *ScheduleState) Validate() error {
	if s.Algorithm == "" {
		return ErrInvalidAlgorithm
	}

	if s.Streak < 0 {
		return ErrInvalidStreak
	}

	if s.IntervalHours < 0 {
		return ErrInvalidInterval
	}

	if s.EaseFactor <= 1.0 {
		return ErrInvalidEaseFactor
	}

	return nil
}

// WasSuccessful reports whether the most recent review was a success.
// A failed review always resets the streak to zero, so a positive streak
// implies the last graded quality was at or above the success boundary.
func (s *ScheduleState) WasSuccessful() bool {
	return s.Streak > 0
}

// HoursUntilDue returns the signed number of hours between now and the due
// date. Negative values mean the item is overdue.
func (s *ScheduleState) HoursUntilDue(now time.Time) float64 {
	return s.DueAt.Sub(now).Hours()
}
