package domain

import (
	"errors"
	"time"
)

// ActivityType identifies the skill axis a drill exercises.
type ActivityType string

// Possible activity type values
const (
	// ActivityTypeRecognition is a passive-recall drill: the learner sees
	// the term and judges or selects the correct meaning.
	ActivityTypeRecognition ActivityType = "recognition"

	// ActivityTypeProduction is an active-recall drill: the learner
	// generates the term, e.g. in a translation exercise.
	ActivityTypeProduction ActivityType = "production"
)

// IsValid reports whether the activity type is one of the known values.
func (a ActivityType) IsValid() bool {
	switch a {
	case ActivityTypeRecognition, ActivityTypeProduction:
		return true
	default:
		return false
	}
}

// ActivityOutcome validation errors
var (
	ErrOutcomeScoreOutOfRange  = errors.New("outcome score must be within [0,1]")
	ErrOutcomeAttemptedAtEmpty = errors.New("outcome attempted-at timestamp cannot be empty")
)

// ActivityOutcome is the transient record of a single learner action.
// It is consumed immediately by the review classifier and never persisted
// as-is; only the schedule and performance state derived from it survive.
//
// Score is an optional continuous accuracy in [0,1] and is meaningful for
// production drills only; recognition drills carry a purely binary signal.
type ActivityOutcome struct {
	ActivityType ActivityType `json:"activity_type"`
	WasCorrect   bool         `json:"was_correct"`
	Score        *float64     `json:"score,omitempty"`
	AttemptedAt  time.Time    `json:"attempted_at"`
}

// Validate checks if the ActivityOutcome has valid data.
// Returns an error if any field fails validation.
func (o ActivityOutcome) Validate() error {
	if !o.ActivityType.IsValid() {
		return ErrInvalidActivityType
	}

	if o.Score != nil && (*o.Score < 0 || *o.Score > 1) {
		return ErrOutcomeScoreOutOfRange
	}

	if o.AttemptedAt.IsZero() {
		return ErrOutcomeAttemptedAtEmpty
	}

	return nil
}
