package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// DrillSession validation errors
var (
	ErrSessionIDEmpty         = errors.New("drill session ID cannot be empty")
	ErrSessionUserIDEmpty     = errors.New("drill session user ID cannot be empty")
	ErrSessionTimesEmpty      = errors.New("drill session start and end times cannot be empty")
	ErrSessionTimesInverted   = errors.New("drill session cannot end before it starts")
	ErrSessionNegativeCounts  = errors.New("drill session counts cannot be negative")
	ErrSessionScoreOutOfRange = errors.New("drill session score must be within [0,1]")
)

// DrillSession is the record of one completed practice session. Sessions
// are produced by the practice flow and consumed read-only by the progress
// aggregator, which derives the learner's activity streak from them.
type DrillSession struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	StartedAt      time.Time `json:"started_at"`
	EndedAt        time.Time `json:"ended_at"`
	CorrectCount   int       `json:"correct_count"`
	IncorrectCount int       `json:"incorrect_count"`
	Score          float64   `json:"score"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewDrillSession creates a new DrillSession with a generated ID.
// Returns an error if validation fails.
func NewDrillSession(
	userID uuid.UUID,
	startedAt, endedAt time.Time,
	correctCount, incorrectCount int,
	score float64,
) (*DrillSession, error) {
	session := &DrillSession{
		ID:             uuid.New(),
		UserID:         userID,
		StartedAt:      startedAt,
		EndedAt:        endedAt,
		CorrectCount:   correctCount,
		IncorrectCount: incorrectCount,
		Score:          score,
		CreatedAt:      time.Now().UTC(),
	}

	if err := session.Validate(); err != nil {
		return nil, err
	}

	return session, nil
}

// Validate checks if the DrillSession has valid data.
// Returns an error if any field fails validation.
func (s *DrillSession) Validate() error {
	if s.ID == uuid.Nil {
		return ErrSessionIDEmpty
	}

	if s.UserID == uuid.Nil {
		return ErrSessionUserIDEmpty
	}

	if s.StartedAt.IsZero() || s.EndedAt.IsZero() {
		return ErrSessionTimesEmpty
	}

	if s.EndedAt.Before(s.StartedAt) {
		return ErrSessionTimesInverted
	}

	if s.CorrectCount < 0 || s.IncorrectCount < 0 {
		return ErrSessionNegativeCounts
	}

	if s.Score < 0 || s.Score > 1 {
		return ErrSessionScoreOutOfRange
	}

	return nil
}
