// Package practice orchestrates the scheduling core against the stores:
// it loads item and session state, runs the pure decision functions, and
// persists their output. All scheduling decisions happen in the domain
// packages; this package owns only transactions, ownership checks, and
// error mapping.
package practice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wordtrail/wordtrail-api/internal/domain"
	"github.com/wordtrail/wordtrail-api/internal/domain/queue"
)

// Common error types for PracticeService
var (
	// ErrVocabNotFound indicates that the vocab item does not exist.
	ErrVocabNotFound = errors.New("vocab item not found")

	// ErrVocabNotOwned indicates that the user does not own the vocab item.
	ErrVocabNotOwned = errors.New("unauthorized access: vocab item not owned by user")

	// ErrInvalidOutcome indicates an invalid activity outcome was provided.
	ErrInvalidOutcome = errors.New("invalid activity outcome")
)

// MasterySnapshot is the read-only mastery view of a single item.
// Level is nil when the item has no recorded attempts; DaysUntilDue is nil
// when the item has never been reviewed.
type MasterySnapshot struct {
	Level        *float64 `json:"level"`
	Mastered     bool     `json:"mastered"`
	Due          bool     `json:"due"`
	DaysUntilDue *float64 `json:"days_until_due"`
}

// PracticeService exposes the spaced-repetition core to the API layer.
type PracticeService interface {
	// RecordAttempt folds one learner action into a vocab item's review
	// state and persists the result. The read-modify-write runs inside a
	// transaction with a row lock, serializing concurrent attempts on the
	// same item.
	//
	// Returns the item carrying its new schedule and performance state,
	// ErrVocabNotFound if the item does not exist, ErrVocabNotOwned if it
	// belongs to another user, or ErrInvalidOutcome for a malformed outcome.
	RecordAttempt(
		ctx context.Context,
		userID, vocabID uuid.UUID,
		outcome domain.ActivityOutcome,
	) (*domain.VocabItem, error)

	// BuildQueue constructs the practice queue for a user as of now.
	// limit truncates the queue; zero or negative means the configured
	// default (no truncation when that is also unset).
	BuildQueue(ctx context.Context, userID uuid.UUID, now time.Time, limit int) (*queue.Result, error)

	// GetProgress computes the user's dashboard statistics as of now.
	GetProgress(ctx context.Context, userID uuid.UUID, now time.Time) (*domain.ProgressStats, error)

	// GetMastery returns the mastery view of one item as of now.
	// Returns ErrVocabNotFound / ErrVocabNotOwned like RecordAttempt.
	GetMastery(ctx context.Context, userID, vocabID uuid.UUID, now time.Time) (*MasterySnapshot, error)

	// RecordSession persists a completed drill session for later progress
	// aggregation.
	RecordSession(
		ctx context.Context,
		userID uuid.UUID,
		startedAt, endedAt time.Time,
		correctCount, incorrectCount int,
		score float64,
	) (*domain.DrillSession, error)
}

// ServiceError wraps errors from the practice service with additional
// context, so consumers can differentiate failures with errors.As instead
// of string matching.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "record_attempt").
	Operation string
	// Message is a human-readable description of the error.
	Message string
	// Err is the underlying error that caused the failure.
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError returns a new ServiceError for the given operation.
func NewServiceError(operation, message string, err error) *ServiceError {
	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
