// Package vocab owns the lifecycle of vocabulary items: creation, listing,
// and removal. Review-state changes are out of its hands; those flow through
// the practice service only.
package vocab

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/wordtrail/wordtrail-api/internal/domain"
)

// Common error types for VocabService
var (
	// ErrVocabNotFound indicates that the vocab item does not exist.
	ErrVocabNotFound = errors.New("vocab item not found")

	// ErrVocabNotOwned indicates that the user does not own the vocab item.
	ErrVocabNotOwned = errors.New("unauthorized access: vocab item not owned by user")

	// ErrDuplicateTerm indicates the user already tracks this term.
	ErrDuplicateTerm = errors.New("term already exists for this user")
)

// VocabService manages a user's vocabulary collection.
type VocabService interface {
	// Create adds a new vocab item for the user. Notes are optional. The
	// item starts with no schedule or performance state; the first recorded
	// attempt creates both.
	// Returns ErrDuplicateTerm when the user already tracks the term.
	Create(ctx context.Context, userID uuid.UUID, term, translation, notes string) (*domain.VocabItem, error)

	// List returns all of the user's vocab items, oldest first.
	List(ctx context.Context, userID uuid.UUID) ([]*domain.VocabItem, error)

	// Delete removes a vocab item. Returns ErrVocabNotFound / ErrVocabNotOwned.
	Delete(ctx context.Context, userID, vocabID uuid.UUID) error
}
