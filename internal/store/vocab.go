package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/wordtrail/wordtrail-api/internal/domain"
)

// VocabStore defines the interface for vocabulary item persistence.
//
// The scheduling core never queries the store directly: callers fetch items,
// pass them into the core, and persist the returned schedule/performance
// state back through UpdateReviewState.
type VocabStore interface {
	// Create saves a new vocab item.
	// Returns validation errors if the item data is invalid.
	// Returns ErrVocabExists if the user already has an item with the term.
	Create(ctx context.Context, item *domain.VocabItem) error

	// GetByID retrieves a vocab item by its unique ID, including its
	// schedule state and performance counters when present.
	// Returns ErrVocabNotFound if the item does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.VocabItem, error)

	// GetForUpdate retrieves a vocab item with a row-level lock using
	// SELECT FOR UPDATE. Use this within a transaction when recording an
	// attempt, so the read-modify-write of the item's review state is
	// serialized against concurrent attempts on the same item.
	// Returns ErrVocabNotFound if the item does not exist.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.VocabItem, error)

	// ListByUser retrieves all vocab items belonging to a user, ordered by
	// creation time ascending. The result feeds the queue builder and the
	// progress aggregator.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.VocabItem, error)

	// UpdateReviewState replaces an item's schedule state and performance
	// counters wholesale, matching the core's replace-not-merge contract.
	// Returns ErrVocabNotFound if the item does not exist.
	UpdateReviewState(
		ctx context.Context,
		id uuid.UUID,
		schedule *domain.ScheduleState,
		performance *domain.PerformanceCounters,
	) error

	// Delete removes a vocab item together with its schedule and counters.
	// Returns ErrVocabNotFound if the item does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new VocabStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller,
	// typically via RunInTransaction.
	WithTx(tx *sql.Tx) VocabStore
}
