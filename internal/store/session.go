package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/wordtrail/wordtrail-api/internal/domain"
)

// SessionStore defines the interface for drill-session persistence.
// Sessions are written once when a practice session completes and read
// back as an immutable history by the progress aggregator.
type SessionStore interface {
	// Create saves a completed drill session.
	// Returns validation errors if the session data is invalid.
	Create(ctx context.Context, session *domain.DrillSession) error

	// ListByUser retrieves a user's drill sessions ordered by end time
	// descending (most recent first).
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.DrillSession, error)

	// WithTx returns a new SessionStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) SessionStore
}
