package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/wordtrail/wordtrail-api/internal/domain"
	"github.com/wordtrail/wordtrail-api/internal/platform/logger"
	"github.com/wordtrail/wordtrail-api/internal/store"
)

// PostgresSessionStore implements the store.SessionStore interface
// using a PostgreSQL database as the storage backend.
type PostgresSessionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSessionStore creates a new PostgreSQL implementation of the
// SessionStore interface. If logger is nil, a default logger will be used.
func NewPostgresSessionStore(db store.DBTX, logger *slog.Logger) *PostgresSessionStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresSessionStore{
		db:     db,
		logger: logger.With(slog.String("component", "session_store")),
	}
}

// Ensure PostgresSessionStore implements store.SessionStore interface
var _ store.SessionStore = (*PostgresSessionStore)(nil)

// Create implements store.SessionStore.Create.
func (s *PostgresSessionStore) Create(ctx context.Context, session *domain.DrillSession) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := session.Validate(); err != nil {
		log.Warn("drill session validation failed during create",
			slog.String("error", err.Error()),
			slog.String("session_id", session.ID.String()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO drill_sessions
			(id, user_id, started_at, ended_at, correct_count, incorrect_count, score, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		session.ID,
		session.UserID,
		session.StartedAt,
		session.EndedAt,
		session.CorrectCount,
		session.IncorrectCount,
		session.Score,
		session.CreatedAt,
	)

	if err != nil {
		log.Error("failed to create drill session",
			slog.String("error", err.Error()),
			slog.String("session_id", session.ID.String()))
		return err
	}

	log.Info("drill session recorded",
		slog.String("session_id", session.ID.String()),
		slog.String("user_id", session.UserID.String()))
	return nil
}

// ListByUser implements store.SessionStore.ListByUser.
func (s *PostgresSessionStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.DrillSession, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, started_at, ended_at, correct_count, incorrect_count, score, created_at
		FROM drill_sessions
		WHERE user_id = $1
		ORDER BY ended_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list drill sessions",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	var sessions []*domain.DrillSession
	for rows.Next() {
		var session domain.DrillSession
		err := rows.Scan(
			&session.ID,
			&session.UserID,
			&session.StartedAt,
			&session.EndedAt,
			&session.CorrectCount,
			&session.IncorrectCount,
			&session.Score,
			&session.CreatedAt,
		)
		if err != nil {
			log.Error("failed to scan drill session",
				slog.String("error", err.Error()),
				slog.String("user_id", userID.String()))
			return nil, err
		}
		sessions = append(sessions, &session)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}

// WithTx implements store.SessionStore.WithTx.
func (s *PostgresSessionStore) WithTx(tx *sql.Tx) store.SessionStore {
	return &PostgresSessionStore{
		db:     tx,
		logger: s.logger,
	}
}
