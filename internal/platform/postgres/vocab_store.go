package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/wordtrail/wordtrail-api/internal/domain"
	"github.com/wordtrail/wordtrail-api/internal/platform/logger"
	"github.com/wordtrail/wordtrail-api/internal/store"
)

// PostgresVocabStore implements the store.VocabStore interface
// using a PostgreSQL database as the storage backend.
type PostgresVocabStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresVocabStore creates a new PostgreSQL implementation of the
// VocabStore interface. It accepts a database connection or transaction
// managed by the caller. If logger is nil, a default logger will be used.
func NewPostgresVocabStore(db store.DBTX, logger *slog.Logger) *PostgresVocabStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresVocabStore{
		db:     db,
		logger: logger.With(slog.String("component", "vocab_store")),
	}
}

// Ensure PostgresVocabStore implements store.VocabStore interface
var _ store.VocabStore = (*PostgresVocabStore)(nil)

const vocabColumns = `id, user_id, term, translation, notes, schedule, performance, created_at, updated_at`

// Create implements store.VocabStore.Create.
// Returns store.ErrVocabExists when the user already has an item with the
// same term (unique constraint on user_id+term).
func (s *PostgresVocabStore) Create(ctx context.Context, item *domain.VocabItem) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := item.Validate(); err != nil {
		log.Warn("vocab item validation failed during create",
			slog.String("error", err.Error()),
			slog.String("vocab_id", item.ID.String()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	scheduleJSON, performanceJSON, err := marshalReviewState(item.Schedule, item.Performance)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO vocab_items (` + vocabColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		item.ID,
		item.UserID,
		item.Term,
		item.Translation,
		item.Notes,
		scheduleJSON,
		performanceJSON,
		item.CreatedAt,
		item.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			log.Warn("duplicate vocab item",
				slog.String("vocab_id", item.ID.String()),
				slog.String("user_id", item.UserID.String()))
			return store.ErrVocabExists
		}

		log.Error("failed to create vocab item",
			slog.String("error", err.Error()),
			slog.String("vocab_id", item.ID.String()))
		return err
	}

	log.Info("vocab item created",
		slog.String("vocab_id", item.ID.String()),
		slog.String("user_id", item.UserID.String()))
	return nil
}

// GetByID implements store.VocabStore.GetByID.
// Returns store.ErrVocabNotFound if the item does not exist.
func (s *PostgresVocabStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.VocabItem, error) {
	query := `
		SELECT ` + vocabColumns + `
		FROM vocab_items
		WHERE id = $1
	`
	return s.getOne(ctx, query, id)
}

// GetForUpdate implements store.VocabStore.GetForUpdate.
// It acquires a row-level lock so the caller's read-modify-write of the
// item's review state is serialized against concurrent attempts.
// Returns store.ErrVocabNotFound if the item does not exist.
func (s *PostgresVocabStore) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.VocabItem, error) {
	query := `
		SELECT ` + vocabColumns + `
		FROM vocab_items
		WHERE id = $1
		FOR UPDATE
	`
	return s.getOne(ctx, query, id)
}

func (s *PostgresVocabStore) getOne(ctx context.Context, query string, id uuid.UUID) (*domain.VocabItem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	row := s.db.QueryRowContext(ctx, query, id)
	item, err := scanVocabItem(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("vocab item not found", slog.String("vocab_id", id.String()))
			return nil, store.ErrVocabNotFound
		}
		log.Error("failed to get vocab item",
			slog.String("error", err.Error()),
			slog.String("vocab_id", id.String()))
		return nil, err
	}

	return item, nil
}

// ListByUser implements store.VocabStore.ListByUser.
// Items are returned oldest first so the queue builder's FIFO ordering of
// new items falls out of the query.
func (s *PostgresVocabStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.VocabItem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + vocabColumns + `
		FROM vocab_items
		WHERE user_id = $1
		ORDER BY created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list vocab items",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	var items []*domain.VocabItem
	for rows.Next() {
		item, err := scanVocabItem(rows.Scan)
		if err != nil {
			log.Error("failed to scan vocab item",
				slog.String("error", err.Error()),
				slog.String("user_id", userID.String()))
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// UpdateReviewState implements store.VocabStore.UpdateReviewState.
// The schedule and performance documents are replaced wholesale.
// Returns store.ErrVocabNotFound if the item does not exist.
func (s *PostgresVocabStore) UpdateReviewState(
	ctx context.Context,
	id uuid.UUID,
	schedule *domain.ScheduleState,
	performance *domain.PerformanceCounters,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if schedule != nil {
		if err := schedule.Validate(); err != nil {
			log.Warn("schedule validation failed during review-state update",
				slog.String("error", err.Error()),
				slog.String("vocab_id", id.String()))
			return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
		}
	}

	scheduleJSON, performanceJSON, err := marshalReviewState(schedule, performance)
	if err != nil {
		return err
	}

	query := `
		UPDATE vocab_items
		SET schedule = $2, performance = $3, updated_at = $4
		WHERE id = $1
	`
	result, err := s.db.ExecContext(ctx, query, id, scheduleJSON, performanceJSON, time.Now().UTC())
	if err != nil {
		log.Error("failed to update review state",
			slog.String("error", err.Error()),
			slog.String("vocab_id", id.String()))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		log.Debug("vocab item not found for review-state update",
			slog.String("vocab_id", id.String()))
		return store.ErrVocabNotFound
	}

	log.Debug("review state updated", slog.String("vocab_id", id.String()))
	return nil
}

// Delete implements store.VocabStore.Delete.
// Returns store.ErrVocabNotFound if the item does not exist.
func (s *PostgresVocabStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM vocab_items WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete vocab item",
			slog.String("error", err.Error()),
			slog.String("vocab_id", id.String()))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return store.ErrVocabNotFound
	}

	log.Info("vocab item deleted", slog.String("vocab_id", id.String()))
	return nil
}

// WithTx implements store.VocabStore.WithTx.
func (s *PostgresVocabStore) WithTx(tx *sql.Tx) store.VocabStore {
	return &PostgresVocabStore{
		db:     tx,
		logger: s.logger,
	}
}

// marshalReviewState serializes the optional schedule and performance
// documents, preserving SQL NULL for absent state so "never reviewed"
// round-trips as nil.
func marshalReviewState(
	schedule *domain.ScheduleState,
	performance *domain.PerformanceCounters,
) ([]byte, []byte, error) {
	var scheduleJSON, performanceJSON []byte
	var err error

	if schedule != nil {
		scheduleJSON, err = json.Marshal(schedule)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to marshal schedule state: %w", err)
		}
	}
	if performance != nil {
		performanceJSON, err = json.Marshal(performance)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to marshal performance counters: %w", err)
		}
	}

	return scheduleJSON, performanceJSON, nil
}

// scanVocabItem reads one vocab item row using the provided scan function,
// decoding the JSONB review-state documents when present.
func scanVocabItem(scan func(dest ...any) error) (*domain.VocabItem, error) {
	var item domain.VocabItem
	var scheduleJSON, performanceJSON []byte

	err := scan(
		&item.ID,
		&item.UserID,
		&item.Term,
		&item.Translation,
		&item.Notes,
		&scheduleJSON,
		&performanceJSON,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(scheduleJSON) > 0 {
		var schedule domain.ScheduleState
		if err := json.Unmarshal(scheduleJSON, &schedule); err != nil {
			return nil, fmt.Errorf("failed to unmarshal schedule state: %w", err)
		}
		item.Schedule = &schedule
	}
	if len(performanceJSON) > 0 {
		var performance domain.PerformanceCounters
		if err := json.Unmarshal(performanceJSON, &performance); err != nil {
			return nil, fmt.Errorf("failed to unmarshal performance counters: %w", err)
		}
		item.Performance = &performance
	}

	return &item, nil
}
