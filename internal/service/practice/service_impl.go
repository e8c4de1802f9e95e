package practice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/wordtrail/wordtrail-api/internal/domain"
	"github.com/wordtrail/wordtrail-api/internal/domain/progress"
	"github.com/wordtrail/wordtrail-api/internal/domain/queue"
	"github.com/wordtrail/wordtrail-api/internal/domain/review"
	"github.com/wordtrail/wordtrail-api/internal/domain/srs"
	"github.com/wordtrail/wordtrail-api/internal/platform/logger"
	"github.com/wordtrail/wordtrail-api/internal/store"
)

// Verify interface compliance at compile time
var _ PracticeService = (*practiceServiceImpl)(nil)

// Config carries the scheduling tunables injected from application config.
// Zero values select the core's built-in defaults.
type Config struct {
	SRSParams              *srs.Params
	UpcomingWindowHours    float64
	LearnedStreakThreshold int
	DefaultQueueLimit      int
}

// practiceServiceImpl implements the PracticeService interface.
type practiceServiceImpl struct {
	db           *sql.DB
	vocabStore   store.VocabStore
	sessionStore store.SessionStore
	cfg          Config
	logger       *slog.Logger
}

// NewPracticeService creates a new PracticeService implementation.
func NewPracticeService(
	db *sql.DB,
	vocabStore store.VocabStore,
	sessionStore store.SessionStore,
	cfg Config,
	log *slog.Logger,
) PracticeService {
	if db == nil {
		panic("db cannot be nil")
	}
	if vocabStore == nil {
		panic("vocabStore cannot be nil")
	}
	if sessionStore == nil {
		panic("sessionStore cannot be nil")
	}

	if log == nil {
		log = slog.Default()
	}

	return &practiceServiceImpl{
		db:           db,
		vocabStore:   vocabStore,
		sessionStore: sessionStore,
		cfg:          cfg,
		logger:       log.With(slog.String("component", "practice_service")),
	}
}

// RecordAttempt implements PracticeService.RecordAttempt.
func (s *practiceServiceImpl) RecordAttempt(
	ctx context.Context,
	userID, vocabID uuid.UUID,
	outcome domain.ActivityOutcome,
) (*domain.VocabItem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("recording attempt",
		slog.String("user_id", userID.String()),
		slog.String("vocab_id", vocabID.String()),
		slog.String("activity_type", string(outcome.ActivityType)),
		slog.Bool("was_correct", outcome.WasCorrect))

	if err := outcome.Validate(); err != nil {
		log.Warn("invalid activity outcome",
			slog.String("user_id", userID.String()),
			slog.String("vocab_id", vocabID.String()),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", ErrInvalidOutcome, err)
	}

	var updated *domain.VocabItem
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txVocab := s.vocabStore.WithTx(tx)

		item, err := txVocab.GetForUpdate(ctx, vocabID)
		if err != nil {
			if errors.Is(err, store.ErrVocabNotFound) {
				return ErrVocabNotFound
			}
			return fmt.Errorf("failed to get vocab item: %w", err)
		}

		if item.UserID != userID {
			log.Warn("user does not own vocab item",
				slog.String("user_id", userID.String()),
				slog.String("vocab_id", vocabID.String()),
				slog.String("owner_id", item.UserID.String()))
			return ErrVocabNotOwned
		}

		schedule, performance, err := review.ApplyOutcome(item, outcome, s.cfg.SRSParams)
		if err != nil {
			return fmt.Errorf("failed to apply outcome: %w", err)
		}

		if err := txVocab.UpdateReviewState(ctx, vocabID, schedule, performance); err != nil {
			return fmt.Errorf("failed to persist review state: %w", err)
		}

		updated = item.WithReviewState(schedule, performance, outcome.AttemptedAt)
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrVocabNotFound) || errors.Is(err, ErrVocabNotOwned) {
			return nil, err
		}
		return nil, NewServiceError("record_attempt", "failed to record attempt", err)
	}

	log.Debug("attempt recorded",
		slog.String("vocab_id", vocabID.String()),
		slog.Int("streak", updated.Schedule.Streak),
		slog.Float64("interval_hours", updated.Schedule.IntervalHours))
	return updated, nil
}

// BuildQueue implements PracticeService.BuildQueue.
func (s *practiceServiceImpl) BuildQueue(
	ctx context.Context,
	userID uuid.UUID,
	now time.Time,
	limit int,
) (*queue.Result, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	items, err := s.vocabStore.ListByUser(ctx, userID)
	if err != nil {
		log.Error("failed to list vocab items for queue",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, NewServiceError("build_queue", "failed to load vocab items", err)
	}

	if limit <= 0 {
		limit = s.cfg.DefaultQueueLimit
	}

	result := queue.Build(items, now, queue.Options{
		Limit:               limit,
		UpcomingWindowHours: s.cfg.UpcomingWindowHours,
	})

	log.Debug("practice queue built",
		slog.String("user_id", userID.String()),
		slog.Int("queue_len", len(result.Queue)),
		slog.Int("due_count", result.DueCount),
		slog.Int("upcoming_count", result.UpcomingCount),
		slog.Int("new_count", result.NewCount))
	return &result, nil
}

// GetProgress implements PracticeService.GetProgress.
func (s *practiceServiceImpl) GetProgress(
	ctx context.Context,
	userID uuid.UUID,
	now time.Time,
) (*domain.ProgressStats, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	items, err := s.vocabStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, NewServiceError("get_progress", "failed to load vocab items", err)
	}

	sessions, err := s.sessionStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, NewServiceError("get_progress", "failed to load drill sessions", err)
	}

	stats := progress.Aggregate(items, sessions, now, s.cfg.LearnedStreakThreshold)

	log.Debug("progress aggregated",
		slog.String("user_id", userID.String()),
		slog.Int("total", stats.TotalVocabCount),
		slog.Int("learned", stats.LearnedVocabCount),
		slog.Int("due", stats.ReviewDueCount),
		slog.Int("streak_days", stats.StreakDays))
	return stats, nil
}

// GetMastery implements PracticeService.GetMastery.
func (s *practiceServiceImpl) GetMastery(
	ctx context.Context,
	userID, vocabID uuid.UUID,
	now time.Time,
) (*MasterySnapshot, error) {
	item, err := s.vocabStore.GetByID(ctx, vocabID)
	if err != nil {
		if errors.Is(err, store.ErrVocabNotFound) {
			return nil, ErrVocabNotFound
		}
		return nil, NewServiceError("get_mastery", "failed to get vocab item", err)
	}

	if item.UserID != userID {
		return nil, ErrVocabNotOwned
	}

	return &MasterySnapshot{
		Level:        review.MasteryLevel(item),
		Mastered:     review.IsMastered(item),
		Due:          review.IsDue(item, now),
		DaysUntilDue: review.DaysUntilDue(item, now),
	}, nil
}

// RecordSession implements PracticeService.RecordSession.
func (s *practiceServiceImpl) RecordSession(
	ctx context.Context,
	userID uuid.UUID,
	startedAt, endedAt time.Time,
	correctCount, incorrectCount int,
	score float64,
) (*domain.DrillSession, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	session, err := domain.NewDrillSession(userID, startedAt, endedAt, correctCount, incorrectCount, score)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOutcome, err)
	}

	if err := s.sessionStore.Create(ctx, session); err != nil {
		log.Error("failed to persist drill session",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, NewServiceError("record_session", "failed to persist drill session", err)
	}

	return session, nil
}
