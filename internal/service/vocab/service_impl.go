package vocab

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/wordtrail/wordtrail-api/internal/domain"
	"github.com/wordtrail/wordtrail-api/internal/platform/logger"
	"github.com/wordtrail/wordtrail-api/internal/store"
)

// Verify interface compliance at compile time
var _ VocabService = (*vocabServiceImpl)(nil)

type vocabServiceImpl struct {
	vocabStore store.VocabStore
	logger     *slog.Logger
}

// NewVocabService creates a new VocabService implementation.
func NewVocabService(vocabStore store.VocabStore, log *slog.Logger) VocabService {
	if vocabStore == nil {
		panic("vocabStore cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &vocabServiceImpl{
		vocabStore: vocabStore,
		logger:     log.With(slog.String("component", "vocab_service")),
	}
}

// Create implements VocabService.Create.
func (s *vocabServiceImpl) Create(
	ctx context.Context,
	userID uuid.UUID,
	term, translation, notes string,
) (*domain.VocabItem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	item, err := domain.NewVocabItem(userID, term, translation)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	item.Notes = notes

	if err := s.vocabStore.Create(ctx, item); err != nil {
		if errors.Is(err, store.ErrVocabExists) {
			return nil, ErrDuplicateTerm
		}
		log.Error("failed to create vocab item",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to create vocab item: %w", err)
	}

	log.Debug("vocab item created",
		slog.String("vocab_id", item.ID.String()),
		slog.String("user_id", userID.String()))
	return item, nil
}

// List implements VocabService.List.
func (s *vocabServiceImpl) List(ctx context.Context, userID uuid.UUID) ([]*domain.VocabItem, error) {
	items, err := s.vocabStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vocab items: %w", err)
	}
	return items, nil
}

// Delete implements VocabService.Delete.
func (s *vocabServiceImpl) Delete(ctx context.Context, userID, vocabID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	item, err := s.vocabStore.GetByID(ctx, vocabID)
	if err != nil {
		if errors.Is(err, store.ErrVocabNotFound) {
			return ErrVocabNotFound
		}
		return fmt.Errorf("failed to get vocab item: %w", err)
	}

	if item.UserID != userID {
		log.Warn("user does not own vocab item",
			slog.String("user_id", userID.String()),
			slog.String("vocab_id", vocabID.String()))
		return ErrVocabNotOwned
	}

	if err := s.vocabStore.Delete(ctx, vocabID); err != nil {
		if errors.Is(err, store.ErrVocabNotFound) {
			return ErrVocabNotFound
		}
		return fmt.Errorf("failed to delete vocab item: %w", err)
	}

	log.Debug("vocab item deleted",
		slog.String("vocab_id", vocabID.String()),
		slog.String("user_id", userID.String()))
	return nil
}
