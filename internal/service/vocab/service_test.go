package vocab_test

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wordtrail/wordtrail-api/internal/domain"
	"github.com/wordtrail/wordtrail-api/internal/service/vocab"
	"github.com/wordtrail/wordtrail-api/internal/store"
)

// MockVocabStore is a mock implementation of the store.VocabStore interface.
type MockVocabStore struct {
	mock.Mock
}

func (m *MockVocabStore) Create(ctx context.Context, item *domain.VocabItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockVocabStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.VocabItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VocabItem), args.Error(1)
}

func (m *MockVocabStore) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.VocabItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VocabItem), args.Error(1)
}

func (m *MockVocabStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.VocabItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.VocabItem), args.Error(1)
}

func (m *MockVocabStore) UpdateReviewState(
	ctx context.Context,
	id uuid.UUID,
	schedule *domain.ScheduleState,
	performance *domain.PerformanceCounters,
) error {
	args := m.Called(ctx, id, schedule, performance)
	return args.Error(0)
}

func (m *MockVocabStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVocabStore) WithTx(tx *sql.Tx) store.VocabStore {
	args := m.Called(tx)
	return args.Get(0).(store.VocabStore)
}

func newTestService(mockStore *MockVocabStore) vocab.VocabService {
	return vocab.NewVocabService(mockStore, slog.New(slog.NewJSONHandler(io.Discard, nil)))
}

func TestCreate_Success(t *testing.T) {
	mockStore := new(MockVocabStore)
	svc := newTestService(mockStore)
	userID := uuid.New()

	mockStore.On("Create", mock.Anything, mock.MatchedBy(func(item *domain.VocabItem) bool {
		return item.UserID == userID && item.Term == "der Apfel" && item.Schedule == nil
	})).Return(nil)

	item, err := svc.Create(context.Background(), userID, "der Apfel", "the apple", "common noun")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, item.ID)
	assert.Equal(t, "common noun", item.Notes)
	assert.Nil(t, item.Schedule)
	assert.Nil(t, item.Performance)
	mockStore.AssertExpectations(t)
}

func TestCreate_InvalidInput(t *testing.T) {
	mockStore := new(MockVocabStore)
	svc := newTestService(mockStore)

	_, err := svc.Create(context.Background(), uuid.New(), "", "the apple", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Create(context.Background(), uuid.New(), "der Apfel", "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	mockStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_DuplicateTerm(t *testing.T) {
	mockStore := new(MockVocabStore)
	svc := newTestService(mockStore)

	mockStore.On("Create", mock.Anything, mock.Anything).Return(store.ErrVocabExists)

	_, err := svc.Create(context.Background(), uuid.New(), "der Apfel", "the apple", "")
	assert.ErrorIs(t, err, vocab.ErrDuplicateTerm)
}

func TestDelete_OwnershipChecked(t *testing.T) {
	mockStore := new(MockVocabStore)
	svc := newTestService(mockStore)

	owner := uuid.New()
	item, err := domain.NewVocabItem(owner, "die Katze", "the cat")
	require.NoError(t, err)

	mockStore.On("GetByID", mock.Anything, item.ID).Return(item, nil)

	err = svc.Delete(context.Background(), uuid.New(), item.ID)
	assert.ErrorIs(t, err, vocab.ErrVocabNotOwned)
	mockStore.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDelete_Success(t *testing.T) {
	mockStore := new(MockVocabStore)
	svc := newTestService(mockStore)

	owner := uuid.New()
	item, err := domain.NewVocabItem(owner, "die Katze", "the cat")
	require.NoError(t, err)

	mockStore.On("GetByID", mock.Anything, item.ID).Return(item, nil)
	mockStore.On("Delete", mock.Anything, item.ID).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), owner, item.ID))
	mockStore.AssertExpectations(t)
}

func TestDelete_NotFound(t *testing.T) {
	mockStore := new(MockVocabStore)
	svc := newTestService(mockStore)

	vocabID := uuid.New()
	mockStore.On("GetByID", mock.Anything, vocabID).Return(nil, store.ErrVocabNotFound)

	err := svc.Delete(context.Background(), uuid.New(), vocabID)
	assert.ErrorIs(t, err, vocab.ErrVocabNotFound)
}

func TestList_PropagatesStoreError(t *testing.T) {
	mockStore := new(MockVocabStore)
	svc := newTestService(mockStore)

	userID := uuid.New()
	storeErr := errors.New("connection reset")
	mockStore.On("ListByUser", mock.Anything, userID).Return(nil, storeErr)

	_, err := svc.List(context.Background(), userID)
	assert.ErrorIs(t, err, storeErr)
}
