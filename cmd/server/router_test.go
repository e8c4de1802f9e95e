package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordtrail/wordtrail-api/internal/api/middleware"
	"github.com/wordtrail/wordtrail-api/internal/config"
	"github.com/wordtrail/wordtrail-api/internal/domain"
	"github.com/wordtrail/wordtrail-api/internal/domain/queue"
	"github.com/wordtrail/wordtrail-api/internal/service/practice"
)

// stubPracticeService returns canned values for router-level tests.
type stubPracticeService struct {
	queueResult *queue.Result
	stats       *domain.ProgressStats
}

func (s *stubPracticeService) RecordAttempt(
	ctx context.Context,
	userID, vocabID uuid.UUID,
	outcome domain.ActivityOutcome,
) (*domain.VocabItem, error) {
	return nil, practice.ErrVocabNotFound
}

func (s *stubPracticeService) BuildQueue(
	ctx context.Context,
	userID uuid.UUID,
	now time.Time,
	limit int,
) (*queue.Result, error) {
	return s.queueResult, nil
}

func (s *stubPracticeService) GetProgress(
	ctx context.Context,
	userID uuid.UUID,
	now time.Time,
) (*domain.ProgressStats, error) {
	return s.stats, nil
}

func (s *stubPracticeService) GetMastery(
	ctx context.Context,
	userID, vocabID uuid.UUID,
	now time.Time,
) (*practice.MasterySnapshot, error) {
	return &practice.MasterySnapshot{Due: true}, nil
}

func (s *stubPracticeService) RecordSession(
	ctx context.Context,
	userID uuid.UUID,
	startedAt, endedAt time.Time,
	correctCount, incorrectCount int,
	score float64,
) (*domain.DrillSession, error) {
	return domain.NewDrillSession(userID, startedAt, endedAt, correctCount, incorrectCount, score)
}

// stubVocabService returns canned values for router-level tests.
type stubVocabService struct{}

func (s *stubVocabService) Create(
	ctx context.Context,
	userID uuid.UUID,
	term, translation, notes string,
) (*domain.VocabItem, error) {
	return domain.NewVocabItem(userID, term, translation)
}

func (s *stubVocabService) List(ctx context.Context, userID uuid.UUID) ([]*domain.VocabItem, error) {
	return []*domain.VocabItem{}, nil
}

func (s *stubVocabService) Delete(ctx context.Context, userID, vocabID uuid.UUID) error {
	return nil
}

func newTestApplication() *application {
	return &application{
		config: &config.Config{
			Server: config.ServerConfig{Port: 8080, LogLevel: "error"},
		},
		logger: slog.New(slog.NewJSONHandler(io.Discard, nil)),
		vocabService: &stubVocabService{},
		practiceService: &stubPracticeService{
			queueResult: &queue.Result{Queue: []*domain.VocabItem{}},
			stats:       &domain.ProgressStats{TotalVocabCount: 3},
		},
		now: time.Now,
	}
}

func TestRouterHealthEndpoint(t *testing.T) {
	app := newTestApplication()
	router := app.setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK", rr.Body.String())
}

func TestRouterRequiresUserID(t *testing.T) {
	app := newTestApplication()
	router := app.setupRouter()

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/vocab"},
		{http.MethodGet, "/api/practice/queue"},
		{http.MethodGet, "/api/progress"},
		{http.MethodPost, "/api/sessions"},
	}

	for _, p := range paths {
		req := httptest.NewRequest(p.method, p.path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code, "%s %s", p.method, p.path)
	}
}

func TestRouterRoutesWithIdentity(t *testing.T) {
	app := newTestApplication()
	router := app.setupRouter()
	userID := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/api/progress", nil)
	req.Header.Set(middleware.UserIDHeader, userID.String())
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp struct {
		TotalVocabCount int `json:"total_vocab_count"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.TotalVocabCount)
}
