package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/wordtrail/wordtrail-api/internal/api/shared"
	"github.com/wordtrail/wordtrail-api/internal/domain"
	"github.com/wordtrail/wordtrail-api/internal/platform/logger"
	"github.com/wordtrail/wordtrail-api/internal/service/practice"
)

// PracticeHandler handles practice-flow HTTP requests: attempts, queue,
// mastery, progress, and sessions.
type PracticeHandler struct {
	practiceService practice.PracticeService
	logger          *slog.Logger

	// now is injected for tests; production wiring uses time.Now.
	now func() time.Time
}

// NewPracticeHandler creates a new PracticeHandler.
func NewPracticeHandler(
	practiceService practice.PracticeService,
	log *slog.Logger,
	now func() time.Time,
) *PracticeHandler {
	if practiceService == nil {
		panic("practiceService cannot be nil for PracticeHandler")
	}
	if log == nil {
		panic("logger cannot be nil for PracticeHandler")
	}
	if now == nil {
		now = time.Now
	}

	return &PracticeHandler{
		practiceService: practiceService,
		logger:          log.With(slog.String("component", "practice_handler")),
		now:             now,
	}
}

// RecordAttempt handles POST /vocab/{id}/attempts requests.
// It folds one drill result into the item's schedule and performance state.
func (h *PracticeHandler) RecordAttempt(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, vocabID, ok := requireUserAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	var req RecordAttemptRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("failed to decode request body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		log.Warn("invalid attempt request", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"Activity type must be recognition or production; score must be within [0,1]")
		return
	}

	outcome := domain.ActivityOutcome{
		ActivityType: domain.ActivityType(req.ActivityType),
		WasCorrect:   req.WasCorrect,
		Score:        req.Score,
		AttemptedAt:  h.now().UTC(),
	}

	item, err := h.practiceService.RecordAttempt(r.Context(), userID, vocabID, outcome)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("attempt recorded",
		slog.String("vocab_id", vocabID.String()),
		slog.String("user_id", userID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, vocabItemToResponse(item))
}

// GetQueue handles GET /practice/queue requests. An optional "limit" query
// parameter truncates the queue.
func (h *PracticeHandler) GetQueue(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	result, err := h.practiceService.BuildQueue(r.Context(), userID, h.now().UTC(), limit)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), "Failed to build practice queue", err)
		return
	}

	queue := make([]VocabItemResponse, 0, len(result.Queue))
	for _, item := range result.Queue {
		queue = append(queue, vocabItemToResponse(item))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, QueueResponse{
		Queue:         queue,
		DueCount:      result.DueCount,
		UpcomingCount: result.UpcomingCount,
		NewCount:      result.NewCount,
	})
}

// GetMastery handles GET /vocab/{id}/mastery requests.
func (h *PracticeHandler) GetMastery(w http.ResponseWriter, r *http.Request) {
	userID, vocabID, ok := requireUserAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	snapshot, err := h.practiceService.GetMastery(r.Context(), userID, vocabID, h.now().UTC())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MasteryResponse{
		Level:        snapshot.Level,
		Mastered:     snapshot.Mastered,
		Due:          snapshot.Due,
		DaysUntilDue: snapshot.DaysUntilDue,
	})
}

// GetProgress handles GET /progress requests.
func (h *PracticeHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	stats, err := h.practiceService.GetProgress(r.Context(), userID, h.now().UTC())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), "Failed to compute progress", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ProgressResponse{
		TotalVocabCount:   stats.TotalVocabCount,
		LearnedVocabCount: stats.LearnedVocabCount,
		ReviewDueCount:    stats.ReviewDueCount,
		StreakDays:        stats.StreakDays,
		LastSessionAt:     stats.LastSessionAt,
	})
}

// RecordSession handles POST /sessions requests.
func (h *PracticeHandler) RecordSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req RecordSessionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("failed to decode request body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		log.Warn("invalid session request", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"Session times are required; counts and score must be non-negative")
		return
	}

	session, err := h.practiceService.RecordSession(
		r.Context(), userID,
		req.StartedAt, req.EndedAt,
		req.CorrectCount, req.IncorrectCount,
		req.Score,
	)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("session recorded",
		slog.String("session_id", session.ID.String()),
		slog.String("user_id", userID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, sessionToResponse(session))
}
