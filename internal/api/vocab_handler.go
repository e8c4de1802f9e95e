// Package api provides HTTP handlers for the API.
package api

import (
	"log/slog"
	"net/http"

	"github.com/wordtrail/wordtrail-api/internal/api/shared"
	"github.com/wordtrail/wordtrail-api/internal/platform/logger"
	"github.com/wordtrail/wordtrail-api/internal/service/vocab"
)

// VocabHandler handles vocab collection HTTP requests.
type VocabHandler struct {
	vocabService vocab.VocabService
	logger       *slog.Logger
}

// NewVocabHandler creates a new VocabHandler.
func NewVocabHandler(vocabService vocab.VocabService, log *slog.Logger) *VocabHandler {
	if vocabService == nil {
		panic("vocabService cannot be nil for VocabHandler")
	}
	if log == nil {
		panic("logger cannot be nil for VocabHandler")
	}

	return &VocabHandler{
		vocabService: vocabService,
		logger:       log.With(slog.String("component", "vocab_handler")),
	}
}

// CreateVocab handles POST /vocab requests.
func (h *VocabHandler) CreateVocab(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req CreateVocabRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("failed to decode request body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		log.Warn("invalid create vocab request", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Term and translation are required")
		return
	}

	item, err := h.vocabService.Create(r.Context(), userID, req.Term, req.Translation, req.Notes)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("vocab item created",
		slog.String("vocab_id", item.ID.String()),
		slog.String("user_id", userID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, vocabItemToResponse(item))
}

// ListVocab handles GET /vocab requests.
func (h *VocabHandler) ListVocab(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	items, err := h.vocabService.List(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), "Failed to list vocab items", err)
		return
	}

	responses := make([]VocabItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, vocabItemToResponse(item))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// DeleteVocab handles DELETE /vocab/{id} requests.
func (h *VocabHandler) DeleteVocab(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, vocabID, ok := requireUserAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.vocabService.Delete(r.Context(), userID, vocabID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("vocab item deleted",
		slog.String("vocab_id", vocabID.String()),
		slog.String("user_id", userID.String()))
	w.WriteHeader(http.StatusNoContent)
}
