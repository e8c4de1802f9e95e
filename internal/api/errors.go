package api

import (
	"errors"
	"net/http"

	"github.com/wordtrail/wordtrail-api/internal/domain"
	"github.com/wordtrail/wordtrail-api/internal/service/practice"
	"github.com/wordtrail/wordtrail-api/internal/service/vocab"
	"github.com/wordtrail/wordtrail-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authorization errors
	case errors.Is(err, practice.ErrVocabNotOwned),
		errors.Is(err, vocab.ErrVocabNotOwned):
		return http.StatusForbidden

	// Not found errors
	case errors.Is(err, store.ErrVocabNotFound),
		errors.Is(err, store.ErrSessionNotFound),
		errors.Is(err, practice.ErrVocabNotFound),
		errors.Is(err, vocab.ErrVocabNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrVocabExists),
		errors.Is(err, vocab.ErrDuplicateTerm):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, practice.ErrInvalidOutcome),
		errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, practice.ErrVocabNotOwned),
		errors.Is(err, vocab.ErrVocabNotOwned):
		return "You do not own this vocab item"

	case errors.Is(err, store.ErrVocabNotFound),
		errors.Is(err, practice.ErrVocabNotFound),
		errors.Is(err, vocab.ErrVocabNotFound):
		return "Vocab item not found"

	case errors.Is(err, store.ErrSessionNotFound):
		return "Drill session not found"

	case errors.Is(err, store.ErrVocabExists),
		errors.Is(err, vocab.ErrDuplicateTerm):
		return "Term already exists"

	case errors.Is(err, practice.ErrInvalidOutcome):
		return "Invalid activity outcome"

	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrValidation):
		return "Invalid request data"

	default:
		return "An unexpected error occurred"
	}
}
