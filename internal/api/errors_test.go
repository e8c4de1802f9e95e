package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wordtrail/wordtrail-api/internal/domain"
	"github.com/wordtrail/wordtrail-api/internal/service/practice"
	"github.com/wordtrail/wordtrail-api/internal/service/vocab"
	"github.com/wordtrail/wordtrail-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"practice not owned", practice.ErrVocabNotOwned, http.StatusForbidden},
		{"vocab not owned", vocab.ErrVocabNotOwned, http.StatusForbidden},
		{"store not found", store.ErrVocabNotFound, http.StatusNotFound},
		{"practice not found", practice.ErrVocabNotFound, http.StatusNotFound},
		{"session not found", store.ErrSessionNotFound, http.StatusNotFound},
		{"duplicate term", vocab.ErrDuplicateTerm, http.StatusConflict},
		{"store duplicate", store.ErrVocabExists, http.StatusConflict},
		{"invalid outcome", practice.ErrInvalidOutcome, http.StatusBadRequest},
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest},
		{"invalid id", domain.ErrInvalidID, http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped not found", fmt.Errorf("outer: %w", practice.ErrVocabNotFound), http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
	assert.Equal(t, "Vocab item not found", GetSafeErrorMessage(practice.ErrVocabNotFound))
	assert.Equal(t, "Term already exists", GetSafeErrorMessage(vocab.ErrDuplicateTerm))
	assert.Equal(t, "Invalid activity outcome", GetSafeErrorMessage(practice.ErrInvalidOutcome))

	// Internal details never leak through the safe message.
	leaky := errors.New("pq: connection to postgres://user:secret@db failed")
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(leaky))
}
