package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// VocabItem-specific validation errors
var (
	// ErrVocabIDEmpty is returned when a vocab item ID is empty or nil.
	ErrVocabIDEmpty = errors.New("vocab item ID cannot be empty")

	// ErrVocabUserIDEmpty is returned when a vocab item's user ID is empty or nil.
	ErrVocabUserIDEmpty = errors.New("vocab item user ID cannot be empty")

	// ErrVocabTermEmpty is returned when a vocab item's term is empty.
	ErrVocabTermEmpty = errors.New("vocab item term cannot be empty")

	// ErrVocabTranslationEmpty is returned when a vocab item's translation is empty.
	ErrVocabTranslationEmpty = errors.New("vocab item translation cannot be empty")
)

// VocabItem represents a single vocabulary entry a learner is studying.
//
// Schedule and Performance are nil until the item's first review/attempt.
// Both are replaced wholesale (never merged) when the learner records an
// attempt; the scheduling core in the review subpackage returns the new
// values and the caller persists them back onto the item.
type VocabItem struct {
	ID          uuid.UUID            `json:"id"`
	UserID      uuid.UUID            `json:"user_id"`
	Term        string               `json:"term"`
	Translation string               `json:"translation"`
	Notes       string               `json:"notes,omitempty"`
	Schedule    *ScheduleState       `json:"schedule,omitempty"`
	Performance *PerformanceCounters `json:"performance,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// NewVocabItem creates a new VocabItem for the given user with the given
// term and translation. It generates a new UUID and sets the timestamps.
// The item starts with no schedule and no performance counters, which marks
// it as "new" for queue construction.
// Returns an error if validation fails.
func NewVocabItem(userID uuid.UUID, term, translation string) (*VocabItem, error) {
	now := time.Now().UTC()
	item := &VocabItem{
		ID:          uuid.New(),
		UserID:      userID,
		Term:        term,
		Translation: translation,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks if the VocabItem has valid data.
// Returns an error if any field fails validation.
func (v *VocabItem) Validate() error {
	if v.ID == uuid.Nil {
		return ErrVocabIDEmpty
	}

	if v.UserID == uuid.Nil {
		return ErrVocabUserIDEmpty
	}

	if strings.TrimSpace(v.Term) == "" {
		return ErrVocabTermEmpty
	}

	if strings.TrimSpace(v.Translation) == "" {
		return ErrVocabTranslationEmpty
	}

	if v.Schedule != nil {
		if err := v.Schedule.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// WithReviewState returns a copy of the item carrying the given schedule and
// performance counters, with an updated UpdatedAt timestamp. The original
// item is not modified.
func (v *VocabItem) WithReviewState(
	schedule *ScheduleState,
	performance *PerformanceCounters,
	now time.Time,
) *VocabItem {
	updated := *v
	updated.Schedule = schedule
	updated.Performance = performance
	updated.UpdatedAt = now
	return &updated
}
