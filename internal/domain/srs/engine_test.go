package srs

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/wordtrail/wordtrail-api/internal/domain"
)

func TestScheduleRejectsOutOfRangeQuality(t *testing.T) {
	t.Parallel()

	reviewedAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, quality := range []int{-100, -1, 6, 10, 100} {
		state, err := Schedule(quality, reviewedAt, nil, nil)
		if !errors.Is(err, ErrInvalidQuality) {
			t.Errorf("quality %d: expected ErrInvalidQuality, got %v", quality, err)
		}
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("quality %d: error should wrap domain.ErrInvalidInput", quality)
		}
		if state != nil {
			t.Errorf("quality %d: expected nil state on error, got %+v", quality, state)
		}
	}

	for quality := MinQuality; quality <= MaxQuality; quality++ {
		state, err := Schedule(quality, reviewedAt, nil, nil)
		if err != nil {
			t.Errorf("quality %d: unexpected error %v", quality, err)
		}
		if state == nil {
			t.Errorf("quality %d: expected a schedule state", quality)
		}
	}
}

func TestScheduleFirstReview(t *testing.T) {
	t.Parallel()

	reviewedAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	state, err := Schedule(4, reviewedAt, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if state.Streak != 1 {
		t.Errorf("expected streak 1, got %d", state.Streak)
	}
	if state.IntervalHours != 24 {
		t.Errorf("expected interval 24h, got %v", state.IntervalHours)
	}
	wantDue := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	if !state.DueAt.Equal(wantDue) {
		t.Errorf("expected due at %v, got %v", wantDue, state.DueAt)
	}
	if math.Abs(state.EaseFactor-2.5) > 1e-9 {
		t.Errorf("expected ease factor 2.5 (quality 4 is neutral), got %v", state.EaseFactor)
	}
	if !state.WasSuccessful() {
		t.Error("expected a successful review")
	}
	if state.Algorithm != AlgorithmSM2 {
		t.Errorf("expected algorithm %q, got %q", AlgorithmSM2, state.Algorithm)
	}
	if !state.LastReviewedAt.Equal(reviewedAt) {
		t.Errorf("expected last reviewed at %v, got %v", reviewedAt, state.LastReviewedAt)
	}
}

func TestScheduleGraduationThenRelapse(t *testing.T) {
	t.Parallel()

	first := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	state, err := Schedule(4, first, nil, nil)
	if err != nil {
		t.Fatalf("step 1: unexpected error: %v", err)
	}

	second := first.AddDate(0, 0, 2)
	state, err = Schedule(5, second, state, nil)
	if err != nil {
		t.Fatalf("step 2: unexpected error: %v", err)
	}
	if state.Streak != 2 {
		t.Errorf("step 2: expected streak 2, got %d", state.Streak)
	}
	if state.IntervalHours != 144 {
		t.Errorf("step 2: expected graduation interval 144h, got %v", state.IntervalHours)
	}
	easeAfterSuccess := state.EaseFactor

	third := second.AddDate(0, 0, 17)
	state, err = Schedule(2, third, state, nil)
	if err != nil {
		t.Fatalf("step 3: unexpected error: %v", err)
	}
	if state.WasSuccessful() {
		t.Error("step 3: expected a failed review")
	}
	if state.Streak != 0 {
		t.Errorf("step 3: expected streak reset to 0, got %d", state.Streak)
	}
	if state.IntervalHours != 24 {
		t.Errorf("step 3: expected interval relapse to 24h, got %v", state.IntervalHours)
	}
	if state.EaseFactor >= easeAfterSuccess {
		t.Errorf("step 3: expected ease factor below %v, got %v",
			easeAfterSuccess, state.EaseFactor)
	}
}

func TestScheduleEaseAdjustments(t *testing.T) {
	t.Parallel()

	reviewedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	prev := &domain.ScheduleState{
		Algorithm:      AlgorithmSM2,
		Streak:         2,
		IntervalHours:  144,
		EaseFactor:     2.0,
		DueAt:          reviewedAt,
		LastReviewedAt: reviewedAt.AddDate(0, 0, -6),
	}

	testCases := []struct {
		name     string
		quality  int
		expected float64
	}{
		{name: "perfect recall raises ease", quality: 5, expected: 2.1},
		{name: "neutral grade leaves ease unchanged", quality: 4, expected: 2.0},
		{name: "hesitant success lowers ease", quality: 3, expected: 1.86},
		{name: "near miss lowers ease further", quality: 2, expected: 1.68},
		{name: "familiar failure", quality: 1, expected: 1.46},
		{name: "blackout clamps at the floor", quality: 0, expected: 1.3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			state, err := Schedule(tc.quality, reviewedAt, prev, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(state.EaseFactor-tc.expected) > 1e-9 {
				t.Errorf("quality %d: expected ease %v, got %v",
					tc.quality, tc.expected, state.EaseFactor)
			}
		})
	}
}

func TestScheduleEaseFloor(t *testing.T) {
	t.Parallel()

	reviewedAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	// Repeated total failures must never push ease below the floor.
	var state *domain.ScheduleState
	var err error
	for i := 0; i < 20; i++ {
		state, err = Schedule(0, reviewedAt, state, nil)
		if err != nil {
			t.Fatalf("review %d: unexpected error: %v", i, err)
		}
		if state.EaseFactor < DefaultMinEaseFactor {
			t.Fatalf("review %d: ease factor %v fell below floor %v",
				i, state.EaseFactor, DefaultMinEaseFactor)
		}
		reviewedAt = reviewedAt.AddDate(0, 0, 1)
	}
	if state.EaseFactor != DefaultMinEaseFactor {
		t.Errorf("expected ease pinned at floor %v, got %v",
			DefaultMinEaseFactor, state.EaseFactor)
	}
}

func TestScheduleIntervalFloor(t *testing.T) {
	t.Parallel()

	reviewedAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	// Mixed review sequences must keep the interval at or above the minimum.
	qualities := []int{4, 0, 3, 5, 1, 3, 3, 3, 2, 5, 5, 0, 4}
	var state *domain.ScheduleState
	var err error
	for i, q := range qualities {
		state, err = Schedule(q, reviewedAt, state, nil)
		if err != nil {
			t.Fatalf("review %d: unexpected error: %v", i, err)
		}
		if state.IntervalHours < DefaultMinIntervalHours {
			t.Fatalf("review %d (quality %d): interval %v below minimum %v",
				i, q, state.IntervalHours, DefaultMinIntervalHours)
		}
		reviewedAt = reviewedAt.Add(time.Duration(state.IntervalHours * float64(time.Hour)))
	}
}

func TestScheduleStreakMonotonicity(t *testing.T) {
	t.Parallel()

	reviewedAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	prev := &domain.ScheduleState{
		Algorithm:      AlgorithmSM2,
		Streak:         7,
		IntervalHours:  700,
		EaseFactor:     2.2,
		DueAt:          reviewedAt,
		LastReviewedAt: reviewedAt.AddDate(0, 0, -29),
	}

	for quality := MinQuality; quality <= MaxQuality; quality++ {
		state, err := Schedule(quality, reviewedAt, prev, nil)
		if err != nil {
			t.Fatalf("quality %d: unexpected error: %v", quality, err)
		}
		if quality >= SuccessThreshold {
			if state.Streak != prev.Streak+1 {
				t.Errorf("quality %d: expected streak %d, got %d",
					quality, prev.Streak+1, state.Streak)
			}
		} else if state.Streak != 0 {
			t.Errorf("quality %d: expected streak 0, got %d", quality, state.Streak)
		}
	}
}

func TestScheduleIntervalGrowthUsesNewEase(t *testing.T) {
	t.Parallel()

	reviewedAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	prev := &domain.ScheduleState{
		Algorithm:      AlgorithmSM2,
		Streak:         2,
		IntervalHours:  144,
		EaseFactor:     2.5,
		DueAt:          reviewedAt,
		LastReviewedAt: reviewedAt.AddDate(0, 0, -6),
	}

	state, err := Schedule(5, reviewedAt, prev, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// New ease is 2.6; interval grows by it: round(144 * 2.6) = 374.
	if state.EaseFactor != 2.6 {
		t.Errorf("expected ease 2.6, got %v", state.EaseFactor)
	}
	if state.IntervalHours != 374 {
		t.Errorf("expected interval 374h, got %v", state.IntervalHours)
	}
	wantDue := reviewedAt.Add(374 * time.Hour)
	if !state.DueAt.Equal(wantDue) {
		t.Errorf("expected due at %v, got %v", wantDue, state.DueAt)
	}
}

func TestScheduleDoesNotMutatePrevious(t *testing.T) {
	t.Parallel()

	reviewedAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	prev := &domain.ScheduleState{
		Algorithm:      AlgorithmSM2,
		Streak:         3,
		IntervalHours:  400,
		EaseFactor:     2.1,
		DueAt:          reviewedAt,
		LastReviewedAt: reviewedAt.AddDate(0, 0, -16),
	}
	snapshot := *prev

	if _, err := Schedule(0, reviewedAt, prev, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if *prev != snapshot {
		t.Errorf("previous state was mutated: before %+v, after %+v", snapshot, *prev)
	}
}

func TestScheduleMinIntervalClamping(t *testing.T) {
	t.Parallel()

	reviewedAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	// A caller cannot request reviews closer together than the built-in floor.
	params := &Params{MinIntervalHours: 1}
	state, err := Schedule(4, reviewedAt, nil, params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.IntervalHours != DefaultMinIntervalHours {
		t.Errorf("expected clamped interval %v, got %v",
			DefaultMinIntervalHours, state.IntervalHours)
	}

	// Longer minimums are honored, including in the graduation step.
	params = &Params{MinIntervalHours: 48}
	state, err = Schedule(4, reviewedAt, nil, params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.IntervalHours != 48 {
		t.Errorf("expected interval 48h, got %v", state.IntervalHours)
	}

	state, err = Schedule(4, reviewedAt.Add(48*time.Hour), state, params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.IntervalHours != 288 {
		t.Errorf("expected graduation interval 288h, got %v", state.IntervalHours)
	}
}

func TestScheduleCarriesAlgorithmIdentifier(t *testing.T) {
	t.Parallel()

	reviewedAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	prev := &domain.ScheduleState{
		Algorithm:      "sm2-custom",
		Streak:         1,
		IntervalHours:  24,
		EaseFactor:     2.5,
		DueAt:          reviewedAt,
		LastReviewedAt: reviewedAt.AddDate(0, 0, -1),
	}

	state, err := Schedule(3, reviewedAt, prev, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Algorithm != "sm2-custom" {
		t.Errorf("expected carried algorithm identifier, got %q", state.Algorithm)
	}
}
