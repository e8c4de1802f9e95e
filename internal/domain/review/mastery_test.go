package review

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordtrail/wordtrail-api/internal/domain"
	"github.com/wordtrail/wordtrail-api/internal/domain/srs"
)

func itemWithPerformance(t *testing.T, recognition, production domain.SkillBucket) *domain.VocabItem {
	t.Helper()
	item, err := domain.NewVocabItem(uuid.New(), "el puente", "the bridge")
	require.NoError(t, err)
	item.Performance = &domain.PerformanceCounters{
		Recognition: recognition,
		Production:  production,
	}
	return item
}

func TestMasteryLevelDecisionTable(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		recognition domain.SkillBucket
		production  domain.SkillBucket
		want        *float64
	}{
		{
			name: "no attempts at all",
			want: nil,
		},
		{
			name:        "recognition only",
			recognition: domain.SkillBucket{CorrectCount: 3, IncorrectCount: 1},
			want:        scoreOf(0.75),
		},
		{
			name:       "production only",
			production: domain.SkillBucket{CorrectCount: 1, IncorrectCount: 3},
			want:       scoreOf(0.25),
		},
		{
			name:        "both buckets blend 0.4/0.6",
			recognition: domain.SkillBucket{CorrectCount: 8, IncorrectCount: 2},
			production:  domain.SkillBucket{CorrectCount: 7, IncorrectCount: 3},
			want:        scoreOf(0.74), // 0.8*0.4 + 0.7*0.6
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			item := itemWithPerformance(t, tc.recognition, tc.production)

			got := MasteryLevel(item)
			if tc.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tc.want, *got, 1e-9)
		})
	}
}

func TestMasteryLevelNilPerformance(t *testing.T) {
	t.Parallel()

	item, err := domain.NewVocabItem(uuid.New(), "a", "b")
	require.NoError(t, err)

	assert.Nil(t, MasteryLevel(item))
	assert.Nil(t, MasteryLevel(nil))
}

func TestIsMasteredRequiresAccuracyAndStreak(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	schedule := func(streak int) *domain.ScheduleState {
		return &domain.ScheduleState{
			Algorithm:      srs.AlgorithmSM2,
			Streak:         streak,
			IntervalHours:  24,
			EaseFactor:     2.5,
			DueAt:          now.Add(24 * time.Hour),
			LastReviewedAt: now,
		}
	}

	accurate := domain.SkillBucket{CorrectCount: 9, IncorrectCount: 1}
	inaccurate := domain.SkillBucket{CorrectCount: 1, IncorrectCount: 1}

	// Accuracy and streak both above threshold.
	item := itemWithPerformance(t, accurate, accurate)
	item.Schedule = schedule(3)
	assert.True(t, IsMastered(item))

	// Accurate but not durable: one lucky answer is not mastery.
	item = itemWithPerformance(t, accurate, accurate)
	item.Schedule = schedule(1)
	assert.False(t, IsMastered(item))

	// Durable but inaccurate.
	item = itemWithPerformance(t, inaccurate, inaccurate)
	item.Schedule = schedule(5)
	assert.False(t, IsMastered(item))

	// Accurate but never scheduled.
	item = itemWithPerformance(t, accurate, accurate)
	assert.False(t, IsMastered(item))
}

func TestDaysUntilDue(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	item, err := domain.NewVocabItem(uuid.New(), "a", "b")
	require.NoError(t, err)
	assert.Nil(t, DaysUntilDue(item, now))

	item.Schedule = &domain.ScheduleState{
		Algorithm:      srs.AlgorithmSM2,
		Streak:         1,
		IntervalHours:  24,
		EaseFactor:     2.5,
		DueAt:          now.Add(36 * time.Hour),
		LastReviewedAt: now,
	}
	days := DaysUntilDue(item, now)
	require.NotNil(t, days)
	assert.InDelta(t, 1.5, *days, 1e-9)

	// Overdue items yield a negative value.
	item.Schedule.DueAt = now.Add(-12 * time.Hour)
	days = DaysUntilDue(item, now)
	require.NotNil(t, days)
	assert.True(t, math.Signbit(*days))
	assert.InDelta(t, -0.5, *days, 1e-9)
}

func TestIsDue(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	item, err := domain.NewVocabItem(uuid.New(), "a", "b")
	require.NoError(t, err)
	assert.False(t, IsDue(item, now), "items with no schedule are new, not due")

	item.Schedule = &domain.ScheduleState{
		Algorithm:      srs.AlgorithmSM2,
		Streak:         1,
		IntervalHours:  24,
		EaseFactor:     2.5,
		DueAt:          now,
		LastReviewedAt: now.Add(-24 * time.Hour),
	}
	assert.True(t, IsDue(item, now), "due exactly now counts as due")

	item.Schedule.DueAt = now.Add(time.Minute)
	assert.False(t, IsDue(item, now))
}
