// Package progress computes cohort-level learning statistics from a
// learner's vocabulary collection and drill-session history. Aggregation is
// a pure function of its inputs and is cheap enough to recompute on every
// dashboard load.
package progress

import (
	"time"

	"github.com/wordtrail/wordtrail-api/internal/domain"
)

// DefaultLearnedStreakThreshold is the schedule streak at which an item
// counts as "learned" for dashboard totals. This is deliberately a coarser
// notion than review.IsMastered: it looks at the engine's streak counter
// only, independent of accuracy, so the dashboard total does not swing with
// every drill attempt.
const DefaultLearnedStreakThreshold = 3

// Aggregate computes ProgressStats over the given items and sessions as of
// now. learnedStreakThreshold values of zero or below select the default.
//
// The activity streak counts consecutive calendar days (UTC) with at least
// one session ending on that day, walking backward from now's own date. A
// day with no session ends the walk immediately, so a learner who practiced
// yesterday but not yet today has a streak of zero.
func Aggregate(
	items []*domain.VocabItem,
	sessions []*domain.DrillSession,
	now time.Time,
	learnedStreakThreshold int,
) *domain.ProgressStats {
	if learnedStreakThreshold <= 0 {
		learnedStreakThreshold = DefaultLearnedStreakThreshold
	}

	stats := &domain.ProgressStats{}

	for _, item := range items {
		if item == nil {
			continue
		}
		stats.TotalVocabCount++
		if item.Schedule == nil {
			continue
		}
		if item.Schedule.Streak >= learnedStreakThreshold {
			stats.LearnedVocabCount++
		}
		if !item.Schedule.DueAt.After(now) {
			stats.ReviewDueCount++
		}
	}

	stats.LastSessionAt = lastSessionAt(sessions)
	stats.StreakDays = streakDays(sessions, now)

	return stats
}

func lastSessionAt(sessions []*domain.DrillSession) *time.Time {
	var last *time.Time
	for _, session := range sessions {
		if session == nil {
			continue
		}
		if last == nil || session.EndedAt.After(*last) {
			ended := session.EndedAt
			last = &ended
		}
	}
	return last
}

// streakDays walks backward day by day from now's calendar date, counting
// days on which at least one session ended. The walk stops at the first gap,
// so a miss today yields zero even with sessions on the preceding days.
func streakDays(sessions []*domain.DrillSession, now time.Time) int {
	if len(sessions) == 0 {
		return 0
	}

	active := make(map[string]struct{}, len(sessions))
	for _, session := range sessions {
		if session == nil {
			continue
		}
		active[dayKey(session.EndedAt)] = struct{}{}
	}

	streak := 0
	day := now.UTC()
	for {
		if _, ok := active[dayKey(day)]; !ok {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}

	return streak
}

func dayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
