package review

import (
	"time"

	"github.com/wordtrail/wordtrail-api/internal/domain"
)

// Mastery blend weights. Production (active recall) is weighted higher than
// recognition because generating a term is a stronger mastery signal than
// judging it.
const (
	recognitionWeight = 0.4
	productionWeight  = 0.6
)

// MasteryThreshold is the minimum blended accuracy for IsMastered.
const MasteryThreshold = 0.8

// MasteredStreak is the minimum consecutive-success streak for IsMastered.
const MasteredStreak = 3

// MasteryLevel computes the blended accuracy of an item across both skill
// axes, in [0,1]. It returns nil when neither bucket has any attempts.
//
// The blend policy is a four-case decision table on which buckets hold data:
//
//	neither     -> nil (no signal at all)
//	recognition -> recognition accuracy
//	production  -> production accuracy
//	both        -> 0.4*recognition + 0.6*production
func MasteryLevel(item *domain.VocabItem) *float64 {
	if item == nil || item.Performance == nil {
		return nil
	}

	rec := item.Performance.Recognition
	prod := item.Performance.Production
	hasRec := rec.Attempts() > 0
	hasProd := prod.Attempts() > 0

	var level float64
	switch {
	case !hasRec && !hasProd:
		return nil
	case hasRec && !hasProd:
		level = rec.Accuracy()
	case !hasRec && hasProd:
		level = prod.Accuracy()
	default:
		level = recognitionWeight*rec.Accuracy() + productionWeight*prod.Accuracy()
	}

	return &level
}

// IsMastered reports whether an item is considered mastered. Two independent
// thresholds must both hold: blended accuracy at or above MasteryThreshold,
// and a schedule streak of at least MasteredStreak sustained successful
// reviews. Requiring both means a single lucky correct answer cannot mark an
// item mastered.
func IsMastered(item *domain.VocabItem) bool {
	level := MasteryLevel(item)
	if level == nil || *level < MasteryThreshold {
		return false
	}

	return item.Schedule != nil && item.Schedule.Streak >= MasteredStreak
}

// DaysUntilDue returns the signed number of days until the item is due,
// negative when overdue. Returns nil for items with no schedule.
func DaysUntilDue(item *domain.VocabItem, now time.Time) *float64 {
	if item == nil || item.Schedule == nil {
		return nil
	}

	days := item.Schedule.HoursUntilDue(now) / 24
	return &days
}

// IsDue reports whether the item is due for review at the given time.
// Items with no schedule are never due; they are "new", not "overdue".
func IsDue(item *domain.VocabItem, now time.Time) bool {
	if item == nil || item.Schedule == nil {
		return false
	}

	return !item.Schedule.DueAt.After(now)
}
