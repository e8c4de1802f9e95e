// Package queue constructs bounded practice queues from a learner's
// vocabulary collection. Partitioning and ordering are deterministic
// functions of the items and the supplied clock value; the input slice is
// never mutated.
package queue

import (
	"sort"
	"time"

	"github.com/wordtrail/wordtrail-api/internal/domain"
)

// DefaultUpcomingWindowHours bounds the "due soon" bucket: items due within
// this many hours are pulled into the session after the overdue ones.
const DefaultUpcomingWindowHours = 12.0

// Options configures queue construction. Zero values select the defaults:
// no truncation (limit = number of items) and a 12 hour upcoming window.
type Options struct {
	// Limit truncates the final queue. Zero or negative means no truncation.
	Limit int

	// UpcomingWindowHours is the look-ahead window for the upcoming bucket.
	// Zero or negative selects DefaultUpcomingWindowHours.
	UpcomingWindowHours float64
}

// Result is a built practice queue. The counts reflect full bucket sizes
// before truncation, so a caller can show "12 due" even when only 10 items
// fit in the session.
type Result struct {
	Queue         []*domain.VocabItem `json:"queue"`
	DueCount      int                 `json:"due_count"`
	UpcomingCount int                 `json:"upcoming_count"`
	NewCount      int                 `json:"new_count"`
}

// Build partitions items into four disjoint buckets relative to now and
// concatenates them into a single ordered queue:
//
//	due      — scheduled and at or past the due date; most overdue first
//	upcoming — scheduled and due within the window; soonest first
//	new      — never reviewed; oldest creation first (FIFO for fresh content)
//	later    — scheduled beyond the window; soonest first
//
// Items lacking a schedule are routed to the new bucket rather than treated
// as errors, and an empty input produces an empty queue.
func Build(items []*domain.VocabItem, now time.Time, opts Options) Result {
	window := opts.UpcomingWindowHours
	if window <= 0 {
		window = DefaultUpcomingWindowHours
	}

	var due, upcoming, fresh, later []*domain.VocabItem
	for _, item := range items {
		if item == nil {
			continue
		}
		if item.Schedule == nil {
			fresh = append(fresh, item)
			continue
		}
		switch hours := item.Schedule.HoursUntilDue(now); {
		case hours <= 0:
			due = append(due, item)
		case hours <= window:
			upcoming = append(upcoming, item)
		default:
			later = append(later, item)
		}
	}

	sortByDueAt(due)
	sortByDueAt(upcoming)
	sortByDueAt(later)
	sort.SliceStable(fresh, func(i, j int) bool {
		return fresh[i].CreatedAt.Before(fresh[j].CreatedAt)
	})

	queue := make([]*domain.VocabItem, 0, len(due)+len(upcoming)+len(fresh)+len(later))
	queue = append(queue, due...)
	queue = append(queue, upcoming...)
	queue = append(queue, fresh...)
	queue = append(queue, later...)

	if opts.Limit > 0 && len(queue) > opts.Limit {
		queue = queue[:opts.Limit]
	}

	return Result{
		Queue:         queue,
		DueCount:      len(due),
		UpcomingCount: len(upcoming),
		NewCount:      len(fresh),
	}
}

func sortByDueAt(items []*domain.VocabItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Schedule.DueAt.Before(items[j].Schedule.DueAt)
	})
}
