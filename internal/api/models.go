package api

import (
	"time"

	"github.com/wordtrail/wordtrail-api/internal/domain"
)

// Common request/response structures

// CreateVocabRequest defines the payload for adding a vocab item.
type CreateVocabRequest struct {
	Term        string `json:"term"        validate:"required,max=255"`
	Translation string `json:"translation" validate:"required,max=255"`
	Notes       string `json:"notes,omitempty" validate:"max=2000"`
}

// RecordAttemptRequest defines the payload for recording a drill attempt.
// Score is optional and meaningful for production drills only.
type RecordAttemptRequest struct {
	ActivityType string   `json:"activity_type" validate:"required,oneof=recognition production"`
	WasCorrect   bool     `json:"was_correct"`
	Score        *float64 `json:"score,omitempty" validate:"omitempty,gte=0,lte=1"`
}

// RecordSessionRequest defines the payload for recording a completed drill
// session.
type RecordSessionRequest struct {
	StartedAt      time.Time `json:"started_at"      validate:"required"`
	EndedAt        time.Time `json:"ended_at"        validate:"required"`
	CorrectCount   int       `json:"correct_count"   validate:"gte=0"`
	IncorrectCount int       `json:"incorrect_count" validate:"gte=0"`
	Score          float64   `json:"score"           validate:"gte=0,lte=1"`
}

// ScheduleResponse is the wire view of an item's review schedule.
type ScheduleResponse struct {
	Algorithm      string    `json:"algorithm"`
	Streak         int       `json:"streak"`
	IntervalHours  float64   `json:"interval_hours"`
	EaseFactor     float64   `json:"ease_factor"`
	DueAt          time.Time `json:"due_at"`
	LastReviewedAt time.Time `json:"last_reviewed_at"`
}

// SkillBucketResponse is the wire view of one skill axis's counters.
type SkillBucketResponse struct {
	CorrectCount   int        `json:"correct_count"`
	IncorrectCount int        `json:"incorrect_count"`
	LastAttemptAt  *time.Time `json:"last_attempt_at,omitempty"`
}

// PerformanceResponse is the wire view of an item's performance counters.
type PerformanceResponse struct {
	Recognition SkillBucketResponse `json:"recognition"`
	Production  SkillBucketResponse `json:"production"`
}

// VocabItemResponse represents the response data for a vocab item.
type VocabItemResponse struct {
	ID          string               `json:"id"`
	UserID      string               `json:"user_id"`
	Term        string               `json:"term"`
	Translation string               `json:"translation"`
	Notes       string               `json:"notes,omitempty"`
	Schedule    *ScheduleResponse    `json:"schedule,omitempty"`
	Performance *PerformanceResponse `json:"performance,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// QueueResponse represents the response data for a practice queue.
type QueueResponse struct {
	Queue         []VocabItemResponse `json:"queue"`
	DueCount      int                 `json:"due_count"`
	UpcomingCount int                 `json:"upcoming_count"`
	NewCount      int                 `json:"new_count"`
}

// MasteryResponse represents the response data for an item's mastery view.
type MasteryResponse struct {
	Level        *float64 `json:"level"`
	Mastered     bool     `json:"mastered"`
	Due          bool     `json:"due"`
	DaysUntilDue *float64 `json:"days_until_due"`
}

// ProgressResponse represents the response data for the progress dashboard.
type ProgressResponse struct {
	TotalVocabCount   int        `json:"total_vocab_count"`
	LearnedVocabCount int        `json:"learned_vocab_count"`
	ReviewDueCount    int        `json:"review_due_count"`
	StreakDays        int        `json:"streak_days"`
	LastSessionAt     *time.Time `json:"last_session_at,omitempty"`
}

// SessionResponse represents the response data for a drill session.
type SessionResponse struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	StartedAt      time.Time `json:"started_at"`
	EndedAt        time.Time `json:"ended_at"`
	CorrectCount   int       `json:"correct_count"`
	IncorrectCount int       `json:"incorrect_count"`
	Score          float64   `json:"score"`
	CreatedAt      time.Time `json:"created_at"`
}

// vocabItemToResponse transforms a domain vocab item into its wire view.
func vocabItemToResponse(item *domain.VocabItem) VocabItemResponse {
	resp := VocabItemResponse{
		ID:          item.ID.String(),
		UserID:      item.UserID.String(),
		Term:        item.Term,
		Translation: item.Translation,
		Notes:       item.Notes,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}

	if item.Schedule != nil {
		resp.Schedule = &ScheduleResponse{
			Algorithm:      item.Schedule.Algorithm,
			Streak:         item.Schedule.Streak,
			IntervalHours:  item.Schedule.IntervalHours,
			EaseFactor:     item.Schedule.EaseFactor,
			DueAt:          item.Schedule.DueAt,
			LastReviewedAt: item.Schedule.LastReviewedAt,
		}
	}

	if item.Performance != nil {
		resp.Performance = &PerformanceResponse{
			Recognition: skillBucketToResponse(item.Performance.Recognition),
			Production:  skillBucketToResponse(item.Performance.Production),
		}
	}

	return resp
}

func skillBucketToResponse(bucket domain.SkillBucket) SkillBucketResponse {
	return SkillBucketResponse{
		CorrectCount:   bucket.CorrectCount,
		IncorrectCount: bucket.IncorrectCount,
		LastAttemptAt:  bucket.LastAttemptAt,
	}
}

func sessionToResponse(session *domain.DrillSession) SessionResponse {
	return SessionResponse{
		ID:             session.ID.String(),
		UserID:         session.UserID.String(),
		StartedAt:      session.StartedAt,
		EndedAt:        session.EndedAt,
		CorrectCount:   session.CorrectCount,
		IncorrectCount: session.IncorrectCount,
		Score:          session.Score,
		CreatedAt:      session.CreatedAt,
	}
}
