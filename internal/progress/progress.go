// Package progress rolls per-subject quiz scores and completed content
// into display-ready summaries, and tracks the learner's study streak.
package progress

import (
	"math"
	"time"
)

// SubjectProgress is the per-(user, subject) progress ledger. It is
// independent of the mastery ledger; the aggregator reads both but the
// engine never merges them automatically.
type SubjectProgress struct {
	UserID              string             `json:"user_id"`
	SubjectID           string             `json:"subject_id"`
	ProgressPercentage  float64            `json:"progress_percentage"`
	LastActivityAt      time.Time          `json:"last_activity_at"`
	CompletedContentIDs []string           `json:"completed_content_ids"`
	QuizScores          map[string]float64 `json:"quiz_scores"` // attempt ID -> score
	StudyStreakDays     int                `json:"study_streak_days"`
	StudyMinutes        int                `json:"study_minutes"`

	// Version is the optimistic-concurrency token managed by the store.
	Version int64 `json:"-"`
}

// NewSubjectProgress creates an empty progress record.
func NewSubjectProgress(userID, subjectID string) *SubjectProgress {
	return &SubjectProgress{
		UserID:     userID,
		SubjectID:  subjectID,
		QuizScores: make(map[string]float64),
	}
}

// HasContent reports whether contentID is already in the completed set.
func (sp *SubjectProgress) HasContent(contentID string) bool {
	for _, id := range sp.CompletedContentIDs {
		if id == contentID {
			return true
		}
	}
	return false
}

// AddContent adds contentID to the completed set if absent. The set
// only ever grows.
func (sp *SubjectProgress) AddContent(contentID string) {
	if !sp.HasContent(contentID) {
		sp.CompletedContentIDs = append(sp.CompletedContentIDs, contentID)
	}
}

// Recompute refreshes ProgressPercentage from the quiz scores: the mean
// score rounded to two decimals, 0 when no scores exist.
func (sp *SubjectProgress) Recompute() {
	if len(sp.QuizScores) == 0 {
		sp.ProgressPercentage = 0
		return
	}
	sum := 0.0
	for _, s := range sp.QuizScores {
		sum += s
	}
	mean := sum / float64(len(sp.QuizScores))
	sp.ProgressPercentage = math.Round(mean*100) / 100
}

// QuizAttempt is one immutable quiz submission. Attempts accumulate as
// an append-only history per quiz.
type QuizAttempt struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	SubjectID   string    `json:"subject_id"`
	QuizID      string    `json:"quiz_id"`
	Answers     []int     `json:"answers"`
	Score       float64   `json:"score"` // 0-100
	CompletedAt time.Time `json:"completed_at"`
}
