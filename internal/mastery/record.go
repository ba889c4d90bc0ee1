// Package mastery holds the per-(user, concept) mastery ledger: the
// record of how well a learner knows each concept and when it must be
// reviewed next.
package mastery

import "time"

// Level bounds. A record's Level always stays inside them.
const (
	MinLevel = 0
	MaxLevel = 100
)

// InitialInterval is how far out the first review is scheduled when a
// record is created before any outcome has been applied.
const InitialInterval = 24 * time.Hour

// HistoryEntry is one review outcome in a record's append-only history.
type HistoryEntry struct {
	At     time.Time `json:"at"`
	Rating string    `json:"rating"`
}

// Record is the mastery ledger entry for one (user, concept) pair.
// Mutated only through the review scheduler; never deleted.
type Record struct {
	UserID          string         `json:"user_id"`
	ConceptID       string         `json:"concept_id"`
	Level           int            `json:"level"` // 0-100
	LastReviewedAt  time.Time      `json:"last_reviewed_at"`
	NextReviewAt    *time.Time     `json:"next_review_at,omitempty"` // nil = never scheduled
	RetentionStreak int            `json:"retention_streak"`
	History         []HistoryEntry `json:"history"`

	// Version is the optimistic-concurrency token managed by the store.
	Version int64 `json:"-"`
}

// NewRecord creates a fresh record: level 0, streak 0, first review due
// InitialInterval from now.
func NewRecord(userID, conceptID string, now time.Time) *Record {
	next := now.Add(InitialInterval)
	return &Record{
		UserID:         userID,
		ConceptID:      conceptID,
		Level:          MinLevel,
		LastReviewedAt: now,
		NextReviewAt:   &next,
	}
}

// ClampLevel bounds a level to [MinLevel, MaxLevel].
func ClampLevel(level int) int {
	if level < MinLevel {
		return MinLevel
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}

// IsDue returns true when the record's next review time has passed.
// A record with no scheduled review is never due.
func (r *Record) IsDue(now time.Time) bool {
	return r.NextReviewAt != nil && !now.Before(*r.NextReviewAt)
}

// LastRating returns the most recent review rating, or "" if the record
// has no history.
func (r *Record) LastRating() string {
	if len(r.History) == 0 {
		return ""
	}
	return r.History[len(r.History)-1].Rating
}
