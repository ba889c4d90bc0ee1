package srs

import (
	"context"
	"time"

	"github.com/avalder/pathwise/internal/errs"
	"github.com/avalder/pathwise/internal/mastery"
)

// DueConcept is one entry in a due-review listing.
type DueConcept struct {
	ConceptID    string    `json:"concept_id"`
	NextReviewAt time.Time `json:"next_review_at"`
	Level        int       `json:"level"`
}

// DueCursor is a restartable keyset position inside a due-review
// listing. Ties on NextReviewAt are broken by ConceptID ascending.
type DueCursor struct {
	NextReviewAt time.Time
	ConceptID    string
}

// DueOpts pages a due-review query.
type DueOpts struct {
	Limit int        // 0 = no limit
	After *DueCursor // resume after this position
}

// Repo is the persistence surface the scheduler needs. Implemented by
// store.MasteryRepo.
type Repo interface {
	mastery.Repo

	// Update writes rec guarded by its Version. Returns CodeConflict if
	// the stored version moved, with nothing written. On success
	// rec.Version holds the new version token.
	Update(ctx context.Context, rec *mastery.Record) error

	// DueBefore lists a user's concepts with NextReviewAt <= now,
	// ascending by NextReviewAt then ConceptID.
	DueBefore(ctx context.Context, userID string, now time.Time, opts DueOpts) ([]DueConcept, error)
}

// ReviewEvent is the append-only audit entry for one applied outcome.
type ReviewEvent struct {
	UserID        string
	ConceptID     string
	Rating        string
	LevelAfter    int
	StreakAfter   int
	IntervalHours int
	ScoreDerived  bool
}

// EventSink records review events. Appends are audit-only: failures do
// not fail the outcome that produced them.
type EventSink interface {
	AppendReview(ctx context.Context, ev ReviewEvent) error
}

// Scheduler applies review outcomes to the mastery ledger and answers
// due-review queries. Safe for concurrent use; per-record atomicity
// comes from the repo's versioned writes, and the scheduler never
// retries a conflicted write itself.
type Scheduler struct {
	ledger *mastery.Ledger
	repo   Repo
	events EventSink
}

// NewScheduler creates a Scheduler. events may be nil.
func NewScheduler(repo Repo, events EventSink) *Scheduler {
	return &Scheduler{
		ledger: mastery.NewLedger(repo),
		repo:   repo,
		events: events,
	}
}

// Ledger exposes the scheduler's mastery ledger for read-side callers.
func (s *Scheduler) Ledger() *mastery.Ledger { return s.ledger }

// RecordReviewOutcome applies a self-reported outcome for a concept.
// An unseen concept is silently initialized first. Returns the updated
// record, or CodeConflict if a concurrent outcome won the write.
func (s *Scheduler) RecordReviewOutcome(ctx context.Context, userID, conceptID string, rating Rating, now time.Time) (*mastery.Record, error) {
	if _, err := ParseRating(string(rating)); err != nil {
		return nil, err
	}

	rec, err := s.ledger.Initialize(ctx, userID, conceptID, now)
	if err != nil {
		return nil, err
	}

	updated := ApplyOutcome(rec, rating, now)
	if err := s.repo.Update(ctx, updated); err != nil {
		return nil, err
	}

	s.appendEvent(ctx, updated, rating, false)
	return updated, nil
}

// RecordScoredOutcome applies a score-derived outcome (review-node
// completion). Scores are bounded 0-100.
func (s *Scheduler) RecordScoredOutcome(ctx context.Context, userID, conceptID string, score int, now time.Time) (*mastery.Record, error) {
	if score < 0 || score > 100 {
		return nil, errs.Invalid("score %d outside 0-100", score)
	}

	rec, err := s.ledger.Initialize(ctx, userID, conceptID, now)
	if err != nil {
		return nil, err
	}

	updated := ApplyScoredOutcome(rec, score, now)
	if err := s.repo.Update(ctx, updated); err != nil {
		return nil, err
	}

	s.appendEvent(ctx, updated, RatingForScore(score), true)
	return updated, nil
}

// DueReviews lists concepts whose next review time has passed, most
// overdue first. The listing is restartable: pass the last entry's
// position as opts.After to resume.
func (s *Scheduler) DueReviews(ctx context.Context, userID string, now time.Time, opts DueOpts) ([]DueConcept, error) {
	return s.repo.DueBefore(ctx, userID, now, opts)
}

func (s *Scheduler) appendEvent(ctx context.Context, rec *mastery.Record, rating Rating, scored bool) {
	if s.events == nil {
		return
	}
	interval := 0
	if rec.NextReviewAt != nil {
		interval = int(rec.NextReviewAt.Sub(rec.LastReviewedAt).Hours())
	}
	_ = s.events.AppendReview(ctx, ReviewEvent{
		UserID:        rec.UserID,
		ConceptID:     rec.ConceptID,
		Rating:        rating.String(),
		LevelAfter:    rec.Level,
		StreakAfter:   rec.RetentionStreak,
		IntervalHours: interval,
		ScoreDerived:  scored,
	})
}
