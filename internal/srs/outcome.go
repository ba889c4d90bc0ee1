package srs

import (
	"slices"
	"time"

	"github.com/avalder/pathwise/internal/mastery"
)

// ApplyOutcome returns the record after one review outcome. Pure: the
// input record is not mutated.
//
// Level moves by the rating's delta, clamped to [0,100]. A hard rating
// resets the retention streak; easy and medium extend it. The next
// review interval is read from the rating's table at the streak going
// into this review.
func ApplyOutcome(rec *mastery.Record, rating Rating, now time.Time) *mastery.Record {
	updated := cloneRecord(rec)
	streakBefore := rec.RetentionStreak

	updated.Level = mastery.ClampLevel(rec.Level + masteryDelta(rating))
	if rating == RatingHard {
		updated.RetentionStreak = 0
	} else {
		updated.RetentionStreak = streakBefore + 1
	}

	next := now.Add(NextInterval(rating, streakBefore))
	updated.NextReviewAt = &next
	updated.LastReviewedAt = now
	updated.History = append(updated.History, mastery.HistoryEntry{At: now, Rating: rating.String()})

	return updated
}

// ApplyScoredOutcome returns the record after a score-derived outcome
// (review-node completion). The equivalent rating drives the level delta
// and streak rule so ledger invariants hold under either entry path, but
// the interval is the fixed score-band offset, not the rating table.
func ApplyScoredOutcome(rec *mastery.Record, score int, now time.Time) *mastery.Record {
	rating := RatingForScore(score)
	updated := cloneRecord(rec)

	updated.Level = mastery.ClampLevel(rec.Level + masteryDelta(rating))
	if rating == RatingHard {
		updated.RetentionStreak = 0
	} else {
		updated.RetentionStreak = rec.RetentionStreak + 1
	}

	next := now.Add(ScoredInterval(score))
	updated.NextReviewAt = &next
	updated.LastReviewedAt = now
	updated.History = append(updated.History, mastery.HistoryEntry{At: now, Rating: rating.String()})

	return updated
}

func cloneRecord(rec *mastery.Record) *mastery.Record {
	cp := *rec
	cp.History = slices.Clone(rec.History)
	if rec.NextReviewAt != nil {
		next := *rec.NextReviewAt
		cp.NextReviewAt = &next
	}
	return &cp
}
