package store

import (
	"context"

	"github.com/avalder/pathwise/ent"
	"github.com/avalder/pathwise/ent/reviewevent"
	"github.com/avalder/pathwise/internal/srs"
)

// EventRepo appends audit events backed by ent and the global sequence
// counter. It satisfies srs.EventSink.
type EventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *EventRepo) AppendReview(ctx context.Context, ev srs.ReviewEvent) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return storeErr(err, "next sequence")
	}

	_, err = r.client.ReviewEvent.Create().
		SetSequence(seqNum).
		SetUserID(ev.UserID).
		SetConceptID(ev.ConceptID).
		SetRating(ev.Rating).
		SetLevelAfter(ev.LevelAfter).
		SetStreakAfter(ev.StreakAfter).
		SetIntervalHours(ev.IntervalHours).
		SetScoreDerived(ev.ScoreDerived).
		Save(ctx)
	if err != nil {
		return storeErr(err, "save review event")
	}
	return nil
}

// RecentReviews returns the last n review events for a concept, newest
// first.
func (r *EventRepo) RecentReviews(ctx context.Context, userID, conceptID string, n int) ([]srs.ReviewEvent, error) {
	rows, err := r.client.ReviewEvent.Query().
		Where(
			reviewevent.UserID(userID),
			reviewevent.ConceptID(conceptID),
		).
		Order(ent.Desc(reviewevent.FieldSequence)).
		Limit(n).
		All(ctx)
	if err != nil {
		return nil, storeErr(err, "query review events")
	}

	out := make([]srs.ReviewEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, srs.ReviewEvent{
			UserID:        row.UserID,
			ConceptID:     row.ConceptID,
			Rating:        row.Rating,
			LevelAfter:    row.LevelAfter,
			StreakAfter:   row.StreakAfter,
			IntervalHours: row.IntervalHours,
			ScoreDerived:  row.ScoreDerived,
		})
	}
	return out, nil
}
