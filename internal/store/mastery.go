package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/avalder/pathwise/ent"
	"github.com/avalder/pathwise/ent/masteryrecord"
	"github.com/avalder/pathwise/internal/errs"
	"github.com/avalder/pathwise/internal/mastery"
	"github.com/avalder/pathwise/internal/srs"
)

// MasteryRepo implements mastery.Repo and srs.Repo over the
// mastery_records table. Updates are guarded by the record version so
// concurrent review outcomes never silently overwrite each other.
type MasteryRepo struct {
	client *ent.Client
}

func (r *MasteryRepo) Get(ctx context.Context, userID, conceptID string) (*mastery.Record, error) {
	row, err := r.client.MasteryRecord.Query().
		Where(
			masteryrecord.UserID(userID),
			masteryrecord.ConceptID(conceptID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, errs.NotFound("no mastery record for user %s concept %s", userID, conceptID)
		}
		return nil, storeErr(err, "query mastery record")
	}
	return recordFromRow(row)
}

func (r *MasteryRepo) Create(ctx context.Context, rec *mastery.Record) error {
	hist, err := historyToMaps(rec.History)
	if err != nil {
		return storeErr(err, "encode history")
	}

	builder := r.client.MasteryRecord.Create().
		SetUserID(rec.UserID).
		SetConceptID(rec.ConceptID).
		SetLevel(rec.Level).
		SetRetentionStreak(rec.RetentionStreak).
		SetHistory(hist).
		SetVersion(1)
	if !rec.LastReviewedAt.IsZero() {
		builder = builder.SetLastReviewedAt(rec.LastReviewedAt)
	}
	if rec.NextReviewAt != nil {
		builder = builder.SetNextReviewAt(*rec.NextReviewAt)
	}

	if _, err := builder.Save(ctx); err != nil {
		if isConstraint(err) {
			return errs.AlreadyExists("mastery record exists for user %s concept %s", rec.UserID, rec.ConceptID)
		}
		return storeErr(err, "create mastery record")
	}
	rec.Version = 1
	return nil
}

func (r *MasteryRepo) Update(ctx context.Context, rec *mastery.Record) error {
	hist, err := historyToMaps(rec.History)
	if err != nil {
		return storeErr(err, "encode history")
	}

	builder := r.client.MasteryRecord.Update().
		Where(
			masteryrecord.UserID(rec.UserID),
			masteryrecord.ConceptID(rec.ConceptID),
			masteryrecord.Version(rec.Version),
		).
		SetLevel(rec.Level).
		SetLastReviewedAt(rec.LastReviewedAt).
		SetRetentionStreak(rec.RetentionStreak).
		SetHistory(hist).
		SetVersion(rec.Version + 1)
	if rec.NextReviewAt != nil {
		builder = builder.SetNextReviewAt(*rec.NextReviewAt)
	} else {
		builder = builder.ClearNextReviewAt()
	}

	n, err := builder.Save(ctx)
	if err != nil {
		return storeErr(err, "update mastery record")
	}
	if n == 0 {
		return errs.Conflict("mastery record for user %s concept %s was modified concurrently", rec.UserID, rec.ConceptID)
	}
	rec.Version++
	return nil
}

func (r *MasteryRepo) DueBefore(ctx context.Context, userID string, now time.Time, opts srs.DueOpts) ([]srs.DueConcept, error) {
	q := r.client.MasteryRecord.Query().
		Where(
			masteryrecord.UserID(userID),
			masteryrecord.NextReviewAtNotNil(),
			masteryrecord.NextReviewAtLTE(now),
		)

	if a := opts.After; a != nil {
		q = q.Where(
			masteryrecord.Or(
				masteryrecord.NextReviewAtGT(a.NextReviewAt),
				masteryrecord.And(
					masteryrecord.NextReviewAt(a.NextReviewAt),
					masteryrecord.ConceptIDGT(a.ConceptID),
				),
			),
		)
	}

	q = q.Order(
		ent.Asc(masteryrecord.FieldNextReviewAt),
		ent.Asc(masteryrecord.FieldConceptID),
	)
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, storeErr(err, "query due reviews")
	}

	due := make([]srs.DueConcept, 0, len(rows))
	for _, row := range rows {
		due = append(due, srs.DueConcept{
			ConceptID:    row.ConceptID,
			NextReviewAt: *row.NextReviewAt,
			Level:        row.Level,
		})
	}
	return due, nil
}

func recordFromRow(row *ent.MasteryRecord) (*mastery.Record, error) {
	hist, err := historyFromMaps(row.History)
	if err != nil {
		return nil, storeErr(err, "decode history")
	}
	return &mastery.Record{
		UserID:          row.UserID,
		ConceptID:       row.ConceptID,
		Level:           row.Level,
		LastReviewedAt:  row.LastReviewedAt,
		NextReviewAt:    row.NextReviewAt,
		RetentionStreak: row.RetentionStreak,
		History:         hist,
		Version:         row.Version,
	}, nil
}

// History entries round-trip through JSON maps for the ent JSON column.
func historyToMaps(hist []mastery.HistoryEntry) ([]map[string]any, error) {
	if len(hist) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(hist)
	if err != nil {
		return nil, fmt.Errorf("marshal history: %w", err)
	}
	var out []map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("unmarshal history maps: %w", err)
	}
	return out, nil
}

func historyFromMaps(raw []map[string]any) ([]mastery.HistoryEntry, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("marshal history maps: %w", err)
	}
	var out []mastery.HistoryEntry
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("unmarshal history: %w", err)
	}
	return out, nil
}
