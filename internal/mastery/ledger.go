package mastery

import (
	"context"
	"time"

	"github.com/avalder/pathwise/internal/errs"
)

// Repo is the persistence surface the ledger needs. Implemented by
// store.MasteryRepo.
type Repo interface {
	// Get returns the record for (userID, conceptID), or a CodeNotFound
	// error if none exists.
	Get(ctx context.Context, userID, conceptID string) (*Record, error)

	// Create inserts a new record. Returns CodeAlreadyExists if a record
	// for the pair already exists. On success rec.Version holds the
	// stored version token.
	Create(ctx context.Context, rec *Record) error
}

// Ledger provides read and get-or-create access to mastery records.
type Ledger struct {
	repo Repo
}

// NewLedger creates a Ledger backed by repo.
func NewLedger(repo Repo) *Ledger {
	return &Ledger{repo: repo}
}

// Get returns the record for (userID, conceptID). A missing record is a
// CodeNotFound error; callers that treat absence as "never reviewed"
// should use Initialize instead.
func (l *Ledger) Get(ctx context.Context, userID, conceptID string) (*Record, error) {
	return l.repo.Get(ctx, userID, conceptID)
}

// Level returns the mastery level for (userID, conceptID), treating a
// missing record as level 0.
func (l *Ledger) Level(ctx context.Context, userID, conceptID string) (int, error) {
	rec, err := l.repo.Get(ctx, userID, conceptID)
	if err != nil {
		if errs.Is(err, errs.CodeNotFound) {
			return MinLevel, nil
		}
		return 0, err
	}
	return rec.Level, nil
}

// Initialize returns the record for (userID, conceptID), creating a
// fresh one if absent. Re-initializing an existing record is a plain
// get: no reset, no error. Two racing creates converge on the winner's
// record.
func (l *Ledger) Initialize(ctx context.Context, userID, conceptID string, now time.Time) (*Record, error) {
	rec, err := l.repo.Get(ctx, userID, conceptID)
	if err == nil {
		return rec, nil
	}
	if !errs.Is(err, errs.CodeNotFound) {
		return nil, err
	}

	fresh := NewRecord(userID, conceptID, now)
	if err := l.repo.Create(ctx, fresh); err != nil {
		if errs.Is(err, errs.CodeAlreadyExists) {
			return l.repo.Get(ctx, userID, conceptID)
		}
		return nil, err
	}
	return fresh, nil
}

// Levels resolves mastery levels for a set of concepts, treating
// missing records as level 0. Used to feed the difficulty adjuster.
func (l *Ledger) Levels(ctx context.Context, userID string, conceptIDs []string) (map[string]int, error) {
	levels := make(map[string]int, len(conceptIDs))
	for _, id := range conceptIDs {
		if _, ok := levels[id]; ok {
			continue
		}
		level, err := l.Level(ctx, userID, id)
		if err != nil {
			return nil, err
		}
		levels[id] = level
	}
	return levels, nil
}
