package mastery

import (
	"context"
	"testing"
	"time"

	"github.com/avalder/pathwise/internal/errs"
)

// memRepo is an in-memory Repo for tests.
type memRepo struct {
	records map[string]*Record
	creates int
}

func newMemRepo() *memRepo {
	return &memRepo{records: make(map[string]*Record)}
}

func key(userID, conceptID string) string { return userID + "/" + conceptID }

func (m *memRepo) Get(_ context.Context, userID, conceptID string) (*Record, error) {
	rec, ok := m.records[key(userID, conceptID)]
	if !ok {
		return nil, errs.NotFound("mastery record %s/%s", userID, conceptID)
	}
	cp := *rec
	return &cp, nil
}

func (m *memRepo) Create(_ context.Context, rec *Record) error {
	k := key(rec.UserID, rec.ConceptID)
	if _, ok := m.records[k]; ok {
		return errs.AlreadyExists("mastery record %s", k)
	}
	m.creates++
	cp := *rec
	m.records[k] = &cp
	return nil
}

func TestInitialize_CreatesFreshRecord(t *testing.T) {
	repo := newMemRepo()
	ledger := NewLedger(repo)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	rec, err := ledger.Initialize(context.Background(), "u1", "algebra", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Level != 0 {
		t.Errorf("got level %d, want 0", rec.Level)
	}
	if rec.RetentionStreak != 0 {
		t.Errorf("got streak %d, want 0", rec.RetentionStreak)
	}
	if !rec.LastReviewedAt.Equal(now) {
		t.Errorf("got lastReviewedAt %v, want %v", rec.LastReviewedAt, now)
	}
	wantNext := now.Add(InitialInterval)
	if rec.NextReviewAt == nil || !rec.NextReviewAt.Equal(wantNext) {
		t.Errorf("got nextReviewAt %v, want %v", rec.NextReviewAt, wantNext)
	}
}

func TestInitialize_ExistingRecordIsNotReset(t *testing.T) {
	repo := newMemRepo()
	ledger := NewLedger(repo)
	now := time.Now().UTC()

	first, err := ledger.Initialize(context.Background(), "u1", "algebra", now)
	if err != nil {
		t.Fatal(err)
	}
	repo.records[key("u1", "algebra")].Level = 45

	again, err := ledger.Initialize(context.Background(), "u1", "algebra", now.Add(time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if again.Level != 45 {
		t.Errorf("got level %d after re-init, want 45 (no reset)", again.Level)
	}
	if repo.creates != 1 {
		t.Errorf("got %d creates, want 1", repo.creates)
	}
	_ = first
}

func TestLevel_MissingRecordIsZero(t *testing.T) {
	ledger := NewLedger(newMemRepo())
	level, err := ledger.Level(context.Background(), "u1", "unseen")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if level != 0 {
		t.Errorf("got level %d, want 0", level)
	}
}

func TestLevels_DeduplicatesLookups(t *testing.T) {
	repo := newMemRepo()
	ledger := NewLedger(repo)
	now := time.Now().UTC()
	if _, err := ledger.Initialize(context.Background(), "u1", "algebra", now); err != nil {
		t.Fatal(err)
	}
	repo.records[key("u1", "algebra")].Level = 80

	levels, err := ledger.Levels(context.Background(), "u1", []string{"algebra", "algebra", "unseen"})
	if err != nil {
		t.Fatal(err)
	}
	if levels["algebra"] != 80 || levels["unseen"] != 0 {
		t.Errorf("got %v, want algebra=80 unseen=0", levels)
	}
}

func TestClampLevel(t *testing.T) {
	tests := []struct{ in, want int }{
		{-10, 0}, {0, 0}, {55, 55}, {100, 100}, {130, 100},
	}
	for _, tt := range tests {
		if got := ClampLevel(tt.in); got != tt.want {
			t.Errorf("ClampLevel(%d): got %d, want %d", tt.in, got, tt.want)
		}
	}
}
