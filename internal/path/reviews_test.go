package path

import (
	"context"
	"testing"
	"time"

	"github.com/avalder/pathwise/internal/content"
	"github.com/avalder/pathwise/internal/mastery"
	"github.com/avalder/pathwise/internal/srs"
)

func TestRecommendations_RankedByAdjustedDifficulty(t *testing.T) {
	mgr, _, _, mrepo := newTestManager(t)
	ctx := context.Background()

	// High mastery of algebra pulls vid-2 (base 40, requires algebra)
	// below vid-1 (base 50, no prereqs).
	rec := mastery.NewRecord("u1", "algebra", now)
	rec.Level = 100
	mrepo.records["u1/algebra"] = rec

	recs, err := mgr.Recommendations(ctx, "u1", "linear-algebra", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("got %d recommendations, want 3", len(recs))
	}
	if recs[0].Item.ContentID != "vid-2" {
		t.Errorf("got first %s (%.1f), want vid-2", recs[0].Item.ContentID, recs[0].AdjustedDifficulty)
	}
	if recs[0].AdjustedDifficulty != 10 {
		t.Errorf("got adjusted %v, want 40 - 100*0.3 = 10", recs[0].AdjustedDifficulty)
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].AdjustedDifficulty < recs[i-1].AdjustedDifficulty {
			t.Error("recommendations not ascending by adjusted difficulty")
		}
	}
}

func TestRecommendations_HoldsBackLockedContent(t *testing.T) {
	mgr, _, _, _ := newTestManager(t)

	recs, err := mgr.Recommendations(context.Background(), "u1", "linear-algebra", nil)
	if err != nil {
		t.Fatal(err)
	}
	// Nothing is known yet: algebra is unlocked (no prerequisites) so
	// vid-1 and vid-2 surface, but vid-3 requires vectors whose
	// prerequisite algebra is not known.
	want := []string{"vid-2", "vid-1"}
	if len(recs) != len(want) {
		t.Fatalf("got %d recommendations, want %d", len(recs), len(want))
	}
	for i, id := range want {
		if recs[i].Item.ContentID != id {
			t.Fatalf("position %d: got %s, want %s", i, recs[i].Item.ContentID, id)
		}
	}
}

func TestRecommendations_MasteryUnlocksDownstreamContent(t *testing.T) {
	mgr, _, _, mrepo := newTestManager(t)

	// Knowing algebra unlocks vectors, which makes vid-3 studyable.
	rec := mastery.NewRecord("u1", "algebra", now)
	rec.Level = UnlockMasteryLevel
	mrepo.records["u1/algebra"] = rec

	recs, err := mgr.Recommendations(context.Background(), "u1", "linear-algebra", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 3 {
		t.Fatalf("got %d recommendations, want 3 once vectors is unlocked", len(recs))
	}
}

func TestRecommendations_ExplicitPoolIsNotGated(t *testing.T) {
	mgr, _, _, _ := newTestManager(t)

	pool := []content.Item{
		{ContentID: "vid-3", RequiredConcepts: []string{"vectors"}},
	}
	recs, err := mgr.Recommendations(context.Background(), "u1", "linear-algebra", pool)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d recommendations, want 1 (caller-supplied pool ranks as given)", len(recs))
	}
}

func TestDueReviewNodes_SynthesizesEphemeralNodes(t *testing.T) {
	mgr, repo, sched, _ := newTestManager(t)
	ctx := context.Background()

	dueTime := now.Add(-2 * time.Hour)
	sched.due = []srs.DueConcept{{ConceptID: "algebra", NextReviewAt: dueTime, Level: 30}}

	nodes, err := mgr.DueReviewNodes(ctx, "u1", "linear-algebra", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Only vid-2 requires algebra.
	if len(nodes) != 1 {
		t.Fatalf("got %d review nodes, want 1", len(nodes))
	}
	n := nodes[0]
	if n.ContentID != "vid-2" || n.Type != NodeReview {
		t.Errorf("got node %+v, want review node for vid-2", n)
	}
	if n.NextReviewAt == nil || !n.NextReviewAt.Equal(dueTime) {
		t.Errorf("got nextReviewAt %v, want %v", n.NextReviewAt, dueTime)
	}

	// Synthesized nodes must not touch persisted state.
	if len(repo.paths) != 0 {
		t.Error("due-review nodes were persisted")
	}
}

func TestDueReviewNodes_LockedContentHeldBack(t *testing.T) {
	mgr, _, sched, _ := newTestManager(t)

	// vectors is due but its prerequisite algebra is not known, so the
	// covering item (vid-3) stays locked.
	sched.due = []srs.DueConcept{{ConceptID: "vectors", NextReviewAt: now.Add(-time.Hour), Level: 20}}

	nodes, err := mgr.DueReviewNodes(context.Background(), "u1", "linear-algebra", now)
	if err != nil {
		t.Fatal(err)
	}
	if len(nodes) != 0 {
		t.Fatalf("got %d nodes, want 0 while vectors is locked", len(nodes))
	}
}

func TestDueReviewNodes_NothingDue(t *testing.T) {
	mgr, _, _, _ := newTestManager(t)
	nodes, err := mgr.DueReviewNodes(context.Background(), "u1", "linear-algebra", now)
	if err != nil {
		t.Fatal(err)
	}
	if len(nodes) != 0 {
		t.Errorf("got %d nodes, want 0", len(nodes))
	}
}
