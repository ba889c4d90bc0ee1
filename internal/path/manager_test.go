package path

import (
	"context"
	"testing"
	"time"

	"github.com/avalder/pathwise/internal/concept"
	"github.com/avalder/pathwise/internal/content"
	"github.com/avalder/pathwise/internal/errs"
	"github.com/avalder/pathwise/internal/mastery"
	"github.com/avalder/pathwise/internal/srs"
)

// memPathRepo is an in-memory Repo with versioned writes.
type memPathRepo struct {
	paths map[string]*LearningPath
}

func newMemPathRepo() *memPathRepo {
	return &memPathRepo{paths: make(map[string]*LearningPath)}
}

func pkey(userID, subjectID string) string { return userID + "/" + subjectID }

func clonePath(p *LearningPath) *LearningPath {
	cp := *p
	cp.Nodes = make([]Node, len(p.Nodes))
	copy(cp.Nodes, p.Nodes)
	return &cp
}

func (m *memPathRepo) Get(_ context.Context, userID, subjectID string) (*LearningPath, error) {
	p, ok := m.paths[pkey(userID, subjectID)]
	if !ok {
		return nil, errs.NotFound("learning path %s/%s", userID, subjectID)
	}
	return clonePath(p), nil
}

func (m *memPathRepo) Create(_ context.Context, p *LearningPath) error {
	k := pkey(p.UserID, p.SubjectID)
	if _, ok := m.paths[k]; ok {
		return errs.AlreadyExists("learning path %s", k)
	}
	p.Version = 1
	m.paths[k] = clonePath(p)
	return nil
}

func (m *memPathRepo) Update(_ context.Context, p *LearningPath) error {
	k := pkey(p.UserID, p.SubjectID)
	cur, ok := m.paths[k]
	if !ok {
		return errs.NotFound("learning path %s", k)
	}
	if cur.Version != p.Version {
		return errs.Conflict("learning path %s version %d moved", k, p.Version)
	}
	p.Version = p.Version + 1
	m.paths[k] = clonePath(p)
	return nil
}

// fakeScheduler records forwarded outcomes.
type fakeScheduler struct {
	forwarded []forwardCall
	due       []srs.DueConcept
}

type forwardCall struct {
	userID    string
	conceptID string
	score     int
}

func (f *fakeScheduler) RecordScoredOutcome(_ context.Context, userID, conceptID string, score int, now time.Time) (*mastery.Record, error) {
	f.forwarded = append(f.forwarded, forwardCall{userID, conceptID, score})
	rec := mastery.NewRecord(userID, conceptID, now)
	next := now.Add(srs.ScoredInterval(score))
	rec.NextReviewAt = &next
	return rec, nil
}

func (f *fakeScheduler) DueReviews(_ context.Context, _ string, _ time.Time, _ srs.DueOpts) ([]srs.DueConcept, error) {
	return f.due, nil
}

// masteryMemRepo backs the ledger in these tests.
type masteryMemRepo struct {
	records map[string]*mastery.Record
}

func (m *masteryMemRepo) Get(_ context.Context, userID, conceptID string) (*mastery.Record, error) {
	rec, ok := m.records[userID+"/"+conceptID]
	if !ok {
		return nil, errs.NotFound("mastery record")
	}
	cp := *rec
	return &cp, nil
}

func (m *masteryMemRepo) Create(_ context.Context, rec *mastery.Record) error {
	m.records[rec.UserID+"/"+rec.ConceptID] = rec
	return nil
}

func newTestManager(t *testing.T) (*Manager, *memPathRepo, *fakeScheduler, *masteryMemRepo) {
	t.Helper()
	graph := concept.NewGraph([]concept.Concept{
		{ID: "algebra"}, {ID: "vectors", Prerequisites: []string{"algebra"}},
	})
	diff40 := 40
	source := content.NewStatic(map[string][]content.Item{
		"linear-algebra": {
			{ContentID: "vid-1", Title: "Intro", EstimatedMinutes: 10},
			{ContentID: "vid-2", Title: "Vectors", EstimatedMinutes: 12, BaseDifficulty: &diff40, RequiredConcepts: []string{"algebra"}},
			{ContentID: "vid-3", Title: "Spaces", EstimatedMinutes: 15, RequiredConcepts: []string{"vectors"}},
		},
	}, graph)

	repo := newMemPathRepo()
	sched := &fakeScheduler{}
	mrepo := &masteryMemRepo{records: make(map[string]*mastery.Record)}
	ledger := mastery.NewLedger(mrepo)
	return NewManager(repo, source, sched, ledger), repo, sched, mrepo
}

var now = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func TestGeneratePath_BuildsCoreNodes(t *testing.T) {
	mgr, _, _, _ := newTestManager(t)

	p, err := mgr.GeneratePath(context.Background(), "u1", "linear-algebra", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Nodes) != 3 {
		t.Fatalf("got %d nodes, want 3", len(p.Nodes))
	}
	if p.CurrentNodeIndex != 0 || p.CompletionRate != 0 || p.AverageScore != 0 {
		t.Errorf("fresh path not zeroed: %+v", p)
	}
	for _, n := range p.Nodes {
		if n.Type != NodeCore {
			t.Errorf("node %s: got type %q, want core", n.ContentID, n.Type)
		}
	}
	if p.Nodes[0].BaseDifficulty != DefaultBaseDifficulty {
		t.Errorf("got default difficulty %d, want %d", p.Nodes[0].BaseDifficulty, DefaultBaseDifficulty)
	}
	if p.Nodes[1].BaseDifficulty != 40 {
		t.Errorf("got difficulty %d, want author-supplied 40", p.Nodes[1].BaseDifficulty)
	}
	if p.State() != StateActive {
		t.Errorf("got state %q, want active", p.State())
	}
}

func TestGeneratePath_Idempotent(t *testing.T) {
	mgr, _, _, _ := newTestManager(t)
	ctx := context.Background()

	first, err := mgr.GeneratePath(ctx, "u1", "linear-algebra", now)
	if err != nil {
		t.Fatal(err)
	}
	score := 88
	if _, err := mgr.CompleteNode(ctx, "u1", "linear-algebra", 0, &score, now); err != nil {
		t.Fatal(err)
	}

	again, err := mgr.GeneratePath(ctx, "u1", "linear-algebra", now.Add(time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if !again.Nodes[0].Completed {
		t.Error("regenerate rebuilt the path instead of returning the existing one")
	}
	_ = first
}

func TestGeneratePath_UnknownSubject(t *testing.T) {
	mgr, _, _, _ := newTestManager(t)
	_, err := mgr.GeneratePath(context.Background(), "u1", "botany", now)
	if !errs.Is(err, errs.CodeNotFound) {
		t.Fatalf("got %v, want NOT_FOUND", err)
	}
}

// Spec scenario: complete node 1 then node 0; pointer never regresses.
func TestCompleteNode_MonotonicPointerAndAggregates(t *testing.T) {
	mgr, _, _, _ := newTestManager(t)
	ctx := context.Background()

	if _, err := mgr.GeneratePath(ctx, "u1", "linear-algebra", now); err != nil {
		t.Fatal(err)
	}

	s80, s100 := 80, 100
	p, err := mgr.CompleteNode(ctx, "u1", "linear-algebra", 1, &s80, now)
	if err != nil {
		t.Fatal(err)
	}
	if p.CurrentNodeIndex != 2 {
		t.Errorf("after node 1: got index %d, want 2", p.CurrentNodeIndex)
	}

	p, err = mgr.CompleteNode(ctx, "u1", "linear-algebra", 0, &s100, now.Add(time.Minute))
	if err != nil {
		t.Fatal(err)
	}
	if p.CurrentNodeIndex != 2 {
		t.Errorf("after out-of-order node 0: got index %d, want 2 (no regression)", p.CurrentNodeIndex)
	}
	if want := 2.0 / 3.0; p.CompletionRate != want {
		t.Errorf("got completion rate %v, want %v", p.CompletionRate, want)
	}
	if p.AverageScore != 90 {
		t.Errorf("got average score %v, want 90", p.AverageScore)
	}
}

func TestCompleteNode_IndexOutOfRange(t *testing.T) {
	mgr, _, _, _ := newTestManager(t)
	ctx := context.Background()
	if _, err := mgr.GeneratePath(ctx, "u1", "linear-algebra", now); err != nil {
		t.Fatal(err)
	}
	for _, idx := range []int{-1, 3, 99} {
		_, err := mgr.CompleteNode(ctx, "u1", "linear-algebra", idx, nil, now)
		if !errs.Is(err, errs.CodeInvalidArgument) {
			t.Errorf("index %d: got %v, want INVALID_ARGUMENT", idx, err)
		}
	}
}

func TestCompleteNode_PathNeverGenerated(t *testing.T) {
	mgr, _, _, _ := newTestManager(t)
	_, err := mgr.CompleteNode(context.Background(), "u1", "linear-algebra", 0, nil, now)
	if !errs.Is(err, errs.CodeNotFound) {
		t.Fatalf("got %v, want NOT_FOUND", err)
	}
}

func TestCompleteNode_ScoreValidation(t *testing.T) {
	mgr, _, _, _ := newTestManager(t)
	ctx := context.Background()
	if _, err := mgr.GeneratePath(ctx, "u1", "linear-algebra", now); err != nil {
		t.Fatal(err)
	}
	for _, bad := range []int{-5, 101} {
		s := bad
		_, err := mgr.CompleteNode(ctx, "u1", "linear-algebra", 0, &s, now)
		if !errs.Is(err, errs.CodeInvalidArgument) {
			t.Errorf("score %d: got %v, want INVALID_ARGUMENT", bad, err)
		}
	}
}

func TestCompleteNode_IdempotentByDefault(t *testing.T) {
	mgr, _, _, _ := newTestManager(t)
	ctx := context.Background()
	if _, err := mgr.GeneratePath(ctx, "u1", "linear-algebra", now); err != nil {
		t.Fatal(err)
	}
	s := 75
	if _, err := mgr.CompleteNode(ctx, "u1", "linear-algebra", 0, &s, now); err != nil {
		t.Fatal(err)
	}
	p, err := mgr.CompleteNode(ctx, "u1", "linear-algebra", 0, &s, now.Add(time.Minute))
	if err != nil {
		t.Fatalf("re-completion should be idempotent, got %v", err)
	}
	if want := 1.0 / 3.0; p.CompletionRate != want {
		t.Errorf("got completion rate %v, want %v", p.CompletionRate, want)
	}
}

func TestCompleteNode_StrictRejectsRecompletion(t *testing.T) {
	mgr, _, _, _ := newTestManager(t)
	mgr.Strict = true
	ctx := context.Background()
	if _, err := mgr.GeneratePath(ctx, "u1", "linear-algebra", now); err != nil {
		t.Fatal(err)
	}
	if _, err := mgr.CompleteNode(ctx, "u1", "linear-algebra", 0, nil, now); err != nil {
		t.Fatal(err)
	}
	_, err := mgr.CompleteNode(ctx, "u1", "linear-algebra", 0, nil, now)
	if !errs.Is(err, errs.CodeAlreadyExists) {
		t.Fatalf("got %v, want ALREADY_EXISTS", err)
	}
}

func TestCompleteNode_ReviewNodeForwardsOutcome(t *testing.T) {
	mgr, repo, sched, _ := newTestManager(t)
	ctx := context.Background()
	if _, err := mgr.GeneratePath(ctx, "u1", "linear-algebra", now); err != nil {
		t.Fatal(err)
	}
	// Flip node 1 (requires algebra) into a review node.
	repo.paths[pkey("u1", "linear-algebra")].Nodes[1].Type = NodeReview

	s := 95
	p, err := mgr.CompleteNode(ctx, "u1", "linear-algebra", 1, &s, now)
	if err != nil {
		t.Fatal(err)
	}
	if len(sched.forwarded) != 1 {
		t.Fatalf("got %d forwarded outcomes, want 1", len(sched.forwarded))
	}
	fw := sched.forwarded[0]
	if fw.conceptID != "algebra" || fw.score != 95 {
		t.Errorf("forwarded %+v, want algebra/95", fw)
	}
	want := now.Add(96 * time.Hour)
	if p.Nodes[1].NextReviewAt == nil || !p.Nodes[1].NextReviewAt.Equal(want) {
		t.Errorf("got node nextReviewAt %v, want %v", p.Nodes[1].NextReviewAt, want)
	}
}

func TestCompleteNode_ReviewNodeWithoutScoreDoesNotForward(t *testing.T) {
	mgr, repo, sched, _ := newTestManager(t)
	ctx := context.Background()
	if _, err := mgr.GeneratePath(ctx, "u1", "linear-algebra", now); err != nil {
		t.Fatal(err)
	}
	repo.paths[pkey("u1", "linear-algebra")].Nodes[1].Type = NodeReview

	if _, err := mgr.CompleteNode(ctx, "u1", "linear-algebra", 1, nil, now); err != nil {
		t.Fatal(err)
	}
	if len(sched.forwarded) != 0 {
		t.Errorf("got %d forwarded outcomes, want 0", len(sched.forwarded))
	}
}

func TestCompleteNode_AverageScoreZeroWithoutScores(t *testing.T) {
	mgr, _, _, _ := newTestManager(t)
	ctx := context.Background()
	if _, err := mgr.GeneratePath(ctx, "u1", "linear-algebra", now); err != nil {
		t.Fatal(err)
	}
	p, err := mgr.CompleteNode(ctx, "u1", "linear-algebra", 0, nil, now)
	if err != nil {
		t.Fatal(err)
	}
	if p.AverageScore != 0 {
		t.Errorf("got average score %v, want 0 with no scored nodes", p.AverageScore)
	}
}

func TestPathState_Complete(t *testing.T) {
	mgr, _, _, _ := newTestManager(t)
	ctx := context.Background()
	if _, err := mgr.GeneratePath(ctx, "u1", "linear-algebra", now); err != nil {
		t.Fatal(err)
	}
	var p *LearningPath
	var err error
	for i := 0; i < 3; i++ {
		p, err = mgr.CompleteNode(ctx, "u1", "linear-algebra", i, nil, now)
		if err != nil {
			t.Fatal(err)
		}
	}
	if p.State() != StateComplete {
		t.Errorf("got state %q, want complete", p.State())
	}
	if p.CompletionRate != 1 {
		t.Errorf("got completion rate %v, want 1", p.CompletionRate)
	}
}
