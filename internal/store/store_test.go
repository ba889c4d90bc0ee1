package store

import (
	"context"
	"testing"
	"time"

	"github.com/avalder/pathwise/internal/errs"
	"github.com/avalder/pathwise/internal/mastery"
	"github.com/avalder/pathwise/internal/path"
	"github.com/avalder/pathwise/internal/progress"
	"github.com/avalder/pathwise/internal/srs"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMasteryRepo_CreateGetUpdate(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()
	ctx := context.Background()

	if _, err := repo.Get(ctx, "u1", "algebra"); !errs.Is(err, errs.CodeNotFound) {
		t.Fatalf("get missing: err = %v, want CodeNotFound", err)
	}

	rec := mastery.NewRecord("u1", "algebra", testNow)
	if err := repo.Create(ctx, rec); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Version != 1 {
		t.Errorf("version after create = %d, want 1", rec.Version)
	}
	if err := repo.Create(ctx, mastery.NewRecord("u1", "algebra", testNow)); !errs.Is(err, errs.CodeAlreadyExists) {
		t.Fatalf("duplicate create: err = %v, want CodeAlreadyExists", err)
	}

	got, err := repo.Get(ctx, "u1", "algebra")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Level != 0 || got.RetentionStreak != 0 {
		t.Errorf("fresh record = %+v", got)
	}
	if got.NextReviewAt == nil || !got.NextReviewAt.Equal(testNow.Add(mastery.InitialInterval)) {
		t.Errorf("next review = %v, want %v", got.NextReviewAt, testNow.Add(mastery.InitialInterval))
	}

	got.Level = 10
	got.RetentionStreak = 1
	got.History = append(got.History, mastery.HistoryEntry{At: testNow, Rating: "easy"})
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Version != 2 {
		t.Errorf("version after update = %d, want 2", got.Version)
	}

	again, err := repo.Get(ctx, "u1", "algebra")
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if again.Level != 10 || len(again.History) != 1 || again.History[0].Rating != "easy" {
		t.Errorf("updated record = %+v", again)
	}
}

func TestMasteryRepo_UpdateConflict(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()
	ctx := context.Background()

	rec := mastery.NewRecord("u1", "algebra", testNow)
	if err := repo.Create(ctx, rec); err != nil {
		t.Fatal(err)
	}

	// Two readers load version 1; the second writer must lose.
	a, _ := repo.Get(ctx, "u1", "algebra")
	b, _ := repo.Get(ctx, "u1", "algebra")

	a.Level = 10
	if err := repo.Update(ctx, a); err != nil {
		t.Fatalf("first update: %v", err)
	}
	b.Level = 5
	if err := repo.Update(ctx, b); !errs.Is(err, errs.CodeConflict) {
		t.Fatalf("stale update: err = %v, want CodeConflict", err)
	}

	got, _ := repo.Get(ctx, "u1", "algebra")
	if got.Level != 10 {
		t.Errorf("level = %d, want winner's 10", got.Level)
	}
}

func TestMasteryRepo_DueBeforePaging(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()
	ctx := context.Background()

	concepts := []string{"a", "b", "c", "d", "e"}
	for i, id := range concepts {
		rec := mastery.NewRecord("u1", id, testNow)
		due := testNow.Add(-time.Duration(len(concepts)-i) * time.Hour)
		rec.NextReviewAt = &due
		if err := repo.Create(ctx, rec); err != nil {
			t.Fatal(err)
		}
	}
	// One future record which must not appear.
	future := mastery.NewRecord("u1", "z", testNow)
	if err := repo.Create(ctx, future); err != nil {
		t.Fatal(err)
	}
	// Another user's record must not leak.
	other := mastery.NewRecord("u2", "a", testNow.Add(-48*time.Hour))
	past := testNow.Add(-time.Hour)
	other.NextReviewAt = &past
	if err := repo.Create(ctx, other); err != nil {
		t.Fatal(err)
	}

	var got []string
	var cursor *srs.DueCursor
	for {
		page, err := repo.DueBefore(ctx, "u1", testNow, srs.DueOpts{Limit: 2, After: cursor})
		if err != nil {
			t.Fatalf("due page: %v", err)
		}
		if len(page) == 0 {
			break
		}
		for _, d := range page {
			got = append(got, d.ConceptID)
		}
		last := page[len(page)-1]
		cursor = &srs.DueCursor{NextReviewAt: last.NextReviewAt, ConceptID: last.ConceptID}
	}

	want := []string{"a", "b", "c", "d", "e"}
	if len(got) != len(want) {
		t.Fatalf("due = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("due = %v, want %v", got, want)
		}
	}
}

func TestPathRepo_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.PathRepo()
	ctx := context.Background()

	score := 80
	p := &path.LearningPath{
		UserID:    "u1",
		SubjectID: "algebra",
		Nodes: []path.Node{
			{ContentID: "vid-1", Title: "Intro", Type: path.NodeCore, BaseDifficulty: 50, Completed: true, Score: &score},
			{ContentID: "vid-2", Title: "Equations", Type: path.NodeCore, RequiredConcepts: []string{"algebra"}, BaseDifficulty: 40},
		},
		CurrentNodeIndex: 1,
		CompletionRate:   0.5,
		AverageScore:     80,
		LastUpdated:      testNow,
	}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.Get(ctx, "u1", "algebra")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Nodes) != 2 {
		t.Fatalf("nodes = %d, want 2", len(got.Nodes))
	}
	n := got.Nodes[0]
	if n.ContentID != "vid-1" || !n.Completed || n.Score == nil || *n.Score != 80 {
		t.Errorf("node 0 = %+v", n)
	}
	if got.Nodes[1].RequiredConcepts[0] != "algebra" {
		t.Errorf("node 1 concepts = %v", got.Nodes[1].RequiredConcepts)
	}
	if got.CurrentNodeIndex != 1 || got.CompletionRate != 0.5 {
		t.Errorf("path = %+v", got)
	}

	got.CurrentNodeIndex = 2
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}

	stale := &path.LearningPath{UserID: "u1", SubjectID: "algebra", Version: 1, LastUpdated: testNow}
	if err := repo.Update(ctx, stale); !errs.Is(err, errs.CodeConflict) {
		t.Errorf("stale update err = %v, want CodeConflict", err)
	}
}

func TestProgressRepo_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	sp := progress.NewSubjectProgress("u1", "algebra")
	sp.QuizScores["att-1"] = 80
	sp.AddContent("quiz-1")
	sp.Recompute()
	sp.StudyStreakDays = 1
	sp.StudyMinutes = 25
	sp.LastActivityAt = testNow
	if err := repo.Create(ctx, sp); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.Get(ctx, "u1", "algebra")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ProgressPercentage != 80 || got.QuizScores["att-1"] != 80 {
		t.Errorf("progress = %+v", got)
	}
	if !got.HasContent("quiz-1") || got.StudyMinutes != 25 {
		t.Errorf("progress = %+v", got)
	}

	got.StudyMinutes = 40
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Version != 2 {
		t.Errorf("version = %d, want 2", got.Version)
	}
}

func TestAttemptRepo_AppendAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	for i, score := range []float64{70, 90} {
		err := repo.Append(ctx, &progress.QuizAttempt{
			ID:          string(rune('a' + i)),
			UserID:      "u1",
			SubjectID:   "algebra",
			QuizID:      "quiz-1",
			Answers:     []int{0, 1},
			Score:       score,
			CompletedAt: testNow.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.ListByQuiz(ctx, "u1", "quiz-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("attempts = %d, want 2", len(got))
	}
	if got[0].Score != 70 || got[1].Score != 90 {
		t.Errorf("order = %v then %v, want oldest first", got[0].Score, got[1].Score)
	}
}

func TestEventRepo_ReviewEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, rating := range []string{"hard", "easy"} {
		err := repo.AppendReview(ctx, srs.ReviewEvent{
			UserID:        "u1",
			ConceptID:     "algebra",
			Rating:        rating,
			LevelAfter:    i * 10,
			StreakAfter:   i,
			IntervalHours: 12,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.RecentReviews(ctx, "u1", "algebra", 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("events = %d, want 2", len(got))
	}
	if got[0].Rating != "easy" {
		t.Errorf("newest first: got %q", got[0].Rating)
	}
}
