package progress

import (
	"context"
	"testing"
	"time"

	"github.com/avalder/pathwise/internal/errs"
	"github.com/avalder/pathwise/internal/path"
	"github.com/avalder/pathwise/internal/srs"
)

var now = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

type memRepo struct {
	recs map[string]*SubjectProgress
}

func newMemRepo() *memRepo {
	return &memRepo{recs: make(map[string]*SubjectProgress)}
}

func key(userID, subjectID string) string { return userID + "/" + subjectID }

func clone(sp *SubjectProgress) *SubjectProgress {
	cp := *sp
	cp.CompletedContentIDs = append([]string(nil), sp.CompletedContentIDs...)
	cp.QuizScores = make(map[string]float64, len(sp.QuizScores))
	for k, v := range sp.QuizScores {
		cp.QuizScores[k] = v
	}
	return &cp
}

func (r *memRepo) Get(_ context.Context, userID, subjectID string) (*SubjectProgress, error) {
	sp, ok := r.recs[key(userID, subjectID)]
	if !ok {
		return nil, errs.NotFound("no progress for user %s subject %s", userID, subjectID)
	}
	return clone(sp), nil
}

func (r *memRepo) Create(_ context.Context, sp *SubjectProgress) error {
	k := key(sp.UserID, sp.SubjectID)
	if _, ok := r.recs[k]; ok {
		return errs.AlreadyExists("progress exists for %s", k)
	}
	sp.Version = 1
	r.recs[k] = clone(sp)
	return nil
}

func (r *memRepo) Update(_ context.Context, sp *SubjectProgress) error {
	k := key(sp.UserID, sp.SubjectID)
	cur, ok := r.recs[k]
	if !ok {
		return errs.NotFound("no progress for %s", k)
	}
	if cur.Version != sp.Version {
		return errs.Conflict("version mismatch for %s", k)
	}
	sp.Version = sp.Version + 1
	r.recs[k] = clone(sp)
	return nil
}

type memAttempts struct {
	attempts []QuizAttempt
	failNext bool
}

func (r *memAttempts) Append(_ context.Context, a *QuizAttempt) error {
	if r.failNext {
		r.failNext = false
		return errs.Unavailable(context.DeadlineExceeded, "attempt store down")
	}
	r.attempts = append(r.attempts, *a)
	return nil
}

func (r *memAttempts) ListByQuiz(_ context.Context, userID, quizID string) ([]QuizAttempt, error) {
	var out []QuizAttempt
	for _, a := range r.attempts {
		if a.UserID == userID && a.QuizID == quizID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakePaths struct {
	path *path.LearningPath
}

func (f *fakePaths) Get(context.Context, string, string) (*path.LearningPath, error) {
	if f.path == nil {
		return nil, errs.NotFound("no path")
	}
	return f.path, nil
}

type fakeDue struct {
	due []srs.DueConcept
}

func (f *fakeDue) DueReviews(context.Context, string, time.Time, srs.DueOpts) ([]srs.DueConcept, error) {
	return f.due, nil
}

func newTestAggregator() (*Aggregator, *memRepo, *memAttempts, *fakePaths, *fakeDue) {
	repo := newMemRepo()
	attempts := &memAttempts{}
	paths := &fakePaths{}
	due := &fakeDue{}
	return NewAggregator(repo, attempts, paths, due), repo, attempts, paths, due
}

func TestRecordQuizAttempt_FirstAttempt(t *testing.T) {
	agg, _, attempts, _, _ := newTestAggregator()

	sp, err := agg.RecordQuizAttempt(context.Background(), "u1", "algebra", "quiz-1", []int{0, 2, 1}, 80, now)
	if err != nil {
		t.Fatalf("RecordQuizAttempt: %v", err)
	}
	if sp.ProgressPercentage != 80 {
		t.Errorf("progress = %v, want 80", sp.ProgressPercentage)
	}
	if !sp.HasContent("quiz-1") {
		t.Error("quiz-1 not in completed set")
	}
	if sp.StudyStreakDays != 1 {
		t.Errorf("streak = %d, want 1", sp.StudyStreakDays)
	}
	if !sp.LastActivityAt.Equal(now) {
		t.Errorf("lastActivityAt = %v, want %v", sp.LastActivityAt, now)
	}
	if len(attempts.attempts) != 1 {
		t.Fatalf("attempts stored = %d, want 1", len(attempts.attempts))
	}
	if got := attempts.attempts[0]; got.QuizID != "quiz-1" || got.Score != 80 {
		t.Errorf("stored attempt = %+v", got)
	}
}

func TestRecordQuizAttempt_PercentageIsMeanOfAllAttempts(t *testing.T) {
	agg, _, _, _, _ := newTestAggregator()
	ctx := context.Background()

	if _, err := agg.RecordQuizAttempt(ctx, "u1", "algebra", "quiz-1", nil, 80, now); err != nil {
		t.Fatal(err)
	}
	if _, err := agg.RecordQuizAttempt(ctx, "u1", "algebra", "quiz-2", nil, 60, now); err != nil {
		t.Fatal(err)
	}
	sp, err := agg.RecordQuizAttempt(ctx, "u1", "algebra", "quiz-1", nil, 95, now)
	if err != nil {
		t.Fatal(err)
	}

	// (80 + 60 + 95) / 3 = 78.333... -> 78.33
	if sp.ProgressPercentage != 78.33 {
		t.Errorf("progress = %v, want 78.33", sp.ProgressPercentage)
	}
	if len(sp.QuizScores) != 3 {
		t.Errorf("quiz scores = %d, want 3 (retakes keep their own entry)", len(sp.QuizScores))
	}
	if len(sp.CompletedContentIDs) != 2 {
		t.Errorf("completed = %v, want 2 entries", sp.CompletedContentIDs)
	}
}

func TestRecordQuizAttempt_ScoreOutOfRange(t *testing.T) {
	agg, _, attempts, _, _ := newTestAggregator()

	_, err := agg.RecordQuizAttempt(context.Background(), "u1", "algebra", "quiz-1", nil, 101, now)
	if !errs.Is(err, errs.CodeInvalidArgument) {
		t.Fatalf("err = %v, want CodeInvalidArgument", err)
	}
	if len(attempts.attempts) != 0 {
		t.Error("invalid attempt was stored")
	}
}

func TestRecordQuizAttempt_AttemptStoreDownWritesNothing(t *testing.T) {
	agg, repo, attempts, _, _ := newTestAggregator()
	attempts.failNext = true

	_, err := agg.RecordQuizAttempt(context.Background(), "u1", "algebra", "quiz-1", nil, 80, now)
	if !errs.Is(err, errs.CodeUnavailable) {
		t.Fatalf("err = %v, want CodeUnavailable", err)
	}
	if len(repo.recs) != 0 {
		t.Error("progress record written despite attempt store failure")
	}
}

func TestStreak_Progression(t *testing.T) {
	agg, _, _, _, _ := newTestAggregator()
	ctx := context.Background()

	// Day 1, twice: streak stays 1.
	if _, err := agg.RecordQuizAttempt(ctx, "u1", "algebra", "q", nil, 80, now); err != nil {
		t.Fatal(err)
	}
	sp, err := agg.RecordQuizAttempt(ctx, "u1", "algebra", "q", nil, 80, now.Add(3*time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if sp.StudyStreakDays != 1 {
		t.Errorf("same-day streak = %d, want 1", sp.StudyStreakDays)
	}

	// Next day extends.
	sp, err = agg.RecordQuizAttempt(ctx, "u1", "algebra", "q", nil, 80, now.Add(24*time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if sp.StudyStreakDays != 2 {
		t.Errorf("next-day streak = %d, want 2", sp.StudyStreakDays)
	}

	// A two-day gap resets.
	sp, err = agg.RecordQuizAttempt(ctx, "u1", "algebra", "q", nil, 80, now.Add(4*24*time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if sp.StudyStreakDays != 1 {
		t.Errorf("post-gap streak = %d, want 1", sp.StudyStreakDays)
	}
}

func TestAddStudyTime(t *testing.T) {
	agg, _, _, _, _ := newTestAggregator()
	ctx := context.Background()

	sp, err := agg.AddStudyTime(ctx, "u1", "algebra", 25, now)
	if err != nil {
		t.Fatalf("AddStudyTime: %v", err)
	}
	if sp.StudyMinutes != 25 {
		t.Errorf("minutes = %d, want 25", sp.StudyMinutes)
	}
	if sp.ProgressPercentage != 0 {
		t.Errorf("progress = %v, want 0 without quiz scores", sp.ProgressPercentage)
	}

	sp, err = agg.AddStudyTime(ctx, "u1", "algebra", 15, now.Add(time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if sp.StudyMinutes != 40 {
		t.Errorf("minutes = %d, want 40", sp.StudyMinutes)
	}

	if _, err := agg.AddStudyTime(ctx, "u1", "algebra", 0, now); !errs.Is(err, errs.CodeInvalidArgument) {
		t.Errorf("zero minutes err = %v, want CodeInvalidArgument", err)
	}
}

func TestSummarize(t *testing.T) {
	agg, _, _, paths, due := newTestAggregator()
	ctx := context.Background()

	if _, err := agg.RecordQuizAttempt(ctx, "u1", "algebra", "quiz-1", nil, 90, now); err != nil {
		t.Fatal(err)
	}
	score := 85
	paths.path = &path.LearningPath{
		UserID:    "u1",
		SubjectID: "algebra",
		Nodes: []path.Node{
			{ContentID: "vid-1", EstimatedMinutes: 10, Completed: true, Score: &score},
			{ContentID: "vid-2", EstimatedMinutes: 12},
			{ContentID: "vid-3", EstimatedMinutes: 8},
		},
		CurrentNodeIndex: 1,
		CompletionRate:   0.5,
		AverageScore:     85,
	}
	due.due = []srs.DueConcept{{ConceptID: "algebra"}, {ConceptID: "vectors"}}

	sum, err := agg.Summarize(ctx, "u1", "algebra", now)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if sum.Progress.ProgressPercentage != 90 {
		t.Errorf("progress = %v, want 90", sum.Progress.ProgressPercentage)
	}
	if sum.PathState != path.StateActive {
		t.Errorf("state = %v, want active", sum.PathState)
	}
	if sum.CompletionRate != 0.5 || sum.AverageScore != 85 {
		t.Errorf("rate = %v avg = %v", sum.CompletionRate, sum.AverageScore)
	}
	if sum.DueReviewCount != 2 {
		t.Errorf("due = %d, want 2", sum.DueReviewCount)
	}
	if sum.CompletedNodes != 1 {
		t.Errorf("completed nodes = %d, want 1", sum.CompletedNodes)
	}
	if sum.MinutesRemaining != 20 {
		t.Errorf("minutes remaining = %d, want 20", sum.MinutesRemaining)
	}
	if sum.StreakMilestone {
		t.Error("one-day streak reported as a milestone")
	}
	if sum.NextMilestone != 3 {
		t.Errorf("next milestone = %d, want 3", sum.NextMilestone)
	}
}

func TestSummarize_StreakMilestoneSurfaces(t *testing.T) {
	agg, repo, _, _, _ := newTestAggregator()

	sp := NewSubjectProgress("u1", "algebra")
	sp.StudyStreakDays = 7
	sp.LastActivityAt = now
	if err := repo.Create(context.Background(), sp); err != nil {
		t.Fatal(err)
	}

	sum, err := agg.Summarize(context.Background(), "u1", "algebra", now)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if !sum.StreakMilestone {
		t.Error("seven-day streak not reported as a milestone")
	}
	if sum.NextMilestone != 14 {
		t.Errorf("next milestone = %d, want 14", sum.NextMilestone)
	}
}

func TestSummarize_NoActivity(t *testing.T) {
	agg, _, _, _, _ := newTestAggregator()

	sum, err := agg.Summarize(context.Background(), "u1", "algebra", now)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if sum.Progress.ProgressPercentage != 0 {
		t.Errorf("progress = %v, want 0", sum.Progress.ProgressPercentage)
	}
	if sum.PathState != path.StateBuilding {
		t.Errorf("state = %v, want building", sum.PathState)
	}
	if sum.DueReviewCount != 0 {
		t.Errorf("due = %d, want 0", sum.DueReviewCount)
	}
}

func TestAttemptsHistory(t *testing.T) {
	agg, _, _, _, _ := newTestAggregator()
	ctx := context.Background()

	if _, err := agg.RecordQuizAttempt(ctx, "u1", "algebra", "quiz-1", []int{1}, 70, now); err != nil {
		t.Fatal(err)
	}
	if _, err := agg.RecordQuizAttempt(ctx, "u1", "algebra", "quiz-1", []int{2}, 90, now.Add(time.Hour)); err != nil {
		t.Fatal(err)
	}
	if _, err := agg.RecordQuizAttempt(ctx, "u2", "algebra", "quiz-1", []int{0}, 50, now); err != nil {
		t.Fatal(err)
	}

	got, err := agg.Attempts(ctx, "u1", "quiz-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("attempts = %d, want 2", len(got))
	}
	if got[0].Score != 70 || got[1].Score != 90 {
		t.Errorf("scores = %v, %v; want 70, 90", got[0].Score, got[1].Score)
	}
}

func TestStreakMilestones(t *testing.T) {
	cases := []struct {
		days      int
		milestone bool
		next      int
	}{
		{0, false, 3},
		{3, true, 7},
		{7, true, 14},
		{20, false, 30},
		{100, true, 150},
		{150, true, 200},
		{151, false, 200},
	}
	for _, tc := range cases {
		if got := IsStreakMilestone(tc.days); got != tc.milestone {
			t.Errorf("IsStreakMilestone(%d) = %v, want %v", tc.days, got, tc.milestone)
		}
		if got := NextStreakMilestone(tc.days); got != tc.next {
			t.Errorf("NextStreakMilestone(%d) = %d, want %d", tc.days, got, tc.next)
		}
	}
}
