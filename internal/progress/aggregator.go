package progress

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/avalder/pathwise/internal/errs"
	"github.com/avalder/pathwise/internal/path"
	"github.com/avalder/pathwise/internal/srs"
)

// Repo persists subject progress records.
type Repo interface {
	// Get returns the record for (userID, subjectID), or CodeNotFound.
	Get(ctx context.Context, userID, subjectID string) (*SubjectProgress, error)

	// Create inserts a new record. Returns CodeAlreadyExists if one
	// exists for the pair. On success sp.Version holds the stored token.
	Create(ctx context.Context, sp *SubjectProgress) error

	// Update writes sp if the stored version still matches sp.Version,
	// else returns CodeConflict. On success sp.Version holds the new token.
	Update(ctx context.Context, sp *SubjectProgress) error
}

// AttemptRepo is the append-only quiz attempt history.
type AttemptRepo interface {
	Append(ctx context.Context, a *QuizAttempt) error
	ListByQuiz(ctx context.Context, userID, quizID string) ([]QuizAttempt, error)
}

// PathReader is the slice of the path store the aggregator reads.
// Satisfied by *path.Manager.
type PathReader interface {
	Get(ctx context.Context, userID, subjectID string) (*path.LearningPath, error)
}

// DueLister counts pending reviews. Satisfied by *srs.Scheduler.
type DueLister interface {
	DueReviews(ctx context.Context, userID string, now time.Time, opts srs.DueOpts) ([]srs.DueConcept, error)
}

// Aggregator owns the subject progress ledger and composes it with the
// path and review state for display.
type Aggregator struct {
	repo     Repo
	attempts AttemptRepo
	paths    PathReader
	due      DueLister
}

func NewAggregator(repo Repo, attempts AttemptRepo, paths PathReader, due DueLister) *Aggregator {
	return &Aggregator{repo: repo, attempts: attempts, paths: paths, due: due}
}

// Get returns the progress record, or an empty one if the learner has
// no activity yet in the subject.
func (a *Aggregator) Get(ctx context.Context, userID, subjectID string) (*SubjectProgress, error) {
	sp, err := a.repo.Get(ctx, userID, subjectID)
	if errs.Is(err, errs.CodeNotFound) {
		return NewSubjectProgress(userID, subjectID), nil
	}
	return sp, err
}

// RecordQuizAttempt appends an attempt to the quiz history and folds it
// into the subject progress: the score joins quizScores under the new
// attempt's id, the quiz's content id joins the completed set, and the
// progress percentage and study streak are recomputed.
func (a *Aggregator) RecordQuizAttempt(ctx context.Context, userID, subjectID, quizID string, answers []int, score float64, now time.Time) (*SubjectProgress, error) {
	if score < 0 || score > 100 {
		return nil, errs.Invalid("score %g outside 0-100", score)
	}

	attempt := &QuizAttempt{
		ID:          uuid.NewString(),
		UserID:      userID,
		SubjectID:   subjectID,
		QuizID:      quizID,
		Answers:     answers,
		Score:       score,
		CompletedAt: now,
	}
	if err := a.attempts.Append(ctx, attempt); err != nil {
		return nil, err
	}

	sp, created, err := a.getOrCreate(ctx, userID, subjectID)
	if err != nil {
		return nil, err
	}
	if sp.QuizScores == nil {
		sp.QuizScores = make(map[string]float64)
	}
	sp.QuizScores[attempt.ID] = score
	sp.AddContent(quizID)
	sp.Recompute()
	sp.StudyStreakDays = UpdateStreak(sp.LastActivityAt, sp.StudyStreakDays, now)
	sp.LastActivityAt = now

	if err := a.persist(ctx, sp, created); err != nil {
		return nil, err
	}
	return sp, nil
}

// AddStudyTime credits watch or practice minutes against the subject
// and advances the streak.
func (a *Aggregator) AddStudyTime(ctx context.Context, userID, subjectID string, minutes int, now time.Time) (*SubjectProgress, error) {
	if minutes <= 0 {
		return nil, errs.Invalid("minutes must be positive, got %d", minutes)
	}
	sp, created, err := a.getOrCreate(ctx, userID, subjectID)
	if err != nil {
		return nil, err
	}
	sp.StudyMinutes += minutes
	sp.StudyStreakDays = UpdateStreak(sp.LastActivityAt, sp.StudyStreakDays, now)
	sp.LastActivityAt = now
	if err := a.persist(ctx, sp, created); err != nil {
		return nil, err
	}
	return sp, nil
}

// Attempts returns the attempt history for one quiz, oldest first.
func (a *Aggregator) Attempts(ctx context.Context, userID, quizID string) ([]QuizAttempt, error) {
	return a.attempts.ListByQuiz(ctx, userID, quizID)
}

// Summary is the display-ready roll-up of a subject: the progress
// ledger plus path completion, remaining effort, the pending review
// count, and the streak milestone state the client celebrates.
type Summary struct {
	Progress         *SubjectProgress `json:"progress"`
	PathState        path.State       `json:"path_state"`
	CompletionRate   float64          `json:"completion_rate"`
	AverageScore     float64          `json:"average_score"`
	CompletedNodes   int              `json:"completed_nodes"`
	MinutesRemaining int              `json:"minutes_remaining"`
	DueReviewCount   int              `json:"due_review_count"`
	StreakMilestone  bool             `json:"streak_milestone"`
	NextMilestone    int              `json:"next_milestone"`
}

// Summarize reads the progress, path, and review ledgers for one
// subject. A missing path reads as empty rather than an error.
func (a *Aggregator) Summarize(ctx context.Context, userID, subjectID string, now time.Time) (*Summary, error) {
	sp, err := a.Get(ctx, userID, subjectID)
	if err != nil {
		return nil, err
	}
	sum := &Summary{
		Progress:        sp,
		PathState:       path.StateBuilding,
		StreakMilestone: IsStreakMilestone(sp.StudyStreakDays),
		NextMilestone:   NextStreakMilestone(sp.StudyStreakDays),
	}

	p, err := a.paths.Get(ctx, userID, subjectID)
	switch {
	case err == nil:
		sum.PathState = p.State()
		sum.CompletionRate = p.CompletionRate
		sum.AverageScore = p.AverageScore
		sum.CompletedNodes = p.CompletedCount()
		sum.MinutesRemaining = p.EstimatedMinutesRemaining()
	case !errs.Is(err, errs.CodeNotFound):
		return nil, err
	}

	due, err := a.due.DueReviews(ctx, userID, now, srs.DueOpts{})
	if err != nil {
		return nil, err
	}
	sum.DueReviewCount = len(due)
	return sum, nil
}

func (a *Aggregator) getOrCreate(ctx context.Context, userID, subjectID string) (*SubjectProgress, bool, error) {
	sp, err := a.repo.Get(ctx, userID, subjectID)
	if err == nil {
		return sp, false, nil
	}
	if !errs.Is(err, errs.CodeNotFound) {
		return nil, false, err
	}
	return NewSubjectProgress(userID, subjectID), true, nil
}

func (a *Aggregator) persist(ctx context.Context, sp *SubjectProgress, created bool) error {
	if created {
		err := a.repo.Create(ctx, sp)
		if !errs.Is(err, errs.CodeAlreadyExists) {
			return err
		}
		// Lost the insert race; surface it as a concurrent modification
		// so the caller retries with the winner's record.
		return errs.Conflict("subject progress for user %s subject %s was created concurrently", sp.UserID, sp.SubjectID)
	}
	return a.repo.Update(ctx, sp)
}
