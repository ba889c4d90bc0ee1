package store

import (
	"context"

	"github.com/avalder/pathwise/ent"
	"github.com/avalder/pathwise/ent/subjectprogress"
	"github.com/avalder/pathwise/internal/errs"
	"github.com/avalder/pathwise/internal/progress"
)

// ProgressRepo implements progress.Repo over the subject_progresses table.
type ProgressRepo struct {
	client *ent.Client
}

func (r *ProgressRepo) Get(ctx context.Context, userID, subjectID string) (*progress.SubjectProgress, error) {
	row, err := r.client.SubjectProgress.Query().
		Where(
			subjectprogress.UserID(userID),
			subjectprogress.SubjectID(subjectID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, errs.NotFound("no progress for user %s subject %s", userID, subjectID)
		}
		return nil, storeErr(err, "query subject progress")
	}
	return progressFromRow(row), nil
}

func (r *ProgressRepo) Create(ctx context.Context, sp *progress.SubjectProgress) error {
	builder := r.client.SubjectProgress.Create().
		SetUserID(sp.UserID).
		SetSubjectID(sp.SubjectID).
		SetProgressPercentage(sp.ProgressPercentage).
		SetCompletedContentIds(sp.CompletedContentIDs).
		SetQuizScores(sp.QuizScores).
		SetStudyStreakDays(sp.StudyStreakDays).
		SetStudyMinutes(sp.StudyMinutes).
		SetVersion(1)
	if !sp.LastActivityAt.IsZero() {
		builder = builder.SetLastActivityAt(sp.LastActivityAt)
	}

	if _, err := builder.Save(ctx); err != nil {
		if isConstraint(err) {
			return errs.AlreadyExists("progress exists for user %s subject %s", sp.UserID, sp.SubjectID)
		}
		return storeErr(err, "create subject progress")
	}
	sp.Version = 1
	return nil
}

func (r *ProgressRepo) Update(ctx context.Context, sp *progress.SubjectProgress) error {
	n, err := r.client.SubjectProgress.Update().
		Where(
			subjectprogress.UserID(sp.UserID),
			subjectprogress.SubjectID(sp.SubjectID),
			subjectprogress.Version(sp.Version),
		).
		SetProgressPercentage(sp.ProgressPercentage).
		SetLastActivityAt(sp.LastActivityAt).
		SetCompletedContentIds(sp.CompletedContentIDs).
		SetQuizScores(sp.QuizScores).
		SetStudyStreakDays(sp.StudyStreakDays).
		SetStudyMinutes(sp.StudyMinutes).
		SetVersion(sp.Version + 1).
		Save(ctx)
	if err != nil {
		return storeErr(err, "update subject progress")
	}
	if n == 0 {
		return errs.Conflict("progress for user %s subject %s was modified concurrently", sp.UserID, sp.SubjectID)
	}
	sp.Version++
	return nil
}

func progressFromRow(row *ent.SubjectProgress) *progress.SubjectProgress {
	return &progress.SubjectProgress{
		UserID:              row.UserID,
		SubjectID:           row.SubjectID,
		ProgressPercentage:  row.ProgressPercentage,
		LastActivityAt:      row.LastActivityAt,
		CompletedContentIDs: row.CompletedContentIds,
		QuizScores:          row.QuizScores,
		StudyStreakDays:     row.StudyStreakDays,
		StudyMinutes:        row.StudyMinutes,
		Version:             row.Version,
	}
}
