package store

import (
	"context"

	"github.com/avalder/pathwise/ent"
	"github.com/avalder/pathwise/ent/quizattemptevent"
	"github.com/avalder/pathwise/internal/progress"
)

// AttemptRepo implements progress.AttemptRepo. Quiz attempts are
// append-only events sharing the global sequence.
type AttemptRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *AttemptRepo) Append(ctx context.Context, a *progress.QuizAttempt) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return storeErr(err, "next sequence")
	}

	_, err = r.client.QuizAttemptEvent.Create().
		SetSequence(seqNum).
		SetAttemptID(a.ID).
		SetUserID(a.UserID).
		SetSubjectID(a.SubjectID).
		SetQuizID(a.QuizID).
		SetAnswers(a.Answers).
		SetScore(a.Score).
		SetCompletedAt(a.CompletedAt).
		Save(ctx)
	if err != nil {
		return storeErr(err, "save quiz attempt")
	}
	return nil
}

func (r *AttemptRepo) ListByQuiz(ctx context.Context, userID, quizID string) ([]progress.QuizAttempt, error) {
	rows, err := r.client.QuizAttemptEvent.Query().
		Where(
			quizattemptevent.UserID(userID),
			quizattemptevent.QuizID(quizID),
		).
		Order(ent.Asc(quizattemptevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, storeErr(err, "query quiz attempts")
	}

	out := make([]progress.QuizAttempt, 0, len(rows))
	for _, row := range rows {
		out = append(out, progress.QuizAttempt{
			ID:          row.AttemptID,
			UserID:      row.UserID,
			SubjectID:   row.SubjectID,
			QuizID:      row.QuizID,
			Answers:     row.Answers,
			Score:       row.Score,
			CompletedAt: row.CompletedAt,
		})
	}
	return out, nil
}
