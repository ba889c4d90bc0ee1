// Code generated by ent, DO NOT EDIT.

package subjectprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/avalder/pathwise/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldEQ(FieldUserID, v))
}

// SubjectID applies equality check predicate on the "subject_id" field. It's identical to SubjectIDEQ.
func SubjectID(v string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldEQ(FieldSubjectID, v))
}

// ProgressPercentage applies equality check predicate on the "progress_percentage" field. It's identical to ProgressPercentageEQ.
func ProgressPercentage(v float64) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldEQ(FieldProgressPercentage, v))
}

// LastActivityAt applies equality check predicate on the "last_activity_at" field. It's identical to LastActivityAtEQ.
func LastActivityAt(v time.Time) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldEQ(FieldLastActivityAt, v))
}

// StudyStreakDays applies equality check predicate on the "study_streak_days" field. It's identical to StudyStreakDaysEQ.
func StudyStreakDays(v int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldEQ(FieldStudyStreakDays, v))
}

// StudyMinutes applies equality check predicate on the "study_minutes" field. It's identical to StudyMinutesEQ.
func StudyMinutes(v int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldEQ(FieldStudyMinutes, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int64) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldEQ(FieldVersion, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldContainsFold(FieldUserID, v))
}

// SubjectIDEQ applies the EQ predicate on the "subject_id" field.
func SubjectIDEQ(v string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldEQ(FieldSubjectID, v))
}

// SubjectIDNEQ applies the NEQ predicate on the "subject_id" field.
func SubjectIDNEQ(v string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldNEQ(FieldSubjectID, v))
}

// SubjectIDIn applies the In predicate on the "subject_id" field.
func SubjectIDIn(vs ...string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldIn(FieldSubjectID, vs...))
}

// SubjectIDNotIn applies the NotIn predicate on the "subject_id" field.
func SubjectIDNotIn(vs ...string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldNotIn(FieldSubjectID, vs...))
}

// SubjectIDGT applies the GT predicate on the "subject_id" field.
func SubjectIDGT(v string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldGT(FieldSubjectID, v))
}

// SubjectIDGTE applies the GTE predicate on the "subject_id" field.
func SubjectIDGTE(v string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldGTE(FieldSubjectID, v))
}

// SubjectIDLT applies the LT predicate on the "subject_id" field.
func SubjectIDLT(v string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldLT(FieldSubjectID, v))
}

// SubjectIDLTE applies the LTE predicate on the "subject_id" field.
func SubjectIDLTE(v string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldLTE(FieldSubjectID, v))
}

// SubjectIDContains applies the Contains predicate on the "subject_id" field.
func SubjectIDContains(v string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldContains(FieldSubjectID, v))
}

// SubjectIDHasPrefix applies the HasPrefix predicate on the "subject_id" field.
func SubjectIDHasPrefix(v string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldHasPrefix(FieldSubjectID, v))
}

// SubjectIDHasSuffix applies the HasSuffix predicate on the "subject_id" field.
func SubjectIDHasSuffix(v string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldHasSuffix(FieldSubjectID, v))
}

// SubjectIDEqualFold applies the EqualFold predicate on the "subject_id" field.
func SubjectIDEqualFold(v string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldEqualFold(FieldSubjectID, v))
}

// SubjectIDContainsFold applies the ContainsFold predicate on the "subject_id" field.
func SubjectIDContainsFold(v string) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldContainsFold(FieldSubjectID, v))
}

// ProgressPercentageEQ applies the EQ predicate on the "progress_percentage" field.
func ProgressPercentageEQ(v float64) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldEQ(FieldProgressPercentage, v))
}

// ProgressPercentageNEQ applies the NEQ predicate on the "progress_percentage" field.
func ProgressPercentageNEQ(v float64) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldNEQ(FieldProgressPercentage, v))
}

// ProgressPercentageIn applies the In predicate on the "progress_percentage" field.
func ProgressPercentageIn(vs ...float64) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldIn(FieldProgressPercentage, vs...))
}

// ProgressPercentageNotIn applies the NotIn predicate on the "progress_percentage" field.
func ProgressPercentageNotIn(vs ...float64) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldNotIn(FieldProgressPercentage, vs...))
}

// ProgressPercentageGT applies the GT predicate on the "progress_percentage" field.
func ProgressPercentageGT(v float64) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldGT(FieldProgressPercentage, v))
}

// ProgressPercentageGTE applies the GTE predicate on the "progress_percentage" field.
func ProgressPercentageGTE(v float64) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldGTE(FieldProgressPercentage, v))
}

// ProgressPercentageLT applies the LT predicate on the "progress_percentage" field.
func ProgressPercentageLT(v float64) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldLT(FieldProgressPercentage, v))
}

// ProgressPercentageLTE applies the LTE predicate on the "progress_percentage" field.
func ProgressPercentageLTE(v float64) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldLTE(FieldProgressPercentage, v))
}

// LastActivityAtEQ applies the EQ predicate on the "last_activity_at" field.
func LastActivityAtEQ(v time.Time) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldEQ(FieldLastActivityAt, v))
}

// LastActivityAtNEQ applies the NEQ predicate on the "last_activity_at" field.
func LastActivityAtNEQ(v time.Time) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldNEQ(FieldLastActivityAt, v))
}

// LastActivityAtIn applies the In predicate on the "last_activity_at" field.
func LastActivityAtIn(vs ...time.Time) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldIn(FieldLastActivityAt, vs...))
}

// LastActivityAtNotIn applies the NotIn predicate on the "last_activity_at" field.
func LastActivityAtNotIn(vs ...time.Time) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldNotIn(FieldLastActivityAt, vs...))
}

// LastActivityAtGT applies the GT predicate on the "last_activity_at" field.
func LastActivityAtGT(v time.Time) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldGT(FieldLastActivityAt, v))
}

// LastActivityAtGTE applies the GTE predicate on the "last_activity_at" field.
func LastActivityAtGTE(v time.Time) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldGTE(FieldLastActivityAt, v))
}

// LastActivityAtLT applies the LT predicate on the "last_activity_at" field.
func LastActivityAtLT(v time.Time) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldLT(FieldLastActivityAt, v))
}

// LastActivityAtLTE applies the LTE predicate on the "last_activity_at" field.
func LastActivityAtLTE(v time.Time) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldLTE(FieldLastActivityAt, v))
}

// LastActivityAtIsNil applies the IsNil predicate on the "last_activity_at" field.
func LastActivityAtIsNil() predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldIsNull(FieldLastActivityAt))
}

// LastActivityAtNotNil applies the NotNil predicate on the "last_activity_at" field.
func LastActivityAtNotNil() predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldNotNull(FieldLastActivityAt))
}

// CompletedContentIdsIsNil applies the IsNil predicate on the "completed_content_ids" field.
func CompletedContentIdsIsNil() predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldIsNull(FieldCompletedContentIds))
}

// CompletedContentIdsNotNil applies the NotNil predicate on the "completed_content_ids" field.
func CompletedContentIdsNotNil() predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldNotNull(FieldCompletedContentIds))
}

// QuizScoresIsNil applies the IsNil predicate on the "quiz_scores" field.
func QuizScoresIsNil() predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldIsNull(FieldQuizScores))
}

// QuizScoresNotNil applies the NotNil predicate on the "quiz_scores" field.
func QuizScoresNotNil() predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldNotNull(FieldQuizScores))
}

// StudyStreakDaysEQ applies the EQ predicate on the "study_streak_days" field.
func StudyStreakDaysEQ(v int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldEQ(FieldStudyStreakDays, v))
}

// StudyStreakDaysNEQ applies the NEQ predicate on the "study_streak_days" field.
func StudyStreakDaysNEQ(v int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldNEQ(FieldStudyStreakDays, v))
}

// StudyStreakDaysIn applies the In predicate on the "study_streak_days" field.
func StudyStreakDaysIn(vs ...int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldIn(FieldStudyStreakDays, vs...))
}

// StudyStreakDaysNotIn applies the NotIn predicate on the "study_streak_days" field.
func StudyStreakDaysNotIn(vs ...int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldNotIn(FieldStudyStreakDays, vs...))
}

// StudyStreakDaysGT applies the GT predicate on the "study_streak_days" field.
func StudyStreakDaysGT(v int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldGT(FieldStudyStreakDays, v))
}

// StudyStreakDaysGTE applies the GTE predicate on the "study_streak_days" field.
func StudyStreakDaysGTE(v int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldGTE(FieldStudyStreakDays, v))
}

// StudyStreakDaysLT applies the LT predicate on the "study_streak_days" field.
func StudyStreakDaysLT(v int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldLT(FieldStudyStreakDays, v))
}

// StudyStreakDaysLTE applies the LTE predicate on the "study_streak_days" field.
func StudyStreakDaysLTE(v int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldLTE(FieldStudyStreakDays, v))
}

// StudyMinutesEQ applies the EQ predicate on the "study_minutes" field.
func StudyMinutesEQ(v int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldEQ(FieldStudyMinutes, v))
}

// StudyMinutesNEQ applies the NEQ predicate on the "study_minutes" field.
func StudyMinutesNEQ(v int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldNEQ(FieldStudyMinutes, v))
}

// StudyMinutesIn applies the In predicate on the "study_minutes" field.
func StudyMinutesIn(vs ...int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldIn(FieldStudyMinutes, vs...))
}

// StudyMinutesNotIn applies the NotIn predicate on the "study_minutes" field.
func StudyMinutesNotIn(vs ...int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldNotIn(FieldStudyMinutes, vs...))
}

// StudyMinutesGT applies the GT predicate on the "study_minutes" field.
func StudyMinutesGT(v int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldGT(FieldStudyMinutes, v))
}

// StudyMinutesGTE applies the GTE predicate on the "study_minutes" field.
func StudyMinutesGTE(v int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldGTE(FieldStudyMinutes, v))
}

// StudyMinutesLT applies the LT predicate on the "study_minutes" field.
func StudyMinutesLT(v int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldLT(FieldStudyMinutes, v))
}

// StudyMinutesLTE applies the LTE predicate on the "study_minutes" field.
func StudyMinutesLTE(v int) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldLTE(FieldStudyMinutes, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int64) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int64) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int64) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int64) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int64) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int64) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int64) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int64) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.FieldLTE(FieldVersion, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SubjectProgress) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SubjectProgress) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SubjectProgress) predicate.SubjectProgress {
	return predicate.SubjectProgress(sql.NotPredicates(p))
}
