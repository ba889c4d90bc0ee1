// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/avalder/pathwise/ent/learningpath"
	"github.com/avalder/pathwise/ent/llmrequestevent"
	"github.com/avalder/pathwise/ent/masteryrecord"
	"github.com/avalder/pathwise/ent/quizattemptevent"
	"github.com/avalder/pathwise/ent/reviewevent"
	"github.com/avalder/pathwise/ent/schema"
	"github.com/avalder/pathwise/ent/subjectprogress"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	learningpathFields := schema.LearningPath{}.Fields()
	_ = learningpathFields
	// learningpathDescUserID is the schema descriptor for user_id field.
	learningpathDescUserID := learningpathFields[0].Descriptor()
	// learningpath.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	learningpath.UserIDValidator = learningpathDescUserID.Validators[0].(func(string) error)
	// learningpathDescSubjectID is the schema descriptor for subject_id field.
	learningpathDescSubjectID := learningpathFields[1].Descriptor()
	// learningpath.SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	learningpath.SubjectIDValidator = learningpathDescSubjectID.Validators[0].(func(string) error)
	// learningpathDescCurrentNodeIndex is the schema descriptor for current_node_index field.
	learningpathDescCurrentNodeIndex := learningpathFields[3].Descriptor()
	// learningpath.DefaultCurrentNodeIndex holds the default value on creation for the current_node_index field.
	learningpath.DefaultCurrentNodeIndex = learningpathDescCurrentNodeIndex.Default.(int)
	// learningpathDescCompletionRate is the schema descriptor for completion_rate field.
	learningpathDescCompletionRate := learningpathFields[4].Descriptor()
	// learningpath.DefaultCompletionRate holds the default value on creation for the completion_rate field.
	learningpath.DefaultCompletionRate = learningpathDescCompletionRate.Default.(float64)
	// learningpathDescAverageScore is the schema descriptor for average_score field.
	learningpathDescAverageScore := learningpathFields[5].Descriptor()
	// learningpath.DefaultAverageScore holds the default value on creation for the average_score field.
	learningpath.DefaultAverageScore = learningpathDescAverageScore.Default.(float64)
	// learningpathDescVersion is the schema descriptor for version field.
	learningpathDescVersion := learningpathFields[7].Descriptor()
	// learningpath.DefaultVersion holds the default value on creation for the version field.
	learningpath.DefaultVersion = learningpathDescVersion.Default.(int64)
	masteryrecordFields := schema.MasteryRecord{}.Fields()
	_ = masteryrecordFields
	// masteryrecordDescUserID is the schema descriptor for user_id field.
	masteryrecordDescUserID := masteryrecordFields[0].Descriptor()
	// masteryrecord.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	masteryrecord.UserIDValidator = masteryrecordDescUserID.Validators[0].(func(string) error)
	// masteryrecordDescConceptID is the schema descriptor for concept_id field.
	masteryrecordDescConceptID := masteryrecordFields[1].Descriptor()
	// masteryrecord.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	masteryrecord.ConceptIDValidator = masteryrecordDescConceptID.Validators[0].(func(string) error)
	// masteryrecordDescLevel is the schema descriptor for level field.
	masteryrecordDescLevel := masteryrecordFields[2].Descriptor()
	// masteryrecord.DefaultLevel holds the default value on creation for the level field.
	masteryrecord.DefaultLevel = masteryrecordDescLevel.Default.(int)
	// masteryrecordDescRetentionStreak is the schema descriptor for retention_streak field.
	masteryrecordDescRetentionStreak := masteryrecordFields[5].Descriptor()
	// masteryrecord.DefaultRetentionStreak holds the default value on creation for the retention_streak field.
	masteryrecord.DefaultRetentionStreak = masteryrecordDescRetentionStreak.Default.(int)
	// masteryrecordDescVersion is the schema descriptor for version field.
	masteryrecordDescVersion := masteryrecordFields[7].Descriptor()
	// masteryrecord.DefaultVersion holds the default value on creation for the version field.
	masteryrecord.DefaultVersion = masteryrecordDescVersion.Default.(int64)
	quizattempteventMixin := schema.QuizAttemptEvent{}.Mixin()
	quizattempteventMixinFields0 := quizattempteventMixin[0].Fields()
	_ = quizattempteventMixinFields0
	quizattempteventFields := schema.QuizAttemptEvent{}.Fields()
	_ = quizattempteventFields
	// quizattempteventDescTimestamp is the schema descriptor for timestamp field.
	quizattempteventDescTimestamp := quizattempteventMixinFields0[1].Descriptor()
	// quizattemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizattemptevent.DefaultTimestamp = quizattempteventDescTimestamp.Default.(func() time.Time)
	// quizattempteventDescAttemptID is the schema descriptor for attempt_id field.
	quizattempteventDescAttemptID := quizattempteventFields[0].Descriptor()
	// quizattemptevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	quizattemptevent.AttemptIDValidator = quizattempteventDescAttemptID.Validators[0].(func(string) error)
	// quizattempteventDescUserID is the schema descriptor for user_id field.
	quizattempteventDescUserID := quizattempteventFields[1].Descriptor()
	// quizattemptevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	quizattemptevent.UserIDValidator = quizattempteventDescUserID.Validators[0].(func(string) error)
	// quizattempteventDescSubjectID is the schema descriptor for subject_id field.
	quizattempteventDescSubjectID := quizattempteventFields[2].Descriptor()
	// quizattemptevent.SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	quizattemptevent.SubjectIDValidator = quizattempteventDescSubjectID.Validators[0].(func(string) error)
	// quizattempteventDescQuizID is the schema descriptor for quiz_id field.
	quizattempteventDescQuizID := quizattempteventFields[3].Descriptor()
	// quizattemptevent.QuizIDValidator is a validator for the "quiz_id" field. It is called by the builders before save.
	quizattemptevent.QuizIDValidator = quizattempteventDescQuizID.Validators[0].(func(string) error)
	revieweventMixin := schema.ReviewEvent{}.Mixin()
	revieweventMixinFields0 := revieweventMixin[0].Fields()
	_ = revieweventMixinFields0
	revieweventFields := schema.ReviewEvent{}.Fields()
	_ = revieweventFields
	// revieweventDescTimestamp is the schema descriptor for timestamp field.
	revieweventDescTimestamp := revieweventMixinFields0[1].Descriptor()
	// reviewevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	reviewevent.DefaultTimestamp = revieweventDescTimestamp.Default.(func() time.Time)
	// revieweventDescUserID is the schema descriptor for user_id field.
	revieweventDescUserID := revieweventFields[0].Descriptor()
	// reviewevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	reviewevent.UserIDValidator = revieweventDescUserID.Validators[0].(func(string) error)
	// revieweventDescConceptID is the schema descriptor for concept_id field.
	revieweventDescConceptID := revieweventFields[1].Descriptor()
	// reviewevent.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	reviewevent.ConceptIDValidator = revieweventDescConceptID.Validators[0].(func(string) error)
	// revieweventDescRating is the schema descriptor for rating field.
	revieweventDescRating := revieweventFields[2].Descriptor()
	// reviewevent.RatingValidator is a validator for the "rating" field. It is called by the builders before save.
	reviewevent.RatingValidator = revieweventDescRating.Validators[0].(func(string) error)
	// revieweventDescScoreDerived is the schema descriptor for score_derived field.
	revieweventDescScoreDerived := revieweventFields[6].Descriptor()
	// reviewevent.DefaultScoreDerived holds the default value on creation for the score_derived field.
	reviewevent.DefaultScoreDerived = revieweventDescScoreDerived.Default.(bool)
	subjectprogressFields := schema.SubjectProgress{}.Fields()
	_ = subjectprogressFields
	// subjectprogressDescUserID is the schema descriptor for user_id field.
	subjectprogressDescUserID := subjectprogressFields[0].Descriptor()
	// subjectprogress.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	subjectprogress.UserIDValidator = subjectprogressDescUserID.Validators[0].(func(string) error)
	// subjectprogressDescSubjectID is the schema descriptor for subject_id field.
	subjectprogressDescSubjectID := subjectprogressFields[1].Descriptor()
	// subjectprogress.SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	subjectprogress.SubjectIDValidator = subjectprogressDescSubjectID.Validators[0].(func(string) error)
	// subjectprogressDescProgressPercentage is the schema descriptor for progress_percentage field.
	subjectprogressDescProgressPercentage := subjectprogressFields[2].Descriptor()
	// subjectprogress.DefaultProgressPercentage holds the default value on creation for the progress_percentage field.
	subjectprogress.DefaultProgressPercentage = subjectprogressDescProgressPercentage.Default.(float64)
	// subjectprogressDescStudyStreakDays is the schema descriptor for study_streak_days field.
	subjectprogressDescStudyStreakDays := subjectprogressFields[6].Descriptor()
	// subjectprogress.DefaultStudyStreakDays holds the default value on creation for the study_streak_days field.
	subjectprogress.DefaultStudyStreakDays = subjectprogressDescStudyStreakDays.Default.(int)
	// subjectprogressDescStudyMinutes is the schema descriptor for study_minutes field.
	subjectprogressDescStudyMinutes := subjectprogressFields[7].Descriptor()
	// subjectprogress.DefaultStudyMinutes holds the default value on creation for the study_minutes field.
	subjectprogress.DefaultStudyMinutes = subjectprogressDescStudyMinutes.Default.(int)
	// subjectprogressDescVersion is the schema descriptor for version field.
	subjectprogressDescVersion := subjectprogressFields[8].Descriptor()
	// subjectprogress.DefaultVersion holds the default value on creation for the version field.
	subjectprogress.DefaultVersion = subjectprogressDescVersion.Default.(int64)
}
