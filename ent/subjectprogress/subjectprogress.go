// Code generated by ent, DO NOT EDIT.

package subjectprogress

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the subjectprogress type in the database.
	Label = "subject_progress"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSubjectID holds the string denoting the subject_id field in the database.
	FieldSubjectID = "subject_id"
	// FieldProgressPercentage holds the string denoting the progress_percentage field in the database.
	FieldProgressPercentage = "progress_percentage"
	// FieldLastActivityAt holds the string denoting the last_activity_at field in the database.
	FieldLastActivityAt = "last_activity_at"
	// FieldCompletedContentIds holds the string denoting the completed_content_ids field in the database.
	FieldCompletedContentIds = "completed_content_ids"
	// FieldQuizScores holds the string denoting the quiz_scores field in the database.
	FieldQuizScores = "quiz_scores"
	// FieldStudyStreakDays holds the string denoting the study_streak_days field in the database.
	FieldStudyStreakDays = "study_streak_days"
	// FieldStudyMinutes holds the string denoting the study_minutes field in the database.
	FieldStudyMinutes = "study_minutes"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// Table holds the table name of the subjectprogress in the database.
	Table = "subject_progresses"
)

// Columns holds all SQL columns for subjectprogress fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldSubjectID,
	FieldProgressPercentage,
	FieldLastActivityAt,
	FieldCompletedContentIds,
	FieldQuizScores,
	FieldStudyStreakDays,
	FieldStudyMinutes,
	FieldVersion,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	SubjectIDValidator func(string) error
	// DefaultProgressPercentage holds the default value on creation for the "progress_percentage" field.
	DefaultProgressPercentage float64
	// DefaultStudyStreakDays holds the default value on creation for the "study_streak_days" field.
	DefaultStudyStreakDays int
	// DefaultStudyMinutes holds the default value on creation for the "study_minutes" field.
	DefaultStudyMinutes int
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int64
)

// OrderOption defines the ordering options for the SubjectProgress queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySubjectID orders the results by the subject_id field.
func BySubjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectID, opts...).ToFunc()
}

// ByProgressPercentage orders the results by the progress_percentage field.
func ByProgressPercentage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProgressPercentage, opts...).ToFunc()
}

// ByLastActivityAt orders the results by the last_activity_at field.
func ByLastActivityAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastActivityAt, opts...).ToFunc()
}

// ByStudyStreakDays orders the results by the study_streak_days field.
func ByStudyStreakDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudyStreakDays, opts...).ToFunc()
}

// ByStudyMinutes orders the results by the study_minutes field.
func ByStudyMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudyMinutes, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}
