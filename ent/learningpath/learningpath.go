// Code generated by ent, DO NOT EDIT.

package learningpath

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the learningpath type in the database.
	Label = "learning_path"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSubjectID holds the string denoting the subject_id field in the database.
	FieldSubjectID = "subject_id"
	// FieldNodes holds the string denoting the nodes field in the database.
	FieldNodes = "nodes"
	// FieldCurrentNodeIndex holds the string denoting the current_node_index field in the database.
	FieldCurrentNodeIndex = "current_node_index"
	// FieldCompletionRate holds the string denoting the completion_rate field in the database.
	FieldCompletionRate = "completion_rate"
	// FieldAverageScore holds the string denoting the average_score field in the database.
	FieldAverageScore = "average_score"
	// FieldLastUpdated holds the string denoting the last_updated field in the database.
	FieldLastUpdated = "last_updated"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// Table holds the table name of the learningpath in the database.
	Table = "learning_paths"
)

// Columns holds all SQL columns for learningpath fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldSubjectID,
	FieldNodes,
	FieldCurrentNodeIndex,
	FieldCompletionRate,
	FieldAverageScore,
	FieldLastUpdated,
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
	// DefaultCurrentNodeIndex holds the default value on creation for the "current_node_index" field.
	DefaultCurrentNodeIndex int
	// DefaultCompletionRate holds the default value on creation for the "completion_rate" field.
	DefaultCompletionRate float64
	// DefaultAverageScore holds the default value on creation for the "average_score" field.
	DefaultAverageScore float64
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int64
)

// OrderOption defines the ordering options for the LearningPath queries.
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

// ByCurrentNodeIndex orders the results by the current_node_index field.
func ByCurrentNodeIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentNodeIndex, opts...).ToFunc()
}

// ByCompletionRate orders the results by the completion_rate field.
func ByCompletionRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletionRate, opts...).ToFunc()
}

// ByAverageScore orders the results by the average_score field.
func ByAverageScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAverageScore, opts...).ToFunc()
}

// ByLastUpdated orders the results by the last_updated field.
func ByLastUpdated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastUpdated, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}
