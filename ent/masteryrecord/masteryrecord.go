// Code generated by ent, DO NOT EDIT.

package masteryrecord

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the masteryrecord type in the database.
	Label = "mastery_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldConceptID holds the string denoting the concept_id field in the database.
	FieldConceptID = "concept_id"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldLastReviewedAt holds the string denoting the last_reviewed_at field in the database.
	FieldLastReviewedAt = "last_reviewed_at"
	// FieldNextReviewAt holds the string denoting the next_review_at field in the database.
	FieldNextReviewAt = "next_review_at"
	// FieldRetentionStreak holds the string denoting the retention_streak field in the database.
	FieldRetentionStreak = "retention_streak"
	// FieldHistory holds the string denoting the history field in the database.
	FieldHistory = "history"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// Table holds the table name of the masteryrecord in the database.
	Table = "mastery_records"
)

// Columns holds all SQL columns for masteryrecord fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldConceptID,
	FieldLevel,
	FieldLastReviewedAt,
	FieldNextReviewAt,
	FieldRetentionStreak,
	FieldHistory,
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
	// ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	ConceptIDValidator func(string) error
	// DefaultLevel holds the default value on creation for the "level" field.
	DefaultLevel int
	// DefaultRetentionStreak holds the default value on creation for the "retention_streak" field.
	DefaultRetentionStreak int
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int64
)

// OrderOption defines the ordering options for the MasteryRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByConceptID orders the results by the concept_id field.
func ByConceptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConceptID, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByLastReviewedAt orders the results by the last_reviewed_at field.
func ByLastReviewedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastReviewedAt, opts...).ToFunc()
}

// ByNextReviewAt orders the results by the next_review_at field.
func ByNextReviewAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextReviewAt, opts...).ToFunc()
}

// ByRetentionStreak orders the results by the retention_streak field.
func ByRetentionStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetentionStreak, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}
