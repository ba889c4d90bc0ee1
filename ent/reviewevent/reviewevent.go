// Code generated by ent, DO NOT EDIT.

package reviewevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the reviewevent type in the database.
	Label = "review_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldConceptID holds the string denoting the concept_id field in the database.
	FieldConceptID = "concept_id"
	// FieldRating holds the string denoting the rating field in the database.
	FieldRating = "rating"
	// FieldLevelAfter holds the string denoting the level_after field in the database.
	FieldLevelAfter = "level_after"
	// FieldStreakAfter holds the string denoting the streak_after field in the database.
	FieldStreakAfter = "streak_after"
	// FieldIntervalHours holds the string denoting the interval_hours field in the database.
	FieldIntervalHours = "interval_hours"
	// FieldScoreDerived holds the string denoting the score_derived field in the database.
	FieldScoreDerived = "score_derived"
	// Table holds the table name of the reviewevent in the database.
	Table = "review_events"
)

// Columns holds all SQL columns for reviewevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldUserID,
	FieldConceptID,
	FieldRating,
	FieldLevelAfter,
	FieldStreakAfter,
	FieldIntervalHours,
	FieldScoreDerived,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	ConceptIDValidator func(string) error
	// RatingValidator is a validator for the "rating" field. It is called by the builders before save.
	RatingValidator func(string) error
	// DefaultScoreDerived holds the default value on creation for the "score_derived" field.
	DefaultScoreDerived bool
)

// OrderOption defines the ordering options for the ReviewEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByConceptID orders the results by the concept_id field.
func ByConceptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConceptID, opts...).ToFunc()
}

// ByRating orders the results by the rating field.
func ByRating(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRating, opts...).ToFunc()
}

// ByLevelAfter orders the results by the level_after field.
func ByLevelAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevelAfter, opts...).ToFunc()
}

// ByStreakAfter orders the results by the streak_after field.
func ByStreakAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreakAfter, opts...).ToFunc()
}

// ByIntervalHours orders the results by the interval_hours field.
func ByIntervalHours(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntervalHours, opts...).ToFunc()
}

// ByScoreDerived orders the results by the score_derived field.
func ByScoreDerived(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScoreDerived, opts...).ToFunc()
}
