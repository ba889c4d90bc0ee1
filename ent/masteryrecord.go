// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/avalder/pathwise/ent/masteryrecord"
)

// MasteryRecord is the model entity for the MasteryRecord schema.
type MasteryRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// ConceptID holds the value of the "concept_id" field.
	ConceptID string `json:"concept_id,omitempty"`
	// Mastery level, 0-100
	Level int `json:"level,omitempty"`
	// Zero until the first review
	LastReviewedAt time.Time `json:"last_reviewed_at,omitempty"`
	// Nil until the first review is scheduled
	NextReviewAt *time.Time `json:"next_review_at,omitempty"`
	// RetentionStreak holds the value of the "retention_streak" field.
	RetentionStreak int `json:"retention_streak,omitempty"`
	// Append-only review history entries
	History []map[string]interface{} `json:"history,omitempty"`
	// Optimistic concurrency token
	Version      int64 `json:"version,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MasteryRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case masteryrecord.FieldHistory:
			values[i] = new([]byte)
		case masteryrecord.FieldID, masteryrecord.FieldLevel, masteryrecord.FieldRetentionStreak, masteryrecord.FieldVersion:
			values[i] = new(sql.NullInt64)
		case masteryrecord.FieldUserID, masteryrecord.FieldConceptID:
			values[i] = new(sql.NullString)
		case masteryrecord.FieldLastReviewedAt, masteryrecord.FieldNextReviewAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MasteryRecord fields.
func (_m *MasteryRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case masteryrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case masteryrecord.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case masteryrecord.FieldConceptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field concept_id", values[i])
			} else if value.Valid {
				_m.ConceptID = value.String
			}
		case masteryrecord.FieldLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = int(value.Int64)
			}
		case masteryrecord.FieldLastReviewedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_reviewed_at", values[i])
			} else if value.Valid {
				_m.LastReviewedAt = value.Time
			}
		case masteryrecord.FieldNextReviewAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_review_at", values[i])
			} else if value.Valid {
				_m.NextReviewAt = new(time.Time)
				*_m.NextReviewAt = value.Time
			}
		case masteryrecord.FieldRetentionStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retention_streak", values[i])
			} else if value.Valid {
				_m.RetentionStreak = int(value.Int64)
			}
		case masteryrecord.FieldHistory:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field history", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.History); err != nil {
					return fmt.Errorf("unmarshal field history: %w", err)
				}
			}
		case masteryrecord.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MasteryRecord.
// This includes values selected through modifiers, order, etc.
func (_m *MasteryRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MasteryRecord.
// Note that you need to call MasteryRecord.Unwrap() before calling this method if this MasteryRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MasteryRecord) Update() *MasteryRecordUpdateOne {
	return NewMasteryRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MasteryRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MasteryRecord) Unwrap() *MasteryRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MasteryRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MasteryRecord) String() string {
	var builder strings.Builder
	builder.WriteString("MasteryRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("concept_id=")
	builder.WriteString(_m.ConceptID)
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(fmt.Sprintf("%v", _m.Level))
	builder.WriteString(", ")
	builder.WriteString("last_reviewed_at=")
	builder.WriteString(_m.LastReviewedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.NextReviewAt; v != nil {
		builder.WriteString("next_review_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("retention_streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetentionStreak))
	builder.WriteString(", ")
	builder.WriteString("history=")
	builder.WriteString(fmt.Sprintf("%v", _m.History))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteByte(')')
	return builder.String()
}

// MasteryRecords is a parsable slice of MasteryRecord.
type MasteryRecords []*MasteryRecord
