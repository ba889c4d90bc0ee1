// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/avalder/pathwise/ent/subjectprogress"
)

// SubjectProgress is the model entity for the SubjectProgress schema.
type SubjectProgress struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// SubjectID holds the value of the "subject_id" field.
	SubjectID string `json:"subject_id,omitempty"`
	// ProgressPercentage holds the value of the "progress_percentage" field.
	ProgressPercentage float64 `json:"progress_percentage,omitempty"`
	// LastActivityAt holds the value of the "last_activity_at" field.
	LastActivityAt time.Time `json:"last_activity_at,omitempty"`
	// CompletedContentIds holds the value of the "completed_content_ids" field.
	CompletedContentIds []string `json:"completed_content_ids,omitempty"`
	// Attempt ID -> score
	QuizScores map[string]float64 `json:"quiz_scores,omitempty"`
	// StudyStreakDays holds the value of the "study_streak_days" field.
	StudyStreakDays int `json:"study_streak_days,omitempty"`
	// StudyMinutes holds the value of the "study_minutes" field.
	StudyMinutes int `json:"study_minutes,omitempty"`
	// Optimistic concurrency token
	Version      int64 `json:"version,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SubjectProgress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case subjectprogress.FieldCompletedContentIds, subjectprogress.FieldQuizScores:
			values[i] = new([]byte)
		case subjectprogress.FieldProgressPercentage:
			values[i] = new(sql.NullFloat64)
		case subjectprogress.FieldID, subjectprogress.FieldStudyStreakDays, subjectprogress.FieldStudyMinutes, subjectprogress.FieldVersion:
			values[i] = new(sql.NullInt64)
		case subjectprogress.FieldUserID, subjectprogress.FieldSubjectID:
			values[i] = new(sql.NullString)
		case subjectprogress.FieldLastActivityAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SubjectProgress fields.
func (_m *SubjectProgress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case subjectprogress.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case subjectprogress.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case subjectprogress.FieldSubjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject_id", values[i])
			} else if value.Valid {
				_m.SubjectID = value.String
			}
		case subjectprogress.FieldProgressPercentage:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field progress_percentage", values[i])
			} else if value.Valid {
				_m.ProgressPercentage = value.Float64
			}
		case subjectprogress.FieldLastActivityAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_activity_at", values[i])
			} else if value.Valid {
				_m.LastActivityAt = value.Time
			}
		case subjectprogress.FieldCompletedContentIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field completed_content_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CompletedContentIds); err != nil {
					return fmt.Errorf("unmarshal field completed_content_ids: %w", err)
				}
			}
		case subjectprogress.FieldQuizScores:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field quiz_scores", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.QuizScores); err != nil {
					return fmt.Errorf("unmarshal field quiz_scores: %w", err)
				}
			}
		case subjectprogress.FieldStudyStreakDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field study_streak_days", values[i])
			} else if value.Valid {
				_m.StudyStreakDays = int(value.Int64)
			}
		case subjectprogress.FieldStudyMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field study_minutes", values[i])
			} else if value.Valid {
				_m.StudyMinutes = int(value.Int64)
			}
		case subjectprogress.FieldVersion:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SubjectProgress.
// This includes values selected through modifiers, order, etc.
func (_m *SubjectProgress) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SubjectProgress.
// Note that you need to call SubjectProgress.Unwrap() before calling this method if this SubjectProgress
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SubjectProgress) Update() *SubjectProgressUpdateOne {
	return NewSubjectProgressClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SubjectProgress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SubjectProgress) Unwrap() *SubjectProgress {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SubjectProgress is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SubjectProgress) String() string {
	var builder strings.Builder
	builder.WriteString("SubjectProgress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("subject_id=")
	builder.WriteString(_m.SubjectID)
	builder.WriteString(", ")
	builder.WriteString("progress_percentage=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProgressPercentage))
	builder.WriteString(", ")
	builder.WriteString("last_activity_at=")
	builder.WriteString(_m.LastActivityAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("completed_content_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletedContentIds))
	builder.WriteString(", ")
	builder.WriteString("quiz_scores=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuizScores))
	builder.WriteString(", ")
	builder.WriteString("study_streak_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.StudyStreakDays))
	builder.WriteString(", ")
	builder.WriteString("study_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.StudyMinutes))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteByte(')')
	return builder.String()
}

// SubjectProgresses is a parsable slice of SubjectProgress.
type SubjectProgresses []*SubjectProgress
