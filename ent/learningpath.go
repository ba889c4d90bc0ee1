// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/avalder/pathwise/ent/learningpath"
)

// LearningPath is the model entity for the LearningPath schema.
type LearningPath struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// SubjectID holds the value of the "subject_id" field.
	SubjectID string `json:"subject_id,omitempty"`
	// Ordered path nodes as JSON
	Nodes []map[string]interface{} `json:"nodes,omitempty"`
	// CurrentNodeIndex holds the value of the "current_node_index" field.
	CurrentNodeIndex int `json:"current_node_index,omitempty"`
	// CompletionRate holds the value of the "completion_rate" field.
	CompletionRate float64 `json:"completion_rate,omitempty"`
	// AverageScore holds the value of the "average_score" field.
	AverageScore float64 `json:"average_score,omitempty"`
	// LastUpdated holds the value of the "last_updated" field.
	LastUpdated time.Time `json:"last_updated,omitempty"`
	// Optimistic concurrency token
	Version      int64 `json:"version,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LearningPath) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case learningpath.FieldNodes:
			values[i] = new([]byte)
		case learningpath.FieldCompletionRate, learningpath.FieldAverageScore:
			values[i] = new(sql.NullFloat64)
		case learningpath.FieldID, learningpath.FieldCurrentNodeIndex, learningpath.FieldVersion:
			values[i] = new(sql.NullInt64)
		case learningpath.FieldUserID, learningpath.FieldSubjectID:
			values[i] = new(sql.NullString)
		case learningpath.FieldLastUpdated:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LearningPath fields.
func (_m *LearningPath) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case learningpath.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case learningpath.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case learningpath.FieldSubjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject_id", values[i])
			} else if value.Valid {
				_m.SubjectID = value.String
			}
		case learningpath.FieldNodes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field nodes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Nodes); err != nil {
					return fmt.Errorf("unmarshal field nodes: %w", err)
				}
			}
		case learningpath.FieldCurrentNodeIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_node_index", values[i])
			} else if value.Valid {
				_m.CurrentNodeIndex = int(value.Int64)
			}
		case learningpath.FieldCompletionRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field completion_rate", values[i])
			} else if value.Valid {
				_m.CompletionRate = value.Float64
			}
		case learningpath.FieldAverageScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field average_score", values[i])
			} else if value.Valid {
				_m.AverageScore = value.Float64
			}
		case learningpath.FieldLastUpdated:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_updated", values[i])
			} else if value.Valid {
				_m.LastUpdated = value.Time
			}
		case learningpath.FieldVersion:
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

// Value returns the ent.Value that was dynamically selected and assigned to the LearningPath.
// This includes values selected through modifiers, order, etc.
func (_m *LearningPath) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LearningPath.
// Note that you need to call LearningPath.Unwrap() before calling this method if this LearningPath
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LearningPath) Update() *LearningPathUpdateOne {
	return NewLearningPathClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LearningPath entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LearningPath) Unwrap() *LearningPath {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LearningPath is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LearningPath) String() string {
	var builder strings.Builder
	builder.WriteString("LearningPath(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("subject_id=")
	builder.WriteString(_m.SubjectID)
	builder.WriteString(", ")
	builder.WriteString("nodes=")
	builder.WriteString(fmt.Sprintf("%v", _m.Nodes))
	builder.WriteString(", ")
	builder.WriteString("current_node_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentNodeIndex))
	builder.WriteString(", ")
	builder.WriteString("completion_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletionRate))
	builder.WriteString(", ")
	builder.WriteString("average_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.AverageScore))
	builder.WriteString(", ")
	builder.WriteString("last_updated=")
	builder.WriteString(_m.LastUpdated.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteByte(')')
	return builder.String()
}

// LearningPaths is a parsable slice of LearningPath.
type LearningPaths []*LearningPath
