// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/avalder/pathwise/ent/learningpath"
	"github.com/avalder/pathwise/ent/predicate"
)

// LearningPathUpdate is the builder for updating LearningPath entities.
type LearningPathUpdate struct {
	config
	hooks    []Hook
	mutation *LearningPathMutation
}

// Where appends a list predicates to the LearningPathUpdate builder.
func (_u *LearningPathUpdate) Where(ps ...predicate.LearningPath) *LearningPathUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *LearningPathUpdate) SetUserID(v string) *LearningPathUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LearningPathUpdate) SetNillableUserID(v *string) *LearningPathUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *LearningPathUpdate) SetSubjectID(v string) *LearningPathUpdate {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *LearningPathUpdate) SetNillableSubjectID(v *string) *LearningPathUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetNodes sets the "nodes" field.
func (_u *LearningPathUpdate) SetNodes(v []map[string]interface{}) *LearningPathUpdate {
	_u.mutation.SetNodes(v)
	return _u
}

// AppendNodes appends value to the "nodes" field.
func (_u *LearningPathUpdate) AppendNodes(v []map[string]interface{}) *LearningPathUpdate {
	_u.mutation.AppendNodes(v)
	return _u
}

// SetCurrentNodeIndex sets the "current_node_index" field.
func (_u *LearningPathUpdate) SetCurrentNodeIndex(v int) *LearningPathUpdate {
	_u.mutation.ResetCurrentNodeIndex()
	_u.mutation.SetCurrentNodeIndex(v)
	return _u
}

// SetNillableCurrentNodeIndex sets the "current_node_index" field if the given value is not nil.
func (_u *LearningPathUpdate) SetNillableCurrentNodeIndex(v *int) *LearningPathUpdate {
	if v != nil {
		_u.SetCurrentNodeIndex(*v)
	}
	return _u
}

// AddCurrentNodeIndex adds value to the "current_node_index" field.
func (_u *LearningPathUpdate) AddCurrentNodeIndex(v int) *LearningPathUpdate {
	_u.mutation.AddCurrentNodeIndex(v)
	return _u
}

// SetCompletionRate sets the "completion_rate" field.
func (_u *LearningPathUpdate) SetCompletionRate(v float64) *LearningPathUpdate {
	_u.mutation.ResetCompletionRate()
	_u.mutation.SetCompletionRate(v)
	return _u
}

// SetNillableCompletionRate sets the "completion_rate" field if the given value is not nil.
func (_u *LearningPathUpdate) SetNillableCompletionRate(v *float64) *LearningPathUpdate {
	if v != nil {
		_u.SetCompletionRate(*v)
	}
	return _u
}

// AddCompletionRate adds value to the "completion_rate" field.
func (_u *LearningPathUpdate) AddCompletionRate(v float64) *LearningPathUpdate {
	_u.mutation.AddCompletionRate(v)
	return _u
}

// SetAverageScore sets the "average_score" field.
func (_u *LearningPathUpdate) SetAverageScore(v float64) *LearningPathUpdate {
	_u.mutation.ResetAverageScore()
	_u.mutation.SetAverageScore(v)
	return _u
}

// SetNillableAverageScore sets the "average_score" field if the given value is not nil.
func (_u *LearningPathUpdate) SetNillableAverageScore(v *float64) *LearningPathUpdate {
	if v != nil {
		_u.SetAverageScore(*v)
	}
	return _u
}

// AddAverageScore adds value to the "average_score" field.
func (_u *LearningPathUpdate) AddAverageScore(v float64) *LearningPathUpdate {
	_u.mutation.AddAverageScore(v)
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *LearningPathUpdate) SetLastUpdated(v time.Time) *LearningPathUpdate {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_u *LearningPathUpdate) SetNillableLastUpdated(v *time.Time) *LearningPathUpdate {
	if v != nil {
		_u.SetLastUpdated(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *LearningPathUpdate) SetVersion(v int64) *LearningPathUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *LearningPathUpdate) SetNillableVersion(v *int64) *LearningPathUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *LearningPathUpdate) AddVersion(v int64) *LearningPathUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// Mutation returns the LearningPathMutation object of the builder.
func (_u *LearningPathUpdate) Mutation() *LearningPathMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearningPathUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningPathUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearningPathUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningPathUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningPathUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := learningpath.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LearningPath.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := learningpath.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "LearningPath.subject_id": %w`, err)}
		}
	}
	return nil
}

func (_u *LearningPathUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningpath.Table, learningpath.Columns, sqlgraph.NewFieldSpec(learningpath.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(learningpath.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(learningpath.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Nodes(); ok {
		_spec.SetField(learningpath.FieldNodes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedNodes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learningpath.FieldNodes, value)
		})
	}
	if value, ok := _u.mutation.CurrentNodeIndex(); ok {
		_spec.SetField(learningpath.FieldCurrentNodeIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentNodeIndex(); ok {
		_spec.AddField(learningpath.FieldCurrentNodeIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletionRate(); ok {
		_spec.SetField(learningpath.FieldCompletionRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompletionRate(); ok {
		_spec.AddField(learningpath.FieldCompletionRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AverageScore(); ok {
		_spec.SetField(learningpath.FieldAverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAverageScore(); ok {
		_spec.AddField(learningpath.FieldAverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(learningpath.FieldLastUpdated, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(learningpath.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(learningpath.FieldVersion, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningpath.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearningPathUpdateOne is the builder for updating a single LearningPath entity.
type LearningPathUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearningPathMutation
}

// SetUserID sets the "user_id" field.
func (_u *LearningPathUpdateOne) SetUserID(v string) *LearningPathUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LearningPathUpdateOne) SetNillableUserID(v *string) *LearningPathUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *LearningPathUpdateOne) SetSubjectID(v string) *LearningPathUpdateOne {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *LearningPathUpdateOne) SetNillableSubjectID(v *string) *LearningPathUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetNodes sets the "nodes" field.
func (_u *LearningPathUpdateOne) SetNodes(v []map[string]interface{}) *LearningPathUpdateOne {
	_u.mutation.SetNodes(v)
	return _u
}

// AppendNodes appends value to the "nodes" field.
func (_u *LearningPathUpdateOne) AppendNodes(v []map[string]interface{}) *LearningPathUpdateOne {
	_u.mutation.AppendNodes(v)
	return _u
}

// SetCurrentNodeIndex sets the "current_node_index" field.
func (_u *LearningPathUpdateOne) SetCurrentNodeIndex(v int) *LearningPathUpdateOne {
	_u.mutation.ResetCurrentNodeIndex()
	_u.mutation.SetCurrentNodeIndex(v)
	return _u
}

// SetNillableCurrentNodeIndex sets the "current_node_index" field if the given value is not nil.
func (_u *LearningPathUpdateOne) SetNillableCurrentNodeIndex(v *int) *LearningPathUpdateOne {
	if v != nil {
		_u.SetCurrentNodeIndex(*v)
	}
	return _u
}

// AddCurrentNodeIndex adds value to the "current_node_index" field.
func (_u *LearningPathUpdateOne) AddCurrentNodeIndex(v int) *LearningPathUpdateOne {
	_u.mutation.AddCurrentNodeIndex(v)
	return _u
}

// SetCompletionRate sets the "completion_rate" field.
func (_u *LearningPathUpdateOne) SetCompletionRate(v float64) *LearningPathUpdateOne {
	_u.mutation.ResetCompletionRate()
	_u.mutation.SetCompletionRate(v)
	return _u
}

// SetNillableCompletionRate sets the "completion_rate" field if the given value is not nil.
func (_u *LearningPathUpdateOne) SetNillableCompletionRate(v *float64) *LearningPathUpdateOne {
	if v != nil {
		_u.SetCompletionRate(*v)
	}
	return _u
}

// AddCompletionRate adds value to the "completion_rate" field.
func (_u *LearningPathUpdateOne) AddCompletionRate(v float64) *LearningPathUpdateOne {
	_u.mutation.AddCompletionRate(v)
	return _u
}

// SetAverageScore sets the "average_score" field.
func (_u *LearningPathUpdateOne) SetAverageScore(v float64) *LearningPathUpdateOne {
	_u.mutation.ResetAverageScore()
	_u.mutation.SetAverageScore(v)
	return _u
}

// SetNillableAverageScore sets the "average_score" field if the given value is not nil.
func (_u *LearningPathUpdateOne) SetNillableAverageScore(v *float64) *LearningPathUpdateOne {
	if v != nil {
		_u.SetAverageScore(*v)
	}
	return _u
}

// AddAverageScore adds value to the "average_score" field.
func (_u *LearningPathUpdateOne) AddAverageScore(v float64) *LearningPathUpdateOne {
	_u.mutation.AddAverageScore(v)
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *LearningPathUpdateOne) SetLastUpdated(v time.Time) *LearningPathUpdateOne {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_u *LearningPathUpdateOne) SetNillableLastUpdated(v *time.Time) *LearningPathUpdateOne {
	if v != nil {
		_u.SetLastUpdated(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *LearningPathUpdateOne) SetVersion(v int64) *LearningPathUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *LearningPathUpdateOne) SetNillableVersion(v *int64) *LearningPathUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *LearningPathUpdateOne) AddVersion(v int64) *LearningPathUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// Mutation returns the LearningPathMutation object of the builder.
func (_u *LearningPathUpdateOne) Mutation() *LearningPathMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearningPathUpdate builder.
func (_u *LearningPathUpdateOne) Where(ps ...predicate.LearningPath) *LearningPathUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearningPathUpdateOne) Select(field string, fields ...string) *LearningPathUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearningPath entity.
func (_u *LearningPathUpdateOne) Save(ctx context.Context) (*LearningPath, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningPathUpdateOne) SaveX(ctx context.Context) *LearningPath {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearningPathUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningPathUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningPathUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := learningpath.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LearningPath.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := learningpath.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "LearningPath.subject_id": %w`, err)}
		}
	}
	return nil
}

func (_u *LearningPathUpdateOne) sqlSave(ctx context.Context) (_node *LearningPath, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningpath.Table, learningpath.Columns, sqlgraph.NewFieldSpec(learningpath.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearningPath.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learningpath.FieldID)
		for _, f := range fields {
			if !learningpath.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learningpath.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(learningpath.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(learningpath.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Nodes(); ok {
		_spec.SetField(learningpath.FieldNodes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedNodes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learningpath.FieldNodes, value)
		})
	}
	if value, ok := _u.mutation.CurrentNodeIndex(); ok {
		_spec.SetField(learningpath.FieldCurrentNodeIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentNodeIndex(); ok {
		_spec.AddField(learningpath.FieldCurrentNodeIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletionRate(); ok {
		_spec.SetField(learningpath.FieldCompletionRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompletionRate(); ok {
		_spec.AddField(learningpath.FieldCompletionRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AverageScore(); ok {
		_spec.SetField(learningpath.FieldAverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAverageScore(); ok {
		_spec.AddField(learningpath.FieldAverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(learningpath.FieldLastUpdated, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(learningpath.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(learningpath.FieldVersion, field.TypeInt64, value)
	}
	_node = &LearningPath{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningpath.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
