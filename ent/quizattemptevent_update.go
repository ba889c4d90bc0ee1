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
	"github.com/avalder/pathwise/ent/predicate"
	"github.com/avalder/pathwise/ent/quizattemptevent"
)

// QuizAttemptEventUpdate is the builder for updating QuizAttemptEvent entities.
type QuizAttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *QuizAttemptEventMutation
}

// Where appends a list predicates to the QuizAttemptEventUpdate builder.
func (_u *QuizAttemptEventUpdate) Where(ps ...predicate.QuizAttemptEvent) *QuizAttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAttemptID sets the "attempt_id" field.
func (_u *QuizAttemptEventUpdate) SetAttemptID(v string) *QuizAttemptEventUpdate {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *QuizAttemptEventUpdate) SetNillableAttemptID(v *string) *QuizAttemptEventUpdate {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *QuizAttemptEventUpdate) SetUserID(v string) *QuizAttemptEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *QuizAttemptEventUpdate) SetNillableUserID(v *string) *QuizAttemptEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *QuizAttemptEventUpdate) SetSubjectID(v string) *QuizAttemptEventUpdate {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *QuizAttemptEventUpdate) SetNillableSubjectID(v *string) *QuizAttemptEventUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetQuizID sets the "quiz_id" field.
func (_u *QuizAttemptEventUpdate) SetQuizID(v string) *QuizAttemptEventUpdate {
	_u.mutation.SetQuizID(v)
	return _u
}

// SetNillableQuizID sets the "quiz_id" field if the given value is not nil.
func (_u *QuizAttemptEventUpdate) SetNillableQuizID(v *string) *QuizAttemptEventUpdate {
	if v != nil {
		_u.SetQuizID(*v)
	}
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *QuizAttemptEventUpdate) SetAnswers(v []int) *QuizAttemptEventUpdate {
	_u.mutation.SetAnswers(v)
	return _u
}

// AppendAnswers appends value to the "answers" field.
func (_u *QuizAttemptEventUpdate) AppendAnswers(v []int) *QuizAttemptEventUpdate {
	_u.mutation.AppendAnswers(v)
	return _u
}

// ClearAnswers clears the value of the "answers" field.
func (_u *QuizAttemptEventUpdate) ClearAnswers() *QuizAttemptEventUpdate {
	_u.mutation.ClearAnswers()
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizAttemptEventUpdate) SetScore(v float64) *QuizAttemptEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizAttemptEventUpdate) SetNillableScore(v *float64) *QuizAttemptEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizAttemptEventUpdate) AddScore(v float64) *QuizAttemptEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *QuizAttemptEventUpdate) SetCompletedAt(v time.Time) *QuizAttemptEventUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *QuizAttemptEventUpdate) SetNillableCompletedAt(v *time.Time) *QuizAttemptEventUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// Mutation returns the QuizAttemptEventMutation object of the builder.
func (_u *QuizAttemptEventUpdate) Mutation() *QuizAttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizAttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizAttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizAttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizAttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizAttemptEventUpdate) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := quizattemptevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "QuizAttemptEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := quizattemptevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "QuizAttemptEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := quizattemptevent.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "QuizAttemptEvent.subject_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuizID(); ok {
		if err := quizattemptevent.QuizIDValidator(v); err != nil {
			return &ValidationError{Name: "quiz_id", err: fmt.Errorf(`ent: validator failed for field "QuizAttemptEvent.quiz_id": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizAttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizattemptevent.Table, quizattemptevent.Columns, sqlgraph.NewFieldSpec(quizattemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(quizattemptevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(quizattemptevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(quizattemptevent.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizID(); ok {
		_spec.SetField(quizattemptevent.FieldQuizID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(quizattemptevent.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizattemptevent.FieldAnswers, value)
		})
	}
	if _u.mutation.AnswersCleared() {
		_spec.ClearField(quizattemptevent.FieldAnswers, field.TypeJSON)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizattemptevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizattemptevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(quizattemptevent.FieldCompletedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizattemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizAttemptEventUpdateOne is the builder for updating a single QuizAttemptEvent entity.
type QuizAttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizAttemptEventMutation
}

// SetAttemptID sets the "attempt_id" field.
func (_u *QuizAttemptEventUpdateOne) SetAttemptID(v string) *QuizAttemptEventUpdateOne {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *QuizAttemptEventUpdateOne) SetNillableAttemptID(v *string) *QuizAttemptEventUpdateOne {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *QuizAttemptEventUpdateOne) SetUserID(v string) *QuizAttemptEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *QuizAttemptEventUpdateOne) SetNillableUserID(v *string) *QuizAttemptEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *QuizAttemptEventUpdateOne) SetSubjectID(v string) *QuizAttemptEventUpdateOne {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *QuizAttemptEventUpdateOne) SetNillableSubjectID(v *string) *QuizAttemptEventUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetQuizID sets the "quiz_id" field.
func (_u *QuizAttemptEventUpdateOne) SetQuizID(v string) *QuizAttemptEventUpdateOne {
	_u.mutation.SetQuizID(v)
	return _u
}

// SetNillableQuizID sets the "quiz_id" field if the given value is not nil.
func (_u *QuizAttemptEventUpdateOne) SetNillableQuizID(v *string) *QuizAttemptEventUpdateOne {
	if v != nil {
		_u.SetQuizID(*v)
	}
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *QuizAttemptEventUpdateOne) SetAnswers(v []int) *QuizAttemptEventUpdateOne {
	_u.mutation.SetAnswers(v)
	return _u
}

// AppendAnswers appends value to the "answers" field.
func (_u *QuizAttemptEventUpdateOne) AppendAnswers(v []int) *QuizAttemptEventUpdateOne {
	_u.mutation.AppendAnswers(v)
	return _u
}

// ClearAnswers clears the value of the "answers" field.
func (_u *QuizAttemptEventUpdateOne) ClearAnswers() *QuizAttemptEventUpdateOne {
	_u.mutation.ClearAnswers()
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizAttemptEventUpdateOne) SetScore(v float64) *QuizAttemptEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizAttemptEventUpdateOne) SetNillableScore(v *float64) *QuizAttemptEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizAttemptEventUpdateOne) AddScore(v float64) *QuizAttemptEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *QuizAttemptEventUpdateOne) SetCompletedAt(v time.Time) *QuizAttemptEventUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *QuizAttemptEventUpdateOne) SetNillableCompletedAt(v *time.Time) *QuizAttemptEventUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// Mutation returns the QuizAttemptEventMutation object of the builder.
func (_u *QuizAttemptEventUpdateOne) Mutation() *QuizAttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizAttemptEventUpdate builder.
func (_u *QuizAttemptEventUpdateOne) Where(ps ...predicate.QuizAttemptEvent) *QuizAttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizAttemptEventUpdateOne) Select(field string, fields ...string) *QuizAttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizAttemptEvent entity.
func (_u *QuizAttemptEventUpdateOne) Save(ctx context.Context) (*QuizAttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizAttemptEventUpdateOne) SaveX(ctx context.Context) *QuizAttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizAttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizAttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizAttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := quizattemptevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "QuizAttemptEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := quizattemptevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "QuizAttemptEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := quizattemptevent.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "QuizAttemptEvent.subject_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuizID(); ok {
		if err := quizattemptevent.QuizIDValidator(v); err != nil {
			return &ValidationError{Name: "quiz_id", err: fmt.Errorf(`ent: validator failed for field "QuizAttemptEvent.quiz_id": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizAttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *QuizAttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizattemptevent.Table, quizattemptevent.Columns, sqlgraph.NewFieldSpec(quizattemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizAttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizattemptevent.FieldID)
		for _, f := range fields {
			if !quizattemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizattemptevent.FieldID {
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
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(quizattemptevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(quizattemptevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(quizattemptevent.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizID(); ok {
		_spec.SetField(quizattemptevent.FieldQuizID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(quizattemptevent.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizattemptevent.FieldAnswers, value)
		})
	}
	if _u.mutation.AnswersCleared() {
		_spec.ClearField(quizattemptevent.FieldAnswers, field.TypeJSON)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizattemptevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizattemptevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(quizattemptevent.FieldCompletedAt, field.TypeTime, value)
	}
	_node = &QuizAttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizattemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
