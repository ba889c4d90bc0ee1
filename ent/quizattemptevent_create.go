// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/avalder/pathwise/ent/quizattemptevent"
)

// QuizAttemptEventCreate is the builder for creating a QuizAttemptEvent entity.
type QuizAttemptEventCreate struct {
	config
	mutation *QuizAttemptEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *QuizAttemptEventCreate) SetSequence(v int64) *QuizAttemptEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *QuizAttemptEventCreate) SetTimestamp(v time.Time) *QuizAttemptEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *QuizAttemptEventCreate) SetNillableTimestamp(v *time.Time) *QuizAttemptEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetAttemptID sets the "attempt_id" field.
func (_c *QuizAttemptEventCreate) SetAttemptID(v string) *QuizAttemptEventCreate {
	_c.mutation.SetAttemptID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *QuizAttemptEventCreate) SetUserID(v string) *QuizAttemptEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSubjectID sets the "subject_id" field.
func (_c *QuizAttemptEventCreate) SetSubjectID(v string) *QuizAttemptEventCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetQuizID sets the "quiz_id" field.
func (_c *QuizAttemptEventCreate) SetQuizID(v string) *QuizAttemptEventCreate {
	_c.mutation.SetQuizID(v)
	return _c
}

// SetAnswers sets the "answers" field.
func (_c *QuizAttemptEventCreate) SetAnswers(v []int) *QuizAttemptEventCreate {
	_c.mutation.SetAnswers(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *QuizAttemptEventCreate) SetScore(v float64) *QuizAttemptEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *QuizAttemptEventCreate) SetCompletedAt(v time.Time) *QuizAttemptEventCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// Mutation returns the QuizAttemptEventMutation object of the builder.
func (_c *QuizAttemptEventCreate) Mutation() *QuizAttemptEventMutation {
	return _c.mutation
}

// Save creates the QuizAttemptEvent in the database.
func (_c *QuizAttemptEventCreate) Save(ctx context.Context) (*QuizAttemptEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizAttemptEventCreate) SaveX(ctx context.Context) *QuizAttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizAttemptEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizAttemptEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuizAttemptEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := quizattemptevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizAttemptEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "QuizAttemptEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "QuizAttemptEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.AttemptID(); !ok {
		return &ValidationError{Name: "attempt_id", err: errors.New(`ent: missing required field "QuizAttemptEvent.attempt_id"`)}
	}
	if v, ok := _c.mutation.AttemptID(); ok {
		if err := quizattemptevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "QuizAttemptEvent.attempt_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "QuizAttemptEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := quizattemptevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "QuizAttemptEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubjectID(); !ok {
		return &ValidationError{Name: "subject_id", err: errors.New(`ent: missing required field "QuizAttemptEvent.subject_id"`)}
	}
	if v, ok := _c.mutation.SubjectID(); ok {
		if err := quizattemptevent.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "QuizAttemptEvent.subject_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuizID(); !ok {
		return &ValidationError{Name: "quiz_id", err: errors.New(`ent: missing required field "QuizAttemptEvent.quiz_id"`)}
	}
	if v, ok := _c.mutation.QuizID(); ok {
		if err := quizattemptevent.QuizIDValidator(v); err != nil {
			return &ValidationError{Name: "quiz_id", err: fmt.Errorf(`ent: validator failed for field "QuizAttemptEvent.quiz_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "QuizAttemptEvent.score"`)}
	}
	if _, ok := _c.mutation.CompletedAt(); !ok {
		return &ValidationError{Name: "completed_at", err: errors.New(`ent: missing required field "QuizAttemptEvent.completed_at"`)}
	}
	return nil
}

func (_c *QuizAttemptEventCreate) sqlSave(ctx context.Context) (*QuizAttemptEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuizAttemptEventCreate) createSpec() (*QuizAttemptEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizAttemptEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quizattemptevent.Table, sqlgraph.NewFieldSpec(quizattemptevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(quizattemptevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(quizattemptevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.AttemptID(); ok {
		_spec.SetField(quizattemptevent.FieldAttemptID, field.TypeString, value)
		_node.AttemptID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(quizattemptevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SubjectID(); ok {
		_spec.SetField(quizattemptevent.FieldSubjectID, field.TypeString, value)
		_node.SubjectID = value
	}
	if value, ok := _c.mutation.QuizID(); ok {
		_spec.SetField(quizattemptevent.FieldQuizID, field.TypeString, value)
		_node.QuizID = value
	}
	if value, ok := _c.mutation.Answers(); ok {
		_spec.SetField(quizattemptevent.FieldAnswers, field.TypeJSON, value)
		_node.Answers = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(quizattemptevent.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(quizattemptevent.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = value
	}
	return _node, _spec
}

// QuizAttemptEventCreateBulk is the builder for creating many QuizAttemptEvent entities in bulk.
type QuizAttemptEventCreateBulk struct {
	config
	err      error
	builders []*QuizAttemptEventCreate
}

// Save creates the QuizAttemptEvent entities in the database.
func (_c *QuizAttemptEventCreateBulk) Save(ctx context.Context) ([]*QuizAttemptEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuizAttemptEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizAttemptEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *QuizAttemptEventCreateBulk) SaveX(ctx context.Context) []*QuizAttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizAttemptEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizAttemptEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
