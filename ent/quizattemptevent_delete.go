// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/avalder/pathwise/ent/predicate"
	"github.com/avalder/pathwise/ent/quizattemptevent"
)

// QuizAttemptEventDelete is the builder for deleting a QuizAttemptEvent entity.
type QuizAttemptEventDelete struct {
	config
	hooks    []Hook
	mutation *QuizAttemptEventMutation
}

// Where appends a list predicates to the QuizAttemptEventDelete builder.
func (_d *QuizAttemptEventDelete) Where(ps ...predicate.QuizAttemptEvent) *QuizAttemptEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *QuizAttemptEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *QuizAttemptEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *QuizAttemptEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(quizattemptevent.Table, sqlgraph.NewFieldSpec(quizattemptevent.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// QuizAttemptEventDeleteOne is the builder for deleting a single QuizAttemptEvent entity.
type QuizAttemptEventDeleteOne struct {
	_d *QuizAttemptEventDelete
}

// Where appends a list predicates to the QuizAttemptEventDelete builder.
func (_d *QuizAttemptEventDeleteOne) Where(ps ...predicate.QuizAttemptEvent) *QuizAttemptEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *QuizAttemptEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{quizattemptevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *QuizAttemptEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
