// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/avalder/pathwise/ent/predicate"
	"github.com/avalder/pathwise/ent/reviewevent"
)

// ReviewEventUpdate is the builder for updating ReviewEvent entities.
type ReviewEventUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewEventMutation
}

// Where appends a list predicates to the ReviewEventUpdate builder.
func (_u *ReviewEventUpdate) Where(ps ...predicate.ReviewEvent) *ReviewEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ReviewEventUpdate) SetUserID(v string) *ReviewEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableUserID(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *ReviewEventUpdate) SetConceptID(v string) *ReviewEventUpdate {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableConceptID(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetRating sets the "rating" field.
func (_u *ReviewEventUpdate) SetRating(v string) *ReviewEventUpdate {
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableRating(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// SetLevelAfter sets the "level_after" field.
func (_u *ReviewEventUpdate) SetLevelAfter(v int) *ReviewEventUpdate {
	_u.mutation.ResetLevelAfter()
	_u.mutation.SetLevelAfter(v)
	return _u
}

// SetNillableLevelAfter sets the "level_after" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableLevelAfter(v *int) *ReviewEventUpdate {
	if v != nil {
		_u.SetLevelAfter(*v)
	}
	return _u
}

// AddLevelAfter adds value to the "level_after" field.
func (_u *ReviewEventUpdate) AddLevelAfter(v int) *ReviewEventUpdate {
	_u.mutation.AddLevelAfter(v)
	return _u
}

// SetStreakAfter sets the "streak_after" field.
func (_u *ReviewEventUpdate) SetStreakAfter(v int) *ReviewEventUpdate {
	_u.mutation.ResetStreakAfter()
	_u.mutation.SetStreakAfter(v)
	return _u
}

// SetNillableStreakAfter sets the "streak_after" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableStreakAfter(v *int) *ReviewEventUpdate {
	if v != nil {
		_u.SetStreakAfter(*v)
	}
	return _u
}

// AddStreakAfter adds value to the "streak_after" field.
func (_u *ReviewEventUpdate) AddStreakAfter(v int) *ReviewEventUpdate {
	_u.mutation.AddStreakAfter(v)
	return _u
}

// SetIntervalHours sets the "interval_hours" field.
func (_u *ReviewEventUpdate) SetIntervalHours(v int) *ReviewEventUpdate {
	_u.mutation.ResetIntervalHours()
	_u.mutation.SetIntervalHours(v)
	return _u
}

// SetNillableIntervalHours sets the "interval_hours" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableIntervalHours(v *int) *ReviewEventUpdate {
	if v != nil {
		_u.SetIntervalHours(*v)
	}
	return _u
}

// AddIntervalHours adds value to the "interval_hours" field.
func (_u *ReviewEventUpdate) AddIntervalHours(v int) *ReviewEventUpdate {
	_u.mutation.AddIntervalHours(v)
	return _u
}

// SetScoreDerived sets the "score_derived" field.
func (_u *ReviewEventUpdate) SetScoreDerived(v bool) *ReviewEventUpdate {
	_u.mutation.SetScoreDerived(v)
	return _u
}

// SetNillableScoreDerived sets the "score_derived" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableScoreDerived(v *bool) *ReviewEventUpdate {
	if v != nil {
		_u.SetScoreDerived(*v)
	}
	return _u
}

// Mutation returns the ReviewEventMutation object of the builder.
func (_u *ReviewEventUpdate) Mutation() *ReviewEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewEventUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := reviewevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := reviewevent.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.concept_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rating(); ok {
		if err := reviewevent.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.rating": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewevent.Table, reviewevent.Columns, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(reviewevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(reviewevent.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(reviewevent.FieldRating, field.TypeString, value)
	}
	if value, ok := _u.mutation.LevelAfter(); ok {
		_spec.SetField(reviewevent.FieldLevelAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevelAfter(); ok {
		_spec.AddField(reviewevent.FieldLevelAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StreakAfter(); ok {
		_spec.SetField(reviewevent.FieldStreakAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakAfter(); ok {
		_spec.AddField(reviewevent.FieldStreakAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IntervalHours(); ok {
		_spec.SetField(reviewevent.FieldIntervalHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalHours(); ok {
		_spec.AddField(reviewevent.FieldIntervalHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScoreDerived(); ok {
		_spec.SetField(reviewevent.FieldScoreDerived, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewEventUpdateOne is the builder for updating a single ReviewEvent entity.
type ReviewEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *ReviewEventUpdateOne) SetUserID(v string) *ReviewEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableUserID(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *ReviewEventUpdateOne) SetConceptID(v string) *ReviewEventUpdateOne {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableConceptID(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetRating sets the "rating" field.
func (_u *ReviewEventUpdateOne) SetRating(v string) *ReviewEventUpdateOne {
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableRating(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// SetLevelAfter sets the "level_after" field.
func (_u *ReviewEventUpdateOne) SetLevelAfter(v int) *ReviewEventUpdateOne {
	_u.mutation.ResetLevelAfter()
	_u.mutation.SetLevelAfter(v)
	return _u
}

// SetNillableLevelAfter sets the "level_after" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableLevelAfter(v *int) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetLevelAfter(*v)
	}
	return _u
}

// AddLevelAfter adds value to the "level_after" field.
func (_u *ReviewEventUpdateOne) AddLevelAfter(v int) *ReviewEventUpdateOne {
	_u.mutation.AddLevelAfter(v)
	return _u
}

// SetStreakAfter sets the "streak_after" field.
func (_u *ReviewEventUpdateOne) SetStreakAfter(v int) *ReviewEventUpdateOne {
	_u.mutation.ResetStreakAfter()
	_u.mutation.SetStreakAfter(v)
	return _u
}

// SetNillableStreakAfter sets the "streak_after" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableStreakAfter(v *int) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetStreakAfter(*v)
	}
	return _u
}

// AddStreakAfter adds value to the "streak_after" field.
func (_u *ReviewEventUpdateOne) AddStreakAfter(v int) *ReviewEventUpdateOne {
	_u.mutation.AddStreakAfter(v)
	return _u
}

// SetIntervalHours sets the "interval_hours" field.
func (_u *ReviewEventUpdateOne) SetIntervalHours(v int) *ReviewEventUpdateOne {
	_u.mutation.ResetIntervalHours()
	_u.mutation.SetIntervalHours(v)
	return _u
}

// SetNillableIntervalHours sets the "interval_hours" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableIntervalHours(v *int) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetIntervalHours(*v)
	}
	return _u
}

// AddIntervalHours adds value to the "interval_hours" field.
func (_u *ReviewEventUpdateOne) AddIntervalHours(v int) *ReviewEventUpdateOne {
	_u.mutation.AddIntervalHours(v)
	return _u
}

// SetScoreDerived sets the "score_derived" field.
func (_u *ReviewEventUpdateOne) SetScoreDerived(v bool) *ReviewEventUpdateOne {
	_u.mutation.SetScoreDerived(v)
	return _u
}

// SetNillableScoreDerived sets the "score_derived" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableScoreDerived(v *bool) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetScoreDerived(*v)
	}
	return _u
}

// Mutation returns the ReviewEventMutation object of the builder.
func (_u *ReviewEventUpdateOne) Mutation() *ReviewEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewEventUpdate builder.
func (_u *ReviewEventUpdateOne) Where(ps ...predicate.ReviewEvent) *ReviewEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewEventUpdateOne) Select(field string, fields ...string) *ReviewEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewEvent entity.
func (_u *ReviewEventUpdateOne) Save(ctx context.Context) (*ReviewEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewEventUpdateOne) SaveX(ctx context.Context) *ReviewEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := reviewevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := reviewevent.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.concept_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rating(); ok {
		if err := reviewevent.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.rating": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewEventUpdateOne) sqlSave(ctx context.Context) (_node *ReviewEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewevent.Table, reviewevent.Columns, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewevent.FieldID)
		for _, f := range fields {
			if !reviewevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewevent.FieldID {
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
		_spec.SetField(reviewevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(reviewevent.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(reviewevent.FieldRating, field.TypeString, value)
	}
	if value, ok := _u.mutation.LevelAfter(); ok {
		_spec.SetField(reviewevent.FieldLevelAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevelAfter(); ok {
		_spec.AddField(reviewevent.FieldLevelAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StreakAfter(); ok {
		_spec.SetField(reviewevent.FieldStreakAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakAfter(); ok {
		_spec.AddField(reviewevent.FieldStreakAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IntervalHours(); ok {
		_spec.SetField(reviewevent.FieldIntervalHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalHours(); ok {
		_spec.AddField(reviewevent.FieldIntervalHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScoreDerived(); ok {
		_spec.SetField(reviewevent.FieldScoreDerived, field.TypeBool, value)
	}
	_node = &ReviewEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
