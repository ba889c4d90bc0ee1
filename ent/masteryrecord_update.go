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
	"github.com/avalder/pathwise/ent/masteryrecord"
	"github.com/avalder/pathwise/ent/predicate"
)

// MasteryRecordUpdate is the builder for updating MasteryRecord entities.
type MasteryRecordUpdate struct {
	config
	hooks    []Hook
	mutation *MasteryRecordMutation
}

// Where appends a list predicates to the MasteryRecordUpdate builder.
func (_u *MasteryRecordUpdate) Where(ps ...predicate.MasteryRecord) *MasteryRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *MasteryRecordUpdate) SetUserID(v string) *MasteryRecordUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableUserID(v *string) *MasteryRecordUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *MasteryRecordUpdate) SetConceptID(v string) *MasteryRecordUpdate {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableConceptID(v *string) *MasteryRecordUpdate {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *MasteryRecordUpdate) SetLevel(v int) *MasteryRecordUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableLevel(v *int) *MasteryRecordUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *MasteryRecordUpdate) AddLevel(v int) *MasteryRecordUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_u *MasteryRecordUpdate) SetLastReviewedAt(v time.Time) *MasteryRecordUpdate {
	_u.mutation.SetLastReviewedAt(v)
	return _u
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableLastReviewedAt(v *time.Time) *MasteryRecordUpdate {
	if v != nil {
		_u.SetLastReviewedAt(*v)
	}
	return _u
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (_u *MasteryRecordUpdate) ClearLastReviewedAt() *MasteryRecordUpdate {
	_u.mutation.ClearLastReviewedAt()
	return _u
}

// SetNextReviewAt sets the "next_review_at" field.
func (_u *MasteryRecordUpdate) SetNextReviewAt(v time.Time) *MasteryRecordUpdate {
	_u.mutation.SetNextReviewAt(v)
	return _u
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableNextReviewAt(v *time.Time) *MasteryRecordUpdate {
	if v != nil {
		_u.SetNextReviewAt(*v)
	}
	return _u
}

// ClearNextReviewAt clears the value of the "next_review_at" field.
func (_u *MasteryRecordUpdate) ClearNextReviewAt() *MasteryRecordUpdate {
	_u.mutation.ClearNextReviewAt()
	return _u
}

// SetRetentionStreak sets the "retention_streak" field.
func (_u *MasteryRecordUpdate) SetRetentionStreak(v int) *MasteryRecordUpdate {
	_u.mutation.ResetRetentionStreak()
	_u.mutation.SetRetentionStreak(v)
	return _u
}

// SetNillableRetentionStreak sets the "retention_streak" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableRetentionStreak(v *int) *MasteryRecordUpdate {
	if v != nil {
		_u.SetRetentionStreak(*v)
	}
	return _u
}

// AddRetentionStreak adds value to the "retention_streak" field.
func (_u *MasteryRecordUpdate) AddRetentionStreak(v int) *MasteryRecordUpdate {
	_u.mutation.AddRetentionStreak(v)
	return _u
}

// SetHistory sets the "history" field.
func (_u *MasteryRecordUpdate) SetHistory(v []map[string]interface{}) *MasteryRecordUpdate {
	_u.mutation.SetHistory(v)
	return _u
}

// AppendHistory appends value to the "history" field.
func (_u *MasteryRecordUpdate) AppendHistory(v []map[string]interface{}) *MasteryRecordUpdate {
	_u.mutation.AppendHistory(v)
	return _u
}

// ClearHistory clears the value of the "history" field.
func (_u *MasteryRecordUpdate) ClearHistory() *MasteryRecordUpdate {
	_u.mutation.ClearHistory()
	return _u
}

// SetVersion sets the "version" field.
func (_u *MasteryRecordUpdate) SetVersion(v int64) *MasteryRecordUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableVersion(v *int64) *MasteryRecordUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *MasteryRecordUpdate) AddVersion(v int64) *MasteryRecordUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// Mutation returns the MasteryRecordMutation object of the builder.
func (_u *MasteryRecordUpdate) Mutation() *MasteryRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MasteryRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MasteryRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryRecordUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := masteryrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := masteryrecord.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.concept_id": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryrecord.Table, masteryrecord.Columns, sqlgraph.NewFieldSpec(masteryrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(masteryrecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(masteryrecord.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(masteryrecord.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(masteryrecord.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastReviewedAt(); ok {
		_spec.SetField(masteryrecord.FieldLastReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedAtCleared() {
		_spec.ClearField(masteryrecord.FieldLastReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NextReviewAt(); ok {
		_spec.SetField(masteryrecord.FieldNextReviewAt, field.TypeTime, value)
	}
	if _u.mutation.NextReviewAtCleared() {
		_spec.ClearField(masteryrecord.FieldNextReviewAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RetentionStreak(); ok {
		_spec.SetField(masteryrecord.FieldRetentionStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetentionStreak(); ok {
		_spec.AddField(masteryrecord.FieldRetentionStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.History(); ok {
		_spec.SetField(masteryrecord.FieldHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, masteryrecord.FieldHistory, value)
		})
	}
	if _u.mutation.HistoryCleared() {
		_spec.ClearField(masteryrecord.FieldHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(masteryrecord.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(masteryrecord.FieldVersion, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MasteryRecordUpdateOne is the builder for updating a single MasteryRecord entity.
type MasteryRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MasteryRecordMutation
}

// SetUserID sets the "user_id" field.
func (_u *MasteryRecordUpdateOne) SetUserID(v string) *MasteryRecordUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableUserID(v *string) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *MasteryRecordUpdateOne) SetConceptID(v string) *MasteryRecordUpdateOne {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableConceptID(v *string) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *MasteryRecordUpdateOne) SetLevel(v int) *MasteryRecordUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableLevel(v *int) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *MasteryRecordUpdateOne) AddLevel(v int) *MasteryRecordUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_u *MasteryRecordUpdateOne) SetLastReviewedAt(v time.Time) *MasteryRecordUpdateOne {
	_u.mutation.SetLastReviewedAt(v)
	return _u
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableLastReviewedAt(v *time.Time) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetLastReviewedAt(*v)
	}
	return _u
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (_u *MasteryRecordUpdateOne) ClearLastReviewedAt() *MasteryRecordUpdateOne {
	_u.mutation.ClearLastReviewedAt()
	return _u
}

// SetNextReviewAt sets the "next_review_at" field.
func (_u *MasteryRecordUpdateOne) SetNextReviewAt(v time.Time) *MasteryRecordUpdateOne {
	_u.mutation.SetNextReviewAt(v)
	return _u
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableNextReviewAt(v *time.Time) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetNextReviewAt(*v)
	}
	return _u
}

// ClearNextReviewAt clears the value of the "next_review_at" field.
func (_u *MasteryRecordUpdateOne) ClearNextReviewAt() *MasteryRecordUpdateOne {
	_u.mutation.ClearNextReviewAt()
	return _u
}

// SetRetentionStreak sets the "retention_streak" field.
func (_u *MasteryRecordUpdateOne) SetRetentionStreak(v int) *MasteryRecordUpdateOne {
	_u.mutation.ResetRetentionStreak()
	_u.mutation.SetRetentionStreak(v)
	return _u
}

// SetNillableRetentionStreak sets the "retention_streak" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableRetentionStreak(v *int) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetRetentionStreak(*v)
	}
	return _u
}

// AddRetentionStreak adds value to the "retention_streak" field.
func (_u *MasteryRecordUpdateOne) AddRetentionStreak(v int) *MasteryRecordUpdateOne {
	_u.mutation.AddRetentionStreak(v)
	return _u
}

// SetHistory sets the "history" field.
func (_u *MasteryRecordUpdateOne) SetHistory(v []map[string]interface{}) *MasteryRecordUpdateOne {
	_u.mutation.SetHistory(v)
	return _u
}

// AppendHistory appends value to the "history" field.
func (_u *MasteryRecordUpdateOne) AppendHistory(v []map[string]interface{}) *MasteryRecordUpdateOne {
	_u.mutation.AppendHistory(v)
	return _u
}

// ClearHistory clears the value of the "history" field.
func (_u *MasteryRecordUpdateOne) ClearHistory() *MasteryRecordUpdateOne {
	_u.mutation.ClearHistory()
	return _u
}

// SetVersion sets the "version" field.
func (_u *MasteryRecordUpdateOne) SetVersion(v int64) *MasteryRecordUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableVersion(v *int64) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *MasteryRecordUpdateOne) AddVersion(v int64) *MasteryRecordUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// Mutation returns the MasteryRecordMutation object of the builder.
func (_u *MasteryRecordUpdateOne) Mutation() *MasteryRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the MasteryRecordUpdate builder.
func (_u *MasteryRecordUpdateOne) Where(ps ...predicate.MasteryRecord) *MasteryRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MasteryRecordUpdateOne) Select(field string, fields ...string) *MasteryRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MasteryRecord entity.
func (_u *MasteryRecordUpdateOne) Save(ctx context.Context) (*MasteryRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryRecordUpdateOne) SaveX(ctx context.Context) *MasteryRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MasteryRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryRecordUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := masteryrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := masteryrecord.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.concept_id": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryRecordUpdateOne) sqlSave(ctx context.Context) (_node *MasteryRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryrecord.Table, masteryrecord.Columns, sqlgraph.NewFieldSpec(masteryrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MasteryRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, masteryrecord.FieldID)
		for _, f := range fields {
			if !masteryrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != masteryrecord.FieldID {
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
		_spec.SetField(masteryrecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(masteryrecord.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(masteryrecord.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(masteryrecord.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastReviewedAt(); ok {
		_spec.SetField(masteryrecord.FieldLastReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedAtCleared() {
		_spec.ClearField(masteryrecord.FieldLastReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NextReviewAt(); ok {
		_spec.SetField(masteryrecord.FieldNextReviewAt, field.TypeTime, value)
	}
	if _u.mutation.NextReviewAtCleared() {
		_spec.ClearField(masteryrecord.FieldNextReviewAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RetentionStreak(); ok {
		_spec.SetField(masteryrecord.FieldRetentionStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetentionStreak(); ok {
		_spec.AddField(masteryrecord.FieldRetentionStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.History(); ok {
		_spec.SetField(masteryrecord.FieldHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, masteryrecord.FieldHistory, value)
		})
	}
	if _u.mutation.HistoryCleared() {
		_spec.ClearField(masteryrecord.FieldHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(masteryrecord.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(masteryrecord.FieldVersion, field.TypeInt64, value)
	}
	_node = &MasteryRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
