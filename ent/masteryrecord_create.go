// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/avalder/pathwise/ent/masteryrecord"
)

// MasteryRecordCreate is the builder for creating a MasteryRecord entity.
type MasteryRecordCreate struct {
	config
	mutation *MasteryRecordMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *MasteryRecordCreate) SetUserID(v string) *MasteryRecordCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetConceptID sets the "concept_id" field.
func (_c *MasteryRecordCreate) SetConceptID(v string) *MasteryRecordCreate {
	_c.mutation.SetConceptID(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *MasteryRecordCreate) SetLevel(v int) *MasteryRecordCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableLevel(v *int) *MasteryRecordCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_c *MasteryRecordCreate) SetLastReviewedAt(v time.Time) *MasteryRecordCreate {
	_c.mutation.SetLastReviewedAt(v)
	return _c
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableLastReviewedAt(v *time.Time) *MasteryRecordCreate {
	if v != nil {
		_c.SetLastReviewedAt(*v)
	}
	return _c
}

// SetNextReviewAt sets the "next_review_at" field.
func (_c *MasteryRecordCreate) SetNextReviewAt(v time.Time) *MasteryRecordCreate {
	_c.mutation.SetNextReviewAt(v)
	return _c
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableNextReviewAt(v *time.Time) *MasteryRecordCreate {
	if v != nil {
		_c.SetNextReviewAt(*v)
	}
	return _c
}

// SetRetentionStreak sets the "retention_streak" field.
func (_c *MasteryRecordCreate) SetRetentionStreak(v int) *MasteryRecordCreate {
	_c.mutation.SetRetentionStreak(v)
	return _c
}

// SetNillableRetentionStreak sets the "retention_streak" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableRetentionStreak(v *int) *MasteryRecordCreate {
	if v != nil {
		_c.SetRetentionStreak(*v)
	}
	return _c
}

// SetHistory sets the "history" field.
func (_c *MasteryRecordCreate) SetHistory(v []map[string]interface{}) *MasteryRecordCreate {
	_c.mutation.SetHistory(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *MasteryRecordCreate) SetVersion(v int64) *MasteryRecordCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableVersion(v *int64) *MasteryRecordCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// Mutation returns the MasteryRecordMutation object of the builder.
func (_c *MasteryRecordCreate) Mutation() *MasteryRecordMutation {
	return _c.mutation
}

// Save creates the MasteryRecord in the database.
func (_c *MasteryRecordCreate) Save(ctx context.Context) (*MasteryRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MasteryRecordCreate) SaveX(ctx context.Context) *MasteryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MasteryRecordCreate) defaults() {
	if _, ok := _c.mutation.Level(); !ok {
		v := masteryrecord.DefaultLevel
		_c.mutation.SetLevel(v)
	}
	if _, ok := _c.mutation.RetentionStreak(); !ok {
		v := masteryrecord.DefaultRetentionStreak
		_c.mutation.SetRetentionStreak(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := masteryrecord.DefaultVersion
		_c.mutation.SetVersion(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MasteryRecordCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "MasteryRecord.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := masteryrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConceptID(); !ok {
		return &ValidationError{Name: "concept_id", err: errors.New(`ent: missing required field "MasteryRecord.concept_id"`)}
	}
	if v, ok := _c.mutation.ConceptID(); ok {
		if err := masteryrecord.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.concept_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "MasteryRecord.level"`)}
	}
	if _, ok := _c.mutation.RetentionStreak(); !ok {
		return &ValidationError{Name: "retention_streak", err: errors.New(`ent: missing required field "MasteryRecord.retention_streak"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "MasteryRecord.version"`)}
	}
	return nil
}

func (_c *MasteryRecordCreate) sqlSave(ctx context.Context) (*MasteryRecord, error) {
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

func (_c *MasteryRecordCreate) createSpec() (*MasteryRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &MasteryRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(masteryrecord.Table, sqlgraph.NewFieldSpec(masteryrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(masteryrecord.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ConceptID(); ok {
		_spec.SetField(masteryrecord.FieldConceptID, field.TypeString, value)
		_node.ConceptID = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(masteryrecord.FieldLevel, field.TypeInt, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.LastReviewedAt(); ok {
		_spec.SetField(masteryrecord.FieldLastReviewedAt, field.TypeTime, value)
		_node.LastReviewedAt = value
	}
	if value, ok := _c.mutation.NextReviewAt(); ok {
		_spec.SetField(masteryrecord.FieldNextReviewAt, field.TypeTime, value)
		_node.NextReviewAt = &value
	}
	if value, ok := _c.mutation.RetentionStreak(); ok {
		_spec.SetField(masteryrecord.FieldRetentionStreak, field.TypeInt, value)
		_node.RetentionStreak = value
	}
	if value, ok := _c.mutation.History(); ok {
		_spec.SetField(masteryrecord.FieldHistory, field.TypeJSON, value)
		_node.History = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(masteryrecord.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	return _node, _spec
}

// MasteryRecordCreateBulk is the builder for creating many MasteryRecord entities in bulk.
type MasteryRecordCreateBulk struct {
	config
	err      error
	builders []*MasteryRecordCreate
}

// Save creates the MasteryRecord entities in the database.
func (_c *MasteryRecordCreateBulk) Save(ctx context.Context) ([]*MasteryRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MasteryRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MasteryRecordMutation)
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
func (_c *MasteryRecordCreateBulk) SaveX(ctx context.Context) []*MasteryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
