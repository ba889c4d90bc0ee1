// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/avalder/pathwise/ent/learningpath"
)

// LearningPathCreate is the builder for creating a LearningPath entity.
type LearningPathCreate struct {
	config
	mutation *LearningPathMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *LearningPathCreate) SetUserID(v string) *LearningPathCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSubjectID sets the "subject_id" field.
func (_c *LearningPathCreate) SetSubjectID(v string) *LearningPathCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetNodes sets the "nodes" field.
func (_c *LearningPathCreate) SetNodes(v []map[string]interface{}) *LearningPathCreate {
	_c.mutation.SetNodes(v)
	return _c
}

// SetCurrentNodeIndex sets the "current_node_index" field.
func (_c *LearningPathCreate) SetCurrentNodeIndex(v int) *LearningPathCreate {
	_c.mutation.SetCurrentNodeIndex(v)
	return _c
}

// SetNillableCurrentNodeIndex sets the "current_node_index" field if the given value is not nil.
func (_c *LearningPathCreate) SetNillableCurrentNodeIndex(v *int) *LearningPathCreate {
	if v != nil {
		_c.SetCurrentNodeIndex(*v)
	}
	return _c
}

// SetCompletionRate sets the "completion_rate" field.
func (_c *LearningPathCreate) SetCompletionRate(v float64) *LearningPathCreate {
	_c.mutation.SetCompletionRate(v)
	return _c
}

// SetNillableCompletionRate sets the "completion_rate" field if the given value is not nil.
func (_c *LearningPathCreate) SetNillableCompletionRate(v *float64) *LearningPathCreate {
	if v != nil {
		_c.SetCompletionRate(*v)
	}
	return _c
}

// SetAverageScore sets the "average_score" field.
func (_c *LearningPathCreate) SetAverageScore(v float64) *LearningPathCreate {
	_c.mutation.SetAverageScore(v)
	return _c
}

// SetNillableAverageScore sets the "average_score" field if the given value is not nil.
func (_c *LearningPathCreate) SetNillableAverageScore(v *float64) *LearningPathCreate {
	if v != nil {
		_c.SetAverageScore(*v)
	}
	return _c
}

// SetLastUpdated sets the "last_updated" field.
func (_c *LearningPathCreate) SetLastUpdated(v time.Time) *LearningPathCreate {
	_c.mutation.SetLastUpdated(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *LearningPathCreate) SetVersion(v int64) *LearningPathCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *LearningPathCreate) SetNillableVersion(v *int64) *LearningPathCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// Mutation returns the LearningPathMutation object of the builder.
func (_c *LearningPathCreate) Mutation() *LearningPathMutation {
	return _c.mutation
}

// Save creates the LearningPath in the database.
func (_c *LearningPathCreate) Save(ctx context.Context) (*LearningPath, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearningPathCreate) SaveX(ctx context.Context) *LearningPath {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningPathCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningPathCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearningPathCreate) defaults() {
	if _, ok := _c.mutation.CurrentNodeIndex(); !ok {
		v := learningpath.DefaultCurrentNodeIndex
		_c.mutation.SetCurrentNodeIndex(v)
	}
	if _, ok := _c.mutation.CompletionRate(); !ok {
		v := learningpath.DefaultCompletionRate
		_c.mutation.SetCompletionRate(v)
	}
	if _, ok := _c.mutation.AverageScore(); !ok {
		v := learningpath.DefaultAverageScore
		_c.mutation.SetAverageScore(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := learningpath.DefaultVersion
		_c.mutation.SetVersion(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearningPathCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "LearningPath.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := learningpath.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LearningPath.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubjectID(); !ok {
		return &ValidationError{Name: "subject_id", err: errors.New(`ent: missing required field "LearningPath.subject_id"`)}
	}
	if v, ok := _c.mutation.SubjectID(); ok {
		if err := learningpath.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "LearningPath.subject_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Nodes(); !ok {
		return &ValidationError{Name: "nodes", err: errors.New(`ent: missing required field "LearningPath.nodes"`)}
	}
	if _, ok := _c.mutation.CurrentNodeIndex(); !ok {
		return &ValidationError{Name: "current_node_index", err: errors.New(`ent: missing required field "LearningPath.current_node_index"`)}
	}
	if _, ok := _c.mutation.CompletionRate(); !ok {
		return &ValidationError{Name: "completion_rate", err: errors.New(`ent: missing required field "LearningPath.completion_rate"`)}
	}
	if _, ok := _c.mutation.AverageScore(); !ok {
		return &ValidationError{Name: "average_score", err: errors.New(`ent: missing required field "LearningPath.average_score"`)}
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		return &ValidationError{Name: "last_updated", err: errors.New(`ent: missing required field "LearningPath.last_updated"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "LearningPath.version"`)}
	}
	return nil
}

func (_c *LearningPathCreate) sqlSave(ctx context.Context) (*LearningPath, error) {
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

func (_c *LearningPathCreate) createSpec() (*LearningPath, *sqlgraph.CreateSpec) {
	var (
		_node = &LearningPath{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learningpath.Table, sqlgraph.NewFieldSpec(learningpath.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(learningpath.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SubjectID(); ok {
		_spec.SetField(learningpath.FieldSubjectID, field.TypeString, value)
		_node.SubjectID = value
	}
	if value, ok := _c.mutation.Nodes(); ok {
		_spec.SetField(learningpath.FieldNodes, field.TypeJSON, value)
		_node.Nodes = value
	}
	if value, ok := _c.mutation.CurrentNodeIndex(); ok {
		_spec.SetField(learningpath.FieldCurrentNodeIndex, field.TypeInt, value)
		_node.CurrentNodeIndex = value
	}
	if value, ok := _c.mutation.CompletionRate(); ok {
		_spec.SetField(learningpath.FieldCompletionRate, field.TypeFloat64, value)
		_node.CompletionRate = value
	}
	if value, ok := _c.mutation.AverageScore(); ok {
		_spec.SetField(learningpath.FieldAverageScore, field.TypeFloat64, value)
		_node.AverageScore = value
	}
	if value, ok := _c.mutation.LastUpdated(); ok {
		_spec.SetField(learningpath.FieldLastUpdated, field.TypeTime, value)
		_node.LastUpdated = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(learningpath.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	return _node, _spec
}

// LearningPathCreateBulk is the builder for creating many LearningPath entities in bulk.
type LearningPathCreateBulk struct {
	config
	err      error
	builders []*LearningPathCreate
}

// Save creates the LearningPath entities in the database.
func (_c *LearningPathCreateBulk) Save(ctx context.Context) ([]*LearningPath, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearningPath, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearningPathMutation)
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
func (_c *LearningPathCreateBulk) SaveX(ctx context.Context) []*LearningPath {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningPathCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningPathCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
