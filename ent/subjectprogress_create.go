// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/avalder/pathwise/ent/subjectprogress"
)

// SubjectProgressCreate is the builder for creating a SubjectProgress entity.
type SubjectProgressCreate struct {
	config
	mutation *SubjectProgressMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *SubjectProgressCreate) SetUserID(v string) *SubjectProgressCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSubjectID sets the "subject_id" field.
func (_c *SubjectProgressCreate) SetSubjectID(v string) *SubjectProgressCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetProgressPercentage sets the "progress_percentage" field.
func (_c *SubjectProgressCreate) SetProgressPercentage(v float64) *SubjectProgressCreate {
	_c.mutation.SetProgressPercentage(v)
	return _c
}

// SetNillableProgressPercentage sets the "progress_percentage" field if the given value is not nil.
func (_c *SubjectProgressCreate) SetNillableProgressPercentage(v *float64) *SubjectProgressCreate {
	if v != nil {
		_c.SetProgressPercentage(*v)
	}
	return _c
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_c *SubjectProgressCreate) SetLastActivityAt(v time.Time) *SubjectProgressCreate {
	_c.mutation.SetLastActivityAt(v)
	return _c
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_c *SubjectProgressCreate) SetNillableLastActivityAt(v *time.Time) *SubjectProgressCreate {
	if v != nil {
		_c.SetLastActivityAt(*v)
	}
	return _c
}

// SetCompletedContentIds sets the "completed_content_ids" field.
func (_c *SubjectProgressCreate) SetCompletedContentIds(v []string) *SubjectProgressCreate {
	_c.mutation.SetCompletedContentIds(v)
	return _c
}

// SetQuizScores sets the "quiz_scores" field.
func (_c *SubjectProgressCreate) SetQuizScores(v map[string]float64) *SubjectProgressCreate {
	_c.mutation.SetQuizScores(v)
	return _c
}

// SetStudyStreakDays sets the "study_streak_days" field.
func (_c *SubjectProgressCreate) SetStudyStreakDays(v int) *SubjectProgressCreate {
	_c.mutation.SetStudyStreakDays(v)
	return _c
}

// SetNillableStudyStreakDays sets the "study_streak_days" field if the given value is not nil.
func (_c *SubjectProgressCreate) SetNillableStudyStreakDays(v *int) *SubjectProgressCreate {
	if v != nil {
		_c.SetStudyStreakDays(*v)
	}
	return _c
}

// SetStudyMinutes sets the "study_minutes" field.
func (_c *SubjectProgressCreate) SetStudyMinutes(v int) *SubjectProgressCreate {
	_c.mutation.SetStudyMinutes(v)
	return _c
}

// SetNillableStudyMinutes sets the "study_minutes" field if the given value is not nil.
func (_c *SubjectProgressCreate) SetNillableStudyMinutes(v *int) *SubjectProgressCreate {
	if v != nil {
		_c.SetStudyMinutes(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *SubjectProgressCreate) SetVersion(v int64) *SubjectProgressCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *SubjectProgressCreate) SetNillableVersion(v *int64) *SubjectProgressCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// Mutation returns the SubjectProgressMutation object of the builder.
func (_c *SubjectProgressCreate) Mutation() *SubjectProgressMutation {
	return _c.mutation
}

// Save creates the SubjectProgress in the database.
func (_c *SubjectProgressCreate) Save(ctx context.Context) (*SubjectProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubjectProgressCreate) SaveX(ctx context.Context) *SubjectProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubjectProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubjectProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubjectProgressCreate) defaults() {
	if _, ok := _c.mutation.ProgressPercentage(); !ok {
		v := subjectprogress.DefaultProgressPercentage
		_c.mutation.SetProgressPercentage(v)
	}
	if _, ok := _c.mutation.StudyStreakDays(); !ok {
		v := subjectprogress.DefaultStudyStreakDays
		_c.mutation.SetStudyStreakDays(v)
	}
	if _, ok := _c.mutation.StudyMinutes(); !ok {
		v := subjectprogress.DefaultStudyMinutes
		_c.mutation.SetStudyMinutes(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := subjectprogress.DefaultVersion
		_c.mutation.SetVersion(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubjectProgressCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "SubjectProgress.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := subjectprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SubjectProgress.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubjectID(); !ok {
		return &ValidationError{Name: "subject_id", err: errors.New(`ent: missing required field "SubjectProgress.subject_id"`)}
	}
	if v, ok := _c.mutation.SubjectID(); ok {
		if err := subjectprogress.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "SubjectProgress.subject_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProgressPercentage(); !ok {
		return &ValidationError{Name: "progress_percentage", err: errors.New(`ent: missing required field "SubjectProgress.progress_percentage"`)}
	}
	if _, ok := _c.mutation.StudyStreakDays(); !ok {
		return &ValidationError{Name: "study_streak_days", err: errors.New(`ent: missing required field "SubjectProgress.study_streak_days"`)}
	}
	if _, ok := _c.mutation.StudyMinutes(); !ok {
		return &ValidationError{Name: "study_minutes", err: errors.New(`ent: missing required field "SubjectProgress.study_minutes"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "SubjectProgress.version"`)}
	}
	return nil
}

func (_c *SubjectProgressCreate) sqlSave(ctx context.Context) (*SubjectProgress, error) {
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

func (_c *SubjectProgressCreate) createSpec() (*SubjectProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &SubjectProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(subjectprogress.Table, sqlgraph.NewFieldSpec(subjectprogress.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(subjectprogress.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SubjectID(); ok {
		_spec.SetField(subjectprogress.FieldSubjectID, field.TypeString, value)
		_node.SubjectID = value
	}
	if value, ok := _c.mutation.ProgressPercentage(); ok {
		_spec.SetField(subjectprogress.FieldProgressPercentage, field.TypeFloat64, value)
		_node.ProgressPercentage = value
	}
	if value, ok := _c.mutation.LastActivityAt(); ok {
		_spec.SetField(subjectprogress.FieldLastActivityAt, field.TypeTime, value)
		_node.LastActivityAt = value
	}
	if value, ok := _c.mutation.CompletedContentIds(); ok {
		_spec.SetField(subjectprogress.FieldCompletedContentIds, field.TypeJSON, value)
		_node.CompletedContentIds = value
	}
	if value, ok := _c.mutation.QuizScores(); ok {
		_spec.SetField(subjectprogress.FieldQuizScores, field.TypeJSON, value)
		_node.QuizScores = value
	}
	if value, ok := _c.mutation.StudyStreakDays(); ok {
		_spec.SetField(subjectprogress.FieldStudyStreakDays, field.TypeInt, value)
		_node.StudyStreakDays = value
	}
	if value, ok := _c.mutation.StudyMinutes(); ok {
		_spec.SetField(subjectprogress.FieldStudyMinutes, field.TypeInt, value)
		_node.StudyMinutes = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(subjectprogress.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	return _node, _spec
}

// SubjectProgressCreateBulk is the builder for creating many SubjectProgress entities in bulk.
type SubjectProgressCreateBulk struct {
	config
	err      error
	builders []*SubjectProgressCreate
}

// Save creates the SubjectProgress entities in the database.
func (_c *SubjectProgressCreateBulk) Save(ctx context.Context) ([]*SubjectProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SubjectProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubjectProgressMutation)
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
func (_c *SubjectProgressCreateBulk) SaveX(ctx context.Context) []*SubjectProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubjectProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubjectProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
