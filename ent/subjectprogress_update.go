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
	"github.com/avalder/pathwise/ent/subjectprogress"
)

// SubjectProgressUpdate is the builder for updating SubjectProgress entities.
type SubjectProgressUpdate struct {
	config
	hooks    []Hook
	mutation *SubjectProgressMutation
}

// Where appends a list predicates to the SubjectProgressUpdate builder.
func (_u *SubjectProgressUpdate) Where(ps ...predicate.SubjectProgress) *SubjectProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SubjectProgressUpdate) SetUserID(v string) *SubjectProgressUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SubjectProgressUpdate) SetNillableUserID(v *string) *SubjectProgressUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *SubjectProgressUpdate) SetSubjectID(v string) *SubjectProgressUpdate {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *SubjectProgressUpdate) SetNillableSubjectID(v *string) *SubjectProgressUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetProgressPercentage sets the "progress_percentage" field.
func (_u *SubjectProgressUpdate) SetProgressPercentage(v float64) *SubjectProgressUpdate {
	_u.mutation.ResetProgressPercentage()
	_u.mutation.SetProgressPercentage(v)
	return _u
}

// SetNillableProgressPercentage sets the "progress_percentage" field if the given value is not nil.
func (_u *SubjectProgressUpdate) SetNillableProgressPercentage(v *float64) *SubjectProgressUpdate {
	if v != nil {
		_u.SetProgressPercentage(*v)
	}
	return _u
}

// AddProgressPercentage adds value to the "progress_percentage" field.
func (_u *SubjectProgressUpdate) AddProgressPercentage(v float64) *SubjectProgressUpdate {
	_u.mutation.AddProgressPercentage(v)
	return _u
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_u *SubjectProgressUpdate) SetLastActivityAt(v time.Time) *SubjectProgressUpdate {
	_u.mutation.SetLastActivityAt(v)
	return _u
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_u *SubjectProgressUpdate) SetNillableLastActivityAt(v *time.Time) *SubjectProgressUpdate {
	if v != nil {
		_u.SetLastActivityAt(*v)
	}
	return _u
}

// ClearLastActivityAt clears the value of the "last_activity_at" field.
func (_u *SubjectProgressUpdate) ClearLastActivityAt() *SubjectProgressUpdate {
	_u.mutation.ClearLastActivityAt()
	return _u
}

// SetCompletedContentIds sets the "completed_content_ids" field.
func (_u *SubjectProgressUpdate) SetCompletedContentIds(v []string) *SubjectProgressUpdate {
	_u.mutation.SetCompletedContentIds(v)
	return _u
}

// AppendCompletedContentIds appends value to the "completed_content_ids" field.
func (_u *SubjectProgressUpdate) AppendCompletedContentIds(v []string) *SubjectProgressUpdate {
	_u.mutation.AppendCompletedContentIds(v)
	return _u
}

// ClearCompletedContentIds clears the value of the "completed_content_ids" field.
func (_u *SubjectProgressUpdate) ClearCompletedContentIds() *SubjectProgressUpdate {
	_u.mutation.ClearCompletedContentIds()
	return _u
}

// SetQuizScores sets the "quiz_scores" field.
func (_u *SubjectProgressUpdate) SetQuizScores(v map[string]float64) *SubjectProgressUpdate {
	_u.mutation.SetQuizScores(v)
	return _u
}

// ClearQuizScores clears the value of the "quiz_scores" field.
func (_u *SubjectProgressUpdate) ClearQuizScores() *SubjectProgressUpdate {
	_u.mutation.ClearQuizScores()
	return _u
}

// SetStudyStreakDays sets the "study_streak_days" field.
func (_u *SubjectProgressUpdate) SetStudyStreakDays(v int) *SubjectProgressUpdate {
	_u.mutation.ResetStudyStreakDays()
	_u.mutation.SetStudyStreakDays(v)
	return _u
}

// SetNillableStudyStreakDays sets the "study_streak_days" field if the given value is not nil.
func (_u *SubjectProgressUpdate) SetNillableStudyStreakDays(v *int) *SubjectProgressUpdate {
	if v != nil {
		_u.SetStudyStreakDays(*v)
	}
	return _u
}

// AddStudyStreakDays adds value to the "study_streak_days" field.
func (_u *SubjectProgressUpdate) AddStudyStreakDays(v int) *SubjectProgressUpdate {
	_u.mutation.AddStudyStreakDays(v)
	return _u
}

// SetStudyMinutes sets the "study_minutes" field.
func (_u *SubjectProgressUpdate) SetStudyMinutes(v int) *SubjectProgressUpdate {
	_u.mutation.ResetStudyMinutes()
	_u.mutation.SetStudyMinutes(v)
	return _u
}

// SetNillableStudyMinutes sets the "study_minutes" field if the given value is not nil.
func (_u *SubjectProgressUpdate) SetNillableStudyMinutes(v *int) *SubjectProgressUpdate {
	if v != nil {
		_u.SetStudyMinutes(*v)
	}
	return _u
}

// AddStudyMinutes adds value to the "study_minutes" field.
func (_u *SubjectProgressUpdate) AddStudyMinutes(v int) *SubjectProgressUpdate {
	_u.mutation.AddStudyMinutes(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *SubjectProgressUpdate) SetVersion(v int64) *SubjectProgressUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *SubjectProgressUpdate) SetNillableVersion(v *int64) *SubjectProgressUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *SubjectProgressUpdate) AddVersion(v int64) *SubjectProgressUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// Mutation returns the SubjectProgressMutation object of the builder.
func (_u *SubjectProgressUpdate) Mutation() *SubjectProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubjectProgressUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubjectProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubjectProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubjectProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubjectProgressUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := subjectprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SubjectProgress.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := subjectprogress.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "SubjectProgress.subject_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SubjectProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subjectprogress.Table, subjectprogress.Columns, sqlgraph.NewFieldSpec(subjectprogress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(subjectprogress.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(subjectprogress.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProgressPercentage(); ok {
		_spec.SetField(subjectprogress.FieldProgressPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProgressPercentage(); ok {
		_spec.AddField(subjectprogress.FieldProgressPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastActivityAt(); ok {
		_spec.SetField(subjectprogress.FieldLastActivityAt, field.TypeTime, value)
	}
	if _u.mutation.LastActivityAtCleared() {
		_spec.ClearField(subjectprogress.FieldLastActivityAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedContentIds(); ok {
		_spec.SetField(subjectprogress.FieldCompletedContentIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedContentIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, subjectprogress.FieldCompletedContentIds, value)
		})
	}
	if _u.mutation.CompletedContentIdsCleared() {
		_spec.ClearField(subjectprogress.FieldCompletedContentIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.QuizScores(); ok {
		_spec.SetField(subjectprogress.FieldQuizScores, field.TypeJSON, value)
	}
	if _u.mutation.QuizScoresCleared() {
		_spec.ClearField(subjectprogress.FieldQuizScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.StudyStreakDays(); ok {
		_spec.SetField(subjectprogress.FieldStudyStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStudyStreakDays(); ok {
		_spec.AddField(subjectprogress.FieldStudyStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StudyMinutes(); ok {
		_spec.SetField(subjectprogress.FieldStudyMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStudyMinutes(); ok {
		_spec.AddField(subjectprogress.FieldStudyMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(subjectprogress.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(subjectprogress.FieldVersion, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subjectprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubjectProgressUpdateOne is the builder for updating a single SubjectProgress entity.
type SubjectProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubjectProgressMutation
}

// SetUserID sets the "user_id" field.
func (_u *SubjectProgressUpdateOne) SetUserID(v string) *SubjectProgressUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SubjectProgressUpdateOne) SetNillableUserID(v *string) *SubjectProgressUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *SubjectProgressUpdateOne) SetSubjectID(v string) *SubjectProgressUpdateOne {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *SubjectProgressUpdateOne) SetNillableSubjectID(v *string) *SubjectProgressUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetProgressPercentage sets the "progress_percentage" field.
func (_u *SubjectProgressUpdateOne) SetProgressPercentage(v float64) *SubjectProgressUpdateOne {
	_u.mutation.ResetProgressPercentage()
	_u.mutation.SetProgressPercentage(v)
	return _u
}

// SetNillableProgressPercentage sets the "progress_percentage" field if the given value is not nil.
func (_u *SubjectProgressUpdateOne) SetNillableProgressPercentage(v *float64) *SubjectProgressUpdateOne {
	if v != nil {
		_u.SetProgressPercentage(*v)
	}
	return _u
}

// AddProgressPercentage adds value to the "progress_percentage" field.
func (_u *SubjectProgressUpdateOne) AddProgressPercentage(v float64) *SubjectProgressUpdateOne {
	_u.mutation.AddProgressPercentage(v)
	return _u
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_u *SubjectProgressUpdateOne) SetLastActivityAt(v time.Time) *SubjectProgressUpdateOne {
	_u.mutation.SetLastActivityAt(v)
	return _u
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_u *SubjectProgressUpdateOne) SetNillableLastActivityAt(v *time.Time) *SubjectProgressUpdateOne {
	if v != nil {
		_u.SetLastActivityAt(*v)
	}
	return _u
}

// ClearLastActivityAt clears the value of the "last_activity_at" field.
func (_u *SubjectProgressUpdateOne) ClearLastActivityAt() *SubjectProgressUpdateOne {
	_u.mutation.ClearLastActivityAt()
	return _u
}

// SetCompletedContentIds sets the "completed_content_ids" field.
func (_u *SubjectProgressUpdateOne) SetCompletedContentIds(v []string) *SubjectProgressUpdateOne {
	_u.mutation.SetCompletedContentIds(v)
	return _u
}

// AppendCompletedContentIds appends value to the "completed_content_ids" field.
func (_u *SubjectProgressUpdateOne) AppendCompletedContentIds(v []string) *SubjectProgressUpdateOne {
	_u.mutation.AppendCompletedContentIds(v)
	return _u
}

// ClearCompletedContentIds clears the value of the "completed_content_ids" field.
func (_u *SubjectProgressUpdateOne) ClearCompletedContentIds() *SubjectProgressUpdateOne {
	_u.mutation.ClearCompletedContentIds()
	return _u
}

// SetQuizScores sets the "quiz_scores" field.
func (_u *SubjectProgressUpdateOne) SetQuizScores(v map[string]float64) *SubjectProgressUpdateOne {
	_u.mutation.SetQuizScores(v)
	return _u
}

// ClearQuizScores clears the value of the "quiz_scores" field.
func (_u *SubjectProgressUpdateOne) ClearQuizScores() *SubjectProgressUpdateOne {
	_u.mutation.ClearQuizScores()
	return _u
}

// SetStudyStreakDays sets the "study_streak_days" field.
func (_u *SubjectProgressUpdateOne) SetStudyStreakDays(v int) *SubjectProgressUpdateOne {
	_u.mutation.ResetStudyStreakDays()
	_u.mutation.SetStudyStreakDays(v)
	return _u
}

// SetNillableStudyStreakDays sets the "study_streak_days" field if the given value is not nil.
func (_u *SubjectProgressUpdateOne) SetNillableStudyStreakDays(v *int) *SubjectProgressUpdateOne {
	if v != nil {
		_u.SetStudyStreakDays(*v)
	}
	return _u
}

// AddStudyStreakDays adds value to the "study_streak_days" field.
func (_u *SubjectProgressUpdateOne) AddStudyStreakDays(v int) *SubjectProgressUpdateOne {
	_u.mutation.AddStudyStreakDays(v)
	return _u
}

// SetStudyMinutes sets the "study_minutes" field.
func (_u *SubjectProgressUpdateOne) SetStudyMinutes(v int) *SubjectProgressUpdateOne {
	_u.mutation.ResetStudyMinutes()
	_u.mutation.SetStudyMinutes(v)
	return _u
}

// SetNillableStudyMinutes sets the "study_minutes" field if the given value is not nil.
func (_u *SubjectProgressUpdateOne) SetNillableStudyMinutes(v *int) *SubjectProgressUpdateOne {
	if v != nil {
		_u.SetStudyMinutes(*v)
	}
	return _u
}

// AddStudyMinutes adds value to the "study_minutes" field.
func (_u *SubjectProgressUpdateOne) AddStudyMinutes(v int) *SubjectProgressUpdateOne {
	_u.mutation.AddStudyMinutes(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *SubjectProgressUpdateOne) SetVersion(v int64) *SubjectProgressUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *SubjectProgressUpdateOne) SetNillableVersion(v *int64) *SubjectProgressUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *SubjectProgressUpdateOne) AddVersion(v int64) *SubjectProgressUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// Mutation returns the SubjectProgressMutation object of the builder.
func (_u *SubjectProgressUpdateOne) Mutation() *SubjectProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the SubjectProgressUpdate builder.
func (_u *SubjectProgressUpdateOne) Where(ps ...predicate.SubjectProgress) *SubjectProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubjectProgressUpdateOne) Select(field string, fields ...string) *SubjectProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SubjectProgress entity.
func (_u *SubjectProgressUpdateOne) Save(ctx context.Context) (*SubjectProgress, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubjectProgressUpdateOne) SaveX(ctx context.Context) *SubjectProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubjectProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubjectProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubjectProgressUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := subjectprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SubjectProgress.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := subjectprogress.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "SubjectProgress.subject_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SubjectProgressUpdateOne) sqlSave(ctx context.Context) (_node *SubjectProgress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subjectprogress.Table, subjectprogress.Columns, sqlgraph.NewFieldSpec(subjectprogress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SubjectProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, subjectprogress.FieldID)
		for _, f := range fields {
			if !subjectprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != subjectprogress.FieldID {
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
		_spec.SetField(subjectprogress.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(subjectprogress.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProgressPercentage(); ok {
		_spec.SetField(subjectprogress.FieldProgressPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProgressPercentage(); ok {
		_spec.AddField(subjectprogress.FieldProgressPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastActivityAt(); ok {
		_spec.SetField(subjectprogress.FieldLastActivityAt, field.TypeTime, value)
	}
	if _u.mutation.LastActivityAtCleared() {
		_spec.ClearField(subjectprogress.FieldLastActivityAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedContentIds(); ok {
		_spec.SetField(subjectprogress.FieldCompletedContentIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedContentIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, subjectprogress.FieldCompletedContentIds, value)
		})
	}
	if _u.mutation.CompletedContentIdsCleared() {
		_spec.ClearField(subjectprogress.FieldCompletedContentIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.QuizScores(); ok {
		_spec.SetField(subjectprogress.FieldQuizScores, field.TypeJSON, value)
	}
	if _u.mutation.QuizScoresCleared() {
		_spec.ClearField(subjectprogress.FieldQuizScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.StudyStreakDays(); ok {
		_spec.SetField(subjectprogress.FieldStudyStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStudyStreakDays(); ok {
		_spec.AddField(subjectprogress.FieldStudyStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StudyMinutes(); ok {
		_spec.SetField(subjectprogress.FieldStudyMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStudyMinutes(); ok {
		_spec.AddField(subjectprogress.FieldStudyMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(subjectprogress.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(subjectprogress.FieldVersion, field.TypeInt64, value)
	}
	_node = &SubjectProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subjectprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
