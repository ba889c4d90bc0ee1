// Code generated by ent, DO NOT EDIT.

package learningpath

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/avalder/pathwise/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldUserID, v))
}

// SubjectID applies equality check predicate on the "subject_id" field. It's identical to SubjectIDEQ.
func SubjectID(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldSubjectID, v))
}

// CurrentNodeIndex applies equality check predicate on the "current_node_index" field. It's identical to CurrentNodeIndexEQ.
func CurrentNodeIndex(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldCurrentNodeIndex, v))
}

// CompletionRate applies equality check predicate on the "completion_rate" field. It's identical to CompletionRateEQ.
func CompletionRate(v float64) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldCompletionRate, v))
}

// AverageScore applies equality check predicate on the "average_score" field. It's identical to AverageScoreEQ.
func AverageScore(v float64) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldAverageScore, v))
}

// LastUpdated applies equality check predicate on the "last_updated" field. It's identical to LastUpdatedEQ.
func LastUpdated(v time.Time) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldLastUpdated, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int64) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldVersion, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldContainsFold(FieldUserID, v))
}

// SubjectIDEQ applies the EQ predicate on the "subject_id" field.
func SubjectIDEQ(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldSubjectID, v))
}

// SubjectIDNEQ applies the NEQ predicate on the "subject_id" field.
func SubjectIDNEQ(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNEQ(FieldSubjectID, v))
}

// SubjectIDIn applies the In predicate on the "subject_id" field.
func SubjectIDIn(vs ...string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldIn(FieldSubjectID, vs...))
}

// SubjectIDNotIn applies the NotIn predicate on the "subject_id" field.
func SubjectIDNotIn(vs ...string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNotIn(FieldSubjectID, vs...))
}

// SubjectIDGT applies the GT predicate on the "subject_id" field.
func SubjectIDGT(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGT(FieldSubjectID, v))
}

// SubjectIDGTE applies the GTE predicate on the "subject_id" field.
func SubjectIDGTE(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGTE(FieldSubjectID, v))
}

// SubjectIDLT applies the LT predicate on the "subject_id" field.
func SubjectIDLT(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLT(FieldSubjectID, v))
}

// SubjectIDLTE applies the LTE predicate on the "subject_id" field.
func SubjectIDLTE(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLTE(FieldSubjectID, v))
}

// SubjectIDContains applies the Contains predicate on the "subject_id" field.
func SubjectIDContains(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldContains(FieldSubjectID, v))
}

// SubjectIDHasPrefix applies the HasPrefix predicate on the "subject_id" field.
func SubjectIDHasPrefix(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldHasPrefix(FieldSubjectID, v))
}

// SubjectIDHasSuffix applies the HasSuffix predicate on the "subject_id" field.
func SubjectIDHasSuffix(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldHasSuffix(FieldSubjectID, v))
}

// SubjectIDEqualFold applies the EqualFold predicate on the "subject_id" field.
func SubjectIDEqualFold(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEqualFold(FieldSubjectID, v))
}

// SubjectIDContainsFold applies the ContainsFold predicate on the "subject_id" field.
func SubjectIDContainsFold(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldContainsFold(FieldSubjectID, v))
}

// CurrentNodeIndexEQ applies the EQ predicate on the "current_node_index" field.
func CurrentNodeIndexEQ(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldCurrentNodeIndex, v))
}

// CurrentNodeIndexNEQ applies the NEQ predicate on the "current_node_index" field.
func CurrentNodeIndexNEQ(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNEQ(FieldCurrentNodeIndex, v))
}

// CurrentNodeIndexIn applies the In predicate on the "current_node_index" field.
func CurrentNodeIndexIn(vs ...int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldIn(FieldCurrentNodeIndex, vs...))
}

// CurrentNodeIndexNotIn applies the NotIn predicate on the "current_node_index" field.
func CurrentNodeIndexNotIn(vs ...int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNotIn(FieldCurrentNodeIndex, vs...))
}

// CurrentNodeIndexGT applies the GT predicate on the "current_node_index" field.
func CurrentNodeIndexGT(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGT(FieldCurrentNodeIndex, v))
}

// CurrentNodeIndexGTE applies the GTE predicate on the "current_node_index" field.
func CurrentNodeIndexGTE(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGTE(FieldCurrentNodeIndex, v))
}

// CurrentNodeIndexLT applies the LT predicate on the "current_node_index" field.
func CurrentNodeIndexLT(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLT(FieldCurrentNodeIndex, v))
}

// CurrentNodeIndexLTE applies the LTE predicate on the "current_node_index" field.
func CurrentNodeIndexLTE(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLTE(FieldCurrentNodeIndex, v))
}

// CompletionRateEQ applies the EQ predicate on the "completion_rate" field.
func CompletionRateEQ(v float64) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldCompletionRate, v))
}

// CompletionRateNEQ applies the NEQ predicate on the "completion_rate" field.
func CompletionRateNEQ(v float64) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNEQ(FieldCompletionRate, v))
}

// CompletionRateIn applies the In predicate on the "completion_rate" field.
func CompletionRateIn(vs ...float64) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldIn(FieldCompletionRate, vs...))
}

// CompletionRateNotIn applies the NotIn predicate on the "completion_rate" field.
func CompletionRateNotIn(vs ...float64) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNotIn(FieldCompletionRate, vs...))
}

// CompletionRateGT applies the GT predicate on the "completion_rate" field.
func CompletionRateGT(v float64) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGT(FieldCompletionRate, v))
}

// CompletionRateGTE applies the GTE predicate on the "completion_rate" field.
func CompletionRateGTE(v float64) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGTE(FieldCompletionRate, v))
}

// CompletionRateLT applies the LT predicate on the "completion_rate" field.
func CompletionRateLT(v float64) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLT(FieldCompletionRate, v))
}

// CompletionRateLTE applies the LTE predicate on the "completion_rate" field.
func CompletionRateLTE(v float64) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLTE(FieldCompletionRate, v))
}

// AverageScoreEQ applies the EQ predicate on the "average_score" field.
func AverageScoreEQ(v float64) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldAverageScore, v))
}

// AverageScoreNEQ applies the NEQ predicate on the "average_score" field.
func AverageScoreNEQ(v float64) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNEQ(FieldAverageScore, v))
}

// AverageScoreIn applies the In predicate on the "average_score" field.
func AverageScoreIn(vs ...float64) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldIn(FieldAverageScore, vs...))
}

// AverageScoreNotIn applies the NotIn predicate on the "average_score" field.
func AverageScoreNotIn(vs ...float64) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNotIn(FieldAverageScore, vs...))
}

// AverageScoreGT applies the GT predicate on the "average_score" field.
func AverageScoreGT(v float64) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGT(FieldAverageScore, v))
}

// AverageScoreGTE applies the GTE predicate on the "average_score" field.
func AverageScoreGTE(v float64) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGTE(FieldAverageScore, v))
}

// AverageScoreLT applies the LT predicate on the "average_score" field.
func AverageScoreLT(v float64) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLT(FieldAverageScore, v))
}

// AverageScoreLTE applies the LTE predicate on the "average_score" field.
func AverageScoreLTE(v float64) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLTE(FieldAverageScore, v))
}

// LastUpdatedEQ applies the EQ predicate on the "last_updated" field.
func LastUpdatedEQ(v time.Time) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldLastUpdated, v))
}

// LastUpdatedNEQ applies the NEQ predicate on the "last_updated" field.
func LastUpdatedNEQ(v time.Time) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNEQ(FieldLastUpdated, v))
}

// LastUpdatedIn applies the In predicate on the "last_updated" field.
func LastUpdatedIn(vs ...time.Time) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldIn(FieldLastUpdated, vs...))
}

// LastUpdatedNotIn applies the NotIn predicate on the "last_updated" field.
func LastUpdatedNotIn(vs ...time.Time) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNotIn(FieldLastUpdated, vs...))
}

// LastUpdatedGT applies the GT predicate on the "last_updated" field.
func LastUpdatedGT(v time.Time) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGT(FieldLastUpdated, v))
}

// LastUpdatedGTE applies the GTE predicate on the "last_updated" field.
func LastUpdatedGTE(v time.Time) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGTE(FieldLastUpdated, v))
}

// LastUpdatedLT applies the LT predicate on the "last_updated" field.
func LastUpdatedLT(v time.Time) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLT(FieldLastUpdated, v))
}

// LastUpdatedLTE applies the LTE predicate on the "last_updated" field.
func LastUpdatedLTE(v time.Time) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLTE(FieldLastUpdated, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int64) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int64) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int64) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int64) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int64) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int64) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int64) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int64) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLTE(FieldVersion, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LearningPath) predicate.LearningPath {
	return predicate.LearningPath(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LearningPath) predicate.LearningPath {
	return predicate.LearningPath(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LearningPath) predicate.LearningPath {
	return predicate.LearningPath(sql.NotPredicates(p))
}
