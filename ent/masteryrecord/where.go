// Code generated by ent, DO NOT EDIT.

package masteryrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/avalder/pathwise/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldUserID, v))
}

// ConceptID applies equality check predicate on the "concept_id" field. It's identical to ConceptIDEQ.
func ConceptID(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldConceptID, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldLevel, v))
}

// LastReviewedAt applies equality check predicate on the "last_reviewed_at" field. It's identical to LastReviewedAtEQ.
func LastReviewedAt(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldLastReviewedAt, v))
}

// NextReviewAt applies equality check predicate on the "next_review_at" field. It's identical to NextReviewAtEQ.
func NextReviewAt(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldNextReviewAt, v))
}

// RetentionStreak applies equality check predicate on the "retention_streak" field. It's identical to RetentionStreakEQ.
func RetentionStreak(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldRetentionStreak, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldVersion, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldContainsFold(FieldUserID, v))
}

// ConceptIDEQ applies the EQ predicate on the "concept_id" field.
func ConceptIDEQ(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldConceptID, v))
}

// ConceptIDNEQ applies the NEQ predicate on the "concept_id" field.
func ConceptIDNEQ(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldConceptID, v))
}

// ConceptIDIn applies the In predicate on the "concept_id" field.
func ConceptIDIn(vs ...string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldConceptID, vs...))
}

// ConceptIDNotIn applies the NotIn predicate on the "concept_id" field.
func ConceptIDNotIn(vs ...string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldConceptID, vs...))
}

// ConceptIDGT applies the GT predicate on the "concept_id" field.
func ConceptIDGT(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldConceptID, v))
}

// ConceptIDGTE applies the GTE predicate on the "concept_id" field.
func ConceptIDGTE(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldConceptID, v))
}

// ConceptIDLT applies the LT predicate on the "concept_id" field.
func ConceptIDLT(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldConceptID, v))
}

// ConceptIDLTE applies the LTE predicate on the "concept_id" field.
func ConceptIDLTE(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldConceptID, v))
}

// ConceptIDContains applies the Contains predicate on the "concept_id" field.
func ConceptIDContains(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldContains(FieldConceptID, v))
}

// ConceptIDHasPrefix applies the HasPrefix predicate on the "concept_id" field.
func ConceptIDHasPrefix(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldHasPrefix(FieldConceptID, v))
}

// ConceptIDHasSuffix applies the HasSuffix predicate on the "concept_id" field.
func ConceptIDHasSuffix(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldHasSuffix(FieldConceptID, v))
}

// ConceptIDEqualFold applies the EqualFold predicate on the "concept_id" field.
func ConceptIDEqualFold(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEqualFold(FieldConceptID, v))
}

// ConceptIDContainsFold applies the ContainsFold predicate on the "concept_id" field.
func ConceptIDContainsFold(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldContainsFold(FieldConceptID, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldLevel, v))
}

// LastReviewedAtEQ applies the EQ predicate on the "last_reviewed_at" field.
func LastReviewedAtEQ(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldLastReviewedAt, v))
}

// LastReviewedAtNEQ applies the NEQ predicate on the "last_reviewed_at" field.
func LastReviewedAtNEQ(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldLastReviewedAt, v))
}

// LastReviewedAtIn applies the In predicate on the "last_reviewed_at" field.
func LastReviewedAtIn(vs ...time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldLastReviewedAt, vs...))
}

// LastReviewedAtNotIn applies the NotIn predicate on the "last_reviewed_at" field.
func LastReviewedAtNotIn(vs ...time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldLastReviewedAt, vs...))
}

// LastReviewedAtGT applies the GT predicate on the "last_reviewed_at" field.
func LastReviewedAtGT(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldLastReviewedAt, v))
}

// LastReviewedAtGTE applies the GTE predicate on the "last_reviewed_at" field.
func LastReviewedAtGTE(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldLastReviewedAt, v))
}

// LastReviewedAtLT applies the LT predicate on the "last_reviewed_at" field.
func LastReviewedAtLT(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldLastReviewedAt, v))
}

// LastReviewedAtLTE applies the LTE predicate on the "last_reviewed_at" field.
func LastReviewedAtLTE(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldLastReviewedAt, v))
}

// LastReviewedAtIsNil applies the IsNil predicate on the "last_reviewed_at" field.
func LastReviewedAtIsNil() predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIsNull(FieldLastReviewedAt))
}

// LastReviewedAtNotNil applies the NotNil predicate on the "last_reviewed_at" field.
func LastReviewedAtNotNil() predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotNull(FieldLastReviewedAt))
}

// NextReviewAtEQ applies the EQ predicate on the "next_review_at" field.
func NextReviewAtEQ(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldNextReviewAt, v))
}

// NextReviewAtNEQ applies the NEQ predicate on the "next_review_at" field.
func NextReviewAtNEQ(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldNextReviewAt, v))
}

// NextReviewAtIn applies the In predicate on the "next_review_at" field.
func NextReviewAtIn(vs ...time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldNextReviewAt, vs...))
}

// NextReviewAtNotIn applies the NotIn predicate on the "next_review_at" field.
func NextReviewAtNotIn(vs ...time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldNextReviewAt, vs...))
}

// NextReviewAtGT applies the GT predicate on the "next_review_at" field.
func NextReviewAtGT(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldNextReviewAt, v))
}

// NextReviewAtGTE applies the GTE predicate on the "next_review_at" field.
func NextReviewAtGTE(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldNextReviewAt, v))
}

// NextReviewAtLT applies the LT predicate on the "next_review_at" field.
func NextReviewAtLT(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldNextReviewAt, v))
}

// NextReviewAtLTE applies the LTE predicate on the "next_review_at" field.
func NextReviewAtLTE(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldNextReviewAt, v))
}

// NextReviewAtIsNil applies the IsNil predicate on the "next_review_at" field.
func NextReviewAtIsNil() predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIsNull(FieldNextReviewAt))
}

// NextReviewAtNotNil applies the NotNil predicate on the "next_review_at" field.
func NextReviewAtNotNil() predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotNull(FieldNextReviewAt))
}

// RetentionStreakEQ applies the EQ predicate on the "retention_streak" field.
func RetentionStreakEQ(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldRetentionStreak, v))
}

// RetentionStreakNEQ applies the NEQ predicate on the "retention_streak" field.
func RetentionStreakNEQ(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldRetentionStreak, v))
}

// RetentionStreakIn applies the In predicate on the "retention_streak" field.
func RetentionStreakIn(vs ...int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldRetentionStreak, vs...))
}

// RetentionStreakNotIn applies the NotIn predicate on the "retention_streak" field.
func RetentionStreakNotIn(vs ...int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldRetentionStreak, vs...))
}

// RetentionStreakGT applies the GT predicate on the "retention_streak" field.
func RetentionStreakGT(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldRetentionStreak, v))
}

// RetentionStreakGTE applies the GTE predicate on the "retention_streak" field.
func RetentionStreakGTE(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldRetentionStreak, v))
}

// RetentionStreakLT applies the LT predicate on the "retention_streak" field.
func RetentionStreakLT(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldRetentionStreak, v))
}

// RetentionStreakLTE applies the LTE predicate on the "retention_streak" field.
func RetentionStreakLTE(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldRetentionStreak, v))
}

// HistoryIsNil applies the IsNil predicate on the "history" field.
func HistoryIsNil() predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIsNull(FieldHistory))
}

// HistoryNotNil applies the NotNil predicate on the "history" field.
func HistoryNotNil() predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotNull(FieldHistory))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldVersion, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MasteryRecord) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MasteryRecord) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MasteryRecord) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.NotPredicates(p))
}
