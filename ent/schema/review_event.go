package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewEvent records a review outcome applied to a mastery record,
// for audit and analytics.
type ReviewEvent struct {
	ent.Schema
}

func (ReviewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ReviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("concept_id").NotEmpty(),
		field.String("rating").NotEmpty(),
		field.Int("level_after"),
		field.Int("streak_after"),
		field.Int("interval_hours"),
		field.Bool("score_derived").
			Default(false).
			Comment("True when the rating came from a quiz score band"),
	}
}

func (ReviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "concept_id"),
	}
}
