package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MasteryRecord is the per-(user, concept) mastery state: current level,
// review scheduling fields, and the rating history.
type MasteryRecord struct {
	ent.Schema
}

func (MasteryRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("concept_id").NotEmpty(),
		field.Int("level").
			Default(0).
			Comment("Mastery level, 0-100"),
		field.Time("last_reviewed_at").
			Optional().
			Comment("Zero until the first review"),
		field.Time("next_review_at").
			Optional().
			Nillable().
			Comment("Nil until the first review is scheduled"),
		field.Int("retention_streak").
			Default(0),
		field.JSON("history", []map[string]any{}).
			Optional().
			Comment("Append-only review history entries"),
		field.Int64("version").
			Default(1).
			Comment("Optimistic concurrency token"),
	}
}

func (MasteryRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "concept_id").Unique(),
		index.Fields("user_id", "next_review_at"),
	}
}
