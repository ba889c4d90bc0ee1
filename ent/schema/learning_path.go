package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LearningPath is the ordered node sequence for a (user, subject) pair
// plus its derived completion figures.
type LearningPath struct {
	ent.Schema
}

func (LearningPath) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("subject_id").NotEmpty(),
		field.JSON("nodes", []map[string]any{}).
			Comment("Ordered path nodes as JSON"),
		field.Int("current_node_index").
			Default(0),
		field.Float("completion_rate").
			Default(0),
		field.Float("average_score").
			Default(0),
		field.Time("last_updated"),
		field.Int64("version").
			Default(1).
			Comment("Optimistic concurrency token"),
	}
}

func (LearningPath) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "subject_id").Unique(),
	}
}
