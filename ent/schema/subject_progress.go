package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SubjectProgress is the per-(user, subject) progress roll-up: quiz
// scores, completed content, and study streak.
type SubjectProgress struct {
	ent.Schema
}

func (SubjectProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("subject_id").NotEmpty(),
		field.Float("progress_percentage").
			Default(0),
		field.Time("last_activity_at").
			Optional(),
		field.JSON("completed_content_ids", []string{}).
			Optional(),
		field.JSON("quiz_scores", map[string]float64{}).
			Optional().
			Comment("Attempt ID -> score"),
		field.Int("study_streak_days").
			Default(0),
		field.Int("study_minutes").
			Default(0),
		field.Int64("version").
			Default(1).
			Comment("Optimistic concurrency token"),
	}
}

func (SubjectProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "subject_id").Unique(),
	}
}
