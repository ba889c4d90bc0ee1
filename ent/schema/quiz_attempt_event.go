package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizAttemptEvent records one quiz submission. Attempts are append-only;
// retakes create new events rather than overwriting old ones.
type QuizAttemptEvent struct {
	ent.Schema
}

func (QuizAttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizAttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			Unique().
			NotEmpty(),
		field.String("user_id").NotEmpty(),
		field.String("subject_id").NotEmpty(),
		field.String("quiz_id").NotEmpty(),
		field.JSON("answers", []int{}).
			Optional().
			Comment("Chosen option index per question"),
		field.Float("score"),
		field.Time("completed_at"),
	}
}

func (QuizAttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "quiz_id"),
		index.Fields("user_id", "subject_id"),
	}
}
