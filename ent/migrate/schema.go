// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// LearningPathsColumns holds the columns for the "learning_paths" table.
	LearningPathsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "subject_id", Type: field.TypeString},
		{Name: "nodes", Type: field.TypeJSON},
		{Name: "current_node_index", Type: field.TypeInt, Default: 0},
		{Name: "completion_rate", Type: field.TypeFloat64, Default: 0},
		{Name: "average_score", Type: field.TypeFloat64, Default: 0},
		{Name: "last_updated", Type: field.TypeTime},
		{Name: "version", Type: field.TypeInt64, Default: 1},
	}
	// LearningPathsTable holds the schema information for the "learning_paths" table.
	LearningPathsTable = &schema.Table{
		Name:       "learning_paths",
		Columns:    LearningPathsColumns,
		PrimaryKey: []*schema.Column{LearningPathsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learningpath_user_id_subject_id",
				Unique:  true,
				Columns: []*schema.Column{LearningPathsColumns[1], LearningPathsColumns[2]},
			},
		},
	}
	// MasteryRecordsColumns holds the columns for the "mastery_records" table.
	MasteryRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "concept_id", Type: field.TypeString},
		{Name: "level", Type: field.TypeInt, Default: 0},
		{Name: "last_reviewed_at", Type: field.TypeTime, Nullable: true},
		{Name: "next_review_at", Type: field.TypeTime, Nullable: true},
		{Name: "retention_streak", Type: field.TypeInt, Default: 0},
		{Name: "history", Type: field.TypeJSON, Nullable: true},
		{Name: "version", Type: field.TypeInt64, Default: 1},
	}
	// MasteryRecordsTable holds the schema information for the "mastery_records" table.
	MasteryRecordsTable = &schema.Table{
		Name:       "mastery_records",
		Columns:    MasteryRecordsColumns,
		PrimaryKey: []*schema.Column{MasteryRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masteryrecord_user_id_concept_id",
				Unique:  true,
				Columns: []*schema.Column{MasteryRecordsColumns[1], MasteryRecordsColumns[2]},
			},
			{
				Name:    "masteryrecord_user_id_next_review_at",
				Unique:  false,
				Columns: []*schema.Column{MasteryRecordsColumns[1], MasteryRecordsColumns[5]},
			},
		},
	}
	// QuizAttemptEventsColumns holds the columns for the "quiz_attempt_events" table.
	QuizAttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "attempt_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "subject_id", Type: field.TypeString},
		{Name: "quiz_id", Type: field.TypeString},
		{Name: "answers", Type: field.TypeJSON, Nullable: true},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "completed_at", Type: field.TypeTime},
	}
	// QuizAttemptEventsTable holds the schema information for the "quiz_attempt_events" table.
	QuizAttemptEventsTable = &schema.Table{
		Name:       "quiz_attempt_events",
		Columns:    QuizAttemptEventsColumns,
		PrimaryKey: []*schema.Column{QuizAttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizattemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{QuizAttemptEventsColumns[1]},
			},
			{
				Name:    "quizattemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{QuizAttemptEventsColumns[2]},
			},
			{
				Name:    "quizattemptevent_user_id_quiz_id",
				Unique:  false,
				Columns: []*schema.Column{QuizAttemptEventsColumns[4], QuizAttemptEventsColumns[6]},
			},
			{
				Name:    "quizattemptevent_user_id_subject_id",
				Unique:  false,
				Columns: []*schema.Column{QuizAttemptEventsColumns[4], QuizAttemptEventsColumns[5]},
			},
		},
	}
	// ReviewEventsColumns holds the columns for the "review_events" table.
	ReviewEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "concept_id", Type: field.TypeString},
		{Name: "rating", Type: field.TypeString},
		{Name: "level_after", Type: field.TypeInt},
		{Name: "streak_after", Type: field.TypeInt},
		{Name: "interval_hours", Type: field.TypeInt},
		{Name: "score_derived", Type: field.TypeBool, Default: false},
	}
	// ReviewEventsTable holds the schema information for the "review_events" table.
	ReviewEventsTable = &schema.Table{
		Name:       "review_events",
		Columns:    ReviewEventsColumns,
		PrimaryKey: []*schema.Column{ReviewEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[1]},
			},
			{
				Name:    "reviewevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[2]},
			},
			{
				Name:    "reviewevent_user_id_concept_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[3], ReviewEventsColumns[4]},
			},
		},
	}
	// SubjectProgressesColumns holds the columns for the "subject_progresses" table.
	SubjectProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "subject_id", Type: field.TypeString},
		{Name: "progress_percentage", Type: field.TypeFloat64, Default: 0},
		{Name: "last_activity_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_content_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "quiz_scores", Type: field.TypeJSON, Nullable: true},
		{Name: "study_streak_days", Type: field.TypeInt, Default: 0},
		{Name: "study_minutes", Type: field.TypeInt, Default: 0},
		{Name: "version", Type: field.TypeInt64, Default: 1},
	}
	// SubjectProgressesTable holds the schema information for the "subject_progresses" table.
	SubjectProgressesTable = &schema.Table{
		Name:       "subject_progresses",
		Columns:    SubjectProgressesColumns,
		PrimaryKey: []*schema.Column{SubjectProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "subjectprogress_user_id_subject_id",
				Unique:  true,
				Columns: []*schema.Column{SubjectProgressesColumns[1], SubjectProgressesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		LearningPathsTable,
		MasteryRecordsTable,
		QuizAttemptEventsTable,
		ReviewEventsTable,
		SubjectProgressesTable,
	}
)

func init() {
}
