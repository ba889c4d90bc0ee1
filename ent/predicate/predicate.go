// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// LearningPath is the predicate function for learningpath builders.
type LearningPath func(*sql.Selector)

// MasteryRecord is the predicate function for masteryrecord builders.
type MasteryRecord func(*sql.Selector)

// QuizAttemptEvent is the predicate function for quizattemptevent builders.
type QuizAttemptEvent func(*sql.Selector)

// ReviewEvent is the predicate function for reviewevent builders.
type ReviewEvent func(*sql.Selector)

// SubjectProgress is the predicate function for subjectprogress builders.
type SubjectProgress func(*sql.Selector)
