// Package studygen generates supplementary study material for concepts:
// multiple-choice quizzes, summaries, and further-reading suggestions.
package studygen

import "github.com/avalder/pathwise/internal/concept"

// Quiz is an LLM-generated multiple-choice quiz for one concept.
type Quiz struct {
	ConceptID string     `json:"concept_id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// Question is one multiple-choice item.
type Question struct {
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation"`
}

// Summary is a short refresher for a concept shown before a review.
type Summary struct {
	ConceptID string   `json:"concept_id"`
	Text      string   `json:"text"`
	KeyPoints []string `json:"key_points"`
}

// ReadingItem is one further-study suggestion.
type ReadingItem struct {
	Title  string `json:"title"`
	Reason string `json:"reason"`
}

// ReadingList groups reading suggestions for a concept.
type ReadingList struct {
	ConceptID string        `json:"concept_id"`
	Items     []ReadingItem `json:"items"`
}

// QuizInput holds the context for quiz generation.
type QuizInput struct {
	Concept      concept.Concept
	MasteryLevel int // 0-100, tunes question difficulty
	NumQuestions int
}

// SummaryInput holds the context for summary generation.
type SummaryInput struct {
	Concept      concept.Concept
	MasteryLevel int
	LastRating   string // most recent review rating, "" if never reviewed
}
