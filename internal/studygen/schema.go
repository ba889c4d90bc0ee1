package studygen

import "github.com/avalder/pathwise/internal/llm"

// QuizSchema defines the JSON schema for quiz generation.
var QuizSchema = &llm.Schema{
	Name:        "concept-quiz",
	Description: "A multiple-choice quiz testing one concept",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short quiz title (3-8 words)",
			},
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text": map[string]any{
							"type":        "string",
							"description": "The question text",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly four answer options",
						},
						"correct_index": map[string]any{
							"type":        "integer",
							"description": "Zero-based index of the correct option",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the correct answer is right (1-2 sentences)",
						},
					},
					"required":             []any{"text", "options", "correct_index", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"title", "questions"},
		"additionalProperties": false,
	},
}

// SummarySchema defines the JSON schema for concept summaries.
var SummarySchema = &llm.Schema{
	Name:        "concept-summary",
	Description: "A short refresher summary of one concept",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"text": map[string]any{
				"type":        "string",
				"description": "3-5 sentence summary of the concept",
			},
			"key_points": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-4 key points to remember (one sentence each)",
			},
		},
		"required":             []any{"text", "key_points"},
		"additionalProperties": false,
	},
}

// ReadingSchema defines the JSON schema for further-reading suggestions.
var ReadingSchema = &llm.Schema{
	Name:        "further-reading",
	Description: "Follow-up study suggestions for one concept",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"items": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{
							"type":        "string",
							"description": "Topic or resource title",
						},
						"reason": map[string]any{
							"type":        "string",
							"description": "Why this helps, given the learner's level (one sentence)",
						},
					},
					"required":             []any{"title", "reason"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"items"},
		"additionalProperties": false,
	},
}
