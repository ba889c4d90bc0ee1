package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestToGeminiSchema(t *testing.T) {
	// The quiz schema's shape: nested array of question objects with
	// an enum'd difficulty.
	def := map[string]any{
		"type":        "object",
		"description": "multiple-choice quiz",
		"properties": map[string]any{
			"concept_id": map[string]any{"type": "string"},
			"difficulty": map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text":          map[string]any{"type": "string"},
						"correct_index": map[string]any{"type": "integer"},
					},
					"required": []any{"text", "correct_index"},
				},
			},
		},
		"required": []any{"concept_id", "questions"},
	}

	schema := toGeminiSchema(def)

	if schema.Type != genai.TypeObject {
		t.Fatalf("type = %s, want OBJECT", schema.Type)
	}
	if schema.Description != "multiple-choice quiz" {
		t.Fatalf("description = %q", schema.Description)
	}
	if len(schema.Properties) != 3 {
		t.Fatalf("got %d properties, want 3", len(schema.Properties))
	}
	if got := schema.Properties["difficulty"].Enum; len(got) != 3 {
		t.Fatalf("difficulty enum = %v, want 3 values", got)
	}

	questions := schema.Properties["questions"]
	if questions.Type != genai.TypeArray {
		t.Fatalf("questions type = %s, want ARRAY", questions.Type)
	}
	item := questions.Items
	if item.Properties["correct_index"].Type != genai.TypeInteger {
		t.Fatalf("correct_index type = %s, want INTEGER", item.Properties["correct_index"].Type)
	}
	if len(item.Required) != 2 {
		t.Fatalf("item required = %v, want 2 fields", item.Required)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("required = %v, want 2 fields", schema.Required)
	}
}

func TestGeminiTypeMapping(t *testing.T) {
	tests := []struct {
		in   any
		want genai.Type
	}{
		{"object", genai.TypeObject},
		{"array", genai.TypeArray},
		{"integer", genai.TypeInteger},
		{"number", genai.TypeNumber},
		{"boolean", genai.TypeBoolean},
		{"string", genai.TypeString},
		{nil, genai.TypeString}, // absent type defaults to string
	}
	for _, tt := range tests {
		if got := geminiType(tt.in); got != tt.want {
			t.Errorf("geminiType(%v) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
