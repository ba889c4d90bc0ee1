package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func quizSchema() *Schema {
	return &Schema{
		Name:        "quiz-question",
		Description: "One multiple-choice question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text":          map[string]any{"type": "string"},
				"correct_index": map[string]any{"type": "integer", "minimum": 0},
				"difficulty":    map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
			},
			"required": []any{"text", "correct_index"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"text":"What is 1/2 + 1/4?","correct_index":2,"difficulty":"easy"}`, false},
		{"optional field omitted", `{"text":"Plot y = 2x","correct_index":0}`, false},
		{"missing required field", `{"text":"Simplify 3/9"}`, true},
		{"wrong type", `{"text":"Solve for x","correct_index":"two"}`, true},
		{"enum violation", `{"text":"Name the slope","correct_index":1,"difficulty":"impossible"}`, true},
		{"malformed JSON", `{"text": truncated`, true},
		{"empty", ``, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(quizSchema(), json.RawMessage(tt.raw))
			if tt.wantErr {
				var invalid *ErrInvalidResponse
				if !errors.As(err, &invalid) {
					t.Fatalf("err = %v, want ErrInvalidResponse", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("validateResponse: %v", err)
			}
		})
	}
}

func TestValidateResponseNilSchemaSkipsValidation(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`{"anything":"goes"}`)); err != nil {
		t.Fatalf("validateResponse: %v", err)
	}
}

func TestValidateResponseNestedDefinitions(t *testing.T) {
	schema := &Schema{
		Name: "quiz",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title": map[string]any{"type": "string"},
				"questions": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"text": map[string]any{"type": "string"},
						},
						"required": []any{"text"},
					},
				},
			},
			"required": []any{"title", "questions"},
		},
	}

	valid := json.RawMessage(`{"title":"Linear Equations","questions":[{"text":"Solve 2x = 8"}]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("validateResponse: %v", err)
	}

	invalid := json.RawMessage(`{"title":"Linear Equations","questions":[{}]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for question missing text")
	}
}
