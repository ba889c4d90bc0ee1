package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockReplaysScriptInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"concept_id":"fractions"}`), Usage: Usage{InputTokens: 12, OutputTokens: 7, TotalTokens: 19}},
		MockResponse{Content: json.RawMessage(`{"concept_id":"variables"}`)},
	)

	first, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "summarize fractions"}}})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(first.Content) != `{"concept_id":"fractions"}` {
		t.Fatalf("content = %s", first.Content)
	}
	if first.Usage.TotalTokens != 19 {
		t.Fatalf("total tokens = %d", first.Usage.TotalTokens)
	}
	if first.StopReason != "end" {
		t.Fatalf("stop reason = %q", first.StopReason)
	}

	second, err := mock.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(second.Content) != `{"concept_id":"variables"}` {
		t.Fatalf("content = %s", second.Content)
	}
}

func TestMockExhaustedScriptReadsAsDown(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	if _, err := mock.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	_, err := mock.Generate(context.Background(), Request{})
	var unavailable *ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("err = %T, want ErrProviderUnavailable", err)
	}
}

func TestMockRecordsRequests(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`)},
		MockResponse{Err: &ErrRateLimit{}},
	)

	_, _ = mock.Generate(context.Background(), Request{System: "You write quiz questions."})
	_, err := mock.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "three questions on graphing"}},
	})

	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("err = %T, want ErrRateLimit", err)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("call count = %d, want 2", mock.CallCount())
	}
	if mock.Calls[0].System != "You write quiz questions." {
		t.Fatalf("first system = %q", mock.Calls[0].System)
	}
	if got := mock.LastCall(); len(got.Messages) != 1 || got.Messages[0].Content != "three questions on graphing" {
		t.Fatalf("last call = %+v", got)
	}
}

func TestMockModelID(t *testing.T) {
	if got := NewMockProvider().ModelID(); got != "mock" {
		t.Fatalf("model = %q, want mock", got)
	}
}

func TestPurposeTravelsOnContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("bare context purpose = %q, want unknown", p)
	}

	ctx = WithPurpose(ctx, "quiz-gen")
	if p := PurposeFrom(ctx); p != "quiz-gen" {
		t.Fatalf("purpose = %q, want quiz-gen", p)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}}, false},
		{"openai without key", Config{Provider: "openai"}, true},
		{"openai with key", Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}}, false},
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"openrouter without key", Config{Provider: "openrouter"}, true},
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "cohere"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
