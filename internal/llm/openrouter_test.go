package llm

import "testing"

func TestOpenRouterModelPassThrough(t *testing.T) {
	// Vendor-prefixed IDs go to the API verbatim.
	p, err := NewOpenRouterProvider(OpenRouterConfig{
		APIKey: "sk-or-test",
		Model:  "anthropic/claude-haiku-4-5",
	})
	if err != nil {
		t.Fatalf("NewOpenRouterProvider: %v", err)
	}
	if p.ModelID() != "anthropic/claude-haiku-4-5" {
		t.Fatalf("model = %q", p.ModelID())
	}
}

func TestOpenRouterDefaults(t *testing.T) {
	p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or-test"})
	if err != nil {
		t.Fatalf("NewOpenRouterProvider: %v", err)
	}
	if p.ModelID() != defaultOpenRouterModel {
		t.Fatalf("model = %q, want %q", p.ModelID(), defaultOpenRouterModel)
	}

	if _, err := NewOpenRouterProvider(OpenRouterConfig{}); err == nil {
		t.Fatal("expected error when API key missing")
	}
}
