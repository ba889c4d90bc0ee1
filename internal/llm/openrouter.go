package llm

import "fmt"

const (
	openRouterBaseURL      = "https://openrouter.ai/api/v1"
	defaultOpenRouterModel = "google/gemini-2.5-flash"
)

// NewOpenRouterProvider targets openrouter.ai through the OpenAI
// adapter; OpenRouter speaks the same wire protocol. Model IDs are
// vendor-prefixed ("anthropic/...", "google/...") and passed through.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = openRouterBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = defaultOpenRouterModel
	}

	return NewOpenAIProvider(OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   model,
		BaseURL: baseURL,
	})
}
