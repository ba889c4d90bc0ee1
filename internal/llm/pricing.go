package llm

// ModelCost is USD per 1 million tokens for one model.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

// Cost computes the USD cost of a request.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return float64(inputTokens)*c.InputPerMTok/1_000_000 +
		float64(outputTokens)*c.OutputPerMTok/1_000_000
}

// LookupCost returns pricing for a model ID, nil when unknown. The CLI
// stats command renders unknown models with a "?" cost.
func LookupCost(modelID string) *ModelCost {
	if c, ok := modelCosts[modelID]; ok {
		return &c
	}
	return nil
}

// modelCosts covers the models the adapters default to or document,
// plus their dated aliases as providers report them back in responses.
// Updated 2026-08.
var modelCosts = map[string]ModelCost{
	// Anthropic
	"claude-haiku-4-5":          {1, 5},
	"claude-haiku-4-5-20251001": {1, 5},
	"claude-sonnet-4-5":         {3, 15},
	"claude-sonnet-4-5-20250929": {3, 15},

	// OpenAI
	"gpt-4o":            {2.5, 10},
	"gpt-4o-2024-11-20": {2.5, 10},
	"gpt-4o-mini":       {0.15, 0.6},
	"gpt-4.1-mini":      {0.4, 1.6},

	// Gemini
	"gemini-2.0-flash": {0.1, 0.4},
	"gemini-2.5-flash": {0.3, 2.5},
	"gemini-2.5-pro":   {1.25, 10},

	// OpenRouter passes vendor-prefixed IDs through.
	"google/gemini-2.5-flash":    {0.3, 2.5},
	"anthropic/claude-haiku-4-5": {1, 5},
}
