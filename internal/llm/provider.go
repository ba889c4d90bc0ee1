// Package llm is the text-generation collaborator boundary: a small
// provider-neutral request/response model with adapters for the APIs
// the engine can be configured against, plus retry and audit-logging
// decorators. Study-material generation sits on top of it and never
// talks to an SDK directly.
package llm

import (
	"context"
	"encoding/json"
)

// Role marks who authored a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn in the conversation sent to the model. Most
// requests here are single-turn: one user message.
type Message struct {
	Role    Role
	Content string
}

// Schema names and describes the JSON shape a structured request must
// come back in. Definition is a plain JSON Schema map so each adapter
// can translate it into its provider's native structured-output form.
type Schema struct {
	// Name is a kebab-case identifier, e.g. "concept-quiz". Adapters
	// use it as the schema or tool name on the wire.
	Name string

	// Description is sent to the model to guide generation.
	Description string

	Definition map[string]any
}

// Request is a provider-neutral generation request.
type Request struct {
	// System sets the model's role and constraints.
	System string

	Messages []Message

	// Schema, when set, demands schema-conforming JSON via the
	// provider's structured-output mechanism. Nil means freeform text.
	Schema *Schema

	MaxTokens int

	// Temperature in [0,1]; zero value means deterministic.
	Temperature float64
}

// Usage is the token accounting for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Response is a provider-neutral generation result. Content is the
// validated JSON object when the request carried a Schema, otherwise
// the raw text. StopReason is normalized to "end" or "max_tokens".
type Response struct {
	Content    json.RawMessage
	Usage      Usage
	Model      string
	StopReason string
}

// Provider generates a response for a request. Implementations wrap
// one vendor SDK; decorators wrap other Providers.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the configured model, for audit events.
	ModelID() string
}
