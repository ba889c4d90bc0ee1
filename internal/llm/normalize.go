package llm

import (
	"bytes"
	"encoding/json"
	"strings"
)

// OutputKind tags the two shapes a provider response can normalize to.
type OutputKind string

const (
	// KindStructured means the content is a JSON object or array.
	KindStructured OutputKind = "structured"
	// KindFreeform means the content is plain text.
	KindFreeform OutputKind = "freeform"
)

// Output is the normalized form of a provider response. Consumers
// branch on Kind exactly once and never re-parse Content themselves.
type Output struct {
	Kind       OutputKind
	Structured json.RawMessage // set when Kind == KindStructured
	Freeform   string          // set when Kind == KindFreeform
}

// Normalize classifies a response's content. JSON objects and arrays are
// structured; JSON strings are unwrapped to freeform text; anything the
// JSON parser rejects (including fenced code blocks around JSON, which
// some models emit despite structured output) is recovered or treated as
// freeform text.
func Normalize(resp *Response) Output {
	raw := bytes.TrimSpace([]byte(resp.Content))

	if inner, ok := stripFence(raw); ok {
		raw = inner
	}

	if len(raw) > 0 && (raw[0] == '{' || raw[0] == '[') && json.Valid(raw) {
		return Output{Kind: KindStructured, Structured: json.RawMessage(raw)}
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return Output{Kind: KindFreeform, Freeform: s}
	}

	return Output{Kind: KindFreeform, Freeform: string(raw)}
}

// stripFence removes a surrounding markdown code fence, if present.
func stripFence(raw []byte) ([]byte, bool) {
	s := string(raw)
	if !strings.HasPrefix(s, "```") {
		return nil, false
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	end := strings.LastIndex(s, "```")
	if end < 0 {
		return nil, false
	}
	return bytes.TrimSpace([]byte(s[:end])), true
}
