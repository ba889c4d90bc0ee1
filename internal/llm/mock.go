package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is one scripted reply for MockProvider. Err, when set,
// wins over Content.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider replays scripted responses in order and records every
// request, for tests and the "mock" provider setting.
type MockProvider struct {
	mu     sync.Mutex
	script []MockResponse
	next   int

	Calls []Request
}

func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{script: responses}
}

func (m *MockProvider) ModelID() string { return "mock" }

// Generate returns the next scripted response; an exhausted script
// reads as the provider being down.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if m.next >= len(m.script) {
		return nil, &ErrProviderUnavailable{}
	}
	scripted := m.script[m.next]
	m.next++

	if scripted.Err != nil {
		return nil, scripted.Err
	}
	return &Response{
		Content:    scripted.Content,
		Usage:      scripted.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

// AddResponse appends to the script.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, resp)
}

// CallCount reports how many Generate calls were made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// LastCall returns the most recent request, or a zero Request when
// none were made.
func (m *MockProvider) LastCall() Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Calls) == 0 {
		return Request{}
	}
	return m.Calls[len(m.Calls)-1]
}
