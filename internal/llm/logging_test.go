package llm

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/avalder/pathwise/internal/store"
)

type captureSink struct {
	events []store.LLMRequestEventData
}

func (c *captureSink) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	c.events = append(c.events, data)
	return nil
}

func TestLoggingProvider_RecordsSuccess(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"ok":true}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 7, TotalTokens: 19},
	})
	sink := &captureSink{}
	p := WithLogging(mock, sink, nil)

	ctx := WithPurpose(context.Background(), "concept-quiz")
	if _, err := p.Generate(ctx, Request{Messages: []Message{{Role: RoleUser, Content: "go"}}}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(sink.events) != 1 {
		t.Fatalf("events = %d, want 1", len(sink.events))
	}
	ev := sink.events[0]
	if !ev.Success || ev.Purpose != "concept-quiz" {
		t.Errorf("event = %+v", ev)
	}
	if ev.InputTokens != 12 || ev.OutputTokens != 7 {
		t.Errorf("tokens = %d/%d, want 12/7", ev.InputTokens, ev.OutputTokens)
	}
}

func TestLoggingProvider_RecordsFailure(t *testing.T) {
	mock := NewMockProvider() // empty queue -> unavailable
	sink := &captureSink{}
	p := WithLogging(mock, sink, nil)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error from empty mock")
	}

	if len(sink.events) != 1 {
		t.Fatalf("events = %d, want 1", len(sink.events))
	}
	ev := sink.events[0]
	if ev.Success || ev.ErrorMessage == "" {
		t.Errorf("event = %+v", ev)
	}
	if ev.Purpose != "unknown" {
		t.Errorf("purpose = %q, want unknown default", ev.Purpose)
	}
}

func TestLoggingProvider_NilSinkDoesNotPanic(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, nil, nil)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("generate: %v", err)
	}
}
