package llm

import (
	"context"
	"time"

	"github.com/avalder/pathwise/internal/logger"
	"github.com/avalder/pathwise/internal/store"
)

// RequestSink receives one audit record per LLM API call. Satisfied by
// *store.EventRepo.
type RequestSink interface {
	AppendLLMRequest(ctx context.Context, data store.LLMRequestEventData) error
}

// LoggingProvider is a decorator that records every LLM request as an
// event and logs it.
type LoggingProvider struct {
	inner  Provider
	events RequestSink
	log    *logger.Logger
}

// WithLogging wraps a Provider with request auditing. events may be nil.
func WithLogging(p Provider, events RequestSink, log *logger.Logger) Provider {
	if log == nil {
		log = logger.Nop()
	}
	return &LoggingProvider{inner: p, events: events, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	latencyMs := time.Since(start).Milliseconds()

	data := store.LLMRequestEventData{
		Provider:  l.inner.ModelID(),
		Model:     l.inner.ModelID(),
		Purpose:   purpose,
		LatencyMs: latencyMs,
		Success:   err == nil,
	}
	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
	}
	if err != nil {
		data.ErrorMessage = err.Error()
		l.log.Warn("llm request failed",
			"purpose", purpose,
			"model", data.Model,
			"latency_ms", latencyMs,
			"error", err)
	} else {
		l.log.Debug("llm request",
			"purpose", purpose,
			"model", data.Model,
			"latency_ms", latencyMs,
			"input_tokens", data.InputTokens,
			"output_tokens", data.OutputTokens)
	}

	// Audit the event but don't fail the request if the append fails.
	if l.events != nil {
		if logErr := l.events.AppendLLMRequest(ctx, data); logErr != nil {
			l.log.Warn("failed to record llm request event", "error", logErr)
		}
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
