package store

import (
	"context"
	"time"

	"github.com/avalder/pathwise/ent"
	"github.com/avalder/pathwise/ent/llmrequestevent"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMEventRecord is a persisted LLM request event.
type LLMEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates token totals for one purpose or model.
type LLMUsage struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// AppendLLMRequest records an LLM API call for cost tracking.
func (r *EventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return storeErr(err, "next sequence")
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return storeErr(err, "save llm request event")
	}
	return nil
}

// QueryLLMEvents returns LLM request events, newest first.
func (r *EventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error) {
	query := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(llmrequestevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(llmrequestevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(llmrequestevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(llmrequestevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, storeErr(err, "query llm events")
	}

	records := make([]LLMEventRecord, len(events))
	for i, e := range events {
		records[i] = LLMEventRecord{
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			LLMRequestEventData: LLMRequestEventData{
				Provider:     e.Provider,
				Model:        e.Model,
				Purpose:      e.Purpose,
				InputTokens:  e.InputTokens,
				OutputTokens: e.OutputTokens,
				LatencyMs:    e.LatencyMs,
				Success:      e.Success,
				ErrorMessage: e.ErrorMessage,
			},
		}
	}
	return records, nil
}

// LLMUsageByPurpose aggregates token usage grouped by purpose label,
// in first-seen order.
func (r *EventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error) {
	return r.llmUsage(ctx, func(e *ent.LLMRequestEvent) string { return e.Purpose }, true)
}

// LLMUsageByModel aggregates token usage grouped by model ID.
func (r *EventRepo) LLMUsageByModel(ctx context.Context) ([]LLMUsage, error) {
	return r.llmUsage(ctx, func(e *ent.LLMRequestEvent) string { return e.Model }, false)
}

func (r *EventRepo) llmUsage(ctx context.Context, key func(*ent.LLMRequestEvent) string, byPurpose bool) ([]LLMUsage, error) {
	events, err := r.client.LLMRequestEvent.Query().
		Order(ent.Asc(llmrequestevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, storeErr(err, "query llm usage")
	}

	var order []string
	agg := make(map[string]*LLMUsage)
	latency := make(map[string]int64)
	for _, e := range events {
		k := key(e)
		u, ok := agg[k]
		if !ok {
			u = &LLMUsage{}
			if byPurpose {
				u.Purpose = k
			} else {
				u.Model = k
			}
			agg[k] = u
			order = append(order, k)
		}
		u.Calls++
		u.InputTokens += e.InputTokens
		u.OutputTokens += e.OutputTokens
		latency[k] += e.LatencyMs
	}

	out := make([]LLMUsage, 0, len(order))
	for _, k := range order {
		u := agg[k]
		if u.Calls > 0 {
			u.AvgLatencyMs = latency[k] / int64(u.Calls)
		}
		out = append(out, *u)
	}
	return out, nil
}
