package llm

import "context"

type purposeKey struct{}

// WithPurpose labels the context with what the generation is for
// ("quiz-gen", "summary", "further-reading"). The logging decorator
// records the label on the audit event.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom reads the purpose label, defaulting to "unknown".
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey{}).(string); ok {
		return p
	}
	return "unknown"
}
