package llm

import "context"

type purposeKey struct{}

// WithPurpose labels the context with what the request is for
// ("chat", "insights"). The logging decorator records the label with
// each event.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the purpose label, or "unknown" when unset.
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey{}).(string); ok {
		return p
	}
	return "unknown"
}
