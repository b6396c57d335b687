package numbeo

import "context"

//////////////////////////////////////////////////////////////////
// TYPES

type credentialKey struct{}

//////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// WithCredential returns a context carrying a per-request API key,
// which takes precedence over any key configured at construction.
func WithCredential(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, credentialKey{}, key)
}

// Credential returns the API key carried by the context, or an
// empty string when none is set.
func Credential(ctx context.Context) string {
	if v, ok := ctx.Value(credentialKey{}).(string); ok {
		return v
	}
	return ""
}
