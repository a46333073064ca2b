// Package ctxutil carries request-scoped values through context.
package ctxutil

import (
	"context"

	"github.com/neighborly/carehub/internal/auth"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	identityKey
)

// WithRequestID stores the request id in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx returns the request id, or "" when absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithIdentity stores the authenticated caller in the context.
func WithIdentity(ctx context.Context, identity auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromCtx returns the authenticated caller, if any.
func IdentityFromCtx(ctx context.Context) (auth.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(auth.Identity)
	return identity, ok
}
