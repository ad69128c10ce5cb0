// Package authctx propagates the resolved principal through request context.
//
// The authentication middleware stores the principal after resolution;
// authorization middleware and handlers retrieve it. A principal is only
// ever set for the lifetime of a single request.
package authctx

import (
	"context"

	"github.com/ishwor/authcookbook/auth"
)

// contextKey is an unexported type to prevent collisions with other packages.
type contextKey struct{}

var principalKey = contextKey{}

// Set stores the resolved principal in the context.
func Set(ctx context.Context, p auth.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// Get retrieves the principal from the context. The second return value is
// false when no principal was resolved (public path or open strategy
// without resolution).
func Get(ctx context.Context) (auth.Principal, bool) {
	p, ok := ctx.Value(principalKey).(auth.Principal)
	return p, ok
}
