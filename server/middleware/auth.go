package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/ishwor/authcookbook/auth"
	"github.com/ishwor/authcookbook/auth/authctx"
	apperrors "github.com/ishwor/authcookbook/errors"
)

// Authenticate returns middleware that resolves the request's credentials
// into a principal using the configured strategy resolver.
//
// Per request the flow is: a public path is exempt and skips resolution
// entirely; otherwise the resolver either produces a principal (stored in
// the request context for authorization) or the request is aborted with an
// unauthorized response. Failure here is a 401-class outcome, distinct from
// the 403 produced by RequireOperation.
func Authenticate(resolver auth.Resolver, publicPaths []string) gin.HandlerFunc {
	public := make(map[string]struct{}, len(publicPaths))
	for _, p := range publicPaths {
		public[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := public[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		principal, err := resolver.Resolve(c.Request.Context(), c.Request)
		if err != nil {
			abortWithError(c, err)
			return
		}

		c.Request = c.Request.WithContext(authctx.Set(c.Request.Context(), principal))
		c.Next()
	}
}

// RequireOperation returns middleware that authorizes the resolved
// principal against the policy's required roles for the given operation.
// A principal that resolved but lacks the role is denied with a forbidden
// response; the protected handler only runs on an allowed decision.
func RequireOperation(policy *auth.Policy, op auth.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := authctx.Get(c.Request.Context())
		if !ok {
			// No principal was resolved for this request; only public
			// paths skip resolution, and those are never behind a policy.
			abortWithError(c, apperrors.Unauthorized(""))
			return
		}

		if policy.Check(principal, op) != auth.Allowed {
			abortWithError(c, apperrors.Forbidden(""))
			return
		}
		c.Next()
	}
}

// abortWithError terminates the request with the AppError's status and body.
func abortWithError(c *gin.Context, err error) {
	if appErr, ok := apperrors.AsAppError(err); ok {
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse())
		return
	}
	internal := apperrors.Internal(err)
	c.AbortWithStatusJSON(internal.HTTPStatus, internal.ToResponse())
}
