package auth

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"

	apperrors "github.com/ishwor/authcookbook/errors"
	"github.com/ishwor/authcookbook/logger"
)

// Resolver turns an inbound request into an authenticated principal, or
// rejects it. One implementation exists per strategy (open, basic, bearer);
// the variant is chosen once at startup so the rest of the service never
// branches on the strategy.
type Resolver interface {
	Resolve(ctx context.Context, r *http.Request) (Principal, error)
}

// failedAuth is the single error surfaced for every resolution failure.
// The specific reason (unknown identity, wrong password, expired token) is
// only ever logged internally, to avoid identity enumeration.
func failedAuth() *apperrors.AppError {
	return apperrors.Unauthorized("Invalid credentials")
}

// --- Open ---

// OpenResolver implements the open strategy: every request resolves to the
// anonymous principal and resolution never fails.
type OpenResolver struct{}

// NewOpenResolver creates the open-strategy resolver.
func NewOpenResolver() *OpenResolver {
	return &OpenResolver{}
}

// Resolve always returns the anonymous principal.
func (r *OpenResolver) Resolve(_ context.Context, _ *http.Request) (Principal, error) {
	return Anonymous(), nil
}

// --- Basic ---

// BasicResolver implements HTTP Basic authentication against a credential
// store and password hasher.
type BasicResolver struct {
	store    CredentialStore
	verifier PasswordVerifier
	log      *logger.Logger
}

// NewBasicResolver creates a basic-credential resolver.
func NewBasicResolver(store CredentialStore, verifier PasswordVerifier, log *logger.Logger) *BasicResolver {
	return &BasicResolver{
		store:    store,
		verifier: verifier,
		log:      log.WithComponent("auth.basic"),
	}
}

// Resolve decodes the Basic header, looks the identity up in the store and
// verifies the password hash. Unknown identity and wrong password are
// indistinguishable in the returned error.
func (r *BasicResolver) Resolve(ctx context.Context, req *http.Request) (Principal, error) {
	identity, password, ok := decodeBasicHeader(req.Header.Get("Authorization"))
	if !ok {
		r.log.Debug("Missing or malformed Basic authorization header")
		return Principal{}, failedAuth()
	}

	rec, err := r.store.FindByIdentity(ctx, identity)
	if err != nil {
		r.log.Debug("Unknown identity", map[string]interface{}{"identity": identity})
		return Principal{}, failedAuth()
	}

	if err := r.verifier.Verify(password, rec.PasswordHash); err != nil {
		r.log.Debug("Password mismatch", map[string]interface{}{"identity": identity})
		return Principal{}, failedAuth()
	}

	return Principal{Identity: rec.Identity, Role: rec.Role}, nil
}

// decodeBasicHeader extracts identity and password from a
// "Basic base64(identity:password)" header value.
func decodeBasicHeader(header string) (identity, password string, ok bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Basic") {
		return "", "", false
	}
	decoded, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", "", false
	}
	identity, password, ok = strings.Cut(string(decoded), ":")
	if !ok || identity == "" {
		return "", "", false
	}
	return identity, password, true
}

// --- Bearer ---

// BearerResolver implements bearer-token authentication by delegating to a
// token verifier.
type BearerResolver struct {
	tokens TokenVerifier
	log    *logger.Logger
}

// NewBearerResolver creates a bearer-token resolver.
func NewBearerResolver(tokens TokenVerifier, log *logger.Logger) *BearerResolver {
	return &BearerResolver{
		tokens: tokens,
		log:    log.WithComponent("auth.bearer"),
	}
}

// Resolve extracts the Bearer token and verifies it. All verification
// sub-failures (bad signature, expiry, wrong issuer, malformed claims)
// collapse to the same authentication failure at this boundary.
func (r *BearerResolver) Resolve(_ context.Context, req *http.Request) (Principal, error) {
	raw, ok := extractBearerToken(req.Header.Get("Authorization"))
	if !ok {
		r.log.Debug("Missing or malformed Bearer authorization header")
		return Principal{}, failedAuth()
	}

	principal, err := r.tokens.Verify(raw)
	if err != nil {
		r.log.Debug("Token verification failed", map[string]interface{}{"reason": err.Error()})
		return Principal{}, failedAuth()
	}
	return principal, nil
}

// extractBearerToken pulls the token string out of a "Bearer <token>" header.
func extractBearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
