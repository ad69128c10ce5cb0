// Package token issues and verifies signed, time-bounded bearer tokens.
//
// Tokens are self-contained: subject identity, role claim, issuer and expiry
// travel inside the signed payload, so the server keeps no session state and
// needs no revocation list — tokens simply expire.
package token

import (
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"

	"github.com/ishwor/authcookbook/auth"
)

// Verification failure kinds. Callers at the HTTP boundary collapse all of
// these into a single authentication failure; the distinction exists for
// internal logging and tests.
var (
	// ErrInvalidSignature indicates the token was tampered with, corrupted,
	// or signed with a different key.
	ErrInvalidSignature = errors.New("token: invalid signature")
	// ErrExpired indicates the token's expiry has passed.
	ErrExpired = errors.New("token: expired")
	// ErrInvalidIssuer indicates the issuer claim does not match.
	ErrInvalidIssuer = errors.New("token: invalid issuer")
	// ErrMalformedClaims indicates the claim set is missing required fields
	// or carries an unknown role.
	ErrMalformedClaims = errors.New("token: malformed claims")
)

// Claims is the signed claim set: registered claims plus the role claim.
type Claims struct {
	gojwt.RegisteredClaims
	Role string `json:"role"`
}

// Service issues and verifies bearer tokens with a process-wide HMAC key.
// The key is read-only after startup and shared across all calls.
type Service struct {
	cfg Config
	now func() time.Time
}

// NewService creates a token service from configuration.
func NewService(cfg *Config) (*Service, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Service{cfg: *cfg, now: time.Now}, nil
}

// Issue creates a signed token for the identity and role. Expiry is
// issuedAt + the configured TTL.
func (s *Service) Issue(identity string, role auth.Role) (string, error) {
	now := s.now()
	claims := &Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			Subject:   identity,
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(s.cfg.AccessTokenTTL)),
		},
		Role: string(role),
	}

	token := gojwt.NewWithClaims(s.cfg.signingMethod(), claims)
	signed, err := token.SignedString(s.cfg.signKey())
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a raw token: signature first, then expiry,
// then issuer, then the role claim. On success it returns the principal
// the token encodes.
func (s *Service) Verify(rawToken string) (auth.Principal, error) {
	claims := &Claims{}
	parsed, err := gojwt.ParseWithClaims(rawToken, claims, s.keyFunc, s.parserOptions()...)
	if err != nil {
		return auth.Principal{}, classifyParseError(err)
	}
	if !parsed.Valid {
		return auth.Principal{}, ErrInvalidSignature
	}

	if claims.Subject == "" {
		return auth.Principal{}, ErrMalformedClaims
	}
	role, err := auth.ParseRole(claims.Role)
	if err != nil {
		return auth.Principal{}, ErrMalformedClaims
	}

	return auth.Principal{Identity: claims.Subject, Role: role}, nil
}

// keyFunc pins the expected signing algorithm before releasing the key.
func (s *Service) keyFunc(token *gojwt.Token) (interface{}, error) {
	expected := s.cfg.signingMethod()
	if token.Method.Alg() != expected.Alg() {
		return nil, fmt.Errorf("token: unexpected signing method: %s", token.Method.Alg())
	}
	return s.cfg.signKey(), nil
}

// parserOptions returns the parser options used during verification.
func (s *Service) parserOptions() []gojwt.ParserOption {
	return []gojwt.ParserOption{
		gojwt.WithValidMethods([]string{s.cfg.signingMethod().Alg()}),
		gojwt.WithIssuer(s.cfg.Issuer),
		gojwt.WithExpirationRequired(),
		gojwt.WithTimeFunc(s.now),
	}
}

// classifyParseError maps golang-jwt parse errors onto the package's
// failure kinds, in verification order: signature integrity before expiry,
// expiry before issuer. Anything unrecognized is treated as malformed.
func classifyParseError(err error) error {
	switch {
	case errors.Is(err, gojwt.ErrTokenSignatureInvalid),
		errors.Is(err, gojwt.ErrTokenUnverifiable):
		return ErrInvalidSignature
	case errors.Is(err, gojwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, gojwt.ErrTokenInvalidIssuer):
		return ErrInvalidIssuer
	default:
		return ErrMalformedClaims
	}
}
