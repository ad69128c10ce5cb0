package auth

import (
	"context"
	"errors"
)

// Store lookup sentinels. Implementations return these so resolvers can
// recover lookup misses locally without leaking them to clients.
var (
	// ErrNotFound indicates no credential record exists for an identity.
	ErrNotFound = errors.New("auth: credential not found")
	// ErrDuplicateIdentity indicates a create collided with an existing
	// identity (case-sensitive exact match).
	ErrDuplicateIdentity = errors.New("auth: identity already registered")
)

// Record is a stored credential: who the user is, their password hash, and
// their role. Records are created at registration (jwt strategy) or at
// process start (basic strategy) and are never mutated afterwards.
type Record struct {
	Identity     string
	PasswordHash string
	Role         Role
}

// CredentialStore is the read/write contract shared by the static in-memory
// set and the persisted user table. Resolvers only use the read side, which
// keeps them strategy-agnostic.
type CredentialStore interface {
	// FindByIdentity returns the record for an identity or ErrNotFound.
	FindByIdentity(ctx context.Context, identity string) (Record, error)

	// ExistsByIdentity reports whether a record exists for an identity.
	ExistsByIdentity(ctx context.Context, identity string) (bool, error)

	// Create stores a new record. Returns ErrDuplicateIdentity if the
	// identity is already taken; under concurrent submission exactly one
	// caller wins.
	Create(ctx context.Context, identity, passwordHash string, role Role) (Record, error)
}

// PasswordVerifier checks a plaintext candidate against a stored hash.
// Implemented by auth/password hashers.
type PasswordVerifier interface {
	Verify(password, hash string) error
}

// TokenVerifier validates a raw bearer token and returns the principal it
// encodes. Implemented by the auth/token service.
type TokenVerifier interface {
	Verify(rawToken string) (Principal, error)
}

// TokenIssuer creates a signed bearer token for a credential record.
// Implemented by the auth/token service.
type TokenIssuer interface {
	Issue(identity string, role Role) (string, error)
}
