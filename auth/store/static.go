// Package store provides the two credential store backends: a fixed
// in-memory set for the basic strategy and a persisted user table for the
// jwt strategy's register/login flow.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/ishwor/authcookbook/auth"
)

// ErrReadOnly is returned by mutation calls on the static store.
var ErrReadOnly = errors.New("store: static credential store is read-only")

// StaticStore is a fixed, preloaded in-memory credential set. It is built
// once at process start and never mutated, so concurrent reads need no
// coordination.
type StaticStore struct {
	records map[string]auth.Record
}

// NewStaticStore builds a static store from preloaded records. Identities
// must be unique (case-sensitive exact match).
func NewStaticStore(records []auth.Record) (*StaticStore, error) {
	m := make(map[string]auth.Record, len(records))
	for _, rec := range records {
		if rec.Identity == "" {
			return nil, errors.New("store: record with empty identity")
		}
		if _, exists := m[rec.Identity]; exists {
			return nil, fmt.Errorf("store: duplicate identity %q in static set", rec.Identity)
		}
		m[rec.Identity] = rec
	}
	return &StaticStore{records: m}, nil
}

// FindByIdentity returns the record for an identity or auth.ErrNotFound.
func (s *StaticStore) FindByIdentity(_ context.Context, identity string) (auth.Record, error) {
	rec, ok := s.records[identity]
	if !ok {
		return auth.Record{}, auth.ErrNotFound
	}
	return rec, nil
}

// ExistsByIdentity reports whether a record exists for an identity.
func (s *StaticStore) ExistsByIdentity(_ context.Context, identity string) (bool, error) {
	_, ok := s.records[identity]
	return ok, nil
}

// Create always fails: the static set is fixed at startup.
func (s *StaticStore) Create(_ context.Context, _, _ string, _ auth.Role) (auth.Record, error) {
	return auth.Record{}, ErrReadOnly
}
