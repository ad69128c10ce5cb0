package password_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/ishwor/authcookbook/auth/password"
)

// Low-cost parameters keep the hashing tests fast.
func newBcryptHasher(t *testing.T) password.Hasher {
	t.Helper()
	h, err := password.NewHasher(password.Config{Algorithm: password.AlgorithmBcrypt, BcryptCost: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return h
}

func newArgon2Hasher(t *testing.T) password.Hasher {
	t.Helper()
	h, err := password.NewHasher(password.Config{
		Algorithm:     password.AlgorithmArgon2id,
		Argon2Time:    1,
		Argon2Memory:  8 * 1024,
		Argon2Threads: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return h
}

func TestHasher_RoundTrip(t *testing.T) {
	hashers := map[string]password.Hasher{
		"bcrypt":   newBcryptHasher(t),
		"argon2id": newArgon2Hasher(t),
	}

	for name, h := range hashers {
		t.Run(name, func(t *testing.T) {
			hash, err := h.Hash("correct horse battery staple")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if hash == "correct horse battery staple" {
				t.Fatal("hash must not equal the plaintext")
			}

			if err := h.Verify("correct horse battery staple", hash); err != nil {
				t.Errorf("expected match: %v", err)
			}
			if err := h.Verify("wrong password", hash); !errors.Is(err, password.ErrMismatch) {
				t.Errorf("expected ErrMismatch, got %v", err)
			}
		})
	}
}

func TestHasher_HashesAreSalted(t *testing.T) {
	h := newBcryptHasher(t)

	first, err := h.Hash("same password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := h.Hash("same password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == second {
		t.Error("two hashes of the same password must differ")
	}
}

func TestBcryptHasher_RejectsOverlongPassword(t *testing.T) {
	h := newBcryptHasher(t)

	if _, err := h.Hash(strings.Repeat("x", 73)); err == nil {
		t.Fatal("expected error for password over 72 bytes")
	}
}

func TestArgon2Hasher_RejectsMalformedHash(t *testing.T) {
	h := newArgon2Hasher(t)

	for _, hash := range []string{"", "not-a-hash", "$argon2id$v=19$garbage"} {
		if err := h.Verify("password", hash); err == nil {
			t.Errorf("Verify against %q: expected error", hash)
		}
	}
}

func TestNewHasher_UnsupportedAlgorithm(t *testing.T) {
	if _, err := password.NewHasher(password.Config{Algorithm: "md5"}); err == nil {
		t.Fatal("expected error for unsupported algorithm")
	}
}
